// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a pattern catalog override.
type catalogFile struct {
	Version  string        `yaml:"version"`
	Patterns []RiskPattern `yaml:"patterns"`
}

// LoadCatalog reads a pattern catalog from a YAML file. The file fully
// replaces the built-in catalog; it is not merged with it. Used to inject
// alternate catalogs for testing or customer-specific rule sets.
func LoadCatalog(path string) (*Catalog, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog file: %w", err)
	}
	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no patterns", cleanPath)
	}

	catalog, err := NewCatalog(file.Patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", cleanPath, err)
	}
	return catalog, nil
}
