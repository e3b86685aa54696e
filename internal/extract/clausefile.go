// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lexiscan/internal/risk"

	"gopkg.in/yaml.v3"
)

// clauseFile is the on-disk shape of a caller-supplied clause list.
type clauseFile struct {
	Clauses []risk.Clause `json:"clauses" yaml:"clauses"`
}

// LoadClauseFile reads a pre-segmented clause list from a JSON or YAML
// file, the same clause structure the document pipeline supplies
// upstream in production.
func LoadClauseFile(path string) ([]risk.Clause, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading clause file: %w", err)
	}

	var file clauseFile
	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("error parsing clause file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("error parsing clause file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported clause file type %q: use .json or .yaml", filepath.Ext(cleanPath))
	}

	for i, clause := range file.Clauses {
		if clause.Content == "" {
			return nil, fmt.Errorf("clause %d (%s) has empty content", i+1, clause.ID)
		}
	}

	return file.Clauses, nil
}
