// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the lexiscan configuration directory. The
// LEXISCAN_CONFIG_DIR environment variable overrides the default, which
// is the platform user config directory.
func GetConfigDir() string {
	if dir := os.Getenv("LEXISCAN_CONFIG_DIR"); dir != "" {
		return dir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "."
		}
		return filepath.Join(home, ".lexiscan")
	}
	return filepath.Join(base, "lexiscan")
}

// GetConfigFile returns the path to the main config file.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetSuppressionsFile returns the path to the suppressions file.
func GetSuppressionsFile() string {
	return filepath.Join(GetConfigDir(), "suppressions.yaml")
}

// GetCatalogFile returns the path to a user-provided pattern catalog
// override, which may not exist.
func GetCatalogFile() string {
	return filepath.Join(GetConfigDir(), "catalog.yaml")
}
