// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"
)

const catalogFixture = `version: "1.0"
patterns:
  - id: custom-governing-law
    category: legal
    severity: medium
    phrases:
      - governed by the laws of
    description: The agreement fixes a governing law.
    recommendation: Check whether the chosen jurisdiction is acceptable.
`

func TestLoadCatalog_BuiltinByDefault(t *testing.T) {
	t.Setenv("LEXISCAN_CONFIG_DIR", t.TempDir()) // no catalog.yaml there

	catalog, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if _, ok := catalog.Get("unlimited-liability"); !ok {
		t.Error("default catalog should contain the built-in patterns")
	}
}

func TestLoadCatalog_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalogFixture), 0600); err != nil {
		t.Fatal(err)
	}

	catalog, err := loadCatalog(path)
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if catalog.Len() != 1 {
		t.Errorf("explicit catalog replaces the built-in one, got %d patterns", catalog.Len())
	}
}

func TestLoadCatalog_ConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEXISCAN_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(catalogFixture), 0600); err != nil {
		t.Fatal(err)
	}

	catalog, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if _, ok := catalog.Get("custom-governing-law"); !ok {
		t.Error("catalog.yaml in the config dir should override the built-in catalog")
	}
	if catalog.Len() != 1 {
		t.Errorf("override catalog is a replacement, got %d patterns", catalog.Len())
	}
}
