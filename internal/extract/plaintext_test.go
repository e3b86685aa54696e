// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractFile_Plaintext(t *testing.T) {
	path := writeTempFile(t, "contract.txt", []byte("The parties agree to the following terms.\n"))

	doc, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if doc.Filename != "contract.txt" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if !strings.Contains(doc.Text, "The parties agree") {
		t.Errorf("text = %q", doc.Text)
	}
	if doc.WordCount != 7 {
		t.Errorf("word count = %d, want 7", doc.WordCount)
	}
	if doc.CharCount != len(doc.Text) {
		t.Errorf("char count = %d, want %d", doc.CharCount, len(doc.Text))
	}
	if doc.PageCount != 0 {
		t.Errorf("plain text has no pages, got %d", doc.PageCount)
	}
}

func TestExtractFile_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "contract.docx", []byte("irrelevant"))

	_, err := ExtractFile(path)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("error = %v", err)
	}
}

func TestExtractFile_MissingFile(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractFile_InvalidUTF8(t *testing.T) {
	path := writeTempFile(t, "binary.txt", []byte{0xff, 0xfe, 0x00, 0x41})

	_, err := ExtractFile(path)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if !strings.Contains(err.Error(), "not valid UTF-8") {
		t.Errorf("error = %v", err)
	}
}

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapse spaces", "a    b  c", "a b c"},
		{"tabs to spaces", "a\tb", "a b"},
		{"crlf to lf", "line one\r\nline two", "line one\nline two"},
		{"trim line edges", "  padded  \nnext", "padded\nnext"},
		{"blank lines preserved", "para one\n\npara two", "para one\n\npara two"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeText(tc.in); got != tc.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
