// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Plain text inputs larger than this are rejected rather than scanned.
const maxPlaintextSize = 50 * 1024 * 1024 // 50MB

func extractPlaintext(filePath string) (*Document, error) {
	cleanPath := filepath.Clean(filePath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("file error: %w", err)
	}
	if info.Size() > maxPlaintextSize {
		return nil, fmt.Errorf("file too large (%d bytes): limit is %d bytes", info.Size(), maxPlaintextSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("file %s is not valid UTF-8 text", cleanPath)
	}

	doc := &Document{
		Filename: filepath.Base(cleanPath),
		Text:     normalizeText(string(data)),
	}
	finishDocument(doc)
	return doc, nil
}

// normalizeText collapses whitespace within lines while preserving line
// structure, so clause segmentation still sees paragraph boundaries.
func normalizeText(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
