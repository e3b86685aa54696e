// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract turns document files into the plain text and clause
// lists the engine consumes. All file I/O for the CLI and web layers
// lives here; the engine itself never touches the filesystem.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Document is the extracted content of one input file.
type Document struct {
	Filename  string
	Text      string
	PageCount int // 0 for non-paginated formats
	WordCount int
	CharCount int

	// PDF metadata, populated for PDF inputs only.
	PDFInfo *PDFInfo
}

// ExtractFile extracts text from a document file, dispatching on the
// file extension. Plain text formats are read directly; PDFs go through
// the PDF text extractor.
func ExtractFile(filePath string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return extractPDF(filePath)
	case ".txt", ".md", ".text", "":
		return extractPlaintext(filePath)
	default:
		return nil, fmt.Errorf("unsupported file type %q: lexiscan reads .txt, .md and .pdf documents", filepath.Ext(filePath))
	}
}

func finishDocument(doc *Document) {
	doc.WordCount = len(strings.Fields(doc.Text))
	doc.CharCount = len(doc.Text)
}
