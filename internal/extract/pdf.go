// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page processing cap: legal documents beyond this are truncated rather
// than allowed to dominate scan latency.
const maxPDFPages = 50

func extractPDF(filePath string) (*Document, error) {
	doc := &Document{
		Filename: filepath.Base(filePath),
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	doc.PageCount = r.NumPage()
	pagesToRead := doc.PageCount
	if pagesToRead > maxPDFPages {
		pagesToRead = maxPDFPages
	}

	// Pages extract independently, so run them in parallel and reassemble
	// in order.
	type pageResult struct {
		pageNum int
		text    string
		err     error
	}
	resultChan := make(chan pageResult, pagesToRead)

	for i := 1; i <= pagesToRead; i++ {
		go func(pageNum int) {
			p := r.Page(pageNum)
			if p.V.IsNull() {
				resultChan <- pageResult{pageNum: pageNum, err: fmt.Errorf("null page")}
				return
			}
			text, err := extractPageText(p)
			resultChan <- pageResult{pageNum: pageNum, text: text, err: err}
		}(i)
	}

	pageTexts := make(map[int]string)
	for i := 0; i < pagesToRead; i++ {
		result := <-resultChan
		if result.err != nil {
			continue // skip unreadable pages, keep the rest
		}
		pageTexts[result.pageNum] = result.text
	}

	var buf bytes.Buffer
	for i := 1; i <= pagesToRead; i++ {
		if text, exists := pageTexts[i]; exists {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(text)
		}
	}

	doc.Text = normalizeText(buf.String())
	finishDocument(doc)

	if info, err := readPDFInfo(filePath); err == nil {
		doc.PDFInfo = info
	}

	return doc, nil
}

// extractPageText reconstructs a page's text in reading order. Row-based
// extraction gives better word spacing; plain text extraction is the
// fallback when row data is unavailable.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRow(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(textElements []pdf.Text) float64 {
	if len(textElements) == 0 {
		return 0
	}
	var totalY float64
	for _, element := range textElements {
		totalY += element.Y
	}
	return totalY / float64(len(textElements))
}

// reconstructRow joins a row's text elements left to right, inserting
// spaces where the horizontal gap between elements is significant
// relative to the font size.
func reconstructRow(textElements []pdf.Text) string {
	if len(textElements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(textElements))
	copy(sorted, textElements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)
		if i < len(sorted)-1 {
			gap := sorted[i+1].X - (element.X + element.W)
			fontSize := element.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}
			if gap > fontSize*0.2 {
				buf.WriteString(" ")
			}
		}
	}
	return buf.String()
}
