// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFInfo holds structural metadata about a PDF input, surfaced in
// verbose reports so reviewers know what was actually scanned.
type PDFInfo struct {
	Filename  string
	FileSize  int64
	ModTime   time.Time
	PageCount int
	Valid     bool
}

// readPDFInfo validates the PDF and collects structural metadata via
// pdfcpu. Failures here never fail extraction: text scanning proceeds
// with whatever ledongthuc/pdf recovered.
func readPDFInfo(filePath string) (*PDFInfo, error) {
	cleanPath := filepath.Clean(filePath)

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("file error: %w", err)
	}

	info := &PDFInfo{
		Filename: filepath.Base(cleanPath),
		FileSize: fileInfo.Size(),
		ModTime:  fileInfo.ModTime(),
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(cleanPath, conf); err == nil {
		info.Valid = true
	}

	ctx, err := api.ReadContextFile(cleanPath)
	if err != nil {
		return info, nil // validation status alone is still useful
	}
	info.PageCount = ctx.PageCount

	return info, nil
}
