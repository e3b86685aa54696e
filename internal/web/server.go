// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the assessment engine over HTTP for the document
// pipeline. The server is stateless: nothing is persisted between
// requests.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lexiscan/internal/engine"
	"lexiscan/internal/extract"
	"lexiscan/internal/formatters"
	"lexiscan/internal/risk"
	"lexiscan/internal/suppressions"
	"lexiscan/internal/version"

	// Import formatters to register them
	_ "lexiscan/internal/formatters/csv"
	_ "lexiscan/internal/formatters/json"
	_ "lexiscan/internal/formatters/text"
	_ "lexiscan/internal/formatters/yaml"
)

// Uploaded documents larger than this are rejected.
const maxUploadSize = 50 * 1024 * 1024 // 50MB

// Server wraps the engine in an HTTP API.
type Server struct {
	port        string
	engine      *engine.Engine
	suppression *suppressions.SuppressionManager
	server      *http.Server
}

// AssessRequest is the JSON request body for POST /api/assess.
type AssessRequest struct {
	Text         string        `json:"text"`
	Clauses      []risk.Clause `json:"clauses"`
	DocumentType string        `json:"document_type"`
	Jurisdiction string        `json:"jurisdiction"`
	// SegmentClauses asks the server to derive clauses from the text
	// when the caller has no upstream segmentation.
	SegmentClauses bool `json:"segment_clauses"`
}

// AssessResponse is the JSON response envelope for POST /api/assess.
type AssessResponse struct {
	Success    bool                   `json:"success"`
	Result     *risk.AssessmentResult `json:"result,omitempty"`
	Suppressed []risk.SuppressedRisk  `json:"suppressed,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// NewServer creates a server around the given engine. A nil suppression
// manager disables suppression handling.
func NewServer(port string, eng *engine.Engine, suppression *suppressions.SuppressionManager) *Server {
	return &Server{
		port:        port,
		engine:      eng,
		suppression: suppression,
	}
}

// Start binds the server, probing up to ten ports starting from the
// configured one, and serves until Stop is called.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/assess", s.handleAssess)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/formats", s.handleFormats)
	mux.HandleFunc("/api/version", s.handleVersion)

	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := s.port
		if i > 0 {
			currentPort = fmt.Sprintf("%d", basePortPlus(s.port, i))
		}

		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			if i == 0 {
				fmt.Printf("Port %s is not available, trying alternative ports...\n", currentPort)
			}
			continue
		}
		listener.Close()

		s.server = &http.Server{
			Addr:         ":" + currentPort,
			Handler:      mux,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		fmt.Printf("lexiscan API started on port %s\n", currentPort)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			continue
		}
		return nil
	}

	return fmt.Errorf("could not find an available port starting from %s: %w", s.port, lastError)
}

// Stop stops the web server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

func basePortPlus(port string, offset int) int {
	base := 8080
	fmt.Sscanf(port, "%d", &base)
	return base + offset
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req AssessRequest
	var err error
	if isMultipart(r) {
		req, err = s.parseUpload(r)
	} else {
		err = json.NewDecoder(io.LimitReader(r.Body, maxUploadSize)).Decode(&req)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.SegmentClauses && len(req.Clauses) == 0 {
		req.Clauses = extract.SegmentClauses(req.Text)
	}
	if req.DocumentType == "" {
		req.DocumentType = risk.DocTypeOther
	}

	result := s.engine.AssessDocumentRisks(req.Text, req.Clauses, req.DocumentType, req.Jurisdiction)

	var suppressed []risk.SuppressedRisk
	if s.suppression != nil {
		result.Risks, suppressed = s.suppression.Apply(result.Risks)
	}

	// Non-JSON output on request, via the shared formatter registry.
	if format := r.URL.Query().Get("format"); format != "" && format != "json" {
		content, mimeType, filename, err := formatters.ExportForWeb(format, result, suppressed, formatters.FormatterOptions{
			NoColor:      true,
			ShowExcerpts: true,
		})
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		w.Header().Set("Content-Type", mimeType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		io.WriteString(w, content)
		return
	}

	writeJSON(w, http.StatusOK, AssessResponse{
		Success:    true,
		Result:     result,
		Suppressed: suppressed,
	})
}

// parseUpload handles multipart file uploads: the document goes through
// the extraction layer, clauses come from the built-in segmenter.
func (s *Server) parseUpload(r *http.Request) (AssessRequest, error) {
	var req AssessRequest

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return req, fmt.Errorf("invalid multipart request: %w", err)
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		return req, fmt.Errorf("missing 'document' file field: %w", err)
	}
	defer file.Close()

	// Extraction dispatches on extension, so preserve it in the temp name.
	tmp, err := os.CreateTemp("", "lexiscan-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return req, fmt.Errorf("failed to buffer upload: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, io.LimitReader(file, maxUploadSize)); err != nil {
		return req, fmt.Errorf("failed to buffer upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return req, fmt.Errorf("failed to buffer upload: %w", err)
	}

	doc, err := extract.ExtractFile(tmp.Name())
	if err != nil {
		return req, fmt.Errorf("extraction failed: %w", err)
	}

	req.Text = doc.Text
	req.Clauses = extract.SegmentClauses(doc.Text)
	req.DocumentType = r.FormValue("document_type")
	req.Jurisdiction = r.FormValue("jurisdiction")
	return req, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"pattern_count": s.engine.Catalog().Len(),
	})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	type formatInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Extension   string `json:"extension"`
		MimeType    string `json:"mime_type"`
	}
	var infos []formatInfo
	for _, info := range formatters.GetSupportedFormats() {
		infos = append(infos, formatInfo{
			Name:        info.Name,
			Description: info.Description,
			Extension:   info.Extension,
			MimeType:    info.MimeType,
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Full())
}

func isMultipart(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return len(contentType) >= len("multipart/") && contentType[:len("multipart/")] == "multipart/"
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, AssessResponse{Success: false, Error: message})
}
