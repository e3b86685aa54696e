// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver records operation timings and counts for the
// assessment pipeline. The engine stays pure: the observer only writes
// to the io.Writer the caller supplies.
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	DebugObserver *DebugObserver // set when running in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer writing at the given level.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming begins timing an operation and returns a completion
// function that records the result.
func (o *StandardObserver) StartTiming(component, operation, subject string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		o.LogOperation(OperationRecord{
			Component:  component,
			Operation:  operation,
			Subject:    subject,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation writes an operation record. Records are only emitted as
// JSON in debug mode; metrics mode keeps timings without output.
func (o *StandardObserver) LogOperation(record OperationRecord) {
	if o.level == ObservabilityOff {
		return
	}

	record.RequestID = "req-" + time.Now().Format("20060102-150405")

	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(record)
	}
}

// OperationRecord is one logged pipeline operation.
type OperationRecord struct {
	Component    string                 `json:"component"`
	Operation    string                 `json:"operation"`
	RequestID    string                 `json:"request_id"`
	Subject      string                 `json:"subject,omitempty"`
	DurationMs   int64                  `json:"duration_ms,omitempty"`
	Success      bool                   `json:"success"`
	Error        string                 `json:"error,omitempty"`
	FindingCount int                    `json:"finding_count,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}
