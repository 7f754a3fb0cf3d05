package domain

import "time"

// SentinelExitCode is reported when the sandboxed process never produced a
// real exit status (timeout or a runtime-level failure).
const SentinelExitCode = -1

// ExecutionRequest represents a single free-form code execution request
type ExecutionRequest struct {
	Source  string
	Stdin   string
	Timeout time.Duration
}

// RawRunResult represents the raw outcome of one sandboxed run as reported
// by the runtime adapter. Stdout and stderr are captured as one stream.
type RawRunResult struct {
	ExitCode int
	Output   string
	TimedOut bool
}

// ExecutionResult represents the normalized outcome of one execution
type ExecutionResult struct {
	ExecutionID string `json:"execution_id"`
	Success     bool   `json:"success"`
	Output      string `json:"output"`
	Error       string `json:"error,omitempty"`
	WallClockMs int64  `json:"execution_time"`
	ExitCode    int    `json:"exit_code"`
}
