package testutil

import (
	"encoding/json"
	"strings"
	"testing"
)

// CLIResult is a parsed JSON envelope printed by a command run with --json.
type CLIResult struct {
	OK       bool
	Data     map[string]interface{}
	Error    *CLIError
	Warnings []CLIWarning
	Meta     *CLIMeta
	RawJSON  string
}

// CLIError represents a structured error from the CLI.
type CLIError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// CLIWarning represents a warning from the CLI.
type CLIWarning struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// CLIMeta contains metadata from the response.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// ParseResult decodes raw command output as a JSON envelope.
func ParseResult(t *testing.T, raw string) *CLIResult {
	t.Helper()

	var resp struct {
		OK       bool                   `json:"ok"`
		Data     map[string]interface{} `json:"data"`
		Error    *CLIError              `json:"error"`
		Warnings []CLIWarning           `json:"warnings"`
		Meta     *CLIMeta               `json:"meta"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &resp); err != nil {
		t.Fatalf("expected a single JSON envelope, got parse error: %v\nRaw output: %s", err, raw)
	}

	return &CLIResult{
		OK:       resp.OK,
		Data:     resp.Data,
		Error:    resp.Error,
		Warnings: resp.Warnings,
		Meta:     resp.Meta,
		RawJSON:  raw,
	}
}

// MustSucceed fails the test if the CLI command did not succeed.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		errMsg := "unknown error"
		if r.Error != nil {
			errMsg = r.Error.Code + ": " + r.Error.Message
		}
		t.Fatalf("expected command to succeed, got error: %s\nRaw output: %s", errMsg, r.RawJSON)
	}
	return r
}

// MustFail fails the test if the CLI command did not fail with the expected code.
func (r *CLIResult) MustFail(t *testing.T, expectedCode string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected command to fail with code %s, but it succeeded\nRaw output: %s", expectedCode, r.RawJSON)
	}
	if r.Error == nil {
		t.Fatalf("expected error with code %s, but error is nil\nRaw output: %s", expectedCode, r.RawJSON)
	}
	if r.Error.Code != expectedCode {
		t.Fatalf("expected error code %s, got %s: %s\nRaw output: %s", expectedCode, r.Error.Code, r.Error.Message, r.RawJSON)
	}
	return r
}

// DataList extracts a list from the Data field.
func (r *CLIResult) DataList(key string) []interface{} {
	if r.Data == nil {
		return nil
	}
	if list, ok := r.Data[key].([]interface{}); ok {
		return list
	}
	return nil
}

// DataString extracts a string from the Data field.
func (r *CLIResult) DataString(key string) string {
	if r.Data == nil {
		return ""
	}
	if s, ok := r.Data[key].(string); ok {
		return s
	}
	return ""
}

// DataInt extracts a number from the Data field.
func (r *CLIResult) DataInt(key string) int {
	if r.Data == nil {
		return 0
	}
	if n, ok := r.Data[key].(float64); ok {
		return int(n)
	}
	return 0
}
