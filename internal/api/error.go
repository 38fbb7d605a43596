// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api is the typed client for the verification backend. Each
// operation wraps the retrying transport in internal/httputil with its own
// timeout and retry policy, decodes the raw payload, and hands it to
// internal/normalize so callers only ever see pkg/types values.
package api

import (
	"encoding/json"
	"fmt"
)

// Error is the single failure type raised by the client. Status follows HTTP
// conventions so callers can branch deterministically:
//
//	0    no connection, transport-level failure
//	408  timed out after exhausting retries
//	400  input rejected before any request was sent
//	4xx/5xx  backend-reported failure (Body retained for diagnostics)
//	500  structurally invalid response despite a 2xx status
type Error struct {
	Message string
	Status  int

	// Body is the raw response body when one was received.
	Body string

	cause error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// errorBody is the backend's error envelope on non-2xx responses. FastAPI
// style uses "detail"; older releases used "error".
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

// messageFromBody extracts the most useful human-readable message from an
// error response body, falling back to a generic status line.
func messageFromBody(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if len(eb.Detail) > 0 {
			var s string
			if json.Unmarshal(eb.Detail, &s) == nil && s != "" {
				return s
			}
			return string(eb.Detail)
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
