// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// BackoffBaseDelay controls the base duration for exponential backoff between
// attempts. Tests override this to avoid real sleeps.
var BackoffBaseDelay = 1 * time.Second

// backoffSleep waits for the backoff delay or until the context is cancelled.
// Injectable so tests can record the schedule.
var backoffSleep = func(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// ErrTimeout marks a request that exhausted its retries with the last attempt
// aborted on its deadline. Callers detect it with errors.Is.
var ErrTimeout = errors.New("request timed out")

// DoWithRetry executes an HTTP request with a hard per-attempt deadline and
// retries failed attempts with exponential backoff. The delay before retry k
// (1-indexed) is 2^(k-1) * BackoffBaseDelay: 1 s, 2 s, 4 s, ...
//
// Any transport failure triggers a retry, including an attempt aborted on its
// deadline. HTTP status codes are not failures; every received response is
// returned as-is. Request bodies are replayed via Request.GetBody on each
// attempt. After exhausting maxRetries additional attempts the last error is
// returned unchanged, except that a final deadline abort is reported as
// ErrTimeout.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, timeout time.Duration, maxRetries int) (*http.Response, error) {
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		resp, err := doAttempt(ctx, client, req, timeout)
		if err == nil {
			return resp, nil
		}

		// The caller going away is not retryable.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err

		if attempt >= maxRetries {
			if errors.Is(lastErr, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w after %d attempts", ErrTimeout, maxRetries+1)
			}
			return nil, lastErr
		}

		backoff := time.Duration(1<<attempt) * BackoffBaseDelay
		if err := backoffSleep(ctx, backoff); err != nil {
			return nil, err
		}
	}
}

// doAttempt runs a single attempt under its own deadline. The deadline stays
// armed until the response body is closed.
func doAttempt(ctx context.Context, client *http.Client, req *http.Request, timeout time.Duration) (*http.Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)

	clone := req.Clone(attemptCtx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			cancel()
			return nil, fmt.Errorf("rewinding request body: %w", err)
		}
		clone.Body = body
	}

	resp, err := client.Do(clone)
	if err != nil {
		cancel()
		return nil, err
	}

	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelOnClose releases the attempt context when the body is closed, so the
// deadline covers body reads without killing them early.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
