// Package relay forwards analyze uploads to an external analysis
// backend and owns the request-scoped temp file lifecycle.
package relay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Fields is the analyze form contract forwarded to the backend.
// ResumeText and TargetRole are always sent; the file part only when
// a file was uploaded.
type Fields struct {
	ResumeText     string
	TargetRole     string
	JobDescription string
	FileName       string
	File           []byte
}

// TimeoutError indicates the backend call exceeded its deadline.
type TimeoutError struct {
	URL   string
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("backend call to %s timed out: %v", e.URL, e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// TransportError indicates the backend could not be reached.
type TransportError struct {
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend call to %s failed: %v", e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// BackendError indicates a non-2xx response from the backend.
type BackendError struct {
	URL        string
	StatusCode int
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s returned status %d", e.URL, e.StatusCode)
}

// Forwarder re-encodes analyze uploads as multipart requests to the
// backend. It is stateless and safe for concurrent use.
type Forwarder struct {
	backendURL string
	client     *http.Client
	retries    int
}

// NewForwarder builds a Forwarder. retries is the number of extra
// attempts after a transport failure; backend error statuses are
// never retried.
func NewForwarder(backendURL string, timeout time.Duration, retries int) *Forwarder {
	if retries < 0 {
		retries = 0
	}
	return &Forwarder{
		backendURL: backendURL,
		client:     &http.Client{Timeout: timeout},
		retries:    retries,
	}
}

// Forward sends the fields to the backend and returns its response
// body unchanged. The body is never reshaped or validated here; shape
// handling is the client-side store's job.
func (f *Forwarder) Forward(ctx context.Context, fields Fields) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		body, err := f.forwardOnce(ctx, fields)
		if err == nil {
			return body, nil
		}
		lastErr = err

		// only transport failures are worth retrying
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (f *Forwarder) forwardOnce(ctx context.Context, fields Fields) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("resume_text", fields.ResumeText); err != nil {
		return nil, fmt.Errorf("failed to encode resume_text: %w", err)
	}
	if err := writer.WriteField("target_role", fields.TargetRole); err != nil {
		return nil, fmt.Errorf("failed to encode target_role: %w", err)
	}
	if fields.JobDescription != "" {
		if err := writer.WriteField("job_description", fields.JobDescription); err != nil {
			return nil, fmt.Errorf("failed to encode job_description: %w", err)
		}
	}
	if fields.File != nil {
		part, err := writer.CreateFormFile("resume", fields.FileName)
		if err != nil {
			return nil, fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(fields.File); err != nil {
			return nil, fmt.Errorf("failed to write file part: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.backendURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: f.backendURL, Cause: err}
		}
		return nil, &TransportError{URL: f.backendURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: f.backendURL, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{URL: f.backendURL, StatusCode: resp.StatusCode}
	}
	return body, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
