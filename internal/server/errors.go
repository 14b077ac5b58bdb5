package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/trackmycareer/careertrack/internal/ingestion"
	"github.com/trackmycareer/careertrack/internal/relay"
)

// ErrValidation indicates request validation failure: the upload is
// rejected locally, before any forwarding.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps an error to the status code the client sees.
// Backend trouble is split so timeouts are distinguishable from
// unreachable or failing backends.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		timeoutErr    *relay.TimeoutError
		transportErr  *relay.TransportError
		backendErr    *relay.BackendError
		ingestErr     *ingestion.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &ingestErr):
		return http.StatusBadRequest
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout
	case errors.As(err, &transportErr), errors.As(err, &backendErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns the error text exposed to clients. Validation
// and ingestion problems are safe to surface; backend detail is
// logged server-side only.
func clientMessage(err error) string {
	var (
		validationErr *ErrValidation
		timeoutErr    *relay.TimeoutError
		ingestErr     *ingestion.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &ingestErr):
		return ingestErr.Message
	case errors.As(err, &timeoutErr):
		return "analysis timed out, please try again"
	case HTTPStatus(err) == http.StatusBadGateway:
		return "analysis backend unavailable"
	default:
		return "analysis failed"
	}
}
