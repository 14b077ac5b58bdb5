package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/trackmycareer/careertrack/internal/ingestion"
	"github.com/trackmycareer/careertrack/internal/relay"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "target_role", Message: "required"}, http.StatusBadRequest},
		{"ingestion", &ingestion.Error{Filename: "r.pdf", Message: "invalid or corrupted PDF"}, http.StatusBadRequest},
		{"timeout", &relay.TimeoutError{URL: "http://b"}, http.StatusGatewayTimeout},
		{"transport", &relay.TransportError{URL: "http://b"}, http.StatusBadGateway},
		{"backend", &relay.BackendError{URL: "http://b", StatusCode: 500}, http.StatusBadGateway},
		{"wrapped timeout", fmt.Errorf("forwarding: %w", &relay.TimeoutError{URL: "http://b"}), http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("%s: HTTPStatus = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestClientMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation surfaces message", &ErrValidation{Field: "f", Message: "f is required"}, "f is required"},
		{"ingestion surfaces message", &ingestion.Error{Filename: "r.pdf", Message: "invalid or corrupted PDF"}, "invalid or corrupted PDF"},
		{"timeout is generic", &relay.TimeoutError{URL: "http://secret-backend"}, "analysis timed out, please try again"},
		{"transport hides detail", &relay.TransportError{URL: "http://secret-backend", Cause: errors.New("dial tcp")}, "analysis backend unavailable"},
		{"backend hides detail", &relay.BackendError{URL: "http://secret-backend", StatusCode: 500}, "analysis backend unavailable"},
		{"unknown is generic", errors.New("nil pointer somewhere"), "analysis failed"},
	}
	for _, tt := range tests {
		got := clientMessage(tt.err)
		if got != tt.want {
			t.Errorf("%s: clientMessage = %q, want %q", tt.name, got, tt.want)
		}
	}
}
