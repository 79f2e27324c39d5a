package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	inventorydomain "github.com/ghuser/assettrack/services/inventory/domain"
	prefdomain "github.com/ghuser/assettrack/services/preferences/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrBlockNotFound", inventorydomain.ErrBlockNotFound, http.StatusNotFound},
		{"ErrRoomNotFound", inventorydomain.ErrRoomNotFound, http.StatusNotFound},
		{"ErrItemNotFound", inventorydomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrInvalidName", inventorydomain.ErrInvalidName, http.StatusUnprocessableEntity},
		{"ErrInvalidQuantity", inventorydomain.ErrInvalidQuantity, http.StatusUnprocessableEntity},
		{"ErrInvalidUnitPrice", inventorydomain.ErrInvalidUnitPrice, http.StatusUnprocessableEntity},
		{"ErrInvalidSeed", inventorydomain.ErrInvalidSeed, http.StatusUnprocessableEntity},
		{"ErrInvalidTheme", prefdomain.ErrInvalidTheme, http.StatusUnprocessableEntity},
		{"ErrInvalidLogo", prefdomain.ErrInvalidLogo, http.StatusUnprocessableEntity},
		{"ErrLogoTooLarge", prefdomain.ErrLogoTooLarge, http.StatusRequestEntityTooLarge},
		{"wrapped ErrRoomNotFound", fmt.Errorf("list items: %w", inventorydomain.ErrRoomNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidName", fmt.Errorf("%w: too long", inventorydomain.ErrInvalidName), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("redis down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if Status(tt.err) != tt.wantStatus {
				t.Fatalf("Status: expected %d, got %d", tt.wantStatus, Status(tt.err))
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("%w: name must not be empty", inventorydomain.ErrInvalidName))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "invalid name: name must not be empty" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("dial tcp 10.0.0.5:6379: connection refused"))

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("internal error leaked: %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, inventorydomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
