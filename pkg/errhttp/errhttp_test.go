package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	userdomain "github.com/ghuser/blooprint/services/identity/domain"
	itemdomain "github.com/ghuser/blooprint/services/inventory/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"item not found", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"wrapped item not found", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound},
		{"item already exists", itemdomain.ErrItemAlreadyExists, http.StatusBadRequest},
		{"invalid item", itemdomain.ErrInvalidItem, http.StatusBadRequest},
		{"doubly wrapped invalid item", fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, errors.New("name is required")), http.StatusBadRequest},
		{"user already exists", userdomain.ErrUserAlreadyExists, http.StatusBadRequest},
		{"invalid credentials", userdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", userdomain.ErrUserNotFound, http.StatusNotFound},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v (body: %s)", err, rec.Body.String())
			}
			if body["error"] == "" {
				t.Fatal("expected a non-empty error message")
			}
		})
	}
}
