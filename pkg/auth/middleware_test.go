package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/blooprint/pkg/config"
	"github.com/ghuser/blooprint/pkg/logger"
)

// verifierFunc adapts a function to the TokenVerifier interface.
type verifierFunc func(ctx context.Context, token string) (int64, error)

func (f verifierFunc) Verify(ctx context.Context, token string) (int64, error) {
	return f(ctx, token)
}

func TestRequireAuth(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})
	verifier := verifierFunc(func(_ context.Context, token string) (int64, error) {
		if token == "valid-token" {
			return 7, nil
		}
		return 0, ErrInvalidToken
	})

	var gotUserID int64
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		gotUserID, _ = UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(verifier, log)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{"valid token", "Bearer valid-token", http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"unknown token", "Bearer bogus", http.StatusUnauthorized, false},
		{"wrong scheme", "Basic valid-token", http.StatusUnauthorized, false},
		{"bare token without scheme", "valid-token", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled, gotUserID = false, 0

			req := httptest.NewRequest(http.MethodPost, "/items/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if nextCalled != tt.wantNext {
				t.Fatalf("next called = %v, want %v", nextCalled, tt.wantNext)
			}
			if tt.wantNext && gotUserID != 7 {
				t.Fatalf("expected user ID 7 in context, got %d", gotUserID)
			}
		})
	}
}

func TestUserIDFromCtx(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := WithUserID(context.Background(), 42)
		id, err := UserIDFromCtx(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 42 {
			t.Fatalf("expected 42, got %d", id)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, err := UserIDFromCtx(context.Background()); err != ErrUserIDNotFound {
			t.Fatalf("expected ErrUserIDNotFound, got %v", err)
		}
	})

	t.Run("zero is treated as absent", func(t *testing.T) {
		ctx := WithUserID(context.Background(), 0)
		if _, err := UserIDFromCtx(ctx); err != ErrUserIDNotFound {
			t.Fatalf("expected ErrUserIDNotFound, got %v", err)
		}
	})
}
