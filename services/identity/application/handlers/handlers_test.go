package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	appsvcs "github.com/ghuser/blooprint/services/identity/application/services"
	userdomain "github.com/ghuser/blooprint/services/identity/domain"
	"github.com/ghuser/blooprint/services/identity/domain/models"
)

type memUserRepo struct {
	users  map[string]models.User
	nextID int64
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return userdomain.ErrUserAlreadyExists
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = *user
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &user, nil
}

type memIssuer struct{}

func (memIssuer) Issue(_ context.Context, _ int64) (string, error) {
	return "issued-token", nil
}

func newAuthRouter() *chi.Mux {
	repo := &memUserRepo{users: make(map[string]models.User)}
	svcs := &appsvcs.Services{Auth: appsvcs.NewAuthService(repo, memIssuer{})}

	r := chi.NewRouter()
	r.Post("/register/", NewRegisterHandler(svcs).Execute)
	r.Post("/login/", NewLoginHandler(svcs).Execute)
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates a user", func(t *testing.T) {
		router := newAuthRouter()
		rec := postJSON(t, router, "/register/", `{"username":"alice","password":"s3cret-pass"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
		}

		var resp RegisterResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.ID != 1 || resp.Username != "alice" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if strings.Contains(rec.Body.String(), "password") {
			t.Fatal("response must not carry password material")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		router := newAuthRouter()
		postJSON(t, router, "/register/", `{"username":"alice","password":"s3cret-pass"}`)
		rec := postJSON(t, router, "/register/", `{"username":"alice","password":"other-pass1"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid bodies", func(t *testing.T) {
		router := newAuthRouter()
		for _, body := range []string{
			`{"username":"alice"}`,
			`{"password":"s3cret-pass"}`,
			`{"username":"ab","password":"s3cret-pass"}`,
			`{"username":"alice","password":"short"}`,
			`not json`,
		} {
			if rec := postJSON(t, router, "/register/", body); rec.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
			}
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("valid credentials yield a bearer token", func(t *testing.T) {
		router := newAuthRouter()
		postJSON(t, router, "/register/", `{"username":"alice","password":"s3cret-pass"}`)

		rec := postJSON(t, router, "/login/", `{"username":"alice","password":"s3cret-pass"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
		}

		var resp LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.AccessToken == "" || resp.TokenType != "Bearer" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		router := newAuthRouter()
		postJSON(t, router, "/register/", `{"username":"alice","password":"s3cret-pass"}`)

		for _, body := range []string{
			`{"username":"alice","password":"wrong-pass"}`,
			`{"username":"nobody","password":"s3cret-pass"}`,
		} {
			if rec := postJSON(t, router, "/login/", body); rec.Code != http.StatusUnauthorized {
				t.Fatalf("body %s: expected 401, got %d", body, rec.Code)
			}
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		router := newAuthRouter()
		if rec := postJSON(t, router, "/login/", `{"username":"alice"}`); rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
