package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/blooprint/pkg/errhttp"
	"github.com/ghuser/blooprint/pkg/httpx"
	pkgvalidator "github.com/ghuser/blooprint/pkg/validator"
	appsvcs "github.com/ghuser/blooprint/services/identity/application/services"
)

// RegisterRequest is the request body for POST /register/.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150" example:"alice"`
	Password string `json:"password" validate:"required,min=8"         example:"s3cret-pass"`
} // @name RegisterRequest

// RegisterResponse is returned on successful registration. The password hash
// is never exposed.
type RegisterResponse struct {
	ID        int64     `json:"id"         example:"1"`
	Username  string    `json:"username"   example:"alice"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name RegisterResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"user already exists"`
} // @name AuthErrorResponse

// RegisterHandler handles POST /register/ requests.
type RegisterHandler struct {
	svc *appsvcs.Services
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Execute registers a new user.
//
//	@Summary		Register user
//	@Description	Creates a user account; the username must be unique
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	RegisterResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/register/ [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}
