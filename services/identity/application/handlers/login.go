package handlers

import (
	"net/http"

	"github.com/ghuser/blooprint/pkg/errhttp"
	"github.com/ghuser/blooprint/pkg/httpx"
	pkgvalidator "github.com/ghuser/blooprint/pkg/validator"
	appsvcs "github.com/ghuser/blooprint/services/identity/application/services"
)

// LoginRequest is the request body for POST /login/.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
} // @name LoginRequest

// LoginResponse carries the bearer access token for authenticated requests.
type LoginResponse struct {
	AccessToken string `json:"access_token" example:"dGhpcy1pcy1hLXRva2Vu"`
	TokenType   string `json:"token_type"   example:"Bearer"`
} // @name LoginResponse

// LoginHandler handles POST /login/ requests.
type LoginHandler struct {
	svc *appsvcs.Services
}

// NewLoginHandler returns a LoginHandler backed by the given services.
func NewLoginHandler(svc *appsvcs.Services) *LoginHandler {
	return &LoginHandler{svc: svc}
}

// Execute verifies credentials and issues a bearer access token.
//
//	@Summary		Login
//	@Description	Exchanges username/password for a bearer access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/login/ [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	token, err := h.svc.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
