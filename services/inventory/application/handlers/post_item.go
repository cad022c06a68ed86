package handlers

import (
	"net/http"

	"github.com/ghuser/blooprint/pkg/errhttp"
	"github.com/ghuser/blooprint/pkg/httpx"
	pkgvalidator "github.com/ghuser/blooprint/pkg/validator"
	appsvcs "github.com/ghuser/blooprint/services/inventory/application/services"
)

// CreateItemRequest is the request body for POST /items/.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,max=255" example:"Laptop"`
	Description string `json:"description" validate:"required"         example:"A brand new laptop"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items/ requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a new inventory item; the name must be unique
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/items/ [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
