package handlers

import (
	"net/http"

	"github.com/ghuser/blooprint/pkg/errhttp"
	"github.com/ghuser/blooprint/pkg/httpx"
	pkgvalidator "github.com/ghuser/blooprint/pkg/validator"
	appsvcs "github.com/ghuser/blooprint/services/inventory/application/services"
	itemdomain "github.com/ghuser/blooprint/services/inventory/domain"
)

// UpdateItemRequest is the request body for PUT /items/{id}/. Both fields are
// required: updates are full replacements, not partial patches.
type UpdateItemRequest struct {
	Name        string `json:"name"        validate:"required,max=255" example:"Updated Laptop"`
	Description string `json:"description" validate:"required"         example:"new desc"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id}/ requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces an item's fields.
//
//	@Summary		Update item
//	@Description	Full replacement of name and description; invalidates the item cache entry
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id}/ [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		errhttp.WriteError(w, itemdomain.ErrItemNotFound)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
