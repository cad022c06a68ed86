package handlers

import (
	"net/http"

	"github.com/ghuser/blooprint/pkg/errhttp"
	appsvcs "github.com/ghuser/blooprint/services/inventory/application/services"
	itemdomain "github.com/ghuser/blooprint/services/inventory/domain"
)

// DeleteItemHandler handles DELETE /items/{id}/ requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item.
//
//	@Summary		Delete item
//	@Description	Removes an item and invalidates its cache entry
//	@Tags			items
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Item ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id}/ [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		errhttp.WriteError(w, itemdomain.ErrItemNotFound)
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
