package handlers

import (
	"net/http"

	"github.com/ghuser/blooprint/pkg/errhttp"
	"github.com/ghuser/blooprint/pkg/httpx"
	appsvcs "github.com/ghuser/blooprint/services/inventory/application/services"
	itemdomain "github.com/ghuser/blooprint/services/inventory/domain"
)

// GetItemHandler handles GET /items/{id}/ requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute retrieves a single item by ID.
//
//	@Summary		Get item
//	@Description	Retrieves an item; hot lookups are served from cache
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id}/ [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		errhttp.WriteError(w, itemdomain.ErrItemNotFound)
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
