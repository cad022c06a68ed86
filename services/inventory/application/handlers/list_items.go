package handlers

import (
	"net/http"

	"github.com/ghuser/blooprint/pkg/errhttp"
	"github.com/ghuser/blooprint/pkg/httpx"
	appsvcs "github.com/ghuser/blooprint/services/inventory/application/services"
)

// ListItemsHandler handles GET /items-list/ requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists all items.
//
//	@Summary		List items
//	@Description	Returns every item; served from the aggregate cache when fresh
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}	ItemResponse
//	@Router			/items-list/ [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
