package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/blooprint/services/inventory/domain/models"
)

// ItemResponse is the JSON representation of an Item. Timestamps are RFC 3339.
type ItemResponse struct {
	ID          int64     `json:"id"          example:"1"`
	Name        string    `json:"name"        example:"Laptop"`
	Description string    `json:"description" example:"A brand new laptop"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// itemID extracts the {id} route parameter. ok=false means the path segment
// is not a valid item identifier, which handlers treat as not found.
func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
