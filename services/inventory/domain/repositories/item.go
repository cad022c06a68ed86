package repositories

import (
	"context"

	"github.com/ghuser/blooprint/services/inventory/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Implementations return the domain sentinel errors: ErrItemNotFound when no
// row matches and ErrItemAlreadyExists on a name collision.
type ItemRepository interface {
	// Create persists a new Item. The store assigns the ID and the assigned
	// value is written back into item.ID.
	Create(ctx context.Context, item *models.Item) error

	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// FindAll retrieves every item ordered by ID.
	FindAll(ctx context.Context) ([]*models.Item, error)

	// Update persists a full replacement of an existing Item's fields.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id int64) error
}
