package models

import (
	"fmt"
	"strings"
	"time"
)

const maxFieldLength = 255

// Item is the core aggregate for the inventory bounded context.
// The ID is assigned by the store at insert time and is immutable after that;
// UpdatedAt is refreshed on every successful update and is never earlier
// than CreatedAt.
type Item struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs a valid Item with both timestamps set to the current
// time. The ID is zero until the repository persists the item.
func NewItem(name, description string) (*Item, error) {
	if err := validateFields(name, description); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Item{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Replace performs a full replacement of the mutable fields and refreshes
// UpdatedAt. Partial patches are not supported.
func (i *Item) Replace(name, description string) error {
	if err := validateFields(name, description); err != nil {
		return err
	}
	i.Name = name
	i.Description = description
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func validateFields(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(name) > maxFieldLength {
		return fmt.Errorf("name must not exceed %d characters", maxFieldLength)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description must not be empty")
	}
	return nil
}
