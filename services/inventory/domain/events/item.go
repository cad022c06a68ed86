package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published on item lifecycle transitions.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemEvent is published after an item mutation is persisted. The same shape
// is used for all three topics; Name and Description carry the post-mutation
// values and are empty for deletions.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItem*).
type ItemEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      int64     `json:"item_id"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
