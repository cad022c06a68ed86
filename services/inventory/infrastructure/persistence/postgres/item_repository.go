package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/blooprint/pkg/database"
	"github.com/ghuser/blooprint/pkg/events"
	itemdomain "github.com/ghuser/blooprint/services/inventory/domain"
	domainevents "github.com/ghuser/blooprint/services/inventory/domain/events"
	"github.com/ghuser/blooprint/services/inventory/domain/models"
)

const pgUniqueViolation = "23505"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// The unique index on items.name is the atomic uniqueness guarantee for
// create; its violation surfaces as ErrItemAlreadyExists rather than a racy
// check-then-act in the service layer.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus is used to publish item lifecycle events within
// the same transaction as the mutation (outbox pattern).
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Create persists a new Item and publishes item.created within the same
// transaction. The store-assigned ID is written back into item.ID.
// Returns ErrItemAlreadyExists on a name collision.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO items (name, description, created_at, updated_at)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			item.Name, item.Description, item.CreatedAt, item.UpdatedAt,
		).Scan(&item.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		return r.publish(tx, domainevents.TopicItemCreated, item.ID, item.Name, item.Description, item.CreatedAt)
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if no row matches.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM items WHERE id = $1`,
		id,
	).Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

// FindAll retrieves every item ordered by ID.
func (r *ItemRepository) FindAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Update persists a full replacement of an existing Item's fields and
// publishes item.updated within the same transaction.
// Returns ErrItemNotFound when no row matches and ErrItemAlreadyExists when
// the new name collides with another item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE items SET name = $1, description = $2, updated_at = $3
			 WHERE id = $4`,
			item.Name, item.Description, item.UpdatedAt, item.ID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("update item: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("update item rows affected: %w", err)
		} else if n == 0 {
			return itemdomain.ErrItemNotFound
		}

		return r.publish(tx, domainevents.TopicItemUpdated, item.ID, item.Name, item.Description, item.UpdatedAt)
	})
}

// Delete removes an item by ID and publishes item.deleted within the same
// transaction. Returns ErrItemNotFound when no row matches.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("delete item rows affected: %w", err)
		} else if n == 0 {
			return itemdomain.ErrItemNotFound
		}

		return r.publish(tx, domainevents.TopicItemDeleted, id, "", "", time.Now().UTC())
	})
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, itemID int64, name, description string, occurredAt time.Time) error {
	if r.bus == nil {
		return nil
	}

	event := domainevents.ItemEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      itemID,
		Name:        name,
		Description: description,
		OccurredAt:  occurredAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
