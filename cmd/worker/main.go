package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/blooprint/pkg/app"
	"github.com/ghuser/blooprint/pkg/cache"
	"github.com/ghuser/blooprint/pkg/config"
	"github.com/ghuser/blooprint/pkg/database"
	"github.com/ghuser/blooprint/pkg/events"
	"github.com/ghuser/blooprint/pkg/logger"
	"github.com/ghuser/blooprint/pkg/telemetry"
	"github.com/ghuser/blooprint/pkg/workflows"
	itemEvents "github.com/ghuser/blooprint/services/inventory/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	// Workflow engine is optional; audit subscribers run without it.
	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Warn("temporal unavailable, continuing without workflow support", "error", err)
	} else {
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// auditTopics lists every item lifecycle topic the worker records.
var auditTopics = []string{
	itemEvents.TopicItemCreated,
	itemEvents.TopicItemUpdated,
	itemEvents.TopicItemDeleted,
}

// registerSubscribers wires the audit-trail handler to all item topics.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	for _, topic := range auditTopics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleItemAudit(a, topic))
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", auditTopics)
	return nil
}

// handleItemAudit returns a handler that records an audit-trail entry per
// item lifecycle event. Handlers must be idempotent; EventBus retries up to
// 3× on failure. The handler deliberately does not touch the item caches:
// newly created items are not pre-populated and mutation invalidation already
// happened synchronously on the write path.
func handleItemAudit(a *app.Application, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "item audit",
			"topic", topic,
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"name", evt.Name,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}
