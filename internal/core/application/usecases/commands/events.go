package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// publish sends event and only logs a failure: the state change it describes
// is already committed.
func publish(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, event ports.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "event", event.EventName(), "error", err)
	}
}
