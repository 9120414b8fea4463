package events

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// LogPublisher writes events to the log. It is used when SNS is not configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "event_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, event ports.Event) error {
	body, err := encode(event)
	if err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "Event published", "event", event.EventName(), "body", string(body))
	return nil
}
