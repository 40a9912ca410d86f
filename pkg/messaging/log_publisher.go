package messaging

import (
	"context"
	"fmt"
	"log/slog"
)

// LogPublisher publishes events as structured log records.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}
	p.logger.InfoContext(ctx, "Event published", "subject", event.Subject(), "payload", string(data))
	return nil
}
