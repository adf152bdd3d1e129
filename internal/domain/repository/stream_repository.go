package repository

import (
	"context"
)

// StreamRepository publishes events for downstream consumers
type StreamRepository interface {
	// PublishToStream appends data (JSON-encoded) to the stream
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
