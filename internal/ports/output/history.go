package output

import (
	"context"

	"mysterybot/internal/domain/entities"
)

// HistoryLog appends registered play sessions to durable storage.
type HistoryLog interface {
	Append(ctx context.Context, rec entities.HistoryRecord) error
}
