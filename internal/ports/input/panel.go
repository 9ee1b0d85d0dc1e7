package input

import (
	"context"

	"mysterybot/internal/domain/entities"
)

type PanelUseCase interface {
	// CreatePanel renders the announcement image and the carrier text holding
	// the encoded role pair. Both role ids must be set.
	CreatePanel(ctx context.Context, locale string, spec entities.EventSpec, roles entities.RolePair) (png []byte, carrier string, err error)
}
