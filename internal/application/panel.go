package application

import (
	"context"
	"fmt"

	"mysterybot/internal/domain"
	"mysterybot/internal/domain/entities"
	"mysterybot/internal/payload"
	"mysterybot/internal/ports/input"
	"mysterybot/internal/ports/output"
	"mysterybot/internal/render"
)

var _ input.PanelUseCase = (*PanelService)(nil)

type PanelService struct {
	renderer   *render.Renderer
	translator output.T
	style      render.Style
	defaultBG  string
}

func NewPanelService(renderer *render.Renderer, translator output.T, style render.Style, defaultBG string) *PanelService {
	return &PanelService{
		renderer:   renderer,
		translator: translator,
		style:      style,
		defaultBG:  defaultBG,
	}
}

// CreatePanel renders spec into a PNG panel and encodes roles into the
// invisible carrier text the signup buttons read back later.
func (s *PanelService) CreatePanel(ctx context.Context, locale string, spec entities.EventSpec, roles entities.RolePair) ([]byte, string, error) {
	if roles.Participant == 0 || roles.Spectator == 0 {
		return nil, "", domain.ErrRoleNotConfigured
	}
	if spec.BackgroundURL == "" {
		spec.BackgroundURL = s.defaultBG
	}

	style := s.style
	style.Labels = render.Labels{
		Date:        s.translator.T(locale, "panel.label.date", nil),
		Players:     s.translator.T(locale, "panel.label.players", nil),
		PlayersUnit: s.translator.T(locale, "panel.players_unit", nil),
		Duration:    s.translator.T(locale, "panel.label.duration", nil),
		Note:        s.translator.T(locale, "panel.label.note", nil),
		Footer:      s.translator.T(locale, "panel.footer", nil),
	}

	img, err := s.renderer.RenderPanel(ctx, spec, style)
	if err != nil {
		return nil, "", fmt.Errorf("render panel: %w", err)
	}
	return img, payload.Hide(roles.Encode()), nil
}
