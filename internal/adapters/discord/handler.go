package discord

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	"mysterybot/internal/domain"
	"mysterybot/internal/ports/input"
	"mysterybot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	panelUseCase  input.PanelUseCase
	signupUseCase input.SignupUseCase
	translator    output.T
	allowedRoleID uint64
	defaultRoles  defaultRolePair
}

type defaultRolePair struct {
	participant uint64
	spectator   uint64
}

// NewHandler creates a Handler.
func NewHandler(
	panelUseCase input.PanelUseCase,
	signupUseCase input.SignupUseCase,
	translator output.T,
	allowedRoleID uint64,
	defaultParticipantRoleID, defaultSpectatorRoleID uint64,
) *Handler {
	return &Handler{
		panelUseCase:  panelUseCase,
		signupUseCase: signupUseCase,
		translator:    translator,
		allowedRoleID: allowedRoleID,
		defaultRoles: defaultRolePair{
			participant: defaultParticipantRoleID,
			spectator:   defaultSpectatorRoleID,
		},
	}
}

func (h *Handler) translate(locale, key string, data map[string]any) string {
	return h.translator.T(locale, key, data)
}

// errorMessage resolves err to a user-facing message via the domain error
// code, falling back to the generic one.
func (h *Handler) errorMessage(locale string, err error) string {
	if code := domain.Code(err); code != "" {
		return h.translate(locale, "errors."+code, nil)
	}
	return h.translate(locale, "errors.generic", nil)
}

// isAllowed gates panel creation: when no allowed role is configured everyone
// may create panels, otherwise the member must hold it.
func (h *Handler) isAllowed(member *discordgo.Member) bool {
	if h.allowedRoleID == 0 {
		return true
	}
	if member == nil {
		return false
	}
	want := strconv.FormatUint(h.allowedRoleID, 10)
	for _, id := range member.Roles {
		if id == want {
			return true
		}
	}
	return false
}

// isAdminOrAllowed gates the administrative commands.
func (h *Handler) isAdminOrAllowed(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return h.allowedRoleID != 0 && h.isAllowed(member)
}
