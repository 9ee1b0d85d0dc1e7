package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"mysterybot/internal/domain"
	"mysterybot/internal/ports/output"
)

var _ output.RoleDirectory = (*RoleDirectory)(nil)

// RoleDirectory implements the role port on top of a discordgo session,
// preferring the state cache and falling back to the REST API.
type RoleDirectory struct {
	session *discordgo.Session
}

func NewRoleDirectory(session *discordgo.Session) *RoleDirectory {
	return &RoleDirectory{session: session}
}

func (d *RoleDirectory) RoleName(_ context.Context, guildID string, roleID uint64) (string, error) {
	id := strconv.FormatUint(roleID, 10)
	if role, err := d.session.State.Role(guildID, id); err == nil {
		return role.Name, nil
	}
	roles, err := d.session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("list roles: %w", err)
	}
	for _, role := range roles {
		if role.ID == id {
			return role.Name, nil
		}
	}
	return "", domain.ErrRoleNotFound
}

func (d *RoleDirectory) HasRole(_ context.Context, guildID, userID string, roleID uint64) (bool, error) {
	member, err := d.session.State.Member(guildID, userID)
	if err != nil {
		member, err = d.session.GuildMember(guildID, userID)
		if err != nil {
			return false, fmt.Errorf("get member: %w", err)
		}
	}
	id := strconv.FormatUint(roleID, 10)
	for _, r := range member.Roles {
		if r == id {
			return true, nil
		}
	}
	return false, nil
}

func (d *RoleDirectory) GrantRole(_ context.Context, guildID, userID string, roleID uint64) error {
	return d.session.GuildMemberRoleAdd(guildID, userID, strconv.FormatUint(roleID, 10))
}

func (d *RoleDirectory) RevokeRole(_ context.Context, guildID, userID string, roleID uint64) error {
	return d.session.GuildMemberRoleRemove(guildID, userID, strconv.FormatUint(roleID, 10))
}

func (d *RoleDirectory) MembersWithRole(_ context.Context, guildID string, roleID uint64) ([]string, error) {
	id := strconv.FormatUint(roleID, 10)
	var out []string
	after := ""
	for {
		members, err := d.session.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		if len(members) == 0 {
			break
		}
		for _, m := range members {
			for _, r := range m.Roles {
				if r == id {
					out = append(out, m.User.ID)
					break
				}
			}
		}
		after = members[len(members)-1].User.ID
		if len(members) < 1000 {
			break
		}
	}
	return out, nil
}
