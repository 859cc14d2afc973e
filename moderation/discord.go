package moderation

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MutedRoleName is the guild role that carries the mute marker.
const MutedRoleName = "Muted"

// SessionPlatform applies moderation side effects through a discordgo
// session.
type SessionPlatform struct {
	Session *discordgo.Session
	// ModeratorRole is the role name that keeps send permission in
	// locked channels.
	ModeratorRole string
}

func (p *SessionPlatform) EnsureMutedRole(guildID string) (string, error) {
	roles, err := p.Session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("error fetching guild roles: %w", err)
	}

	for _, role := range roles {
		if role.Name == MutedRoleName {
			return role.ID, nil
		}
	}

	// First mute in this guild: create the role with no permissions and
	// deny sending in every channel.
	role, err := p.Session.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        MutedRoleName,
		Permissions: new(int64),
	})
	if err != nil {
		return "", fmt.Errorf("error creating muted role: %w", err)
	}

	channels, err := p.Session.GuildChannels(guildID)
	if err != nil {
		return "", fmt.Errorf("error fetching guild channels: %w", err)
	}
	for _, channel := range channels {
		err = p.Session.ChannelPermissionSet(channel.ID, role.ID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages)
		if err != nil {
			return "", fmt.Errorf("error setting channel permissions for muted role: %w", err)
		}
		if channel.Type == discordgo.ChannelTypeGuildVoice {
			err = p.Session.ChannelPermissionSet(channel.ID, role.ID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionVoiceSpeak)
			if err != nil {
				return "", fmt.Errorf("error setting voice channel permissions for muted role: %w", err)
			}
		}
	}

	return role.ID, nil
}

func (p *SessionPlatform) EnsureModeratorRole(guildID string) (string, error) {
	roles, err := p.Session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("error fetching guild roles: %w", err)
	}

	for _, role := range roles {
		if strings.EqualFold(role.Name, p.ModeratorRole) {
			return role.ID, nil
		}
	}

	role, err := p.Session.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name: p.ModeratorRole,
	})
	if err != nil {
		return "", fmt.Errorf("error creating moderator role: %w", err)
	}
	return role.ID, nil
}

func (p *SessionPlatform) AddRole(guildID, userID, roleID string) error {
	return p.Session.GuildMemberRoleAdd(guildID, userID, roleID)
}

func (p *SessionPlatform) RemoveRole(guildID, userID, roleID string) error {
	return p.Session.GuildMemberRoleRemove(guildID, userID, roleID)
}

func (p *SessionPlatform) HasRole(guildID, userID, roleID string) (bool, error) {
	member, err := p.Session.GuildMember(guildID, userID)
	if err != nil {
		// A member who left the guild is simply no longer muted.
		if strings.Contains(err.Error(), "Unknown Member") {
			return false, nil
		}
		return false, fmt.Errorf("error fetching member: %w", err)
	}
	for _, id := range member.Roles {
		if id == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (p *SessionPlatform) Ban(guildID, userID, reason string) error {
	return p.Session.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (p *SessionPlatform) Kick(guildID, userID, reason string) error {
	return p.Session.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (p *SessionPlatform) Notify(userID, message string) error {
	channel, err := p.Session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("error creating DM channel: %w", err)
	}
	_, err = p.Session.ChannelMessageSend(channel.ID, message)
	return err
}

// LockChannel denies sending for @everyone and explicitly allows it for
// the moderator role. The @everyone role ID equals the guild ID.
func (p *SessionPlatform) LockChannel(guildID, channelID, moderatorRoleID string) error {
	err := p.Session.ChannelPermissionSet(channelID, guildID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages)
	if err != nil {
		return fmt.Errorf("error locking channel: %w", err)
	}
	err = p.Session.ChannelPermissionSet(channelID, moderatorRoleID, discordgo.PermissionOverwriteTypeRole, discordgo.PermissionSendMessages, 0)
	if err != nil {
		return fmt.Errorf("error allowing moderator role: %w", err)
	}
	return nil
}

func (p *SessionPlatform) UnlockChannel(guildID, channelID string) error {
	err := p.Session.ChannelPermissionSet(channelID, guildID, discordgo.PermissionOverwriteTypeRole, discordgo.PermissionSendMessages, 0)
	if err != nil {
		return fmt.Errorf("error unlocking channel: %w", err)
	}
	return nil
}
