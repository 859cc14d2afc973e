package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ModBot/moderation"
)

// ExtractUserID extracts the user ID from a mention
func ExtractUserID(mention string) (string, error) {
	// Check if the mention is properly formatted
	if !strings.HasPrefix(mention, "<@") || !strings.HasSuffix(mention, ">") {
		return "", fmt.Errorf("invalid mention format")
	}

	// Extract the user ID
	userID := strings.TrimPrefix(strings.TrimSuffix(mention, ">"), "<@")

	// Remove the nickname exclamation mark if present
	userID = strings.TrimPrefix(userID, "!")

	// Validate that the user ID is a valid Snowflake (Discord ID)
	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		return "", fmt.Errorf("invalid user ID")
	}

	return userID, nil
}

// MemberIdentity derives the permission-gate identity of a guild member:
// the administrator flag and the member's role names.
func MemberIdentity(s *discordgo.Session, guildID, userID string) (moderation.Identity, error) {
	member, err := s.State.Member(guildID, userID)
	if err != nil {
		member, err = s.GuildMember(guildID, userID)
		if err != nil {
			return moderation.Identity{}, fmt.Errorf("error fetching member: %v", err)
		}
	}

	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return moderation.Identity{}, fmt.Errorf("error fetching guild: %v", err)
		}
	}

	identity := moderation.Identity{Admin: guild.OwnerID == userID}
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID != roleID {
				continue
			}
			identity.Roles = append(identity.Roles, role.Name)
			if role.Permissions&discordgo.PermissionAdministrator != 0 {
				identity.Admin = true
			}
		}
	}

	return identity, nil
}
