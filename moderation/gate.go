package moderation

import "strings"

// Identity is the capability set of a command invoker, derived per
// invocation and never stored.
type Identity struct {
	Admin bool
	Roles []string
}

// Gate decides whether an invoker may run moderation commands.
// Administrators always pass; everyone else needs the moderator role.
type Gate struct {
	ModeratorRole string
}

// NewGate builds a gate allowing the given role name, "bot" by default.
func NewGate(moderatorRole string) *Gate {
	if moderatorRole == "" {
		moderatorRole = "bot"
	}
	return &Gate{ModeratorRole: moderatorRole}
}

// Allow returns true if the identity may run moderation commands. The
// role name comparison is case-insensitive.
func (g *Gate) Allow(id Identity) bool {
	if id.Admin {
		return true
	}
	for _, role := range id.Roles {
		if strings.EqualFold(role, g.ModeratorRole) {
			return true
		}
	}
	return false
}
