package moderation

import (
	"strings"
	"time"
)

// ActionKind names a moderation action as it is stored in the audit log.
type ActionKind string

const (
	ActionMute   ActionKind = "mute"
	ActionUnmute ActionKind = "unmute"
	ActionBan    ActionKind = "ban"
	ActionKick   ActionKind = "kick"
	ActionWarn   ActionKind = "warn"
	ActionLock   ActionKind = "lock"
	ActionUnlock ActionKind = "unlock"
)

// ParseKind maps a command name to its action kind.
func ParseKind(name string) (ActionKind, bool) {
	kind := ActionKind(strings.ToLower(name))
	switch kind {
	case ActionMute, ActionUnmute, ActionBan, ActionKick, ActionWarn, ActionLock, ActionUnlock:
		return kind, true
	}
	return "", false
}

// RequiresMember reports whether the kind acts on a guild member rather
// than a channel.
func (k ActionKind) RequiresMember() bool {
	switch k {
	case ActionMute, ActionUnmute, ActionBan, ActionKick, ActionWarn:
		return true
	}
	return false
}

// Request describes one action to execute against a guild.
type Request struct {
	Kind      ActionKind
	GuildID   string
	UserID    string // member-scoped kinds
	ChannelID string // channel-scoped kinds
	Moderator string

	// Duration is the parsed auto-reversal span for timed mutes.
	// DurationRaw keeps the original token for the audit record; for
	// bans it is recorded but not enforced.
	Duration    *time.Duration
	DurationRaw string
	Reason      string
}

// TargetTag returns the mention form of the request target, the way it is
// written into the audit log.
func (r Request) TargetTag() string {
	if r.Kind.RequiresMember() {
		return "<@" + r.UserID + ">"
	}
	return "<#" + r.ChannelID + ">"
}

// Result reports the outcome of one executed action. NoOp marks an
// unmute of a member who was not muted. Notified reports whether warn's
// direct message reached the member; a failed notification does not fail
// the warn itself.
type Result struct {
	Success  bool
	NoOp     bool
	Notified bool
	Message  string
}
