package storage

import "time"

// ModerationLog is one executed moderation action. The log is
// append-only: nothing in the bot updates or deletes rows once written.
type ModerationLog struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	Action    string    `gorm:"size:16;not null;index" json:"action"`
	Moderator string    `gorm:"not null" json:"moderator"`
	Target    string    `gorm:"not null" json:"target"`
	Duration  *string   `json:"duration"`
	Reason    *string   `json:"reason"`
	GuildID   string    `gorm:"not null;index" json:"guild_id"`
	ChannelID *string   `json:"channel_id"`
}
