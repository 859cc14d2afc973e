package storage

import (
	"time"

	"gorm.io/gorm"
)

// DefaultQueryLimit caps audit queries when the caller does not give a
// limit of its own.
const DefaultQueryLimit = 50

// AuditStore is the append-only record of executed moderation actions.
// It is written from the bot's event loop and read concurrently by the
// dashboard; the underlying database serializes both sides.
type AuditStore struct {
	DB *gorm.DB
}

func NewAuditStore(db *gorm.DB) (*AuditStore, error) {
	if err := db.AutoMigrate(&ModerationLog{}); err != nil {
		return nil, err
	}
	return &AuditStore{DB: db}, nil
}

// Append writes one action record. The store assigns the timestamp when
// the caller leaves it zero.
func (s *AuditStore) Append(entry *ModerationLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return s.DB.Create(entry).Error
}

// Query returns matching records newest first, ties broken by id. Empty
// guildID or action means no filter on that column. A negative limit
// falls back to DefaultQueryLimit; zero returns no rows.
func (s *AuditStore) Query(guildID, action string, limit int) ([]ModerationLog, error) {
	if limit < 0 {
		limit = DefaultQueryLimit
	}

	q := s.DB.Model(&ModerationLog{}).
		Order("timestamp DESC, id DESC").
		Limit(limit)
	if guildID != "" {
		q = q.Where("guild_id = ?", guildID)
	}
	if action != "" {
		q = q.Where("action = ?", action)
	}

	logs := []ModerationLog{}
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Stats aggregates the audit log for the dashboard.
type Stats struct {
	TotalActions   int64            `json:"total_actions"`
	ActionsByType  map[string]int64 `json:"actions_by_type"`
	RecentActivity int64            `json:"recent_activity"`
	DailyActivity  map[string]int64 `json:"daily_activity"`
}

// Stats returns the total action count, counts per kind, and activity
// over the trailing seven days (total plus per-day buckets keyed by
// YYYY-MM-DD).
func (s *AuditStore) Stats() (*Stats, error) {
	stats := &Stats{
		ActionsByType: make(map[string]int64),
		DailyActivity: make(map[string]int64),
	}

	if err := s.DB.Model(&ModerationLog{}).Count(&stats.TotalActions).Error; err != nil {
		return nil, err
	}

	var perKind []struct {
		Action string
		Count  int64
	}
	err := s.DB.Model(&ModerationLog{}).
		Select("action, count(*) as count").
		Group("action").
		Scan(&perKind).Error
	if err != nil {
		return nil, err
	}
	for _, row := range perKind {
		stats.ActionsByType[row.Action] = row.Count
	}

	// Daily buckets are computed here rather than in SQL so the store
	// behaves the same on sqlite and mysql.
	cutoff := time.Now().UTC().AddDate(0, 0, -7)
	var recent []ModerationLog
	if err := s.DB.Where("timestamp > ?", cutoff).Find(&recent).Error; err != nil {
		return nil, err
	}
	stats.RecentActivity = int64(len(recent))
	for _, entry := range recent {
		day := entry.Timestamp.UTC().Format("2006-01-02")
		stats.DailyActivity[day]++
	}

	return stats, nil
}
