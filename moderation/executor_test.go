package moderation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ModBot/storage"
)

// fakePlatform records moderation side effects in memory.
type fakePlatform struct {
	mu          sync.Mutex
	memberRoles map[string]map[string]bool // guildID/userID -> role set
	banned      map[string]bool
	kicked      map[string]bool
	notices     map[string][]string
	locked      map[string]bool

	addRoleErr error
	banErr     error
	notifyErr  error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		memberRoles: make(map[string]map[string]bool),
		banned:      make(map[string]bool),
		kicked:      make(map[string]bool),
		notices:     make(map[string][]string),
		locked:      make(map[string]bool),
	}
}

func (p *fakePlatform) EnsureMutedRole(guildID string) (string, error) {
	return "muted-role", nil
}

func (p *fakePlatform) EnsureModeratorRole(guildID string) (string, error) {
	return "mod-role", nil
}

func (p *fakePlatform) AddRole(guildID, userID, roleID string) error {
	if p.addRoleErr != nil {
		return p.addRoleErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	key := guildID + "/" + userID
	if p.memberRoles[key] == nil {
		p.memberRoles[key] = make(map[string]bool)
	}
	p.memberRoles[key][roleID] = true
	return nil
}

func (p *fakePlatform) RemoveRole(guildID, userID, roleID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.memberRoles[guildID+"/"+userID], roleID)
	return nil
}

func (p *fakePlatform) HasRole(guildID, userID, roleID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.memberRoles[guildID+"/"+userID][roleID], nil
}

func (p *fakePlatform) Ban(guildID, userID, reason string) error {
	if p.banErr != nil {
		return p.banErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banned[guildID+"/"+userID] = true
	return nil
}

func (p *fakePlatform) Kick(guildID, userID, reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kicked[guildID+"/"+userID] = true
	return nil
}

func (p *fakePlatform) Notify(userID, message string) error {
	if p.notifyErr != nil {
		return p.notifyErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices[userID] = append(p.notices[userID], message)
	return nil
}

func (p *fakePlatform) LockChannel(guildID, channelID, moderatorRoleID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked[channelID] = true
	return nil
}

func (p *fakePlatform) UnlockChannel(guildID, channelID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked[channelID] = false
	return nil
}

func (p *fakePlatform) hasMutedRole(guildID, userID string) bool {
	has, _ := p.HasRole(guildID, userID, "muted-role")
	return has
}

func newTestStore(t *testing.T) *storage.AuditStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	store, err := storage.NewAuditStore(db)
	if err != nil {
		t.Fatalf("migrating audit store: %v", err)
	}
	return store
}

func countRecords(t *testing.T, store *storage.AuditStore, guildID, action string) int {
	t.Helper()
	logs, err := store.Query(guildID, action, -1)
	if err != nil {
		t.Fatalf("querying audit store: %v", err)
	}
	return len(logs)
}

func newTestExecutor(t *testing.T) (*Executor, *fakePlatform, *storage.AuditStore, *Scheduler) {
	t.Helper()
	platform := newFakePlatform()
	store := newTestStore(t)
	sched := NewScheduler()
	return NewExecutor(platform, store, sched), platform, store, sched
}

func spanOf(d time.Duration) *time.Duration {
	return &d
}

func TestMuteWithDurationAutoReverses(t *testing.T) {
	exec, platform, store, _ := newTestExecutor(t)

	result := exec.Execute(Request{
		Kind:        ActionMute,
		GuildID:     "g1",
		UserID:      "u1",
		Moderator:   "mod",
		Duration:    spanOf(30 * time.Millisecond),
		DurationRaw: "1s",
	})
	if !result.Success {
		t.Fatalf("mute failed: %s", result.Message)
	}
	if !platform.hasMutedRole("g1", "u1") {
		t.Fatal("expected muted role attached immediately")
	}
	if got := countRecords(t, store, "g1", "mute"); got != 1 {
		t.Fatalf("expected 1 mute record, got %d", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for platform.hasMutedRole("g1", "u1") {
		if time.Now().After(deadline) {
			t.Fatal("muted role was not removed after the duration elapsed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// The auto-reversal is not a moderator action and writes no record.
	if got := countRecords(t, store, "g1", ""); got != 1 {
		t.Fatalf("expected 1 total record after auto-unmute, got %d", got)
	}
}

func TestManualUnmuteCancelsPendingReversal(t *testing.T) {
	exec, platform, store, sched := newTestExecutor(t)

	exec.Execute(Request{
		Kind:        ActionMute,
		GuildID:     "g1",
		UserID:      "u1",
		Moderator:   "mod",
		Duration:    spanOf(time.Hour),
		DurationRaw: "1h",
	})
	if got := sched.Pending(); got != 1 {
		t.Fatalf("expected 1 pending reversal, got %d", got)
	}

	result := exec.Execute(Request{
		Kind:      ActionUnmute,
		GuildID:   "g1",
		UserID:    "u1",
		Moderator: "mod",
	})
	if !result.Success || result.NoOp {
		t.Fatalf("expected a real unmute, got %+v", result)
	}
	if platform.hasMutedRole("g1", "u1") {
		t.Fatal("expected muted role removed immediately")
	}
	if got := sched.Pending(); got != 0 {
		t.Fatalf("expected pending reversal cancelled, got %d", got)
	}
	if got := countRecords(t, store, "g1", ""); got != 2 {
		t.Fatalf("expected mute + unmute records, got %d", got)
	}
}

func TestReversalAfterExternalUnmuteIsNoOp(t *testing.T) {
	exec, platform, store, sched := newTestExecutor(t)

	exec.Execute(Request{
		Kind:        ActionMute,
		GuildID:     "g1",
		UserID:      "u1",
		Moderator:   "mod",
		Duration:    spanOf(30 * time.Millisecond),
		DurationRaw: "1s",
	})

	// The role disappears outside the executor, e.g. removed by hand in
	// the platform UI.
	platform.RemoveRole("g1", "u1", "muted-role")

	deadline := time.Now().Add(2 * time.Second)
	for sched.Pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("reversal never fired")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if platform.hasMutedRole("g1", "u1") {
		t.Fatal("reversal re-applied the muted role")
	}
	if got := countRecords(t, store, "g1", ""); got != 1 {
		t.Fatalf("expected only the original mute record, got %d", got)
	}
}

func TestUnmuteOfUnmutedMemberIsNoOp(t *testing.T) {
	exec, _, store, _ := newTestExecutor(t)

	for i := 0; i < 2; i++ {
		result := exec.Execute(Request{
			Kind:      ActionUnmute,
			GuildID:   "g1",
			UserID:    "u1",
			Moderator: "mod",
		})
		if !result.Success {
			t.Fatalf("unmute #%d reported failure: %s", i+1, result.Message)
		}
		if !result.NoOp {
			t.Fatalf("unmute #%d should be a no-op", i+1)
		}
	}

	if got := countRecords(t, store, "g1", ""); got != 0 {
		t.Fatalf("no-op unmutes must not write records, got %d", got)
	}
}

func TestUnmuteTwiceWritesOneRecord(t *testing.T) {
	exec, _, store, _ := newTestExecutor(t)

	exec.Execute(Request{Kind: ActionMute, GuildID: "g1", UserID: "u1", Moderator: "mod"})

	first := exec.Execute(Request{Kind: ActionUnmute, GuildID: "g1", UserID: "u1", Moderator: "mod"})
	if !first.Success || first.NoOp {
		t.Fatalf("first unmute should be a real transition, got %+v", first)
	}
	second := exec.Execute(Request{Kind: ActionUnmute, GuildID: "g1", UserID: "u1", Moderator: "mod"})
	if !second.Success || !second.NoOp {
		t.Fatalf("second unmute should be a no-op, got %+v", second)
	}

	if got := countRecords(t, store, "g1", "unmute"); got != 1 {
		t.Fatalf("expected exactly one unmute record, got %d", got)
	}
}

func TestBanRecordsDurationWithoutEnforcingIt(t *testing.T) {
	exec, platform, store, sched := newTestExecutor(t)

	result := exec.Execute(Request{
		Kind:        ActionBan,
		GuildID:     "g1",
		UserID:      "u1",
		Moderator:   "mod",
		DurationRaw: "1d",
		Reason:      "spam",
	})
	if !result.Success {
		t.Fatalf("ban failed: %s", result.Message)
	}
	if !platform.banned["g1/u1"] {
		t.Fatal("expected platform ban")
	}

	logs, err := store.Query("g1", "ban", -1)
	if err != nil {
		t.Fatalf("querying audit store: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 ban record, got %d", len(logs))
	}
	if logs[0].Duration == nil || *logs[0].Duration != "1d" {
		t.Fatalf("expected recorded duration 1d, got %v", logs[0].Duration)
	}
	if got := sched.Pending(); got != 0 {
		t.Fatalf("bans must not schedule reversals, got %d pending", got)
	}
}

func TestWarnNotificationFailureStillSucceeds(t *testing.T) {
	exec, platform, store, _ := newTestExecutor(t)
	platform.notifyErr = errors.New("cannot send messages to this user")

	result := exec.Execute(Request{
		Kind:      ActionWarn,
		GuildID:   "g1",
		UserID:    "u1",
		Moderator: "mod",
		Reason:    "language",
	})
	if !result.Success {
		t.Fatalf("warn failed: %s", result.Message)
	}
	if result.Notified {
		t.Fatal("expected Notified=false when the DM fails")
	}
	if got := countRecords(t, store, "g1", "warn"); got != 1 {
		t.Fatalf("expected 1 warn record, got %d", got)
	}
}

func TestWarnDeliversNotification(t *testing.T) {
	exec, platform, _, _ := newTestExecutor(t)

	result := exec.Execute(Request{
		Kind:      ActionWarn,
		GuildID:   "g1",
		UserID:    "u1",
		Moderator: "mod",
		Reason:    "language",
	})
	if !result.Success || !result.Notified {
		t.Fatalf("expected notified warn, got %+v", result)
	}
	if len(platform.notices["u1"]) != 1 {
		t.Fatalf("expected one DM, got %d", len(platform.notices["u1"]))
	}
}

func TestPlatformFailureWritesNoRecord(t *testing.T) {
	exec, platform, store, _ := newTestExecutor(t)
	platform.addRoleErr = errors.New("missing permissions")

	result := exec.Execute(Request{
		Kind:      ActionMute,
		GuildID:   "g1",
		UserID:    "u1",
		Moderator: "mod",
	})
	if result.Success {
		t.Fatal("expected mute to fail")
	}
	if result.Message == "" {
		t.Fatal("expected a user-facing failure message")
	}
	if got := countRecords(t, store, "g1", ""); got != 0 {
		t.Fatalf("failed actions must not write records, got %d", got)
	}
}

func TestLockAndUnlockChannel(t *testing.T) {
	exec, platform, store, _ := newTestExecutor(t)

	result := exec.Execute(Request{
		Kind:      ActionLock,
		GuildID:   "g1",
		ChannelID: "c1",
		Moderator: "mod",
		Reason:    "raid",
	})
	if !result.Success {
		t.Fatalf("lock failed: %s", result.Message)
	}
	if !platform.locked["c1"] {
		t.Fatal("expected channel locked")
	}

	result = exec.Execute(Request{
		Kind:      ActionUnlock,
		GuildID:   "g1",
		ChannelID: "c1",
		Moderator: "mod",
	})
	if !result.Success {
		t.Fatalf("unlock failed: %s", result.Message)
	}
	if platform.locked["c1"] {
		t.Fatal("expected channel unlocked")
	}

	logs, err := store.Query("g1", "", -1)
	if err != nil {
		t.Fatalf("querying audit store: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected lock + unlock records, got %d", len(logs))
	}
	for _, entry := range logs {
		if entry.ChannelID == nil || *entry.ChannelID != "c1" {
			t.Fatalf("expected channel_id c1 on %s record, got %v", entry.Action, entry.ChannelID)
		}
		if entry.Target != "<#c1>" {
			t.Fatalf("expected channel mention target, got %q", entry.Target)
		}
	}
}
