package moderation

import (
	"fmt"
	"log"
	"sync"

	"ModBot/storage"
)

// DefaultReason is recorded when a moderator gives no reason.
const DefaultReason = "No reason provided"

// Platform is the side of the chat platform the executor mutates.
// *SessionPlatform implements it over discordgo; tests substitute a fake.
type Platform interface {
	// EnsureMutedRole finds or creates the guild's "Muted" role. Creation
	// applies a send-deny overwrite to every channel in the guild.
	EnsureMutedRole(guildID string) (roleID string, err error)
	// EnsureModeratorRole finds or creates the role that keeps send
	// permission in locked channels.
	EnsureModeratorRole(guildID string) (roleID string, err error)
	AddRole(guildID, userID, roleID string) error
	RemoveRole(guildID, userID, roleID string) error
	HasRole(guildID, userID, roleID string) (bool, error)
	Ban(guildID, userID, reason string) error
	Kick(guildID, userID, reason string) error
	// Notify sends a direct message. Failures are tolerated by callers.
	Notify(userID, message string) error
	LockChannel(guildID, channelID, moderatorRoleID string) error
	UnlockChannel(guildID, channelID string) error
}

// Executor applies one moderation action at a time: permission-gated
// callers hand it a Request, it performs the platform mutation, appends
// the audit record, and registers an auto-reversal for timed mutes.
// Platform failures come back as a failed Result and never write a
// record.
type Executor struct {
	platform Platform
	store    *storage.AuditStore
	sched    *Scheduler

	mu           sync.Mutex
	muteReversal map[string]ReversalHandle // guildID/userID -> pending auto-unmute
}

func NewExecutor(platform Platform, store *storage.AuditStore, sched *Scheduler) *Executor {
	return &Executor{
		platform:     platform,
		store:        store,
		sched:        sched,
		muteReversal: make(map[string]ReversalHandle),
	}
}

// Execute runs one action to completion and reports the outcome as a
// user-facing message. It never panics or escalates: every failure mode
// ends up in the Result.
func (e *Executor) Execute(req Request) Result {
	if req.Reason == "" {
		req.Reason = DefaultReason
	}

	switch req.Kind {
	case ActionMute:
		return e.mute(req)
	case ActionUnmute:
		return e.unmute(req)
	case ActionBan:
		return e.ban(req)
	case ActionKick:
		return e.kick(req)
	case ActionWarn:
		return e.warn(req)
	case ActionLock:
		return e.lock(req)
	case ActionUnlock:
		return e.unlock(req)
	default:
		return Result{Message: fmt.Sprintf("Unknown action %q", string(req.Kind))}
	}
}

func (e *Executor) mute(req Request) Result {
	roleID, err := e.platform.EnsureMutedRole(req.GuildID)
	if err != nil {
		return failure("getting the muted role", err)
	}
	if err := e.platform.AddRole(req.GuildID, req.UserID, roleID); err != nil {
		return failure("muting the user", err)
	}
	e.record(req)

	message := fmt.Sprintf("Muted %s indefinitely", req.TargetTag())
	if req.Duration != nil {
		message = fmt.Sprintf("Muted %s for %s", req.TargetTag(), req.DurationRaw)

		guildID, userID := req.GuildID, req.UserID
		handle := e.sched.Schedule(*req.Duration, func() {
			e.clearReversal(guildID, userID)
			attached, err := e.platform.HasRole(guildID, userID, roleID)
			if err != nil {
				log.Printf("Error checking muted role before auto-unmute of %s: %v", userID, err)
				return
			}
			// A manual unmute may have already removed the role; firing
			// then is a no-op.
			if !attached {
				return
			}
			if err := e.platform.RemoveRole(guildID, userID, roleID); err != nil {
				log.Printf("Error auto-unmuting user %s: %v", userID, err)
			}
		})
		e.trackReversal(guildID, userID, handle)
	}

	return Result{Success: true, Message: message}
}

func (e *Executor) unmute(req Request) Result {
	roleID, err := e.platform.EnsureMutedRole(req.GuildID)
	if err != nil {
		return failure("getting the muted role", err)
	}
	attached, err := e.platform.HasRole(req.GuildID, req.UserID, roleID)
	if err != nil {
		return failure("checking the muted role", err)
	}
	if !attached {
		return Result{
			Success: true,
			NoOp:    true,
			Message: fmt.Sprintf("%s is not muted", req.TargetTag()),
		}
	}

	e.cancelReversal(req.GuildID, req.UserID)
	if err := e.platform.RemoveRole(req.GuildID, req.UserID, roleID); err != nil {
		return failure("unmuting the user", err)
	}
	e.record(req)
	return Result{Success: true, Message: fmt.Sprintf("Unmuted %s", req.TargetTag())}
}

func (e *Executor) ban(req Request) Result {
	if err := e.platform.Ban(req.GuildID, req.UserID, req.Reason); err != nil {
		return failure("banning the user", err)
	}
	e.record(req)

	// The duration is recorded for the audit trail but not enforced:
	// there is no auto-unban.
	message := fmt.Sprintf("Banned %s permanently", req.TargetTag())
	if req.DurationRaw != "" {
		message = fmt.Sprintf("Banned %s for %s", req.TargetTag(), req.DurationRaw)
	}
	return Result{Success: true, Message: message}
}

func (e *Executor) kick(req Request) Result {
	if err := e.platform.Kick(req.GuildID, req.UserID, req.Reason); err != nil {
		return failure("kicking the user", err)
	}
	e.record(req)
	return Result{Success: true, Message: fmt.Sprintf("Kicked %s", req.TargetTag())}
}

func (e *Executor) warn(req Request) Result {
	notified := true
	notice := fmt.Sprintf("You have received a warning: %s", req.Reason)
	if err := e.platform.Notify(req.UserID, notice); err != nil {
		// DMs may be disabled; the warning still counts.
		log.Printf("Error notifying warned user %s: %v", req.UserID, err)
		notified = false
	}
	e.record(req)
	return Result{
		Success:  true,
		Notified: notified,
		Message:  fmt.Sprintf("Warned %s", req.TargetTag()),
	}
}

func (e *Executor) lock(req Request) Result {
	roleID, err := e.platform.EnsureModeratorRole(req.GuildID)
	if err != nil {
		return failure("getting the moderator role", err)
	}
	if err := e.platform.LockChannel(req.GuildID, req.ChannelID, roleID); err != nil {
		return failure("locking the channel", err)
	}
	e.record(req)
	return Result{Success: true, Message: fmt.Sprintf("Locked %s", req.TargetTag())}
}

func (e *Executor) unlock(req Request) Result {
	if err := e.platform.UnlockChannel(req.GuildID, req.ChannelID); err != nil {
		return failure("unlocking the channel", err)
	}
	e.record(req)
	return Result{Success: true, Message: fmt.Sprintf("Unlocked %s", req.TargetTag())}
}

// record appends the audit entry for a successfully applied action. An
// append failure is logged but does not undo the action.
func (e *Executor) record(req Request) {
	entry := &storage.ModerationLog{
		Action:    string(req.Kind),
		Moderator: req.Moderator,
		Target:    req.TargetTag(),
		GuildID:   req.GuildID,
	}
	if req.DurationRaw != "" {
		raw := req.DurationRaw
		entry.Duration = &raw
	}
	if req.Reason != "" {
		reason := req.Reason
		entry.Reason = &reason
	}
	if req.ChannelID != "" {
		channelID := req.ChannelID
		entry.ChannelID = &channelID
	}
	if err := e.store.Append(entry); err != nil {
		log.Printf("Error writing audit record for %s: %v", req.Kind, err)
	}
}

func (e *Executor) trackReversal(guildID, userID string, h ReversalHandle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muteReversal[guildID+"/"+userID] = h
}

func (e *Executor) clearReversal(guildID, userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.muteReversal, guildID+"/"+userID)
}

// cancelReversal stops a pending auto-unmute when the member is unmuted
// manually. The role check at fire time stays as the backstop for any
// reversal that slips past the cancel.
func (e *Executor) cancelReversal(guildID, userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := guildID + "/" + userID
	if handle, ok := e.muteReversal[key]; ok {
		e.sched.Cancel(handle)
		delete(e.muteReversal, key)
	}
}

func failure(step string, err error) Result {
	log.Printf("Error while %s: %v", step, err)
	return Result{Message: fmt.Sprintf("An error occurred while %s.", step)}
}
