package bridge

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"ModBot/moderation"
)

// WebModerator is the moderator identity recorded for bridge-originated
// actions.
const WebModerator = "web-interface"

// Client is the slice of chat-client state the bridge needs to resolve an
// invocation before handing it to the executor. *bot.Bot implements it.
type Client interface {
	Ready() bool
	HasGuild(guildID string) bool
	HasMember(guildID, userID string) bool
}

// CommandRequest is a structured action request originating outside the
// bot's event domain, typically from the web dashboard.
type CommandRequest struct {
	Command   string `json:"command"`
	GuildID   string `json:"guild_id"`
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
	Reason    string `json:"reason"`
	Duration  string `json:"duration"`
}

// Response is the outcome handed back to the caller.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type invocation struct {
	id    string
	req   CommandRequest
	reply chan Response
}

// Bridge marshals dashboard requests into the bot's event domain and
// blocks each caller until the bot side reports an outcome. The web
// layer's request handlers and the bot share no state directly; every
// call crosses through the invocation channel.
type Bridge struct {
	client      Client
	exec        *moderation.Executor
	invocations chan invocation
}

func New(client Client, exec *moderation.Executor) *Bridge {
	return &Bridge{
		client:      client,
		exec:        exec,
		invocations: make(chan invocation),
	}
}

// Run consumes invocations until ctx is cancelled. It must run inside the
// bot process, next to the session it acts on. Invocations are
// independent: each one is handled on its own goroutine and none waits
// for another.
func (b *Bridge) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case inv := <-b.invocations:
			go func(inv invocation) {
				inv.reply <- b.handle(inv)
			}(inv)
		}
	}
}

// Invoke submits one request and blocks until the bot side completes it.
func (b *Bridge) Invoke(req CommandRequest) Response {
	inv := invocation{
		id:    uuid.NewString(),
		req:   req,
		reply: make(chan Response, 1),
	}
	b.invocations <- inv
	return <-inv.reply
}

func (b *Bridge) handle(inv invocation) Response {
	req := inv.req

	if !b.client.Ready() {
		return Response{Message: "Bot is not connected"}
	}

	kind, ok := moderation.ParseKind(req.Command)
	if !ok {
		return Response{Message: fmt.Sprintf("Unknown command %q", req.Command)}
	}
	if !b.client.HasGuild(req.GuildID) {
		return Response{Message: "Guild not found"}
	}
	if kind.RequiresMember() {
		if req.UserID == "" {
			return Response{Message: "Missing user id"}
		}
		if !b.client.HasMember(req.GuildID, req.UserID) {
			return Response{Message: "Member not found"}
		}
	} else if req.ChannelID == "" {
		return Response{Message: "Missing channel id"}
	}

	duration, err := moderation.ParseDuration(req.Duration)
	if err != nil {
		return Response{Message: fmt.Sprintf("Invalid duration %q. Use formats like 30s, 5m, 2h, 1d", req.Duration)}
	}

	log.Printf("bridge %s: executing %s in guild %s", inv.id, req.Command, req.GuildID)
	result := b.exec.Execute(moderation.Request{
		Kind:        kind,
		GuildID:     req.GuildID,
		UserID:      req.UserID,
		ChannelID:   req.ChannelID,
		Moderator:   WebModerator,
		Duration:    duration,
		DurationRaw: req.Duration,
		Reason:      req.Reason,
	})
	return Response{Success: result.Success, Message: result.Message}
}
