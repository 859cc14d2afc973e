package commands

import (
	"ModBot/bot"

	"github.com/bwmarrin/discordgo"
)

// CommandFunc defines the signature for command handlers
type CommandFunc func(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string)

// CommandInfo holds detailed information about a command
type CommandInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Usage       string   `json:"usage"`
	Category    string   `json:"category"`
}

// ModuleInfo represents a command module and its metadata
type ModuleInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Commands    []CommandInfo `json:"commands"`
}

// Global registries
var (
	RegisteredModules = make(map[string]*ModuleInfo)
	CommandDetails    = make(map[string]CommandInfo) // Auto-compiled from modules
	CommandMap        = make(map[string]CommandFunc)
	CommandAliases    = make(map[string]string)
)

// RegisterCommand registers individual commands (used by modules)
func RegisterCommand(name string, handler CommandFunc, aliases ...string) {
	CommandMap[name] = handler
	for _, alias := range aliases {
		CommandAliases[alias] = name
	}
}

// RegisterModule registers a module and auto-compiles its command info
func RegisterModule(module *ModuleInfo) {
	RegisteredModules[module.Name] = module
	for _, cmd := range module.Commands {
		CommandDetails[cmd.Name] = cmd
	}
}

// Lookup resolves a command name or alias to its handler.
func Lookup(name string) (CommandFunc, bool) {
	if handler, ok := CommandMap[name]; ok {
		return handler, true
	}
	if canonical, ok := CommandAliases[name]; ok {
		handler, ok := CommandMap[canonical]
		return handler, ok
	}
	return nil, false
}
