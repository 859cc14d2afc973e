package bot

import "github.com/bwmarrin/discordgo"

// The dashboard's read-only projection of the live session state. None of
// this touches the moderation mutation path.

type GuildInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	Channels    int    `json:"channels"`
	Roles       int    `json:"roles"`
}

type UserInfo struct {
	Name   string `json:"name"`
	ID     string `json:"id"`
	Avatar string `json:"avatar"`
}

type StatusInfo struct {
	Online     bool        `json:"online"`
	User       *UserInfo   `json:"user"`
	Guilds     []GuildInfo `json:"guilds"`
	TotalUsers int         `json:"total_users"`
	Latency    int64       `json:"latency"`
}

type MemberInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Avatar      string   `json:"avatar"`
	Roles       []string `json:"roles"`
}

type ChannelInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Category *string `json:"category"`
}

// Status reports connectivity, visible guilds and latency.
func (b *Bot) Status() *StatusInfo {
	info := &StatusInfo{Guilds: []GuildInfo{}}
	if !b.Ready() || b.Client.State.User == nil {
		return info
	}

	info.Online = true
	user := b.Client.State.User
	info.User = &UserInfo{
		Name:   user.Username,
		ID:     user.ID,
		Avatar: user.AvatarURL(""),
	}
	for _, guild := range b.Client.State.Guilds {
		info.Guilds = append(info.Guilds, GuildInfo{
			ID:          guild.ID,
			Name:        guild.Name,
			MemberCount: guild.MemberCount,
			Channels:    len(guild.Channels),
			Roles:       len(guild.Roles),
		})
		info.TotalUsers += guild.MemberCount
	}
	info.Latency = b.Client.HeartbeatLatency().Milliseconds()
	return info
}

// GuildMembers lists up to 100 human members of a guild with their role
// names, @everyone excluded.
func (b *Bot) GuildMembers(guildID string) ([]MemberInfo, error) {
	members, err := b.Client.GuildMembers(guildID, "", 100)
	if err != nil {
		return nil, err
	}

	roleNames := make(map[string]string)
	if guild, err := b.Client.State.Guild(guildID); err == nil {
		for _, role := range guild.Roles {
			roleNames[role.ID] = role.Name
		}
	}

	infos := []MemberInfo{}
	for _, member := range members {
		if member.User == nil || member.User.Bot {
			continue
		}
		info := MemberInfo{
			ID:          member.User.ID,
			Name:        member.User.Username,
			DisplayName: member.DisplayName(),
			Avatar:      member.AvatarURL(""),
			Roles:       []string{},
		}
		for _, roleID := range member.Roles {
			if name, ok := roleNames[roleID]; ok {
				info.Roles = append(info.Roles, name)
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// GuildChannels lists the text channels of a guild with their category
// names.
func (b *Bot) GuildChannels(guildID string) ([]ChannelInfo, error) {
	channels, err := b.Client.GuildChannels(guildID)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]string)
	for _, channel := range channels {
		if channel.Type == discordgo.ChannelTypeGuildCategory {
			categories[channel.ID] = channel.Name
		}
	}

	infos := []ChannelInfo{}
	for _, channel := range channels {
		if channel.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		info := ChannelInfo{
			ID:   channel.ID,
			Name: channel.Name,
			Type: "text",
		}
		if name, ok := categories[channel.ParentID]; ok {
			category := name
			info.Category = &category
		}
		infos = append(infos, info)
	}
	return infos, nil
}
