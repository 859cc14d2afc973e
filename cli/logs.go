package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List moderation actions, newest first",
	RunE:  runLogs,
}

var (
	logsGuild  string
	logsAction string
	logsLimit  int
)

func init() {
	logsCmd.Flags().StringVarP(&logsGuild, "guild", "g", "", "Filter by guild ID")
	logsCmd.Flags().StringVarP(&logsAction, "action", "a", "", "Filter by action kind (mute, ban, ...)")
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "l", -1, "Maximum number of records (default 50)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	logs, err := store.Query(logsGuild, logsAction, logsLimit)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Println("No matching records.")
		return nil
	}

	for _, entry := range logs {
		line := fmt.Sprintf("#%d  %s  %-7s  %s -> %s  (guild %s)",
			entry.ID,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Action,
			entry.Moderator,
			entry.Target,
			entry.GuildID,
		)
		if entry.Duration != nil {
			line += fmt.Sprintf("  duration=%s", *entry.Duration)
		}
		if entry.Reason != nil {
			line += fmt.Sprintf("  reason=%q", *entry.Reason)
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d record(s)\n", len(logs))
	return nil
}
