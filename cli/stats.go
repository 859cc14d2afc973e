package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate audit log statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Total actions: %d\n", stats.TotalActions)
	fmt.Printf("Last 7 days:   %d\n\n", stats.RecentActivity)

	if len(stats.ActionsByType) > 0 {
		fmt.Println("By kind:")
		kinds := make([]string, 0, len(stats.ActionsByType))
		for kind := range stats.ActionsByType {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Printf("  %-7s %d\n", kind, stats.ActionsByType[kind])
		}
	}

	if len(stats.DailyActivity) > 0 {
		fmt.Println("\nDaily activity (last 7 days):")
		days := make([]string, 0, len(stats.DailyActivity))
		for day := range stats.DailyActivity {
			days = append(days, day)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(days)))
		for _, day := range days {
			fmt.Printf("  %s  %d\n", day, stats.DailyActivity[day])
		}
	}

	return nil
}
