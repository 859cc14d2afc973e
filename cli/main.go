package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ModBot/storage"
)

var rootCmd = &cobra.Command{
	Use:   "modctl",
	Short: "Moderation Bot CLI - Inspect the audit trail without the dashboard",
	Long: `A CLI tool for querying the moderation audit log directly from the
database. Useful for operators who do not have the web dashboard running.`,
}

var dbURL string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database URL (defaults to $DB_URL, then moderation_logs.db)")
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(statsCmd)
}

func openStore() (*storage.AuditStore, error) {
	url := dbURL
	if url == "" {
		url = os.Getenv("DB_URL")
	}
	if url == "" {
		url = "moderation_logs.db"
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(url, "mysql://") {
		dialector = mysql.Open(strings.TrimPrefix(url, "mysql://"))
	} else {
		dialector = sqlite.Open(url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, err
	}
	return storage.NewAuditStore(db)
}
