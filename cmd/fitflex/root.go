package fitflex

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fitflex",
	Short: "fitflex tracks workouts, goals and nutrition from your terminal",
	Long:  "fitflex is a fitness tracking CLI with an activity ledger, goal progress, weekly analytics, recommendations and Open Food Facts nutrition lookup. It talks to a REST backend and keeps working offline through a local cache.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite offline cache")
}
