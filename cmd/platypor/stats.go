package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platypor/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show past session history",
	Long: `Display the most recent pet sessions and the best level reached.

Examples:
  platypor stats
  platypor stats --limit 25`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of sessions to show")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'platypor play' to start the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-17s  %-6s  %-6s  %-10s  %-6s  %-5s  %s\n",
		"Ended", "Cause", "Level", "Money", "Beers", "Cigs", "Duration")
	fmt.Printf("  %-17s  %-6s  %-6s  %-10s  %-6s  %-5s  %s\n",
		"-----", "-----", "-----", "-----", "-----", "----", "--------")

	// Print sessions
	for _, entry := range sessions {
		dateStr := entry.EndedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-17s  %-6s  %-6d  %-10.2f  %-6d  %-5d  %ds\n",
			dateStr, entry.Cause, entry.Level, entry.Money,
			entry.Beers, entry.Cigarettes, entry.DurationSecs)
	}

	fmt.Println()
	if best, bestErr := store.BestLevel(); bestErr == nil && best > 0 {
		fmt.Printf("Best level: %d\n", best)
	}
	if literate, litErr := store.HasLiteracy(); litErr == nil && literate {
		fmt.Println("The pet has learned to read.")
	}
}
