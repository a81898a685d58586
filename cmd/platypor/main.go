// platypor is a terminal virtual pet: keep a small creature fed, calm and
// levelling up while its stats decay in real time.
//
// Usage:
//
//	platypor play              - Raise the pet in your terminal
//	platypor serve             - Start SSH server for remote play
//	platypor stats             - Show past session history
//	platypor catalog           - List actions and shop products
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.platypor/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platypor",
	Short: "Platypor - A virtual pet for your terminal",
	Long: `Platypor is a terminal-based virtual pet. Perform actions to earn
money and wisdom, buy upgrades in the shop, and keep stress and famine
down before they finish the poor creature off.

Available commands:
  play     - Raise the pet interactively
  serve    - Start SSH server for remote play
  stats    - View past session history
  catalog  - List actions and shop products

Examples:
  platypor play
  platypor play --seed 42
  platypor serve --ssh :2222
  platypor stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platypor/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(catalogCmd)
}
