// gridtap is a reaction-time tile game played in the terminal.
//
// Usage:
//
//	gridtap play [mode]      - Play a round (default: classic)
//	gridtap menu             - Start interactive mode picker
//	gridtap list             - List available modes
//	gridtap serve            - Start SSH server for remote play
//	gridtap scores <mode>    - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.gridtap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/greentile/gridtap/internal/games/gridtap"
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
	Use:   "gridtap",
	Short: "GridTap - Tap the lit tiles before they go dark",
	Long: `GridTap is a terminal reaction game. Tiles light up and dim on their
own timers; tap a lit tile to score, tap a dark tile and the run ends.

Available commands:
  play     - Play a round directly
  menu     - Interactive mode picker
  list     - Show all available modes
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  gridtap play
  gridtap play gridtap_blitz
  gridtap menu
  gridtap serve --ssh :2222
  gridtap scores gridtap`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridtap/scores.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
