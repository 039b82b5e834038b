// shooter is a terminal space shooter: fly, shoot, collect coins and spend
// them on upgrades between waves.
//
// Usage:
//
//	shooter                  - Play (same as "shooter play")
//	shooter play             - Play a game
//	shooter scores           - Show high scores
//	shooter config print     - Print the default configuration
//	shooter config path      - Show where configuration is looked up
//	shooter config init      - Write the default configuration to the user directory
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.shooter/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Log destination (default: ~/.shooter/shooter.log)
//	--assets <dir>        - Directory with pew, hit and normal_music (.mp3 or .wav)
//	--mute                - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagAssets     string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - an arcade shooter in your terminal",
	Long: `Space Shooter is a terminal arcade game. Enemies drop coins when
destroyed; open the shop to trade coins for upgrades that last until
you quit.

Available commands:
  play     - Play the game (default)
  scores   - View high scores
  config   - Inspect or install the configuration file

Examples:
  shooter
  shooter play --difficulty hard
  shooter play --seed 42 --mute
  shooter scores
  shooter config init`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "~/.shooter/shooter.log", "Path to log file")
	pf.StringVar(&flagAssets, "assets", "", "Directory with MP3 or WAV sound assets")
	pf.BoolVar(&flagMute, "mute", false, "Disable audio")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
