// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	disksCommand "github.com/redjax/storbar/internal/commands/disksCommand"
	runCommand "github.com/redjax/storbar/internal/commands/runCommand"
	versioncommand "github.com/redjax/storbar/internal/commands/versionCommand"
	watchCommand "github.com/redjax/storbar/internal/commands/watchCommand"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "storbar",
	// A short description of what the command does
	Short: "Storage module for status bars",
	// A longer description for the command
	Long: `Periodic storage data source for status bars. Reads the mount table,
probes usage per filesystem, prints a JSON line per cycle, and signals the
host bar to re-render.`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML/JSON/TOML/env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add other CLI subcommands
	rootCmd.AddCommand(runCommand.NewRunCommand())
	rootCmd.AddCommand(disksCommand.NewDisksCommand())
	rootCmd.AddCommand(watchCommand.NewWatchCommand())
	rootCmd.AddCommand(versioncommand.NewVersionCommand())

	// Call the initLogging function when the root command is initialized
	cobra.OnInitialize(initLogging)
}

// Configure process logging. Stdout belongs to the bar protocol, so every
// diagnostic goes to stderr.
func initLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})

	level := logrus.InfoLevel
	if v := os.Getenv("STORBAR_LOG_LEVEL"); v != "" {
		if parsed, err := logrus.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	if debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
