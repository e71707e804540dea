// Package cmd wires flags, config, logging and the profile store together
// and hands the result to the UI. Precedence, lowest to highest: compiled
// defaults, config file, environment, flags. The saved profile only fills
// what is still unset after all of that.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cloudzz-dev/parley/internal/config"
	"github.com/cloudzz-dev/parley/internal/logging"
	"github.com/cloudzz-dev/parley/internal/profile"
	"github.com/cloudzz-dev/parley/internal/session"
	"github.com/cloudzz-dev/parley/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Chat in the terminal",
	Long: `Parley is a terminal client for the parley chat server.

Pick a display name, join, and talk. Logs go to a file, never the
terminal; see them with --debug and the configured log_file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("server", "s", "", "websocket URL of the chat server")
	flags.StringP("name", "n", "", "display name to register with")
	flags.String("profile", "", "saved profile to use")
	flags.StringP("theme", "t", "", "visual preset: light, dark, ocean or forest")
	flags.String("config", "", "path to the config file")
	flags.BoolP("debug", "d", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	flags := cmd.Flags()
	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if flags.Changed("server") {
		cfg.Server, _ = flags.GetString("server")
	}
	if flags.Changed("name") {
		cfg.Name, _ = flags.GetString("name")
	}
	if flags.Changed("profile") {
		cfg.Profile, _ = flags.GetString("profile")
	}
	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	logger := logging.Setup(cfg.LogFile, cfg.Debug)
	logger.Info("starting", "version", version, "server", cfg.Server, "profile", cfg.Profile)

	if prof := profile.Load(config.Dir(), cfg.Profile); prof != nil {
		if cfg.Name == "" {
			cfg.Name = prof.Name
		}
		explicitTheme := flags.Changed("theme") || os.Getenv("PARLEY_THEME") != ""
		if !explicitTheme && prof.Theme != "" {
			if _, ok := session.ParseTheme(prof.Theme); ok {
				cfg.Theme = prof.Theme
			}
		}
	}

	p := tea.NewProgram(ui.NewModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("ui exited with error", "error", err)
		return err
	}
	logger.Info("bye")
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
