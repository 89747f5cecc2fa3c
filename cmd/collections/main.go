package main

import (
	"os"

	"github.com/a-peyrard/collections/internal/settings"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is shared by the commands once the persistent flags have been parsed.
type app struct {
	configFile string
	logLevel   string

	settings *settings.Settings
	logger   zerolog.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "collections",
		Short:         "play with a growable array list",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the configuration")

	rootCmd.AddCommand(newExecCommand(a), newGrowCommand(a), newQueueCommand(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	s, err := settings.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
	}

	logger, err := NewLogger(cmd.ErrOrStderr(), s.LogLevel)
	if err != nil {
		return err
	}

	a.settings = s
	a.logger = logger
	a.logger.Debug().
		Str("config", a.configFile).
		Int("initial_capacity", *s.InitialCapacity).
		Msg("settings loaded")
	return nil
}
