package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chrisconley/energymeter/internal"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
)

// app carries what every subcommand needs once the root command has run.
type app struct {
	log     zerolog.Logger
	config  internal.MeteringConfig
	service *internal.MeteringService
}

func newRootCommand() *cobra.Command {
	a := &app{}

	c := &cobra.Command{
		Use:          "energymeter",
		Short:        "Evaluates energy charges and heap allocation sizes",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.init(c.Flags())
		},
	}

	flags := c.PersistentFlags()
	flags.String(configFlag, "", "metering config file (YAML); built-in defaults when empty")
	flags.String(logLevelFlag, zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")

	c.AddCommand(
		chargeCommand(a),
		multiplyCommand(a),
		sizeOfCommand(a),
		quoteCommand(a),
		tableCommand(a),
	)

	return c
}

func (a *app) init(flags *pflag.FlagSet) error {
	levelName, err := flags.GetString(logLevelFlag)
	if err != nil {
		return err
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", logLevelFlag, err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	path, err := flags.GetString(configFlag)
	if err != nil {
		return err
	}

	if path == "" {
		a.config = internal.DefaultMeteringConfig()
		a.log.Debug().Msg("using built-in metering config")
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			a.log.Error().Err(err).Str("path", path).Msg("cannot read metering config")
			return fmt.Errorf("failed to read config: %w", err)
		}
		a.config, err = internal.LoadMeteringConfig(data)
		if err != nil {
			a.log.Error().Err(err).Str("path", path).Msg("invalid metering config")
			return err
		}
		a.log.Debug().Str("path", path).Msg("loaded metering config")
	}

	a.service = internal.NewMeteringService(a.config)
	return nil
}
