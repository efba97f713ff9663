package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chrisconley/energymeter/internal"
	"github.com/chrisconley/energymeter/specs"
)

const (
	levelFlag  = "level"
	baseFlag   = "base"
	linearFlag = "linear"
)

type chargeConfig struct {
	Level  internal.FeeLevel
	Base   int32
	Linear int32
}

func addChargeFlags(flags *pflag.FlagSet) {
	flags.String(levelFlag, specs.FeeLevel1, "fee level (level1 or level2)")
	flags.Int32(baseFlag, 0, "base cost")
	flags.Int32(linearFlag, 0, "measured linear quantity")
}

func parseChargeFlags(flags *pflag.FlagSet) (*chargeConfig, error) {
	levelName, err := flags.GetString(levelFlag)
	if err != nil {
		return nil, err
	}
	level, err := internal.NewFeeLevel(levelName)
	if err != nil {
		return nil, err
	}

	base, err := flags.GetInt32(baseFlag)
	if err != nil {
		return nil, err
	}

	linear, err := flags.GetInt32(linearFlag)
	if err != nil {
		return nil, err
	}

	return &chargeConfig{
		Level:  level,
		Base:   base,
		Linear: linear,
	}, nil
}

func chargeCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "charge",
		Short: "Computes base + linear * factor for a fee level",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := parseChargeFlags(c.Flags())
			if err != nil {
				return err
			}

			energy := a.service.ChargeForLevel(config.Level, config.Base, config.Linear)
			a.log.Debug().
				Str("level", config.Level.ToString()).
				Int32("base", config.Base).
				Int32("linear", config.Linear).
				Int32("factor", a.config.FeeSchedule().Factor(config.Level).ToInt32()).
				Msg("computed charge")

			_, err = fmt.Fprintln(c.OutOrStdout(), energy)
			return err
		},
	}
	addChargeFlags(c.Flags())
	return c
}
