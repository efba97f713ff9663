package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/chrisconley/energymeter/internal"
)

const (
	energyFlag = "energy"
	priceFlag  = "price"
)

func quoteCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "quote",
		Short: "Converts an amount of energy into a native-token fee",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			energy, err := flags.GetInt64(energyFlag)
			if err != nil {
				return err
			}

			price := a.config.EnergyPrice()
			if flags.Changed(priceFlag) {
				priceValue, err := flags.GetString(priceFlag)
				if err != nil {
					return err
				}
				price, err = internal.NewEnergyPrice(priceValue)
				if err != nil {
					return err
				}
			}

			quote, err := internal.QuoteFee(energy, price)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(c.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(quote)
		},
	}

	flags := c.Flags()
	flags.Int64(energyFlag, 0, "energy amount")
	flags.String(priceFlag, "", "energy price; overrides the config value")
	return c
}
