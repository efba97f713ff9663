package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const jsonFlag = "json"

func tableCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "table",
		Short: "Prints the fee schedule and heap size table in effect",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			asJSON, err := c.Flags().GetBool(jsonFlag)
			if err != nil {
				return err
			}

			schedule := a.config.FeeSchedule().ToSpec()
			heapSizes := a.config.HeapSizes().ToSpec()

			if asJSON {
				encoder := json.NewEncoder(c.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(struct {
					FeeSchedule interface{} `json:"feeSchedule"`
					HeapSizes   interface{} `json:"heapSizes"`
				}{schedule, heapSizes})
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "level1 factor\t%d\n", schedule.Level1Factor)
			fmt.Fprintf(w, "level2 factor\t%d\n", schedule.Level2Factor)
			fmt.Fprintf(w, "default object size\t%d\n", heapSizes.DefaultObjectSize)
			fmt.Fprintf(w, "generated exception size\t%d\n", heapSizes.GeneratedExceptionSize)
			for _, entry := range heapSizes.Entries {
				fmt.Fprintf(w, "%s\t%d\n", entry.TypeName, entry.Size)
			}
			return w.Flush()
		},
	}
	c.Flags().Bool(jsonFlag, false, "print as JSON")
	return c
}
