package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func multiplyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply A B",
		Short: "Multiplies two 32-bit quantities at 64-bit width",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			value1, err := parseInt32(args[0])
			if err != nil {
				return err
			}
			value2, err := parseInt32(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.OutOrStdout(), a.service.Multiply(value1, value2))
			return err
		},
	}
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid 32-bit integer %q: %w", s, err)
	}
	return int32(v), nil
}
