package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrisconley/energymeter/internal"
)

const (
	generatedExceptionFlag = "generated-exception"
	dottedFlag             = "dotted"
)

func sizeOfCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "sizeof [TYPE...]",
		Short: "Prints the allocation size charged for each type name",
		RunE: func(c *cobra.Command, args []string) error {
			flags := c.Flags()
			generated, err := flags.GetBool(generatedExceptionFlag)
			if err != nil {
				return err
			}
			dotted, err := flags.GetBool(dottedFlag)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if generated {
				if _, err := fmt.Fprintf(out, "<generated exception>\t%d\n", a.service.SizeOfGeneratedException()); err != nil {
					return err
				}
			}
			if !generated && len(args) == 0 {
				return fmt.Errorf("at least one type name is required")
			}

			for _, name := range args {
				if dotted {
					name = internal.InternalTypeName(name)
				}
				if _, err := fmt.Fprintf(out, "%s\t%d\n", name, a.service.SizeOf(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := c.Flags()
	flags.Bool(generatedExceptionFlag, false, "print the size charged for engine-generated exceptions")
	flags.Bool(dottedFlag, false, "convert dotted type names (a.b.C) to slash-delimited form first")
	return c
}
