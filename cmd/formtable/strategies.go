package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtable/pkg/render"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available tag rendering strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := render.NewDefaultRegistry()
			if err != nil {
				return err
			}
			for _, name := range registry.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
