package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/sinphase/pkg/sinphase"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Print the registration signature of every stage for the configured scheme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme, err := cfg.Scheme()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "scheme: %s\n", scheme.Name())
		for _, id := range sinphase.Stages() {
			fmt.Fprintf(out, "%d\t%-12s\t0x%016X\n", int(id), id, scheme.Sign(int(id)))
		}
		return nil
	},
}
