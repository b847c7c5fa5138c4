package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stalwartlabs/storekey/kv"
)

func newSubspacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subspaces",
		Short: "List the closed subspace table and its byte values",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sp := range kv.AllSubspaces {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", byte(sp), sp)
			}
			return nil
		},
	}
}
