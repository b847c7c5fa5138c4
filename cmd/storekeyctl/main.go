// Command storekeyctl is a small operator CLI over the reference
// in-memory engine: it can list the subspace table, seed the engine
// from a hex-encoded dump, and export its contents as a compressed
// snapshot. It is new surface area owned by this repository, not a
// port of any HTTP/SMTP/IMAP/sieve CLI named in spec.md §6.4.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "storekeyctl: logger init:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	root := newRootCmd(log)
	if err := root.Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(log *zap.Logger) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "storekeyctl",
		Short: "Operator tool for the storekey reference engine",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a storekeyctl YAML config file")

	root.AddCommand(newSubspacesCmd())
	root.AddCommand(newExportCmd(log, &configPath))
	return root
}
