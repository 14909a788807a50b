package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dm/esdiag/internal/bundle"
)

func ResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <dir>",
		Short: "Print the diagnostic data directory found under dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := bundle.Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	return cmd
}
