package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dm/esdiag/internal/tui"
)

func ViewCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "view <report.md>",
		Short: "Browse a generated report in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read report: %w", err)
			}
			return tui.Run(filepath.Base(args[0]), string(b), tui.WithStyle(style))
		},
	}
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty, ...")
	return cmd
}
