package cli

import (
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dm/esdiag/internal/metrics"
)

func ReportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <dir>",
		Short: "Analyze one diagnostic bundle and write its report",
		Long: `Analyze one diagnostic bundle and write its report.

dir is either the data directory itself or a directory whose first-level
subdirectory holds the diagnostic files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			tmpl, err := loadTemplate(cfg)
			if err != nil {
				return err
			}

			var (
				reg *prometheus.Registry
				rec *metrics.Recorder
			)
			if cfg.MetricsFile != "" {
				reg = prometheus.NewRegistry()
				rec = metrics.NewRecorder(reg, filepath.Clean(args[0]))
			}

			res, err := analyze(cfg, tmpl, args[0], cfg.OutputDir, rec)
			if err != nil {
				return err
			}
			if reg != nil {
				if err := metrics.WriteFile(cfg.MetricsFile, reg); err != nil {
					return err
				}
			}
			printSummary(cmd.OutOrStdout(), res)
			return nil
		},
	}
	return cmd
}
