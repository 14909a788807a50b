// Package cli implements the esdiag command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dm/esdiag/internal/config"
	"github.com/dm/esdiag/internal/logger"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath   string
	locale       string
	outputDir    string
	template     string
	cacheSize    int
	maxLineBytes int
	metricsFile  string
	parallel     int
	quiet        bool
}

func RootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "esdiag",
		Short:        "Generate inspection reports from Elasticsearch diagnostic bundles",
		Long:         `Analyze an extracted Elasticsearch support-diagnostics bundle and write a Markdown inspection report with per-section case files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetQuiet(opts.quiet)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.locale, "locale", "", "report language: en or zh")
	flags.StringVarP(&opts.outputDir, "output", "o", "", "directory receiving the report and case files")
	flags.StringVar(&opts.template, "template", "", "custom report template with {{NAME}} placeholders")
	flags.IntVar(&opts.cacheSize, "cache-size", 0, "number of decoded artifacts kept in memory")
	flags.IntVar(&opts.maxLineBytes, "max-line-bytes", 0, "log lines longer than this are dropped")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")
	flags.IntVar(&opts.parallel, "parallel", 0, "bundles analyzed at once by batch")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "discard log output")
	logger.InitFlags(flags)

	cmd.AddCommand(
		ReportCmd(opts),
		BatchCmd(opts),
		ResolveCmd(),
		ViewCmd(),
		VersionCmd(),
	)
	return cmd
}

func InitAndExecute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers the changed flags of cmd over the config file.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = opts.locale
	}
	if flags.Changed("output") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("template") {
		cfg.Template = opts.template
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = opts.cacheSize
	}
	if flags.Changed("max-line-bytes") {
		cfg.MaxLineBytes = opts.maxLineBytes
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if flags.Changed("parallel") {
		cfg.Parallel = opts.parallel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
