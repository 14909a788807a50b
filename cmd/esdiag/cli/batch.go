package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/dm/esdiag/internal/metrics"
)

func BatchCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>...",
		Short: "Analyze several diagnostic bundles concurrently",
		Long: `Analyze several diagnostic bundles concurrently.

Every bundle gets its own subdirectory of the output directory. A bundle
that cannot be analyzed does not stop the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			tmpl, err := loadTemplate(cfg)
			if err != nil {
				return err
			}

			bundles := dedupe(args)
			dirs := outputDirs(cfg.OutputDir, bundles)

			var reg *prometheus.Registry
			recs := make([]*metrics.Recorder, len(bundles))
			if cfg.MetricsFile != "" {
				reg = prometheus.NewRegistry()
				for i, b := range bundles {
					recs[i] = metrics.NewRecorder(reg, b)
				}
			}

			results := make([]*runResult, len(bundles))
			errs := make([]error, len(bundles))
			var g errgroup.Group
			g.SetLimit(cfg.Parallel)
			for i, b := range bundles {
				g.Go(func() error {
					results[i], errs[i] = analyze(cfg, tmpl, b, dirs[i], recs[i])
					return nil
				})
			}
			_ = g.Wait()

			var failures *multierror.Error
			w := cmd.OutOrStdout()
			for i, b := range bundles {
				fmt.Fprintf(w, "== %s\n", b)
				if errs[i] != nil {
					klog.Errorf("bundle %s: %v", b, errs[i])
					fmt.Fprintln(w, styleLabel.Render("Error:"), errs[i])
					failures = multierror.Append(failures, fmt.Errorf("bundle %s: %w", b, errs[i]))
				} else {
					printSummary(w, results[i])
				}
				fmt.Fprintln(w)
			}

			if reg != nil {
				if err := metrics.WriteFile(cfg.MetricsFile, reg); err != nil {
					failures = multierror.Append(failures, err)
				}
			}
			return failures.ErrorOrNil()
		},
	}
	return cmd
}

// dedupe returns the cleaned paths in order, each once.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		p = filepath.Clean(p)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// outputDirs names one subdirectory of root per bundle after its base name,
// numbering repeated names.
func outputDirs(root string, bundles []string) []string {
	used := make(map[string]int, len(bundles))
	out := make([]string, len(bundles))
	for i, b := range bundles {
		name := strings.TrimPrefix(filepath.Base(b), ".")
		if name == "" || name == string(filepath.Separator) {
			name = "bundle"
		}
		used[name]++
		if n := used[name]; n > 1 {
			name += "-" + strconv.Itoa(n)
		}
		out[i] = filepath.Join(root, name)
	}
	return out
}
