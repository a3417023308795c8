package cli

import (
	"fmt"
	"github.com/heyvito/trilist"
	"github.com/heyvito/trilist/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type runOptions struct {
	configPath string
	only       string
	resets     []string
	quantiles  []float64
	reverse    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "trilist [file...]",
		Short: "Classify tokens as int, float or string and print them through per-type modifier pipelines",
		Long: `trilist reads whitespace separated tokens from the given files (or stdin),
stores each one as an int, a float or a string, and prints them back in input
order after applying the modifiers declared in a pipelines file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd, args, opts, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file declaring the int, float and string pipelines")
	cmd.Flags().StringVar(&opts.only, "only", "", "Print only values of one kind: int|float|string")
	cmd.Flags().StringSliceVar(&opts.resets, "reset", nil, "Clear the pipeline of the given kinds after loading the config")
	cmd.Flags().Float64SliceVar(&opts.quantiles, "quantiles", nil, "Print a summary with these quantiles of the float values (or of --only int)")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "Print values from last to first")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts runOptions, logger *zap.Logger) error {
	if opts.only != "" {
		if _, err := parseKind(opts.only); err != nil {
			return err
		}
	}

	l := trilist.NewWithOptions[int64, float64, string](&trilist.Options{LogHandler: logger})
	if err := readInputs(cmd, args, l); err != nil {
		return err
	}
	logger.Debug("Loaded input", zap.Int("tokens", l.Len()))

	if opts.configPath != "" {
		pipelines, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		if err = pipelines.Register(l); err != nil {
			return err
		}
	}

	for _, name := range opts.resets {
		k, err := parseKind(name)
		if err != nil {
			return err
		}
		k.reset(l)
	}

	out := cmd.OutOrStdout()
	if len(opts.quantiles) > 0 {
		return printSummary(out, l, opts.only, opts.quantiles)
	}
	if opts.only != "" {
		k, _ := parseKind(opts.only)
		return printKind(out, l, k, opts.reverse)
	}
	return printAll(out, l, opts.reverse)
}
