package cli

import (
	"fmt"

	"github.com/mgpai22/srtgap/internal/config"
	"github.com/mgpai22/srtgap/internal/logging"
	"github.com/mgpai22/srtgap/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtgap <file_pattern>... [before|after]",
	Short: "Remove timing gaps between consecutive subtitles",
	Long: `srtgap rewrites SRT subtitle files in place so that every subtitle
ends exactly where the next one begins.

The optional last argument chooses which side of each gap moves:
  after   extend (or trim) the earlier subtitle to the next start (default)
  before  move the later subtitle's start back to the previous end

File arguments may be glob patterns. Malformed blocks are dropped with a
warning; files that are not UTF-8 are read as Latin-1 and written as UTF-8.

Examples:
  srtgap movie.srt
  srtgap "season1/*.srt" before
  srtgap --dry-run -v episode*.srt`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runGapRemoval,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ./srtgap.toml or ~/.config/srtgap/config.toml)")

	rootCmd.Flags().
		StringP("mode", "m", "", "Gap mode when no trailing before/after is given (before, after)")
	rootCmd.Flags().
		BoolP("dry-run", "n", false, "Report changes without writing files")
	rootCmd.Flags().
		Bool("no-summary", false, "Do not print the summary table")
}

func runGapRemoval(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg, source, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if source != "" {
		logger.Debugw("Loaded config", "path", source)
	}

	patterns, mode, err := resolveMode(cmd, cfg, args)
	if err != nil {
		return err
	}

	dryRun := cfg.DryRun
	if cmd.Flags().Changed("dry-run") {
		dryRun, _ = cmd.Flags().GetBool("dry-run")
	}
	noSummary, _ := cmd.Flags().GetBool("no-summary")

	logger.Debugw("Starting subtitle gap removal",
		"args", args,
		"patterns", patterns,
		"mode", mode,
		"dry_run", dryRun,
	)

	processor := pipeline.NewProcessor(pipeline.Options{
		Mode:   mode,
		DryRun: dryRun,
	}, logger)

	batch := processor.Run(patterns)

	if len(batch.Files) > 0 && cfg.Summary && !noSummary {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderSummary(batch, shouldColorize(out)))
	}

	if batch.Failed() {
		return fmt.Errorf(
			"%d of %d file(s) failed",
			batch.Count(pipeline.StatusFailed),
			len(batch.Files),
		)
	}
	return nil
}
