package cli

import (
	"fmt"

	"github.com/mgpai22/srtgap/internal/config"
	"github.com/mgpai22/srtgap/internal/subtitle"
	"github.com/spf13/cobra"
)

// splitModeArg strips a trailing before/after token from args.
func splitModeArg(args []string) ([]string, subtitle.Mode, bool) {
	if len(args) == 0 {
		return args, "", false
	}
	mode, err := subtitle.ParseMode(args[len(args)-1])
	if err != nil {
		return args, "", false
	}
	return args[:len(args)-1], mode, true
}

// resolveMode picks the gap mode: trailing token, then --mode, then config.
func resolveMode(
	cmd *cobra.Command,
	cfg *config.Config,
	args []string,
) ([]string, subtitle.Mode, error) {
	patterns, mode, ok := splitModeArg(args)
	if ok {
		return patterns, mode, nil
	}

	if cmd.Flags().Changed("mode") {
		value, _ := cmd.Flags().GetString("mode")
		mode, err := subtitle.ParseMode(value)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --mode: %w", err)
		}
		return patterns, mode, nil
	}

	mode, err := cfg.GapMode()
	if err != nil {
		return nil, "", err
	}
	return patterns, mode, nil
}
