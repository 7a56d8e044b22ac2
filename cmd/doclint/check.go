package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doclint/internal/config"
	"doclint/internal/diagfmt"
	"doclint/internal/driver"
	"doclint/internal/version"

	// Register the built-in rules.
	_ "doclint/internal/rules/singlespace"
)

var checkCmd = &cobra.Command{
	Use:          "check [flags] path...",
	Short:        "Check documentation comments in files or directories",
	Long:         `Check parses every matching source file and runs the enabled style rules over its documentation comments`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "number of files to analyze concurrently (0 = one per CPU)")
	checkCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
	checkCmd.Flags().StringSlice("enable", nil, "force-enable rules by name (e.g. doc-line-single-space)")
	checkCmd.Flags().Bool("strict", false, "exit non-zero on any diagnostic, not only errors")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	enable, _ := cmd.Flags().GetStringSlice("enable")
	strict, _ := cmd.Flags().GetBool("strict")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Jobs:    jobs,
		NoCache: noCache,
		Enable:  enable,
	}

	totalErrors := false
	totalCount := 0
	for _, path := range args {
		result, err := opts.CheckPath(cmd.Context(), path, cfg)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		switch format {
		case "pretty":
			diagfmt.Pretty(os.Stdout, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stdout),
				PathMode:  "relative",
				ShowNotes: true,
			})
		case "json":
			if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         "relative",
			}); err != nil {
				return err
			}
		case "sarif":
			if err := diagfmt.Sarif(os.Stdout, result.Bag, result.FileSet, diagfmt.SarifRunMeta{
				ToolName:       "doclint",
				ToolVersion:    version.Plain,
				InformationURI: "https://github.com/doclint/doclint",
			}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}

		totalCount += result.Bag.Len()
		if result.Bag.HasErrors() {
			totalErrors = true
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && format == "pretty" {
		fmt.Fprintf(os.Stderr, "%d problem(s) found\n", totalCount)
	}

	if totalErrors || (strict && totalCount > 0) {
		return fmt.Errorf("problems found")
	}
	return nil
}

// loadConfig resolves --config, falls back to the nearest doclint.toml, and
// applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")

	var cfg *config.Config
	var err error
	switch {
	case path != "":
		cfg, err = config.Load(path)
	default:
		found, ok, ferr := config.Find(".")
		if ferr != nil {
			return nil, ferr
		}
		if ok {
			cfg, err = config.Load(found)
		} else {
			cfg = config.Default()
		}
	}
	if err != nil {
		return nil, err
	}

	if maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); maxDiag > 0 {
		cfg.MaxDiagnostics = maxDiag
	}
	return cfg, nil
}
