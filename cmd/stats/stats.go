package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nao1215/stackstats/internal/config"
	"github.com/nao1215/stackstats/internal/log"
	"github.com/nao1215/stackstats/internal/model"
	"github.com/nao1215/stackstats/internal/report"
	"github.com/nao1215/stackstats/internal/stackexchange"
	"github.com/nao1215/stackstats/internal/stats"
	"github.com/nao1215/stackstats/internal/timestamp"
)

var _ pflag.Value = (*model.Format)(nil)

// addStatsFlags registers the flags of the stats computation on cmd.
func addStatsFlags(cmd *cobra.Command) {
	format := config.DefaultFormat

	// Date range
	cmd.Flags().String("since", "",
		fmt.Sprintf("Start of the date range, %q in local time (required)", timestamp.Format))
	cmd.Flags().String("until", "",
		fmt.Sprintf("End of the date range, %q in local time (required)", timestamp.Format))

	// Report flags
	cmd.Flags().Var(&format, "output-format",
		"Output format: json, csv or html")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Request behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each API request (0 waits indefinitely)")
	cmd.Flags().Bool("strict", false,
		"Exit with an error after printing the report if any request failed")

	cmd.Flags().String("api-url", config.DefaultBaseURL, "StackExchange API base URL")
	cmd.Flags().String("site", config.DefaultSite, "StackExchange site parameter")
	_ = cmd.Flags().MarkHidden("api-url")
	_ = cmd.Flags().MarkHidden("site")
}

// runStatsCmd executes the stats computation.
func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return asUsageError(err)
	}

	// Dates are checked before any request is sent.
	since, err := timestamp.Parse(cfg.Since)
	if err != nil {
		return asUsageError(fmt.Errorf("--since: %w", err))
	}
	until, err := timestamp.Parse(cfg.Until)
	if err != nil {
		return asUsageError(fmt.Errorf("--until: %w", err))
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)

	return runStats(cmd, cfg, since, until, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Since, err = cmd.Flags().GetString("since")
	if err != nil {
		return nil, err
	}

	cfg.Until, err = cmd.Flags().GetString("until")
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("output-format"); f != nil {
		if format, ok := f.Value.(*model.Format); ok {
			cfg.OutputFormat = *format
		}
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Strict, err = cmd.Flags().GetBool("strict")
	if err != nil {
		return nil, err
	}

	cfg.BaseURL, err = cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, err
	}

	cfg.Site, err = cmd.Flags().GetString("site")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runStats collects the summary, prints it and applies --strict.
func runStats(cmd *cobra.Command, cfg *config.Config, since, until int64, logger *slog.Logger) error {
	client := stackexchange.New(
		stackexchange.WithBaseURL(cfg.BaseURL),
		stackexchange.WithSite(cfg.Site),
		stackexchange.WithTimeout(cfg.Timeout),
		stackexchange.WithLogger(logger),
	)

	logger.Debug("collecting statistics",
		"since", since,
		"until", until,
		"format", cfg.OutputFormat.String(),
	)

	result := stats.Collect(cmd.Context(), client, since, until, logger)
	if !result.Complete {
		logger.Debug("summary computed from partial data", "answers", result.Answers, "error", result.Err)
	}

	if err := outputReport(cmd.OutOrStdout(), cfg, result.Summary); err != nil {
		return err
	}

	if cfg.Strict && !result.Complete {
		return fmt.Errorf("some requests failed, the report is computed from partial data: %w", result.Err)
	}
	return nil
}

// outputReport writes the summary in the configured format to the report
// file, or to stdout when no file is set.
func outputReport(stdout io.Writer, cfg *config.Config, summary *model.Summary) (err error) {
	output := stdout
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, openErr := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if openErr != nil {
			return fmt.Errorf("failed to create output file: %w", openErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		output = f
	}

	writer, err := report.NewWriter(cfg.OutputFormat, output)
	if err != nil {
		return err
	}
	if _, err = writer.Write(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
