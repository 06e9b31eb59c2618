package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/stackstats/internal/config"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks an error caused by how the command was invoked.
// It makes run print the command's usage and exit with exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// asUsageError wraps err in a usageError. A nil err stays nil.
func asUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// NewRootCmd creates the root command. The root command itself computes the
// statistics; version is its only subcommand.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Summarize Stack Overflow answers posted in a date range",
		Long: `stats fetches every Stack Overflow answer created between --since and --until
from the StackExchange API, counts the comments on the ten highest scored
answers and prints a summary:

  total_accepted_answers          number of accepted answers
  accepted_answers_average_score  mean score of the accepted answers
  average_answers_per_question    mean number of answers per question
  top_ten_answers_comment_count   answer id to comment count, top ten by score

Dates are read in the local time zone.

If a request fails, the summary is computed from the data fetched up to that
point. Use --strict to exit with an error in that case.

Examples:
  # Print the summary as JSON
  stats --since "20200202 10:00:00" --until "20200202 10:02:00"

  # Print the summary as an HTML table
  stats --since "20200202 10:00:00" --until "20200202 10:02:00" --output-format html

  # Write CSV to a file and show every request on stderr
  stats -v --since "20200202 10:00:00" --until "20200202 10:02:00" \
    --output-format csv -o out/stats.csv`,
		Version:       getVersion(),
		Args:          func(cmd *cobra.Command, args []string) error { return asUsageError(cobra.NoArgs(cmd, args)) },
		RunE:          runStatsCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	addStatsFlags(cmd)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return asUsageError(err)
	})

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits the process.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "Error:", err)

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitFailure
}
