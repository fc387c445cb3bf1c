package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cmeijn/dp-events/internal/calendar"
	"github.com/cmeijn/dp-events/internal/overview"
	"github.com/cmeijn/dp-events/internal/scraper"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitNonExisting = 2
)

var (
	flagFormat   string
	flagTimezone string
	flagTimeout  time.Duration
	flagICSPath  string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dp-events <event-url>",
		Short: "Show the summary of a datumprikker.nl event",
		Long: `A CLI tool that fetches a datumprikker.nl event-overview page and
prints its summary: canonical URL, title, the finalized date range once
scheduling has concluded, and the open-registration link if signups are
still open.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "Local", "IANA timezone for displaying the final date")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", scraper.Timeout, "Overall fetch timeout")
	cmd.Flags().StringVar(&flagICSPath, "ics", "", "Write an iCalendar file for a finalized event")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runShow is the main command logic
func runShow(cmd *cobra.Command, args []string) error {
	url := args[0]

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	loc, err := time.LoadLocation(flagTimezone)
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}

	log := newLogger(flagVerbose)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	sc := scraper.New(log)
	evt, err := sc.FetchEvent(ctx, url)
	if err != nil {
		if errors.Is(err, overview.ErrNonExistingEvent) {
			fmt.Fprintln(os.Stderr, "Error: this event does not exist.")
			os.Exit(ExitNonExisting)
		}
		return fmt.Errorf("fetching event: %w", err)
	}

	if flagICSPath != "" {
		ics, err := calendar.GenerateICS(evt)
		if err != nil {
			return fmt.Errorf("generating calendar: %w", err)
		}
		if err := os.WriteFile(flagICSPath, []byte(ics), 0o644); err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		log.Debug("calendar written", zap.String("path", flagICSPath))
	}

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Event:     evt,
	}

	if err := WriteOutput(os.Stdout, result, format, loc); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// newLogger builds the console logger. Verbose mode enables debug-level
// diagnostics from the scraper.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
