package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"availability-watcher/core/config"
	"availability-watcher/core/logger"
	"availability-watcher/core/recgov"
	"availability-watcher/feature/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const datePrompt = "Enter dates in yyyy-MM-dd separated by spaces:"

// deps is what every command needs before it can poll.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	client recgov.Client
}

func loadDeps() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := recgov.NewClient(cfg.Recgov)
	if err != nil {
		return nil, fmt.Errorf("failed to create availability client: %w", err)
	}

	return &deps{cfg: cfg, logger: l, client: client}, nil
}

func (d *deps) target() watch.Target {
	return watch.Target{FacilityID: d.cfg.Recgov.FacilityID, TourID: d.cfg.Recgov.TourID}
}

// readDates returns the dates from args, or prompts and reads one line from in.
// A quoted argument holding several dates is split as well.
func readDates(in io.Reader, out io.Writer, args []string) ([]string, error) {
	if len(args) > 0 {
		var dates []string
		for _, arg := range args {
			dates = append(dates, watch.SplitDates(arg)...)
		}
		return dates, nil
	}

	fmt.Fprintln(out, datePrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read dates: %w", err)
	}
	return watch.SplitDates(line), nil
}

// reportedError wraps an error that was already printed for the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// readValidDates reads the dates and checks them before any configuration is
// loaded, so a date mistake is reported first. The message goes to stderr as is.
func readValidDates(cmd *cobra.Command, args []string) ([]string, error) {
	raw, err := readDates(cmd.InOrStdin(), cmd.OutOrStdout(), args)
	if err != nil {
		return nil, err
	}
	if _, err := watch.ValidateDates(raw); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return nil, &reportedError{err: err}
	}
	return raw, nil
}
