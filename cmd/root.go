package cmd

import (
	"errors"
	"fmt"
	"os"

	"availability-watcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Without a subcommand it watches the given dates.
var RootCmd = &cobra.Command{
	Use:   "availability-watcher [dates...]",
	Short: "Watch timed-entry availability on recreation.gov",
	Long: `Availability Watcher polls the recreation.gov timed-entry API for a set of
dates in one month and prints a line as soon as any of them can be reserved.

Dates are given as arguments or, when omitted, read from stdin:
  availability-watcher 2024-05-10 2024-05-11`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWatch,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logCommandError(err)
		os.Exit(1)
	}
}

// logCommandError reports err through the console logger unless the command
// already printed it.
func logCommandError(err error) bool {
	var shown *reportedError
	if errors.As(err, &shown) {
		return false
	}

	// Use the application's standard logger for error reporting
	// Console format with the debug config for readable ISO8601 timestamps
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	return true
}
