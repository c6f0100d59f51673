package cmd

import (
	"fmt"
	"io"
	"strconv"

	"availability-watcher/core/clock"
	"availability-watcher/feature/watch"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var checkJSON bool

// checkCmd runs a single tick and prints every date, available or not.
var checkCmd = &cobra.Command{
	Use:   "check [dates...]",
	Short: "Check availability once and print every date",
	Long: `Queries the monthly and daily endpoints once for the given dates and prints
the effective quantity of each one, including zero and negative quantities.

Exits with an error when the monthly request fails.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print results as JSON")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	raw, err := readValidDates(cmd, args)
	if err != nil {
		return err
	}

	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	clk := clock.NewSystem()
	recorder := watch.NewRecorder()
	poller := watch.NewPoller(d.client, watch.NewWriterSink(io.Discard, clk), clk, d.logger, d.cfg.Watch, d.target(), recorder)

	if _, err := poller.Validate(raw); err != nil {
		return err
	}

	report := poller.Tick(cmd.Context())
	if report.Failed() {
		return fmt.Errorf("availability check failed: %w", report.Err)
	}

	results := watch.NewService(poller, recorder, d.logger).Results()
	if checkJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	}

	writeResults(cmd.OutOrStdout(), results)
	return nil
}

func writeResults(w io.Writer, results []watch.DateStatus) {
	fmt.Fprintf(w, "%-12s %-9s %-10s %s\n", "DATE", "QUANTITY", "SECONDARY", "STATUS")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%-12s %-9s %-10s error (%s): %s\n", r.Date, "-", "-", r.ErrorKind, r.Error)
			continue
		}

		secondary := "no"
		if r.IncludeSecondary {
			secondary = "yes"
		}
		status := "unavailable"
		if r.Available {
			status = "AVAILABLE"
		}
		fmt.Fprintf(w, "%-12s %-9s %-10s %s\n", r.Date, strconv.Itoa(r.Quantity), secondary, status)
	}
}
