package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"availability-watcher/core/clock"
	"availability-watcher/core/loader"
	"availability-watcher/core/server"
	"availability-watcher/feature/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const startBanner = "OK! I'll begin scanning those dates now. Keep this window open and I'll update you when I find anything!"

func runWatch(cmd *cobra.Command, args []string) error {
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
	sink := watch.NewWriterSink(cmd.OutOrStdout(), clk)
	poller := watch.NewPoller(d.client, sink, clk, d.logger, d.cfg.Watch, d.target(), recorder)

	if _, err := poller.Validate(raw); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), startBanner)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if d.cfg.Server.Enabled {
		mgr := loader.NewManager()
		mgr.Register(watch.NewFeature(poller, recorder, d.logger))

		app, err := server.New(d.cfg.Server, d.logger, mgr)
		if err != nil {
			return fmt.Errorf("failed to build status server: %w", err)
		}
		g.Go(func() error {
			return server.Serve(ctx, app, d.cfg.Server, d.logger)
		})
	}

	g.Go(func() error {
		return poller.Poll(ctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	d.logger.Info("Watcher stopped", zap.Uint64("ticks", poller.Ticks()))
	return nil
}
