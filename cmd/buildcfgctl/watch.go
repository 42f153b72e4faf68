package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"buildcfg/internal/app"
)

func newWatchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve and print whenever the presets file changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			watcher, err := app.NewWatcher(ctx, newResolver(opts), opts.presetsPath, opts.logger)
			if err != nil {
				return err
			}
			if err := printResolution(watcher.Current(), opts); err != nil {
				return err
			}

			updates, err := watcher.Watch(ctx)
			if err != nil {
				return err
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case update := <-updates:
					if err := printResolution(update.Resolution, opts); err != nil {
						return err
					}
				}
			}
		},
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
