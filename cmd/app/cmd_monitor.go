package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/qoe-monitor/infrastructure"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/formatter"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/watch"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func newAlertsCommand(kernel *infrastructure.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alerts",
		Short:   "Evaluate alert thresholds against current metrics",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := timeRangeFlag(cmd)
			if err != nil {
				return err
			}

			report, err := kernel.InjectWatchService().Tick(cmd.Context(), timeRange)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alerts(report.Alerts))
			return nil
		},
	}

	addTimeRangeFlag(cmd)
	return cmd
}

func newWatchCommand(kernel *infrastructure.Kernel) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Refresh metrics and alerts periodically",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := timeRangeFlag(cmd)
			if err != nil {
				return err
			}

			settings, err := kernel.InjectSettingsService().Get()
			if err != nil {
				return err
			}

			interval = refreshInterval(interval, cmd.Flags().Changed("interval"), settings)

			out := cmd.OutOrStdout()
			kernel.InjectWatchService().Run(cmd.Context(), interval, timeRange, func(report watch.Report) {
				fmt.Fprintf(out, "\n%s\n", report.At.Local().Format(time.DateTime))
				fmt.Fprintln(out, formatter.Dashboard(report.Metrics, timeRange))
				if report.Stats != nil {
					fmt.Fprintln(out, formatter.AreaStats(*report.Stats))
				}
				fmt.Fprintln(out, formatter.Alerts(report.Alerts))
			})
			return nil
		},
	}

	addTimeRangeFlag(cmd)
	cmd.Flags().DurationVar(&interval, "interval", kernel.Env().Monitor.WatchInterval, "refresh interval, stored sync interval when unset")
	return cmd
}

func newServeCommand(kernel *infrastructure.Kernel) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the live map feed and answer broker requests",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := timeRangeFlag(cmd)
			if err != nil {
				return err
			}

			monitor := kernel.Env().Monitor

			settings, err := kernel.InjectSettingsService().Get()
			if err != nil {
				return err
			}
			interval := refreshInterval(monitor.WatchInterval, false, settings)

			var wg conc.WaitGroup
			defer wg.Wait()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			wg.Go(func() {
				kernel.InjectWatchService().Run(ctx, interval, timeRange, func(report watch.Report) {
					log.Info().
						Int("alerts", len(report.Alerts)).
						Time("at", report.At).
						Msg("serve: report refreshed")
				})
			})

			if broker := kernel.InjectBroker(); broker != nil {
				log.Info().Msg("serve: answering broker requests")
				wg.Go(func() {
					if err := broker.Serve(ctx, getMQRoutes(kernel)); err != nil {
						log.Error().Err(err).Msg("serve: broker error")
					}
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Map feed listening on %s\n", addr)
			return kernel.InjectMapFeedServer().Run(ctx, addr)
		},
	}

	addTimeRangeFlag(cmd)
	cmd.Flags().StringVar(&addr, "listen", kernel.Env().Monitor.ListenAddr, "listen address")
	return cmd
}

// refreshInterval prefers the flag, then the stored sync interval, then the environment default.
func refreshInterval(fallback time.Duration, flagSet bool, settings entities.Settings) time.Duration {
	if flagSet || settings.SyncIntervalSec <= 0 {
		return fallback
	}

	return time.Duration(settings.SyncIntervalSec) * time.Second
}
