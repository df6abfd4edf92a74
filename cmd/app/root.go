package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/qoe-monitor/infrastructure"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

func newRootCommand(kernel *infrastructure.Kernel) *cobra.Command {
	root := &cobra.Command{
		Use:           "qoe-monitor",
		Short:         "Network quality of experience dashboard client",
		Version:       serviceVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(kernel),
		newLogoutCommand(kernel),
		newWhoamiCommand(kernel),
		newDashboardCommand(kernel),
		newTrendsCommand(kernel),
		newDistributionCommand(kernel),
		newListCommand(kernel),
		newRegionsCommand(kernel),
		newMapCommand(kernel),
		newConfigCommand(kernel),
		newUsersCommand(kernel),
		newSettingsCommand(kernel),
		newAlertsCommand(kernel),
		newServeCommand(kernel),
		newWatchCommand(kernel),
	)

	return root
}

func requireAuth(kernel *infrastructure.Kernel) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if !kernel.InjectSessionService().IsAuthenticated() {
			return errs.ErrNotAuthenticated
		}

		return nil
	}
}

func requireAdmin(kernel *infrastructure.Kernel) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return kernel.InjectSessionService().RequireAdmin()
	}
}

func addTimeRangeFlag(cmd *cobra.Command) {
	cmd.Flags().String("range", entities.TimeRangeLastDay.String(), "time range: last-hour, last-day, last-week or last-month")
}

func timeRangeFlag(cmd *cobra.Command) (entities.TimeRange, error) {
	value, err := cmd.Flags().GetString("range")
	if err != nil {
		return "", fmt.Errorf("timeRangeFlag: %w", err)
	}

	return entities.ParseTimeRange(value)
}
