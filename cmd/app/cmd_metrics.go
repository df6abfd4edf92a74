package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/qoe-monitor/infrastructure"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/export"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/formatter"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func newDashboardCommand(kernel *infrastructure.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Show average speeds, latency and availability",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := timeRangeFlag(cmd)
			if err != nil {
				return err
			}

			dashboard := kernel.InjectMetricsService().GetAllMetrics(cmd.Context(), timeRange)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dashboard(dashboard, timeRange))
			return nil
		},
	}

	addTimeRangeFlag(cmd)
	return cmd
}

func newTrendsCommand(kernel *infrastructure.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trends",
		Short:   "Show download, upload and latency over time",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := timeRangeFlag(cmd)
			if err != nil {
				return err
			}

			chart, err := kernel.InjectMetricsService().GetNetworkHistogram(cmd.Context(), timeRange)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Trends(chart, timeRange))
			return nil
		},
	}

	addTimeRangeFlag(cmd)
	return cmd
}

func newDistributionCommand(kernel *infrastructure.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "distribution",
		Short:   "Show measurements per cellular technology",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := timeRangeFlag(cmd)
			if err != nil {
				return err
			}

			chart, err := kernel.InjectMetricsService().GetNetworkDistribution(cmd.Context(), timeRange)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Distribution(chart, timeRange))
			return nil
		},
	}

	addTimeRangeFlag(cmd)
	return cmd
}

func newListCommand(kernel *infrastructure.Kernel) *cobra.Command {
	var (
		metric string
		page   int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Show detailed measurements of one test type",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := timeRangeFlag(cmd)
			if err != nil {
				return err
			}

			list, err := kernel.InjectMetricsService().GetDetailedList(cmd.Context(), entities.DetailedListParams{
				Start:  timeRange,
				Page:   page,
				Metric: entities.MetricType(metric),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.DetailedList(list))
			return nil
		},
	}

	addTimeRangeFlag(cmd)
	cmd.Flags().StringVarP(&metric, "metric", "m", string(entities.MetricTypeNetwork), "test type: network, http, sms, dns or ping")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newRegionsCommand(kernel *infrastructure.Kernel) *cobra.Command {
	return &cobra.Command{
		Use:     "regions",
		Short:   "Show signal strength and quality per region",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			regions, err := kernel.InjectMetricsService().GetRegionList(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Regions(regions))
			return nil
		},
	}
}

func newMapCommand(kernel *infrastructure.Kernel) *cobra.Command {
	var (
		bounds     entities.Bounds
		metric     string
		limit      int
		exportTo   string
		output     string
		deviceInfo bool
	)

	cmd := &cobra.Command{
		Use:     "map",
		Short:   "Show or export the measurement points of an area",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !lo.Contains([]string{coloring.MetricSignal, coloring.MetricQuality}, metric) {
				return fmt.Errorf("unknown metric %q", metric)
			}

			boundsFlags := []string{"min-lat", "max-lat", "min-long", "max-long"}
			changed := lo.CountBy(boundsFlags, func(name string) bool {
				return cmd.Flags().Changed(name)
			})

			var area *entities.Bounds
			switch changed {
			case 0:
			case len(boundsFlags):
				area = &bounds
			default:
				return fmt.Errorf("bounds require --min-lat, --max-lat, --min-long and --max-long")
			}

			points, err := kernel.InjectMapDataService().GetMapData(cmd.Context(), area)
			if err != nil {
				return err
			}

			markers := mapdata.Markers(mapdata.FilterValidPoints(points), metric)
			if !cmd.Flags().Changed("export") && lo.IsEmpty(output) {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, formatter.Markers(markers, limit))
				fmt.Fprintln(out, formatter.AreaStats(mapdata.Stats(markers)))
				return nil
			}

			return exportMarkers(cmd, kernel, markers, exportTo, output, deviceInfo)
		},
	}

	cmd.Flags().Float64Var(&bounds.MinLat, "min-lat", 0, "south edge")
	cmd.Flags().Float64Var(&bounds.MaxLat, "max-lat", 0, "north edge")
	cmd.Flags().Float64Var(&bounds.MinLong, "min-long", 0, "west edge")
	cmd.Flags().Float64Var(&bounds.MaxLong, "max-long", 0, "east edge")
	cmd.Flags().StringVarP(&metric, "metric", "m", coloring.MetricSignal, "color markers by signal or quality")
	cmd.Flags().IntVar(&limit, "limit", 50, "rows to print, 0 prints all")
	cmd.Flags().StringVar(&exportTo, "export", "", "export format: csv, kml or json, stored setting when empty")
	cmd.Flags().StringVarP(&output, "output", "o", "", "export to file instead of stdout")
	cmd.Flags().BoolVar(&deviceInfo, "device-info", true, "include device columns in exports")
	return cmd
}

func exportMarkers(cmd *cobra.Command, kernel *infrastructure.Kernel, markers []coloring.Marker,
	exportTo, output string, deviceInfo bool) (err error) {
	settings, err := kernel.InjectSettingsService().Get()
	if err != nil {
		return err
	}

	options, err := exportOptions(exportTo, deviceInfo, cmd.Flags().Changed("device-info"), settings.Export)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lo.IsNotEmpty(output) {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("exportMarkers: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err = export.Write(out, markers, options); err != nil {
		return err
	}

	if lo.IsNotEmpty(output) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d points to %s\n", len(markers), output)
	}
	return nil
}

// exportOptions fills what the flags left unset from the stored export settings.
func exportOptions(exportTo string, deviceInfo, deviceInfoSet bool, settings entities.ExportSettings) (options export.Options, err error) {
	options.Format, err = export.ParseFormat(lo.Ternary(lo.IsNotEmpty(exportTo), exportTo, settings.Format))
	if err != nil {
		return options, err
	}

	options.IncludeDeviceInfo = lo.Ternary(deviceInfoSet, deviceInfo, settings.IncludeDeviceInfo)
	return options, nil
}
