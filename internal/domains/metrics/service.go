package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type (
	IAPIClient interface {
		Get(ctx context.Context, path string, result any, options ...apiclient.RequestOption) (err error)
	}
)

type Service struct {
	apiClient IAPIClient
	validate  *validator.Validate
}

func NewService(apiClient IAPIClient) *Service {
	return &Service{
		apiClient: apiClient,
		validate:  validator.New(),
	}
}

func (s *Service) GetAvgDownSpeed(ctx context.Context, timeRange entities.TimeRange) (metric entities.AverageMetric, err error) {
	if metric, err = s.getAverage(ctx, constants.PathAvgDownSpeed, timeRange); err != nil {
		return metric, fmt.Errorf("GetAvgDownSpeed: %w", err)
	}

	return metric, nil
}

func (s *Service) GetAvgUpSpeed(ctx context.Context, timeRange entities.TimeRange) (metric entities.AverageMetric, err error) {
	if metric, err = s.getAverage(ctx, constants.PathAvgUpSpeed, timeRange); err != nil {
		return metric, fmt.Errorf("GetAvgUpSpeed: %w", err)
	}

	return metric, nil
}

func (s *Service) GetAvgLatency(ctx context.Context, timeRange entities.TimeRange) (metric entities.AverageMetric, err error) {
	if metric, err = s.getAverage(ctx, constants.PathAvgLatency, timeRange); err != nil {
		return metric, fmt.Errorf("GetAvgLatency: %w", err)
	}

	return metric, nil
}

func (s *Service) GetNetworkAvailability(ctx context.Context, timeRange entities.TimeRange) (metric entities.AverageMetric, err error) {
	if metric, err = s.getAverage(ctx, constants.PathNetworkAvailability, timeRange); err != nil {
		return metric, fmt.Errorf("GetNetworkAvailability: %w", err)
	}

	return metric, nil
}

func (s *Service) getAverage(ctx context.Context, path string, timeRange entities.TimeRange) (metric entities.AverageMetric, err error) {
	var resp entities.MetricResponse
	if err = s.apiClient.Get(ctx, path, &resp, withStart(timeRange)); err != nil {
		return metric, err
	}

	return resp.Data, nil
}

type metricResult struct {
	Name   string
	Sample *entities.MetricSample
	Err    error
}

// GetAllMetrics fetches the four dashboard averages in parallel. A failed or empty
// metric is left nil and never fails the whole call.
func (s *Service) GetAllMetrics(ctx context.Context, timeRange entities.TimeRange) entities.DashboardMetrics {
	fetchers := []struct {
		name  string
		fetch func(ctx context.Context, timeRange entities.TimeRange) (entities.AverageMetric, error)
		pick  func(metric entities.AverageMetric) *entities.MetricSample
	}{
		{name: "downloadSpeed", fetch: s.GetAvgDownSpeed, pick: speedSample},
		{name: "uploadSpeed", fetch: s.GetAvgUpSpeed, pick: speedSample},
		{name: "latency", fetch: s.GetAvgLatency, pick: latencySample},
		{name: "availability", fetch: s.GetNetworkAvailability, pick: availabilitySample},
	}

	p := pool.NewWithResults[*metricResult]().WithMaxGoroutines(len(fetchers))
	for _, fetcher := range fetchers {
		p.Go(func() *metricResult {
			metric, err := fetcher.fetch(ctx, timeRange)
			if err != nil {
				return &metricResult{Name: fetcher.name, Err: err}
			}

			return &metricResult{Name: fetcher.name, Sample: fetcher.pick(metric)}
		})
	}

	var metrics entities.DashboardMetrics
	for _, result := range p.Wait() {
		if result.Err != nil {
			log.Warn().
				Err(result.Err).
				Str("metric", result.Name).
				Msg("GetAllMetrics")
			continue
		}

		switch result.Name {
		case "downloadSpeed":
			metrics.DownloadSpeed = result.Sample
		case "uploadSpeed":
			metrics.UploadSpeed = result.Sample
		case "latency":
			metrics.Latency = result.Sample
		case "availability":
			metrics.Availability = result.Sample
		}
	}

	return metrics
}

// GetNetworkHistogram returns the performance trend series as chart data.
func (s *Service) GetNetworkHistogram(ctx context.Context, timeRange entities.TimeRange) (chart entities.NetworkChartData, err error) {
	var resp entities.HistogramResponse
	if err = s.apiClient.Get(ctx, constants.PathNetworkHistogram, &resp, withStart(timeRange)); err != nil {
		return chart, fmt.Errorf("GetNetworkHistogram: %w", err)
	}

	if !resp.Success || resp.Data == nil {
		return chart, fmt.Errorf("GetNetworkHistogram: %w", unsuccessful(resp.Message, "Failed to fetch histogram data"))
	}

	return TransformHistogram(*resp.Data, timeRange), nil
}

func (s *Service) GetNetworkDistribution(ctx context.Context, timeRange entities.TimeRange) (chart entities.NetworkDistributionData, err error) {
	var resp entities.DistributionResponse
	if err = s.apiClient.Get(ctx, constants.PathNetworkDistribution, &resp, withStart(timeRange)); err != nil {
		return chart, fmt.Errorf("GetNetworkDistribution: %w", err)
	}

	if !resp.Success || resp.Data == nil {
		return chart, fmt.Errorf("GetNetworkDistribution: %w", unsuccessful(resp.Message, "Failed to fetch distribution data"))
	}

	return TransformDistribution(*resp.Data), nil
}

func (s *Service) GetDetailedList(ctx context.Context, params entities.DetailedListParams) (list entities.DetailedList, err error) {
	if err = s.validate.Struct(params); err != nil {
		return list, fmt.Errorf("GetDetailedList: %w", err)
	}

	if _, err = entities.ParseTimeRange(params.Start.String()); err != nil {
		return list, fmt.Errorf("GetDetailedList: %w", err)
	}

	if _, err = entities.ParseMetricType(string(params.Metric)); err != nil {
		return list, fmt.Errorf("GetDetailedList: %w", err)
	}

	var resp entities.DetailedListResponse
	if err = s.apiClient.Get(ctx, constants.PathDetailedList, &resp, apiclient.WithQuery(map[string]string{
		"start":  params.Start.String(),
		"page":   strconv.Itoa(params.Page),
		"metric": string(params.Metric),
	})); err != nil {
		return list, fmt.Errorf("GetDetailedList: %w", err)
	}

	if !resp.Success || resp.Data == nil {
		return list, fmt.Errorf("GetDetailedList: %w", unsuccessful(resp.Message, "Failed to fetch detailed metrics"))
	}

	return *resp.Data, nil
}

func (s *Service) GetRegionList(ctx context.Context) (regions entities.RegionMetrics, err error) {
	var resp entities.RegionListResponse
	if err = s.apiClient.Get(ctx, constants.PathRegionList, &resp); err != nil {
		return nil, fmt.Errorf("GetRegionList: %w", err)
	}

	if !resp.Success {
		return nil, fmt.Errorf("GetRegionList: %w", unsuccessful(resp.Message, "Failed to fetch region list"))
	}

	return lo.Map(resp.Data.Regions, func(region entities.Region, _ int) entities.RegionMetric {
		return entities.RegionMetric{
			ID:     RegionID(region.Name),
			Region: region,
		}
	}), nil
}

func withStart(timeRange entities.TimeRange) apiclient.RequestOption {
	return apiclient.WithQuery(map[string]string{"start": timeRange.String()})
}

func unsuccessful(message, fallback string) error {
	return fmt.Errorf("%w: %s", errs.ErrUnsuccessfulResponse, lo.Ternary(lo.IsNotEmpty(message), message, fallback))
}
