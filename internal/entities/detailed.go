package entities

import (
	"fmt"
	"slices"

	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type MetricType string

const (
	MetricTypeNetwork MetricType = "network"
	MetricTypeHTTP    MetricType = "http"
	MetricTypeSMS     MetricType = "sms"
	MetricTypeDNS     MetricType = "dns"
	MetricTypePing    MetricType = "ping"
)

var metricTypes = []MetricType{MetricTypeNetwork, MetricTypeHTTP, MetricTypeSMS, MetricTypeDNS, MetricTypePing}

func ParseMetricType(value string) (MetricType, error) {
	mt := MetricType(value)
	if !slices.Contains(metricTypes, mt) {
		return "", fmt.Errorf("ParseMetricType: %w: %q", errs.ErrUnknownMetricType, value)
	}

	return mt, nil
}

type DetailedListParams struct {
	Start  TimeRange  `validate:"required"`
	Page   int        `validate:"min=1"`
	Metric MetricType `validate:"required"`
}

type DetailedList struct {
	Labels     []string         `json:"labels"`
	Values     []map[string]any `json:"values"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	TotalCount int              `json:"total_count"`
}

type DetailedListResponse = Response[*DetailedList]
