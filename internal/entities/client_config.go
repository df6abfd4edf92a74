package entities

import (
	"time"
)

// ClientConfig is the sampling configuration pushed to field devices by the backend.
type ClientConfig struct {
	ID                  int64     `json:"id"`
	SamplingIntervalSec int       `json:"sampling_interval"`
	UploadIntervalSec   int       `json:"upload_interval"`
	EnabledTests        []string  `json:"enabled_tests"`
	PingTarget          string    `json:"ping_target"`
	DNSServer           string    `json:"dns_server"`
	HTTPTestURL         string    `json:"http_test_url"`
	SMSRecipient        string    `json:"sms_recipient"`
	CollectCellInfo     bool      `json:"collect_cell_info"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type UpdateConfigRequest struct {
	SamplingIntervalSec *int      `json:"sampling_interval,omitempty" validate:"omitempty,min=1"`
	UploadIntervalSec   *int      `json:"upload_interval,omitempty" validate:"omitempty,min=1"`
	EnabledTests        *[]string `json:"enabled_tests,omitempty" validate:"omitempty,dive,oneof=network http sms dns ping"`
	PingTarget          *string   `json:"ping_target,omitempty" validate:"omitempty,hostname|ip"`
	DNSServer           *string   `json:"dns_server,omitempty" validate:"omitempty,ip"`
	HTTPTestURL         *string   `json:"http_test_url,omitempty" validate:"omitempty,url"`
	SMSRecipient        *string   `json:"sms_recipient,omitempty" validate:"omitempty,e164"`
	CollectCellInfo     *bool     `json:"collect_cell_info,omitempty"`
}

type ClientConfigResponse = Response[*ClientConfig]
