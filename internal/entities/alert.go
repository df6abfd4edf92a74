package entities

import (
	"time"
)

type Alert struct {
	ID        string    `json:"id"`
	RuleID    string    `json:"ruleId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type Alerts []Alert
