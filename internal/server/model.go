package server

import (
	"math"

	"github.com/drakos74/autoop/internal/model"
)

// MetricRequest holds the sequences to be compared.
type MetricRequest struct {
	GroundTruth []interface{} `json:"ground_truth"`
	Predictions []interface{} `json:"predictions"`
}

// MetricResponse holds the score of a metric.
// Value is nil if the score is not a finite number.
type MetricResponse struct {
	Metric string   `json:"metric"`
	Value  *float64 `json:"value"`
}

// NewMetricResponse creates a new metric response.
func NewMetricResponse(metric string, v float64) MetricResponse {
	r := MetricResponse{Metric: metric}
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		r.Value = &v
	}
	return r
}

// FeaturesRequest is the table to detect the features for.
type FeaturesRequest model.Table
