package models

import "newton_cooling/internal/cooling"

// EstimateResponse is returned by the estimate endpoint and the CLI's
// structured output modes.
type EstimateResponse struct {
	RequestID string                `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Result    cooling.Result        `json:"result" yaml:"result"`
	Display   cooling.DisplayValues `json:"display" yaml:"display"`
}

// CurveResponse carries a sampled cooling curve.
type CurveResponse struct {
	RequestID string           `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Step      float64          `json:"step" yaml:"step"`
	Samples   []cooling.Sample `json:"samples" yaml:"samples"`
}

// ErrorResponse describes a rejected calculation.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}
