package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// GetScaleRequest represents a request to generate a Pythagorean scale
type GetScaleRequest struct {
	Root    float64 `query:"root" default:"440" exclusiveMinimum:"0" maximum:"1000000" doc:"Root note frequency in Hz"`
	Octaves int     `query:"octaves" default:"3" minimum:"1" maximum:"64" doc:"Number of chained octaves to generate"`
	Ratios  bool    `query:"ratios" doc:"Include the Pythagorean ratio of each octave index to its root"`
}

// OctaveBody is one chained octave in a scale response
type OctaveBody struct {
	Index int       `json:"index" doc:"1-based octave number"`
	Drift float64   `json:"drift" doc:"Drift in Hz relative to the previous octave"`
	Notes []float64 `json:"notes" doc:"Twelve ascending note frequencies in Hz"`
}

// GetScaleResponseBody is the body of the scale response
type GetScaleResponseBody struct {
	ID         string       `json:"id" doc:"Generation identifier"`
	Root       float64      `json:"root" doc:"Root note frequency in Hz"`
	NumOctaves int          `json:"num_octaves" doc:"Number of octaves generated"`
	CommaCents float64      `json:"comma_cents" doc:"Theoretical Pythagorean comma in cents"`
	Octaves    []OctaveBody `json:"octaves" doc:"Chained octaves in generation order"`
	Ratios     []float64    `json:"ratios,omitempty" doc:"Ratio of each sorted octave index to the octave root"`
	CreatedAt  time.Time    `json:"created_at" doc:"Generation timestamp"`
}

// GetScaleResponse represents a generated scale
type GetScaleResponse struct {
	Body GetScaleResponseBody
}
