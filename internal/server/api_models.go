package server

import (
	"github.com/raysh454/phishlens/internal/assessor"
	"github.com/raysh454/phishlens/internal/features"
	"github.com/raysh454/phishlens/internal/scoring"
)

// CheckRequest is the page to assess.
type CheckRequest struct {
	URL  string `json:"url" example:"http://paypal-login.example.net/signin"`
	HTML string `json:"html" example:"<html><form action=\"http://evil.test/\"><input type=\"password\"></form></html>"`
}

// CheckMeta carries request-level details of an assessment.
type CheckMeta struct {
	Domain         string  `json:"domain" example:"example.net"`
	TS             float64 `json:"ts" example:"1718035200.5"`
	ScoringVersion string  `json:"scoring_version" example:"heuristic-v1"`
}

// CheckResponse is the assessment of one page.
type CheckResponse struct {
	RiskScore     float64                 `json:"risk_score" example:"0.87"`
	Reasons       []string                `json:"reasons"`
	Highlights    []string                `json:"highlights"`
	Meta          CheckMeta               `json:"meta"`
	Evidence      []assessor.EvidenceItem `json:"evidence"`
	Features      features.Vector         `json:"features"`
	Contributions []scoring.Contribution  `json:"contributions"`
}

// AddEventRequest records an assessment made elsewhere, such as by a
// browser extension. TS defaults to now.
type AddEventRequest struct {
	URL       string   `json:"url" example:"http://paypal-login.example.net/signin"`
	RiskScore float64  `json:"risk_score" example:"0.87"`
	Reasons   []string `json:"reasons"`
	TS        float64  `json:"ts" example:"1718035200.5"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string  `json:"status" example:"ok"`
	TS     float64 `json:"ts" example:"1718035200.5"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"Missing 'url' or 'html'"`
}
