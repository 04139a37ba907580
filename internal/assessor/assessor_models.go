package assessor

import (
	"github.com/raysh454/phishlens/internal/features"
	"github.com/raysh454/phishlens/internal/scoring"
)

// EvidenceItem is one triggered reason with the metadata a UI needs to
// render it.
type EvidenceItem struct {
	Key         features.Key `json:"key"`
	Severity    string       `json:"severity"`
	Description string       `json:"description"`
}

// Result is the outcome of assessing one page.
type Result struct {
	// RiskScore is in [0, 1].
	RiskScore float64 `json:"risk_score"`

	// Reasons are in explanation-table order.
	Reasons []string `json:"reasons"`

	// Highlights are CSS selectors from the HTML scan followed by those
	// suggested by the reasons, deduplicated in first-seen order.
	Highlights []string `json:"highlights"`

	Evidence      []EvidenceItem         `json:"evidence"`
	Features      features.Vector        `json:"features"`
	Contributions []scoring.Contribution `json:"contributions"`

	// Domain is the registrable domain of the URL, or its host when there
	// is none.
	Domain string `json:"domain"`

	Version string `json:"scoring_version"`
}
