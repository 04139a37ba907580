package assessor

import (
	"context"
	"errors"

	"github.com/raysh454/phishlens/internal/explain"
	"github.com/raysh454/phishlens/internal/features"
	"github.com/raysh454/phishlens/internal/logging"
	"github.com/raysh454/phishlens/internal/resolver"
	"github.com/raysh454/phishlens/internal/scoring"
)

// HeuristicsAssessor runs the fixed pipeline: URL features, HTML features,
// weighted score, explanation.
type HeuristicsAssessor struct {
	cfg    *Config
	logger logging.Logger

	// reasonKeys maps reason text back to the feature that produced it.
	reasonKeys map[string]features.Key
}

var _ Assessor = (*HeuristicsAssessor)(nil)

// NewHeuristicsAssessor constructs a heuristics-based assessor.
func NewHeuristicsAssessor(cfg *Config, logger logging.Logger) (*HeuristicsAssessor, error) {
	if cfg == nil {
		return nil, ErrNilConfig()
	}
	if logger == nil {
		return nil, errors.New("assessor: nil logger")
	}

	l := logger.With(logging.Field{Key: "component", Value: "heuristics-assessor"})

	keys := make(map[string]features.Key)
	for _, k := range explain.Keys() {
		if r, ok := explain.Template(k); ok {
			keys[r] = k
		}
	}

	l.Info("heuristics assessor constructed", logging.Field{Key: "scoring_version", Value: cfg.ScoringVersion})

	return &HeuristicsAssessor{cfg: cfg, logger: l, reasonKeys: keys}, nil
}

// Assess scores one page. Malformed url or html never fails; they yield
// zero features. The only error is a cancelled context.
func (h *HeuristicsAssessor) Assess(ctx context.Context, url, html string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uf := features.ExtractURLFeatures(url)
	hf, htmlSelectors := features.ExtractHTMLFeatures(html, url)
	v := features.Merge(uf, hf)

	score := scoring.PredictRisk(v)
	reasons, reasonSelectors := explain.ReasonsFor(v, url)

	res := &Result{
		RiskScore:     score,
		Reasons:       reasons,
		Highlights:    mergeSelectors(htmlSelectors, reasonSelectors),
		Evidence:      h.evidence(reasons),
		Features:      v,
		Contributions: scoring.Contributions(v),
		Domain:        resolver.Resolve(url).Domain(),
		Version:       h.cfg.ScoringVersion,
	}

	h.logger.Debug("page assessed",
		logging.Field{Key: "domain", Value: res.Domain},
		logging.Field{Key: "risk_score", Value: score},
		logging.Field{Key: "reasons", Value: len(reasons)},
		logging.Field{Key: "size_bytes", Value: len(html)},
		logging.Field{Key: "features", Value: v.Numeric()},
	)

	return res, nil
}

// Close releases resources (currently a no-op) and logs lifecycle.
func (h *HeuristicsAssessor) Close() error {
	if h == nil || h.logger == nil {
		return nil
	}
	h.logger.Info("heuristics assessor closed")
	return nil
}

func (h *HeuristicsAssessor) evidence(reasons []string) []EvidenceItem {
	out := make([]EvidenceItem, 0, len(reasons))
	for _, r := range reasons {
		k := h.reasonKeys[r]
		out = append(out, EvidenceItem{Key: k, Severity: explain.Severity(k), Description: r})
	}
	return out
}

// mergeSelectors concatenates the lists, keeping the first occurrence of
// each selector.
func mergeSelectors(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, l := range lists {
		for _, s := range l {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ErrNilConfig is returned by NewHeuristicsAssessor when cfg is nil.
func ErrNilConfig() error {
	return errors.New("assessor: nil config")
}
