// Package scoring turns a feature vector into a bounded phishing-risk score.
package scoring

import (
	"math"

	"github.com/raysh454/phishlens/internal/features"
)

// Contribution is the weighted term a single feature adds to the score.
type Contribution struct {
	Key   features.Key `json:"key"`
	Value float64      `json:"value"`
	Term  float64      `json:"term"`
}

// PredictRisk combines the vector into a score in [0, 1]. It is a pure
// function of v.
func PredictRisk(v features.Vector) float64 {
	score := 0.0
	for _, w := range featureWeights {
		score += w.Weight * normalizedValue(v, w.Key)
	}
	return clamp01(score)
}

// Contributions returns the per-feature terms that PredictRisk sums, in
// table order. The terms are unclamped.
func Contributions(v features.Vector) []Contribution {
	out := make([]Contribution, 0, len(featureWeights))
	for _, w := range featureWeights {
		val := normalizedValue(v, w.Key)
		out = append(out, Contribution{Key: w.Key, Value: val, Term: w.Weight * val})
	}
	return out
}

// normalizedValue reads k from v, applying the key's normalizer if it has one.
// NaN reads as 0.
func normalizedValue(v features.Vector, k features.Key) float64 {
	raw := v.Value(k)
	if math.IsNaN(raw) {
		raw = 0
	}
	if d, ok := normalizers[k]; ok {
		return clamp01(raw / d)
	}
	return raw
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}
