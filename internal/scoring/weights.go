package scoring

import "github.com/raysh454/phishlens/internal/features"

// Weight is one row of the scoring table.
type Weight struct {
	Key    features.Key
	Weight float64
}

// featureWeights maps features to their contribution weights. These are
// heuristic constants, not learned; row order is the summation order.
var featureWeights = [...]Weight{
	{features.SuspiciousKW, 0.25},
	{features.BrandKW, 0.1},
	{features.BrandTextHit, 0.1},
	{features.LogoMismatch, 0.2},
	{features.FormActionDiffDomain, 0.2},
	{features.FormInsecureHTTP, 0.15},
	{features.NumPwInputs, 0.1},
	{features.HasIP, 0.2},
	{features.NumAt, 0.1},
	{features.SubdomainCount, 0.08},
	{features.EntropyPath, 0.05},
	{features.URLLen, 0.02},
}

// normalizers are the divisors applied to raw counts before weighting. The
// quotient is clipped to [0, 1].
var normalizers = map[features.Key]float64{
	features.SubdomainCount: 5,
	features.EntropyPath:    5,
	features.URLLen:         200,
	features.NumAt:          1,
	features.NumPwInputs:    2,
}

// Weights returns a copy of the weight table in summation order.
func Weights() []Weight {
	return append([]Weight(nil), featureWeights[:]...)
}

// Normalizer returns the divisor for k, if k is normalized.
func Normalizer(k features.Key) (float64, bool) {
	d, ok := normalizers[k]
	return d, ok
}
