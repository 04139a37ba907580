package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/phishlens/internal/features"
)

func TestPredictRisk_EmptyVectorIsZero(t *testing.T) {
	assert.Equal(t, 0.0, PredictRisk(features.Vector{}))
}

func TestPredictRisk_KnownVector(t *testing.T) {
	v := features.Vector{
		URLFeatures: features.URLFeatures{
			SuspiciousKW:   1,
			HasIP:          1,
			URLLen:         100, // 0.5 normalized
			SubdomainCount: 10,  // saturates at 1
			NumAt:          3,   // saturates at 1
			EntropyPath:    2.5, // 0.5 normalized
		},
		HTMLFeatures: features.HTMLFeatures{
			NumPwInputs: 1, // 0.5 normalized
		},
	}
	want := 0.25 + 0.2 + 0.02*0.5 + 0.08 + 0.1 + 0.05*0.5 + 0.1*0.5
	assert.InDelta(t, want, PredictRisk(v), 1e-12)
}

func TestPredictRisk_ClampedAtOne(t *testing.T) {
	v := features.Vector{
		URLFeatures: features.URLFeatures{
			SuspiciousKW: 1, BrandKW: 1, HasIP: 1, NumAt: 5, SubdomainCount: 9, EntropyPath: 9, URLLen: 900,
		},
		HTMLFeatures: features.HTMLFeatures{
			BrandTextHit: 1, LogoMismatch: 1, FormActionDiffDomain: 1, FormInsecureHTTP: 1, NumPwInputs: 4,
		},
	}
	assert.Equal(t, 1.0, PredictRisk(v))
}

func TestPredictRisk_UnweightedFeaturesDoNotMatter(t *testing.T) {
	base := features.Vector{URLFeatures: features.URLFeatures{HasIP: 1}}
	noisy := base
	noisy.NumDashes = 40
	noisy.NumSlashes = 12
	noisy.NumForms = 3
	noisy.HiddenIframes = 1
	noisy.OnsubmitHandlers = 1
	noisy.Domain = "example.com"

	assert.Equal(t, PredictRisk(base), PredictRisk(noisy))
}

func randomVector(r *rand.Rand) features.Vector {
	extremes := []float64{0, 1, -1, 1e308, -1e308, math.Inf(1), math.Inf(-1), math.NaN(), math.SmallestNonzeroFloat64}
	pick := func() float64 {
		switch r.Intn(3) {
		case 0:
			return extremes[r.Intn(len(extremes))]
		case 1:
			return r.Float64()
		default:
			return (r.Float64() - 0.5) * 1e6
		}
	}
	return features.Vector{
		URLFeatures: features.URLFeatures{
			URLLen: pick(), PathLen: pick(), QueryLen: pick(), NumDashes: pick(), NumAt: pick(),
			NumSlashes: pick(), HasIP: pick(), SubdomainCount: pick(), EntropyPath: pick(),
			HasHTTPS: pick(), SuspiciousKW: pick(), BrandKW: pick(),
		},
		HTMLFeatures: features.HTMLFeatures{
			NumForms: pick(), NumInputs: pick(), NumPwInputs: pick(), FormActionDiffDomain: pick(),
			FormInsecureHTTP: pick(), BrandTextHit: pick(), LogoMismatch: pick(),
			OnsubmitHandlers: pick(), HiddenIframes: pick(),
		},
	}
}

func TestPredictRisk_AlwaysInUnitInterval(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		v := randomVector(r)
		s := PredictRisk(v)
		require.False(t, math.IsNaN(s), "NaN score for %+v", v)
		require.GreaterOrEqual(t, s, 0.0, "vector %+v", v)
		require.LessOrEqual(t, s, 1.0, "vector %+v", v)
	}
}

func TestPredictRisk_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := randomVector(r)
		assert.Equal(t, PredictRisk(v), PredictRisk(v))
	}
}

func TestContributions_SumMatchesScore(t *testing.T) {
	v := features.Vector{
		URLFeatures:  features.URLFeatures{SuspiciousKW: 1, URLLen: 50, EntropyPath: 3.2},
		HTMLFeatures: features.HTMLFeatures{LogoMismatch: 1},
	}
	sum := 0.0
	cs := Contributions(v)
	require.Len(t, cs, len(Weights()))
	for i, c := range cs {
		assert.Equal(t, Weights()[i].Key, c.Key)
		sum += c.Term
	}
	assert.InDelta(t, PredictRisk(v), sum, 1e-12)
}

func TestNormalizer(t *testing.T) {
	d, ok := Normalizer(features.URLLen)
	assert.True(t, ok)
	assert.Equal(t, 200.0, d)

	_, ok = Normalizer(features.HasIP)
	assert.False(t, ok)
}
