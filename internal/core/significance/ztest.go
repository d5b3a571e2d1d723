// Package significance compares two conversion rates with a two-proportion
// z-test.
package significance

import "math"

const (
	// MinSampleSize is the smallest trial count either side needs before a
	// verdict other than TierInsufficientSample is given.
	MinSampleSize = 30
	// CriticalValue95 is the normal critical value of a 95% interval.
	CriticalValue95 = 1.96
)

// Tier is a categorical significance verdict.
type Tier string

const (
	TierInsufficientSample Tier = "insufficient_sample"
	TierHighlySignificant  Tier = "highly_significant"
	TierSignificant        Tier = "significant"
	TierMarginal           Tier = "marginal"
	TierNotSignificant     Tier = "not_significant"
)

// Side names one of the two compared samples.
type Side string

const (
	SideA   Side = "A"
	SideB   Side = "B"
	SideTie Side = "tie"
)

// Sample is a conversion count out of a number of trials.
type Sample struct {
	Conversions int `json:"conversions"`
	Trials      int `json:"trials"`
}

// Rate is Conversions/Trials, or zero with no trials.
func (s Sample) Rate() float64 {
	if s.Trials <= 0 {
		return 0
	}
	return float64(s.Conversions) / float64(s.Trials)
}

// Result is the outcome of comparing sample A against sample B. Winner is
// the side with the higher raw rate and says nothing about significance.
type Result struct {
	A               Sample  `json:"a"`
	B               Sample  `json:"b"`
	RateA           float64 `json:"rate_a"`
	RateB           float64 `json:"rate_b"`
	Difference      float64 `json:"difference"`
	PooledRate      float64 `json:"pooled_rate"`
	StandardError   float64 `json:"standard_error"`
	ZScore          float64 `json:"z_score"`
	PValue          float64 `json:"p_value"`
	ConfidenceLower float64 `json:"confidence_lower"`
	ConfidenceUpper float64 `json:"confidence_upper"`
	Tier            Tier    `json:"tier"`
	Winner          Side    `json:"winner"`
}

// Significant reports whether the tier is significant or better.
func (r Result) Significant() bool {
	return r.Tier == TierSignificant || r.Tier == TierHighlySignificant
}

// Compare runs a two-proportion z-test of a against b. Degenerate input
// (no trials, zero variance) yields z = 0 and p = 1 rather than NaN.
func Compare(a, b Sample) Result {
	p1, p2 := a.Rate(), b.Rate()
	n1, n2 := float64(a.Trials), float64(b.Trials)

	var pooled, se float64
	if n1 > 0 && n2 > 0 {
		pooled = float64(a.Conversions+b.Conversions) / (n1 + n2)
		se = math.Sqrt(pooled * (1 - pooled) * (1/n1 + 1/n2))
	}

	var z float64
	if se > 0 && !math.IsNaN(se) {
		z = (p1 - p2) / se
	}
	pValue := TwoTailedP(z)

	var unpooled float64
	if n1 > 0 && n2 > 0 {
		unpooled = math.Sqrt(p1*(1-p1)/n1 + p2*(1-p2)/n2)
	}
	if math.IsNaN(unpooled) {
		unpooled = 0
	}
	diff := p1 - p2

	return Result{
		A:               a,
		B:               b,
		RateA:           p1,
		RateB:           p2,
		Difference:      diff,
		PooledRate:      pooled,
		StandardError:   se,
		ZScore:          z,
		PValue:          pValue,
		ConfidenceLower: diff - CriticalValue95*unpooled,
		ConfidenceUpper: diff + CriticalValue95*unpooled,
		Tier:            Classify(a, b, pValue),
		Winner:          winner(p1, p2),
	}
}

// Classify assigns the significance tier for a p-value. Small samples are
// always TierInsufficientSample.
func Classify(a, b Sample, pValue float64) Tier {
	switch {
	case a.Trials < MinSampleSize || b.Trials < MinSampleSize:
		return TierInsufficientSample
	case pValue < 0.01:
		return TierHighlySignificant
	case pValue < 0.05:
		return TierSignificant
	case pValue < 0.10:
		return TierMarginal
	default:
		return TierNotSignificant
	}
}

func winner(p1, p2 float64) Side {
	switch {
	case p1 > p2:
		return SideA
	case p2 > p1:
		return SideB
	default:
		return SideTie
	}
}

// TwoTailedP is the two-tailed normal p-value of z, clamped to [0, 1].
func TwoTailedP(z float64) float64 {
	p := Erfc(math.Abs(z) / math.Sqrt2)
	return math.Min(math.Max(p, 0), 1)
}

// Abramowitz and Stegun 7.1.26 coefficients. Kept verbatim so p-values
// match the closed-form approximation rather than math.Erfc.
const (
	asP  = 0.3275911
	asA1 = 0.254829592
	asA2 = -0.284496736
	asA3 = 1.421413741
	asA4 = -1.453152027
	asA5 = 1.061405429
)

// Erfc approximates the complementary error function for x >= 0 with
// absolute error below 1.5e-7. Negative x uses erfc(-x) = 2 - erfc(x).
func Erfc(x float64) float64 {
	if x < 0 {
		return 2 - Erfc(-x)
	}
	t := 1 / (1 + asP*x)
	poly := t * (asA1 + t*(asA2+t*(asA3+t*(asA4+t*asA5))))
	return poly * math.Exp(-x*x)
}
