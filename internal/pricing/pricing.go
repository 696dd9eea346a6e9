// Package pricing computes non-binding rate quotes from audience metrics.
// Estimates are pure and deterministic so the price frozen on an invitation
// can be reproduced later from the same snapshot.
package pricing

import "math"

// Platform defaults, tuned against typical sponsored-post CPMs.
const (
	DefaultBaseCPM          = 25.0 // price per 1000 followers at zero engagement
	DefaultEngagementWeight = 0.2  // relative uplift per engagement percentage point
	DefaultMinimumRate      = 10.0 // floor for accounts with any audience at all
)

type Estimator struct {
	BaseCPM          float64
	EngagementWeight float64
	MinimumRate      float64
}

func Default() Estimator {
	return Estimator{
		BaseCPM:          DefaultBaseCPM,
		EngagementWeight: DefaultEngagementWeight,
		MinimumRate:      DefaultMinimumRate,
	}
}

// Estimate maps follower count and engagement rate (percent) to an estimated
// campaign rate. Negative inputs are clamped to zero: callers feed values
// derived from possibly-incomplete profile data. Zero followers yields zero.
func (e Estimator) Estimate(followers int64, engagementRate float64) float64 {
	if followers <= 0 {
		return 0
	}
	if engagementRate < 0 {
		engagementRate = 0
	}

	base := e.BaseCPM * float64(followers) / 1000.0
	price := base * (1.0 + e.EngagementWeight*engagementRate)

	if price < e.MinimumRate {
		price = e.MinimumRate
	}
	// Quotes are shown in whole cents.
	return math.Round(price*100) / 100
}

// Estimate is the package-level shorthand using platform defaults.
func Estimate(followers int64, engagementRate float64) float64 {
	return Default().Estimate(followers, engagementRate)
}
