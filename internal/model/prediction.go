package model

import "time"

// Prediction estimates the timing of a user's next purchase.
//
// With fewer than two non-cancelled orders there is no interval to learn
// from: DataPoints reflects the order count, Probability is 0 and
// PredictedDate is nil. Otherwise PredictedDate = last order + AverageGap
// and Probability = clamp(elapsed/AverageGap, 0, 1), reaching 1 once the
// predicted date has arrived. A zero AverageGap (all orders at the same
// instant) yields probability 1.
type Prediction struct {
	PredictedDate  *time.Time
	Probability    float64
	AverageGap     time.Duration
	DataPoints     int
	SinceLastOrder time.Duration
	LikelyCategory string
}

// InsufficientData reports whether the user's history was too short to
// predict from. This is a normal result variant, not an error.
func (p Prediction) InsufficientData() bool {
	return p.PredictedDate == nil
}
