package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/shopsense/internal/logger"
	"github.com/dtroode/shopsense/internal/model"
)

// Predictor estimates the timing of a user's next purchase from the gaps
// between past orders.
type Predictor struct {
	profiles   ProfileBuilder
	orderStore model.OrderStore
	logger     *logger.Logger
	now        func() time.Time
}

func NewPredictor(
	profiles ProfileBuilder,
	orderStore model.OrderStore,
	logger *logger.Logger,
) *Predictor {
	return &Predictor{
		profiles:   profiles,
		orderStore: orderStore,
		logger:     logger,
		now:        time.Now,
	}
}

// PredictNext computes the average gap between the user's non-cancelled
// orders and projects it past the most recent one. Fewer than two orders
// is an InsufficientData result, not an error.
//
// Probability = clamp(time-since-last-order / average-gap, 0, 1): it rises
// linearly toward the predicted date and saturates there. A zero average
// gap means every order landed at the same instant; the next one is due
// immediately and probability is 1.
func (s *Predictor) PredictNext(ctx context.Context, userID uuid.UUID) (model.Prediction, error) {
	profile, err := s.profiles.Build(ctx, userID)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("failed to build user profile: %w", err)
	}

	orders, err := s.orderStore.GetByUserID(ctx, userID)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("failed to get orders by user id: %w", err)
	}

	history := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Cancelled() {
			history = append(history, o)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].OrderDate.Before(history[j].OrderDate)
	})

	prediction := model.Prediction{DataPoints: len(history)}
	if len(profile.FavoriteCategories) > 0 {
		prediction.LikelyCategory = profile.FavoriteCategories[0].Category
	}
	if len(history) < 2 {
		return prediction, nil
	}

	last := history[len(history)-1].OrderDate
	span := last.Sub(history[0].OrderDate)
	avgGap := span / time.Duration(len(history)-1)
	elapsed := s.now().Sub(last)

	predicted := last.Add(avgGap)
	prediction.PredictedDate = &predicted
	prediction.AverageGap = avgGap
	prediction.SinceLastOrder = elapsed

	if avgGap <= 0 {
		prediction.Probability = 1
	} else {
		prediction.Probability = clamp(float64(elapsed)/float64(avgGap), 0, 1)
	}

	return prediction, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
