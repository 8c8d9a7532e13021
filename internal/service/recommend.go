package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/shopsense/internal/logger"
	"github.com/dtroode/shopsense/internal/model"
)

// Recommender ranks unpurchased products for a user by category affinity
// and global popularity.
type Recommender struct {
	profiles     ProfileBuilder
	productStore model.ProductStore
	orderStore   model.OrderStore
	logger       *logger.Logger
	defaultLimit int
}

func NewRecommender(
	profiles ProfileBuilder,
	productStore model.ProductStore,
	orderStore model.OrderStore,
	logger *logger.Logger,
	defaultLimit int,
) *Recommender {
	return &Recommender{
		profiles:     profiles,
		productStore: productStore,
		orderStore:   orderStore,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// popularityFactor scales a global order count into a monotonic score
// multiplier. Log damping keeps a runaway bestseller from drowning out
// category affinity.
func popularityFactor(orderCount int) float64 {
	return 1 + math.Log1p(float64(orderCount))
}

// Recommend returns up to limit products the user has never ordered,
// scored by favorite-category weight times popularity. A product from any
// past order is excluded even when that order was cancelled. Users without
// favorite categories get the global popularity ranking instead.
func (s *Recommender) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]model.ScoredProduct, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	profile, err := s.profiles.Build(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build user profile: %w", err)
	}

	orders, err := s.orderStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders by user id: %w", err)
	}
	purchased := make(map[uuid.UUID]struct{}, len(orders))
	for _, o := range orders {
		purchased[o.ProductID] = struct{}{}
	}

	products, err := s.productStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	counts, err := s.orderStore.GetGlobalOrderCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get global order counts: %w", err)
	}

	var primary, backfill []model.ScoredProduct
	for _, product := range products {
		if _, ok := purchased[product.ID]; ok {
			continue
		}

		weight := profile.CategoryWeight(product.Category)
		scored := model.ScoredProduct{
			Product: product,
			Score:   popularityFactor(counts[product.ID]),
		}
		if weight > 0 {
			scored.Score *= float64(weight)
			primary = append(primary, scored)
		} else {
			backfill = append(backfill, scored)
		}
	}

	sortScored(primary)
	sortScored(backfill)

	// Candidates from favorite categories come first; popular products
	// outside them only fill the remaining slots. For users with no
	// favorite categories primary is empty and this degrades to the
	// popularity ranking.
	results := primary
	if len(results) < limit {
		results = append(results, backfill[:min(limit-len(results), len(backfill))]...)
	}
	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug("recommendations computed",
		"user_id", userID, "segment", profile.Segment, "results", len(results))

	return results, nil
}

// sortScored orders by score descending, ties broken by product id
// ascending.
func sortScored(items []model.ScoredProduct) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Product.ID.String() < items[j].Product.ID.String()
	})
}
