package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/shopsense/internal/logger"
	"github.com/dtroode/shopsense/internal/model"
)

// Search personalizes free-text product search by boosting results from
// the user's favorite categories. Boost-only: no result is ever dropped.
type Search struct {
	profiles     ProfileBuilder
	productStore model.ProductStore
	orderStore   model.OrderStore
	logger       *logger.Logger
}

func NewSearch(
	profiles ProfileBuilder,
	productStore model.ProductStore,
	orderStore model.OrderStore,
	logger *logger.Logger,
) *Search {
	return &Search{
		profiles:     profiles,
		productStore: productStore,
		orderStore:   orderStore,
		logger:       logger,
	}
}

// Enhanced runs the raw search and stably reorders the results by boosted
// score. The boost is the favorite-category position weight plus a
// popularity term count/(count+1), which stays below 1 so popularity can
// only break ties between equal category affinities. Items with equal
// boost keep their raw relevance order. A nil user id skips
// personalization and returns the raw order.
func (s *Search) Enhanced(ctx context.Context, query string, userID uuid.UUID) ([]model.Product, error) {
	products, err := s.productStore.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	if userID == uuid.Nil || len(products) == 0 {
		return products, nil
	}

	profile, err := s.profiles.Build(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build user profile: %w", err)
	}

	counts, err := s.orderStore.GetGlobalOrderCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get global order counts: %w", err)
	}

	boosts := make(map[uuid.UUID]float64, len(products))
	for _, p := range products {
		count := float64(counts[p.ID])
		boosts[p.ID] = float64(profile.CategoryWeight(p.Category)) + count/(count+1)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return boosts[products[i].ID] > boosts[products[j].ID]
	})

	return products, nil
}
