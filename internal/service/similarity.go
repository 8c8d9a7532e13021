package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/shopsense/internal/logger"
	"github.com/dtroode/shopsense/internal/model"
)

// Similarity finds users with overlapping category preferences.
type Similarity struct {
	profiles     ProfileBuilder
	userStore    model.UserStore
	productStore model.ProductStore
	orderStore   model.OrderStore
	logger       *logger.Logger
	defaultLimit int
}

func NewSimilarity(
	profiles ProfileBuilder,
	userStore model.UserStore,
	productStore model.ProductStore,
	orderStore model.OrderStore,
	logger *logger.Logger,
	defaultLimit int,
) *Similarity {
	return &Similarity{
		profiles:     profiles,
		userStore:    userStore,
		productStore: productStore,
		orderStore:   orderStore,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// FindSimilar returns the top-limit users ranked by Jaccard similarity of
// favorite-category sets, ties broken by closeness of total order counts,
// then user id. The queried user and users without favorite categories are
// never part of the result. A user with no favorites of their own has no
// signal to compare, so the result is empty.
func (s *Similarity) FindSimilar(ctx context.Context, userID uuid.UUID, limit int) ([]model.SimilarUser, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	target, err := s.profiles.Build(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build user profile: %w", err)
	}
	targetSet := target.FavoriteCategorySet()
	if len(targetSet) == 0 {
		return nil, nil
	}

	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	categoryOf, err := productCategories(ctx, s.productStore)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		similar    model.SimilarUser
		orderDelta int
	}
	var candidates []candidate

	for _, user := range users {
		if user.ID == userID {
			continue
		}

		orders, err := s.orderStore.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get orders by user id: %w", err)
		}

		profile := aggregateProfile(user, orders, categoryOf)
		set := profile.FavoriteCategorySet()
		if len(set) == 0 {
			continue
		}

		candidates = append(candidates, candidate{
			similar: model.SimilarUser{
				User:       user,
				Similarity: jaccard(targetSet, set),
			},
			orderDelta: abs(target.TotalOrders - profile.TotalOrders),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].similar.Similarity != candidates[j].similar.Similarity {
			return candidates[i].similar.Similarity > candidates[j].similar.Similarity
		}
		if candidates[i].orderDelta != candidates[j].orderDelta {
			return candidates[i].orderDelta < candidates[j].orderDelta
		}
		return candidates[i].similar.User.ID.String() < candidates[j].similar.User.ID.String()
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]model.SimilarUser, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.similar)
	}

	return results, nil
}

// jaccard computes |a∩b| / |a∪b| over two non-empty sets.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
