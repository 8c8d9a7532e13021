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

// ProfileBuilder derives a behavioral profile for a user. Declared here so
// the ranking services can be tested against a fake builder.
type ProfileBuilder interface {
	Build(ctx context.Context, userID uuid.UUID) (model.UserProfile, error)
}

// Profile builds user profiles from order history. Profiles are computed
// from fresh rows on every call.
type Profile struct {
	userStore    model.UserStore
	productStore model.ProductStore
	orderStore   model.OrderStore
	logger       *logger.Logger
}

func NewProfile(
	userStore model.UserStore,
	productStore model.ProductStore,
	orderStore model.OrderStore,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		userStore:    userStore,
		productStore: productStore,
		orderStore:   orderStore,
		logger:       logger,
	}
}

// Build aggregates the user's non-cancelled orders into a profile.
func (s *Profile) Build(ctx context.Context, userID uuid.UUID) (model.UserProfile, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	orders, err := s.orderStore.GetByUserID(ctx, userID)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to get orders by user id: %w", err)
	}

	categoryOf, err := productCategories(ctx, s.productStore)
	if err != nil {
		return model.UserProfile{}, err
	}

	return aggregateProfile(user, orders, categoryOf), nil
}

// productCategories returns a product id to category lookup for joining
// orders to categories.
func productCategories(ctx context.Context, store model.ProductStore) (map[uuid.UUID]string, error) {
	products, err := store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	categories := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		categories[p.ID] = p.Category
	}
	return categories, nil
}

// aggregateProfile computes the profile from already-fetched rows.
// Cancelled orders carry no signal and are skipped entirely.
func aggregateProfile(user model.User, orders []model.Order, categoryOf map[uuid.UUID]string) model.UserProfile {
	profile := model.UserProfile{
		User:    user,
		Segment: model.SegmentNew,
	}

	type categoryAgg struct {
		frequency  int
		lastBought time.Time
	}
	byCategory := map[string]*categoryAgg{}

	for _, order := range orders {
		if order.Cancelled() {
			continue
		}

		profile.TotalOrders++
		profile.TotalSpend += order.TotalPrice

		category, ok := categoryOf[order.ProductID]
		if !ok {
			continue
		}
		agg := byCategory[category]
		if agg == nil {
			agg = &categoryAgg{}
			byCategory[category] = agg
		}
		agg.frequency++
		if order.OrderDate.After(agg.lastBought) {
			agg.lastBought = order.OrderDate
		}
	}

	if profile.TotalOrders == 0 {
		return profile
	}

	profile.AvgOrderValue = profile.TotalSpend / float64(profile.TotalOrders)
	profile.Segment = model.ClassifySegment(profile.TotalSpend, profile.TotalOrders)

	favorites := make([]model.CategoryStat, 0, len(byCategory))
	for category, agg := range byCategory {
		favorites = append(favorites, model.CategoryStat{Category: category, Frequency: agg.frequency})
	}
	// Frequency descending, ties by most recent purchase in the category,
	// then category name for full determinism.
	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].Frequency != favorites[j].Frequency {
			return favorites[i].Frequency > favorites[j].Frequency
		}
		li := byCategory[favorites[i].Category].lastBought
		lj := byCategory[favorites[j].Category].lastBought
		if !li.Equal(lj) {
			return li.After(lj)
		}
		return favorites[i].Category < favorites[j].Category
	})
	if len(favorites) > 3 {
		favorites = favorites[:3]
	}
	profile.FavoriteCategories = favorites

	return profile
}
