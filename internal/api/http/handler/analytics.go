package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/shopsense/internal/logger"
	"github.com/dtroode/shopsense/internal/model"
)

// ProfileService builds behavioral profiles.
type ProfileService interface {
	Build(ctx context.Context, userID uuid.UUID) (model.UserProfile, error)
}

// RecommendService ranks products for a user.
type RecommendService interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]model.ScoredProduct, error)
}

// SimilarityService finds behaviorally similar users.
type SimilarityService interface {
	FindSimilar(ctx context.Context, userID uuid.UUID, limit int) ([]model.SimilarUser, error)
}

// PredictionService estimates next-purchase timing.
type PredictionService interface {
	PredictNext(ctx context.Context, userID uuid.UUID) (model.Prediction, error)
}

// SearchService runs personalized product search.
type SearchService interface {
	Enhanced(ctx context.Context, query string, userID uuid.UUID) ([]model.Product, error)
}

// Analytics handles HTTP endpoints for the analytics services.
type Analytics struct {
	profiles    ProfileService
	recommender RecommendService
	similarity  SimilarityService
	predictor   PredictionService
	search      SearchService
	logger      *logger.Logger
}

// NewAnalytics creates a new Analytics handler.
func NewAnalytics(
	profiles ProfileService,
	recommender RecommendService,
	similarity SimilarityService,
	predictor PredictionService,
	search SearchService,
	logger *logger.Logger,
) *Analytics {
	return &Analytics{
		profiles:    profiles,
		recommender: recommender,
		similarity:  similarity,
		predictor:   predictor,
		search:      search,
		logger:      logger,
	}
}

type profileResponse struct {
	User               userResponse   `json:"user"`
	TotalOrders        int            `json:"total_orders"`
	TotalSpend         float64        `json:"total_spend"`
	AvgOrderValue      float64        `json:"avg_order_value"`
	FavoriteCategories []categoryStat `json:"favorite_categories"`
	Segment            string         `json:"segment"`
}

type categoryStat struct {
	Category  string `json:"category"`
	Frequency int    `json:"frequency"`
}

type recommendationResponse struct {
	Product productResponse `json:"product"`
	Score   float64         `json:"score"`
}

type similarUserResponse struct {
	User       userResponse `json:"user"`
	Similarity float64      `json:"similarity"`
}

type predictionResponse struct {
	InsufficientData bool     `json:"insufficient_data"`
	DataPoints       int      `json:"data_points"`
	Probability      float64  `json:"probability"`
	PredictedDate    *string  `json:"predicted_date,omitempty"`
	AverageGapHours  *float64 `json:"average_gap_hours,omitempty"`
	DaysSinceLast    *float64 `json:"days_since_last_order,omitempty"`
	LikelyCategory   string   `json:"likely_category,omitempty"`
}

// GetProfile handles GET /api/users/:id/profile.
func (h *Analytics) GetProfile(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profiles.Build(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := profileResponse{
		User:               toUserResponse(profile.User),
		TotalOrders:        profile.TotalOrders,
		TotalSpend:         roundCents(profile.TotalSpend),
		AvgOrderValue:      roundCents(profile.AvgOrderValue),
		FavoriteCategories: make([]categoryStat, 0, len(profile.FavoriteCategories)),
		Segment:            string(profile.Segment),
	}
	for _, fc := range profile.FavoriteCategories {
		resp.FavoriteCategories = append(resp.FavoriteCategories, categoryStat(fc))
	}

	c.JSON(http.StatusOK, resp)
}

// GetRecommendations handles GET /api/users/:id/recommendations.
func (h *Analytics) GetRecommendations(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	recommendations, err := h.recommender.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]recommendationResponse, 0, len(recommendations))
	for _, r := range recommendations {
		resp = append(resp, recommendationResponse{
			Product: toProductResponse(r.Product),
			Score:   r.Score,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetSimilarUsers handles GET /api/users/:id/similar.
func (h *Analytics) GetSimilarUsers(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	similar, err := h.similarity.FindSimilar(c.Request.Context(), userID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]similarUserResponse, 0, len(similar))
	for _, s := range similar {
		resp = append(resp, similarUserResponse{
			User:       toUserResponse(s.User),
			Similarity: s.Similarity,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetNextPurchase handles GET /api/users/:id/next-purchase.
func (h *Analytics) GetNextPurchase(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	prediction, err := h.predictor.PredictNext(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := predictionResponse{
		InsufficientData: prediction.InsufficientData(),
		DataPoints:       prediction.DataPoints,
		Probability:      prediction.Probability,
		LikelyCategory:   prediction.LikelyCategory,
	}
	if prediction.PredictedDate != nil {
		date := prediction.PredictedDate.Format(time.RFC3339)
		resp.PredictedDate = &date
		gapHours := prediction.AverageGap.Hours()
		resp.AverageGapHours = &gapHours
		days := prediction.SinceLastOrder.Hours() / 24
		resp.DaysSinceLast = &days
	}

	c.JSON(http.StatusOK, resp)
}

// EnhancedSearch handles GET /api/search. The user parameter is optional;
// without it results come back in raw relevance order.
func (h *Analytics) EnhancedSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	userID := uuid.Nil
	if raw := c.Query("user"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		userID = id
	}

	products, err := h.search.Enhanced(c.Request.Context(), query, userID)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}
