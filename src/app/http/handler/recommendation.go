package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bookrec/src/app/http/dto"
	"bookrec/src/app/http/response"
	"bookrec/src/app/middleware"
	"bookrec/src/core/domain"
	"bookrec/src/core/usecase"
)

// RecommendationHandler handles the recommendation endpoint.
type RecommendationHandler struct {
	recService *usecase.RecommendationService
}

func NewRecommendationHandler(recService *usecase.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recService: recService}
}

// Recommend returns a ranked list of unread books matching the user's
// preferred genres. The limit query parameter defaults to 20.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	limit := domain.DefaultRecommendationLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid limit", middleware.GetRequestID(c))
			return
		}
		limit = parsed
	}

	summaries, err := h.recService.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	books := make([]dto.BookResponse, 0, len(summaries))
	for _, s := range summaries {
		books = append(books, dto.BookFromSummary(s))
	}
	response.OK(c, gin.H{"recommendations": books})
}
