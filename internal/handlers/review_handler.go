package handlers

import (
	"net/http"
	"strconv"

	"food_ordering/internal/middleware"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type submitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// POST /api/orders/:order_id/review
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	review, err := h.reviewService.SubmitReview(actor, orderID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GET /api/restaurants/:restaurant_id/reviews
func (h *ReviewHandler) ListRestaurantReviews(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	reviews, err := h.reviewService.GetRestaurantReviews(uint(restaurantID))
	if err != nil {
		respondError(c, err)
		return
	}

	average, err := h.reviewService.AverageRating(uint(restaurantID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "average_rating": average})
}
