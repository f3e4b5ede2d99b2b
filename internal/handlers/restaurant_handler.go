package handlers

import (
	"net/http"
	"strconv"

	"food_ordering/internal/middleware"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurantService services.RestaurantService
}

func NewRestaurantHandler(restaurantService services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// GET /api/restaurants?category=...&search=...&sort_by=name|rating
func (h *RestaurantHandler) Browse(c *gin.Context) {
	restaurants, err := h.restaurantService.Browse(
		c.Query("category"),
		c.Query("search"),
		c.DefaultQuery("sort_by", services.SortByName),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GET /api/restaurants/:restaurant_id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	restaurant, err := h.restaurantService.GetRestaurant(uint(restaurantID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

type restaurantProfileRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
}

// PUT /api/restaurant/profile
func (h *RestaurantHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req restaurantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	restaurant, err := h.restaurantService.UpdateProfile(actor, services.RestaurantProfileInput{
		Name:        req.Name,
		Category:    req.Category,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}
