package handlers

import (
	"net/http"
	"strconv"

	"food_ordering/internal/middleware"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type menuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImagePath   string          `json:"image_path"`
}

// POST /api/restaurant/menu
func (h *MenuHandler) AddItem(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuService.AddItem(actor, services.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /api/restaurant/menu/:item_id
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuService.UpdateItem(actor, itemID, services.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /api/restaurant/menu/:item_id
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	if err := h.menuService.DeleteItem(actor, itemID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// GET /api/restaurants/:restaurant_id/menu
func (h *MenuHandler) GetMenu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	items, err := h.menuService.GetMenu(uint(restaurantID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
