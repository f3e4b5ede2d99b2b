package handlers

import (
	"net/http"
	"strconv"

	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookie = "cart_session"

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// cartSession returns the cart session id from the request cookie,
// assigning a fresh one when the session has none yet.
func cartSession(c *gin.Context) string {
	if sessionID, err := c.Cookie(cartCookie); err == nil && sessionID != "" {
		return sessionID
	}
	sessionID := uuid.NewString()
	c.SetCookie(cartCookie, sessionID, 0, "/", "", false, true)
	return sessionID
}

func itemIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return 0, false
	}
	return uint(id), true
}

// POST /api/cart/items/:item_id
func (h *CartHandler) AddItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	state, err := h.cartService.AddItem(c.Request.Context(), cartSession(c), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": state.Items})
}

// DELETE /api/cart/items/:item_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	state, err := h.cartService.RemoveItem(c.Request.Context(), cartSession(c), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": state.Items})
}

// GET /api/cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	view, err := h.cartService.ViewCart(c.Request.Context(), cartSession(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context(), cartSession(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
