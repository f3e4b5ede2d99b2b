package handlers

import (
	"net/http"
	"strconv"
	"time"

	"food_ordering/internal/middleware"
	"food_ordering/internal/models"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// POST /api/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.orderService.Checkout(c.Request.Context(), actor, cartSession(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /api/orders
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.GetCustomerOrders(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/:order_id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetCustomerOrder(actor, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/restaurant/orders
func (h *OrderHandler) ListRestaurantOrders(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.GetRestaurantOrders(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GET /api/restaurant/orders/pending
func (h *OrderHandler) ListPendingOrders(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.GetPendingOrders(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// POST /api/restaurant/orders/:order_id/accept
func (h *OrderHandler) AcceptOrder(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.AcceptOrder(actor, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// POST /api/restaurant/orders/:order_id/reject
func (h *OrderHandler) RejectOrder(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.RejectOrder(actor, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/restaurant/orders/:order_id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(actor, orderID, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/restaurant/reports?start_date=...&end_date=...
func (h *OrderHandler) RevenueReport(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -30)

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
			return
		}
		startDate = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
			return
		}
		endDate = parsed
	}

	report, err := h.orderService.RevenueReport(actor, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
