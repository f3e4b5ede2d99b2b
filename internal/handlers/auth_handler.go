package handlers

import (
	"net/http"

	"food_ordering/internal/middleware"
	"food_ordering/internal/models"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signUpRequest struct {
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Category string `json:"category"`
}

// POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	switch req.Role {
	case string(models.ActorCustomer):
		tok, customer, err := h.authService.SignUpCustomer(services.CustomerSignUp{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Address:  req.Address,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": tok, "customer": customer})
	case string(models.ActorRestaurant):
		tok, restaurant, err := h.authService.SignUpRestaurant(services.RestaurantSignUp{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Category: req.Category,
			Address:  req.Address,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": tok, "restaurant": restaurant})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role selected"})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tok, actor, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok, "actor": actor})
}

type membershipRequest struct {
	MembershipType string `json:"membership_type" binding:"required"`
}

// POST /api/membership
func (h *AuthHandler) ActivateMembership(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req membershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer, err := h.authService.ActivateMembership(actor, models.MembershipType(req.MembershipType))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}
