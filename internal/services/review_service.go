package services

import (
	"errors"
	"fmt"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	SubmitReview(actor models.Actor, orderID uint, rating int, comment string) (*models.Review, error)
	GetRestaurantReviews(restaurantID uint) ([]models.Review, error)
	AverageRating(restaurantID uint) (float64, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, orderRepo: orderRepo}
}

// SubmitReview attaches feedback to an order. Only the customer who placed
// the order may review it, the rating must be 1..5, and an order can be
// reviewed once; a second submission is rejected rather than overwritten.
func (s *reviewService) SubmitReview(actor models.Actor, orderID uint, rating int, comment string) (*models.Review, error) {
	if !actor.IsCustomer() {
		return nil, ErrForbidden
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if order.CustomerID != actor.CustomerID {
		return nil, ErrForbidden
	}

	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.reviewRepo.GetByOrderID(orderID); err == nil {
		return nil, ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	review := &models.Review{
		OrderID: orderID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return review, nil
}

func (s *reviewService) GetRestaurantReviews(restaurantID uint) ([]models.Review, error) {
	return s.reviewRepo.GetByRestaurantID(restaurantID)
}

func (s *reviewService) AverageRating(restaurantID uint) (float64, error) {
	return s.reviewRepo.AverageForRestaurant(restaurantID)
}
