package services

import (
	"errors"
	"fmt"
	"sort"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"gorm.io/gorm"
)

const (
	SortByName   = "name"
	SortByRating = "rating"
)

type RestaurantService interface {
	Browse(category, search, sortBy string) ([]models.Restaurant, error)
	GetRestaurant(id uint) (*models.Restaurant, error)
	UpdateProfile(actor models.Actor, input RestaurantProfileInput) (*models.Restaurant, error)
}

type RestaurantProfileInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	reviewRepo     repository.ReviewRepository
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository, reviewRepo repository.ReviewRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo, reviewRepo: reviewRepo}
}

// Browse lists restaurants with optional category filter and name search.
// Ratings are derived from current review data on every call, so sorting by
// rating reflects the latest reviews.
func (s *restaurantService) Browse(category, search, sortBy string) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.List(category, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	for i := range restaurants {
		rating, err := s.reviewRepo.AverageForRestaurant(restaurants[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to derive rating: %w", err)
		}
		restaurants[i].AverageRating = rating
	}

	if sortBy == SortByRating {
		sort.SliceStable(restaurants, func(i, j int) bool {
			return restaurants[i].AverageRating > restaurants[j].AverageRating
		})
	}

	return restaurants, nil
}

func (s *restaurantService) GetRestaurant(id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}

	rating, err := s.reviewRepo.AverageForRestaurant(id)
	if err != nil {
		return nil, fmt.Errorf("failed to derive rating: %w", err)
	}
	restaurant.AverageRating = rating

	return restaurant, nil
}

func (s *restaurantService) UpdateProfile(actor models.Actor, input RestaurantProfileInput) (*models.Restaurant, error) {
	if !actor.IsRestaurant() {
		return nil, ErrForbidden
	}

	restaurant, err := s.restaurantRepo.GetByID(actor.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant %d: %w", actor.RestaurantID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}

	restaurant.Name = input.Name
	restaurant.Category = input.Category
	restaurant.Address = input.Address
	restaurant.PhoneNumber = input.PhoneNumber
	restaurant.Description = input.Description

	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}
	return restaurant, nil
}
