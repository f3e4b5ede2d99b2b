package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByOrderID(orderID uint) (*models.Review, error)
	GetByRestaurantID(restaurantID uint) ([]models.Review, error)
	AverageForRestaurant(restaurantID uint) (float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByOrderID(orderID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("order_id = ?", orderID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByRestaurantID(restaurantID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Joins("JOIN orders ON orders.id = reviews.order_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// AverageForRestaurant derives the rating from current review data on every
// call instead of keeping a stored aggregate.
func (r *reviewRepository) AverageForRestaurant(restaurantID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Review{}).
		Select("AVG(reviews.rating)").
		Joins("JOIN orders ON orders.id = reviews.order_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
