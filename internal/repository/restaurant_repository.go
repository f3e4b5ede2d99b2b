package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id uint) (*models.Restaurant, error)
	GetByEmail(email string) (*models.Restaurant, error)
	List(category, search string) ([]models.Restaurant, error)
	Update(restaurant *models.Restaurant) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *restaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetByEmail(email string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Where("email = ?", email).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(category, search string) ([]models.Restaurant, error) {
	query := r.db.Model(&models.Restaurant{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var restaurants []models.Restaurant
	err := query.Order("name").Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) Update(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}
