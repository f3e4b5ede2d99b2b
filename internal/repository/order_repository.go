package repository

import (
	"food_ordering/internal/models"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemRevenue is one row of the per-item revenue report.
type ItemRevenue struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	GetByRestaurantID(restaurantID uint) ([]models.Order, error)
	GetByRestaurantAndStatus(restaurantID uint, status models.OrderStatus) ([]models.Order, error)
	GetByDateRange(restaurantID uint, startDate, endDate time.Time) ([]models.Order, error)
	Update(order *models.Order) error
	RevenueByItem(restaurantID uint, startDate, endDate time.Time) ([]ItemRevenue, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order header and its items as one transaction.
// Either everything commits or nothing does.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByRestaurantID(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByRestaurantAndStatus(restaurantID uint, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("restaurant_id = ? AND status = ?", restaurantID, status).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByDateRange(restaurantID uint, startDate, endDate time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, startDate, endDate).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) RevenueByItem(restaurantID uint, startDate, endDate time.Time) ([]ItemRevenue, error) {
	var rows []ItemRevenue
	err := r.db.Model(&models.OrderItem{}).
		Select("menu_items.name AS name, SUM(order_items.quantity * order_items.unit_price) AS revenue").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.restaurant_id = ? AND orders.created_at BETWEEN ? AND ?", restaurantID, startDate, endDate).
		Group("menu_items.name").
		Scan(&rows).Error
	return rows, err
}
