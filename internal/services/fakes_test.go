package services

import (
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/pkg/notify"

	"gorm.io/gorm"
)

// In-memory repository fakes used across the service tests.

type fakeMenuRepo struct {
	items  map[uint]models.MenuItem
	nextID uint
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[uint]models.MenuItem{}, nextID: 1}
}

func (r *fakeMenuRepo) Create(item *models.MenuItem) error {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := item
	return &copied, nil
}

func (r *fakeMenuRepo) GetByRestaurantID(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) Update(item *models.MenuItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeOrderRepo struct {
	orders    map[uint]*models.Order
	nextID    uint
	createErr error
	updateErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*models.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	if r.createErr != nil {
		// Simulates a rolled-back transaction: nothing is persisted.
		return r.createErr
	}
	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = uint(i) + 1
		order.Items[i].OrderID = order.ID
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetByRestaurantID(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.RestaurantID == restaurantID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetByRestaurantAndStatus(restaurantID uint, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.RestaurantID == restaurantID && order.Status == status {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetByDateRange(restaurantID uint, startDate, endDate time.Time) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.RestaurantID == restaurantID &&
			!order.CreatedAt.Before(startDate) && !order.CreatedAt.After(endDate) {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) RevenueByItem(restaurantID uint, startDate, endDate time.Time) ([]repository.ItemRevenue, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customers map[uint]models.Customer
	byEmail   map[string]uint
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uint]models.Customer{}, byEmail: map[string]uint{}, nextID: 1}
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = *customer
	r.byEmail[customer.Email] = customer.ID
	return nil
}

func (r *fakeCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := customer
	return &copied, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *fakeCustomerRepo) Update(customer *models.Customer) error {
	r.customers[customer.ID] = *customer
	return nil
}

type fakeRestaurantRepo struct {
	restaurants map[uint]models.Restaurant
	byEmail     map[string]uint
	nextID      uint
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: map[uint]models.Restaurant{}, byEmail: map[string]uint{}, nextID: 1}
}

func (r *fakeRestaurantRepo) Create(restaurant *models.Restaurant) error {
	restaurant.ID = r.nextID
	r.nextID++
	r.restaurants[restaurant.ID] = *restaurant
	r.byEmail[restaurant.Email] = restaurant.ID
	return nil
}

func (r *fakeRestaurantRepo) GetByID(id uint) (*models.Restaurant, error) {
	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := restaurant
	return &copied, nil
}

func (r *fakeRestaurantRepo) GetByEmail(email string) (*models.Restaurant, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *fakeRestaurantRepo) List(category, search string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	for _, restaurant := range r.restaurants {
		if category != "" && restaurant.Category != category {
			continue
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

func (r *fakeRestaurantRepo) Update(restaurant *models.Restaurant) error {
	r.restaurants[restaurant.ID] = *restaurant
	return nil
}

type fakeReviewRepo struct {
	byOrder map[uint]models.Review
	// orderRestaurant lets the fake resolve which restaurant a review
	// belongs to, mirroring the join through orders.
	orderRestaurant map[uint]uint
	nextID          uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byOrder: map[uint]models.Review{}, orderRestaurant: map[uint]uint{}, nextID: 1}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	review.ID = r.nextID
	r.nextID++
	r.byOrder[review.OrderID] = *review
	return nil
}

func (r *fakeReviewRepo) GetByOrderID(orderID uint) (*models.Review, error) {
	review, ok := r.byOrder[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := review
	return &copied, nil
}

func (r *fakeReviewRepo) GetByRestaurantID(restaurantID uint) ([]models.Review, error) {
	var reviews []models.Review
	for orderID, review := range r.byOrder {
		if r.orderRestaurant[orderID] == restaurantID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepo) AverageForRestaurant(restaurantID uint) (float64, error) {
	total, count := 0, 0
	for orderID, review := range r.byOrder {
		if r.orderRestaurant[orderID] == restaurantID {
			total += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(total) / float64(count), nil
}

type fakeNotifier struct {
	events []notify.OrderCreatedEvent
	err    error
}

func (n *fakeNotifier) OrderCreated(event notify.OrderCreatedEvent) error {
	if n.err != nil {
		return n.err
	}
	n.events = append(n.events, event)
	return nil
}
