package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/internal/session"
	"food_ordering/pkg/notify"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// membershipDiscount is the fixed multiplier applied to the subtotal when
// the ordering customer holds an active membership.
var membershipDiscount = decimal.NewFromFloat(0.9)

// OrderNotifier delivers order events to restaurant-side tooling.
type OrderNotifier interface {
	OrderCreated(event notify.OrderCreatedEvent) error
}

// RevenueReport summarises a restaurant's orders over a date range.
type RevenueReport struct {
	StartDate    time.Time                `json:"start_date"`
	EndDate      time.Time                `json:"end_date"`
	TotalRevenue decimal.Decimal          `json:"total_revenue"`
	OrderCount   int                      `json:"order_count"`
	ByItem       []repository.ItemRevenue `json:"by_item"`
}

type OrderService interface {
	Checkout(ctx context.Context, actor models.Actor, sessionID string) (*models.Order, error)
	UpdateStatus(actor models.Actor, orderID uint, target models.OrderStatus) (*models.Order, error)
	AcceptOrder(actor models.Actor, orderID uint) (*models.Order, error)
	RejectOrder(actor models.Actor, orderID uint) (*models.Order, error)
	GetCustomerOrder(actor models.Actor, orderID uint) (*models.Order, error)
	GetCustomerOrders(actor models.Actor) ([]models.Order, error)
	GetRestaurantOrders(actor models.Actor) ([]models.Order, error)
	GetPendingOrders(actor models.Actor) ([]models.Order, error)
	RevenueReport(actor models.Actor, startDate, endDate time.Time) (*RevenueReport, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	menuRepo     repository.MenuRepository
	customerRepo repository.CustomerRepository
	carts        *session.Store
	notifier     OrderNotifier
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	customerRepo repository.CustomerRepository,
	carts *session.Store,
	notifier OrderNotifier,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		customerRepo: customerRepo,
		carts:        carts,
		notifier:     notifier,
	}
}

// Checkout turns the session cart into a persisted order. The order and its
// items commit as one unit; any failure leaves the cart intact for retry.
// The customer reference always comes from the authenticated actor.
func (s *orderService) Checkout(ctx context.Context, actor models.Actor, sessionID string) (*models.Order, error) {
	if !actor.IsCustomer() {
		return nil, ErrForbidden
	}

	state, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNoCart) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if state.IsEmpty() {
		return nil, ErrEmptyCart
	}

	customer, err := s.customerRepo.GetByID(actor.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", actor.CustomerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	// Resolve every cart entry up front. Unlike the cart view, checkout
	// aborts on the first unresolvable entry instead of skipping it.
	itemIDs := make([]uint, 0, len(state.Items))
	for itemID := range state.Items {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })

	var (
		restaurantID uint
		subtotal     = decimal.Zero
		orderItems   = make([]models.OrderItem, 0, len(itemIDs))
	)
	for _, itemID := range itemIDs {
		item, err := s.menuRepo.GetByID(itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to resolve menu item: %w", err)
		}

		if restaurantID == 0 {
			restaurantID = item.RestaurantID
		} else if item.RestaurantID != restaurantID {
			return nil, ErrMixedRestaurants
		}

		quantity := state.Items[itemID]
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(quantity))))
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: itemID,
			Quantity:   quantity,
			UnitPrice:  item.Price,
		})
	}

	serviceOption := models.ServicePayOnDemand
	total := subtotal
	if customer.Membership {
		serviceOption = models.ServiceMembership
		total = subtotal.Mul(membershipDiscount)
	}
	total = total.Round(2)

	order := &models.Order{
		CustomerID:    customer.ID,
		RestaurantID:  restaurantID,
		Items:         orderItems,
		TotalPrice:    total,
		ServiceOption: serviceOption,
		Status:        models.OrderPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		// The transaction rolled back; the cart stays in place for retry.
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		log.Printf("Warning: failed to clear cart for session %s: %v", sessionID, err)
	}

	if s.notifier != nil {
		event := notify.OrderCreatedEvent{
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			CustomerID:   order.CustomerID,
			TotalPrice:   order.TotalPrice.StringFixed(2),
			CreatedAt:    order.CreatedAt,
		}
		if err := s.notifier.OrderCreated(event); err != nil {
			log.Printf("Warning: failed to notify restaurant %d of order %d: %v", order.RestaurantID, order.ID, err)
		}
	}

	return order, nil
}

// UpdateStatus moves an order along its lifecycle. Only the owning
// restaurant may transition it, and only along the allowed edges.
func (s *orderService) UpdateStatus(actor models.Actor, orderID uint, target models.OrderStatus) (*models.Order, error) {
	if !actor.IsRestaurant() {
		return nil, ErrForbidden
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if order.RestaurantID != actor.RestaurantID {
		return nil, ErrForbidden
	}

	if !target.Valid() {
		return nil, fmt.Errorf("%q: %w", target, ErrInvalidStatus)
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("cannot move from %q to %q: %w", order.Status, target, ErrInvalidStatus)
	}

	order.Status = target
	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

func (s *orderService) AcceptOrder(actor models.Actor, orderID uint) (*models.Order, error) {
	return s.UpdateStatus(actor, orderID, models.OrderAccepted)
}

func (s *orderService) RejectOrder(actor models.Actor, orderID uint) (*models.Order, error) {
	return s.UpdateStatus(actor, orderID, models.OrderRejected)
}

// GetCustomerOrder returns one order with its items, owner only.
func (s *orderService) GetCustomerOrder(actor models.Actor, orderID uint) (*models.Order, error) {
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
	return order, nil
}

func (s *orderService) GetCustomerOrders(actor models.Actor) ([]models.Order, error) {
	if !actor.IsCustomer() {
		return nil, ErrForbidden
	}
	return s.orderRepo.GetByCustomerID(actor.CustomerID)
}

func (s *orderService) GetRestaurantOrders(actor models.Actor) ([]models.Order, error) {
	if !actor.IsRestaurant() {
		return nil, ErrForbidden
	}
	return s.orderRepo.GetByRestaurantID(actor.RestaurantID)
}

func (s *orderService) GetPendingOrders(actor models.Actor) ([]models.Order, error) {
	if !actor.IsRestaurant() {
		return nil, ErrForbidden
	}
	return s.orderRepo.GetByRestaurantAndStatus(actor.RestaurantID, models.OrderPending)
}

// RevenueReport aggregates a restaurant's completed volume over a window.
func (s *orderService) RevenueReport(actor models.Actor, startDate, endDate time.Time) (*RevenueReport, error) {
	if !actor.IsRestaurant() {
		return nil, ErrForbidden
	}

	orders, err := s.orderRepo.GetByDateRange(actor.RestaurantID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.TotalPrice)
	}

	byItem, err := s.orderRepo.RevenueByItem(actor.RestaurantID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return &RevenueReport{
		StartDate:    startDate,
		EndDate:      endDate,
		TotalRevenue: total,
		OrderCount:   len(orders),
		ByItem:       byItem,
	}, nil
}
