package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CustomerID    uint            `json:"customer_id" gorm:"not null;index"`
	RestaurantID  uint            `json:"restaurant_id" gorm:"not null;index"`
	Items         []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	ServiceOption ServiceOption   `json:"service_option" gorm:"type:varchar(20);not null"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(20);default:'pending';not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ServiceOption is the pricing mode frozen into the order at checkout.
type ServiceOption string

const (
	ServiceMembership  ServiceOption = "membership"
	ServicePayOnDemand ServiceOption = "pay_on_demand"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderAccepted       OrderStatus = "accepted"
	OrderRejected       OrderStatus = "rejected"
	OrderInPreparation  OrderStatus = "in_preparation"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// statusTransitions holds the allowed lifecycle edges. Rejected, delivered
// and cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderAccepted, OrderRejected},
	OrderAccepted:       {OrderInPreparation, OrderCancelled},
	OrderInPreparation:  {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
	OrderRejected:       {},
	OrderDelivered:      {},
	OrderCancelled:      {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(statusTransitions[s]) == 0
}
