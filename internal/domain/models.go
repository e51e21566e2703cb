package domain

import (
	"math"
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Restaurant struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Country     string     `json:"country"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	MenuItems   []MenuItem `json:"menuItems,omitempty"`
}

type MenuItem struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	IsAvailable  bool      `json:"isAvailable"`
	Country      string    `json:"country,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Order struct {
	ID              int           `json:"id"`
	UserID          int           `json:"userId"`
	RestaurantID    int           `json:"restaurantId"`
	Country         string        `json:"country"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethodID int           `json:"paymentMethodId,omitempty"`
	TotalAmount     float64       `json:"totalAmount"`
	CreatedAt       time.Time     `json:"createdAt"`
	Items           []OrderItem   `json:"items,omitempty"`
}

type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"orderId"`
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"`
}

type PaymentMethod struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderEvent is published to Kafka when an order leaves the pending state.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	Country      string    `json:"country"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	OrderEventConfirmed = "order_confirmed"
	OrderEventCancelled = "order_cancelled"
)

// Round2 normalizes money values to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
