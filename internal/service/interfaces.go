package service

import (
	"context"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
}

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants(f auth.ListFilter) ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
}

type MenuItemRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(f auth.ListFilter) ([]domain.MenuItem, error)
	ListRestaurantMenu(restaurantID int) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	GetOrderItems(orderID int) ([]domain.OrderItem, error)
	ListOrders(f auth.ListFilter) ([]domain.Order, error)
	AddOrderItem(item *domain.OrderItem) error
	CountOrderItems(orderID int) (int, error)
	ConfirmOrder(orderID, paymentMethodID int) error
	CancelOrder(orderID int) error
	SaveReceipt(orderID int, receipt []byte) error
	GetReceipt(orderID int) ([]byte, error)
}

type PaymentMethodRepository interface {
	ListPaymentMethods() ([]domain.PaymentMethod, error)
	GetPaymentMethod(id int) (*domain.PaymentMethod, error)
	SetPaymentMethodActive(id int, active bool) (*domain.PaymentMethod, error)
}

type PaymentMethodCache interface {
	ActiveKey(id int) string
	GetActive(ctx context.Context, key string) (bool, bool, error)
	SetActive(ctx context.Context, key string, active bool) error
	Invalidate(ctx context.Context, key string) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type ReceiptGenerator interface {
	Generate(order *domain.Order) ([]byte, error)
}

// PaymentValidator is the slice of the payment service the order service
// needs at checkout.
type PaymentValidator interface {
	IsActive(ctx context.Context, id int) (bool, error)
}

type AuthServiceInterface interface {
	Login(email, password string) (string, *domain.User, error)
}

type RestaurantServiceInterface interface {
	List(user *domain.User) ([]domain.Restaurant, error)
	Get(user *domain.User, id int) (*domain.Restaurant, error)
	Create(user *domain.User, rest *domain.Restaurant) error
	Update(user *domain.User, id int, upd RestaurantUpdate) (*domain.Restaurant, error)
	Delete(user *domain.User, id int) error
}

type MenuServiceInterface interface {
	List(user *domain.User) ([]domain.MenuItem, error)
	ListByRestaurant(user *domain.User, restaurantID int) ([]domain.MenuItem, error)
	Get(user *domain.User, id int) (*domain.MenuItem, error)
	Create(user *domain.User, item *domain.MenuItem) error
	Update(user *domain.User, id int, upd MenuItemUpdate) (*domain.MenuItem, error)
	Delete(user *domain.User, id int) error
}

type OrderServiceInterface interface {
	List(user *domain.User) ([]domain.Order, error)
	Get(user *domain.User, id int) (*domain.Order, error)
	Create(user *domain.User, restaurantID int) (*domain.Order, error)
	AddItem(ctx context.Context, user *domain.User, orderID, menuItemID, quantity int) (*domain.OrderItem, error)
	Checkout(ctx context.Context, user *domain.User, orderID, paymentMethodID int) (*domain.Order, error)
	Cancel(ctx context.Context, user *domain.User, orderID int) (*domain.Order, error)
	Receipt(user *domain.User, orderID int) ([]byte, error)
}

type PaymentServiceInterface interface {
	List() ([]domain.PaymentMethod, error)
	SetActive(ctx context.Context, user *domain.User, id int, active bool) (*domain.PaymentMethod, error)
	IsActive(ctx context.Context, id int) (bool, error)
}
