// Package mocks holds testify mocks for the service-layer interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type UserRepository struct{ mock.Mock }

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) GetUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

type RestaurantRepository struct{ mock.Mock }

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) ListRestaurants(f auth.ListFilter) ([]domain.Restaurant, error) {
	args := m.Called(f)
	var out []domain.Restaurant
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Restaurant)
	}
	return out, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	var rest *domain.Restaurant
	if args.Get(0) != nil {
		rest = args.Get(0).(*domain.Restaurant)
	}
	return rest, args.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) DeleteRestaurant(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type MenuItemRepository struct{ mock.Mock }

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuItemRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuItemRepository) ListMenuItems(f auth.ListFilter) ([]domain.MenuItem, error) {
	args := m.Called(f)
	var out []domain.MenuItem
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.MenuItem)
	}
	return out, args.Error(1)
}

func (m *MenuItemRepository) ListRestaurantMenu(restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	var out []domain.MenuItem
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.MenuItem)
	}
	return out, args.Error(1)
}

func (m *MenuItemRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuItemRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuItemRepository) DeleteMenuItem(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct{ mock.Mock }

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) GetOrderItems(orderID int) ([]domain.OrderItem, error) {
	args := m.Called(orderID)
	var items []domain.OrderItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.OrderItem)
	}
	return items, args.Error(1)
}

func (m *OrderRepository) ListOrders(f auth.ListFilter) ([]domain.Order, error) {
	args := m.Called(f)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) AddOrderItem(item *domain.OrderItem) error {
	return m.Called(item).Error(0)
}

func (m *OrderRepository) CountOrderItems(orderID int) (int, error) {
	args := m.Called(orderID)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) ConfirmOrder(orderID, paymentMethodID int) error {
	return m.Called(orderID, paymentMethodID).Error(0)
}

func (m *OrderRepository) CancelOrder(orderID int) error {
	return m.Called(orderID).Error(0)
}

func (m *OrderRepository) SaveReceipt(orderID int, receipt []byte) error {
	return m.Called(orderID, receipt).Error(0)
}

func (m *OrderRepository) GetReceipt(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var receipt []byte
	if args.Get(0) != nil {
		receipt = args.Get(0).([]byte)
	}
	return receipt, args.Error(1)
}

type PaymentMethodRepository struct{ mock.Mock }

func NewPaymentMethodRepository(t testingT) *PaymentMethodRepository {
	m := &PaymentMethodRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentMethodRepository) ListPaymentMethods() ([]domain.PaymentMethod, error) {
	args := m.Called()
	var methods []domain.PaymentMethod
	if args.Get(0) != nil {
		methods = args.Get(0).([]domain.PaymentMethod)
	}
	return methods, args.Error(1)
}

func (m *PaymentMethodRepository) GetPaymentMethod(id int) (*domain.PaymentMethod, error) {
	args := m.Called(id)
	var method *domain.PaymentMethod
	if args.Get(0) != nil {
		method = args.Get(0).(*domain.PaymentMethod)
	}
	return method, args.Error(1)
}

func (m *PaymentMethodRepository) SetPaymentMethodActive(id int, active bool) (*domain.PaymentMethod, error) {
	args := m.Called(id, active)
	var method *domain.PaymentMethod
	if args.Get(0) != nil {
		method = args.Get(0).(*domain.PaymentMethod)
	}
	return method, args.Error(1)
}

type PaymentMethodCache struct{ mock.Mock }

func NewPaymentMethodCache(t testingT) *PaymentMethodCache {
	m := &PaymentMethodCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentMethodCache) ActiveKey(id int) string {
	return m.Called(id).String(0)
}

func (m *PaymentMethodCache) GetActive(ctx context.Context, key string) (bool, bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *PaymentMethodCache) SetActive(ctx context.Context, key string, active bool) error {
	return m.Called(ctx, key, active).Error(0)
}

func (m *PaymentMethodCache) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type PaymentValidator struct{ mock.Mock }

func NewPaymentValidator(t testingT) *PaymentValidator {
	m := &PaymentValidator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentValidator) IsActive(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type OrderEventPublisher struct{ mock.Mock }

func NewOrderEventPublisher(t testingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type ReceiptGenerator struct{ mock.Mock }

func NewReceiptGenerator(t testingT) *ReceiptGenerator {
	m := &ReceiptGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReceiptGenerator) Generate(order *domain.Order) ([]byte, error) {
	args := m.Called(order)
	var receipt []byte
	if args.Get(0) != nil {
		receipt = args.Get(0).([]byte)
	}
	return receipt, args.Error(1)
}
