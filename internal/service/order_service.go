package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

type OrderService struct {
	orders      OrderRepository
	restaurants RestaurantRepository
	menuItems   MenuItemRepository
	payments    PaymentValidator
	receipts    ReceiptGenerator
	publisher   OrderEventPublisher
}

func NewOrderService(
	orders OrderRepository,
	restaurants RestaurantRepository,
	menuItems MenuItemRepository,
	payments PaymentValidator,
	receipts ReceiptGenerator,
	publisher OrderEventPublisher,
) *OrderService {
	return &OrderService{
		orders:      orders,
		restaurants: restaurants,
		menuItems:   menuItems,
		payments:    payments,
		receipts:    receipts,
		publisher:   publisher,
	}
}

func (s *OrderService) List(user *domain.User) ([]domain.Order, error) {
	return s.orders.ListOrders(auth.ScopeFor(user).OrderFilter())
}

func (s *OrderService) Get(user *domain.User, id int) (*domain.Order, error) {
	order, err := s.getOrder(id)
	if err != nil {
		return nil, err
	}
	if !auth.ScopeFor(user).CanReadOrder(order) {
		return nil, Forbidden("Access denied to this order")
	}
	if items, err := s.orders.GetOrderItems(id); err == nil {
		order.Items = items
	}
	return order, nil
}

// Create opens an empty pending order. The restaurant's country is
// denormalized onto the order so later scope checks need no join.
func (s *OrderService) Create(user *domain.User, restaurantID int) (*domain.Order, error) {
	rest, err := s.restaurants.GetRestaurant(restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Restaurant not found")
		}
		return nil, err
	}
	if user.Role != domain.RoleAdmin && rest.Country != user.Country {
		return nil, Forbidden("Cannot create order for restaurant in different country")
	}

	order := &domain.Order{
		UserID:        user.ID,
		RestaurantID:  rest.ID,
		Country:       rest.Country,
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
	}
	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddItem snapshots the current menu price and writes the line plus the
// total increment in a single transaction.
func (s *OrderService) AddItem(ctx context.Context, user *domain.User, orderID, menuItemID, quantity int) (*domain.OrderItem, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID && user.Role != domain.RoleAdmin {
		return nil, Forbidden("Access denied to this order")
	}
	if order.Status != domain.OrderStatusPending {
		return nil, BadRequest("Cannot add items to a confirmed order")
	}
	if quantity < 1 {
		return nil, BadRequest("Quantity must be a positive integer")
	}

	menuItem, err := s.menuItems.GetMenuItem(menuItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Menu item not found")
		}
		return nil, err
	}
	if menuItem.RestaurantID != order.RestaurantID {
		return nil, BadRequest("Menu item must be from the same restaurant")
	}
	if !menuItem.IsAvailable {
		return nil, BadRequest("Menu item is not available")
	}

	item := &domain.OrderItem{
		OrderID:    order.ID,
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		Quantity:   quantity,
		Price:      menuItem.Price,
		Subtotal:   domain.Round2(menuItem.Price * float64(quantity)),
	}
	if err := s.orders.AddOrderItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Checkout confirms a pending order against an active payment method.
// Payment succeeds synchronously; there is no gateway behind it.
func (s *OrderService) Checkout(ctx context.Context, user *domain.User, orderID, paymentMethodID int) (*domain.Order, error) {
	if !auth.ScopeFor(user).CanManageOrders() {
		return nil, Forbidden("Members cannot checkout orders")
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending {
		return nil, BadRequest("Order is already processed")
	}

	itemCount, err := s.orders.CountOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	if itemCount == 0 {
		return nil, BadRequest("Cannot checkout an empty order")
	}

	active, err := s.payments.IsActive(ctx, paymentMethodID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, NotFound("Payment method not found or inactive")
	}

	if err := s.orders.ConfirmOrder(order.ID, paymentMethodID); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatusConfirmed
	order.PaymentStatus = domain.PaymentStatusPaid
	order.PaymentMethodID = paymentMethodID

	if s.receipts != nil {
		if receipt, err := s.receipts.Generate(order); err == nil {
			if err := s.orders.SaveReceipt(order.ID, receipt); err != nil {
				slog.Warn("failed to store receipt", "order_id", order.ID, "error", err)
			}
		}
	}
	s.publish(ctx, domain.OrderEventConfirmed, order)

	if items, err := s.orders.GetOrderItems(order.ID); err == nil {
		order.Items = items
	}
	return order, nil
}

// Cancel moves any non-terminal order to cancelled. Items and total are kept
// for audit.
func (s *OrderService) Cancel(ctx context.Context, user *domain.User, orderID int) (*domain.Order, error) {
	if !auth.ScopeFor(user).CanManageOrders() {
		return nil, Forbidden("Members cannot cancel orders")
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, BadRequest("Order is already cancelled")
	}
	if order.Status == domain.OrderStatusDelivered {
		return nil, BadRequest("Cannot cancel a delivered order")
	}

	if err := s.orders.CancelOrder(order.ID); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatusCancelled
	s.publish(ctx, domain.OrderEventCancelled, order)
	return order, nil
}

func (s *OrderService) Receipt(user *domain.User, orderID int) ([]byte, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !auth.ScopeFor(user).CanReadOrder(order) {
		return nil, Forbidden("Access denied to this order")
	}
	if order.Status == domain.OrderStatusPending {
		return nil, NotFound("Receipt not available")
	}

	receipt, err := s.orders.GetReceipt(order.ID)
	if err != nil {
		return nil, err
	}
	if len(receipt) == 0 && s.receipts != nil {
		if regenerated, err := s.receipts.Generate(order); err == nil {
			if err := s.orders.SaveReceipt(order.ID, regenerated); err != nil {
				slog.Warn("failed to cache regenerated receipt", "order_id", order.ID, "error", err)
			}
			return regenerated, nil
		}
	}
	return receipt, nil
}

func (s *OrderService) getOrder(id int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Order not found")
		}
		return nil, err
	}
	return order, nil
}

// publish is fire-and-forget: event delivery never fails a request.
func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Country:      order.Country,
		TotalAmount:  order.TotalAmount,
		Timestamp:    time.Now().UTC(),
	})
	if err != nil {
		slog.Warn("failed to publish order event", "type", eventType, "order_id", order.ID, "error", err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
