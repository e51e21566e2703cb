package storage

import (
	"database/sql"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var u domain.User
	var country sql.NullString
	err := r.DB.QueryRow(`
		SELECT id, email, password, name, role, country, created_at
		FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &country, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Country = country.String
	return &u, nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (name, description, address, country, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		rest.Name, rest.Description, rest.Address, rest.Country, rest.IsActive).
		Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants(f auth.ListFilter) ([]domain.Restaurant, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), address, country, is_active, created_at
		FROM restaurants`
	args := []interface{}{}
	if f.Country != "" {
		query += " WHERE country = $1"
		args = append(args, f.Country)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address,
			&rest.Country, &rest.IsActive, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), address, country, is_active, created_at
		FROM restaurants WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address,
			&rest.Country, &rest.IsActive, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		UPDATE restaurants
		SET name=$1, description=$2, address=$3, country=$4, is_active=$5
		WHERE id=$6
		RETURNING created_at`,
		rest.Name, rest.Description, rest.Address, rest.Country, rest.IsActive, rest.ID).
		Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, price, category, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Description, item.Price, item.Category, item.IsAvailable).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(f auth.ListFilter) ([]domain.MenuItem, error) {
	query := `
		SELECT m.id, m.restaurant_id, m.name, COALESCE(m.description, ''),
		       m.price, m.category, m.is_available, r.country, m.created_at
		FROM menu_items m
		JOIN restaurants r ON m.restaurant_id = r.id`
	args := []interface{}{}
	if f.Country != "" {
		query += " WHERE r.country = $1"
		args = append(args, f.Country)
	}
	query += " ORDER BY m.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Price, &item.Category, &item.IsAvailable, &item.Country, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListRestaurantMenu(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, category, is_available, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Price, &item.Category, &item.IsAvailable, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetMenuItem also resolves the owning restaurant's country for scope checks.
func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT m.id, m.restaurant_id, m.name, COALESCE(m.description, ''),
		       m.price, m.category, m.is_available, r.country, m.created_at
		FROM menu_items m
		JOIN restaurants r ON m.restaurant_id = r.id
		WHERE m.id = $1`, id).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Price, &item.Category, &item.IsAvailable, &item.Country, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category=$4, is_available=$5
		WHERE id=$6
		RETURNING created_at`,
		item.Name, item.Description, item.Price, item.Category, item.IsAvailable, item.ID).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	return r.DB.QueryRow(`
		INSERT INTO orders (user_id, restaurant_id, country, status, payment_status, total_amount)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING id, created_at`,
		order.UserID, order.RestaurantID, order.Country, order.Status, order.PaymentStatus).
		Scan(&order.ID, &order.CreatedAt)
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	var paymentMethodID sql.NullInt64
	err := r.DB.QueryRow(`
		SELECT id, user_id, restaurant_id, country, status, payment_status,
		       payment_method_id, total_amount, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Country,
			&order.Status, &order.PaymentStatus, &paymentMethodID,
			&order.TotalAmount, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.PaymentMethodID = int(paymentMethodID.Int64)
	return &order, nil
}

func (r *PostgresRepository) GetOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, m.name, oi.quantity, oi.price, oi.subtotal
		FROM order_items oi
		JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name,
			&item.Quantity, &item.Price, &item.Subtotal); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListOrders(f auth.ListFilter) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, restaurant_id, country, status, payment_status,
		       payment_method_id, total_amount, created_at
		FROM orders`
	args := []interface{}{}
	switch {
	case f.UserID != 0:
		query += " WHERE user_id = $1"
		args = append(args, f.UserID)
	case f.Country != "":
		query += " WHERE country = $1"
		args = append(args, f.Country)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var paymentMethodID sql.NullInt64
		if err := rows.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Country,
			&order.Status, &order.PaymentStatus, &paymentMethodID,
			&order.TotalAmount, &order.CreatedAt); err != nil {
			continue
		}
		order.PaymentMethodID = int(paymentMethodID.Int64)
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// AddOrderItem writes the line and the matching total increment in one
// transaction, so a failed statement never leaves an item the total does not
// reflect. The increment is relative, so concurrent additions never lose
// updates.
func (r *PostgresRepository) AddOrderItem(item *domain.OrderItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO order_items (order_id, menu_item_id, quantity, price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		item.OrderID, item.MenuItemID, item.Quantity, item.Price, item.Subtotal).
		Scan(&item.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(
		"UPDATE orders SET total_amount = total_amount + $1 WHERE id = $2",
		item.Subtotal, item.OrderID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) CountOrderItems(orderID int) (int, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM order_items WHERE order_id = $1", orderID).Scan(&count)
	return count, err
}

func (r *PostgresRepository) ConfirmOrder(orderID, paymentMethodID int) error {
	_, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1, payment_status = $2, payment_method_id = $3
		WHERE id = $4`,
		domain.OrderStatusConfirmed, domain.PaymentStatusPaid, paymentMethodID, orderID)
	return err
}

func (r *PostgresRepository) CancelOrder(orderID int) error {
	_, err := r.DB.Exec(
		"UPDATE orders SET status = $1 WHERE id = $2",
		domain.OrderStatusCancelled, orderID)
	return err
}

func (r *PostgresRepository) SaveReceipt(orderID int, receipt []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET receipt = $1 WHERE id = $2", receipt, orderID)
	return err
}

func (r *PostgresRepository) GetReceipt(orderID int) ([]byte, error) {
	var receipt []byte
	if err := r.DB.QueryRow("SELECT receipt FROM orders WHERE id = $1", orderID).Scan(&receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (r *PostgresRepository) ListPaymentMethods() ([]domain.PaymentMethod, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, type, is_active, created_at
		FROM payment_methods
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Type, &m.IsActive, &m.CreatedAt); err != nil {
			continue
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *PostgresRepository) GetPaymentMethod(id int) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	err := r.DB.QueryRow(`
		SELECT id, name, type, is_active, created_at
		FROM payment_methods WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Type, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) SetPaymentMethodActive(id int, active bool) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	err := r.DB.QueryRow(`
		UPDATE payment_methods SET is_active = $1 WHERE id = $2
		RETURNING id, name, type, is_active, created_at`, active, id).
		Scan(&m.ID, &m.Name, &m.Type, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
