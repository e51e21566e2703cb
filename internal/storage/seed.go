package storage

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"foodcourt/internal/domain"
)

const (
	CountryIndia   = "india"
	CountryAmerica = "america"
)

// Seed loads the demo dataset on an empty database. A non-empty users table
// means the database was already seeded.
func (r *PostgresRepository) Seed() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	users := []struct {
		email, name string
		role        domain.Role
		country     string
	}{
		{"nick.fury@shield.com", "Nick Fury", domain.RoleAdmin, ""},
		{"captain.marvel@india.com", "Captain Marvel", domain.RoleManager, CountryIndia},
		{"captain.america@usa.com", "Captain America", domain.RoleManager, CountryAmerica},
		{"thanos@india.com", "Thanos", domain.RoleMember, CountryIndia},
		{"thor@india.com", "Thor", domain.RoleMember, CountryIndia},
		{"travis@usa.com", "Travis", domain.RoleMember, CountryAmerica},
	}
	for _, u := range users {
		country := interface{}(u.country)
		if u.country == "" {
			country = nil
		}
		if _, err := r.DB.Exec(`
			INSERT INTO users (email, password, name, role, country)
			VALUES ($1, $2, $3, $4, $5)`,
			u.email, string(hash), u.name, u.role, country); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	paymentMethods := []struct{ name, kind string }{
		{"Credit Card", "credit_card"},
		{"Debit Card", "debit_card"},
		{"UPI", "upi"},
		{"Cash on Delivery", "cash"},
	}
	for _, pm := range paymentMethods {
		if _, err := r.DB.Exec(`
			INSERT INTO payment_methods (name, type, is_active)
			VALUES ($1, $2, TRUE)`, pm.name, pm.kind); err != nil {
			return fmt.Errorf("seed payment methods: %w", err)
		}
	}

	restaurants := []struct {
		name, description, address, country string
		menu                                []struct {
			name, category string
			price          float64
		}
	}{
		{
			"Taj Mahal Restaurant", "Authentic Indian cuisine with royal flavors",
			"Colaba, Mumbai, Maharashtra", CountryIndia,
			[]struct {
				name, category string
				price          float64
			}{
				{"Butter Chicken", "main_course", 5.99},
				{"Paneer Tikka", "appetizer", 4.49},
				{"Gulab Jamun", "dessert", 2.99},
			},
		},
		{
			"Spice Garden", "South Indian delicacies and traditional recipes",
			"Indiranagar, Bangalore, Karnataka", CountryIndia,
			[]struct {
				name, category string
				price          float64
			}{
				{"Masala Dosa", "main_course", 3.99},
				{"Filter Coffee", "beverage", 1.49},
			},
		},
		{
			"The American Diner", "Classic American comfort food and all-day breakfast",
			"5th Avenue, New York, NY", CountryAmerica,
			[]struct {
				name, category string
				price          float64
			}{
				{"Pancake Stack", "main_course", 7.99},
				{"Milkshake", "beverage", 3.49},
			},
		},
		{
			"Burger Haven", "Gourmet burgers and hand-cut fries",
			"Market Street, San Francisco, CA", CountryAmerica,
			[]struct {
				name, category string
				price          float64
			}{
				{"Classic Cheeseburger", "main_course", 8.99},
				{"Truffle Fries", "appetizer", 4.99},
			},
		},
	}
	for _, rest := range restaurants {
		var restaurantID int
		if err := r.DB.QueryRow(`
			INSERT INTO restaurants (name, description, address, country, is_active)
			VALUES ($1, $2, $3, $4, TRUE)
			RETURNING id`,
			rest.name, rest.description, rest.address, rest.country).Scan(&restaurantID); err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		for _, item := range rest.menu {
			if _, err := r.DB.Exec(`
				INSERT INTO menu_items (restaurant_id, name, price, category, is_available)
				VALUES ($1, $2, $3, $4, TRUE)`,
				restaurantID, item.name, item.price, item.category); err != nil {
				return fmt.Errorf("seed menu items: %w", err)
			}
		}
	}

	return nil
}
