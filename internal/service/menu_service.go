package service

import (
	"database/sql"
	"errors"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

// MenuItemUpdate holds a partial update; nil fields are left unchanged.
type MenuItemUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	IsAvailable *bool    `json:"isAvailable"`
}

type MenuService struct {
	menuItems   MenuItemRepository
	restaurants RestaurantRepository
}

func NewMenuService(menuItems MenuItemRepository, restaurants RestaurantRepository) *MenuService {
	return &MenuService{menuItems: menuItems, restaurants: restaurants}
}

func (s *MenuService) List(user *domain.User) ([]domain.MenuItem, error) {
	return s.menuItems.ListMenuItems(auth.ScopeFor(user).CatalogFilter())
}

func (s *MenuService) ListByRestaurant(user *domain.User, restaurantID int) ([]domain.MenuItem, error) {
	rest, err := s.restaurants.GetRestaurant(restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Restaurant not found")
		}
		return nil, err
	}
	if !auth.ScopeFor(user).CanReadCountry(rest.Country) {
		return nil, Forbidden("Access denied to this restaurant")
	}
	return s.menuItems.ListRestaurantMenu(restaurantID)
}

func (s *MenuService) Get(user *domain.User, id int) (*domain.MenuItem, error) {
	item, err := s.menuItems.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Menu item not found")
		}
		return nil, err
	}
	if !auth.ScopeFor(user).CanReadCountry(item.Country) {
		return nil, Forbidden("Access denied to this menu item")
	}
	return item, nil
}

func (s *MenuService) Create(user *domain.User, item *domain.MenuItem) error {
	if user.Role == domain.RoleMember {
		return Forbidden("Access denied")
	}
	if item.Name == "" || item.Price <= 0 || item.Category == "" {
		return BadRequest("Name, positive price and category are required")
	}

	rest, err := s.restaurants.GetRestaurant(item.RestaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotFound("Restaurant not found")
		}
		return err
	}
	if !auth.ScopeFor(user).CanWriteCountry(rest.Country) {
		return Forbidden("Managers can only create menu items for restaurants in their own country")
	}

	item.Price = domain.Round2(item.Price)
	if err := s.menuItems.CreateMenuItem(item); err != nil {
		return err
	}
	item.Country = rest.Country
	return nil
}

func (s *MenuService) Update(user *domain.User, id int, upd MenuItemUpdate) (*domain.MenuItem, error) {
	if user.Role == domain.RoleMember {
		return nil, Forbidden("Access denied")
	}

	item, err := s.menuItems.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Menu item not found")
		}
		return nil, err
	}
	if !auth.ScopeFor(user).CanWriteCountry(item.Country) {
		return nil, Forbidden("Managers can only update menu items in their own country")
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price <= 0 {
			return nil, BadRequest("Price must be positive")
		}
		item.Price = domain.Round2(*upd.Price)
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.IsAvailable != nil {
		item.IsAvailable = *upd.IsAvailable
	}

	if err := s.menuItems.UpdateMenuItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(user *domain.User, id int) error {
	if !auth.ScopeFor(user).CanDeleteCatalog() {
		return Forbidden("Only admins can delete menu items")
	}
	rows, err := s.menuItems.DeleteMenuItem(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return NotFound("Menu item not found")
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
