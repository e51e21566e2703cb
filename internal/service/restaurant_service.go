package service

import (
	"database/sql"
	"errors"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

// RestaurantUpdate holds a partial update; nil fields are left unchanged.
type RestaurantUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Country     *string `json:"country"`
	IsActive    *bool   `json:"isActive"`
}

type RestaurantService struct {
	restaurants RestaurantRepository
	menuItems   MenuItemRepository
}

func NewRestaurantService(restaurants RestaurantRepository, menuItems MenuItemRepository) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, menuItems: menuItems}
}

func (s *RestaurantService) List(user *domain.User) ([]domain.Restaurant, error) {
	return s.restaurants.ListRestaurants(auth.ScopeFor(user).CatalogFilter())
}

func (s *RestaurantService) Get(user *domain.User, id int) (*domain.Restaurant, error) {
	rest, err := s.restaurants.GetRestaurant(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Restaurant not found")
		}
		return nil, err
	}
	if !auth.ScopeFor(user).CanReadCountry(rest.Country) {
		return nil, Forbidden("Access denied to this restaurant")
	}
	if items, err := s.menuItems.ListRestaurantMenu(id); err == nil {
		rest.MenuItems = items
	}
	return rest, nil
}

func (s *RestaurantService) Create(user *domain.User, rest *domain.Restaurant) error {
	if user.Role == domain.RoleMember {
		return Forbidden("Access denied")
	}
	if rest.Name == "" || rest.Address == "" || rest.Country == "" {
		return BadRequest("Name, address and country are required")
	}
	if !auth.ScopeFor(user).CanWriteCountry(rest.Country) {
		return Forbidden("Managers can only create restaurants in their own country")
	}
	return s.restaurants.CreateRestaurant(rest)
}

func (s *RestaurantService) Update(user *domain.User, id int, upd RestaurantUpdate) (*domain.Restaurant, error) {
	if user.Role == domain.RoleMember {
		return nil, Forbidden("Access denied")
	}

	rest, err := s.restaurants.GetRestaurant(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Restaurant not found")
		}
		return nil, err
	}

	scope := auth.ScopeFor(user)
	if !scope.CanWriteCountry(rest.Country) {
		return nil, Forbidden("Managers can only update restaurants in their own country")
	}

	if upd.Name != nil {
		rest.Name = *upd.Name
	}
	if upd.Description != nil {
		rest.Description = *upd.Description
	}
	if upd.Address != nil {
		rest.Address = *upd.Address
	}
	if upd.Country != nil {
		// moving a restaurant out of scope is still a country-scoped write
		if !scope.CanWriteCountry(*upd.Country) {
			return nil, Forbidden("Managers can only update restaurants in their own country")
		}
		rest.Country = *upd.Country
	}
	if upd.IsActive != nil {
		rest.IsActive = *upd.IsActive
	}

	if err := s.restaurants.UpdateRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Delete(user *domain.User, id int) error {
	if !auth.ScopeFor(user).CanDeleteCatalog() {
		return Forbidden("Only admins can delete restaurants")
	}
	rows, err := s.restaurants.DeleteRestaurant(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return NotFound("Restaurant not found")
	}
	return nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
