package auth

import "foodcourt/internal/domain"

// ListFilter narrows list queries at the storage layer. Zero values mean
// unrestricted.
type ListFilter struct {
	Country string
	UserID  int
}

// Scope is the per-role visibility and mutation boundary applied to catalog
// and order data. One implementation per role.
type Scope interface {
	// CanReadCountry reports whether resources in the given country are
	// visible at all.
	CanReadCountry(country string) bool
	// CanWriteCountry reports whether catalog resources in the given country
	// may be created or updated.
	CanWriteCountry(country string) bool
	// CanDeleteCatalog reports whether catalog resources may be deleted.
	CanDeleteCatalog() bool
	// CanManageOrders reports whether orders may be checked out or cancelled.
	CanManageOrders() bool
	// CanReadOrder reports whether the given order is visible.
	CanReadOrder(o *domain.Order) bool
	// CatalogFilter scopes restaurant and menu item list queries.
	CatalogFilter() ListFilter
	// OrderFilter scopes order list queries.
	OrderFilter() ListFilter
}

// ScopeFor picks the strategy matching the user's role. Unknown roles get
// member visibility in their own country.
func ScopeFor(u *domain.User) Scope {
	switch u.Role {
	case domain.RoleAdmin:
		return adminScope{}
	case domain.RoleManager:
		return managerScope{country: u.Country}
	default:
		return memberScope{userID: u.ID, country: u.Country}
	}
}

type adminScope struct{}

func (adminScope) CanReadCountry(string) bool { return true }

func (adminScope) CanWriteCountry(string) bool { return true }

func (adminScope) CanDeleteCatalog() bool { return true }

func (adminScope) CanManageOrders() bool { return true }

func (adminScope) CanReadOrder(*domain.Order) bool { return true }

func (adminScope) CatalogFilter() ListFilter { return ListFilter{} }

func (adminScope) OrderFilter() ListFilter { return ListFilter{} }

type managerScope struct {
	country string
}

func (s managerScope) CanReadCountry(country string) bool { return country == s.country }

func (s managerScope) CanWriteCountry(country string) bool { return country == s.country }

func (managerScope) CanDeleteCatalog() bool { return false }

func (managerScope) CanManageOrders() bool { return true }

func (s managerScope) CanReadOrder(o *domain.Order) bool { return o.Country == s.country }

func (s managerScope) CatalogFilter() ListFilter { return ListFilter{Country: s.country} }

func (s managerScope) OrderFilter() ListFilter { return ListFilter{Country: s.country} }

type memberScope struct {
	userID  int
	country string
}

func (s memberScope) CanReadCountry(country string) bool { return country == s.country }

func (memberScope) CanWriteCountry(string) bool { return false }

func (memberScope) CanDeleteCatalog() bool { return false }

func (memberScope) CanManageOrders() bool { return false }

func (s memberScope) CanReadOrder(o *domain.Order) bool { return o.UserID == s.userID }

func (s memberScope) CatalogFilter() ListFilter { return ListFilter{Country: s.country} }

func (s memberScope) OrderFilter() ListFilter { return ListFilter{UserID: s.userID} }
