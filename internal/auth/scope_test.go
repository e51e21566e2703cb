package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodcourt/internal/domain"
)

func TestScopeCountryAccess(t *testing.T) {
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	manager := &domain.User{ID: 2, Role: domain.RoleManager, Country: "india"}
	member := &domain.User{ID: 3, Role: domain.RoleMember, Country: "india"}

	tests := []struct {
		name      string
		user      *domain.User
		country   string
		wantRead  bool
		wantWrite bool
	}{
		{"admin reads any country", admin, "america", true, true},
		{"manager reads own country", manager, "india", true, true},
		{"manager denied other country", manager, "america", false, false},
		{"member reads own country", member, "india", true, false},
		{"member denied other country", member, "america", false, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			scope := ScopeFor(testCase.user)
			assert.Equal(t, testCase.wantRead, scope.CanReadCountry(testCase.country))
			assert.Equal(t, testCase.wantWrite, scope.CanWriteCountry(testCase.country))
		})
	}
}

func TestScopeOrderAccess(t *testing.T) {
	order := &domain.Order{ID: 10, UserID: 3, Country: "india"}

	owner := &domain.User{ID: 3, Role: domain.RoleMember, Country: "india"}
	otherMember := &domain.User{ID: 4, Role: domain.RoleMember, Country: "india"}
	manager := &domain.User{ID: 2, Role: domain.RoleManager, Country: "india"}
	foreignManager := &domain.User{ID: 5, Role: domain.RoleManager, Country: "america"}
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	assert.True(t, ScopeFor(owner).CanReadOrder(order))
	assert.False(t, ScopeFor(otherMember).CanReadOrder(order), "a member must never see another member's order")
	assert.True(t, ScopeFor(manager).CanReadOrder(order))
	assert.False(t, ScopeFor(foreignManager).CanReadOrder(order))
	assert.True(t, ScopeFor(admin).CanReadOrder(order))
}

func TestScopeCapabilities(t *testing.T) {
	assert.True(t, ScopeFor(&domain.User{Role: domain.RoleAdmin}).CanDeleteCatalog())
	assert.False(t, ScopeFor(&domain.User{Role: domain.RoleManager}).CanDeleteCatalog())
	assert.True(t, ScopeFor(&domain.User{Role: domain.RoleManager}).CanManageOrders())
	assert.False(t, ScopeFor(&domain.User{Role: domain.RoleMember}).CanManageOrders())
}

func TestScopeListFilters(t *testing.T) {
	member := &domain.User{ID: 3, Role: domain.RoleMember, Country: "india"}
	manager := &domain.User{ID: 2, Role: domain.RoleManager, Country: "america"}
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	assert.Equal(t, ListFilter{}, ScopeFor(admin).OrderFilter())
	assert.Equal(t, ListFilter{Country: "america"}, ScopeFor(manager).OrderFilter())
	assert.Equal(t, ListFilter{UserID: 3}, ScopeFor(member).OrderFilter())
	assert.Equal(t, ListFilter{Country: "india"}, ScopeFor(member).CatalogFilter())
}
