package permission

import (
	"testing"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func claimsFor(role domain.Role) *domain.Claims {
	return &domain.Claims{UserID: "u1", UserRole: role}
}

func TestAllowed_NilUserHasNoCapability(t *testing.T) {
	for _, c := range append(append([]Capability{}, memberCapabilities...), adminOnlyCapabilities...) {
		assert.False(t, Allowed(nil, c), "capacidade %s deveria ser negada sem usuário", c)
	}
	assert.False(t, IsAdmin(nil))
	assert.False(t, CanViewCustomers(nil))
}

func TestAllowed_CustomerRole(t *testing.T) {
	kunde := claimsFor(domain.RoleCustomer)

	assert.False(t, CanManageRevenues(kunde))
	assert.False(t, CanViewAuditLogs(kunde))
	assert.False(t, CanCreateCustomers(kunde))
	assert.False(t, CanViewCustomers(kunde))
	assert.False(t, CanCreateTodos(kunde))
	assert.False(t, IsAdmin(kunde))

	for _, c := range adminOnlyCapabilities {
		if c == ViewCustomerPortal {
			continue
		}
		assert.False(t, Allowed(kunde, c), "kunde não deveria ter %s", c)
	}

	assert.True(t, CanViewCustomerPortal(kunde))
	assert.True(t, Allowed(kunde, MoveOwnAppointments))
}

func TestAllowed_MemberRole(t *testing.T) {
	member := claimsFor(domain.RoleMember)

	assert.True(t, CanViewCustomers(member))
	assert.True(t, CanCompleteTodos(member))
	assert.True(t, CanMovePipeline(member))
	assert.False(t, CanCreateTodos(member))
	assert.False(t, CanCreateCustomers(member))
	assert.False(t, CanManageRevenues(member))
	assert.False(t, CanViewAuditLogs(member))
	assert.False(t, Allowed(member, MoveOwnAppointments))
}

func TestAllowed_AdminHasEverythingButCustomerMoves(t *testing.T) {
	admin := claimsFor(domain.RoleAdmin)

	assert.True(t, IsAdmin(admin))
	for _, c := range memberCapabilities {
		assert.True(t, Allowed(admin, c), "admin deveria ter %s", c)
	}
	for _, c := range adminOnlyCapabilities {
		assert.True(t, Allowed(admin, c), "admin deveria ter %s", c)
	}
	assert.False(t, Allowed(admin, MoveOwnAppointments))
}

func TestFor_UnknownRole(t *testing.T) {
	set := For(domain.Role("superuser"))
	assert.Empty(t, set)
	assert.False(t, Allowed(claimsFor(domain.Role("superuser")), ViewCustomers))
}
