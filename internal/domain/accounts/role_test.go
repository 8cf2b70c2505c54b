//go:build unit
// +build unit

package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role     Role
		min      Role
		expected bool
	}{
		{RoleAdmin, RoleManagement, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleManagement, RoleSupport, true},
		{RoleSupport, RoleManagement, false},
		{RoleSupport, RoleAdmin, false},
		{RoleViewer, RoleSupport, false},
		{RoleViewer, RoleViewer, true},
		{Role("ROOT"), RoleViewer, false},
		{Role(""), RoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.min), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.AtLeast(tt.min))
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" management ")
	assert.True(t, ok)
	assert.Equal(t, RoleManagement, role)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)
}

func TestRoles_Ordered(t *testing.T) {
	roles := Roles()
	for i := 1; i < len(roles); i++ {
		assert.True(t, roles[i].AtLeast(roles[i-1]))
		assert.False(t, roles[i-1].AtLeast(roles[i]))
	}
}
