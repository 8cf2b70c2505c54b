package accounts

import "strings"

// Role is a dashboard permission level.
type Role string

const (
	RoleViewer     Role = "VIEWER"
	RoleSupport    Role = "SUPPORT"
	RoleManagement Role = "MANAGEMENT"
	RoleAdmin      Role = "ADMIN"
)

// rank orders roles; unknown roles rank 0, below VIEWER.
var rank = map[Role]int{
	RoleViewer:     1,
	RoleSupport:    2,
	RoleManagement: 3,
	RoleAdmin:      4,
}

// Roles lists every valid role from lowest to highest.
func Roles() []Role {
	return []Role{RoleViewer, RoleSupport, RoleManagement, RoleAdmin}
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := rank[r]
	return r, ok
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	have, ok := rank[r]
	if !ok {
		return false
	}
	return have >= rank[min]
}

func (r Role) String() string {
	return string(r)
}
