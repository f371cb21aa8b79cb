package enum

// UserRole represents a user's access level
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// IsValid reports whether the role is one of the accepted values
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

func (r UserRole) String() string {
	return string(r)
}
