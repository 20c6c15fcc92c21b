package domain

// Role gates access to protected operations. Roles are compared exactly;
// there is no hierarchy between them.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTechnician
}

// User represents an authenticated user of the system. PasswordHash is only
// populated on records read from or written to the store; it must be cleared
// before a user leaves the service layer.
type User struct {
	ID           int64
	Email        string
	FullName     string
	Role         Role
	IsActive     bool
	PasswordHash string
}
