package model

// Role identifies an admin panel account level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// Valid reports whether the role is known.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// AdminAccount is a back-office login entry. The account list is fixed at
// configuration time; there is no user registration.
type AdminAccount struct {
	User         string
	PasswordHash string
	Role         Role
}
