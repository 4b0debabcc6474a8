package user

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"  // Administrator, excluded from attendance reports
	RoleTenaga Role = "TENAGA" // Tenaga kependidikan (staff)
)

// Roles lists every role accepted by the API.
var Roles = []string{string(RoleAdmin), string(RoleTenaga)}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        *string
	Position     *string
	Alamat       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
