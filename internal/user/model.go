package user

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	Role        Role       `json:"role"`
	OrdersCount int        `json:"orders_count"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UpdateProfileParams carries explicit field updates; nil leaves a field
// untouched.
type UpdateProfileParams struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
