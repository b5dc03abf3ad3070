package model

// Role distinguishes regular users from administrators.
type Role string

// Valid roles.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the account record persisted alongside the session token.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Role    Role   `json:"role"`
}
