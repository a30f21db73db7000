package models

// Role names seeded by the schema migrations.
const (
	RoleAdmin   = "admin"
	RoleRegular = "regular"
)

// User is an application account. Users are created once per distinct
// external identity and never mutated afterwards.
type User struct {
	// UserID is the canonical (dash-free hex) user identifier.
	UserID string `json:"user_id"`

	// RoleID references the role row the user was created with.
	RoleID string `json:"-" cbor:"role_id"`

	// RoleName is filled when the user is loaded together with its role.
	RoleName string `json:"role,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "app_user"
}
