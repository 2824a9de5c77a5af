package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// PasswordRecord is the stored form of a hashed credential: a random salt
// and the derived key, both base64-encoded.
type PasswordRecord struct {
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}

// User models an editor or admin account. Usernames are unique
// case-insensitively across the collection.
type User struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Password  PasswordRecord `json:"password"`
	Role      string         `json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PublicUser is the client-facing view of a User; it never carries the
// password record.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Principal is the authenticated identity resolved from a session cookie.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
