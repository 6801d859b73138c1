package models

// UserID identifies a User.
type UserID int

// User is an account stub. No route exercises it yet; the store keeps
// it so the schema is complete.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
}

// NewUser is the create payload for a User. Password arrives in plain
// text and is hashed before it is stored.
type NewUser struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
