package models

// User is a seller account. PasswordHash is a bcrypt digest and is never
// serialized into responses.
type User struct {
	ID           int    `bson:"user_id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Phone        string `bson:"phone" json:"phone"`
	PasswordHash string `bson:"password_hash" json:"-"`
}

// LoginRequest carries seller credentials.
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest creates a new seller account.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
