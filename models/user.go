package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ROLE_USER = "user"
const ROLE_ADMIN = "admin"

// User representa um usuário no sistema.
// Only the bcrypt hash is persisted; the password never leaves in JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username" form:"username"`
	Email     string             `bson:"email" json:"email" form:"email"`
	Role      string             `bson:"role" json:"role"`
	Password  string             `bson:"password" json:"-" form:"password"`
	GoogleID  string             `bson:"google_id,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (user User) MissingFields() string {
	if user.Username == "" {
		return "username"
	} else if user.Password == "" {
		return "password"
	} else if user.Email == "" {
		return "email"
	}
	return ""
}

func (user User) IsAdmin() bool {
	return user.Role == ROLE_ADMIN
}
