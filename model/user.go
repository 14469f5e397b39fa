package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Session is the server-side half of a login. The cookie only names it.
type Session struct {
	ID        string             `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

// SignupReq represents the signup form payload
type SignupReq struct {
	Email    string `form:"email" validate:"required,email" msg:"Please enter a valid email address."`
	Password string `form:"password" validate:"required,min=6" msg:"Password must be at least 6 characters."`
}

// LoginReq represents the login form payload
type LoginReq struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}
