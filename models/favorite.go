package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite liga um usuário a uma película do catálogo.
// The (user_id, film_id) pair is unique.
type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	FilmID    int64              `bson:"film_id" json:"film_id" form:"film_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
