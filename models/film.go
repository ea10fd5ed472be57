package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Film representa uma película do catálogo.
// FilmID is the public catalog number (unique), separate from the Mongo _id.
type Film struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FilmID    int64              `bson:"film_id" json:"film_id" form:"film_id"`
	Title     string             `bson:"title" json:"title" form:"title"`
	Image     string             `bson:"image" json:"image" form:"image"`
	Year      int                `bson:"year" json:"year" form:"year"`
	Director  string             `bson:"director" json:"director" form:"director"`
	Genre     string             `bson:"genre" json:"genre" form:"genre"`
	Duration  string             `bson:"duration" json:"duration" form:"duration"`
	Synopsis  string             `bson:"synopsis" json:"synopsis" form:"synopsis"`
	Actors    string             `bson:"actors" json:"actors" form:"actors"`
	Rating    string             `bson:"rating" json:"rating" form:"rating"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (film Film) MissingFields() string {
	if film.FilmID <= 0 {
		return "film_id"
	} else if film.Title == "" {
		return "title"
	} else if film.Year <= 0 {
		return "year"
	} else if film.Director == "" {
		return "director"
	}
	return ""
}
