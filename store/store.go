package store

import (
	"context"
	"errors"

	"filmoteca/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

// UserStore persists user identity and credential hashes.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
}

// FilmStore persists the film catalog, keyed by the public film_id.
type FilmStore interface {
	Create(ctx context.Context, film *models.Film) error
	List(ctx context.Context) ([]models.Film, error)
	FindByFilmID(ctx context.Context, filmID int64) (models.Film, error)
	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, filmID int64) error
}

// FavoriteStore persists per-user favorite films.
type FavoriteStore interface {
	Add(ctx context.Context, userID primitive.ObjectID, filmID int64) error
	Remove(ctx context.Context, userID primitive.ObjectID, filmID int64) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error)
}

// Stores agrupa os stores para injeção no contexto do gin.
type Stores struct {
	Users     UserStore
	Films     FilmStore
	Favorites FavoriteStore
}
