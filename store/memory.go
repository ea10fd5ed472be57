package store

import (
	"context"
	"strconv"
	"sync"

	"filmoteca/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStores returns a store bundle backed by process memory.
// Useful for handler tests and local smoke runs without a mongo.
func NewMemoryStores() Stores {
	return Stores{
		Users:     &MemoryUserStore{users: map[primitive.ObjectID]models.User{}},
		Films:     &MemoryFilmStore{films: map[int64]models.Film{}},
		Favorites: &MemoryFavoriteStore{favorites: map[string]models.Favorite{}},
	}
}

type MemoryUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryUserStore) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Email == email {
			u.Password = passwordHash
			s.users[id] = u
			return nil
		}
	}
	return ErrNotFound
}

type MemoryFilmStore struct {
	mu    sync.Mutex
	films map[int64]models.Film
}

func (s *MemoryFilmStore) Create(ctx context.Context, film *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.films[film.FilmID]; ok {
		return ErrDuplicate
	}
	for _, f := range s.films {
		if f.Title == film.Title {
			return ErrDuplicate
		}
	}
	film.ID = primitive.NewObjectID()
	s.films[film.FilmID] = *film
	return nil
}

func (s *MemoryFilmStore) List(ctx context.Context) ([]models.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	films := []models.Film{}
	for _, f := range s.films {
		films = append(films, f)
	}
	return films, nil
}

func (s *MemoryFilmStore) FindByFilmID(ctx context.Context, filmID int64) (models.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.films[filmID]
	if !ok {
		return models.Film{}, ErrNotFound
	}
	return f, nil
}

func (s *MemoryFilmStore) Update(ctx context.Context, film *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.films[film.FilmID]; !ok {
		return ErrNotFound
	}
	s.films[film.FilmID] = *film
	return nil
}

func (s *MemoryFilmStore) Delete(ctx context.Context, filmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.films[filmID]; !ok {
		return ErrNotFound
	}
	delete(s.films, filmID)
	return nil
}

type MemoryFavoriteStore struct {
	mu        sync.Mutex
	favorites map[string]models.Favorite
}

func favKey(userID primitive.ObjectID, filmID int64) string {
	return userID.Hex() + "/" + strconv.FormatInt(filmID, 10)
}

func (s *MemoryFavoriteStore) Add(ctx context.Context, userID primitive.ObjectID, filmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := favKey(userID, filmID)
	if _, ok := s.favorites[key]; ok {
		return ErrDuplicate
	}
	s.favorites[key] = models.Favorite{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		FilmID: filmID,
	}
	return nil
}

func (s *MemoryFavoriteStore) Remove(ctx context.Context, userID primitive.ObjectID, filmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := favKey(userID, filmID)
	if _, ok := s.favorites[key]; !ok {
		return ErrNotFound
	}
	delete(s.favorites, key)
	return nil
}

func (s *MemoryFavoriteStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	favorites := []models.Favorite{}
	for _, f := range s.favorites {
		if f.UserID == userID {
			favorites = append(favorites, f)
		}
	}
	return favorites, nil
}
