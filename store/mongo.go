package store

import (
	"context"
	"time"

	"filmoteca/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoStores builds the store bundle on top of a connected database.
func NewMongoStores(database *mongo.Database) Stores {
	return Stores{
		Users:     &MongoUserStore{coll: database.Collection("users")},
		Films:     &MongoFilmStore{coll: database.Collection("films")},
		Favorites: &MongoFavoriteStore{coll: database.Collection("favorites")},
	}
}

type MongoUserStore struct {
	coll *mongo.Collection
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (s *MongoUserStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"password":   passwordHash,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoFilmStore struct {
	coll *mongo.Collection
}

func (s *MongoFilmStore) Create(ctx context.Context, film *models.Film) error {
	now := time.Now()
	film.CreatedAt = now
	film.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, film)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		film.ID = oid
	}
	return nil
}

func (s *MongoFilmStore) List(ctx context.Context) ([]models.Film, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	films := []models.Film{}
	if err := cur.All(ctx, &films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *MongoFilmStore) FindByFilmID(ctx context.Context, filmID int64) (models.Film, error) {
	var film models.Film
	err := s.coll.FindOne(ctx, bson.M{"film_id": filmID}).Decode(&film)
	if err == mongo.ErrNoDocuments {
		return models.Film{}, ErrNotFound
	}
	if err != nil {
		return models.Film{}, err
	}
	return film, nil
}

func (s *MongoFilmStore) Update(ctx context.Context, film *models.Film) error {
	film.UpdatedAt = time.Now()
	res, err := s.coll.UpdateOne(ctx, bson.M{"film_id": film.FilmID}, bson.M{"$set": bson.M{
		"title":      film.Title,
		"image":      film.Image,
		"year":       film.Year,
		"director":   film.Director,
		"genre":      film.Genre,
		"duration":   film.Duration,
		"synopsis":   film.Synopsis,
		"actors":     film.Actors,
		"rating":     film.Rating,
		"updated_at": film.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoFilmStore) Delete(ctx context.Context, filmID int64) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"film_id": filmID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoFavoriteStore struct {
	coll *mongo.Collection
}

func (s *MongoFavoriteStore) Add(ctx context.Context, userID primitive.ObjectID, filmID int64) error {
	fav := models.Favorite{
		UserID:    userID,
		FilmID:    filmID,
		CreatedAt: time.Now(),
	}
	_, err := s.coll.InsertOne(ctx, fav)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoFavoriteStore) Remove(ctx context.Context, userID primitive.ObjectID, filmID int64) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"user_id": userID, "film_id": filmID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoFavoriteStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	cur, err := s.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	favorites := []models.Favorite{}
	if err := cur.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}
