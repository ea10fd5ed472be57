package db

import (
	"context"
	"time"

	"filmoteca/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com o MongoDB e garante os índices únicos.
func Connect(ctx context.Context) (*mongo.Database, error) {
	uri := conf.MongoURI
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logrus.WithError(err).Error("db: mongo connect failed")
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logrus.WithError(err).Error("db: mongo ping failed")
		return nil, err
	}

	database := client.Database(conf.MongoDB)
	if err := ensureIndexes(ctx, database); err != nil {
		return nil, err
	}

	logrus.WithField("db", conf.MongoDB).Info("db: connected to mongo")
	return database, nil
}

func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := database.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("films").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "film_id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("favorites").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "film_id", Value: 1}},
		Options: unique,
	})
	return err
}
