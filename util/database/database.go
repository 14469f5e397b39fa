package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	Users         = "users"
	Sessions      = "sessions"
	Authors       = "authors"
	Genres        = "genres"
	Books         = "books"
	BookInstances = "bookinstances"
)

type DB struct {
	Client *mongo.Client
	Name   string
}

func New(ctx context.Context, uri, name string) (*DB, error) {
	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(10 * time.Second)
	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &DB{Client: c, Name: name}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.Client.Database(d.Name).Collection(name)
}

func (d *DB) Close(ctx context.Context) error { return d.Client.Disconnect(ctx) }

// Migrate creates the indexes the repositories rely on. It is idempotent.
func Migrate(ctx context.Context, d *DB) error {
	specs := map[string][]mongo.IndexModel{
		Users: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		Genres: {{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		Books: {
			{Keys: bson.D{{Key: "author", Value: 1}}},
			{Keys: bson.D{{Key: "genre", Value: 1}}},
			{Keys: bson.D{{Key: "title", Value: 1}}},
		},
		BookInstances: {
			{Keys: bson.D{{Key: "book", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		Sessions: {{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		}},
	}
	for coll, models := range specs {
		if _, err := d.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}
