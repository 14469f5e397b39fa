package sessionrepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"locallibrary/model"
	"locallibrary/util/database"
)

// Repo is the session store, keyed by session id.
type Repo interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Set(ctx context.Context, s *model.Session) error
	Destroy(ctx context.Context, id string) error
}

type repo struct{ c *mongo.Collection }

func New(db *database.DB) Repo { return &repo{c: db.Collection(database.Sessions)} }

func (r *repo) Get(ctx context.Context, id string) (*model.Session, error) {
	s := &model.Session{}
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repo) Set(ctx context.Context, s *model.Session) error {
	_, err := r.c.ReplaceOne(ctx, bson.M{"_id": s.ID}, s, options.Replace().SetUpsert(true))
	return err
}

func (r *repo) Destroy(ctx context.Context, id string) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
