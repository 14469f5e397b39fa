package authrepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"locallibrary/model"
	"locallibrary/util/database"
)

// ErrDuplicateEmail is returned by Create when the email is already stored.
var ErrDuplicateEmail = errors.New("email already registered")

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct{ c *mongo.Collection }

func New(db *database.DB) Repo { return &repo{c: db.Collection(database.Users)} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	u.ID = primitive.NewObjectID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := r.c.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
