package genrerepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"locallibrary/model"
	"locallibrary/util/database"
)

// ErrDuplicateName is returned by Create when a genre with the same name exists.
var ErrDuplicateName = errors.New("genre name already exists")

type Repo interface {
	List(ctx context.Context) ([]model.Genre, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Genre, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Genre, error)
	ByName(ctx context.Context, name string) (*model.Genre, error)
	Create(ctx context.Context, g *model.Genre) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type repo struct{ c *mongo.Collection }

func New(db *database.DB) Repo { return &repo{c: db.Collection(database.Genres)} }

func (r *repo) List(ctx context.Context) ([]model.Genre, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Genre, error) {
	return r.one(ctx, bson.M{"_id": id})
}

func (r *repo) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// ByName is an exact, case-sensitive match.
func (r *repo) ByName(ctx context.Context, name string) (*model.Genre, error) {
	return r.one(ctx, bson.M{"name": name})
}

func (r *repo) Create(ctx context.Context, g *model.Genre) error {
	g.ID = primitive.NewObjectID()
	if _, err := r.c.InsertOne(ctx, g); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

func (r *repo) one(ctx context.Context, filter bson.M) (*model.Genre, error) {
	g := &model.Genre{}
	err := r.c.FindOne(ctx, filter).Decode(g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.Genre, error) {
	cur, err := r.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var out []model.Genre
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
