package authorrepo

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

type Repo interface {
	List(ctx context.Context) ([]model.Author, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Author, error)
	Create(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type repo struct{ c *mongo.Collection }

func New(db *database.DB) Repo { return &repo{c: db.Collection(database.Authors)} }

func (r *repo) List(ctx context.Context) ([]model.Author, error) {
	opts := options.Find().SetSort(bson.D{{Key: "family_name", Value: 1}, {Key: "first_name", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	a := &model.Author{}
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *repo) Create(ctx context.Context, a *model.Author) error {
	a.ID = primitive.NewObjectID()
	_, err := r.c.InsertOne(ctx, a)
	return err
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

func (r *repo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.Author, error) {
	cur, err := r.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var out []model.Author
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
