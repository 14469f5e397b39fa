package bookrepo

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
	List(ctx context.Context) ([]model.Book, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	ByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]model.Book, error)
	ByGenre(ctx context.Context, genreID primitive.ObjectID) ([]model.Book, error)
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type repo struct{ c *mongo.Collection }

func New(db *database.DB) Repo { return &repo{c: db.Collection(database.Books)} }

func byTitle() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
}

func (r *repo) List(ctx context.Context) ([]model.Book, error) {
	return r.find(ctx, bson.M{}, byTitle())
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	b := &model.Book{}
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if b.Genre == nil {
		b.Genre = []primitive.ObjectID{}
	}
	return b, nil
}

func (r *repo) ByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]model.Book, error) {
	return r.find(ctx, bson.M{"author": authorID}, byTitle())
}

// ByGenre matches books whose genre array contains genreID.
func (r *repo) ByGenre(ctx context.Context, genreID primitive.ObjectID) ([]model.Book, error) {
	return r.find(ctx, bson.M{"genre": genreID}, byTitle())
}

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	b.ID = primitive.NewObjectID()
	if b.Genre == nil {
		b.Genre = []primitive.ObjectID{}
	}
	_, err := r.c.InsertOne(ctx, b)
	return err
}

// Update replaces the stored document with b, keeping b.ID.
func (r *repo) Update(ctx context.Context, b *model.Book) error {
	if b.Genre == nil {
		b.Genre = []primitive.ObjectID{}
	}
	_, err := r.c.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	return err
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

func (r *repo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.Book, error) {
	cur, err := r.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var out []model.Book
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
