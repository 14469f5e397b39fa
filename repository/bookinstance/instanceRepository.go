package instancerepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"locallibrary/model"
	"locallibrary/util/database"
)

type Repo interface {
	List(ctx context.Context) ([]model.BookInstance, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.BookInstance, error)
	ByBook(ctx context.Context, bookID primitive.ObjectID) ([]model.BookInstance, error)
	Create(ctx context.Context, bi *model.BookInstance) error
	Update(ctx context.Context, bi *model.BookInstance) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByBook(ctx context.Context, bookID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.InstanceStatus) (int64, error)
}

type repo struct{ c *mongo.Collection }

func New(db *database.DB) Repo { return &repo{c: db.Collection(database.BookInstances)} }

// List returns instances in natural (insertion) order.
func (r *repo) List(ctx context.Context) ([]model.BookInstance, error) {
	return r.find(ctx, bson.M{})
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.BookInstance, error) {
	bi := &model.BookInstance{}
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(bi)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return bi, nil
}

func (r *repo) ByBook(ctx context.Context, bookID primitive.ObjectID) ([]model.BookInstance, error) {
	return r.find(ctx, bson.M{"book": bookID})
}

func (r *repo) Create(ctx context.Context, bi *model.BookInstance) error {
	bi.ID = primitive.NewObjectID()
	_, err := r.c.InsertOne(ctx, bi)
	return err
}

func (r *repo) Update(ctx context.Context, bi *model.BookInstance) error {
	_, err := r.c.ReplaceOne(ctx, bson.M{"_id": bi.ID}, bi)
	return err
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *repo) DeleteByBook(ctx context.Context, bookID primitive.ObjectID) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.M{"book": bookID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

func (r *repo) CountByStatus(ctx context.Context, status model.InstanceStatus) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{"status": status})
}

func (r *repo) find(ctx context.Context, filter bson.M) ([]model.BookInstance, error) {
	cur, err := r.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var out []model.BookInstance
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
