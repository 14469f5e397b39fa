package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authorrepo "locallibrary/repository/author"
	bookrepo "locallibrary/repository/book"
	instancerepo "locallibrary/repository/bookinstance"
	genrerepo "locallibrary/repository/genre"

	"locallibrary/model"
)

var (
	_ authorrepo.Repo   = (*AuthorRepo)(nil)
	_ genrerepo.Repo    = (*GenreRepo)(nil)
	_ bookrepo.Repo     = (*BookRepo)(nil)
	_ instancerepo.Repo = (*InstanceRepo)(nil)
)

type (
	authorRow   = model.Author
	genreRow    = model.Genre
	bookRow     = model.Book
	instanceRow = model.BookInstance
)

// Authors

type AuthorRepo struct{ t *table[authorRow] }

func (r *AuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	return sortBy(r.t.filter(nil), func(a, b model.Author) bool {
		if a.FamilyName != b.FamilyName {
			return a.FamilyName < b.FamilyName
		}
		return a.FirstName < b.FirstName
	}), nil
}

func (r *AuthorRepo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	a, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AuthorRepo) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Author, error) {
	want := idSet(ids)
	return r.t.filter(func(a model.Author) bool { return want[a.ID] }), nil
}

func (r *AuthorRepo) Create(ctx context.Context, a *model.Author) error {
	a.ID = primitive.NewObjectID()
	r.t.put(a.ID, *a)
	return nil
}

func (r *AuthorRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.t.remove(func(a model.Author) bool { return a.ID == id })
	return nil
}

func (r *AuthorRepo) Count(ctx context.Context) (int64, error) { return r.t.count(all[model.Author]), nil }

// Genres

type GenreRepo struct{ t *table[genreRow] }

func (r *GenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	return sortBy(r.t.filter(nil), func(a, b model.Genre) bool { return a.Name < b.Name }), nil
}

func (r *GenreRepo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Genre, error) {
	g, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *GenreRepo) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Genre, error) {
	want := idSet(ids)
	return r.t.filter(func(g model.Genre) bool { return want[g.ID] }), nil
}

func (r *GenreRepo) ByName(ctx context.Context, name string) (*model.Genre, error) {
	rows := r.t.filter(func(g model.Genre) bool { return g.Name == name })
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *GenreRepo) Create(ctx context.Context, g *model.Genre) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	for _, id := range r.t.order {
		if r.t.rows[id].Name == g.Name {
			return genrerepo.ErrDuplicateName
		}
	}
	g.ID = primitive.NewObjectID()
	r.t.order = append(r.t.order, g.ID)
	r.t.rows[g.ID] = *g
	return nil
}

func (r *GenreRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.t.remove(func(g model.Genre) bool { return g.ID == id })
	return nil
}

func (r *GenreRepo) Count(ctx context.Context) (int64, error) { return r.t.count(all[model.Genre]), nil }

// Books

type BookRepo struct{ t *table[bookRow] }

func copyBook(b model.Book) model.Book {
	b.Genre = append([]primitive.ObjectID{}, b.Genre...)
	return b
}

func (r *BookRepo) sorted(match func(model.Book) bool) []model.Book {
	rows := r.t.filter(match)
	for i := range rows {
		rows[i] = copyBook(rows[i])
	}
	return sortBy(rows, func(a, b model.Book) bool { return a.Title < b.Title })
}

func (r *BookRepo) List(ctx context.Context) ([]model.Book, error) { return r.sorted(nil), nil }

func (r *BookRepo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	b, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	b = copyBook(b)
	return &b, nil
}

func (r *BookRepo) ByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]model.Book, error) {
	return r.sorted(func(b model.Book) bool { return b.Author == authorID }), nil
}

func (r *BookRepo) ByGenre(ctx context.Context, genreID primitive.ObjectID) ([]model.Book, error) {
	return r.sorted(func(b model.Book) bool { return b.HasGenre(genreID) }), nil
}

func (r *BookRepo) Create(ctx context.Context, b *model.Book) error {
	b.ID = primitive.NewObjectID()
	if b.Genre == nil {
		b.Genre = []primitive.ObjectID{}
	}
	r.t.put(b.ID, copyBook(*b))
	return nil
}

func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	if b.Genre == nil {
		b.Genre = []primitive.ObjectID{}
	}
	r.t.replace(b.ID, copyBook(*b))
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.t.remove(func(b model.Book) bool { return b.ID == id })
	return nil
}

func (r *BookRepo) Count(ctx context.Context) (int64, error) { return r.t.count(all[model.Book]), nil }

// Book instances

type InstanceRepo struct{ t *table[instanceRow] }

func (r *InstanceRepo) List(ctx context.Context) ([]model.BookInstance, error) {
	return r.t.filter(nil), nil
}

func (r *InstanceRepo) ByID(ctx context.Context, id primitive.ObjectID) (*model.BookInstance, error) {
	bi, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &bi, nil
}

func (r *InstanceRepo) ByBook(ctx context.Context, bookID primitive.ObjectID) ([]model.BookInstance, error) {
	return r.t.filter(func(bi model.BookInstance) bool { return bi.Book == bookID }), nil
}

func (r *InstanceRepo) Create(ctx context.Context, bi *model.BookInstance) error {
	bi.ID = primitive.NewObjectID()
	r.t.put(bi.ID, *bi)
	return nil
}

func (r *InstanceRepo) Update(ctx context.Context, bi *model.BookInstance) error {
	r.t.replace(bi.ID, *bi)
	return nil
}

func (r *InstanceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.t.remove(func(bi model.BookInstance) bool { return bi.ID == id })
	return nil
}

func (r *InstanceRepo) DeleteByBook(ctx context.Context, bookID primitive.ObjectID) (int64, error) {
	return r.t.remove(func(bi model.BookInstance) bool { return bi.Book == bookID }), nil
}

func (r *InstanceRepo) Count(ctx context.Context) (int64, error) {
	return r.t.count(all[model.BookInstance]), nil
}

func (r *InstanceRepo) CountByStatus(ctx context.Context, status model.InstanceStatus) (int64, error) {
	return r.t.count(func(bi model.BookInstance) bool { return bi.Status == status }), nil
}
