package booksvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/model"
	authorrepo "locallibrary/repository/author"
	bookrepo "locallibrary/repository/book"
	instancerepo "locallibrary/repository/bookinstance"
	genrerepo "locallibrary/repository/genre"
	"locallibrary/util/errs"
)

// ListItem is a book with its author resolved. Author is nil for a dangling
// reference.
type ListItem struct {
	Book   model.Book
	Author *model.Author
}

type Detail struct {
	Book      model.Book
	Author    *model.Author
	Genres    []model.Genre
	Instances []model.BookInstance
}

// FormData holds the choices offered by the book form.
type FormData struct {
	Authors []model.Author
	Genres  []model.Genre
}

// Input is a sanitized book form. Author and Genre hold hex ids; Genre is
// already normalized to a sequence.
type Input struct {
	Title   string
	Author  string
	Summary string
	ISBN    string
	Genre   []string
}

type Service interface {
	List(ctx context.Context) ([]ListItem, error)
	Detail(ctx context.Context, id string) (*Detail, error)
	FormData(ctx context.Context) (*FormData, error)
	Create(ctx context.Context, in Input) (*model.Book, error)
	Update(ctx context.Context, id string, in Input) (*model.Book, error)
	// Delete removes the book's instances and then the book. The two writes
	// are not atomic.
	Delete(ctx context.Context, id string) error
}

type service struct {
	br bookrepo.Repo
	ar authorrepo.Repo
	gr genrerepo.Repo
	ir instancerepo.Repo
}

func New(br bookrepo.Repo, ar authorrepo.Repo, gr genrerepo.Repo, ir instancerepo.Repo) Service {
	return &service{br: br, ar: ar, gr: gr, ir: ir}
}

var errNotFound = errs.New(errs.ErrNotFound, "Book not found")

func (s *service) List(ctx context.Context) ([]ListItem, error) {
	books, err := s.br.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	ids := make([]primitive.ObjectID, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.Author)
	}
	authors, err := s.ar.ByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	byID := make(map[primitive.ObjectID]model.Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}

	out := make([]ListItem, 0, len(books))
	for _, b := range books {
		item := ListItem{Book: b}
		if a, ok := byID[b.Author]; ok {
			item.Author = &a
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id string) (*Detail, error) {
	oid, ok := model.ParseID(id)
	if !ok {
		return nil, errNotFound
	}
	b, err := s.br.ByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load book: %w", err)
	}
	if b == nil {
		return nil, errNotFound
	}

	d := &Detail{Book: *b}
	if d.Author, err = s.ar.ByID(ctx, b.Author); err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}
	if d.Genres, err = s.genresInOrder(ctx, b.Genre); err != nil {
		return nil, err
	}
	if d.Instances, err = s.ir.ByBook(ctx, oid); err != nil {
		return nil, fmt.Errorf("load instances: %w", err)
	}
	return d, nil
}

// genresInOrder resolves ids keeping their order and skipping dangling ones.
func (s *service) genresInOrder(ctx context.Context, ids []primitive.ObjectID) ([]model.Genre, error) {
	found, err := s.gr.ByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	byID := make(map[primitive.ObjectID]model.Genre, len(found))
	for _, g := range found {
		byID[g.ID] = g
	}
	out := make([]model.Genre, 0, len(ids))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *service) FormData(ctx context.Context) (*FormData, error) {
	authors, err := s.ar.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	genres, err := s.gr.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return &FormData{Authors: authors, Genres: genres}, nil
}

// build turns in into a book, checking that every reference resolves.
func (s *service) build(ctx context.Context, in Input) (*model.Book, error) {
	var msgs []string
	if in.Title == "" {
		msgs = append(msgs, "Title must not be empty.")
	}
	if in.Author == "" {
		msgs = append(msgs, "Author must not be empty.")
	}
	if in.Summary == "" {
		msgs = append(msgs, "Summary must not be empty.")
	}
	if in.ISBN == "" {
		msgs = append(msgs, "ISBN must not be empty")
	}

	b := &model.Book{
		Title:   in.Title,
		Summary: in.Summary,
		ISBN:    in.ISBN,
		Genre:   make([]primitive.ObjectID, 0, len(in.Genre)),
	}

	if in.Author != "" {
		aid, ok := model.ParseID(in.Author)
		if ok {
			a, err := s.ar.ByID(ctx, aid)
			if err != nil {
				return nil, fmt.Errorf("load author: %w", err)
			}
			ok = a != nil
		}
		if !ok {
			msgs = append(msgs, "Author not found.")
		}
		b.Author = aid
	}

	bad := false
	seen := make(map[primitive.ObjectID]bool, len(in.Genre))
	for _, raw := range in.Genre {
		gid, ok := model.ParseID(raw)
		if !ok {
			bad = true
			continue
		}
		if seen[gid] {
			continue
		}
		seen[gid] = true
		b.Genre = append(b.Genre, gid)
	}
	if len(b.Genre) > 0 {
		found, err := s.gr.ByIDs(ctx, b.Genre)
		if err != nil {
			return nil, fmt.Errorf("load genres: %w", err)
		}
		if len(found) != len(b.Genre) {
			bad = true
		}
	}
	if bad {
		msgs = append(msgs, "Genre not found.")
	}

	if len(msgs) > 0 {
		return b, errs.Invalid(msgs...)
	}
	return b, nil
}

func (s *service) Create(ctx context.Context, in Input) (*model.Book, error) {
	b, err := s.build(ctx, in)
	if err != nil {
		return b, err
	}
	if err := s.br.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id string, in Input) (*model.Book, error) {
	oid, ok := model.ParseID(id)
	if !ok {
		return nil, errNotFound
	}
	cur, err := s.br.ByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load book: %w", err)
	}
	if cur == nil {
		return nil, errNotFound
	}

	b, err := s.build(ctx, in)
	if b != nil {
		b.ID = oid
	}
	if err != nil {
		return b, err
	}
	if err := s.br.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, ok := model.ParseID(id)
	if !ok {
		return errNotFound
	}
	if _, err := s.ir.DeleteByBook(ctx, oid); err != nil {
		return fmt.Errorf("delete instances: %w", err)
	}
	if err := s.br.Delete(ctx, oid); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
