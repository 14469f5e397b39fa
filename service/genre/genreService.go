package genresvc

import (
	"context"
	"errors"
	"fmt"

	"locallibrary/model"
	bookrepo "locallibrary/repository/book"
	genrerepo "locallibrary/repository/genre"
	"locallibrary/util/errs"
)

// Detail is a genre together with the books filed under it.
type Detail struct {
	Genre model.Genre
	Books []model.Book
}

type Service interface {
	List(ctx context.Context) ([]model.Genre, error)
	Detail(ctx context.Context, id string) (*Detail, error)
	// Create is find-or-create by exact name. created is false when an
	// existing genre was returned.
	Create(ctx context.Context, name string) (g *model.Genre, created bool, err error)
	// Delete refuses with ErrBlocked while books reference the genre; the
	// returned Detail lists them.
	Delete(ctx context.Context, id string) (*Detail, error)
	Update(ctx context.Context, id string) error
}

type service struct {
	gr genrerepo.Repo
	br bookrepo.Repo
}

func New(gr genrerepo.Repo, br bookrepo.Repo) Service { return &service{gr: gr, br: br} }

var errNotFound = errs.New(errs.ErrNotFound, "Genre not found")

func (s *service) List(ctx context.Context) ([]model.Genre, error) {
	out, err := s.gr.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id string) (*Detail, error) {
	oid, ok := model.ParseID(id)
	if !ok {
		return nil, errNotFound
	}
	g, err := s.gr.ByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load genre: %w", err)
	}
	if g == nil {
		return nil, errNotFound
	}
	books, err := s.br.ByGenre(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load genre books: %w", err)
	}
	return &Detail{Genre: *g, Books: books}, nil
}

func (s *service) Create(ctx context.Context, name string) (*model.Genre, bool, error) {
	if name == "" {
		return nil, false, errs.Invalid("Genre name required")
	}
	found, err := s.gr.ByName(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("find genre: %w", err)
	}
	if found != nil {
		return found, false, nil
	}

	g := &model.Genre{Name: name}
	if err := s.gr.Create(ctx, g); err != nil {
		if !errors.Is(err, genrerepo.ErrDuplicateName) {
			return nil, false, fmt.Errorf("create genre: %w", err)
		}
		// lost a race with an identical insert
		found, err := s.gr.ByName(ctx, name)
		if err != nil {
			return nil, false, fmt.Errorf("find genre: %w", err)
		}
		if found == nil {
			return nil, false, fmt.Errorf("create genre: %w", genrerepo.ErrDuplicateName)
		}
		return found, false, nil
	}
	return g, true, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Detail, error) {
	d, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(d.Books) > 0 {
		return d, errs.New(errs.ErrBlocked, "genre is referenced by books")
	}
	if err := s.gr.Delete(ctx, d.Genre.ID); err != nil {
		return nil, fmt.Errorf("delete genre: %w", err)
	}
	return d, nil
}

func (s *service) Update(ctx context.Context, id string) error {
	return errs.New(errs.ErrNotImplemented, "NOT IMPLEMENTED: Genre update")
}
