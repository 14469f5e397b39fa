package authorsvc

import (
	"context"
	"fmt"

	"locallibrary/model"
	authorrepo "locallibrary/repository/author"
	bookrepo "locallibrary/repository/book"
	"locallibrary/util/errs"
)

type Detail struct {
	Author model.Author
	Books  []model.Book
}

// Input is a sanitized author form. Dates are YYYY-MM-DD or empty.
type Input struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
}

type Service interface {
	List(ctx context.Context) ([]model.Author, error)
	Detail(ctx context.Context, id string) (*Detail, error)
	Create(ctx context.Context, in Input) (*model.Author, error)
	// Delete refuses with ErrBlocked while the author has books.
	Delete(ctx context.Context, id string) (*Detail, error)
	Update(ctx context.Context, id string) error
}

type service struct {
	ar authorrepo.Repo
	br bookrepo.Repo
}

func New(ar authorrepo.Repo, br bookrepo.Repo) Service { return &service{ar: ar, br: br} }

var errNotFound = errs.New(errs.ErrNotFound, "Author not found")

func (s *service) List(ctx context.Context) ([]model.Author, error) {
	out, err := s.ar.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id string) (*Detail, error) {
	oid, ok := model.ParseID(id)
	if !ok {
		return nil, errNotFound
	}
	a, err := s.ar.ByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}
	if a == nil {
		return nil, errNotFound
	}
	books, err := s.br.ByAuthor(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load author books: %w", err)
	}
	return &Detail{Author: *a, Books: books}, nil
}

func (s *service) Create(ctx context.Context, in Input) (*model.Author, error) {
	var msgs []string
	if in.FirstName == "" {
		msgs = append(msgs, "First name must be specified.")
	}
	if in.FamilyName == "" {
		msgs = append(msgs, "Family name must be specified.")
	}
	born, err := model.ParseDate(in.DateOfBirth)
	if err != nil {
		msgs = append(msgs, "Invalid date of birth")
	}
	died, err := model.ParseDate(in.DateOfDeath)
	if err != nil {
		msgs = append(msgs, "Invalid date of death")
	}
	if born != nil && died != nil && died.Before(*born) {
		msgs = append(msgs, "Date of death must not be before date of birth.")
	}
	if len(msgs) > 0 {
		return nil, errs.Invalid(msgs...)
	}

	a := &model.Author{
		FirstName:   in.FirstName,
		FamilyName:  in.FamilyName,
		DateOfBirth: born,
		DateOfDeath: died,
	}
	if err := s.ar.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Detail, error) {
	d, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(d.Books) > 0 {
		return d, errs.New(errs.ErrBlocked, "author has books")
	}
	if err := s.ar.Delete(ctx, d.Author.ID); err != nil {
		return nil, fmt.Errorf("delete author: %w", err)
	}
	return d, nil
}

func (s *service) Update(ctx context.Context, id string) error {
	return errs.New(errs.ErrNotImplemented, "NOT IMPLEMENTED: Author update")
}
