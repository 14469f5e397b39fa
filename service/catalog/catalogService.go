package catalogsvc

import (
	"context"

	"locallibrary/model"
	authorrepo "locallibrary/repository/author"
	bookrepo "locallibrary/repository/book"
	instancerepo "locallibrary/repository/bookinstance"
	genrerepo "locallibrary/repository/genre"
)

// Counts backs the dashboard.
type Counts struct {
	Books              int64
	Instances          int64
	InstancesAvailable int64
	Authors            int64
	Genres             int64
}

type Service interface {
	Counts(ctx context.Context) (Counts, error)
}

type service struct {
	br bookrepo.Repo
	ir instancerepo.Repo
	ar authorrepo.Repo
	gr genrerepo.Repo
}

func New(br bookrepo.Repo, ir instancerepo.Repo, ar authorrepo.Repo, gr genrerepo.Repo) Service {
	return &service{br: br, ir: ir, ar: ar, gr: gr}
}

// Counts stops at the first failing count and returns what it has so far.
func (s *service) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	var err error
	if c.Books, err = s.br.Count(ctx); err != nil {
		return c, err
	}
	if c.Instances, err = s.ir.Count(ctx); err != nil {
		return c, err
	}
	if c.InstancesAvailable, err = s.ir.CountByStatus(ctx, model.StatusAvailable); err != nil {
		return c, err
	}
	if c.Authors, err = s.ar.Count(ctx); err != nil {
		return c, err
	}
	if c.Genres, err = s.gr.Count(ctx); err != nil {
		return c, err
	}
	return c, nil
}
