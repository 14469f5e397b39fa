package instancesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/model"
	bookrepo "locallibrary/repository/book"
	instancerepo "locallibrary/repository/bookinstance"
	"locallibrary/util/errs"
)

// Item is an instance with its book resolved. Book is nil for a dangling
// reference.
type Item struct {
	Instance model.BookInstance
	Book     *model.Book
}

// Input is a sanitized instance form. Status may be empty.
type Input struct {
	Book    string
	Imprint string
	DueBack string
	Status  string
}

type Service interface {
	List(ctx context.Context) ([]Item, error)
	Detail(ctx context.Context, id string) (*Item, error)
	// Books lists the choices for the instance form.
	Books(ctx context.Context) ([]model.Book, error)
	Create(ctx context.Context, in Input) (*model.BookInstance, error)
	Update(ctx context.Context, id string, in Input) (*model.BookInstance, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	ir instancerepo.Repo
	br bookrepo.Repo
}

func New(ir instancerepo.Repo, br bookrepo.Repo) Service { return &service{ir: ir, br: br} }

var errNotFound = errs.New(errs.ErrNotFound, "Book copy not found")

// ParseStatus maps form input onto an instance status. Empty input is
// Available.
func ParseStatus(s string) (model.InstanceStatus, bool) {
	if s == "" {
		return model.StatusAvailable, true
	}
	for _, st := range model.Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	rows, err := s.ir.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	books, err := s.br.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	byID := make(map[primitive.ObjectID]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	out := make([]Item, 0, len(rows))
	for _, bi := range rows {
		it := Item{Instance: bi}
		if b, ok := byID[bi.Book]; ok {
			it.Book = &b
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id string) (*Item, error) {
	oid, ok := model.ParseID(id)
	if !ok {
		return nil, errNotFound
	}
	bi, err := s.ir.ByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}
	if bi == nil {
		return nil, errNotFound
	}
	b, err := s.br.ByID(ctx, bi.Book)
	if err != nil {
		return nil, fmt.Errorf("load book: %w", err)
	}
	return &Item{Instance: *bi, Book: b}, nil
}

func (s *service) Books(ctx context.Context) ([]model.Book, error) {
	out, err := s.br.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return out, nil
}

func (s *service) build(ctx context.Context, in Input) (*model.BookInstance, error) {
	var msgs []string
	bi := &model.BookInstance{Imprint: in.Imprint}

	if in.Book == "" {
		msgs = append(msgs, "Book must be specified")
	} else {
		bid, ok := model.ParseID(in.Book)
		if ok {
			b, err := s.br.ByID(ctx, bid)
			if err != nil {
				return nil, fmt.Errorf("load book: %w", err)
			}
			ok = b != nil
		}
		if !ok {
			msgs = append(msgs, "Book not found.")
		}
		bi.Book = bid
	}
	if in.Imprint == "" {
		msgs = append(msgs, "Imprint must be specified")
	}
	due, err := model.ParseDate(in.DueBack)
	if err != nil {
		msgs = append(msgs, "Invalid date")
	}
	bi.DueBack = due

	st, ok := ParseStatus(in.Status)
	if !ok {
		msgs = append(msgs, "Invalid status")
	}
	bi.Status = st

	if len(msgs) > 0 {
		return bi, errs.Invalid(msgs...)
	}
	return bi, nil
}

func (s *service) Create(ctx context.Context, in Input) (*model.BookInstance, error) {
	bi, err := s.build(ctx, in)
	if err != nil {
		return bi, err
	}
	if err := s.ir.Create(ctx, bi); err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	return bi, nil
}

func (s *service) Update(ctx context.Context, id string, in Input) (*model.BookInstance, error) {
	oid, ok := model.ParseID(id)
	if !ok {
		return nil, errNotFound
	}
	cur, err := s.ir.ByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}
	if cur == nil {
		return nil, errNotFound
	}
	bi, err := s.build(ctx, in)
	if bi != nil {
		bi.ID = oid
	}
	if err != nil {
		return bi, err
	}
	if err := s.ir.Update(ctx, bi); err != nil {
		return nil, fmt.Errorf("update instance: %w", err)
	}
	return bi, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, ok := model.ParseID(id)
	if !ok {
		return errNotFound
	}
	if err := s.ir.Delete(ctx, oid); err != nil {
		return fmt.Errorf("delete instance: %w", err)
	}
	return nil
}
