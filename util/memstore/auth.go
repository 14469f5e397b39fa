package memstore

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/model"
	authrepo "locallibrary/repository/auth"
	sessionrepo "locallibrary/repository/session"
)

var (
	_ authrepo.Repo    = (*UserRepo)(nil)
	_ sessionrepo.Repo = (*SessionRepo)(nil)
)

type (
	userRow    = model.User
	sessionRow = model.Session
)

type UserRepo struct{ t *table[userRow] }

func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	for _, id := range r.t.order {
		if r.t.rows[id].Email == u.Email {
			return authrepo.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.t.order = append(r.t.order, u.ID)
	r.t.rows[u.ID] = *u
	return nil
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	rows := r.t.filter(func(u model.User) bool { return u.Email == email })
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// All returns every stored user, in signup order.
func (r *UserRepo) All() []model.User { return r.t.filter(nil) }

type SessionRepo struct {
	mu   sync.RWMutex
	rows map[string]sessionRow
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) Set(ctx context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.ID] = *s
	return nil
}

func (r *SessionRepo) Destroy(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

// Len reports how many sessions are stored.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}
