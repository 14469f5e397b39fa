package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"locallibrary/model"
	authrepo "locallibrary/repository/auth"
	sessionrepo "locallibrary/repository/session"
	"locallibrary/util/errs"
	"locallibrary/util/hash"
	jwtutil "locallibrary/util/jwt"
)

type Service interface {
	// Signup stores a new user and opens a session for it. It returns the
	// signed session token.
	Signup(ctx context.Context, req model.SignupReq) (*model.User, string, error)
	// Login verifies credentials and opens a session.
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
	// Resume returns the live session named by sid, or nil.
	Resume(ctx context.Context, sid string) (*model.Session, error)
	Logout(ctx context.Context, sid string) error
}

type service struct {
	ur     authrepo.Repo
	sr     sessionrepo.Repo
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func New(ur authrepo.Repo, sr sessionrepo.Repo, secret string, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &service{ur: ur, sr: sr, secret: secret, ttl: ttl, now: time.Now}
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (s *service) Signup(ctx context.Context, req model.SignupReq) (*model.User, string, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, "", errs.New(errs.ErrBadInput, "email and password are required")
	}

	existing, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, "", errs.New(errs.ErrEmailTaken, "That email is already taken.")
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}
	u := &model.User{
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.ur.Create(ctx, u); err != nil {
		if errors.Is(err, authrepo.ErrDuplicateEmail) {
			return nil, "", errs.New(errs.ErrEmailTaken, "That email is already taken.")
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.startSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, "", errs.New(errs.ErrInvalidCreds, "invalid email or password")
	}

	u, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		hash.CheckMissing(req.Password)
		return nil, "", errs.New(errs.ErrInvalidCreds, "invalid email or password")
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", errs.New(errs.ErrInvalidCreds, "invalid email or password")
	}

	token, err := s.startSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) startSession(ctx context.Context, u *model.User) (string, error) {
	now := s.now().UTC()
	sess := &model.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Email:     u.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sr.Set(ctx, sess); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	token, err := jwtutil.Issue(s.secret, sess.ID, u.ID.Hex(), s.ttl)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

func (s *service) Resume(ctx context.Context, sid string) (*model.Session, error) {
	if sid == "" {
		return nil, nil
	}
	sess, err := s.sr.Get(ctx, sid)
	if err != nil || sess == nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		if err := s.sr.Destroy(ctx, sid); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return sess, nil
}

func (s *service) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.sr.Destroy(ctx, sid)
}
