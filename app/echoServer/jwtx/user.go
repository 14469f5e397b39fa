package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	jwtutil "locallibrary/util/jwt"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Identity is who the current request acts as. The zero value is Anonymous.
type Identity struct {
	State     State
	UserID    string
	Email     string
	SessionID string
}

func (i Identity) IsAuthenticated() bool { return i.State == Authenticated }

// SessionCookie carries the signed session token.
const SessionCookie = "session"

const identityKey = "identity"

func SetIdentity(c echo.Context, id Identity) { c.Set(identityKey, id) }

func IdentityFromContext(c echo.Context) Identity {
	id, _ := c.Get(identityKey).(Identity)
	return id
}

// SessionIDFromContext reads the sid claim of the session cookie token that
// echo-jwt stored under "user".
func SessionIDFromContext(c echo.Context) (string, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return "", errors.New("no jwt token in context")
	}
	return jwtutil.SessionID(tok)
}
