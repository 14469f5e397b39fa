package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issue signs a session token naming the server-side session sid.
func Issue(secret, sid, userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse verifies an HS256 session token and its expiry.
func Parse(tokenStr, secret string) (*jwt.Token, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return nil, errors.New("missing token")
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	return tok, nil
}

// SessionID pulls the sid claim out of a parsed token.
func SessionID(tok *jwt.Token) (string, error) {
	if tok == nil {
		return "", errors.New("nil token")
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sid, ok := mc["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("sid missing in claims")
	}
	return sid, nil
}
