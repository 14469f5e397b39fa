package hash

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for stored passwords.
var Cost = bcrypt.DefaultCost

// dummy is compared against when no user matches, so a miss costs the same
// as a wrong password.
var (
	dummyOnce sync.Once
	dummy     []byte
)

// HashPassword returns a salted bcrypt hash of pw.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether pw matches hashed.
func Check(hashed, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

// CheckMissing burns one compare for a lookup that found no user. It always
// returns false.
func CheckMissing(pw string) bool {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("locallibrary-dummy-password"), Cost)
	})
	_ = bcrypt.CompareHashAndPassword(dummy, []byte(pw))
	return false
}
