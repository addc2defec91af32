package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// The four fixed character classes a user may enable. Pool order is stable:
// lowercase, uppercase, digits, symbols.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]}{|;:,.<>/?"
)

var (
	ErrEmptyPool     = errors.New("character pool is empty: no character type selected")
	ErrInvalidLength = errors.New("password length must be positive")
)

// Preferences holds the user's password options verbatim. No validation
// happens here; callers enforce a positive length and at least one enabled
// class before generating.
type Preferences struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// BuildPool concatenates the fixed alphabet of every enabled character class,
// in stable class order. An empty result means no class was selected and is
// the failure signal consumed by the caller.
func BuildPool(prefs Preferences) string {
	var pool string
	if prefs.Lowercase {
		pool += LowercaseChars
	}
	if prefs.Uppercase {
		pool += UppercaseChars
	}
	if prefs.Numbers {
		pool += NumberChars
	}
	if prefs.Symbols {
		pool += SymbolChars
	}
	return pool
}

// Generate draws prefs.Length characters independently and uniformly, with
// replacement, from pool. It is a pure function of its inputs plus the
// supplied random source, which must be cryptographically secure in
// production (crypto/rand.Reader); tests may inject a deterministic reader.
// Beyond per-character uniform choice it makes no composition guarantee: a
// draw may happen to miss an enabled class entirely.
func Generate(prefs Preferences, pool string, random io.Reader) (string, error) {
	if pool == "" {
		return "", ErrEmptyPool
	}
	if prefs.Length <= 0 {
		return "", ErrInvalidLength
	}
	if random == nil {
		random = rand.Reader
	}

	poolSize := big.NewInt(int64(len(pool)))
	password := make([]byte, prefs.Length)
	for i := range password {
		n, err := rand.Int(random, poolSize)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		password[i] = pool[n.Int64()]
	}

	return string(password), nil
}
