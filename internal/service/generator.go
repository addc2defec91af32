package service

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/keysheet/keysheet-go/internal/crypto"
	"github.com/keysheet/keysheet-go/internal/model"
)

// MaxLength bounds requested password lengths; the generator itself has no
// upper limit.
const MaxLength = 256

var (
	ErrLengthNotPositive = errors.New("password length must be a positive number")
	ErrLengthTooLong     = errors.New("password length must be at most 256")
	ErrNoCharacterTypes  = errors.New("at least one character type must be selected")
)

// GeneratorService validates preferences and produces passwords. The
// generator core performs no validation of its own, so everything a caller
// must enforce lives here: a positive bounded length and at least one
// enabled character class, checked before any pool is built.
type GeneratorService struct {
	random io.Reader
}

// NewGeneratorService creates a GeneratorService drawing from crypto/rand.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{random: rand.Reader}
}

// Generate produces a password based on the given request. Missing class
// flags default to enabled; an explicit false disables the class.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	prefs := crypto.Preferences{
		Length:    req.Length,
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if prefs.Length <= 0 {
		return model.GenerateResponse{}, ErrLengthNotPositive
	}
	if prefs.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	pool := crypto.BuildPool(prefs)
	if pool == "" {
		return model.GenerateResponse{}, ErrNoCharacterTypes
	}

	password, err := crypto.Generate(prefs, pool, s.random)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		PoolSize: len(pool),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
