package crypto

import (
	"errors"
	"strings"
	"testing"
)

// zeroReader always yields zero bytes, so every uniform draw selects index 0.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// failingReader simulates an exhausted entropy source.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func TestBuildPool(t *testing.T) {
	tests := []struct {
		name  string
		prefs Preferences
		want  string
	}{
		{
			name:  "all classes disabled",
			prefs: Preferences{Length: 8},
			want:  "",
		},
		{
			name:  "lowercase only",
			prefs: Preferences{Length: 8, Lowercase: true},
			want:  LowercaseChars,
		},
		{
			name:  "uppercase only",
			prefs: Preferences{Length: 8, Uppercase: true},
			want:  UppercaseChars,
		},
		{
			name:  "numbers only",
			prefs: Preferences{Length: 8, Numbers: true},
			want:  NumberChars,
		},
		{
			name:  "symbols only",
			prefs: Preferences{Length: 8, Symbols: true},
			want:  SymbolChars,
		},
		{
			name:  "lowercase and numbers",
			prefs: Preferences{Length: 8, Lowercase: true, Numbers: true},
			want:  LowercaseChars + NumberChars,
		},
		{
			name:  "all classes in stable order",
			prefs: Preferences{Length: 8, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true},
			want:  LowercaseChars + UppercaseChars + NumberChars + SymbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPool(tt.prefs)
			if got != tt.want {
				t.Errorf("BuildPool() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPoolExcludesDisabledClasses(t *testing.T) {
	pool := BuildPool(Preferences{Lowercase: true, Numbers: true})

	if strings.ContainsAny(pool, UppercaseChars) {
		t.Errorf("pool %q contains uppercase characters from a disabled class", pool)
	}
	if strings.ContainsAny(pool, SymbolChars) {
		t.Errorf("pool %q contains symbol characters from a disabled class", pool)
	}
	if len(pool) != 36 {
		t.Errorf("lowercase+numbers pool size = %d, want 36", len(pool))
	}
}

func TestGenerateLengthAndMembership(t *testing.T) {
	prefs := Preferences{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
	pool := BuildPool(prefs)

	for _, length := range []int{1, 8, 32, 128} {
		prefs.Length = length
		password, err := Generate(prefs, pool, nil)
		if err != nil {
			t.Fatalf("Generate(length=%d) unexpected error: %v", length, err)
		}
		if len(password) != length {
			t.Errorf("Generate(length=%d) produced %d characters", length, len(password))
		}
		for _, ch := range password {
			if !strings.ContainsRune(pool, ch) {
				t.Errorf("password contains %q which is not in the pool", string(ch))
			}
		}
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	prefs := Preferences{Length: 8}

	password, err := Generate(prefs, BuildPool(prefs), nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Generate() error = %v, want ErrEmptyPool", err)
	}
	if password != "" {
		t.Errorf("Generate() = %q, want empty string on error", password)
	}
}

func TestGenerateNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := Generate(Preferences{Length: length, Lowercase: true}, LowercaseChars, nil)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Generate(length=%d) error = %v, want ErrInvalidLength", length, err)
		}
	}
}

func TestGenerateDegeneratePool(t *testing.T) {
	// A pool of size 1 must produce that character repeated length times.
	password, err := Generate(Preferences{Length: 12}, "x", nil)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != strings.Repeat("x", 12) {
		t.Errorf("Generate() = %q, want %q", password, strings.Repeat("x", 12))
	}
}

func TestGenerateDeterministicSource(t *testing.T) {
	// A zeroed random source always selects the first pool character.
	password, err := Generate(Preferences{Length: 6}, LowercaseChars, zeroReader{})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "aaaaaa" {
		t.Errorf("Generate() = %q, want %q", password, "aaaaaa")
	}
}

func TestGenerateFailingSource(t *testing.T) {
	_, err := Generate(Preferences{Length: 6}, LowercaseChars, failingReader{})
	if err == nil {
		t.Fatal("Generate() expected error from failing random source")
	}
}

func TestGenerateRoughlyUniform(t *testing.T) {
	// Statistical sanity check, not exact equality. With 10000 draws over a
	// 10-character pool each character is expected ~1000 times; bounds are
	// kept wide enough that a false failure is practically impossible.
	password, err := Generate(Preferences{Length: 10000}, NumberChars, nil)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	counts := make(map[rune]int)
	for _, ch := range password {
		counts[ch]++
	}

	for _, ch := range NumberChars {
		if counts[ch] < 500 || counts[ch] > 1500 {
			t.Errorf("character %q drawn %d times in 10000, outside [500, 1500]", string(ch), counts[ch])
		}
	}
}

func TestGenerateScenarioLowercaseAndNumbers(t *testing.T) {
	prefs := Preferences{Length: 8, Lowercase: true, Numbers: true}
	pool := BuildPool(prefs)

	if pool != "abcdefghijklmnopqrstuvwxyz0123456789" {
		t.Fatalf("unexpected pool %q", pool)
	}

	password, err := Generate(prefs, pool, nil)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != 8 {
		t.Errorf("Generate() length = %d, want 8", len(password))
	}
	for _, ch := range password {
		if !strings.ContainsRune(pool, ch) {
			t.Errorf("password contains %q outside lowercase+digits", string(ch))
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	prefs := Preferences{Length: 16, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
	pool := BuildPool(prefs)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(prefs, pool, nil)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}
