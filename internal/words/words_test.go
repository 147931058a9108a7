package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDictionary(t *testing.T) {
	d := Default()
	if d.Len() < 100 {
		t.Fatalf("embedded list too small: %d", d.Len())
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		w := d.PickRandom(rng)
		if !wellFormed(w) {
			t.Fatalf("PickRandom() returned malformed word %q", w)
		}
		if !d.IsValid(w) {
			t.Fatalf("picked word %q is not valid", w)
		}
	}
}

func TestPickRandomDeterministic(t *testing.T) {
	d := Default()
	a := d.PickRandom(rand.New(rand.NewSource(42)))
	b := d.PickRandom(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed picked %q and %q", a, b)
	}
}

func TestIsValid(t *testing.T) {
	d, err := New([]string{"crane", "TRACE"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		word     string
		expected bool
	}{
		{"CRANE", true},
		{"crane", true},
		{" Trace ", true},
		{"SPEED", false},
		{"CRAN", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := d.IsValid(tc.word); got != tc.expected {
			t.Errorf("IsValid(%q) = %v, expected %v", tc.word, got, tc.expected)
		}
	}
}

func TestNewFiltersInvalid(t *testing.T) {
	d, err := New([]string{"crane", "toolong", "abc", "cr4ne", "CRANE", "", "über"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", d.Len())
	}

	if _, err := New([]string{"x", "yy"}); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader("apple\nbeach\n\n  chair  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 3 || !d.IsValid("CHAIR") {
		t.Errorf("unexpected dictionary: %d words", d.Len())
	}
}

func TestOpen(t *testing.T) {
	d, err := Open("")
	if err != nil || d != Default() {
		t.Fatalf("Open(\"\") should return the default list, err=%v", err)
	}

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("melon\nlemon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err = Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if d.Len() != 2 || !d.IsValid("lemon") {
		t.Errorf("unexpected dictionary loaded from file")
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
