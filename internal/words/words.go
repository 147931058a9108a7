// Package words supplies target words for the word game and answers
// dictionary membership queries.
//
// Lists are normalized to upper case and filtered to exactly five ASCII
// letters. The built-in list is embedded; a file with one word per line
// can replace it.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
)

// Length is the number of letters in every word.
const Length = 5

// ErrEmpty is returned when a list contains no usable words.
var ErrEmpty = errors.New("words: list is empty")

//go:embed words.txt
var embedded string

// Source picks target words and checks candidates against a dictionary.
type Source interface {
	// PickRandom returns an upper-case five-letter word.
	PickRandom(rng *rand.Rand) string
	// IsValid reports dictionary membership, ignoring case.
	IsValid(word string) bool
}

// Dictionary is an immutable word list. It is safe for concurrent use.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the embedded dictionary.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := Parse(strings.NewReader(embedded))
		if err != nil {
			panic(fmt.Sprintf("words: embedded list: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// Open loads a dictionary from path, or returns Default when path is empty.
func Open(path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return d, nil
}

// Parse reads one word per line. Invalid lines and duplicates are skipped.
func Parse(r io.Reader) (*Dictionary, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(list)
}

// New builds a dictionary from a list of words.
func New(list []string) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		w = Normalize(w)
		if !wellFormed(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// PickRandom returns a word chosen with rng.
func (d *Dictionary) PickRandom(rng *rand.Rand) string {
	return d.words[rng.Intn(len(d.words))]
}

// IsValid reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) IsValid(word string) bool {
	_, ok := d.set[Normalize(word)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Normalize trims and upper-cases a word.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// wellFormed reports whether w is exactly five upper-case ASCII letters.
func wellFormed(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
