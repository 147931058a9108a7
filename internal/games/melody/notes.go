package melody

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DefaultDuration is the symbolic length given to every note: a quarter note.
const DefaultDuration = "4n"

// Key is one key of the one-octave keyboard.
type Key struct {
	Pitch    string
	Shortcut rune
	Black    bool
}

// Keyboard lists the twelve pitches of the octave with their number-row shortcuts.
var Keyboard = []Key{
	{"C", '1', false},
	{"C#", '2', true},
	{"D", '3', false},
	{"D#", '4', true},
	{"E", '5', false},
	{"F", '6', false},
	{"F#", '7', true},
	{"G", '8', false},
	{"G#", '9', true},
	{"A", '0', false},
	{"A#", '-', true},
	{"B", '=', false},
}

// SampleMelodies is the built-in catalogue of ten-note melodies.
var SampleMelodies = [][]string{
	{"C", "D", "E", "F", "G", "A", "B", "C", "D", "E"},
	{"G", "A", "B", "C", "D", "E", "F", "G", "A", "B"},
	{"E", "F", "G", "A", "B", "C", "D", "E", "F", "G"},
	{"A", "B", "C", "D", "E", "F", "G", "A", "B", "C"},
	{"F", "G", "A", "B", "C", "D", "E", "F", "G", "A"},
	{"C", "E", "G", "B", "D", "F", "A", "C", "E", "G"},
	{"D", "F", "A", "C", "E", "G", "B", "D", "F", "A"},
	{"G", "B", "D", "F", "A", "C", "E", "G", "B", "D"},
	{"C", "D#", "F", "G#", "A#", "C", "D#", "F", "G#", "A#"},
	{"F#", "G#", "A#", "C", "D", "E", "F#", "G#", "A#", "C"},
}

// MelodyLength is the number of notes in every catalogue melody.
const MelodyLength = 10

// PitchForKey maps a shortcut key to its pitch.
func PitchForKey(r rune) (string, bool) {
	for _, k := range Keyboard {
		if k.Shortcut == r {
			return k.Pitch, true
		}
	}
	return "", false
}

// ValidPitch reports whether p is one of the keyboard's pitches.
func ValidPitch(p string) bool {
	for _, k := range Keyboard {
		if k.Pitch == p {
			return true
		}
	}
	return false
}

// Notes converts pitch labels to quarter notes.
func Notes(pitches []string) []Note {
	out := make([]Note, len(pitches))
	for i, p := range pitches {
		out[i] = Note{Pitch: p, Duration: DefaultDuration}
	}
	return out
}

// Pitches returns the pitch labels of notes.
func Pitches(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Pitch
	}
	return out
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic catalogue index for a date using
// HMAC(salt, YYYY-MM-DD) % n.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
