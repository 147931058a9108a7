package melody

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteMelody is a guard failure: fewer notes than the target.
	ErrIncompleteMelody = errors.New("melody: melody is incomplete")
	// ErrInsufficientTokens is a guard failure: the attempt cost exceeds the balance.
	ErrInsufficientTokens = errors.New("melody: insufficient tokens")
	// ErrRoundOver is a guard failure: the round has already ended.
	ErrRoundOver = errors.New("melody: round is over")
)

// GuardError describes a refused CheckAnswer. The state is left unchanged.
type GuardError struct {
	Err  error
	Have int
	Need int
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%v (have %d, need %d)", e.Err, e.Have, e.Need)
}

func (e *GuardError) Unwrap() error {
	return e.Err
}

// Note is a single entry of a melody.
type Note struct {
	Pitch    string
	Duration string
}

// Economy prices an attempt and sizes the reward.
type Economy struct {
	AttemptCost   int
	RewardPercent int
}

// State is one round of the melody game plus the token balances that
// carry across rounds. Operations take a State by value and return the
// next one; slices are never written in place.
type State struct {
	CurrentMelody []Note
	UserMelody    []Note
	Attempts      int
	MaxAttempts   int
	Tokens        int
	PotTokens     int
	IsGameOver    bool
	IsWon         bool
}

// Outcome summarizes an accepted CheckAnswer.
type Outcome struct {
	Guess  []Note // The melody that was checked
	Won    bool
	Stake  int // Tokens moved into the pot
	Reward int // Tokens paid out of the pot
}

// NewState starts the first round with fresh balances.
func NewState(target []Note, tokens, pot, maxAttempts int) State {
	return State{
		CurrentMelody: target,
		MaxAttempts:   maxAttempts,
		Tokens:        tokens,
		PotTokens:     pot,
	}
}

// Complete reports whether the user melody has as many notes as the target.
func (s State) Complete() bool {
	return len(s.UserMelody) == len(s.CurrentMelody)
}

// SelectNote appends pitch to the user melody. It reports whether a note
// was added so the caller can sound it.
func (s State) SelectNote(pitch string) (State, bool) {
	if s.IsGameOver || len(s.UserMelody) >= len(s.CurrentMelody) {
		return s, false
	}
	next := make([]Note, len(s.UserMelody), len(s.UserMelody)+1)
	copy(next, s.UserMelody)
	s.UserMelody = append(next, Note{Pitch: pitch, Duration: DefaultDuration})
	return s, true
}

// RemoveAll clears the user melody.
func (s State) RemoveAll() State {
	s.UserMelody = nil
	return s
}

// CheckAnswer spends one attempt on the user melody.
//
// The attempt cost moves from the player to the pot first; a win then pays
// RewardPercent of that enlarged pot back to the player, rounded down.
// Guard failures return s unchanged with a *GuardError.
func (s State) CheckAnswer(econ Economy) (State, Outcome, error) {
	if s.IsGameOver {
		return s, Outcome{}, &GuardError{Err: ErrRoundOver, Have: s.Attempts, Need: s.MaxAttempts}
	}
	if !s.Complete() {
		return s, Outcome{}, &GuardError{Err: ErrIncompleteMelody, Have: len(s.UserMelody), Need: len(s.CurrentMelody)}
	}
	if s.Tokens < econ.AttemptCost {
		return s, Outcome{}, &GuardError{Err: ErrInsufficientTokens, Have: s.Tokens, Need: econ.AttemptCost}
	}

	out := Outcome{Guess: s.UserMelody, Stake: econ.AttemptCost}

	s.Tokens -= econ.AttemptCost
	s.PotTokens += econ.AttemptCost

	if matches(s.UserMelody, s.CurrentMelody) {
		out.Won = true
		out.Reward = s.PotTokens * econ.RewardPercent / 100
		s.Tokens += out.Reward
		s.PotTokens -= out.Reward
		s.IsWon = true
	}

	s.Attempts++
	s.IsGameOver = s.IsWon || s.Attempts >= s.MaxAttempts
	s.UserMelody = nil

	return s, out, nil
}

// Reset starts a new round on the same target. Balances carry over.
func (s State) Reset() State {
	s.UserMelody = nil
	s.Attempts = 0
	s.IsGameOver = false
	s.IsWon = false
	return s
}

// WithMelody resets the round onto a new target.
func (s State) WithMelody(target []Note) State {
	s = s.Reset()
	s.CurrentMelody = target
	return s
}

// AttemptsLeft returns the attempts remaining in this round.
func (s State) AttemptsLeft() int {
	return max(0, s.MaxAttempts-s.Attempts)
}

// matches compares pitch labels position by position; durations are ignored.
func matches(a, b []Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Pitch != b[i].Pitch {
			return false
		}
	}
	return true
}
