package wordle

import "strings"

const (
	WordLength = 5
	MaxRows    = 6
)

// GameStatus is the round's position in its state machine.
// Won and lost are terminal until the state is replaced by NewState.
type GameStatus string

const (
	GamePlaying GameStatus = "playing"
	GameWon     GameStatus = "won"
	GameLost    GameStatus = "lost"
)

// State is one round of the word game. Operations take a State by value
// and return the next one; the receiver is never modified.
type State struct {
	TargetWord     string
	Guesses        [MaxRows]Row
	CurrentGuess   string
	CurrentRow     int
	GameStatus     GameStatus
	KeyboardStatus map[rune]Status
}

// NewState starts a round for target.
func NewState(target string) State {
	s := State{
		TargetWord:     strings.ToUpper(target),
		GameStatus:     GamePlaying,
		KeyboardStatus: map[rune]Status{},
	}
	for i := range s.Guesses {
		for j := range s.Guesses[i] {
			s.Guesses[i][j].Status = StatusEmpty
		}
	}
	return s
}

// Playing reports whether the round still accepts input.
func (s State) Playing() bool {
	return s.GameStatus == GamePlaying
}

// AddLetter appends ch to the current guess. Lower-case letters are
// accepted; anything outside A-Z is ignored.
func (s State) AddLetter(ch rune) State {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return s
	}
	if !s.Playing() || len(s.CurrentGuess) >= WordLength {
		return s
	}
	s.CurrentGuess += string(ch)
	return s
}

// RemoveLetter drops the last letter of the current guess.
func (s State) RemoveLetter() State {
	if !s.Playing() || len(s.CurrentGuess) == 0 {
		return s
	}
	s.CurrentGuess = s.CurrentGuess[:len(s.CurrentGuess)-1]
	return s
}

// SubmitGuess evaluates the current guess. It reports false, returning s
// unchanged, unless the round is playing and the guess is complete.
func (s State) SubmitGuess() (State, bool) {
	if !s.Playing() || len(s.CurrentGuess) != WordLength {
		return s, false
	}

	row := Evaluate(s.CurrentGuess, s.TargetWord)

	keys := make(map[rune]Status, len(s.KeyboardStatus)+WordLength)
	for k, v := range s.KeyboardStatus {
		keys[k] = v
	}
	for _, l := range row {
		if l.Status.rank() > keys[l.Letter].rank() {
			keys[l.Letter] = l.Status
		}
	}

	s.Guesses[s.CurrentRow] = row
	s.KeyboardStatus = keys
	s.CurrentGuess = ""
	s.CurrentRow++

	switch {
	case row.Solved():
		s.GameStatus = GameWon
	case s.CurrentRow >= MaxRows:
		s.GameStatus = GameLost
	}
	return s, true
}

// KeyStatus returns the best status recorded for a letter, or StatusUnused.
func (s State) KeyStatus(ch rune) Status {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if st, ok := s.KeyboardStatus[ch]; ok {
		return st
	}
	return StatusUnused
}

// DisplayRows returns the grid with the in-progress guess shown on the
// current row as unevaluated letters.
func (s State) DisplayRows() [MaxRows]Row {
	rows := s.Guesses
	if s.Playing() && s.CurrentRow < MaxRows {
		var cur Row
		for i := range cur {
			cur[i].Status = StatusEmpty
		}
		for i, r := range s.CurrentGuess {
			cur[i].Letter = r
		}
		rows[s.CurrentRow] = cur
	}
	return rows
}
