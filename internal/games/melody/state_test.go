package melody

import (
	"errors"
	"reflect"
	"testing"
)

var testEcon = Economy{AttemptCost: 50, RewardPercent: 10}

func enter(s State, pitches ...string) State {
	for _, p := range pitches {
		s, _ = s.SelectNote(p)
	}
	return s
}

func TestCheckAnswerWinPaysFromEnlargedPot(t *testing.T) {
	target := SampleMelodies[0]
	s := enter(NewState(Notes(target), 1000, 5000, 6), target...)

	next, out, err := s.CheckAnswer(testEcon)
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !out.Won || out.Stake != 50 || out.Reward != 505 {
		t.Errorf("outcome = %+v, want won with stake 50 and reward 505", out)
	}
	if next.Tokens != 1455 || next.PotTokens != 4545 {
		t.Errorf("balances = %d/%d, want 1455/4545", next.Tokens, next.PotTokens)
	}
	if !next.IsWon || !next.IsGameOver || next.Attempts != 1 {
		t.Errorf("unexpected round state %+v", next)
	}
	if len(next.UserMelody) != 0 {
		t.Error("user melody should be cleared after a check")
	}
	if !reflect.DeepEqual(Pitches(out.Guess), target) {
		t.Errorf("outcome guess = %v, want %v", Pitches(out.Guess), target)
	}
}

func TestCheckAnswerMissMovesStakeOnly(t *testing.T) {
	target := SampleMelodies[0]
	s := enter(NewState(Notes(target), 1000, 5000, 6), SampleMelodies[1]...)

	next, out, err := s.CheckAnswer(testEcon)
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if out.Won || out.Reward != 0 {
		t.Errorf("outcome = %+v, want a miss", out)
	}
	if next.Tokens != 950 || next.PotTokens != 5050 {
		t.Errorf("balances = %d/%d, want 950/5050", next.Tokens, next.PotTokens)
	}
	if next.IsGameOver {
		t.Error("round should continue after one miss")
	}
}

func TestCheckAnswerLastAttemptEndsRound(t *testing.T) {
	target := SampleMelodies[0]
	s := NewState(Notes(target), 1000, 0, 2)

	for i := 0; i < 2; i++ {
		var err error
		s, _, err = enter(s, SampleMelodies[2]...).CheckAnswer(testEcon)
		if err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}
	if !s.IsGameOver || s.IsWon {
		t.Errorf("expected a lost round, got %+v", s)
	}
	if s.AttemptsLeft() != 0 {
		t.Errorf("AttemptsLeft() = %d, want 0", s.AttemptsLeft())
	}
}

func TestCheckAnswerGuards(t *testing.T) {
	target := SampleMelodies[0]
	over := NewState(Notes(target), 1000, 5000, 6)
	over.IsGameOver = true

	tests := []struct {
		name  string
		state State
		want  error
	}{
		{"incomplete", enter(NewState(Notes(target), 1000, 5000, 6), "C", "D"), ErrIncompleteMelody},
		{"broke", enter(NewState(Notes(target), 49, 5000, 6), target...), ErrInsufficientTokens},
		{"round over", over, ErrRoundOver},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, out, err := tc.state.CheckAnswer(testEcon)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			var guard *GuardError
			if !errors.As(err, &guard) {
				t.Errorf("expected a *GuardError, got %T", err)
			}
			if !reflect.DeepEqual(next, tc.state) {
				t.Errorf("state changed on a guard failure:\n got %+v\nwant %+v", next, tc.state)
			}
			if out.Stake != 0 || out.Reward != 0 {
				t.Errorf("outcome should be empty, got %+v", out)
			}
		})
	}
}

func TestCheckAnswerExactBalanceAllowed(t *testing.T) {
	target := SampleMelodies[0]
	s := enter(NewState(Notes(target), 50, 0, 6), SampleMelodies[1]...)

	next, _, err := s.CheckAnswer(testEcon)
	if err != nil {
		t.Fatalf("CheckAnswer with exactly the cost: %v", err)
	}
	if next.Tokens != 0 || next.PotTokens != 50 {
		t.Errorf("balances = %d/%d, want 0/50", next.Tokens, next.PotTokens)
	}
}

func TestCheckAnswerIgnoresDuration(t *testing.T) {
	target := Notes(SampleMelodies[3])
	s := NewState(target, 1000, 100, 6)
	for _, p := range SampleMelodies[3] {
		s.UserMelody = append(s.UserMelody, Note{Pitch: p, Duration: "8n"})
	}

	_, out, err := s.CheckAnswer(testEcon)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Won {
		t.Error("durations should not affect the comparison")
	}
}

func TestSelectNoteCapsAtTargetLength(t *testing.T) {
	s := NewState(Notes(SampleMelodies[0]), 1000, 0, 6)
	s = enter(s, SampleMelodies[1]...)

	if _, added := s.SelectNote("C"); added {
		t.Error("an eleventh note should be ignored")
	}
	if len(s.UserMelody) != MelodyLength {
		t.Errorf("len(UserMelody) = %d, want %d", len(s.UserMelody), MelodyLength)
	}
	if s.UserMelody[0].Duration != DefaultDuration {
		t.Errorf("duration = %q, want %q", s.UserMelody[0].Duration, DefaultDuration)
	}
}

func TestSelectNoteDoesNotAlias(t *testing.T) {
	base := enter(NewState(Notes(SampleMelodies[0]), 1000, 0, 6), "C", "D")
	a, _ := base.SelectNote("E")
	b, _ := base.SelectNote("F")

	if a.UserMelody[2].Pitch != "E" || b.UserMelody[2].Pitch != "F" {
		t.Errorf("states share storage: %v / %v", Pitches(a.UserMelody), Pitches(b.UserMelody))
	}
	if len(base.UserMelody) != 2 {
		t.Error("base state was modified")
	}
}

func TestSelectNoteAfterGameOver(t *testing.T) {
	s := NewState(Notes(SampleMelodies[0]), 1000, 0, 6)
	s.IsGameOver = true
	if _, added := s.SelectNote("C"); added {
		t.Error("notes should not be accepted once the round is over")
	}
}

func TestResetKeepsBalances(t *testing.T) {
	target := SampleMelodies[0]
	s, _, err := enter(NewState(Notes(target), 1000, 5000, 6), target...).CheckAnswer(testEcon)
	if err != nil {
		t.Fatal(err)
	}

	r := s.Reset()
	if r.Tokens != s.Tokens || r.PotTokens != s.PotTokens {
		t.Error("reset should keep balances")
	}
	if r.Attempts != 0 || r.IsGameOver || r.IsWon || len(r.UserMelody) != 0 {
		t.Errorf("reset should start a clean round, got %+v", r)
	}
	if !reflect.DeepEqual(r.CurrentMelody, s.CurrentMelody) {
		t.Error("reset should keep the target")
	}

	w := s.WithMelody(Notes(SampleMelodies[4]))
	if !reflect.DeepEqual(Pitches(w.CurrentMelody), SampleMelodies[4]) {
		t.Error("WithMelody should replace the target")
	}
}

func TestRemoveAll(t *testing.T) {
	s := enter(NewState(Notes(SampleMelodies[0]), 1000, 0, 6), "C", "D", "E")
	if got := s.RemoveAll(); len(got.UserMelody) != 0 {
		t.Errorf("RemoveAll left %v", Pitches(got.UserMelody))
	}
}
