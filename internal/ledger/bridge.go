// Package ledger defines the external bookkeeping contract and the
// best-effort side channel that mirrors local game actions onto it.
package ledger

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no ledger backend is configured.
var ErrUnavailable = errors.New("ledger: unavailable")

// Bridge is the contract the games mirror their actions onto.
// Implementations may be remote; every call can fail or time out.
type Bridge interface {
	// SubmitGuessHash records a guess hash together with its stake.
	SubmitGuessHash(ctx context.Context, sub Submission) (Receipt, error)
	// CreateTargetHash records the hash of a new target word or melody.
	CreateTargetHash(ctx context.Context, target Target) (Receipt, error)
	// ReadPotBalance returns the current pot of a game.
	ReadPotBalance(ctx context.Context, game string) (int64, error)
}

// Submission is a guess mirrored to the ledger.
type Submission struct {
	Game    string
	Account string
	Hash    string
	Stake   int64
}

// Target is a newly created target mirrored to the ledger.
type Target struct {
	Game    string
	Account string
	Hash    string
}

// Receipt identifies an accepted ledger call.
type Receipt struct {
	TransactionID string
	// Matched is set when a submission hash equals the active target.
	Matched bool
	// Payout is the amount released from the pot for a matched submission.
	Payout int64
}

// Nop is a Bridge that rejects every call with ErrUnavailable.
// It stands in when the platform runs without a ledger.
type Nop struct{}

func (Nop) SubmitGuessHash(context.Context, Submission) (Receipt, error) {
	return Receipt{}, ErrUnavailable
}

func (Nop) CreateTargetHash(context.Context, Target) (Receipt, error) {
	return Receipt{}, ErrUnavailable
}

func (Nop) ReadPotBalance(context.Context, string) (int64, error) {
	return 0, ErrUnavailable
}
