package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/melodle/internal/ledger"
)

var _ ledger.Bridge = (*Store)(nil)

// SubmissionEntry is one mirrored guess as recorded by the local ledger.
type SubmissionEntry struct {
	TransactionID string
	GameID        string
	Account       string
	Hash          string
	Stake         int64
	Matched       bool
	Payout        int64
	CreatedAt     time.Time
}

// SetPayoutPercent changes the share of the pot paid to a matching submission.
// Values are clamped to 0..100.
func (s *Store) SetPayoutPercent(p int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payoutPercent = int64(max(0, min(100, p)))
}

// SeedPot sets the starting pot for a game. It only takes effect the first
// time a game is seeded so restarts don't refill the pot.
func (s *Store) SeedPot(ctx context.Context, game string, amount int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO pots (game_id, seed) VALUES (?, ?)",
		game, amount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot seed pot: %w", err)
	}
	return nil
}

// CreateTargetHash records a new active target for the game.
func (s *Store) CreateTargetHash(ctx context.Context, target ledger.Target) (ledger.Receipt, error) {
	if target.Game == "" || target.Hash == "" {
		return ledger.Receipt{}, errors.New("storage: target needs a game and a hash")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txID := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO targets (tx_id, game_id, account, hash) VALUES (?, ?, ?, ?)",
		txID, target.Game, target.Account, strings.ToLower(target.Hash),
	)
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("storage: cannot create target: %w", err)
	}

	return ledger.Receipt{TransactionID: txID}, nil
}

// SubmitGuessHash records a submission and its stake. When the hash equals
// the game's latest target, payout_percent of the pot (stake included) is
// released to the submitter.
func (s *Store) SubmitGuessHash(ctx context.Context, sub ledger.Submission) (ledger.Receipt, error) {
	if sub.Game == "" || sub.Hash == "" {
		return ledger.Receipt{}, errors.New("storage: submission needs a game and a hash")
	}
	if sub.Stake < 0 {
		return ledger.Receipt{}, fmt.Errorf("storage: negative stake %d", sub.Stake)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	hash := strings.ToLower(sub.Hash)

	var target string
	err = tx.QueryRowContext(ctx,
		"SELECT hash FROM targets WHERE game_id = ? ORDER BY id DESC LIMIT 1",
		sub.Game,
	).Scan(&target)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return ledger.Receipt{}, fmt.Errorf("storage: cannot read target: %w", err)
	}
	matched := target != "" && target == hash

	var payout int64
	if matched {
		pot, err := potBalance(ctx, tx, sub.Game)
		if err != nil {
			return ledger.Receipt{}, err
		}
		payout = (pot + sub.Stake) * s.payoutPercent / 100
	}

	txID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO submissions (tx_id, game_id, account, hash, stake, matched, payout)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		txID, sub.Game, sub.Account, hash, sub.Stake, matched, payout,
	)
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("storage: cannot record submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ledger.Receipt{}, fmt.Errorf("storage: cannot commit submission: %w", err)
	}

	return ledger.Receipt{TransactionID: txID, Matched: matched, Payout: payout}, nil
}

// ReadPotBalance returns seed + stakes - payouts for the game.
func (s *Store) ReadPotBalance(ctx context.Context, game string) (int64, error) {
	return potBalance(ctx, s.db, game)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func potBalance(ctx context.Context, q queryer, game string) (int64, error) {
	var pot int64
	err := q.QueryRowContext(ctx,
		`SELECT
			COALESCE((SELECT seed FROM pots WHERE game_id = ?), 0)
			+ COALESCE((SELECT SUM(stake) FROM submissions WHERE game_id = ?), 0)
			- COALESCE((SELECT SUM(payout) FROM submissions WHERE game_id = ?), 0)`,
		game, game, game,
	).Scan(&pot)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read pot balance: %w", err)
	}
	return pot, nil
}

// RecentSubmissions lists the latest submissions for a game, newest first.
// An empty game lists every game.
func (s *Store) RecentSubmissions(ctx context.Context, game string, limit int) ([]SubmissionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT tx_id, game_id, account, hash, stake, matched, payout, created_at
		 FROM submissions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		game, game, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query submissions: %w", err)
	}
	defer rows.Close()

	var entries []SubmissionEntry
	for rows.Next() {
		var e SubmissionEntry
		var createdAt any
		if err := rows.Scan(&e.TransactionID, &e.GameID, &e.Account, &e.Hash, &e.Stake, &e.Matched, &e.Payout, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
