package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/melodle/internal/core"
)

// DefaultTimeout bounds a single mirrored call.
const DefaultTimeout = 5 * time.Second

// Result is the outcome of one mirrored op. Err is set on failure;
// callers surface it as a warning and carry on.
type Result struct {
	Op      core.LedgerOp
	Receipt Receipt
	Pot     int64
	HasPot  bool
	Err     error
}

// OK reports whether the op was accepted.
func (r Result) OK() bool {
	return r.Err == nil
}

// Mirror executes ledger ops on a Bridge, isolating the caller from failures.
type Mirror struct {
	bridge  Bridge
	account string
	timeout time.Duration
	logger  *log.Logger
}

// NewMirror creates a mirror over bridge. A nil bridge behaves like Nop
// and a nil logger discards output.
func NewMirror(bridge Bridge, account string, logger *log.Logger) *Mirror {
	if bridge == nil {
		bridge = Nop{}
	}
	return &Mirror{
		bridge:  bridge,
		account: account,
		timeout: DefaultTimeout,
		logger:  logger,
	}
}

// WithTimeout returns a copy of the mirror with a different call timeout.
func (m *Mirror) WithTimeout(d time.Duration) *Mirror {
	cp := *m
	if d > 0 {
		cp.timeout = d
	}
	return &cp
}

// Do runs op and never panics or blocks past the timeout.
// Successful submissions and creations are followed by a pot read so the
// game can show the updated balance.
func (m *Mirror) Do(ctx context.Context, op core.LedgerOp) (res Result) {
	res.Op = op

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("ledger: %s panicked: %v", op.Kind, r)
		}
		m.report(res)
	}()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	switch op.Kind {
	case core.LedgerSubmitGuess:
		res.Receipt, res.Err = m.bridge.SubmitGuessHash(ctx, Submission{
			Game:    op.Game,
			Account: m.account,
			Hash:    op.Hash,
			Stake:   op.Stake,
		})
	case core.LedgerCreateTarget:
		res.Receipt, res.Err = m.bridge.CreateTargetHash(ctx, Target{
			Game:    op.Game,
			Account: m.account,
			Hash:    op.Hash,
		})
	case core.LedgerReadPot:
	default:
		res.Err = fmt.Errorf("ledger: unknown op %q", op.Kind)
	}
	if res.Err != nil {
		return res
	}

	pot, err := m.bridge.ReadPotBalance(ctx, op.Game)
	if err != nil {
		// The write already landed; only the balance is missing.
		if op.Kind == core.LedgerReadPot {
			res.Err = err
		}
		return res
	}
	res.Pot = pot
	res.HasPot = true
	return res
}

func (m *Mirror) report(res Result) {
	if m.logger == nil {
		return
	}
	if res.Err != nil {
		m.logger.Warn("ledger call failed", "op", res.Op.Kind, "game", res.Op.Game, "label", res.Op.Label, "err", res.Err)
		return
	}
	m.logger.Debug("ledger call",
		"op", res.Op.Kind,
		"game", res.Op.Game,
		"tx", res.Receipt.TransactionID,
		"matched", res.Receipt.Matched,
		"pot", res.Pot,
	)
}
