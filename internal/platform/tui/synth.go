package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Synth sounds the notes a game asks for.
type Synth interface {
	Play(pitch string)
}

// Silent discards every note.
type Silent struct{}

// Play implements Synth.
func (Silent) Play(string) {}

// Bell rings the terminal bell once per note. Terminals cannot pitch the
// bell, so the pitch itself only reaches the debug log.
type Bell struct {
	mu     sync.Mutex
	out    io.Writer
	logger *log.Logger
}

// NewBell creates a Bell writing to out. A nil logger disables note logging.
func NewBell(out io.Writer, logger *log.Logger) *Bell {
	return &Bell{out: out, logger: logger}
}

// Play implements Synth.
func (b *Bell) Play(pitch string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	//nolint:errcheck // A missed bell is not worth interrupting play
	b.out.Write([]byte{'\a'})
	if b.logger != nil {
		b.logger.Debug("note", "pitch", pitch)
	}
}
