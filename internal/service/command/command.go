package command

import (
	"context"

	"github.com/amontanana/safety-sentinel/internal/logger"
	"github.com/amontanana/safety-sentinel/internal/state"
)

// toggleCommand is the serial command byte that flips the system enable flag.
const toggleCommand = 'O'

// Listener consumes single command bytes from the serial receive path and
// applies them to the shared state. It is the sole writer of the enable flag;
// the write is a plain boolean store, safe to race against the task reads.
type Listener struct {
	// shared receives the enable toggles.
	shared *state.Shared
	// commands delivers incoming command bytes.
	commands <-chan byte
}

// NewListener creates the command listener.
func NewListener(shared *state.Shared, commands <-chan byte) *Listener {
	return &Listener{
		shared:   shared,
		commands: commands,
	}
}

// Run handles commands until the context is canceled or the source closes.
func (l *Listener) Run(ctx context.Context) {
	ctx = logger.WithName(ctx, "command")
	logger.Info(ctx, "Command listener started")

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Command listener stopped")
			return
		case b, ok := <-l.commands:
			if !ok {
				logger.Info(ctx, "Command source closed")
				return
			}

			l.handle(ctx, b)
		}
	}
}

// handle applies one command byte. Unrecognized bytes are silently ignored
// with no state change.
func (l *Listener) handle(ctx context.Context, b byte) {
	switch b {
	case toggleCommand, toggleCommand + 'a' - 'A':
		enabled := l.shared.ToggleEnabled()
		logger.InfoKV(ctx, "System enable toggled", "enabled", enabled)
	default:
		logger.DebugKV(ctx, "Ignoring unknown command", "byte", b)
	}
}
