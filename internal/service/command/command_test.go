package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amontanana/safety-sentinel/internal/state"
)

// TestHandleToggle verifies 'O' and 'o' flip the enable flag.
func TestHandleToggle(t *testing.T) {
	t.Parallel()

	shared := state.New()
	l := NewListener(shared, nil)
	ctx := context.Background()

	l.handle(ctx, 'O')
	require.False(t, shared.Enabled())

	l.handle(ctx, 'o')
	require.True(t, shared.Enabled())
}

// TestHandleUnknownIgnored verifies unrecognized bytes change nothing.
func TestHandleUnknownIgnored(t *testing.T) {
	t.Parallel()

	shared := state.New()
	l := NewListener(shared, nil)
	ctx := context.Background()

	for _, b := range []byte{'x', '0', ' ', 0xFF} {
		l.handle(ctx, b)
		require.True(t, shared.Enabled())
	}
}

// TestRunConsumesUntilClose verifies the listener applies streamed commands
// and exits when the source closes.
func TestRunConsumesUntilClose(t *testing.T) {
	t.Parallel()

	shared := state.New()
	commands := make(chan byte, 3)
	commands <- 'O'
	commands <- '?'
	commands <- 'O'
	close(commands)

	l := NewListener(shared, commands)

	done := make(chan struct{})

	go func() {
		l.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not exit on source close")
	}

	// Two toggles: back to enabled.
	require.True(t, shared.Enabled())
}

// TestRunStopsOnCancel verifies cancellation unblocks the listener.
func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	l := NewListener(state.New(), make(chan byte))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		l.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop on cancel")
	}
}
