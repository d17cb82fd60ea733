package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewDefaults checks the startup state: enabled, no distance sample.
func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Enabled())
	require.Zero(t, s.Distance())
}

// TestToggleEnabled verifies toggling flips the flag and reports the new value.
func TestToggleEnabled(t *testing.T) {
	t.Parallel()

	s := New()
	require.False(t, s.ToggleEnabled())
	require.False(t, s.Enabled())
	require.True(t, s.ToggleEnabled())
	require.True(t, s.Enabled())
}

// TestDistanceRoundtrip checks distance samples are stored and read back.
func TestDistanceRoundtrip(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetDistance(123.45)
	require.InDelta(t, 123.45, s.Distance(), 1e-9)
}

// TestConcurrentAccess exercises the writer/reader pairing under the race
// detector: one distance writer, one reader, one enable toggler.
func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := New()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()

		for i := 0; i < 1000; i++ {
			s.SetDistance(float64(i))
		}
	}()

	go func() {
		defer wg.Done()

		for i := 0; i < 1000; i++ {
			_ = s.Distance()
			_ = s.Enabled()
		}
	}()

	go func() {
		defer wg.Done()

		for i := 0; i < 1000; i++ {
			s.ToggleEnabled()
		}
	}()

	wg.Wait()
}
