package sim

import (
	"io"
	"sync"

	"github.com/amontanana/safety-sentinel/internal/driver"
)

// Board simulates the discrete outputs. It records pin levels so tests and
// the demo binary can observe actuation without hardware.
type Board struct {
	// pins holds the last level set per pin.
	pins map[driver.Pin]bool
	// mu guards the pin map.
	mu sync.Mutex
}

// NewBoard creates a board with all outputs cleared.
func NewBoard() *Board {
	return &Board{pins: make(map[driver.Pin]bool)}
}

// Set records the level of a pin.
func (b *Board) Set(pin driver.Pin, on bool) error {
	b.mu.Lock()
	b.pins[pin] = on
	b.mu.Unlock()

	return nil
}

// PinState returns the last level set for a pin, false if never set.
func (b *Board) PinState(pin driver.Pin) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.pins[pin]
}

// Serial writes outgoing lines to an io.Writer, usually stdout.
type Serial struct {
	// out receives every sent line.
	out io.Writer
	// mu serializes writes from concurrent tasks.
	mu sync.Mutex
}

// NewSerial creates a serial port writing to the provided writer.
func NewSerial(out io.Writer) *Serial {
	return &Serial{out: out}
}

// Send writes a line to the underlying writer.
func (s *Serial) Send(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.out.Write(line)

	return err
}
