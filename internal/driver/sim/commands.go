package sim

import (
	"bufio"
	"context"
	"io"
)

// Commands reads single command bytes from the provided reader and delivers
// them on the returned channel until the reader is exhausted or the context
// is canceled. Line breaks are skipped so an interactive stdin session can
// send one command per line.
func Commands(ctx context.Context, in io.Reader) <-chan byte {
	out := make(chan byte)

	go func() {
		defer close(out)

		reader := bufio.NewReader(in)

		for {
			b, err := reader.ReadByte()
			if err != nil {
				return
			}

			if b == '\r' || b == '\n' {
				continue
			}

			select {
			case out <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
