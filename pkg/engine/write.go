// pkg/engine/write.go
package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"golang.org/x/sync/errgroup"
)

// block is one slice of input compressed into its own xz stream
type block struct {
	seq    int
	data   *bytes.Buffer
	result chan []byte
}

// Write compresses r to w at the given preset.
//
// Input is cut into fixed-size blocks that workers compress in parallel
// into independent xz streams; streams are written in input order, so the
// output is a valid concatenated .xz file. tarAware is accepted for
// symmetry with Read and List; no member index is embedded.
func (e *Engine) Write(ctx context.Context, r io.Reader, w io.Writer, tarAware bool, preset uint32) error {
	cfg, err := writerConfig(preset)
	if err != nil {
		return err
	}
	size, threads := e.plan(e.opts.blockSize(cfg.DictCap))

	g, ctx := errgroup.WithContext(ctx)
	r = &ctxReader{ctx: ctx, r: r}

	jobs := make(chan *block, e.opts.QueueSize)
	ordered := make(chan *block, e.opts.QueueSize+threads)

	// Reader: every block enters ordered before jobs, so the oldest pending
	// block is always visible to a worker.
	g.Go(func() error {
		defer close(jobs)
		defer close(ordered)

		for seq := 0; ; seq++ {
			buf := getInputBuffer()
			n, err := io.CopyN(buf, r, int64(size))
			if err != nil && err != io.EOF {
				putInputBuffer(buf)
				return fmt.Errorf("read input: %w", err)
			}
			// An empty input still yields one (empty) stream
			if n == 0 && seq > 0 {
				putInputBuffer(buf)
				return nil
			}

			b := &block{seq: seq, data: buf, result: make(chan []byte, 1)}
			select {
			case ordered <- b:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- b:
			case <-ctx.Done():
				return ctx.Err()
			}

			if n < int64(size) {
				return nil
			}
		}
	})

	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for b := range jobs {
				out, err := compressBlock(cfg, b.data.Bytes())
				putInputBuffer(b.data)
				if err != nil {
					return fmt.Errorf("block %d: %w", b.seq, err)
				}
				b.result <- out
			}
			return nil
		})
	}

	// Writer
	g.Go(func() error {
		for b := range ordered {
			select {
			case out := <-b.result:
				if _, err := w.Write(out); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}

// compressBlock encodes data as one complete xz stream
func compressBlock(cfg xz.WriterConfig, data []byte) ([]byte, error) {
	buf := getOutputBuffer()
	defer putOutputBuffer(buf)

	xw, err := cfg.NewWriter(buf)
	if err != nil {
		return nil, fmt.Errorf("create xz writer: %w", err)
	}
	if _, err := xw.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := xw.Close(); err != nil {
		return nil, fmt.Errorf("close xz writer: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
