// pkg/engine/engine.go
package engine

import (
	"context"
	"io"
)

// Engine compresses, decompresses and lists xz streams
type Engine struct {
	opts Options
}

// New returns an Engine for opts
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: opts}, nil
}

// Options returns the validated options
func (e *Engine) Options() Options {
	return e.opts
}

// plan picks the block size and thread count so in-flight blocks stay
// under half of RAM. The block shrinks only once a single thread still
// does not fit.
func (e *Engine) plan(blockSize int) (int, int) {
	return planFor(e.opts.Threads, e.opts.QueueSize, blockSize, memoryBudget())
}

func planFor(threads, queue, blockSize int, budget uint64) (int, int) {
	if budget == 0 {
		return blockSize, threads
	}
	for threads > 1 && inFlight(threads, queue, blockSize) > budget {
		threads--
	}
	if per := inFlight(1, queue, 1); inFlight(1, queue, blockSize) > budget {
		blockSize = int(budget / per)
		if blockSize < minBlockSize {
			blockSize = minBlockSize
		}
	}
	return blockSize, threads
}

// memoryBudget is half of system RAM, or 0 when unknown
func memoryBudget() uint64 {
	total, err := totalSystemMemory()
	if err != nil {
		return 0
	}
	return total / 2
}

// inFlight estimates buffered bytes: raw and compressed copies of every
// queued or active block
func inFlight(threads, queue, blockSize int) uint64 {
	return 2 * uint64(threads+2*queue) * uint64(blockSize)
}

// ctxReader stops reading once ctx is done
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
