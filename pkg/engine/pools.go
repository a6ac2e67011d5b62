// pkg/engine/pools.go
package engine

import (
	"bytes"
	"sync"
)

// Buffer pools for raw and compressed blocks. Buffers grow to what was
// actually read, so short inputs never pay for a full block.
var (
	inputBufferPool = sync.Pool{
		New: func() any {
			return new(bytes.Buffer)
		},
	}

	outputBufferPool = sync.Pool{
		New: func() any {
			return new(bytes.Buffer)
		},
	}
)

func getInputBuffer() *bytes.Buffer {
	buf := inputBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putInputBuffer(buf *bytes.Buffer) {
	inputBufferPool.Put(buf)
}

func getOutputBuffer() *bytes.Buffer {
	buf := outputBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putOutputBuffer(buf *bytes.Buffer) {
	outputBufferPool.Put(buf)
}
