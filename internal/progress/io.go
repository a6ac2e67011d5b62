// internal/progress/io.go
package progress

import "io"

// Reader wraps an io.Reader with progress tracking
type Reader struct {
	Reader io.Reader
	OnRead func(n int)
}

func (pr *Reader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	if n > 0 && pr.OnRead != nil {
		pr.OnRead(n)
	}
	return n, err
}
