// pkg/engine/list.go
package engine

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
)

// List writes the member names of a compressed tar archive to w, one per
// line. Without tar mode it reports the uncompressed size instead.
func (e *Engine) List(ctx context.Context, r io.Reader, w io.Writer, tarAware bool) error {
	xr, err := newXzReader(ctx, r)
	if err != nil {
		return err
	}

	if !tarAware {
		n, err := io.Copy(io.Discard, xr)
		if err != nil {
			return fmt.Errorf("decompress: %w", err)
		}
		_, err = fmt.Fprintf(w, "%d bytes uncompressed (%s)\n", n, FormatSize(uint64(n)))
		return err
	}

	tr := tar.NewReader(xr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read tar header: %w", err)
		}
		if _, err := fmt.Fprintln(w, header.Name); err != nil {
			return err
		}
	}
}

// FormatSize formats bytes into human-readable string
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
