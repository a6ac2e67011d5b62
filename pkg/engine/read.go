// pkg/engine/read.go
package engine

import (
	"archive/tar"
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"
)

// Read decompresses r to w. With targets, r must hold a tar archive and
// only the matching members are written to w, as a tar stream.
func (e *Engine) Read(ctx context.Context, r io.Reader, w io.Writer, tarAware bool, targets []string) error {
	if len(targets) > 0 && !tarAware {
		return ErrTarRequired
	}

	xr, err := newXzReader(ctx, r)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		if _, err := io.Copy(w, xr); err != nil {
			return fmt.Errorf("decompress: %w", err)
		}
		return nil
	}
	return extractMembers(xr, w, targets)
}

func newXzReader(ctx context.Context, r io.Reader) (io.Reader, error) {
	xr, err := xz.NewReader(bufio.NewReader(&ctxReader{ctx: ctx, r: r}))
	if err != nil {
		return nil, fmt.Errorf("create xz reader: %w", err)
	}
	return xr, nil
}

// extractMembers copies the tar members selected by targets from r to w
func extractMembers(r io.Reader, w io.Writer, targets []string) error {
	tr := tar.NewReader(r)
	tw := tar.NewWriter(w)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read tar header: %w", err)
		}
		if !matchesTarget(header.Name, targets) {
			continue
		}

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("%s: write header: %w", header.Name, err)
		}
		if _, err := io.Copy(tw, tr); err != nil {
			return fmt.Errorf("%s: copy: %w", header.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("close tar: %w", err)
	}
	return nil
}

// matchesTarget reports whether name is a target or lies under a target directory
func matchesTarget(name string, targets []string) bool {
	name = strings.TrimPrefix(name, "./")
	for _, t := range targets {
		t = strings.TrimSuffix(strings.TrimPrefix(t, "./"), "/")
		if t == "" {
			continue
		}
		if name == t || strings.TrimSuffix(name, "/") == t || strings.HasPrefix(name, t+"/") {
			return true
		}
	}
	return false
}
