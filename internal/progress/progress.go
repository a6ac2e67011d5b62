// internal/progress/progress.go
package progress

import (
	"io"
	"path/filepath"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar renders a single byte-count bar for one input stream
type Bar struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

// Start draws a bar named after path on out. total is the input size in bytes.
func Start(out io.Writer, path string, total int64) *Bar {
	p := mpb.New(
		mpb.WithOutput(out),
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	bar := p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(TruncateLeft(label(path), 30), decor.WC{C: decor.DindentRight | decor.DextraSpace, W: 32}),
		),
		mpb.AppendDecorators(
			decor.CountersKibiByte("% .1f / % .1f", decor.WC{W: 18}),
			decor.Percentage(decor.WC{W: 5}),
		),
	)

	return &Bar{progress: p, bar: bar}
}

// Wrap returns r counting every byte read into the bar
func (b *Bar) Wrap(r io.Reader) io.Reader {
	return &Reader{
		Reader: r,
		OnRead: func(n int) { b.bar.IncrBy(n) },
	}
}

// Finish stops the bar and waits for the final render
func (b *Bar) Finish() {
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.progress.Wait()
}

func label(path string) string {
	if path == "" {
		return "stdin"
	}
	return filepath.Base(path)
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	filename := filepath.Base(path)
	if len(filename) >= maxLen-3 {
		return "..." + filename[len(filename)-(maxLen-3):]
	}

	return "..." + path[len(path)-(maxLen-3):]
}
