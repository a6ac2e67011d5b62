// pkg/dispatch/dispatch.go
package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/creativeyann17/go-pixz/pkg/config"
	"github.com/creativeyann17/go-pixz/pkg/engine"
	"github.com/creativeyann17/go-pixz/pkg/fileio"
)

// Engine is the compression backend. Each entry point streams from r to w.
type Engine interface {
	Write(ctx context.Context, r io.Reader, w io.Writer, tarAware bool, preset uint32) error
	Read(ctx context.Context, r io.Reader, w io.Writer, tarAware bool, targets []string) error
	List(ctx context.Context, r io.Reader, w io.Writer, tarAware bool) error
}

// Dispatcher runs one operation against an Engine
type Dispatcher struct {
	Engine Engine

	// IsTerminal reports whether f is an interactive terminal
	// Default: golang.org/x/term
	IsTerminal func(f *os.File) bool

	// Remove deletes the input after a derived-output run
	// Default: os.Remove
	Remove func(path string) error

	// WrapInput, when set, wraps the input stream (progress reporting)
	WrapInput func(r io.Reader) io.Reader
}

// Preset folds the level and the extreme flag into the engine preset
func Preset(cfg *config.Config) uint32 {
	preset := uint32(cfg.Level)
	if cfg.Extreme {
		preset |= engine.PresetExtreme
	}
	return preset
}

// Run performs the final checks, calls the engine exactly once and, on
// success, removes a consumed input. Removal failures are ignored.
func (d *Dispatcher) Run(ctx context.Context, cfg *config.Config, files *fileio.Files) error {
	var in io.Reader = files.In
	if d.WrapInput != nil {
		in = d.WrapInput(in)
	}

	var err error
	switch cfg.Operation {
	case config.OpCompress:
		if d.isTerminal(files.Out) {
			return config.Usage(config.ErrTerminalOutput)
		}
		err = d.Engine.Write(ctx, in, files.Out, cfg.TarAware, Preset(cfg))
	case config.OpDecompress:
		err = d.Engine.Read(ctx, in, files.Out, cfg.TarAware, nil)
	case config.OpExtract:
		err = d.Engine.Read(ctx, in, files.Out, cfg.TarAware, cfg.ExtractTargets)
	case config.OpList:
		err = d.Engine.List(ctx, in, files.Out, cfg.TarAware)
	default:
		return fmt.Errorf("unknown operation %d", cfg.Operation)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Operation, err)
	}

	// The input only goes once the output is known to be complete
	if err := files.CloseOutput(); err != nil {
		return config.NewIOError("can not close output file", cfg.OutputPath, err)
	}

	if cfg.ShouldRemoveInput() {
		_ = files.Close()
		_ = d.remove(cfg.InputPath)
	}
	return nil
}

func (d *Dispatcher) isTerminal(f *os.File) bool {
	if d.IsTerminal != nil {
		return d.IsTerminal(f)
	}
	return IsTerminal(f)
}

func (d *Dispatcher) remove(path string) error {
	if d.Remove != nil {
		return d.Remove(path)
	}
	return os.Remove(path)
}

// IsTerminal reports whether f refers to an interactive terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
