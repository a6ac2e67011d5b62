// internal/cli/app.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creativeyann17/go-pixz/internal/progress"
	"github.com/creativeyann17/go-pixz/pkg/config"
	"github.com/creativeyann17/go-pixz/pkg/dispatch"
	"github.com/creativeyann17/go-pixz/pkg/engine"
	"github.com/creativeyann17/go-pixz/pkg/fileio"
	"github.com/creativeyann17/go-pixz/pkg/resolve"
)

// Exit statuses
const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)

// App wires the parser, resolver, file acquisition and dispatcher to the
// process streams
type App struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr io.Writer

	// Version is shown by --version and at the end of the help text
	Version string

	// IsTerminal overrides terminal detection (tests)
	IsTerminal func(f *os.File) bool

	// NewEngine overrides the engine (tests)
	NewEngine func(opts engine.Options) (dispatch.Engine, error)
}

// Run executes one invocation and returns the process exit status
func (a *App) Run(ctx context.Context, args []string) int {
	return a.exitCode(a.run(ctx, args))
}

func (a *App) run(ctx context.Context, args []string) error {
	inv, err := Parse(args)
	if err != nil {
		return err
	}
	if inv.Version {
		_, err := fmt.Fprintf(a.Stdout, "gopixz %s\n", a.Version)
		return err
	}

	cfg := inv.Config
	if err := resolve.Positionals(cfg, inv.Args); err != nil {
		return err
	}

	eng, err := a.engine(cfg)
	if err != nil {
		return err
	}

	files, err := fileio.Open(cfg, a.Stdin, a.Stdout)
	if err != nil {
		return err
	}
	defer files.Close()

	d := &dispatch.Dispatcher{Engine: eng, IsTerminal: a.IsTerminal}
	if cfg.Progress {
		if size := files.InputSize(); size > 0 {
			bar := progress.Start(a.Stderr, cfg.InputPath, size)
			defer bar.Finish()
			d.WrapInput = bar.Wrap
		}
	}

	return d.Run(ctx, cfg, files)
}

func (a *App) engine(cfg *config.Config) (dispatch.Engine, error) {
	opts := engine.Options{
		Threads:       cfg.ThreadLimit,
		QueueSize:     cfg.QueueSize,
		BlockFraction: cfg.BlockFraction,
	}
	if a.NewEngine != nil {
		return a.NewEngine(opts)
	}
	eng, err := engine.New(opts)
	if err != nil {
		return nil, err
	}
	return eng, nil
}

// exitCode reports err on the error stream and maps it to an exit status
func (a *App) exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrHelp):
		fmt.Fprint(a.Stderr, Usage(a.Version))
		return ExitUsage
	case config.IsUsage(err):
		fmt.Fprintf(a.Stderr, "%v\n\n", err)
		fmt.Fprint(a.Stderr, Usage(a.Version))
		return ExitUsage
	default:
		fmt.Fprintf(a.Stderr, "gopixz: %v\n", err)
		return ExitFatal
	}
}
