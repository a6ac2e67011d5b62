// pkg/fileio/files.go
package fileio

import (
	"errors"
	"io/fs"
	"os"

	"github.com/creativeyann17/go-pixz/pkg/config"
)

// defaultCreateMode is filtered by the process umask, like fopen(path, "w")
const defaultCreateMode fs.FileMode = 0666

// Files holds the two handles used for a run
type Files struct {
	In  *os.File
	Out *os.File

	ownIn  bool
	ownOut bool
}

// Open acquires the input and output handles described by cfg, falling
// back to stdin/stdout for unset paths.
//
// A created output takes the permission bits of the input file. When the
// input is a standard stream the umask default applies.
func Open(cfg *config.Config, stdin, stdout *os.File) (*Files, error) {
	f := &Files{In: stdin, Out: stdout}

	if cfg.InputPath != "" {
		in, err := os.Open(cfg.InputPath)
		if err != nil {
			return nil, config.NewIOError("can not open input file", cfg.InputPath, err)
		}
		f.In, f.ownIn = in, true
	}

	if cfg.OutputPath != "" {
		out, err := createOutput(cfg.OutputPath, cfg.InputPath)
		if err != nil {
			f.Close()
			return nil, config.NewIOError("can not open output file", cfg.OutputPath, err)
		}
		f.Out, f.ownOut = out, true
	}

	return f, nil
}

func createOutput(path, inputPath string) (*os.File, error) {
	const flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

	if inputPath == "" {
		return os.OpenFile(path, flags, defaultCreateMode)
	}

	// A failed stat is tolerated; the output then gets the default mode.
	mode := defaultCreateMode
	info, statErr := os.Stat(inputPath)
	if statErr == nil {
		mode = info.Mode().Perm()
	}

	out, err := os.OpenFile(path, flags, mode)
	if err != nil {
		return nil, err
	}
	if statErr == nil {
		// OpenFile applies the umask and leaves existing files alone
		_ = out.Chmod(mode)
	}
	return out, nil
}

// Close closes the handles Open created. Standard streams stay open.
// The output is closed first so a failed flush is reported.
func (f *Files) Close() error {
	var errs []error
	if f.ownOut && f.Out != nil {
		if err := f.Out.Close(); err != nil {
			errs = append(errs, err)
		}
		f.ownOut = false
	}
	if f.ownIn && f.In != nil {
		if err := f.In.Close(); err != nil {
			errs = append(errs, err)
		}
		f.ownIn = false
	}
	return errors.Join(errs...)
}

// CloseOutput closes only the output handle, if Open created it
func (f *Files) CloseOutput() error {
	if !f.ownOut || f.Out == nil {
		return nil
	}
	f.ownOut = false
	return f.Out.Close()
}

// InputSize returns the size of a regular input file, or -1
func (f *Files) InputSize() int64 {
	if f.In == nil {
		return -1
	}
	info, err := f.In.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return -1
	}
	return info.Size()
}
