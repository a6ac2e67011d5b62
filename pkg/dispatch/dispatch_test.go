// pkg/dispatch/dispatch_test.go
package dispatch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/creativeyann17/go-pixz/pkg/config"
	"github.com/creativeyann17/go-pixz/pkg/engine"
	"github.com/creativeyann17/go-pixz/pkg/fileio"
)

// fakeEngine records the single call it receives
type fakeEngine struct {
	calls    []string
	tarAware bool
	preset   uint32
	targets  []string
	err      error
}

func (f *fakeEngine) Write(ctx context.Context, r io.Reader, w io.Writer, tarAware bool, preset uint32) error {
	f.calls = append(f.calls, "write")
	f.tarAware, f.preset = tarAware, preset
	if f.err != nil {
		return f.err
	}
	_, err := io.Copy(w, r)
	return err
}

func (f *fakeEngine) Read(ctx context.Context, r io.Reader, w io.Writer, tarAware bool, targets []string) error {
	f.calls = append(f.calls, "read")
	f.tarAware, f.targets = tarAware, targets
	return f.err
}

func (f *fakeEngine) List(ctx context.Context, r io.Reader, w io.Writer, tarAware bool) error {
	f.calls = append(f.calls, "list")
	f.tarAware = tarAware
	return f.err
}

func notTerminal(*os.File) bool { return false }

// setup writes an input file and opens handles for a derived-output run
func setup(t *testing.T, op config.Operation) (*config.Config, *fileio.Files) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Operation = op
	cfg.InputPath = filepath.Join(dir, "data.tar")
	cfg.OutputPath = filepath.Join(dir, "data.tpxz")
	cfg.RemoveInput = true

	if err := os.WriteFile(cfg.InputPath, []byte("payload"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	files, err := fileio.Open(cfg, os.Stdin, os.Stdout)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { files.Close() })
	return cfg, files
}

func TestRunOperations(t *testing.T) {
	tests := []struct {
		op   config.Operation
		call string
	}{
		{config.OpCompress, "write"},
		{config.OpDecompress, "read"},
		{config.OpExtract, "read"},
		{config.OpList, "list"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			cfg, files := setup(t, tt.op)
			cfg.RemoveInput = false
			cfg.TarAware = false
			if tt.op == config.OpExtract {
				cfg.ExtractTargets = []string{"a", "b/c"}
			}

			eng := &fakeEngine{}
			d := &Dispatcher{Engine: eng, IsTerminal: notTerminal}
			if err := d.Run(context.Background(), cfg, files); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if !reflect.DeepEqual(eng.calls, []string{tt.call}) {
				t.Errorf("Expected exactly one %s call, got %v", tt.call, eng.calls)
			}
			if eng.tarAware {
				t.Error("Tar-aware flag should be passed through")
			}
			switch tt.op {
			case config.OpDecompress:
				if eng.targets != nil {
					t.Errorf("Decompress should pass no targets, got %v", eng.targets)
				}
			case config.OpExtract:
				if !reflect.DeepEqual(eng.targets, cfg.ExtractTargets) {
					t.Errorf("Expected targets %v, got %v", cfg.ExtractTargets, eng.targets)
				}
			}
		})
	}
}

func TestRunCompressPreset(t *testing.T) {
	cfg, files := setup(t, config.OpCompress)
	cfg.Level = 9
	cfg.Extreme = true

	eng := &fakeEngine{}
	d := &Dispatcher{Engine: eng, IsTerminal: notTerminal}
	if err := d.Run(context.Background(), cfg, files); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if eng.preset != 9|engine.PresetExtreme {
		t.Errorf("Expected preset %#x, got %#x", 9|engine.PresetExtreme, eng.preset)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil || string(data) != "payload" {
		t.Errorf("Expected engine output in file, got %q (%v)", data, err)
	}
}

func TestPreset(t *testing.T) {
	cfg := config.Default()
	if Preset(cfg) != uint32(config.DefaultLevel) {
		t.Errorf("Expected default preset, got %d", Preset(cfg))
	}
	cfg.Level = 0
	cfg.Extreme = true
	if Preset(cfg) != engine.PresetExtreme {
		t.Errorf("Expected extreme flag only, got %#x", Preset(cfg))
	}
}

func TestRunRefusesTerminal(t *testing.T) {
	for _, extreme := range []bool{false, true} {
		cfg, files := setup(t, config.OpCompress)
		cfg.Extreme = extreme

		eng := &fakeEngine{}
		d := &Dispatcher{Engine: eng, IsTerminal: func(*os.File) bool { return true }}
		err := d.Run(context.Background(), cfg, files)
		if !errors.Is(err, config.ErrTerminalOutput) || !config.IsUsage(err) {
			t.Fatalf("Expected terminal usage error, got %v", err)
		}
		if len(eng.calls) != 0 {
			t.Errorf("Engine must not run, got %v", eng.calls)
		}
		if _, err := os.Stat(cfg.InputPath); err != nil {
			t.Error("Input must survive a refused run")
		}
	}
}

func TestRunTerminalOnlyMattersForCompress(t *testing.T) {
	cfg, files := setup(t, config.OpDecompress)
	eng := &fakeEngine{}
	d := &Dispatcher{Engine: eng, IsTerminal: func(*os.File) bool { return true }}
	if err := d.Run(context.Background(), cfg, files); err != nil {
		t.Fatalf("Decompress to a terminal should be allowed: %v", err)
	}
}

func TestRunRemovesInput(t *testing.T) {
	cfg, files := setup(t, config.OpCompress)
	d := &Dispatcher{Engine: &fakeEngine{}, IsTerminal: notTerminal}
	if err := d.Run(context.Background(), cfg, files); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(cfg.InputPath); !os.IsNotExist(err) {
		t.Error("Input should be removed after a derived-output run")
	}
}

func TestRunKeepsInput(t *testing.T) {
	cfg, files := setup(t, config.OpCompress)
	cfg.KeepInput = true
	d := &Dispatcher{Engine: &fakeEngine{}, IsTerminal: notTerminal}
	if err := d.Run(context.Background(), cfg, files); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(cfg.InputPath); err != nil {
		t.Error("Keep should preserve the input")
	}
}

func TestRunRemoveFailureIgnored(t *testing.T) {
	cfg, files := setup(t, config.OpCompress)
	var removed string
	d := &Dispatcher{
		Engine:     &fakeEngine{},
		IsTerminal: notTerminal,
		Remove: func(path string) error {
			removed = path
			return errors.New("permission denied")
		},
	}
	if err := d.Run(context.Background(), cfg, files); err != nil {
		t.Fatalf("Removal failure must not fail the run: %v", err)
	}
	if removed != cfg.InputPath {
		t.Errorf("Expected removal of %q, got %q", cfg.InputPath, removed)
	}
}

func TestRunEngineErrorKeepsInput(t *testing.T) {
	cfg, files := setup(t, config.OpDecompress)
	d := &Dispatcher{Engine: &fakeEngine{err: errors.New("corrupt stream")}, IsTerminal: notTerminal}
	err := d.Run(context.Background(), cfg, files)
	if err == nil || !strings.Contains(err.Error(), "corrupt stream") {
		t.Fatalf("Expected engine error, got %v", err)
	}
	if config.IsUsage(err) {
		t.Error("Engine failures are not usage errors")
	}
	if _, err := os.Stat(cfg.InputPath); err != nil {
		t.Error("Input must survive a failed run")
	}
}

func TestRunWrapInput(t *testing.T) {
	cfg, files := setup(t, config.OpCompress)
	wrapped := false
	d := &Dispatcher{
		Engine:     &fakeEngine{},
		IsTerminal: notTerminal,
		WrapInput: func(r io.Reader) io.Reader {
			wrapped = true
			return r
		},
	}
	if err := d.Run(context.Background(), cfg, files); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !wrapped {
		t.Error("WrapInput should see the input stream")
	}
}
