// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/creativeyann17/go-pixz/pkg/config"
)

// Invocation is the outcome of flag parsing
type Invocation struct {
	Config *config.Config

	// Args are the positional arguments, in order
	Args []string

	// Version is set when --version was given
	Version bool
}

// parser collects flag state that does not map 1:1 onto Config
type parser struct {
	cfg     *config.Config
	noTar   bool
	stdout  bool
	version bool
	help    bool
	flagErr error
}

// Parse turns raw arguments into a partially filled Config.
// Help returns config.ErrHelp; every other failure is a *config.UsageError.
func Parse(args []string) (*Invocation, error) {
	p := &parser{cfg: config.Default()}
	var positionals []string
	ran := false

	cmd := p.command(func(rest []string) {
		positionals = rest
		ran = true
	})
	if args == nil {
		args = []string{}
	}
	if err := rejectHidden(cmd.Flags(), args); err != nil {
		return nil, err
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	if p.help {
		return nil, config.ErrHelp
	}
	if !ran {
		return nil, fmt.Errorf("command did not run")
	}

	p.cfg.TarAware = !p.noTar
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	return &Invocation{Config: p.cfg, Args: positionals, Version: p.version}, nil
}

func (p *parser) command(run func(args []string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gopixz [input [output]]",
		Short:         "gopixz - parallel, indexing xz compression",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			run(args)
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpFunc(func(*cobra.Command, []string) { p.help = true })
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if p.flagErr != nil {
			return p.flagErr
		}
		return config.Usage(err)
	})

	cfg := p.cfg
	f := cmd.Flags()
	f.SortFlags = false

	p.operation(f, "compress", "z", config.OpCompress, "force compression")
	p.operation(f, "decompress", "d", config.OpDecompress, "force decompression")
	f.BoolVarP(&p.stdout, "stdout", "c", false, "accepted for xz compatibility; no effect")
	p.operation(f, "extract", "x", config.OpExtract, "extract files")
	p.operation(f, "list", "l", config.OpList, "list files")
	f.StringVarP(&cfg.InputPath, "input", "i", "", "specify input file")
	f.StringVarP(&cfg.OutputPath, "output", "o", "", "specify output file")
	f.BoolVarP(&p.noTar, "no-tar", "t", false, "don't assume input is in tar format")
	f.BoolVarP(&cfg.KeepInput, "keep", "k", false, "keep (don't delete) input files")
	f.BoolVarP(&p.help, "help", "h", false, "display this short help and exit")

	f.VarP(&countValue{target: &cfg.ThreadLimit, min: 0, fail: config.ErrInvalidThreads, report: &p.flagErr},
		"processes", "p", "use at most NUM threads; 0 uses every core")
	f.VarP(&countValue{target: &cfg.ThreadLimit, min: 0, fail: config.ErrInvalidThreads, report: &p.flagErr},
		"threads", "T", "same as -p")
	f.VarP(&fractionValue{target: &cfg.BlockFraction, report: &p.flagErr},
		"block-fraction", "f", "block size as a multiple of the dictionary size")
	f.VarP(&countValue{target: &cfg.QueueSize, min: 1, fail: config.ErrInvalidQueueSize, report: &p.flagErr},
		"qsize", "q", "blocks queued between pipeline stages")
	f.BoolVarP(&cfg.Extreme, "extreme", "e", false, "try to improve compression ratio by using more CPU time")

	p.level(f, "fast", 0, false)
	for level := 1; level <= 8; level++ {
		p.level(f, fmt.Sprintf("level-%d", level), level, true)
	}
	p.level(f, "best", 9, false)

	f.BoolVar(&p.version, "version", false, "print version information and exit")
	f.BoolVar(&cfg.Progress, "progress", false, "show a progress bar on standard error")

	return cmd
}

func (p *parser) operation(f *pflag.FlagSet, name, short string, op config.Operation, usage string) {
	flag := f.VarPF(&operationValue{target: &p.cfg.Operation, op: op}, name, short, usage)
	flag.NoOptDefVal = "true"
}

func (p *parser) level(f *pflag.FlagSet, name string, level int, hidden bool) {
	flag := f.VarPF(&levelValue{target: &p.cfg.Level, level: level}, name, fmt.Sprint(level), "set compression level")
	flag.NoOptDefVal = "true"
	flag.Hidden = hidden
}

// rejectHidden refuses hidden flags spelled by their long name: the levels
// 1 to 8 exist only as -1 .. -8. Values of preceding flags are skipped so
// "-i --level-3" still names a file.
func rejectHidden(f *pflag.FlagSet, args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return nil
		case strings.HasPrefix(arg, "--"):
			name, _, inline := strings.Cut(arg[2:], "=")
			flag := f.Lookup(name)
			if flag == nil {
				continue
			}
			if flag.Hidden {
				return config.Usage(fmt.Errorf("unknown flag: --%s", name))
			}
			if flag.NoOptDefVal == "" && !inline {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if shortTakesNext(f, arg[1:]) {
				i++
			}
		}
	}
	return nil
}

// shortTakesNext reports whether a shorthand cluster ends in a flag whose
// value is the next argument
func shortTakesNext(f *pflag.FlagSet, cluster string) bool {
	for j := 0; j < len(cluster); j++ {
		flag := f.ShorthandLookup(cluster[j : j+1])
		if flag == nil {
			return false
		}
		if flag.NoOptDefVal == "" {
			return j == len(cluster)-1
		}
	}
	return false
}
