// pkg/resolve/resolve.go
package resolve

import "github.com/creativeyann17/go-pixz/pkg/config"

// Positionals fills the path fields of cfg from the positional arguments
// left over after flag parsing.
//
// Extract takes every positional as a member path. List takes at most one
// (the input). Compress and decompress take an input and an optional
// output; with only an input the output is derived from its suffix and the
// input becomes eligible for removal.
func Positionals(cfg *config.Config, args []string) error {
	if cfg.Operation == config.OpExtract {
		cfg.ExtractTargets = append([]string(nil), args...)
		return nil
	}
	if len(args) == 0 {
		return nil
	}
	if len(args) > 2 || (cfg.Operation == config.OpList && len(args) == 2) {
		return config.Usage(config.ErrTooManyArguments)
	}

	if cfg.InputPath != "" {
		return config.Usage(config.ErrMultipleInputs)
	}
	cfg.InputPath = args[0]

	if len(args) == 2 {
		if cfg.OutputPath != "" {
			return config.Usage(config.ErrMultipleOutputs)
		}
		cfg.OutputPath = args[1]
		return nil
	}

	// An explicit -o wins over derivation and leaves the input in place.
	if cfg.Operation == config.OpList || cfg.OutputPath != "" {
		return nil
	}

	out, ok := DeriveOutput(cfg.Operation, args[0])
	if !ok {
		return config.Usage(config.ErrUnknownSuffix)
	}
	cfg.OutputPath = out
	cfg.RemoveInput = true
	return nil
}
