// pkg/config/options.go
package config

// Operation selects what a run does with its input
type Operation int

const (
	OpCompress Operation = iota
	OpDecompress
	OpExtract
	OpList
)

func (o Operation) String() string {
	switch o {
	case OpCompress:
		return "compress"
	case OpDecompress:
		return "decompress"
	case OpExtract:
		return "extract"
	case OpList:
		return "list"
	default:
		return "unknown"
	}
}

const (
	// DefaultLevel matches the xz default preset
	DefaultLevel = 6

	// DefaultQueueSize is the number of blocks queued ahead of each pipeline stage
	DefaultQueueSize = 2

	// DefaultBlockFraction sizes blocks relative to the dictionary capacity
	DefaultBlockFraction = 2.0
)

// Config is the resolved set of run parameters
type Config struct {
	// Operation to perform
	// Default: OpCompress
	Operation Operation

	// TarAware treats the stream as a tar archive (list/extract by member)
	// Default: true
	TarAware bool

	// KeepInput keeps the input file after a derived-output run
	KeepInput bool

	// Extreme trades CPU time for ratio (compress only)
	Extreme bool

	// Level is the compression level (0-9)
	Level int

	// ThreadLimit caps worker threads
	// 0 = use all cores
	ThreadLimit int

	// QueueSize is the number of blocks queued between pipeline stages (>0)
	QueueSize int

	// BlockFraction scales block size to dictionary size (>0)
	BlockFraction float64

	// InputPath, OutputPath: empty means standard input/output
	InputPath  string
	OutputPath string

	// ExtractTargets lists member paths (extract only)
	ExtractTargets []string

	// RemoveInput is set when the output path was derived from the input;
	// the input is deleted after a successful run unless KeepInput is set
	RemoveInput bool

	// Progress draws a progress bar on the error stream
	Progress bool
}

// Default returns a Config with every field at its default
func Default() *Config {
	return &Config{
		Operation:     OpCompress,
		TarAware:      true,
		Level:         DefaultLevel,
		QueueSize:     DefaultQueueSize,
		BlockFraction: DefaultBlockFraction,
	}
}

// Validate range-checks the numeric tuning fields
func (c *Config) Validate() error {
	if c.Level < 0 || c.Level > 9 {
		return Usage(ErrInvalidLevel)
	}
	if c.ThreadLimit < 0 {
		return Usage(ErrInvalidThreads)
	}
	if c.QueueSize <= 0 {
		return Usage(ErrInvalidQueueSize)
	}
	if c.BlockFraction <= 0 {
		return Usage(ErrInvalidBlockFraction)
	}
	return nil
}

// ShouldRemoveInput reports whether the input file is deleted after success
func (c *Config) ShouldRemoveInput() bool {
	return c.RemoveInput && !c.KeepInput && c.InputPath != ""
}
