// pkg/engine/options.go
package engine

import (
	"runtime"

	"github.com/ulikunitz/xz"
)

// Preset bits follow liblzma: the level sits in the low bits and extreme is a flag
const (
	PresetLevelMask uint32 = 0x1f
	PresetExtreme   uint32 = 0x80000000
	PresetDefault   uint32 = 6
)

// dictCaps mirrors the xz dictionary size for presets 0-9
var dictCaps = [...]int{
	256 << 10,
	1 << 20,
	2 << 20,
	4 << 20,
	4 << 20,
	8 << 20,
	8 << 20,
	16 << 20,
	32 << 20,
	64 << 20,
}

// Block size bounds. The minimum keeps tiny fractions from producing one
// stream per few bytes; the maximum is twice the largest dictionary.
const (
	minBlockSize = 4 << 10
	maxBlockSize = 128 << 20
)

// Options tunes the engine
type Options struct {
	// Worker threads for compression
	// 0 = runtime.NumCPU()
	Threads int

	// Blocks queued ahead of each pipeline stage
	// Default: 2
	QueueSize int

	// Block size as a multiple of the dictionary capacity
	// Default: 2.0
	BlockFraction float64
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() Options {
	return Options{
		Threads:       runtime.NumCPU(),
		QueueSize:     2,
		BlockFraction: 2.0,
	}
}

// Validate checks options and fills defaults
func (o *Options) Validate() error {
	if o.Threads < 0 {
		return ErrInvalidThreads
	}
	if o.Threads == 0 {
		o.Threads = runtime.NumCPU()
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 2
	}
	if !(o.BlockFraction > 0) {
		o.BlockFraction = 2.0
	}
	return nil
}

// writerConfig translates a preset into an xz writer configuration.
// The xz package has no extreme mode; extreme selects the next level's
// dictionary instead.
func writerConfig(preset uint32) (xz.WriterConfig, error) {
	level := int(preset & PresetLevelMask)
	if level >= len(dictCaps) {
		return xz.WriterConfig{}, ErrInvalidPreset
	}
	if preset&PresetExtreme != 0 && level < len(dictCaps)-1 {
		level++
	}
	cfg := xz.WriterConfig{DictCap: dictCaps[level]}
	if err := cfg.Verify(); err != nil {
		return xz.WriterConfig{}, err
	}
	return cfg, nil
}

// blockSize returns the uncompressed size of each independently compressed block
func (o *Options) blockSize(dictCap int) int {
	// Compare as float first: huge or infinite fractions must not reach the int conversion
	size := float64(dictCap) * o.BlockFraction
	switch {
	case !(size < maxBlockSize):
		return maxBlockSize
	case size < minBlockSize:
		return minBlockSize
	default:
		return int(size)
	}
}
