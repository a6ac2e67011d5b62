//go:build !linux && !darwin && !windows

package engine

import "errors"

func totalSystemMemory() (uint64, error) {
	return 0, errors.New("system memory size unknown on this platform")
}
