//go:build !(darwin || freebsd || linux)

package modem

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrEngineUnavailable is returned when the ggwave shared library cannot
// be loaded.
var ErrEngineUnavailable = errors.New("ggwave library unavailable")

// NewGGWave reports the engine as unavailable on platforms without a
// dlopen binding.
func NewGGWave() (Engine, error) {
	return nil, fmt.Errorf("%w on %s", ErrEngineUnavailable, runtime.GOOS)
}
