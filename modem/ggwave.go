//go:build darwin || freebsd || linux

package modem

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ErrEngineUnavailable is returned when the ggwave shared library cannot
// be loaded.
var ErrEngineUnavailable = errors.New("ggwave library unavailable")

var ggwaveLibNames = []string{
	"libggwave.so",
	"libggwave.so.0",
	"libggwave.dylib",
}

// ggwaveEngine is the dlopen binding to the ggwave shared library.
type ggwaveEngine struct {
	getDefaultParameters func() Parameters
	setLogFile           func(uintptr)
	init                 func(Parameters) int32
	free                 func(int32)
	encode               func(int32, unsafe.Pointer, int32, int32, int32, unsafe.Pointer, int32) int32
	ndecode              func(int32, unsafe.Pointer, int32, unsafe.Pointer, int32) int32
}

// NewGGWave loads the ggwave shared library and returns it as an Engine.
// The engine's diagnostic output is silenced at load time.
func NewGGWave() (Engine, error) {
	var (
		lib uintptr
		err error
	)

	for _, name := range ggwaveLibNames {
		lib, err = purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			break
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	eng := &ggwaveEngine{}
	purego.RegisterLibFunc(&eng.getDefaultParameters, lib, "ggwave_getDefaultParameters")
	purego.RegisterLibFunc(&eng.setLogFile, lib, "ggwave_setLogFile")
	purego.RegisterLibFunc(&eng.init, lib, "ggwave_init")
	purego.RegisterLibFunc(&eng.free, lib, "ggwave_free")
	purego.RegisterLibFunc(&eng.encode, lib, "ggwave_encode")
	purego.RegisterLibFunc(&eng.ndecode, lib, "ggwave_ndecode")

	eng.setLogFile(0)

	return eng, nil
}

func (e *ggwaveEngine) DefaultParameters() Parameters {
	return e.getDefaultParameters()
}

func (e *ggwaveEngine) Init(p Parameters) (Instance, error) {
	inst := e.init(p)
	if inst < 0 {
		return 0, fmt.Errorf("engine rejected parameters (code %d)", inst)
	}

	return Instance(inst), nil
}

func (e *ggwaveEngine) Free(inst Instance) {
	e.free(int32(inst))
}

func (e *ggwaveEngine) Encode(inst Instance, payload []byte, protocol Protocol, volume int, dst []byte, query bool) int {
	var queryFlag int32
	if query {
		queryFlag = 1
	}

	n := e.encode(int32(inst), bytesPtr(payload), int32(len(payload)),
		int32(protocol), int32(volume), bytesPtr(dst), queryFlag)

	return int(n)
}

func (e *ggwaveEngine) Decode(inst Instance, samples []byte, dst []byte) int {
	n := e.ndecode(int32(inst), bytesPtr(samples), int32(len(samples)),
		bytesPtr(dst), int32(len(dst)))

	return int(n)
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}

	return unsafe.Pointer(&b[0])
}
