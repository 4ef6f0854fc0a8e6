package platform

import (
	"unsafe"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	gl21 "github.com/go-gl/gl/v2.1/gl"
	gl32 "github.com/go-gl/gl/v3.2-core/gl"

	"github.com/polyfloyd/glinfo"
)

var stringEnums = map[glinfo.StringName]uint32{
	glinfo.StringVendor:                 gl32.VENDOR,
	glinfo.StringRenderer:               gl32.RENDERER,
	glinfo.StringVersion:                gl32.VERSION,
	glinfo.StringShadingLanguageVersion: gl32.SHADING_LANGUAGE_VERSION,
	glinfo.StringExtensions:             gl32.EXTENSIONS,
}

type procAddrFunc func(name string) unsafe.Pointer

// driver issues queries against the current context through the go-gl
// bindings that were loaded for it.
type driver struct {
	// core is set if the v3.2-core bindings were loaded, otherwise the
	// v2.1 bindings are used.
	core bool
}

// loadDriver loads the OpenGL functions of the current context.
//
// Core contexts are requested as 3.2, so the v3.2-core bindings are loaded
// for them. Indexed extension retrieval requires glGetStringi. Only if it
// can not be resolved, the legacy bindings are loaded instead and extensions
// are read from the single extension string while the context remains a
// core profile context.
func loadDriver(profile glinfo.Profile, procAddr procAddrFunc, logger *log.Logger) (driver, error) {
	if profile == glinfo.Core {
		if procAddr("glGetStringi") != nil {
			if err := gl32.InitWithProcAddrFunc(procAddr); err != nil {
				return driver{}, errors.Wrap(err, "could not load OpenGL 3.2 core functions")
			}
			logger.Debug("Loaded OpenGL 3.2 core functions")
			return driver{core: true}, nil
		}
		logger.Warn("glGetStringi is not available, falling back to the single extension string")
	}

	if err := gl21.InitWithProcAddrFunc(procAddr); err != nil {
		return driver{}, errors.Wrap(err, "could not load OpenGL functions")
	}
	logger.Debug("Loaded OpenGL 2.1 functions")
	return driver{}, nil
}

func (d driver) String(name glinfo.StringName) (string, bool) {
	enum, ok := stringEnums[name]
	if !ok {
		return "", false
	}
	var str *uint8
	if d.core {
		str = gl32.GetString(enum)
	} else {
		str = gl21.GetString(enum)
	}
	if str == nil {
		return "", false
	}
	return gl32.GoStr(str), true
}

func (d driver) IndexedExtensions() bool {
	return d.core
}

func (d driver) NumExtensions() int {
	if !d.core {
		return 0
	}
	var n int32
	gl32.GetIntegerv(gl32.NUM_EXTENSIONS, &n)
	return int(n)
}

func (d driver) Extension(i int) (string, bool) {
	if !d.core || i < 0 {
		return "", false
	}
	str := gl32.GetStringi(gl32.EXTENSIONS, uint32(i))
	if str == nil {
		return "", false
	}
	return gl32.GoStr(str), true
}
