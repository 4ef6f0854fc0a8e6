// Package glu exposes the informational strings of the OpenGL Utility
// Library.
package glu

// #cgo linux freebsd openbsd LDFLAGS: -lGLU
// #cgo darwin LDFLAGS: -framework OpenGL
// #cgo windows LDFLAGS: -lglu32
// #ifdef _WIN32
// #include <windows.h>
// #endif
// #ifdef __APPLE__
// #include <OpenGL/glu.h>
// #else
// #include <GL/glu.h>
// #endif
import "C"
import (
	"unsafe"
)

// Version returns the GLU version string.
func Version() (string, bool) {
	return getString(C.GLU_VERSION)
}

// Extensions returns the space separated list of GLU extensions.
func Extensions() (string, bool) {
	return getString(C.GLU_EXTENSIONS)
}

func getString(name C.GLenum) (string, bool) {
	str := C.gluGetString(name)
	if str == nil {
		return "", false
	}
	return C.GoString((*C.char)(unsafe.Pointer(str))), true
}
