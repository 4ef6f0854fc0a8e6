// Package egl is a minimal binding to EGL which is used to create OpenGL
// contexts without a window system.
package egl

// #cgo LDFLAGS: -lEGL
// #include <stdlib.h>
// #include <EGL/egl.h>
//
// #ifndef EGL_CONTEXT_MAJOR_VERSION
// #define EGL_CONTEXT_MAJOR_VERSION 0x3098
// #endif
// #ifndef EGL_CONTEXT_MINOR_VERSION
// #define EGL_CONTEXT_MINOR_VERSION 0x30FB
// #endif
// #ifndef EGL_CONTEXT_OPENGL_PROFILE_MASK
// #define EGL_CONTEXT_OPENGL_PROFILE_MASK 0x30FD
// #endif
// #ifndef EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT
// #define EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT 0x00000001
// #endif
// #ifndef EGL_CONTEXT_OPENGL_COMPATIBILITY_PROFILE_BIT
// #define EGL_CONTEXT_OPENGL_COMPATIBILITY_PROFILE_BIT 0x00000002
// #endif
import "C"
import (
	"strings"
	"unsafe"

	"github.com/cockroachdb/errors"
)

var DefaultDisplay = NativeDisplayType(nil) // C.EGL_DEFAULT_DISPLAY

type NativeDisplayType C.EGLNativeDisplayType

type API C.EGLenum

const (
	OpenGLAPI   = C.EGL_OPENGL_API
	OpenGLESAPI = C.EGL_OPENGL_ES_API
)

type Surface struct {
	conf C.EGLConfig
	surf C.EGLSurface
}

type Display struct {
	dpy C.EGLDisplay
}

func GetDisplay(dtype NativeDisplayType) (Display, error) {
	dpy := C.eglGetDisplay(C.EGLNativeDisplayType(dtype))
	if dpy == nil {
		return Display{}, errors.New("no EGL display available")
	}
	if C.eglInitialize(dpy, nil, nil) == C.EGL_FALSE {
		return Display{}, errors.Wrap(getError(), "error initializing display")
	}
	return Display{dpy: dpy}, nil
}

// ClientAPIs retrieves a list of supported client APIs.
func (d Display) ClientAPIs() []string {
	return strings.Fields(d.queryString(C.EGL_CLIENT_APIS))
}

// Extensions retrieves the space separated list of supported extensions.
func (d Display) Extensions() (string, bool) {
	return d.queryStringOK(C.EGL_EXTENSIONS)
}

// Vendor retrieves the EGL vendor string.
func (d Display) Vendor() string {
	return d.queryString(C.EGL_VENDOR)
}

// Version retrieves the EGL version string.
func (d Display) Version() (string, bool) {
	return d.queryStringOK(C.EGL_VERSION)
}

func (d Display) queryString(name C.EGLint) string {
	str, _ := d.queryStringOK(name)
	return str
}

func (d Display) queryStringOK(name C.EGLint) (string, bool) {
	str := C.eglQueryString(d.dpy, name)
	if str == nil {
		return "", false
	}
	return C.GoString(str), true
}

func (d Display) Destroy() error {
	if C.eglTerminate(d.dpy) == C.EGL_FALSE {
		return errors.Wrap(getError(), "error terminating display")
	}
	return nil
}

// CreateSurface creates an offscreen pixel buffer surface which is renderable
// by desktop OpenGL.
func (d Display) CreateSurface(width, height uint) (Surface, error) {
	configAttribs := []C.EGLint{
		C.EGL_SURFACE_TYPE, C.EGL_PBUFFER_BIT,
		C.EGL_BLUE_SIZE, 8,
		C.EGL_GREEN_SIZE, 8,
		C.EGL_RED_SIZE, 8,
		C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_BIT,
		C.EGL_NONE,
	}
	pbufferAttribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(width),
		C.EGL_HEIGHT, C.EGLint(height),
		C.EGL_NONE,
	}
	var numConfigs C.EGLint
	var eglCfg C.EGLConfig
	if C.eglChooseConfig(d.dpy, &configAttribs[0], &eglCfg, 1, &numConfigs) == C.EGL_FALSE {
		return Surface{}, errors.Wrap(getError(), "error choosing config")
	}
	if numConfigs == 0 {
		return Surface{}, errors.New("no EGL config supports OpenGL pixel buffers")
	}

	eglSurf := C.eglCreatePbufferSurface(d.dpy, eglCfg, &pbufferAttribs[0])
	if eglSurf == nil {
		return Surface{}, errors.Wrap(getError(), "error creating pixel buffer surface")
	}
	return Surface{
		conf: eglCfg,
		surf: eglSurf,
	}, nil
}

func (d Display) DestroySurface(surface Surface) error {
	if C.eglDestroySurface(d.dpy, surface.surf) == C.EGL_FALSE {
		return errors.Wrap(getError(), "error destroying surface")
	}
	return nil
}

func (d Display) BindAPI(api API) error {
	if C.eglBindAPI(C.EGLenum(api)) == C.EGL_FALSE {
		return errors.Wrap(getError(), "error binding API")
	}
	return nil
}

// ContextAttribs describes the OpenGL context to create. A zero Major leaves
// the version up to the implementation.
type ContextAttribs struct {
	Major, Minor int
	Core         bool
}

func (attrs ContextAttribs) list() []C.EGLint {
	if attrs.Major == 0 {
		return []C.EGLint{C.EGL_NONE}
	}
	// Profiles only exist for OpenGL 3.2 and later.
	mask := C.EGLint(C.EGL_CONTEXT_OPENGL_COMPATIBILITY_PROFILE_BIT)
	if attrs.Core {
		mask = C.EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT
	}
	return []C.EGLint{
		C.EGL_CONTEXT_MAJOR_VERSION, C.EGLint(attrs.Major),
		C.EGL_CONTEXT_MINOR_VERSION, C.EGLint(attrs.Minor),
		C.EGL_CONTEXT_OPENGL_PROFILE_MASK, mask,
		C.EGL_NONE,
	}
}

func (d Display) CreateContext(surface Surface, attrs ContextAttribs) (Context, error) {
	attribList := attrs.list()
	context := C.eglCreateContext(d.dpy, surface.conf, nil, &attribList[0])
	if context == nil {
		return Context{}, errors.Wrapf(getError(), "error creating OpenGL %d.%d context", attrs.Major, attrs.Minor)
	}
	return Context{
		Display: d,
		Surface: surface,
		context: context,
	}, nil
}

type Context struct {
	Display Display
	Surface Surface

	context C.EGLContext
}

func (cx Context) MakeCurrent() error {
	if C.eglMakeCurrent(cx.Display.dpy, cx.Surface.surf, cx.Surface.surf, cx.context) == C.EGL_FALSE {
		return errors.Wrap(getError(), "error making context current")
	}
	return nil
}

// Release detaches the current context from the calling thread.
func (cx Context) Release() error {
	if C.eglMakeCurrent(cx.Display.dpy, nil, nil, nil) == C.EGL_FALSE {
		return errors.Wrap(getError(), "error releasing context")
	}
	return nil
}

func (cx Context) Destroy() error {
	if C.eglDestroyContext(cx.Display.dpy, cx.context) == C.EGL_FALSE {
		return errors.Wrap(getError(), "error destroying context")
	}
	return nil
}

// GetProcAddress looks up an OpenGL function. It is suitable for the
// InitWithProcAddrFunc functions of the go-gl packages.
func GetProcAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return unsafe.Pointer(C.eglGetProcAddress(cname))
}

var errorMessages = map[C.EGLint]string{
	C.EGL_NOT_INITIALIZED:     "EGL is not initialized for the display connection",
	C.EGL_BAD_ACCESS:          "EGL cannot access a requested resource",
	C.EGL_BAD_ALLOC:           "EGL failed to allocate resources",
	C.EGL_BAD_ATTRIBUTE:       "unrecognized attribute or attribute value",
	C.EGL_BAD_CONTEXT:         "invalid EGL rendering context",
	C.EGL_BAD_CONFIG:          "invalid EGL frame buffer configuration",
	C.EGL_BAD_CURRENT_SURFACE: "the current surface is no longer valid",
	C.EGL_BAD_DISPLAY:         "invalid EGL display connection",
	C.EGL_BAD_SURFACE:         "invalid EGL surface",
	C.EGL_BAD_MATCH:           "inconsistent arguments",
	C.EGL_BAD_PARAMETER:       "invalid argument value",
	C.EGL_BAD_NATIVE_PIXMAP:   "invalid native pixmap",
	C.EGL_BAD_NATIVE_WINDOW:   "invalid native window",
	C.EGL_CONTEXT_LOST:        "the context was lost due to a power management event",
}

// getError returns the last EGL error of the calling thread. It never
// returns nil, callers should only use it after a call has failed.
func getError() error {
	code := C.eglGetError()
	if msg, ok := errorMessages[code]; ok {
		return errors.Newf("%s (0x%04x)", msg, int(code))
	}
	return errors.Newf("unknown EGL error 0x%04x", int(code))
}
