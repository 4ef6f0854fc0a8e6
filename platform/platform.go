// Package platform creates the OpenGL contexts that are queried by glinfo.
//
// Two backends are available. GLFW opens a hidden window using the native
// window system while EGL creates a headless context which also works on
// machines without a display.
package platform

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/polyfloyd/glinfo"
)

const (
	GLFW = "glfw"
	EGL  = "egl"
)

// Names lists all backends accepted by New.
var Names = []string{GLFW, EGL}

// New returns the backend with the specified name. A nil logger discards all
// messages.
func New(name string, logger *log.Logger) (glinfo.Platform, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	switch strings.ToLower(name) {
	case GLFW:
		return &glfwPlatform{logger: logger.WithPrefix(GLFW)}, nil
	case EGL:
		return &eglPlatform{logger: logger.WithPrefix(EGL)}, nil
	}
	return nil, errors.Newf("unknown backend %q, valid values are: %s", name, strings.Join(Names, ", "))
}
