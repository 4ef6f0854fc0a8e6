package platform

import (
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/polyfloyd/glinfo"
	"github.com/polyfloyd/glinfo/glu"
)

type glfwPlatform struct {
	logger *log.Logger
}

type glfwContext struct {
	driver
	window *glfw.Window
}

func (c *glfwContext) Utility() glinfo.Utility {
	return gluUtility{}
}

func (p *glfwPlatform) Acquire(profile glinfo.Profile) (_ glinfo.Context, err error) {
	if err = glfw.Init(); err != nil {
		err = errors.Wrap(err, "could not initialize GLFW")
		return nil, errors.WithHint(err, "GLFW requires a display, use --backend egl on headless machines")
	}
	defer func() {
		if err != nil {
			glfw.Terminate()
		}
	}()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	if profile == glinfo.Core {
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 2)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	window, err := glfw.CreateWindow(1, 1, "glinfo", nil, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create %v window", profile)
	}
	defer func() {
		if err != nil {
			window.Destroy()
		}
	}()
	window.MakeContextCurrent()
	p.logger.Debug("Created window", "profile", profile, "glfw", glfw.GetVersionString())

	drv, err := loadDriver(profile, glfw.GetProcAddress, p.logger)
	if err != nil {
		glfw.DetachCurrentContext()
		return nil, err
	}
	return &glfwContext{driver: drv, window: window}, nil
}

func (p *glfwPlatform) Release(ctx glinfo.Context) error {
	c, ok := ctx.(*glfwContext)
	if !ok {
		return errors.Newf("context %T was not created by GLFW", ctx)
	}
	glfw.DetachCurrentContext()
	c.window.Destroy()
	glfw.Terminate()
	p.logger.Debug("Destroyed window")
	return nil
}

type gluUtility struct{}

func (gluUtility) Name() string {
	return "GLU"
}

func (gluUtility) String(name glinfo.StringName) (string, bool) {
	switch name {
	case glinfo.StringVersion:
		return glu.Version()
	case glinfo.StringExtensions:
		return glu.Extensions()
	}
	return "", false
}
