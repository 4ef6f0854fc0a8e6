package platform

import (
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/polyfloyd/glinfo"
	"github.com/polyfloyd/glinfo/egl"
)

type eglPlatform struct {
	logger *log.Logger
}

type eglContext struct {
	driver
	display egl.Display
	surface egl.Surface
	context egl.Context
}

func (c *eglContext) Utility() glinfo.Utility {
	return eglUtility{display: c.display}
}

func contextAttribs(profile glinfo.Profile) egl.ContextAttribs {
	if profile == glinfo.Core {
		return egl.ContextAttribs{Major: 3, Minor: 2, Core: true}
	}
	return egl.ContextAttribs{}
}

func (p *eglPlatform) Acquire(profile glinfo.Profile) (_ glinfo.Context, err error) {
	display, err := egl.GetDisplay(egl.DefaultDisplay)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			display.Destroy()
		}
	}()
	p.logger.Debug("Initialized display", "vendor", display.Vendor(), "apis", display.ClientAPIs())

	surface, err := display.CreateSurface(1, 1)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			display.DestroySurface(surface)
		}
	}()

	if err = display.BindAPI(egl.OpenGLAPI); err != nil {
		return nil, err
	}
	context, err := display.CreateContext(surface, contextAttribs(profile))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			context.Destroy()
		}
	}()

	if err = context.MakeCurrent(); err != nil {
		return nil, err
	}
	p.logger.Debug("Created context", "profile", profile)

	drv, err := loadDriver(profile, egl.GetProcAddress, p.logger)
	if err != nil {
		context.Release()
		return nil, err
	}
	return &eglContext{
		driver:  drv,
		display: display,
		surface: surface,
		context: context,
	}, nil
}

func (p *eglPlatform) Release(ctx glinfo.Context) error {
	c, ok := ctx.(*eglContext)
	if !ok {
		return errors.Newf("context %T was not created by EGL", ctx)
	}
	// Every step is attempted so a failure does not leak the rest.
	err := c.context.Release()
	err = errors.CombineErrors(err, c.context.Destroy())
	err = errors.CombineErrors(err, c.display.DestroySurface(c.surface))
	err = errors.CombineErrors(err, c.display.Destroy())
	if err != nil {
		return err
	}
	p.logger.Debug("Destroyed context")
	return nil
}

type eglUtility struct {
	display egl.Display
}

func (eglUtility) Name() string {
	return "EGL"
}

func (u eglUtility) String(name glinfo.StringName) (string, bool) {
	switch name {
	case glinfo.StringVersion:
		return u.display.Version()
	case glinfo.StringExtensions:
		return u.display.Extensions()
	}
	return "", false
}
