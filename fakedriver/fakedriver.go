// Package fakedriver provides an in-memory glinfo.Platform which reports
// preconfigured driver information. It is meant for tests.
package fakedriver

import (
	"github.com/cockroachdb/errors"

	"github.com/polyfloyd/glinfo"
)

// Driver describes what the fake driver reports. Strings that are absent
// from a map are reported as missing, like a NULL returned by the driver.
type Driver struct {
	Strings map[glinfo.StringName]string

	// Indexed holds the extensions that are returned by index for the Core
	// profile. Indexed retrieval is unavailable if it is nil.
	Indexed []string
	// NumExtensions overrides the number of indexed extensions reported if
	// it is not nil.
	NumExtensions *int

	// UtilityName enables the utility library if it is not empty.
	UtilityName    string
	UtilityStrings map[glinfo.StringName]string
}

// Platform hands out contexts for a Driver and keeps track of their
// lifecycle.
type Platform struct {
	Driver Driver

	// AcquireErr and ReleaseErr are returned by Acquire and Release if set.
	AcquireErr error
	ReleaseErr error

	Acquired []glinfo.Profile
	Released int
	current  *Context
}

// New returns a platform for the driver.
func New(driver Driver) *Platform {
	return &Platform{Driver: driver}
}

func (p *Platform) Acquire(profile glinfo.Profile) (glinfo.Context, error) {
	if p.AcquireErr != nil {
		return nil, p.AcquireErr
	}
	if p.current != nil {
		return nil, errors.New("fakedriver: a context is already current")
	}
	p.Acquired = append(p.Acquired, profile)
	p.current = &Context{
		driver:  &p.Driver,
		indexed: profile == glinfo.Core && p.Driver.Indexed != nil,
	}
	return p.current, nil
}

func (p *Platform) Release(ctx glinfo.Context) error {
	if ctx != p.current || p.current == nil {
		return errors.New("fakedriver: released context is not current")
	}
	p.current = nil
	p.Released++
	return p.ReleaseErr
}

// Current reports whether a context is acquired and not yet released.
func (p *Platform) Current() bool {
	return p.current != nil
}

// Context is the glinfo.Context returned by Platform.
type Context struct {
	driver  *Driver
	indexed bool
	// Calls counts the driver queries issued through this context.
	Calls int
}

func (c *Context) String(name glinfo.StringName) (string, bool) {
	c.Calls++
	str, ok := c.driver.Strings[name]
	return str, ok
}

func (c *Context) IndexedExtensions() bool {
	return c.indexed
}

func (c *Context) NumExtensions() int {
	c.Calls++
	if c.driver.NumExtensions != nil {
		return *c.driver.NumExtensions
	}
	return len(c.driver.Indexed)
}

func (c *Context) Extension(i int) (string, bool) {
	c.Calls++
	if i < 0 || i >= len(c.driver.Indexed) {
		return "", false
	}
	return c.driver.Indexed[i], true
}

func (c *Context) Utility() glinfo.Utility {
	if c.driver.UtilityName == "" {
		return nil
	}
	return utility{driver: c.driver}
}

type utility struct {
	driver *Driver
}

func (u utility) Name() string {
	return u.driver.UtilityName
}

func (u utility) String(name glinfo.StringName) (string, bool) {
	str, ok := u.driver.UtilityStrings[name]
	return str, ok
}
