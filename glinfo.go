// Package glinfo queries an OpenGL driver for its vendor, version and
// extension information.
//
// The query pipeline is:
//
//	New -> CreateContext -> Query -> Supported... -> DestroyContext -> Shutdown
//
// An Engine and the context it creates are bound to the OS thread that
// created them, callers should use runtime.LockOSThread.
package glinfo

import (
	"github.com/cockroachdb/errors"
)

type state int

const (
	stateInitialized state = iota
	stateActive
	stateDestroyed
)

// Engine drives a single rendering context through its lifecycle and collects
// the information reported by the driver.
type Engine struct {
	profile  Profile
	platform Platform

	state    state
	ctx      Context
	snapshot Snapshot
}

// New prepares an engine for the profile. It does not communicate with the
// driver.
func New(profile Profile, platform Platform) (*Engine, error) {
	if !profile.valid() {
		return nil, errors.Wrapf(ErrAllocationFailed, "invalid profile %v", profile)
	}
	if platform == nil {
		return nil, errors.Wrap(ErrAllocationFailed, "no platform")
	}
	return &Engine{
		profile:  profile,
		platform: platform,
		state:    stateInitialized,
	}, nil
}

// Profile returns the profile the engine was created with.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Active reports whether the engine has a live rendering context.
func (e *Engine) Active() bool {
	return e != nil && e.state == stateActive
}

// CreateContext acquires a rendering context from the platform.
func (e *Engine) CreateContext() error {
	if e == nil || e.state == stateDestroyed {
		return ErrShutdown
	}
	if e.state == stateActive {
		return ErrAlreadyActive
	}
	ctx, err := e.platform.Acquire(e.profile)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "acquire %v context", e.profile), ErrContextCreationFailed)
	}
	e.ctx = ctx
	e.state = stateActive
	return nil
}

// Query reads all information from the driver and replaces the current
// snapshot with it. The snapshot is left untouched if an error is returned.
func (e *Engine) Query() error {
	if e == nil || e.state == stateDestroyed {
		return ErrShutdown
	}
	if e.state != stateActive {
		return ErrNotActive
	}

	snap := Snapshot{
		Profile:       e.profile,
		Vendor:        getString(e.ctx, StringVendor, MaxInfoLength),
		Renderer:      getString(e.ctx, StringRenderer, MaxInfoLength),
		VersionString: getString(e.ctx, StringVersion, MaxInfoLength),
	}
	snap.Version = ParseVersion(snap.VersionString)

	// The shading language did not exist before OpenGL 2.0.
	snap.ShadingLanguageVersionString = ShadingLanguageNone
	if snap.Version.Major >= 2 {
		if glsl := getString(e.ctx, StringShadingLanguageVersion, MaxInfoLength); glsl != "" {
			snap.ShadingLanguageVersionString = glsl
			snap.ShadingLanguageVersion = ParseShadingLanguageVersion(glsl)
		}
	}

	if e.profile == Core && e.ctx.IndexedExtensions() {
		corpus, count, truncated, err := indexedExtensions(e.ctx)
		if err != nil {
			return err
		}
		snap.Extensions, snap.ExtensionCount, snap.ExtensionsTruncated = corpus, count, truncated
		snap.IndexedExtensions = true
	} else {
		raw, _ := e.ctx.String(StringExtensions)
		snap.Extensions, snap.ExtensionCount, snap.ExtensionsTruncated = normalizeCorpus(raw)
	}

	if util := e.ctx.Utility(); util != nil {
		snap.UtilityName = util.Name()
		snap.UtilityVersionString = getString(util, StringVersion, MaxInfoLength)
		raw, _ := util.String(StringExtensions)
		snap.UtilityExtensions, snap.UtilityExtensionCount, _ = normalizeCorpus(raw)
	}

	e.snapshot = snap
	return nil
}

func getString(s Strings, name StringName, max int) string {
	str, ok := s.String(name)
	if !ok {
		return ""
	}
	return truncate(str, max)
}

// indexedExtensions builds the corpus one name at a time. The returned count
// is the total reported by the driver. Names the driver does not return are
// treated as empty and skipped.
func indexedExtensions(ctx Context) (corpus string, count int, truncated bool, err error) {
	total := ctx.NumExtensions()
	if total < 0 {
		return "", 0, false, errors.Mark(errors.Newf("driver reported %d extensions", total), ErrQueryFailed)
	}
	var cb corpusBuilder
	for i := 0; i < total; i++ {
		name, _ := ctx.Extension(i)
		cb.add(name)
	}
	return cb.String(), total, cb.full, nil
}

// Snapshot returns the result of the last successful query.
func (e *Engine) Snapshot() Snapshot {
	if e == nil {
		return Snapshot{}
	}
	return e.snapshot
}

// Supported reports whether the extension was found by the last query. It
// returns false if the engine has no active context.
func (e *Engine) Supported(extension string) bool {
	if !e.Active() {
		return false
	}
	return e.snapshot.Supported(extension)
}

// DestroyContext releases the active rendering context. The engine is
// considered inactive afterwards even if the platform reports an error.
func (e *Engine) DestroyContext() error {
	if e == nil || e.state == stateDestroyed {
		return ErrShutdown
	}
	if e.state != stateActive {
		return ErrNotActive
	}
	ctx := e.ctx
	e.ctx = nil
	e.state = stateInitialized
	if err := e.platform.Release(ctx); err != nil {
		return errors.Wrapf(err, "release %v context", e.profile)
	}
	return nil
}

// Shutdown destroys the rendering context if it is still active and discards
// the snapshot. The engine can not be used afterwards.
func (e *Engine) Shutdown() error {
	if e == nil || e.state == stateDestroyed {
		return ErrShutdown
	}
	var err error
	if e.state == stateActive {
		err = e.DestroyContext()
	}
	e.state = stateDestroyed
	e.snapshot = Snapshot{}
	e.platform = nil
	return err
}
