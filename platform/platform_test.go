package platform

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/glinfo"
)

// initTestEngine returns an engine with an active context for the backend.
// The test is skipped if the machine can not provide one.
func initTestEngine(t *testing.T, backend string, profile glinfo.Profile) *glinfo.Engine {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	platform, err := New(backend, nil)
	require.NoError(t, err)
	engine, err := glinfo.New(profile, platform)
	require.NoError(t, err)
	if err := engine.CreateContext(); err != nil {
		t.Skipf("no %s %v context available: %v", backend, profile, err)
	}
	t.Cleanup(func() {
		assert.NoError(t, engine.Shutdown())
	})
	return engine
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		p, err := New(name, nil)
		require.NoError(t, err)
		assert.NotNil(t, p)
	}
	p, err := New("EGL", nil)
	require.NoError(t, err)
	assert.IsType(t, &eglPlatform{}, p)

	_, err = New("wayland", nil)
	assert.Error(t, err)
}

type foreignContext struct {
	driver
}

func (foreignContext) Utility() glinfo.Utility {
	return nil
}

func TestReleaseForeignContext(t *testing.T) {
	for _, name := range Names {
		p, err := New(name, nil)
		require.NoError(t, err)
		assert.Error(t, p.Release(foreignContext{}), "backend %s", name)
	}
}

func TestReleaseEGLReportsErrors(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	p, err := New(EGL, nil)
	require.NoError(t, err)
	ctx, err := p.Acquire(glinfo.Legacy)
	if err != nil {
		t.Skipf("no EGL context available: %v", err)
	}
	require.NoError(t, p.Release(ctx))
	// The display is terminated, so destroying the context again must fail.
	assert.Error(t, p.Release(ctx))
}

func TestQuery(t *testing.T) {
	for _, backend := range Names {
		for _, profile := range []glinfo.Profile{glinfo.Legacy, glinfo.Core} {
			t.Run(backend+"/"+profile.String(), func(t *testing.T) {
				engine := initTestEngine(t, backend, profile)
				require.NoError(t, engine.Query())

				snap := engine.Snapshot()
				assert.NotEmpty(t, snap.VersionString)
				assert.Greater(t, snap.Version.Major, 0)
				tokens := strings.Count(snap.Extensions, " ")
				if snap.ExtensionsTruncated {
					assert.GreaterOrEqual(t, snap.ExtensionCount, tokens)
				} else {
					assert.Equal(t, snap.ExtensionCount, tokens)
				}
				for _, ext := range snap.ExtensionList() {
					if !engine.Supported(ext) {
						t.Fatalf("%q is listed but not supported", ext)
					}
				}
			})
		}
	}
}
