package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/glinfo"
	"github.com/polyfloyd/glinfo/fakedriver"
)

func testDriver() fakedriver.Driver {
	return fakedriver.Driver{
		Strings: map[glinfo.StringName]string{
			glinfo.StringVendor:                 "Mesa",
			glinfo.StringRenderer:               "llvmpipe (LLVM 17.0.6, 256 bits)",
			glinfo.StringVersion:                "4.5 (Compatibility Profile) Mesa 24.0.5",
			glinfo.StringShadingLanguageVersion: "4.50",
			glinfo.StringExtensions:             "GL_ARB_fragment_program GL_NV_vertex_program3 GL_EXT_texture",
		},
		Indexed:     []string{"GL_ARB_fragment_program", "GL_EXT_texture"},
		UtilityName: "GLU",
		UtilityStrings: map[glinfo.StringName]string{
			glinfo.StringVersion:    "1.3",
			glinfo.StringExtensions: "GLU_EXT_nurbs_tessellator",
		},
	}
}

func execute(t *testing.T, p *fakedriver.Platform, args ...string) (string, string, error) {
	t.Helper()
	isolate(t)
	var backend string
	cmd := newRootCommand(func(name string, _ *log.Logger) (glinfo.Platform, error) {
		backend = name
		return p, nil
	})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		assert.NotEmpty(t, backend)
	}
	return stdout.String(), stderr.String(), err
}

func TestRootCommandInfo(t *testing.T) {
	p := fakedriver.New(testDriver())
	stdout, _, err := execute(t, p)
	require.NoError(t, err)

	assert.Equal(t, []glinfo.Profile{glinfo.Legacy}, p.Acquired)
	assert.Equal(t, 1, p.Released)
	assert.False(t, p.Current())

	for _, want := range []string{
		">>> OpenGL",
		"Mesa",
		"llvmpipe (LLVM 17.0.6, 256 bits)",
		"4.5 (Compatibility Profile) Mesa 24.0.5",
		"4.50",
		"legacy (single string)",
		"3.0",
		"3 total",
		">>> GLU",
		"1 total",
	} {
		assert.Contains(t, stdout, want)
	}
	assert.NotContains(t, stdout, "1. GL_ARB_fragment_program")
}

func TestRootCommandExtensions(t *testing.T) {
	p := fakedriver.New(testDriver())
	stdout, _, err := execute(t, p, "--core", "-e")
	require.NoError(t, err)
	assert.Equal(t, []glinfo.Profile{glinfo.Core}, p.Acquired)

	assert.NotContains(t, stdout, "Vendor")
	assert.Contains(t, stdout, "    1. GL_ARB_fragment_program\n")
	assert.Contains(t, stdout, "    2. GL_EXT_texture\n")
	assert.NotContains(t, stdout, "GL_NV_vertex_program3", "indexed retrieval replaces the single string")
	assert.Contains(t, stdout, "    1. GLU_EXT_nurbs_tessellator\n")
}

func TestRootCommandChecks(t *testing.T) {
	p := fakedriver.New(testDriver())
	stdout, _, err := execute(t, p, "--check", "GL_EXT_texture", "--check", "GL_EXT_tex")
	require.NoError(t, err)

	assert.Contains(t, stdout, ">>> Extension support")
	lines := strings.Split(stdout, "\n")
	assert.Contains(t, lines, " . GL_EXT_texture: supported")
	assert.Contains(t, lines, " . GL_EXT_tex: not supported")
}

func TestRootCommandFailure(t *testing.T) {
	p := fakedriver.New(testDriver())
	p.AcquireErr = errors.WithHint(errors.New("no display"), "try another backend")
	stdout, stderr, err := execute(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, glinfo.ErrContextCreationFailed))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "try another backend")

	p = fakedriver.New(testDriver())
	p.ReleaseErr = errors.New("lost context")
	stdout, _, err = execute(t, p)
	assert.Error(t, err)
	assert.Empty(t, stdout)
	assert.False(t, p.Current())

	_, _, err = execute(t, fakedriver.New(testDriver()), "--profile", "es")
	assert.Error(t, err)
}

func TestRootCommandShutdownError(t *testing.T) {
	driver := testDriver()
	n := -1
	driver.NumExtensions = &n
	p := fakedriver.New(driver)
	p.ReleaseErr = errors.New("lost context")

	stdout, stderr, err := execute(t, p, "--core", "--debug")
	require.Error(t, err)
	assert.True(t, errors.Is(err, glinfo.ErrQueryFailed))
	assert.Empty(t, stdout)
	assert.Equal(t, 1, p.Released)
	assert.Contains(t, stderr, "lost context")
}

func TestReportTruncated(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, options{info: true}, result{snapshot: glinfo.Snapshot{
		Extensions:          "GL_A ",
		ExtensionCount:      2,
		IndexedExtensions:   true,
		ExtensionsTruncated: true,
	}})
	assert.Contains(t, buf.String(), "2 total, listing truncated at 65536 bytes")
}
