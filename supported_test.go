package glinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupported(t *testing.T) {
	cases := []struct {
		name   string
		corpus string
		token  string
		expect bool
	}{
		{name: "single token", corpus: "GL_EXT_foo", token: "GL_EXT_foo", expect: true},
		{name: "single token trailing space", corpus: "GL_EXT_foo ", token: "GL_EXT_foo", expect: true},
		{name: "first", corpus: "GL_EXT_foo GL_EXT_bar ", token: "GL_EXT_foo", expect: true},
		{name: "last", corpus: "GL_EXT_bar GL_EXT_foo", token: "GL_EXT_foo", expect: true},
		{name: "middle", corpus: "GL_A GL_EXT_foo GL_B ", token: "GL_EXT_foo", expect: true},
		{name: "prefix of longer", corpus: "GL_EXT_foobar GL_EXT_baz", token: "GL_EXT_foo", expect: false},
		{name: "suffix of longer", corpus: "GL_ARB_shader_objects GL_EXT_baz", token: "shader_objects", expect: false},
		{name: "tail match after prefix", corpus: "GL_EXT_foo GL_EXT_foobar", token: "GL_EXT_foobar", expect: true},
		{name: "later exact after partial", corpus: "GL_ARB_shader_objects2 GL_ARB_shader_objects ", token: "GL_ARB_shader_objects", expect: true},
		{name: "only longer present", corpus: "GL_ARB_shader_objects2 ", token: "GL_ARB_shader_objects", expect: false},
		{name: "repeated without separator", corpus: "foofoo", token: "foo", expect: false},
		{name: "overlapping occurrences", corpus: "aaa aa", token: "aa", expect: true},
		{name: "empty corpus", corpus: "", token: "GL_EXT_foo", expect: false},
		{name: "empty token", corpus: "GL_EXT_foo ", token: "", expect: false},
		{name: "token with space", corpus: "foo bar", token: "foo bar", expect: false},
		{name: "token longer than corpus", corpus: "GL", token: "GL_EXT_foo", expect: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, Supported(c.corpus, c.token))
		})
	}
}

func TestSupportedMatchesFields(t *testing.T) {
	corpus := "GL_ARB_multitexture GL_ARB_multitexture_ext GL_EXT_texture GL_EXT_texture3D texture GL_NV_fence "
	names := strings.Fields(corpus)
	candidates := append([]string{"GL_ARB", "multitexture", "GL_EXT_texture3", "GL_NV_fence_", "fence"}, names...)

	for _, cand := range candidates {
		expect := false
		for _, n := range names {
			if n == cand {
				expect = true
			}
		}
		assert.Equal(t, expect, Supported(corpus, cand), "candidate %q", cand)
	}
}
