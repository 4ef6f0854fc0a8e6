package glinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTier(t *testing.T) {
	cases := []struct {
		corpus string
		expect Tier
	}{
		{corpus: "", expect: TierNone},
		{corpus: "GL_ARB_multitexture ", expect: TierNone},
		{corpus: "GL_ARB_fragment_program ", expect: Tier20},
		{corpus: "GL_ARB_fragment_program_shadow ", expect: TierNone},
		{corpus: "GL_ARB_fragment_program GL_NV_vertex_program3 ", expect: Tier30},
		{corpus: "GL_NV_vertex_program3 GL_NV_gpu_program4 ", expect: Tier40},
		{corpus: "GL_NV_gpu_program4 ", expect: Tier40},
		{corpus: "GL_NV_gpu_program4_1 GL_ARB_fragment_program ", expect: Tier20},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, ClassifyTier(Snapshot{Extensions: c.corpus}), "corpus %q", c.corpus)
	}
}

func TestTierOrdering(t *testing.T) {
	assert.Less(t, TierNone, Tier20)
	assert.Less(t, Tier20, Tier30)
	assert.Less(t, Tier30, Tier40)
	assert.Equal(t, "None", TierNone.String())
	assert.Equal(t, "4.0", Tier40.String())
}
