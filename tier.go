package glinfo

// Tier is a coarse classification of the programmable shading capabilities of
// a driver. Tiers are ordered, a higher tier implies all lower ones.
type Tier int

const (
	TierNone Tier = iota
	Tier20
	Tier30
	Tier40
)

func (t Tier) String() string {
	switch t {
	case Tier20:
		return "2.0"
	case Tier30:
		return "3.0"
	case Tier40:
		return "4.0"
	default:
		return "None"
	}
}

// tierMarkers is ordered by decreasing capability.
var tierMarkers = []struct {
	extension string
	tier      Tier
}{
	{extension: "GL_NV_gpu_program4", tier: Tier40},
	{extension: "GL_NV_vertex_program3", tier: Tier30},
	{extension: "GL_ARB_fragment_program", tier: Tier20},
}

// ClassifyTier derives the shader tier from the extensions in the snapshot.
// The first marker extension found determines the tier.
func ClassifyTier(s Snapshot) Tier {
	for _, m := range tierMarkers {
		if s.Supported(m.extension) {
			return m.tier
		}
	}
	return TierNone
}
