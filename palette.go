package ectofx

// CelebrationType selects the palette and intensity of a celebration. The
// set is closed; unrecognized values fall back to the default palette.
type CelebrationType string

const (
	GhostCaptured  CelebrationType = "ghost_captured"
	Ecto1Unlocked  CelebrationType = "ecto1_unlocked"
	InventoryFull  CelebrationType = "inventory_full"
	CelebrationAny CelebrationType = "default"
)

// Known reports whether t is one of the named celebration types.
func (t CelebrationType) Known() bool {
	switch t {
	case GhostCaptured, Ecto1Unlocked, InventoryFull:
		return true
	}
	return false
}

// Milestone reports whether t marks a milestone (bigger burst, wider rings).
func (t CelebrationType) Milestone() bool {
	return t == Ecto1Unlocked
}

// normalize maps unknown types to CelebrationAny.
func (t CelebrationType) normalize() CelebrationType {
	if t.Known() {
		return t
	}
	return CelebrationAny
}

var (
	ectoGreen   = MustHexColor("#92F428")
	suctionCyan = MustHexColor("#00FFFF")
	failureRed  = MustHexColor("#FF4444")
)

// failurePalette colors the failure spray.
var failurePalette = []Color{
	MustHexColor("#FF4444"),
	MustHexColor("#FF6666"),
	MustHexColor("#FF8888"),
}

var celebrationPalettes = map[CelebrationType][]Color{
	GhostCaptured: {
		MustHexColor("#92F428"),
		MustHexColor("#CDDC39"),
		MustHexColor("#8BC34A"),
		MustHexColor("#4CAF50"),
	},
	Ecto1Unlocked: {
		MustHexColor("#FFD700"),
		MustHexColor("#FF6347"),
		MustHexColor("#FFA500"),
		MustHexColor("#FF4500"),
	},
	InventoryFull: {
		MustHexColor("#2196F3"),
		MustHexColor("#03DAC6"),
		MustHexColor("#00BCD4"),
		MustHexColor("#0097A7"),
	},
	CelebrationAny: {
		MustHexColor("#92F428"),
		MustHexColor("#CDDC39"),
		MustHexColor("#8BC34A"),
	},
}

// Palette returns the colors for t, applying overrides from cfg. Unknown
// types get the default palette.
func (cfg *Config) Palette(t CelebrationType) []Color {
	t = t.normalize()
	if hexes, ok := cfg.Palettes[t]; ok && len(hexes) > 0 {
		out := make([]Color, 0, len(hexes))
		for _, h := range hexes {
			if c, err := ParseHexColor(h); err == nil {
				out = append(out, c)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return celebrationPalettes[t]
}

// celebrationCount returns the primary burst size for t.
func (cfg *Config) celebrationCount(t CelebrationType) int {
	scale, ok := cfg.Celebration.TypeScale[t.normalize()]
	if !ok {
		scale = 1
	}
	return int(float64(cfg.Celebration.Particles)*scale + 0.5)
}
