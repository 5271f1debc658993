package ectofx

import "testing"

func TestPaletteLookup(t *testing.T) {
	cfg := testConfig()
	for _, kind := range []CelebrationType{GhostCaptured, Ecto1Unlocked, InventoryFull} {
		if len(cfg.Palette(kind)) == 0 {
			t.Errorf("%s: empty palette", kind)
		}
	}
	got := cfg.Palette("no_such_type")
	want := cfg.Palette(CelebrationAny)
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("unknown type palette = %v, want default", got)
	}
	if cfg.Palette(Ecto1Unlocked)[0] != MustHexColor("#FFD700") {
		t.Error("ecto1 palette should lead with gold")
	}
}

func TestPaletteOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Palettes = map[CelebrationType][]string{
		InventoryFull: {"#000000", "not a color"},
		GhostCaptured: {"bogus"},
	}
	if got := cfg.Palette(InventoryFull); len(got) != 1 || got[0] != (Color{0, 0, 0, 1}) {
		t.Errorf("override = %v", got)
	}
	// an override with no valid colors falls back to the built-in palette
	if got := cfg.Palette(GhostCaptured); got[0] != ectoGreen {
		t.Errorf("fallback = %v", got)
	}
}

func TestCelebrationTypeFlags(t *testing.T) {
	if !Ecto1Unlocked.Milestone() || GhostCaptured.Milestone() {
		t.Error("milestone flag")
	}
	if CelebrationType("x").Known() || !InventoryFull.Known() {
		t.Error("known flag")
	}
}

func TestCelebrationCount(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		kind CelebrationType
		want int
	}{
		{GhostCaptured, 150},
		{Ecto1Unlocked, 200},
		{InventoryFull, 120},
		{"whatever", 105},
	}
	for _, tt := range tests {
		if got := cfg.celebrationCount(tt.kind); got != tt.want {
			t.Errorf("celebrationCount(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#FF0000", Color{1, 0, 0, 1}, true},
		{"00ff00", Color{0, 1, 0, 1}, true},
		{"#XYZ", Color{}, false},
		{"#12345", Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHexColor(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
