package ectofx

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestPreferencesNormalized(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{0, 0.1},
		{-3, 0.1},
		{5, 2},
		{1.5, 1.5},
	}
	for _, tt := range tests {
		got := Preferences{Intensity: tt.in}.normalized()
		assertNear(t, "intensity", got.Intensity, tt.want)
	}
}

func TestPreferenceStoreMemoryOnly(t *testing.T) {
	ps := NewPreferenceStore(nil, discardLogger())
	if ps.Get() != DefaultPreferences() {
		t.Errorf("defaults = %+v", ps.Get())
	}
	ps.Set(Preferences{Intensity: 9, ReducedMotion: true})
	if err := ps.Save(); err != nil {
		t.Errorf("Save: %v", err)
	}
	assertNear(t, "intensity", ps.Get().Intensity, 2)
	if err := ps.Load(); err != nil {
		t.Errorf("Load: %v", err)
	}
	if ps.Get() != DefaultPreferences() {
		t.Error("memory-only Load should reset to defaults")
	}
}

// newTestManager opens a gdata manager rooted in a temporary home directory.
func newTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	m, err := gdata.Open(gdata.Config{AppName: "ectofx_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return m
}

func TestPreferenceStoreRoundTrip(t *testing.T) {
	m := newTestManager(t)

	ps := NewPreferenceStore(m, discardLogger())
	want := Preferences{Intensity: 0.5, HapticsEnabled: false, ReducedMotion: true}
	ps.Set(want)
	if err := ps.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened := NewPreferenceStore(m, discardLogger())
	if reopened.Get() != want {
		t.Errorf("loaded %+v, want %+v", reopened.Get(), want)
	}
}

func TestPreferenceStoreCorruptData(t *testing.T) {
	m := newTestManager(t)
	if err := m.SaveObjectProp(prefsObject, prefsProperty, []byte("intensity: [")); err != nil {
		t.Fatal(err)
	}
	ps := &PreferenceStore{manager: m}
	if err := ps.Load(); err == nil {
		t.Error("corrupt data: want error")
	}
	if ps.Get() != DefaultPreferences() {
		t.Errorf("corrupt data left %+v", ps.Get())
	}
}

func TestPreferenceStoreLogsToLogger(t *testing.T) {
	m := newTestManager(t)
	if err := m.SaveObjectProp(prefsObject, prefsProperty, []byte("intensity: [")); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	ps := NewPreferenceStore(m, log.New(&buf, "", 0))
	if !strings.Contains(buf.String(), "parse preferences") {
		t.Errorf("log = %q, want the parse failure", buf.String())
	}
	if ps.Get() != DefaultPreferences() {
		t.Errorf("prefs = %+v, want defaults", ps.Get())
	}
}
