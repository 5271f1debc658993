package ectofx

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences are user-facing settings that change how loud the effects are.
// They persist across sessions; effect state never does.
type Preferences struct {
	// Intensity scales every spawn count. Clamped to [0.1, 2].
	Intensity float64 `yaml:"intensity"`
	// HapticsEnabled gates the celebration vibration.
	HapticsEnabled bool `yaml:"hapticsEnabled"`
	// ReducedMotion stops the beam pulse and the sparkle twinkle.
	ReducedMotion bool `yaml:"reducedMotion"`
}

// DefaultPreferences returns full intensity with haptics on.
func DefaultPreferences() Preferences {
	return Preferences{
		Intensity:      1,
		HapticsEnabled: true,
	}
}

func (p Preferences) normalized() Preferences {
	switch {
	case p.Intensity < 0.1:
		p.Intensity = 0.1
	case p.Intensity > 2:
		p.Intensity = 2
	}
	return p
}

const (
	prefsObject   = "ectofx"
	prefsProperty = "preferences"
)

// PreferenceStore loads and saves Preferences through a gdata manager. A nil
// manager keeps everything in memory.
type PreferenceStore struct {
	manager *gdata.Manager
	log     *log.Logger
	prefs   Preferences
}

// OpenPreferenceStore opens the platform data directory for appName. If
// storage is unavailable the store degrades to memory-only and the error is
// logged to logger. A nil logger writes to stderr.
func OpenPreferenceStore(appName string, logger *log.Logger) *PreferenceStore {
	if logger == nil {
		logger = defaultLogger()
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Printf("preferences: storage unavailable: %v (memory only)", err)
		m = nil
	}
	return NewPreferenceStore(m, logger)
}

// NewPreferenceStore wraps manager (which may be nil) and loads any saved
// preferences. Load failures fall back to defaults and go to logger.
func NewPreferenceStore(manager *gdata.Manager, logger *log.Logger) *PreferenceStore {
	if logger == nil {
		logger = defaultLogger()
	}
	ps := &PreferenceStore{manager: manager, log: logger, prefs: DefaultPreferences()}
	if err := ps.Load(); err != nil {
		ps.log.Printf("preferences: %v (using defaults)", err)
	}
	return ps
}

// Load reads the saved preferences. Missing data is not an error.
func (ps *PreferenceStore) Load() error {
	ps.prefs = DefaultPreferences()
	if ps.manager == nil || !ps.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := ps.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse preferences: %w", err)
	}
	ps.prefs = loaded.normalized()
	return nil
}

// Save writes the current preferences. Memory-only stores return nil.
func (ps *PreferenceStore) Save() error {
	if ps.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(ps.prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := ps.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Get returns the current preferences.
func (ps *PreferenceStore) Get() Preferences {
	return ps.prefs
}

// Set replaces the current preferences in memory. Call Save to persist.
func (ps *PreferenceStore) Set(p Preferences) {
	ps.prefs = p.normalized()
}
