package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"radialmenu/internal/errors"
	"radialmenu/internal/geometry"
	"radialmenu/internal/log"

	"gopkg.in/yaml.v3"
)

// File names of the configuration document. The legacy JSON document is
// only read, and migrated to YAML on first load.
const (
	FileName       = "radial_config.yaml"
	LegacyFileName = "radial_config.json"
)

// Defaults and limits.
const (
	DefaultCombo          = "alt+x"
	DefaultMainRadius     = 60
	DefaultTimerInterval  = 25
	DefaultTheme          = "black_red"
	DefaultSubmenuRadius  = 110
	DefaultThresholdRatio = 0.6
	DefaultItemSize       = 30
	DefaultDebounce       = 3

	MinMainRadius    = 10
	MinSubmenuRadius = 20
	MinTimerInterval = 5
	MinThreshold     = 0.1
	MaxThreshold     = 1.0
	MinItemSize      = 10
	MaxItemSize      = 100
	MaxItems         = 9
)

// ActionType says what committing an action does.
type ActionType string

const (
	Hotkey        ActionType = "hotkey"
	Text          ActionType = "text"
	HotkeyAndText ActionType = "hotkey_and_text"
)

// Valid reports whether t is a known action type.
func (t ActionType) Valid() bool {
	return t == Hotkey || t == Text || t == HotkeyAndText
}

// Action is one entry of a sub-wheel.
type Action struct {
	Label string     `yaml:"label"`
	Type  ActionType `yaml:"type"`
	Keys  string     `yaml:"keys,omitempty"`
	Value string     `yaml:"value,omitempty"`
}

// Selectable reports whether the action carries anything to send.
func (a Action) Selectable() bool {
	return a.Keys != "" || a.Value != ""
}

// DirectionConfig configures one of the four sub-wheels.
type DirectionConfig struct {
	Label          string   `yaml:"label"`
	Items          []Action `yaml:"items"`
	SubmenuRadius  int      `yaml:"submenu_radius"`
	ThresholdRatio float64  `yaml:"threshold_ratio"`
	ItemSize       int      `yaml:"item_size"`
}

// Directions holds exactly the four fixed directions.
type Directions struct {
	North DirectionConfig `yaml:"north"`
	East  DirectionConfig `yaml:"east"`
	South DirectionConfig `yaml:"south"`
	West  DirectionConfig `yaml:"west"`
}

// Get returns the configuration slot of d.
func (ds *Directions) Get(d geometry.Direction) *DirectionConfig {
	switch d {
	case geometry.North:
		return &ds.North
	case geometry.East:
		return &ds.East
	case geometry.South:
		return &ds.South
	case geometry.West:
		return &ds.West
	}
	return nil
}

// Debounce holds the debounce depths per input kind.
type Debounce struct {
	Keyboard int `yaml:"keyboard"`
	Mouse    int `yaml:"mouse"`
}

// Config is the fully defaulted configuration document. A loaded Config is
// treated as immutable; reloads build a new one.
type Config struct {
	Activation struct {
		Combo    string   `yaml:"combo"`
		Debounce Debounce `yaml:"debounce"`
	} `yaml:"activation"`
	Visual struct {
		MainRadius      int    `yaml:"main_radius"`
		TimerIntervalMS int    `yaml:"timer_interval_ms"`
		Theme           string `yaml:"theme"`
	} `yaml:"visual"`
	Directions Directions `yaml:"directions"`
}

// ActivationCombo returns the normalized activation combo.
func (c *Config) ActivationCombo() string {
	return c.Activation.Combo
}

// MainRadius is the root wheel radius and crossing threshold.
func (c *Config) MainRadius() int {
	return c.Visual.MainRadius
}

// PollInterval is the activation sampling period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Visual.TimerIntervalMS) * time.Millisecond
}

// Direction returns a copy of the configuration of d.
func (c *Config) Direction(d geometry.Direction) DirectionConfig {
	if dc := c.Directions.Get(d); dc != nil {
		return *dc
	}
	return defaultDirection(d)
}

// SubRadius is the ring radius of d's sub-wheel, kept clear of the main
// circle.
func (c *Config) SubRadius(d geometry.Direction) int {
	dc := c.Direction(d)
	return geometry.EffectiveSubRadius(dc.SubmenuRadius, c.Visual.MainRadius, dc.ItemSize)
}

// Threshold is the radius of the visual threshold ring for d. The menu
// transition itself always uses MainRadius.
func (c *Config) Threshold(d geometry.Direction) int {
	return int(float64(c.Visual.MainRadius) * c.Direction(d).ThresholdRatio)
}

// DefaultPath returns the document path beside the running executable, or
// in the working directory when the executable cannot be located.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// LoadConfigFile loads the document at path. A missing document is created
// with defaults, after migrating a legacy JSON document beside it if there
// is one. An unparsable document is backed up and replaced with defaults.
// Defaulted fields are logged as warnings and never fail the load.
func LoadConfigFile(path string) (*Config, error) {
	data, source, err := readDocument(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.LogWithError(err).Warn("Cannot read configuration, using defaults")
		}
		cfg := New()
		if err := SaveConfig(cfg, path); err != nil {
			return cfg, err
		}
		log.LogWithFields(log.F("path", path)).Info("Wrote default configuration")
		return cfg, nil
	}

	cfg, warnings, err := Parse(data)
	if err != nil {
		log.LogWithError(err).Warn("Configuration is not valid, replacing it with defaults")
		backup(source, data)
		cfg = New()
		return cfg, SaveConfig(cfg, path)
	}
	logWarnings(warnings)

	if source != path {
		log.LogWithFields(log.F("from", source), log.F("to", path)).Info("Migrating legacy configuration")
		if err := SaveConfig(cfg, path); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// ReadConfigFile parses the document at path without ever rewriting it.
// Used for hot reloads, where a half-written file must not be clobbered.
func ReadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("cannot read configuration", path, errors.ConfigNotFound, err)
	}
	cfg, warnings, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logWarnings(warnings)
	return cfg, nil
}

func readDocument(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err == nil || !os.IsNotExist(err) || filepath.Base(path) != FileName {
		return data, path, err
	}

	legacy := filepath.Join(filepath.Dir(path), LegacyFileName)
	if data, lerr := os.ReadFile(legacy); lerr == nil {
		return data, legacy, nil
	}
	return nil, path, err
}

func backup(path string, data []byte) {
	dst := path + ".bak"
	if err := os.WriteFile(dst, data, 0644); err != nil {
		log.LogWithError(err).Warn("Cannot back up broken configuration")
		return
	}
	log.LogWithFields(log.F("path", dst)).Info("Backed up broken configuration")
}

func logWarnings(warnings []error) {
	for _, w := range warnings {
		log.LogWithError(w).Warn("Configuration value defaulted")
	}
}

// SaveConfig writes cfg to path as YAML, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the invariants a defaulted Config always satisfies.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}
	invalid := func(param, format string, args ...interface{}) error {
		return errors.NewConfigError(fmt.Sprintf(format, args...), param, errors.InvalidConfig, nil)
	}

	if strings.TrimSpace(c.Activation.Combo) == "" {
		return invalid("activation.combo", "combo is required")
	}
	if c.Activation.Debounce.Keyboard < 0 || c.Activation.Debounce.Mouse < 0 {
		return invalid("activation.debounce", "debounce must be >= 0")
	}
	if c.Visual.MainRadius < MinMainRadius {
		return invalid("visual.main_radius", "main radius must be >= %d", MinMainRadius)
	}
	if c.Visual.TimerIntervalMS < MinTimerInterval {
		return invalid("visual.timer_interval_ms", "timer interval must be >= %d ms", MinTimerInterval)
	}

	for _, d := range geometry.Directions {
		dc := c.Directions.Get(d)
		param := "directions." + d.String()
		if dc.SubmenuRadius < MinSubmenuRadius {
			return invalid(param+".submenu_radius", "submenu radius must be >= %d", MinSubmenuRadius)
		}
		if dc.ThresholdRatio < MinThreshold || dc.ThresholdRatio > MaxThreshold {
			return invalid(param+".threshold_ratio", "threshold ratio must be in [%.1f, %.1f]", MinThreshold, MaxThreshold)
		}
		if dc.ItemSize < MinItemSize || dc.ItemSize > MaxItemSize {
			return invalid(param+".item_size", "item size must be in [%d, %d]", MinItemSize, MaxItemSize)
		}
		if len(dc.Items) > MaxItems {
			return invalid(param+".items", "at most %d items allowed", MaxItems)
		}
		for i, it := range dc.Items {
			if !it.Type.Valid() {
				return invalid(fmt.Sprintf("%s.items[%d].type", param, i), "unknown action type %q", it.Type)
			}
		}
	}
	return nil
}

func defaultDirection(d geometry.Direction) DirectionConfig {
	return DirectionConfig{
		Label:          d.Label(),
		Items:          []Action{},
		SubmenuRadius:  DefaultSubmenuRadius,
		ThresholdRatio: DefaultThresholdRatio,
		ItemSize:       DefaultItemSize,
	}
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.Activation.Combo = DefaultCombo
	cfg.Activation.Debounce = Debounce{Keyboard: DefaultDebounce, Mouse: DefaultDebounce}
	cfg.Visual.MainRadius = DefaultMainRadius
	cfg.Visual.TimerIntervalMS = DefaultTimerInterval
	cfg.Visual.Theme = DefaultTheme
	for _, d := range geometry.Directions {
		*cfg.Directions.Get(d) = defaultDirection(d)
	}
	return cfg
}

// Clone returns a deep copy, for editing a snapshot without touching it.
func (c *Config) Clone() *Config {
	out := *c
	for _, d := range geometry.Directions {
		dc := out.Directions.Get(d)
		dc.Items = append([]Action(nil), dc.Items...)
	}
	return &out
}
