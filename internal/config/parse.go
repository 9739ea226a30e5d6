package config

import (
	"fmt"
	"strings"

	"radialmenu/internal/chord"
	"radialmenu/internal/errors"
	"radialmenu/internal/geometry"

	"gopkg.in/yaml.v3"
)

// document mirrors the on-disk shape, including legacy fields. Pointers
// tell missing values apart from zero values.
type document struct {
	Activation *struct {
		Combo    *string `yaml:"combo"`
		Modifier *string `yaml:"modifier"`
		Key      *string `yaml:"key"`
		Debounce *struct {
			Keyboard *int `yaml:"keyboard"`
			Mouse    *int `yaml:"mouse"`
		} `yaml:"debounce"`
	} `yaml:"activation"`
	Visual *struct {
		MainRadius      *int    `yaml:"main_radius"`
		Radius          *int    `yaml:"radius"`
		TimerIntervalMS *int    `yaml:"timer_interval_ms"`
		Theme           *string `yaml:"theme"`
	} `yaml:"visual"`
	Directions map[string]*directionDocument `yaml:"directions"`
}

type directionDocument struct {
	Label          *string          `yaml:"label"`
	Items          []actionDocument `yaml:"items"`
	SubmenuRadius  *int             `yaml:"submenu_radius"`
	ThresholdRatio *float64         `yaml:"threshold_ratio"`
	ItemSize       *int             `yaml:"item_size"`
}

type actionDocument struct {
	Label string `yaml:"label"`
	Type  string `yaml:"type"`
	Keys  string `yaml:"keys"`
	Value string `yaml:"value"`
}

// Parse builds a defaulted Config from a YAML or legacy JSON document.
// Every substituted or clamped value is reported as a ConfigDefaultable
// warning. Only an unparsable document is an error.
func Parse(data []byte) (*Config, []error, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.NewConfigError("cannot parse configuration", "", errors.InvalidConfig, err)
	}

	p := &parser{cfg: New()}
	p.activation(&doc)
	p.visual(&doc)
	for name := range doc.Directions {
		if _, err := geometry.ParseDirection(name); err != nil {
			p.warn("directions."+name, "unknown direction ignored")
		}
	}
	for _, d := range geometry.Directions {
		p.direction(d, lookupDirection(doc.Directions, d))
	}
	return p.cfg, p.warnings, nil
}

type parser struct {
	cfg      *Config
	warnings []error
}

func (p *parser) warn(param, format string, args ...interface{}) {
	p.warnings = append(p.warnings, errors.NewDefaulted(param, format, args...))
}

func (p *parser) activation(doc *document) {
	a := doc.Activation
	if a == nil {
		p.warn("activation.combo", "missing, using %q", DefaultCombo)
		return
	}

	var combo string
	switch {
	case a.Combo != nil:
		combo = *a.Combo
	case a.Modifier != nil || a.Key != nil:
		mod, key := "alt", "x"
		if a.Modifier != nil {
			mod = *a.Modifier
		}
		if a.Key != nil {
			key = *a.Key
		}
		combo = mod + chord.Separator + key
	}
	if normalized := normalizeCombo(combo); normalized != "" {
		p.cfg.Activation.Combo = normalized
	} else {
		p.warn("activation.combo", "empty, using %q", DefaultCombo)
	}

	if a.Debounce != nil {
		p.cfg.Activation.Debounce.Keyboard = p.atLeast("activation.debounce.keyboard", a.Debounce.Keyboard, 0, DefaultDebounce)
		p.cfg.Activation.Debounce.Mouse = p.atLeast("activation.debounce.mouse", a.Debounce.Mouse, 0, DefaultDebounce)
	}
}

// normalizeCombo lowercases a combo. Keyboard chords are re-joined from
// their normalized keys; mouse forms are kept as written.
func normalizeCombo(combo string) string {
	combo = strings.ToLower(strings.TrimSpace(combo))
	if combo == "" || strings.HasPrefix(combo, "mouse") || combo == "x1" || combo == "x2" {
		return combo
	}
	return chord.Join(chord.Split(combo))
}

func (p *parser) visual(doc *document) {
	v := doc.Visual
	if v == nil {
		return
	}

	radius := v.MainRadius
	if v.Radius != nil {
		radius = v.Radius
	}
	p.cfg.Visual.MainRadius = p.atLeast("visual.main_radius", radius, MinMainRadius, DefaultMainRadius)
	p.cfg.Visual.TimerIntervalMS = p.atLeast("visual.timer_interval_ms", v.TimerIntervalMS, MinTimerInterval, DefaultTimerInterval)
	if v.Theme != nil && strings.TrimSpace(*v.Theme) != "" {
		p.cfg.Visual.Theme = strings.TrimSpace(*v.Theme)
	}
}

func lookupDirection(docs map[string]*directionDocument, d geometry.Direction) *directionDocument {
	for name, dd := range docs {
		if parsed, err := geometry.ParseDirection(name); err == nil && parsed == d {
			return dd
		}
	}
	return nil
}

func (p *parser) direction(d geometry.Direction, dd *directionDocument) {
	param := "directions." + d.String()
	dc := p.cfg.Directions.Get(d)
	if dd == nil {
		p.warn(param, "missing, using defaults")
		return
	}

	if dd.Label != nil && strings.TrimSpace(*dd.Label) != "" {
		dc.Label = *dd.Label
	}
	dc.SubmenuRadius = p.atLeast(param+".submenu_radius", dd.SubmenuRadius, MinSubmenuRadius, DefaultSubmenuRadius)
	dc.ItemSize = p.within(param+".item_size", dd.ItemSize, MinItemSize, MaxItemSize, DefaultItemSize)
	dc.ThresholdRatio = p.ratio(param+".threshold_ratio", dd.ThresholdRatio)

	items := dd.Items
	if len(items) > MaxItems {
		p.warn(param+".items", "%d items, keeping the first %d", len(items), MaxItems)
		items = items[:MaxItems]
	}
	dc.Items = make([]Action, 0, len(items))
	for i, it := range items {
		dc.Items = append(dc.Items, p.action(fmt.Sprintf("%s.items[%d]", param, i), it))
	}
}

func (p *parser) action(param string, it actionDocument) Action {
	a := Action{
		Label: it.Label,
		Type:  ActionType(strings.ToLower(strings.TrimSpace(it.Type))),
		Keys:  strings.TrimSpace(it.Keys),
		Value: it.Value,
	}
	if a.Keys != "" {
		var dropped []string
		for _, part := range strings.Split(a.Keys, chord.Separator) {
			part = strings.TrimSpace(part)
			if _, ok := chord.Normalize(part); part != "" && !ok {
				dropped = append(dropped, part)
			}
		}
		a.Keys = chord.Join(chord.Split(a.Keys))
		if len(dropped) > 0 {
			p.warn(param+".keys", "dropping %s, sending %q", strings.Join(dropped, ", "), a.Keys)
		}
	}

	switch {
	case a.Type == "":
		a.Type = Hotkey
	case !a.Type.Valid():
		p.warn(param+".type", "unknown type %q, using %q", it.Type, Hotkey)
		a.Type = Hotkey
	}
	return a
}

// atLeast returns *v, the default when v is missing, or lo when *v is
// below it.
func (p *parser) atLeast(param string, v *int, lo, def int) int {
	if v == nil {
		return def
	}
	if *v < lo {
		p.warn(param, "%d is below %d, clamped", *v, lo)
		return lo
	}
	return *v
}

func (p *parser) within(param string, v *int, lo, hi, def int) int {
	if v == nil {
		return def
	}
	switch {
	case *v < lo:
		p.warn(param, "%d is below %d, clamped", *v, lo)
		return lo
	case *v > hi:
		p.warn(param, "%d is above %d, clamped", *v, hi)
		return hi
	}
	return *v
}

func (p *parser) ratio(param string, v *float64) float64 {
	if v == nil {
		return DefaultThresholdRatio
	}
	switch {
	case *v < MinThreshold:
		p.warn(param, "%.2f is below %.1f, clamped", *v, MinThreshold)
		return MinThreshold
	case *v > MaxThreshold:
		p.warn(param, "%.2f is above %.1f, clamped", *v, MaxThreshold)
		return MaxThreshold
	}
	return *v
}
