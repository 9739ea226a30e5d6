package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"radialmenu/internal/config"
	"radialmenu/internal/errors"
	"radialmenu/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to write a configuration document into a fresh directory
func createTestDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const (
	validYAML = `
activation:
  combo: "Left Control + Space"
  debounce:
    keyboard: 2
    mouse: 5
visual:
  main_radius: 80
  timer_interval_ms: 30
  theme: midnight
directions:
  north:
    label: Clipboard
    submenu_radius: 130
    threshold_ratio: 0.5
    item_size: 25
    items:
      - label: Paste
        type: hotkey
        keys: ctrl+v
      - label: Sign
        type: text
        value: "Best regards"
      - label: Both
        type: hotkey_and_text
        keys: ctrl+a
        value: hello
  east:
    label: ""
    items:
      - label: Untyped
        keys: f5
  south: {}
  west: {}
`
	legacyJSON = `{
    "activation": {"modifier": "ctrl", "key": "q"},
    "visual": {"radius": 75, "threshold": 40, "submenu_radius": 90, "threshold_ratio": 0.3},
    "directions": {
        "north": {"label": "N", "items": [{"label": "Copy", "type": "hotkey", "keys": "ctrl+c"}]},
        "east": {"label": "E", "items": []},
        "south": {"label": "S", "items": []},
        "west": {"label": "W", "items": []}
    }
}`
	clampYAML = `
activation:
  combo: ""
visual:
  main_radius: 3
  timer_interval_ms: 1
directions:
  north:
    submenu_radius: 5
    threshold_ratio: 4.5
    item_size: 500
    items: [{keys: "1"}, {keys: "2"}, {keys: "3"}, {keys: "4"}, {keys: "5"}, {keys: "6"}, {keys: "7"}, {keys: "8"}, {keys: "9"}, {keys: "10"}]
  east:
    threshold_ratio: 0.01
    item_size: 2
    items:
      - {label: Odd, type: macro, keys: a}
  south: {}
  west: {}
`
	invalidSyntaxYAML = `
activation:
  combo: "alt+x
visual: [
`
)

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		cfg, warnings, err := config.Parse([]byte(validYAML))
		require.NoError(t, err)
		assert.Empty(t, warnings)

		assert.Equal(t, "ctrl+space", cfg.ActivationCombo())
		assert.Equal(t, config.Debounce{Keyboard: 2, Mouse: 5}, cfg.Activation.Debounce)
		assert.Equal(t, 80, cfg.MainRadius())
		assert.Equal(t, 30*time.Millisecond, cfg.PollInterval())
		assert.Equal(t, "midnight", cfg.Visual.Theme)

		north := cfg.Direction(geometry.North)
		assert.Equal(t, "Clipboard", north.Label)
		require.Len(t, north.Items, 3)
		assert.Equal(t, config.Action{Label: "Paste", Type: config.Hotkey, Keys: "ctrl+v"}, north.Items[0])
		assert.Equal(t, config.Text, north.Items[1].Type)
		assert.Equal(t, config.HotkeyAndText, north.Items[2].Type)
		assert.Equal(t, 130, cfg.SubRadius(geometry.North))
		assert.Equal(t, 40, cfg.Threshold(geometry.North))

		east := cfg.Direction(geometry.East)
		assert.Equal(t, "East", east.Label, "empty label falls back to the direction name")
		require.Len(t, east.Items, 1)
		assert.Equal(t, config.Hotkey, east.Items[0].Type, "missing type defaults to hotkey")
		assert.Equal(t, config.DefaultSubmenuRadius, east.SubmenuRadius)
		assert.Equal(t, config.DefaultThresholdRatio, east.ThresholdRatio)
		assert.Equal(t, config.DefaultItemSize, east.ItemSize)
	})

	t.Run("legacy json is migrated", func(t *testing.T) {
		cfg, _, err := config.Parse([]byte(legacyJSON))
		require.NoError(t, err)

		assert.Equal(t, "ctrl+q", cfg.ActivationCombo())
		assert.Equal(t, 75, cfg.MainRadius(), "visual.radius becomes main_radius")
		assert.Equal(t, config.DefaultTimerInterval, cfg.Visual.TimerIntervalMS)
		assert.Equal(t, config.DefaultSubmenuRadius, cfg.Direction(geometry.North).SubmenuRadius,
			"global submenu_radius is dropped")
		assert.Equal(t, config.DefaultThresholdRatio, cfg.Direction(geometry.North).ThresholdRatio)
		assert.Equal(t, "ctrl+c", cfg.Direction(geometry.North).Items[0].Keys)
	})

	t.Run("out of range values are clamped with warnings", func(t *testing.T) {
		cfg, warnings, err := config.Parse([]byte(clampYAML))
		require.NoError(t, err)
		require.NotEmpty(t, warnings)
		for _, w := range warnings {
			assert.True(t, errors.IsConfigDefaultable(w), w.Error())
		}

		params := map[string]bool{}
		for _, w := range warnings {
			var cfgErr *errors.ConfigError
			require.True(t, errors.As(w, &cfgErr))
			params[cfgErr.Param()] = true
		}
		for _, p := range []string{
			"activation.combo",
			"visual.main_radius",
			"visual.timer_interval_ms",
			"directions.north.submenu_radius",
			"directions.north.threshold_ratio",
			"directions.north.item_size",
			"directions.north.items",
			"directions.east.threshold_ratio",
			"directions.east.item_size",
			"directions.east.items[0].type",
		} {
			assert.True(t, params[p], "expected a warning for %s", p)
		}

		assert.Equal(t, config.DefaultCombo, cfg.ActivationCombo())
		assert.Equal(t, config.MinMainRadius, cfg.MainRadius())
		assert.Equal(t, config.MinTimerInterval, cfg.Visual.TimerIntervalMS)

		north := cfg.Direction(geometry.North)
		assert.Equal(t, config.MinSubmenuRadius, north.SubmenuRadius)
		assert.Equal(t, config.MaxThreshold, north.ThresholdRatio)
		assert.Equal(t, config.MaxItemSize, north.ItemSize)
		assert.Len(t, north.Items, config.MaxItems)

		east := cfg.Direction(geometry.East)
		assert.Equal(t, config.MinThreshold, east.ThresholdRatio)
		assert.Equal(t, config.MinItemSize, east.ItemSize)
		assert.Equal(t, config.Hotkey, east.Items[0].Type)

		require.NoError(t, cfg.Validate())
	})

	t.Run("missing directions are added", func(t *testing.T) {
		cfg, warnings, err := config.Parse([]byte("activation:\n  combo: mouse x1\n"))
		require.NoError(t, err)
		assert.Len(t, warnings, 4)
		assert.Equal(t, "mouse x1", cfg.ActivationCombo())
		for _, d := range geometry.Directions {
			assert.Equal(t, d.Label(), cfg.Direction(d).Label)
			assert.Empty(t, cfg.Direction(d).Items)
		}
	})

	t.Run("keys that cannot be sent are reported", func(t *testing.T) {
		doc := "directions:\n  east:\n    items:\n      - {label: Desktop, keys: win+d}\n      - {label: Lock, keys: caps lock}\n"
		cfg, warnings, err := config.Parse([]byte(doc))
		require.NoError(t, err)

		east := cfg.Direction(geometry.East)
		require.Len(t, east.Items, 2)
		assert.Equal(t, "d", east.Items[0].Keys)
		assert.Empty(t, east.Items[1].Keys)

		found := map[string]string{}
		for _, w := range warnings {
			var cfgErr *errors.ConfigError
			require.True(t, errors.As(w, &cfgErr))
			if strings.HasSuffix(cfgErr.Param(), ".keys") {
				assert.True(t, errors.IsConfigDefaultable(w))
				found[cfgErr.Param()] = w.Error()
			}
		}
		require.Len(t, found, 2)
		assert.Contains(t, found["directions.east.items[0].keys"], "win")
		assert.Contains(t, found["directions.east.items[1].keys"], "caps lock")
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, _, err := config.Parse([]byte(invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})
}

func TestSubRadiusStaysOutsideMainCircle(t *testing.T) {
	cfg := config.New()
	cfg.Visual.MainRadius = 100
	cfg.Directions.West.SubmenuRadius = 50
	assert.Equal(t, 100+geometry.SubRingGap+config.DefaultItemSize, cfg.SubRadius(geometry.West))
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		path := createTestDoc(t, config.FileName, validYAML)
		cfg, err := config.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ctrl+space", cfg.ActivationCombo())
	})

	t.Run("missing document is created with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		cfg, err := config.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)

		_, err = os.Stat(path)
		require.NoError(t, err, "defaults were written")
		reread, err := config.ReadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, reread)
	})

	t.Run("legacy json beside the document is migrated", func(t *testing.T) {
		legacy := createTestDoc(t, config.LegacyFileName, legacyJSON)
		path := filepath.Join(filepath.Dir(legacy), config.FileName)

		cfg, err := config.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ctrl+q", cfg.ActivationCombo())

		reread, err := config.ReadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ctrl+q", reread.ActivationCombo())
	})

	t.Run("broken document is backed up and replaced", func(t *testing.T) {
		path := createTestDoc(t, config.FileName, invalidSyntaxYAML)
		cfg, err := config.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultCombo, cfg.ActivationCombo())

		bak, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		assert.Equal(t, invalidSyntaxYAML, string(bak))

		_, err = config.ReadConfigFile(path)
		assert.NoError(t, err, "document now parses")
	})
}

func TestReadConfigFileNeverRewrites(t *testing.T) {
	path := createTestDoc(t, config.FileName, invalidSyntaxYAML)
	_, err := config.ReadConfigFile(path)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, invalidSyntaxYAML, string(data))

	_, err = config.ReadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.New().Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty combo", func(c *config.Config) { c.Activation.Combo = " " }},
		{"small radius", func(c *config.Config) { c.Visual.MainRadius = 1 }},
		{"fast timer", func(c *config.Config) { c.Visual.TimerIntervalMS = 0 }},
		{"negative debounce", func(c *config.Config) { c.Activation.Debounce.Mouse = -1 }},
		{"ratio", func(c *config.Config) { c.Directions.South.ThresholdRatio = 2 }},
		{"item size", func(c *config.Config) { c.Directions.South.ItemSize = 101 }},
		{"too many items", func(c *config.Config) {
			c.Directions.West.Items = make([]config.Action, config.MaxItems+1)
			for i := range c.Directions.West.Items {
				c.Directions.West.Items[i].Type = config.Hotkey
			}
		}},
		{"bad type", func(c *config.Config) {
			c.Directions.East.Items = []config.Action{{Label: "x", Type: "macro"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err))
		})
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", config.FileName)
	cfg := config.New()
	cfg.Directions.South.Items = []config.Action{{Label: "Greet", Type: config.Text, Value: "hi there"}}

	require.NoError(t, config.SaveConfig(cfg, path))
	loaded, err := config.ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Directions.South, loaded.Directions.South)

	bad := config.New()
	bad.Visual.MainRadius = 0
	assert.Error(t, config.SaveConfig(bad, filepath.Join(t.TempDir(), config.FileName)))
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := config.New()
	cfg.Directions.North.Items = []config.Action{{Label: "a", Type: config.Hotkey, Keys: "a"}}

	clone := cfg.Clone()
	clone.Directions.North.Items[0].Keys = "b"
	clone.Activation.Combo = "ctrl+b"

	assert.Equal(t, "a", cfg.Directions.North.Items[0].Keys)
	assert.Equal(t, config.DefaultCombo, cfg.ActivationCombo())
}
