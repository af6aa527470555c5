package scrollview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Padded())

	normalized, warnings := cfg.Normalize()
	assert.Empty(t, warnings)
	assert.Equal(t, cfg, normalized)
}

func TestParseConfig_Full(t *testing.T) {
	data := []byte(`
direction: horizontal
movement_type: clamped
elasticity: 0.2
sensitivity: 1.5
inertia: false
deceleration_rate: 0.1
draggable: false
snap:
  enabled: false
  velocity_threshold: 0.25
  duration: 0.4
  ease: outQuad
loop: true
cell_interval: 0.25
scroll_offset: 0.3
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, Horizontal, cfg.Direction)
	assert.Equal(t, Clamped, cfg.MovementType)
	assert.Equal(t, 0.2, cfg.Elasticity)
	assert.Equal(t, 1.5, cfg.Sensitivity)
	assert.False(t, cfg.Inertia)
	assert.Equal(t, 0.1, cfg.DecelerationRate)
	assert.False(t, cfg.Draggable)
	assert.Equal(t, SnapConfig{Enabled: false, VelocityThreshold: 0.25, Duration: 0.4, Ease: OutQuad}, cfg.Snap)
	assert.True(t, cfg.Loop)
	assert.Equal(t, 0.25, cfg.CellInterval)
	assert.Equal(t, 0.3, cfg.ScrollOffset)
}

func TestParseConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("cell_size: 48\nspacing: 4\n"))
	require.NoError(t, err)

	want := DefaultConfig()
	want.CellSize = 48
	want.Spacing = 4
	assert.Equal(t, want, cfg)
	assert.True(t, cfg.Padded())
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero interval", "cell_interval: 0"},
		{"interval above one", "cell_interval: 1.5"},
		{"interval below minimum", "cell_interval: 0.005"},
		{"scroll offset above one", "scroll_offset: 1.5"},
		{"negative scroll offset", "scroll_offset: -0.1"},
		{"negative cell size", "cell_size: -1"},
		{"deceleration above one", "deceleration_rate: 2"},
		{"zero elasticity", "elasticity: 0"},
		{"negative snap duration", "snap: {duration: -1}"},
		{"bad direction", "direction: diagonal"},
		{"bad movement type", "movement_type: bouncy"},
		{"bad ease", "snap: {ease: wobble}"},
		{"not yaml", "cell_size: [1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestConfig_IntervalBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellInterval = 0.01
	cfg.ScrollOffset = 0
	require.NoError(t, cfg.Validate())

	cfg.CellInterval = 1
	cfg.ScrollOffset = 1
	require.NoError(t, cfg.Validate())

	cfg.CellInterval = 1e-5
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)
}

func TestConfig_CheckGeometry(t *testing.T) {
	assert.NoError(t, DefaultConfig().checkGeometry(Vec2{X: 1e6, Y: 1e6}), "basic mode has no pixel geometry")

	cfg := DefaultConfig()
	cfg.CellSize = 20
	assert.NoError(t, cfg.checkGeometry(Vec2{X: 100, Y: 100}))
	assert.NoError(t, cfg.checkGeometry(Vec2{}))

	cfg.CellSize = 1
	err := cfg.checkGeometry(Vec2{X: 100, Y: 1000})
	assert.ErrorIs(t, err, ErrConfiguration)

	cfg.Direction = Horizontal
	assert.NoError(t, cfg.checkGeometry(Vec2{X: 50, Y: 1000}), "only the scroll axis counts")
}

func TestValidate_NamesFailingFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellInterval = 0
	cfg.Spacing = -2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CellInterval")
	assert.Contains(t, err.Error(), "Spacing")
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = Horizontal
	cfg.MovementType = Unrestricted
	cfg.Loop = true
	cfg.Snap.Ease = OutSine

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "direction: horizontal")
	assert.Contains(t, string(data), "movement_type: unrestricted")

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestConfig_Normalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 30
	cfg.Loop = true
	cfg.MovementType = Unrestricted

	normalized, warnings := cfg.Normalize()

	assert.Len(t, warnings, 3)
	for _, w := range warnings {
		assert.ErrorIs(t, w, ErrUnsupportedCombination)
	}
	assert.False(t, normalized.Loop)
	assert.False(t, normalized.Snap.Enabled)
	assert.Equal(t, Elastic, normalized.MovementType)
	assert.True(t, cfg.Loop, "receiver is not modified")

	clamped := DefaultConfig()
	clamped.CellSize = 30
	clamped.Snap.Enabled = false
	clamped.MovementType = Clamped
	_, warnings = clamped.Normalize()
	assert.Empty(t, warnings)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "view.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement_type: clamped\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Clamped, cfg.MovementType)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("cell_interval: 0\n"), 0o600))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), path)
}
