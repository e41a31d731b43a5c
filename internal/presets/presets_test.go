package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbrooker/maze-maker/internal/config"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)

	assert.Equal(t, 5, registry.Count())
	assert.Equal(t, []string{"default", "large", "mug", "tiny", "tower"}, registry.IDs())
}

func TestPresetsAreValid(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)

	for _, id := range registry.IDs() {
		p, err := registry.Get(id)
		require.NoError(t, err)
		assert.NotEmpty(t, p.Name, id)
		assert.NoError(t, p.Apply(config.Default()).Validate(), id)
	}
}

func TestDefaultPresetMatchesDefaults(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)

	p, err := registry.Get("default")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), p.Apply(config.Default()))
}

func TestGetUnknown(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)

	_, err = registry.Get("teapot")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestApplyKeepsOtherSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 9
	cfg.MazeFile = "custom"

	got := Preset{ID: "x", Rows: 2, Cols: 3, Height: 4, Circumference: 5}.Apply(cfg)
	assert.Equal(t, int64(9), got.Seed)
	assert.Equal(t, "custom", got.MazeFile)
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, 3, got.Cols)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[[]Preset]("missing.json")
	assert.Error(t, err)
}
