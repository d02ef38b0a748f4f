package courier

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelrun/courier/colors"
)

func TestDefaultConfig(t *testing.T) {

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, Grid{HalfSize: 8, TileSize: 6}, cfg.Grid)
	assert.Equal(t, "Bike", cfg.Player.Model)
	assert.Equal(t, 50.0, cfg.Player.Bounds)
	assert.Equal(t, 4.0, cfg.Delivery.Radius)
	assert.Equal(t, 60*time.Second, cfg.Timer.Duration)
	assert.Equal(t, time.Second, cfg.Timer.Interval)
	assert.Len(t, cfg.Traffic.Routes, 14)

	cloud, err := colors.ParseHex("#ffffff9e")
	require.NoError(t, err)
	assert.Equal(t, cloud, cfg.City.CloudColor)

}

func TestConfigDecodeMergesOverDefaults(t *testing.T) {

	cfg := DefaultConfig()

	require.NoError(t, cfg.Decode([]byte(`
seed: harbour
timer:
  duration: 90s
player:
  speed: 7.5
`)))

	assert.Equal(t, "harbour", cfg.Seed)
	assert.Equal(t, 90*time.Second, cfg.Timer.Duration)
	assert.Equal(t, time.Second, cfg.Timer.Interval)
	assert.Equal(t, 7.5, cfg.Player.Speed)
	assert.Equal(t, "Bike", cfg.Player.Model)

}

func TestConfigDecodeRejectsUnknownFields(t *testing.T) {

	cfg := DefaultConfig()

	err := cfg.Decode([]byte("timer:\n  duraton: 5s\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	err = cfg.Decode([]byte("player: [1, 2"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

}

func TestLoadConfig(t *testing.T) {

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "courier.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  half_size: 4\n"), 0o644))

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Grid.HalfSize)
	assert.Equal(t, 6.0, cfg.Grid.TileSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

}

func TestConfigApplyEnv(t *testing.T) {

	env := map[string]string{
		EnvSeed:     "night-shift",
		EnvLogLevel: "debug",
		EnvDev:      "true",
		EnvDuration: "2m",
		EnvAssetDir: "/srv/models",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, "night-shift", cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, 2*time.Minute, cfg.Timer.Duration)
	assert.Equal(t, "/srv/models", cfg.Assets.Dir)

	env = map[string]string{EnvDev: "sometimes", EnvDuration: "soon"}
	cfg = DefaultConfig()
	err := cfg.ApplyEnv(lookup)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, EnvDev)
	assert.ErrorContains(t, err, EnvDuration)
	assert.Equal(t, DefaultConfig().Timer, cfg.Timer)

}

func TestConfigValidateReportsEveryProblem(t *testing.T) {

	cfg := DefaultConfig()
	cfg.Grid.HalfSize = 1
	cfg.City.PlazaChance = 1.5
	cfg.Delivery.Radius = 0
	cfg.Camera.Smoothing = 2
	cfg.Traffic.Routes[3].Model = ""

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)

	for _, field := range []string{"grid.half_size", "city.plaza_chance", "delivery.radius", "camera.smoothing", "traffic.routes[3].model"} {
		assert.ErrorContains(t, err, field)
	}

}

func TestNewLogger(t *testing.T) {

	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))

	_, err = NewLogger("chatty", false)
	assert.ErrorIs(t, err, ErrInvalidConfig)

}
