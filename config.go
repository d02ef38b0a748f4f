package courier

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed default_config.yaml
var defaultConfigData []byte

// Environment variables that override the config file.
const (
	EnvConfig   = "COURIER_CONFIG"
	EnvSeed     = "COURIER_SEED"
	EnvLogLevel = "COURIER_LOG_LEVEL"
	EnvDev      = "COURIER_DEV"
	EnvDuration = "COURIER_DURATION"
	EnvAssetDir = "COURIER_ASSET_DIR"
)

// Vec3 is a vector written as a three element list in config files.
type Vec3 [3]float64

// Vector returns the Vec3 as a geom.Vector.
func (v Vec3) Vector() geom.Vector {
	return geom.NewVector(v[0], v[1], v[2])
}

// Config holds everything that tunes a game session. The zero Config isn't usable; start from DefaultConfig or LoadConfig.
type Config struct {
	Seed     string         `yaml:"seed"`
	Log      LogConfig      `yaml:"log"`
	Window   WindowConfig   `yaml:"window"`
	Grid     Grid           `yaml:"grid"`
	City     CityConfig     `yaml:"city"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Timer    TimerConfig    `yaml:"timer"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    LightConfig    `yaml:"light"`
	Traffic  TrafficConfig  `yaml:"traffic"`
	Assets   Manifest       `yaml:"assets"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CityConfig tunes procedural city generation. Chances are probabilities in [0, 1].
type CityConfig struct {
	RoadScale          float64      `yaml:"road_scale"`
	PropScale          float64      `yaml:"prop_scale"`
	TSplitChance       float64      `yaml:"tsplit_chance"`
	CrossingChance     float64      `yaml:"crossing_chance"`
	PlazaChance        float64      `yaml:"plaza_chance"`
	TrafficLightChance float64      `yaml:"traffic_light_chance"`
	TrafficLightScale  float64      `yaml:"traffic_light_scale"`
	MaxDecorations     int          `yaml:"max_decorations"`
	CloudCount         int          `yaml:"cloud_count"`
	CloudColor         colors.Color `yaml:"cloud_color"`
	NearRoadDistance   int          `yaml:"near_road_distance"` // In tiles; negative keeps every building
	GroundColor        colors.Color `yaml:"ground_color"`
}

type PhysicsConfig struct {
	Gravity Vec3 `yaml:"gravity"`
}

// PlayerConfig describes the player's vehicle. TurnRate is in degrees per frame.
type PlayerConfig struct {
	Model          string  `yaml:"model"`
	Scale          float64 `yaml:"scale"`
	Spawn          Vec3    `yaml:"spawn"`
	Yaw            float64 `yaml:"yaw"`
	Speed          float64 `yaml:"speed"`
	ReverseFactor  float64 `yaml:"reverse_factor"`
	TurnRate       float64 `yaml:"turn_rate"`
	Bounds         float64 `yaml:"bounds"`
	VisualOffset   float64 `yaml:"visual_offset"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`
	HalfExtents    Vec3    `yaml:"half_extents"`
	Restitution    float64 `yaml:"restitution"`
}

type DeliveryConfig struct {
	Radius       float64      `yaml:"radius"`
	MarkerHeight float64      `yaml:"marker_height"`
	MarkerColor  colors.Color `yaml:"marker_color"`
}

type TimerConfig struct {
	Duration time.Duration `yaml:"duration"`
	Interval time.Duration `yaml:"interval"`
}

// CameraConfig describes the follow camera. Smoothing is the fraction of the distance to its goal the camera covers each frame.
type CameraConfig struct {
	Start      Vec3         `yaml:"start"`
	Offset     Vec3         `yaml:"offset"`
	Smoothing  float64      `yaml:"smoothing"`
	LookHeight float64      `yaml:"look_height"`
	FOV        float64      `yaml:"fov"`
	Near       float64      `yaml:"near"`
	Far        float64      `yaml:"far"`
	ClearColor colors.Color `yaml:"clear_color"`
}

type LightConfig struct {
	Position Vec3    `yaml:"position"`
	Ambient  float64 `yaml:"ambient"`
}

// TrafficConfig describes the AI cars: shared body settings plus one Route per car.
type TrafficConfig struct {
	Scale       float64 `yaml:"scale"`
	BodyLift    float64 `yaml:"body_lift"`
	HalfExtents Vec3    `yaml:"half_extents"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	Routes      []Route `yaml:"routes"`
}

// Route is a closed loop of waypoints driven by one car. Speed is the fraction of a segment covered per frame.
type Route struct {
	Model  string  `yaml:"model"`
	Speed  float64 `yaml:"speed"`
	Points []Vec3  `yaml:"points"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigData, &cfg); err != nil {
		panic("Error: the embedded default config can't be decoded: " + err.Error())
	}
	return cfg
}

// LoadConfig returns the default configuration with the YAML file at path decoded over it. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {

	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Decode(data); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil

}

// Decode decodes YAML data over the Config; fields missing from data keep their current values.
func (cfg *Config) Decode(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ApplyEnv applies the COURIER_* overrides found through lookup (usually os.LookupEnv).
func (cfg *Config) ApplyEnv(lookup func(key string) (string, bool)) error {

	var errs []error

	if v, ok := lookup(EnvSeed); ok {
		cfg.Seed = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}

	if v, ok := lookup(EnvDev); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvDev, v))
		} else {
			cfg.Log.Development = dev
		}
	}

	if v, ok := lookup(EnvDuration); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidConfig, EnvDuration, v))
		} else {
			cfg.Timer.Duration = d
		}
	}

	if v, ok := lookup(EnvAssetDir); ok && v != "" {
		cfg.Assets.Dir = v
	}

	return errors.Join(errs...)

}

// Validate reports every field that would make a session misbehave.
func (cfg Config) Validate() error {

	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	chance := func(name string, p float64) {
		check(p >= 0 && p <= 1, "city.%s must be within [0, 1], got %v", name, p)
	}

	check(cfg.Grid.HalfSize >= 2, "grid.half_size must be at least 2, got %d", cfg.Grid.HalfSize)
	check(cfg.Grid.TileSize > 0, "grid.tile_size must be positive, got %v", cfg.Grid.TileSize)

	check(cfg.City.RoadScale > 0, "city.road_scale must be positive, got %v", cfg.City.RoadScale)
	check(cfg.City.PropScale > 0, "city.prop_scale must be positive, got %v", cfg.City.PropScale)
	chance("tsplit_chance", cfg.City.TSplitChance)
	chance("crossing_chance", cfg.City.CrossingChance)
	chance("plaza_chance", cfg.City.PlazaChance)
	chance("traffic_light_chance", cfg.City.TrafficLightChance)
	check(cfg.City.MaxDecorations >= 1, "city.max_decorations must be at least 1, got %d", cfg.City.MaxDecorations)
	check(cfg.City.CloudCount >= 0, "city.cloud_count can't be negative, got %d", cfg.City.CloudCount)

	check(cfg.Player.Model != "", "player.model must be set")
	check(cfg.Player.Scale > 0, "player.scale must be positive, got %v", cfg.Player.Scale)
	check(cfg.Player.Speed > 0, "player.speed must be positive, got %v", cfg.Player.Speed)
	check(cfg.Player.ReverseFactor >= 0, "player.reverse_factor can't be negative, got %v", cfg.Player.ReverseFactor)
	check(cfg.Player.Bounds > 0, "player.bounds must be positive, got %v", cfg.Player.Bounds)
	for i, e := range cfg.Player.HalfExtents {
		check(e > 0, "player.half_extents[%d] must be positive, got %v", i, e)
	}

	check(cfg.Delivery.Radius > 0, "delivery.radius must be positive, got %v", cfg.Delivery.Radius)

	check(cfg.Timer.Duration > 0, "timer.duration must be positive, got %v", cfg.Timer.Duration)
	check(cfg.Timer.Interval > 0, "timer.interval must be positive, got %v", cfg.Timer.Interval)

	check(cfg.Camera.Smoothing > 0 && cfg.Camera.Smoothing <= 1, "camera.smoothing must be within (0, 1], got %v", cfg.Camera.Smoothing)
	check(cfg.Camera.FOV > 0 && cfg.Camera.FOV < 180, "camera.fov must be within (0, 180), got %v", cfg.Camera.FOV)
	check(cfg.Camera.Near > 0 && cfg.Camera.Far > cfg.Camera.Near, "camera near / far planes must satisfy 0 < near < far, got %v / %v", cfg.Camera.Near, cfg.Camera.Far)

	check(cfg.Traffic.Scale > 0, "traffic.scale must be positive, got %v", cfg.Traffic.Scale)
	for i, route := range cfg.Traffic.Routes {
		check(route.Model != "", "traffic.routes[%d].model must be set", i)
		check(route.Speed >= 0 && route.Speed <= 1, "traffic.routes[%d].speed must be within [0, 1], got %v", i, route.Speed)
	}

	check(cfg.Assets.Workers >= 0, "assets.workers can't be negative, got %d", cfg.Assets.Workers)

	return errors.Join(errs...)

}
