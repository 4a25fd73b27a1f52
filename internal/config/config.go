// Package config provides YAML/TOML-based game configuration loading,
// display scaling and difficulty scheduling for the runner.
package config

// FirefighterConfig contains all configuration for the firefighter runner.
type FirefighterConfig struct {
	Display DisplayBase   `yaml:"display" toml:"display"`
	Physics PhysicsTables `yaml:"physics" toml:"physics"`
	Tuning  Tuning        `yaml:"tuning" toml:"tuning"`
	Spawn   SpawnRates    `yaml:"spawn" toml:"spawn"`
	Host    HostConfig    `yaml:"host" toml:"host"`
}

// Size is a width/height pair in canvas pixels.
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// DisplayBase holds entity sizes at the reference canvas size.
// Resolve scales them to the actual canvas.
type DisplayBase struct {
	BaseWidth      float64 `yaml:"base_width" toml:"base_width"`
	BaseHeight     float64 `yaml:"base_height" toml:"base_height"`
	MobileMaxWidth float64 `yaml:"mobile_max_width" toml:"mobile_max_width"` // Canvas widths up to this use the mobile table
	GroundHeight   float64 `yaml:"ground_height" toml:"ground_height"`

	Player          Size `yaml:"player" toml:"player"`
	Obstacle        Size `yaml:"obstacle" toml:"obstacle"`
	Fire            Size `yaml:"fire" toml:"fire"`
	Powerup         Size `yaml:"powerup" toml:"powerup"`
	BurnedTree      Size `yaml:"burned_tree" toml:"burned_tree"`
	GreenTree       Size `yaml:"green_tree" toml:"green_tree"`
	PixelBurnedTree Size `yaml:"pixel_burned_tree" toml:"pixel_burned_tree"`
	WaterJet        Size `yaml:"water_jet" toml:"water_jet"` // Not scaled
}

// Physics is one device-class constants table.
type Physics struct {
	Gravity           float64 `yaml:"gravity" toml:"gravity"`
	MaxFallingSpeed   float64 `yaml:"max_falling_speed" toml:"max_falling_speed"`
	SpeedIncrement    float64 `yaml:"speed_increment" toml:"speed_increment"`
	ObstacleIncrement float64 `yaml:"obstacle_increment" toml:"obstacle_increment"`
	StartX            float64 `yaml:"start_x" toml:"start_x"`
}

// PhysicsTables holds the desktop and mobile constants tables.
type PhysicsTables struct {
	Desktop Physics `yaml:"desktop" toml:"desktop"`
	Mobile  Physics `yaml:"mobile" toml:"mobile"`
}

// Tuning holds the device-independent tunables.
type Tuning struct {
	MoveSpeed          float64 `yaml:"move_speed" toml:"move_speed"`
	JumpGrace          float64 `yaml:"jump_grace" toml:"jump_grace"`               // Pixels above rest where a jump still fires
	JumpHeightRatio    float64 `yaml:"jump_height_ratio" toml:"jump_height_ratio"` // Share of the playable height a full jump reaches
	MaxShoots          int     `yaml:"max_shoots" toml:"max_shoots"`
	PowerupShoots      int     `yaml:"powerup_shoots" toml:"powerup_shoots"`
	InitialGameSpeed   float64 `yaml:"initial_game_speed" toml:"initial_game_speed"`
	DifficultyInterval float64 `yaml:"difficulty_interval" toml:"difficulty_interval"` // Seconds per SpeedIncrement
	MaxGameSpeed       float64 `yaml:"max_game_speed" toml:"max_game_speed"`           // 0 = unbounded
	ObstacleBaseRate   float64 `yaml:"obstacle_base_rate" toml:"obstacle_base_rate"`
	ScrollFactor       float64 `yaml:"scroll_factor" toml:"scroll_factor"`
	JetSpeedFactor     float64 `yaml:"jet_speed_factor" toml:"jet_speed_factor"`
	StepRate           float64 `yaml:"step_rate" toml:"step_rate"` // Steps per simulated second
	StepPoints         int     `yaml:"step_points" toml:"step_points"`
	ExtinguishPoints   int     `yaml:"extinguish_points" toml:"extinguish_points"`
	DangerPerFire      float64 `yaml:"danger_per_fire" toml:"danger_per_fire"`
}

// SpawnRates are the fixed per-step spawn probabilities.
// Obstacles use the rate derived by the Scheduler instead.
type SpawnRates struct {
	BurnedTree       float64 `yaml:"burned_tree" toml:"burned_tree"`
	PixelBurnedShare float64 `yaml:"pixel_burned_share" toml:"pixel_burned_share"` // Share of burned-tree spawns drawn as pixel trees
	GreenTree        float64 `yaml:"green_tree" toml:"green_tree"`
	Powerup          float64 `yaml:"powerup" toml:"powerup"`
}

// HostConfig configures the terminal host around the engine.
type HostConfig struct {
	CellWidth     float64 `yaml:"cell_width" toml:"cell_width"`   // Canvas pixels per terminal column
	CellHeight    float64 `yaml:"cell_height" toml:"cell_height"` // Canvas pixels per terminal row
	MoveHoldTicks int     `yaml:"move_hold_ticks" toml:"move_hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// yield "" which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// rampScaleForPreset returns the multiplier applied to the speed ramp.
func rampScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	case DifficultyFixed:
		return 0
	default:
		return 1
	}
}

// ApplyFirefighterPreset modifies the config based on a difficulty preset.
// Presets scale how fast speed and obstacle density ramp up; "fixed"
// keeps the initial speed forever.
func ApplyFirefighterPreset(cfg *FirefighterConfig, preset DifficultyPreset) {
	scale := rampScaleForPreset(preset)
	for _, p := range []*Physics{&cfg.Physics.Desktop, &cfg.Physics.Mobile} {
		p.SpeedIncrement *= scale
		p.ObstacleIncrement *= scale
	}
	if preset == DifficultyHard {
		cfg.Tuning.InitialGameSpeed *= 1.25
	}
}
