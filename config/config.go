// Package config provides the game configuration: Go defaults, overridden by
// an optional YAML file and ROTR_* environment variables through Viper.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/rotr/camera"
	"github.com/automoto/rotr/character"
	"github.com/automoto/rotr/motion"
	"github.com/spf13/viper"
)

// Render layers, drawn in ascending order. Untyped so they convert to ecs.LayerID.
const (
	LayerWorld = iota
	LayerActors
	LayerHUD
	LayerDebug
	LayerMenu
)

// Colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Floor        = color.RGBA{R: 28, G: 32, B: 40, A: 255}
	Wall         = color.RGBA{R: 90, G: 96, B: 110, A: 255}
	Hazard       = color.RGBA{R: 200, G: 70, B: 20, A: 160}
)

// WindowConfig holds the window and logical screen size.
type WindowConfig struct {
	Title      string `mapstructure:"title" yaml:"title"`
	Width      int    `mapstructure:"width" yaml:"width"`
	Height     int    `mapstructure:"height" yaml:"height"`
	Fullscreen bool   `mapstructure:"fullscreen" yaml:"fullscreen"`
	TPS        int    `mapstructure:"tps" yaml:"tps"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level" yaml:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format" yaml:"format"`
}

// CharacterConfig holds the character's resource and speed tuning.
type CharacterConfig struct {
	MaxHealth    float64 `mapstructure:"max_health" yaml:"max_health"`
	MaxStamina   float64 `mapstructure:"max_stamina" yaml:"max_stamina"`
	StaminaRegen float64 `mapstructure:"stamina_regen" yaml:"stamina_regen"`

	WalkSpeed   float64 `mapstructure:"walk_speed" yaml:"walk_speed"`
	RunSpeed    float64 `mapstructure:"run_speed" yaml:"run_speed"`
	SprintSpeed float64 `mapstructure:"sprint_speed" yaml:"sprint_speed"`
	RunCost     float64 `mapstructure:"run_cost" yaml:"run_cost"`
	SprintCost  float64 `mapstructure:"sprint_cost" yaml:"sprint_cost"`

	BaseTurnRate   float64 `mapstructure:"base_turn_rate" yaml:"base_turn_rate"`
	BaseLookUpRate float64 `mapstructure:"base_look_up_rate" yaml:"base_look_up_rate"`
}

// Tuning converts the section into the character's constants.
func (c CharacterConfig) Tuning() character.Tuning {
	return character.Tuning{
		MaxHealth:      c.MaxHealth,
		MaxStamina:     c.MaxStamina,
		StaminaRegen:   c.StaminaRegen,
		WalkSpeed:      c.WalkSpeed,
		RunSpeed:       c.RunSpeed,
		SprintSpeed:    c.SprintSpeed,
		RunCost:        c.RunCost,
		SprintCost:     c.SprintCost,
		BaseTurnRate:   c.BaseTurnRate,
		BaseLookUpRate: c.BaseLookUpRate,
	}
}

// MovementConfig holds the movement integrator constants.
type MovementConfig struct {
	Acceleration        float64 `mapstructure:"acceleration" yaml:"acceleration"`
	BrakingDeceleration float64 `mapstructure:"braking_deceleration" yaml:"braking_deceleration"`
	JumpZVelocity       float64 `mapstructure:"jump_z_velocity" yaml:"jump_z_velocity"`
	Gravity             float64 `mapstructure:"gravity" yaml:"gravity"`
	AirControl          float64 `mapstructure:"air_control" yaml:"air_control"`
	RotationRate        float64 `mapstructure:"rotation_rate" yaml:"rotation_rate"` // deg/sec
	CapsuleRadius       float64 `mapstructure:"capsule_radius" yaml:"capsule_radius"`
}

// Mover builds the integrator config. Crouched speed is the character's walk speed.
func (m MovementConfig) Mover(walkSpeed float64, solidTags ...string) motion.Config {
	return motion.Config{
		Acceleration:        m.Acceleration,
		BrakingDeceleration: m.BrakingDeceleration,
		CrouchedSpeed:       walkSpeed,
		JumpZVelocity:       m.JumpZVelocity,
		Gravity:             m.Gravity,
		AirControl:          m.AirControl,
		RotationRate:        m.RotationRate,
		SolidTags:           solidTags,
	}
}

// CameraConfig holds the camera rig settings.
type CameraConfig struct {
	TargetArmLength float64 `mapstructure:"target_arm_length" yaml:"target_arm_length"`
	ProbeSize       float64 `mapstructure:"probe_size" yaml:"probe_size"`
	LagSpeed        float64 `mapstructure:"lag_speed" yaml:"lag_speed"`
	PitchMin        float64 `mapstructure:"pitch_min" yaml:"pitch_min"`
	PitchMax        float64 `mapstructure:"pitch_max" yaml:"pitch_max"`
	DefaultPitch    float64 `mapstructure:"default_pitch" yaml:"default_pitch"`
}

// Rig builds the camera rig config for a view of the given size.
func (c CameraConfig) Rig(viewWidth, viewHeight int, solidTags ...string) camera.Config {
	return camera.Config{
		TargetArmLength: c.TargetArmLength,
		ProbeSize:       c.ProbeSize,
		LagSpeed:        c.LagSpeed,
		PitchMin:        c.PitchMin,
		PitchMax:        c.PitchMax,
		DefaultPitch:    c.DefaultPitch,
		ViewWidth:       float64(viewWidth),
		ViewHeight:      float64(viewHeight),
		SolidTags:       solidTags,
	}
}

// HUDConfig holds the heads-up display settings.
type HUDConfig struct {
	// Enabled false leaves the game mode without a widget class.
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	MeterSeconds float64 `mapstructure:"meter_seconds" yaml:"meter_seconds"`
	BarWidth     int     `mapstructure:"bar_width" yaml:"bar_width"`
	BarHeight    int     `mapstructure:"bar_height" yaml:"bar_height"`
	FontSize     float64 `mapstructure:"font_size" yaml:"font_size"`
}

// InputConfig holds device settings. Bindings live in input.go.
type InputConfig struct {
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	InvertLook       bool    `mapstructure:"invert_look" yaml:"invert_look"`
	AnalogDeadzone   float64 `mapstructure:"analog_deadzone" yaml:"analog_deadzone"`
	CaptureCursor    bool    `mapstructure:"capture_cursor" yaml:"capture_cursor"`
}

// DebugConfig contains debug options.
type DebugConfig struct {
	Overlay  bool    `mapstructure:"overlay" yaml:"overlay"`
	FontSize float64 `mapstructure:"font_size" yaml:"font_size"`
}

// LevelConfig selects the arena and game-over timing.
type LevelConfig struct {
	Path          string  `mapstructure:"path" yaml:"path"`
	GameOverDelay float64 `mapstructure:"game_over_delay" yaml:"game_over_delay"` // seconds
}

// Config is the top-level game configuration.
type Config struct {
	Window    WindowConfig    `mapstructure:"window" yaml:"window"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Character CharacterConfig `mapstructure:"character" yaml:"character"`
	Movement  MovementConfig  `mapstructure:"movement" yaml:"movement"`
	Camera    CameraConfig    `mapstructure:"camera" yaml:"camera"`
	HUD       HUDConfig       `mapstructure:"hud" yaml:"hud"`
	Input     InputConfig     `mapstructure:"input" yaml:"input"`
	Debug     DebugConfig     `mapstructure:"debug" yaml:"debug"`
	Level     LevelConfig     `mapstructure:"level" yaml:"level"`
}

// C is the active configuration. main replaces it after Load.
var C = Default()

// Default returns the built-in configuration.
func Default() Config {
	t := character.DefaultTuning()
	return Config{
		Window: WindowConfig{
			Title:  "ROTR",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Character: CharacterConfig{
			MaxHealth:      t.MaxHealth,
			MaxStamina:     t.MaxStamina,
			StaminaRegen:   t.StaminaRegen,
			WalkSpeed:      t.WalkSpeed,
			RunSpeed:       t.RunSpeed,
			SprintSpeed:    t.SprintSpeed,
			RunCost:        t.RunCost,
			SprintCost:     t.SprintCost,
			BaseTurnRate:   t.BaseTurnRate,
			BaseLookUpRate: t.BaseLookUpRate,
		},
		Movement: MovementConfig{
			Acceleration:        2048,
			BrakingDeceleration: 2048,
			JumpZVelocity:       600,
			Gravity:             980,
			AirControl:          0.2,
			RotationRate:        540,
			CapsuleRadius:       42,
		},
		Camera: CameraConfig{
			TargetArmLength: 300,
			ProbeSize:       12,
			LagSpeed:        10,
			PitchMin:        -80,
			PitchMax:        10,
			DefaultPitch:    -30,
		},
		HUD: HUDConfig{
			Enabled:      true,
			MeterSeconds: 0.25,
			BarWidth:     200,
			BarHeight:    14,
			FontSize:     16,
		},
		Input: InputConfig{
			MouseSensitivity: 0.2,
			AnalogDeadzone:   0.25,
			CaptureCursor:    true,
		},
		Debug: DebugConfig{
			FontSize: 12,
		},
		Level: LevelConfig{
			Path:          "levels/arena.tmx",
			GameOverDelay: 2,
		},
	}
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	for _, err := range []error{
		validateWindow(c.Window),
		validateLogging(c.Logging),
		validateCharacter(c.Character),
		validateMovement(c.Movement),
		validateCamera(c.Camera),
		validateHUD(c.HUD),
		validateInput(c.Input),
		validateLevel(c.Level),
	} {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateWindow(w WindowConfig) error {
	var errs []string
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, fmt.Sprintf("window size must be positive, got %dx%d", w.Width, w.Height))
	}
	if w.TPS <= 0 {
		errs = append(errs, fmt.Sprintf("window.tps must be > 0, got %d", w.TPS))
	}
	return joinErrs(errs)
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateCharacter(c CharacterConfig) error {
	var errs []string
	if c.MaxHealth <= 0 {
		errs = append(errs, fmt.Sprintf("character.max_health must be > 0, got %v", c.MaxHealth))
	}
	if c.MaxStamina <= 0 {
		errs = append(errs, fmt.Sprintf("character.max_stamina must be > 0, got %v", c.MaxStamina))
	}
	if c.WalkSpeed < 0 || c.RunSpeed < 0 || c.SprintSpeed < 0 {
		errs = append(errs, "character speeds must not be negative")
	}
	return joinErrs(errs)
}

func validateMovement(m MovementConfig) error {
	var errs []string
	if m.Acceleration <= 0 {
		errs = append(errs, fmt.Sprintf("movement.acceleration must be > 0, got %v", m.Acceleration))
	}
	if m.Gravity <= 0 {
		errs = append(errs, fmt.Sprintf("movement.gravity must be > 0, got %v", m.Gravity))
	}
	if m.AirControl < 0 || m.AirControl > 1 {
		errs = append(errs, fmt.Sprintf("movement.air_control must be in [0, 1], got %v", m.AirControl))
	}
	if m.CapsuleRadius <= 0 {
		errs = append(errs, fmt.Sprintf("movement.capsule_radius must be > 0, got %v", m.CapsuleRadius))
	}
	return joinErrs(errs)
}

func validateCamera(c CameraConfig) error {
	var errs []string
	if c.TargetArmLength < 0 {
		errs = append(errs, fmt.Sprintf("camera.target_arm_length must not be negative, got %v", c.TargetArmLength))
	}
	if c.PitchMin > c.PitchMax {
		errs = append(errs, "camera.pitch_min must not exceed camera.pitch_max")
	}
	if c.PitchMin <= -90 || c.PitchMax >= 90 {
		errs = append(errs, "camera pitch limits must lie within (-90, 90)")
	}
	return joinErrs(errs)
}

func validateHUD(h HUDConfig) error {
	if h.MeterSeconds < 0 {
		return fmt.Errorf("hud.meter_seconds must not be negative, got %v", h.MeterSeconds)
	}
	return nil
}

func validateInput(i InputConfig) error {
	if i.AnalogDeadzone < 0 || i.AnalogDeadzone >= 1 {
		return fmt.Errorf("input.analog_deadzone must be in [0, 1), got %v", i.AnalogDeadzone)
	}
	return nil
}

func validateLevel(l LevelConfig) error {
	var errs []string
	if l.Path == "" {
		errs = append(errs, "level.path must not be empty")
	}
	if l.GameOverDelay < 0 {
		errs = append(errs, "level.game_over_delay must not be negative")
	}
	return joinErrs(errs)
}

func joinErrs(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.New(strings.Join(errs, "; "))
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("ROTR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default())

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so environment overrides apply even when
// the file omits them.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.fullscreen", d.Window.Fullscreen)
	v.SetDefault("window.tps", d.Window.TPS)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("character.max_health", d.Character.MaxHealth)
	v.SetDefault("character.max_stamina", d.Character.MaxStamina)
	v.SetDefault("character.stamina_regen", d.Character.StaminaRegen)
	v.SetDefault("character.walk_speed", d.Character.WalkSpeed)
	v.SetDefault("character.run_speed", d.Character.RunSpeed)
	v.SetDefault("character.sprint_speed", d.Character.SprintSpeed)
	v.SetDefault("character.run_cost", d.Character.RunCost)
	v.SetDefault("character.sprint_cost", d.Character.SprintCost)
	v.SetDefault("character.base_turn_rate", d.Character.BaseTurnRate)
	v.SetDefault("character.base_look_up_rate", d.Character.BaseLookUpRate)

	v.SetDefault("movement.acceleration", d.Movement.Acceleration)
	v.SetDefault("movement.braking_deceleration", d.Movement.BrakingDeceleration)
	v.SetDefault("movement.jump_z_velocity", d.Movement.JumpZVelocity)
	v.SetDefault("movement.gravity", d.Movement.Gravity)
	v.SetDefault("movement.air_control", d.Movement.AirControl)
	v.SetDefault("movement.rotation_rate", d.Movement.RotationRate)
	v.SetDefault("movement.capsule_radius", d.Movement.CapsuleRadius)

	v.SetDefault("camera.target_arm_length", d.Camera.TargetArmLength)
	v.SetDefault("camera.probe_size", d.Camera.ProbeSize)
	v.SetDefault("camera.lag_speed", d.Camera.LagSpeed)
	v.SetDefault("camera.pitch_min", d.Camera.PitchMin)
	v.SetDefault("camera.pitch_max", d.Camera.PitchMax)
	v.SetDefault("camera.default_pitch", d.Camera.DefaultPitch)

	v.SetDefault("hud.enabled", d.HUD.Enabled)
	v.SetDefault("hud.meter_seconds", d.HUD.MeterSeconds)
	v.SetDefault("hud.bar_width", d.HUD.BarWidth)
	v.SetDefault("hud.bar_height", d.HUD.BarHeight)
	v.SetDefault("hud.font_size", d.HUD.FontSize)

	v.SetDefault("input.mouse_sensitivity", d.Input.MouseSensitivity)
	v.SetDefault("input.invert_look", d.Input.InvertLook)
	v.SetDefault("input.analog_deadzone", d.Input.AnalogDeadzone)
	v.SetDefault("input.capture_cursor", d.Input.CaptureCursor)

	v.SetDefault("debug.overlay", d.Debug.Overlay)
	v.SetDefault("debug.font_size", d.Debug.FontSize)

	v.SetDefault("level.path", d.Level.Path)
	v.SetDefault("level.game_over_delay", d.Level.GameOverDelay)
}
