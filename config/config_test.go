package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/rotr/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefaultTuningMatchesCharacter(t *testing.T) {
	assert.Equal(t, character.DefaultTuning(), Default().Character.Tuning())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotr.yaml")
	err := os.WriteFile(path, []byte(`
window:
  width: 1600
  height: 900
logging:
  level: debug
character:
  sprint_speed: 750
  sprint_cost: 12.5
camera:
  target_arm_length: 450
hud:
  enabled: false
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
	assert.Equal(t, 750.0, cfg.Character.SprintSpeed)
	assert.Equal(t, 12.5, cfg.Character.SprintCost)
	assert.Equal(t, 400.0, cfg.Character.RunSpeed)
	assert.Equal(t, 450.0, cfg.Camera.TargetArmLength)
	assert.False(t, cfg.HUD.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ROTR_CHARACTER_RUN_SPEED", "321")
	t.Setenv("ROTR_INPUT_INVERT_LOOK", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 321.0, cfg.Character.RunSpeed)
	assert.True(t, cfg.Input.InvertLook)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("character:\n  max_health: 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "character.max_health")
}

func TestValidateAggregatesViolations(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"
	cfg.Movement.AirControl = 2
	cfg.Camera.PitchMin = 20
	cfg.Level.Path = ""

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"logging.level", "movement.air_control", "camera.pitch_min", "level.path"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestMoverCrouchesAtWalkSpeed(t *testing.T) {
	cfg := Default()
	m := cfg.Movement.Mover(cfg.Character.WalkSpeed, "solid")
	assert.Equal(t, cfg.Character.WalkSpeed, m.CrouchedSpeed)
	assert.Equal(t, []string{"solid"}, m.SolidTags)
	assert.Equal(t, 540.0, m.RotationRate)
}

func TestRigUsesViewSize(t *testing.T) {
	r := Default().Camera.Rig(640, 360)
	assert.Equal(t, 640.0, r.ViewWidth)
	assert.Equal(t, 360.0, r.ViewHeight)
	assert.Equal(t, 300.0, r.TargetArmLength)
}

func TestBindingsCoverCharacterInputs(t *testing.T) {
	for _, a := range []string{character.ActionJump, character.ActionSprint, character.ActionCrawlToggle, character.ActionResetVR} {
		assert.Contains(t, Input.Actions, a)
	}
	for _, a := range []string{
		character.AxisMoveForward, character.AxisMoveRight,
		character.AxisTurn, character.AxisTurnRate,
		character.AxisLookUp, character.AxisLookUpRate,
	} {
		assert.Contains(t, Input.Axes, a)
	}
}

func TestBindingsPauseIsDistinctFromMenuSelect(t *testing.T) {
	for _, a := range []string{ActionPause, ActionMenuSelect, ActionMenuBack, ActionMenuUp, ActionMenuDown, ActionMenuLeft, ActionMenuRight} {
		assert.Contains(t, Input.Actions, a)
	}
	pause := Input.Actions[ActionPause]
	sel := Input.Actions[ActionMenuSelect]
	for _, k := range pause.Keys {
		assert.NotContains(t, sel.Keys, k)
	}
	for _, b := range pause.StandardGamepadButtons {
		assert.NotContains(t, sel.StandardGamepadButtons, b)
	}
}

func TestValidateCharacterMaxima(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Default()
		cfg.Character.MaxHealth = rapid.Float64Range(-1000, 1000).Draw(t, "maxHealth")
		cfg.Character.MaxStamina = rapid.Float64Range(-1000, 1000).Draw(t, "maxStamina")
		valid := cfg.Character.MaxHealth > 0 && cfg.Character.MaxStamina > 0
		if got := cfg.Validate() == nil; got != valid {
			t.Fatalf("Validate() ok=%v, want %v", got, valid)
		}
	})
}
