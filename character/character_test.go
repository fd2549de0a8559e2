package character

import (
	"testing"

	"github.com/automoto/rotr/input"
	"github.com/automoto/rotr/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type fakeMovement struct {
	maxSpeed  float64
	crouching bool
	inputs    []gamemath.Vec2
	scales    []float64
	jumps     int
	stops     int
}

func (m *fakeMovement) SetMaxSpeed(speed float64) { m.maxSpeed = speed }
func (m *fakeMovement) MaxSpeed() float64         { return m.maxSpeed }
func (m *fakeMovement) IsCrouching() bool         { return m.crouching }
func (m *fakeMovement) Crouch()                   { m.crouching = true }
func (m *fakeMovement) UnCrouch()                 { m.crouching = false }
func (m *fakeMovement) Jump()                     { m.jumps++ }
func (m *fakeMovement) StopJumping()              { m.stops++ }
func (m *fakeMovement) AddMovementInput(dir gamemath.Vec2, scale float64) {
	m.inputs = append(m.inputs, dir)
	m.scales = append(m.scales, scale)
}

type fakeView struct {
	yaw, pitch float64
}

func (v *fakeView) AddYawInput(value float64)   { v.yaw += value }
func (v *fakeView) AddPitchInput(value float64) { v.pitch += value }
func (v *fakeView) ControlYaw() float64         { return v.yaw }

type fakeHeadset struct{ resets int }

func (h *fakeHeadset) ResetOrientationAndPosition() { h.resets++ }

func newTestCharacter(opts ...Option) (*Character, *fakeMovement, *fakeView) {
	m := &fakeMovement{}
	v := &fakeView{}
	return New(DefaultTuning(), m, v, opts...), m, v
}

func TestNew_AppliesRunSpeed(t *testing.T) {
	c, m, _ := newTestCharacter()
	assert.Equal(t, 400.0, m.maxSpeed)
	assert.Equal(t, 100.0, c.Health)
	assert.Equal(t, 100.0, c.Stamina)
	assert.False(t, c.IsSprinting)
}

func TestSprint_SwapsSpeedCap(t *testing.T) {
	c, m, _ := newTestCharacter()
	c.StartSprint()
	assert.True(t, c.IsSprinting)
	assert.Equal(t, 600.0, m.maxSpeed)
	assert.Equal(t, 600.0, c.MaxSpeed())

	c.StopSprint()
	assert.False(t, c.IsSprinting)
	assert.Equal(t, 400.0, m.maxSpeed)
}

func TestStartSprint_RefusedWhenExhausted(t *testing.T) {
	c, m, _ := newTestCharacter()
	c.Stamina = 0
	c.StartSprint()
	assert.False(t, c.IsSprinting)
	assert.Equal(t, 400.0, m.maxSpeed)
}

func TestTick_ExhaustionStopsSprintSameTick(t *testing.T) {
	c, m, _ := newTestCharacter()
	c.Stamina = 5
	c.StartSprint()

	c.Tick(1)

	assert.Equal(t, -3.0, c.Stamina)
	assert.Equal(t, 0.0, c.StaminaPercentage)
	assert.False(t, c.IsSprinting)
	assert.Equal(t, 400.0, m.maxSpeed)
}

func TestTick_RunRegenNetPositive(t *testing.T) {
	c, _, _ := newTestCharacter()
	c.Stamina = 50
	c.Tick(2)
	// (regen 2 - run cost 1) * 2s
	assert.Equal(t, 52.0, c.Stamina)
	assert.Equal(t, 0.52, c.StaminaPercentage)
}

func TestTick_SprintDrainsScaledByDelta(t *testing.T) {
	c, _, _ := newTestCharacter()
	c.StartSprint()
	c.Tick(0.5)
	assert.Equal(t, 96.0, c.Stamina)
	assert.True(t, c.IsSprinting)
}

func TestTick_CostDoesNotDependOnMovement(t *testing.T) {
	idle, _, _ := newTestCharacter()
	idle.StartSprint()
	idle.Tick(1)

	moving, _, _ := newTestCharacter()
	moving.StartSprint()
	moving.MoveForward(1)
	moving.Tick(1)

	assert.Equal(t, 92.0, idle.Stamina)
	assert.Equal(t, idle.Stamina, moving.Stamina)
}

func TestTick_StaminaClampedAtMax(t *testing.T) {
	c, _, _ := newTestCharacter()
	c.Tick(10)
	assert.Equal(t, 100.0, c.Stamina)
	assert.Equal(t, 1.0, c.StaminaPercentage)
}

func TestTick_RecoversAfterExhaustion(t *testing.T) {
	c, _, _ := newTestCharacter()
	c.Stamina = 1
	c.StartSprint()
	c.Tick(1)
	require.False(t, c.IsSprinting)
	require.Equal(t, -7.0, c.Stamina)

	for i := 0; i < 8; i++ {
		c.Tick(1)
	}
	assert.Equal(t, 1.0, c.Stamina)
	c.StartSprint()
	assert.True(t, c.IsSprinting)
}

func TestToggleCrouch_TwiceRestoresStance(t *testing.T) {
	c, m, _ := newTestCharacter()
	require.False(t, c.IsCrouching())
	c.ToggleCrouch()
	assert.True(t, m.crouching)
	c.ToggleCrouch()
	assert.False(t, m.crouching)
}

func TestTakeDamage(t *testing.T) {
	c, _, _ := newTestCharacter()
	assert.True(t, c.TakeDamage(30))
	assert.Equal(t, 0.7, c.HealthPercentage)
	assert.False(t, c.TakeDamage(100))
	assert.Equal(t, -30.0, c.Health)
	assert.False(t, c.Alive())
}

func TestNilCollaborators(t *testing.T) {
	c := New(DefaultTuning(), nil, nil)
	assert.NotPanics(t, func() {
		c.StartSprint()
		c.StopSprint()
		c.ToggleCrouch()
		c.Jump()
		c.StopJumping()
		c.MoveForward(1)
		c.TurnAtRate(1)
		c.ResetVR()
		c.Tick(1)
	})
	assert.Equal(t, 0.0, c.MaxSpeed())
}

func TestSetupInput_NilBinderPanics(t *testing.T) {
	c, _, _ := newTestCharacter()
	assert.PanicsWithValue(t, "character: input binder must not be nil", func() {
		c.SetupInput(nil)
	})
}

func TestSetupInput_RoutesActions(t *testing.T) {
	h := &fakeHeadset{}
	c, m, _ := newTestCharacter(WithHeadset(h))
	table := input.NewTable()
	c.SetupInput(table)

	assert.ElementsMatch(t, []string{ActionJump, ActionSprint, ActionCrawlToggle, ActionResetVR}, table.Actions())
	assert.ElementsMatch(t, []string{AxisMoveForward, AxisMoveRight, AxisTurn, AxisTurnRate, AxisLookUp, AxisLookUpRate}, table.Axes())

	table.DispatchAction(ActionJump, input.Pressed)
	table.DispatchAction(ActionJump, input.Released)
	assert.Equal(t, 1, m.jumps)
	assert.Equal(t, 1, m.stops)

	table.DispatchAction(ActionSprint, input.Pressed)
	assert.True(t, c.IsSprinting)
	table.DispatchAction(ActionSprint, input.Released)
	assert.False(t, c.IsSprinting)

	table.DispatchAction(ActionCrawlToggle, input.Pressed)
	assert.False(t, m.crouching, "crouch toggles on release")
	table.DispatchAction(ActionCrawlToggle, input.Released)
	assert.True(t, m.crouching)

	table.DispatchAction(ActionResetVR, input.Pressed)
	assert.Equal(t, 1, h.resets)

	table.DispatchTouch(input.Pressed, 0, 10, 10)
	table.DispatchTouch(input.Released, 0, 10, 10)
	assert.Equal(t, 2, m.jumps)
	assert.Equal(t, 2, m.stops)
}

func TestSetupInput_MovementRelativeToYaw(t *testing.T) {
	c, m, v := newTestCharacter()
	table := input.NewTable()
	c.SetupInput(table)

	v.yaw = 90
	table.DispatchAxis(AxisMoveForward, 0)
	assert.Empty(t, m.inputs, "zero axis value adds no input")

	table.DispatchAxis(AxisMoveForward, 0.5)
	require.Len(t, m.inputs, 1)
	assert.InDelta(t, 0.0, m.inputs[0].X, 1e-9)
	assert.InDelta(t, 1.0, m.inputs[0].Y, 1e-9)
	assert.Equal(t, 0.5, m.scales[0])

	table.DispatchAxis(AxisMoveRight, -1)
	require.Len(t, m.inputs, 2)
	assert.InDelta(t, -1.0, m.inputs[1].X, 1e-9)
	assert.InDelta(t, 0.0, m.inputs[1].Y, 1e-9)
	assert.Equal(t, -1.0, m.scales[1])
}

func TestSetupInput_RateAxesScaleByTurnRateAndFrameTime(t *testing.T) {
	c, _, v := newTestCharacter(WithClock(FixedClock(0.5)))
	table := input.NewTable()
	c.SetupInput(table)

	table.DispatchAxis(AxisTurnRate, 1)
	assert.Equal(t, 22.5, v.yaw)
	table.DispatchAxis(AxisLookUpRate, -0.5)
	assert.Equal(t, -11.25, v.pitch)

	table.DispatchAxis(AxisTurn, 3)
	table.DispatchAxis(AxisLookUp, 2)
	assert.Equal(t, 25.5, v.yaw)
	assert.Equal(t, -9.25, v.pitch)
}

func TestClockFunc(t *testing.T) {
	var clock Clock = ClockFunc(func() float64 { return 0.25 })
	assert.Equal(t, 0.25, clock.DeltaSeconds())
}

func TestProperty_SprintNeverOutlivesStamina(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c, m, _ := newTestCharacter()
		n := rapid.IntRange(1, 200).Draw(rt, "ticks")
		for i := 0; i < n; i++ {
			if rapid.Bool().Draw(rt, "sprintPress") {
				c.StartSprint()
			}
			if rapid.Bool().Draw(rt, "sprintRelease") {
				c.StopSprint()
			}
			c.Tick(rapid.Float64Range(0, 1).Draw(rt, "dt"))
			if c.IsSprinting && c.Stamina <= 0 {
				rt.Fatalf("sprinting with stamina %v", c.Stamina)
			}
			want := c.Tuning.RunSpeed
			if c.IsSprinting {
				want = c.Tuning.SprintSpeed
			}
			if m.maxSpeed != want {
				rt.Fatalf("speed cap %v, want %v", m.maxSpeed, want)
			}
		}
	})
}
