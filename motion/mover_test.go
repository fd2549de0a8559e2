package motion

import (
	"math"
	"testing"

	"github.com/automoto/rotr/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testConfig() Config {
	return Config{
		Acceleration:        2048,
		BrakingDeceleration: 2048,
		CrouchedSpeed:       100,
		JumpZVelocity:       600,
		Gravity:             1960,
		AirControl:          0.2,
		RotationRate:        540,
		SolidTags:           []string{"solid"},
	}
}

func newTestMover(x, y float64) *Mover {
	m := NewMover(resolv.NewObject(x, y, 20, 20, "character"), testConfig())
	m.SetMaxSpeed(400)
	return m
}

func TestIntegrate_AcceleratesToCap(t *testing.T) {
	m := newTestMover(0, 0)

	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(0.1)
	assert.InDelta(t, 204.8, m.Speed(), 1e-9)

	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(1)
	assert.InDelta(t, 400, m.Speed(), 1e-9)
}

func TestIntegrate_InputIsConsumed(t *testing.T) {
	m := newTestMover(0, 0)
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(1)

	m.Integrate(1)
	assert.Zero(t, m.Speed(), "braking without input stops the mover")
}

func TestIntegrate_DiagonalInputClampedToUnit(t *testing.T) {
	m := newTestMover(0, 0)
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.AddMovementInput(gamemath.Vec2{Y: 1}, 1)
	m.Integrate(1)
	assert.InDelta(t, 400, m.Speed(), 1e-9)
}

func TestIntegrate_LowerCapTakesEffectImmediately(t *testing.T) {
	m := newTestMover(0, 0)
	m.SetMaxSpeed(600)
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(1)
	require.InDelta(t, 600, m.Speed(), 1e-9)

	m.SetMaxSpeed(400)
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(0.01)
	assert.InDelta(t, 400, m.Speed(), 1e-9)
}

func TestCrouch_CapsSpeed(t *testing.T) {
	m := newTestMover(0, 0)
	m.Crouch()
	require.True(t, m.IsCrouching())
	assert.Equal(t, 100.0, m.EffectiveMaxSpeed())
	assert.Equal(t, 400.0, m.MaxSpeed())

	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(1)
	assert.InDelta(t, 100, m.Speed(), 1e-9)

	m.UnCrouch()
	assert.False(t, m.IsCrouching())
	assert.Equal(t, 400.0, m.EffectiveMaxSpeed())
}

func TestJump_RisesAndLands(t *testing.T) {
	m := newTestMover(0, 0)
	m.Jump()
	m.Integrate(0.1)
	require.True(t, m.IsFalling())
	assert.Greater(t, m.Z, 0.0)

	m.Jump()
	vz := m.VelocityZ
	m.Integrate(0.1)
	assert.Less(t, m.VelocityZ, vz, "no second jump while airborne")

	for i := 0; i < 20; i++ {
		m.Integrate(0.05)
	}
	assert.False(t, m.IsFalling())
	assert.Zero(t, m.Z)
	assert.Zero(t, m.VelocityZ)
}

func TestJump_StopJumpingCancelsPendingJump(t *testing.T) {
	m := newTestMover(0, 0)
	m.Jump()
	m.StopJumping()
	m.Integrate(0.1)
	assert.False(t, m.IsFalling())
}

func TestJump_RefusedWhileCrouched(t *testing.T) {
	m := newTestMover(0, 0)
	m.Crouch()
	m.Jump()
	m.Integrate(0.1)
	assert.False(t, m.IsFalling())
}

func TestCrouch_IgnoredWhileAirborne(t *testing.T) {
	m := newTestMover(0, 0)
	m.Jump()
	m.Integrate(0.1)
	m.Crouch()
	assert.False(t, m.IsCrouching())
}

func TestIntegrate_AirControlLimitsAcceleration(t *testing.T) {
	m := newTestMover(0, 0)
	m.Jump()
	m.Integrate(0.01)
	require.True(t, m.IsFalling())

	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(0.1)
	assert.InDelta(t, 2048*0.2*0.1, m.Speed(), 1e-9)
}

func TestIntegrate_RotatesFacingAtRate(t *testing.T) {
	m := newTestMover(0, 0)
	m.AddMovementInput(gamemath.Vec2{Y: -1}, 1)
	m.Integrate(0.1)
	assert.InDelta(t, 360-54, m.Facing, 1e-9)

	m.AddMovementInput(gamemath.Vec2{Y: -1}, 1)
	m.Integrate(1)
	assert.InDelta(t, 270, m.Facing, 1e-9)
}

func TestIntegrate_StopsAtWall(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	m := newTestMover(48, 48)
	wall := resolv.NewObject(112, 0, 32, 480, "solid")
	space.Add(m.Object, wall)

	m.SetMaxSpeed(1000)
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Velocity = gamemath.Vec2{X: 1000}
	m.Integrate(0.1)

	assert.InDelta(t, 92, m.Object.X, 1e-9, "flush against the wall")
	assert.Zero(t, m.Velocity.X)
	assert.Equal(t, 48.0, m.Object.Y)
}

func TestIntegrate_SlidesAlongWall(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	m := newTestMover(92, 48)
	wall := resolv.NewObject(112, 0, 32, 480, "solid")
	space.Add(m.Object, wall)

	m.Velocity = gamemath.Vec2{X: 200, Y: 200}
	m.AddMovementInput(gamemath.Vec2{X: 1, Y: 1}, 1)
	m.Integrate(0.05)

	assert.InDelta(t, 92, m.Object.X, 1e-9)
	assert.Greater(t, m.Object.Y, 48.0)
}

func TestIntegrate_IgnoresNonSolids(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	m := newTestMover(48, 48)
	hazard := resolv.NewObject(80, 0, 32, 480, "hazard")
	space.Add(m.Object, hazard)

	m.Velocity = gamemath.Vec2{X: 400}
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(0.1)
	assert.InDelta(t, 88, m.Object.X, 1e-9)
}

func TestIntegrate_NeverTunnelsThroughWalls(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		space := resolv.NewSpace(1280, 480, 16, 16)
		m := newTestMover(48, 200)
		wall := resolv.NewObject(320, 0, 16, 480, "solid")
		space.Add(m.Object, wall)
		m.SetMaxSpeed(rapid.Float64Range(50, 2000).Draw(t, "speed"))

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
			m.Integrate(rapid.Float64Range(0.001, 0.25).Draw(t, "dt"))
			if m.Object.X+m.Object.W > wall.X+1e-9 {
				t.Fatalf("mover crossed wall: x=%v", m.Object.X)
			}
		}
		if math.IsNaN(m.Object.X) {
			t.Fatalf("position is NaN")
		}
	})
}

func TestIntegrate_ZeroDtIsNoop(t *testing.T) {
	m := newTestMover(10, 10)
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Integrate(0)
	assert.Equal(t, 10.0, m.Object.X)
	assert.Zero(t, m.Speed())
}

func TestConsumeInputVector_DropsQueuedInput(t *testing.T) {
	m := newTestMover(0, 0)
	m.AddMovementInput(gamemath.Vec2{X: 1}, 1)
	m.Jump()

	in := m.ConsumeInputVector()
	assert.Equal(t, gamemath.Vec2{X: 1}, in)

	m.Integrate(0.1)
	assert.Zero(t, m.Speed())
	assert.False(t, m.IsFalling())
}
