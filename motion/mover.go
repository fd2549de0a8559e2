// Package motion integrates character movement against a resolv collision space.
package motion

import (
	"math"

	"github.com/automoto/rotr/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Config holds the integrator constants. Speeds are in world units per second.
type Config struct {
	Acceleration        float64
	BrakingDeceleration float64
	CrouchedSpeed       float64 // speed cap while crouched
	JumpZVelocity       float64
	Gravity             float64
	AirControl          float64 // fraction of Acceleration available while airborne
	RotationRate        float64 // deg/sec the facing turns toward the movement direction
	SolidTags           []string
}

// contactEpsilon absorbs rounding when the mover rests flush against a solid.
const contactEpsilon = 1e-6

// Mover is the movement integrator for one character.
type Mover struct {
	Object    *resolv.Object
	Velocity  gamemath.Vec2
	Z         float64 // height above the floor
	VelocityZ float64
	Facing    float64 // yaw in degrees

	cfg           Config
	maxSpeed      float64
	crouched      bool
	pending       gamemath.Vec2
	jumpRequested bool
}

func NewMover(obj *resolv.Object, cfg Config) *Mover {
	return &Mover{
		Object: obj,
		cfg:    cfg,
	}
}

func (m *Mover) SetMaxSpeed(speed float64) {
	m.maxSpeed = speed
}

// MaxSpeed is the cap requested by the character, before the crouch limit.
func (m *Mover) MaxSpeed() float64 {
	return m.maxSpeed
}

// EffectiveMaxSpeed applies the crouch limit to MaxSpeed.
func (m *Mover) EffectiveMaxSpeed() float64 {
	if m.crouched && m.cfg.CrouchedSpeed > 0 {
		return math.Min(m.maxSpeed, m.cfg.CrouchedSpeed)
	}
	return m.maxSpeed
}

func (m *Mover) IsCrouching() bool {
	return m.crouched
}

// Crouch only takes effect on the ground.
func (m *Mover) Crouch() {
	if m.IsFalling() {
		return
	}
	m.crouched = true
}

func (m *Mover) UnCrouch() {
	m.crouched = false
}

// AddMovementInput queues input for the next Integrate call. Inputs accumulate
// and are clamped to unit length when consumed.
func (m *Mover) AddMovementInput(direction gamemath.Vec2, scale float64) {
	m.pending = gamemath.Add(m.pending, gamemath.Scale(direction, scale))
}

// ConsumeInputVector returns the queued input and clears it along with any
// pending jump.
func (m *Mover) ConsumeInputVector() gamemath.Vec2 {
	in := m.pending
	m.pending = gamemath.Vec2{}
	m.jumpRequested = false
	return in
}

// Jump requests a jump on the next Integrate call, if grounded and not crouched.
func (m *Mover) Jump() {
	m.jumpRequested = true
}

func (m *Mover) StopJumping() {
	m.jumpRequested = false
}

func (m *Mover) IsFalling() bool {
	return m.Z > 0
}

// Speed is the current planar speed.
func (m *Mover) Speed() float64 {
	return gamemath.Length(m.Velocity)
}

// Center is the middle of the collision footprint.
func (m *Mover) Center() gamemath.Vec2 {
	return gamemath.Vec2{X: m.Object.X + m.Object.W/2, Y: m.Object.Y + m.Object.H/2}
}

// Integrate consumes the queued input and advances the mover by dt seconds.
func (m *Mover) Integrate(dt float64) {
	if dt <= 0 {
		return
	}

	in := gamemath.ClampLength(m.pending, 1)
	m.pending = gamemath.Vec2{}

	speed := m.EffectiveMaxSpeed()
	accel := m.cfg.Acceleration
	if m.IsFalling() {
		accel *= m.cfg.AirControl
	}

	if gamemath.Length(in) > 0 {
		target := gamemath.Scale(in, speed)
		m.Velocity = gamemath.MoveToward(m.Velocity, target, accel*dt)
		if m.cfg.RotationRate > 0 {
			m.Facing = gamemath.RotateToward(m.Facing, gamemath.Heading(in), m.cfg.RotationRate*dt)
		}
	} else if !m.IsFalling() {
		m.Velocity = gamemath.MoveToward(m.Velocity, gamemath.Vec2{}, m.cfg.BrakingDeceleration*dt)
	}
	m.Velocity = gamemath.ClampLength(m.Velocity, speed)

	m.integrateZ(dt)
	m.move(m.Velocity.X*dt, m.Velocity.Y*dt)
}

func (m *Mover) integrateZ(dt float64) {
	if m.jumpRequested && !m.IsFalling() && !m.crouched {
		m.VelocityZ = m.cfg.JumpZVelocity
	}
	m.jumpRequested = false

	if !m.IsFalling() && m.VelocityZ <= 0 {
		m.VelocityZ = 0
		return
	}
	m.VelocityZ -= m.cfg.Gravity * dt
	m.Z += m.VelocityZ * dt
	if m.Z <= 0 {
		m.Z = 0
		m.VelocityZ = 0
	}
}

// move resolves horizontal then vertical movement in steps no longer than half
// the footprint, since resolv only checks the destination cells. Queries are
// padded by a unit so a solid starting on the next cell boundary is not missed.
func (m *Mover) move(dx, dy float64) {
	obj := m.Object
	if obj == nil || (dx == 0 && dy == 0) {
		return
	}

	maxStep := math.Max(math.Min(obj.W, obj.H)/2, 1)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxStep))
	stepX, stepY := dx/float64(steps), dy/float64(steps)

	for i := 0; i < steps; i++ {
		if stepX != 0 {
			moved, blocked := m.resolveX(stepX)
			obj.X += moved
			if blocked {
				stepX = 0
				m.Velocity.X = 0
			}
		}
		if stepY != 0 {
			moved, blocked := m.resolveY(stepY)
			obj.Y += moved
			if blocked {
				stepY = 0
				m.Velocity.Y = 0
			}
		}
		if obj.Space != nil {
			obj.Update()
		}
	}
}

func (m *Mover) resolveX(dx float64) (float64, bool) {
	obj := m.Object
	allowed, blocked := dx, false
	for _, s := range m.solids(dx+math.Copysign(1, dx), 0) {
		if !overlaps(obj.Y, obj.H, s.Y, s.H) {
			continue
		}
		if dx > 0 {
			gap := s.X - (obj.X + obj.W)
			if gap > -contactEpsilon && gap < allowed {
				allowed, blocked = math.Max(gap, 0), true
			}
		} else {
			gap := (s.X + s.W) - obj.X
			if gap < contactEpsilon && gap > allowed {
				allowed, blocked = math.Min(gap, 0), true
			}
		}
	}
	return allowed, blocked
}

func (m *Mover) resolveY(dy float64) (float64, bool) {
	obj := m.Object
	allowed, blocked := dy, false
	for _, s := range m.solids(0, dy+math.Copysign(1, dy)) {
		if !overlaps(obj.X, obj.W, s.X, s.W) {
			continue
		}
		if dy > 0 {
			gap := s.Y - (obj.Y + obj.H)
			if gap > -contactEpsilon && gap < allowed {
				allowed, blocked = math.Max(gap, 0), true
			}
		} else {
			gap := (s.Y + s.H) - obj.Y
			if gap < contactEpsilon && gap > allowed {
				allowed, blocked = math.Min(gap, 0), true
			}
		}
	}
	return allowed, blocked
}

func (m *Mover) solids(dx, dy float64) []*resolv.Object {
	if m.Object.Space == nil || len(m.cfg.SolidTags) == 0 {
		return nil
	}
	check := m.Object.Check(dx, dy, m.cfg.SolidTags...)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(m.cfg.SolidTags...)
}

func overlaps(a, al, b, bl float64) bool {
	return a < b+bl && b < a+al
}
