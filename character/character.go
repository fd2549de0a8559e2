// Package character is the playable character: resources, movement modifiers
// and input routing. The game runtime drives it through Tick and SetupInput;
// movement integration, camera rotation and the clock are supplied from outside.
package character

import (
	"github.com/automoto/rotr/input"
	"github.com/automoto/rotr/shared/gamemath"
	"go.uber.org/zap"
)

// Tickable is advanced once per simulation step, before physics.
type Tickable interface {
	Tick(dt float64)
}

// PauseAware is a Tickable that decides whether it ticks while the game is paused.
type PauseAware interface {
	TicksWhenPaused() bool
}

// TickActor ticks t for dt unless the game is paused. Only a PauseAware t that
// opts in ticks while paused. It reports whether t ticked.
func TickActor(t Tickable, paused bool, dt float64) bool {
	if paused {
		pa, ok := t.(PauseAware)
		if !ok || !pa.TicksWhenPaused() {
			return false
		}
	}
	t.Tick(dt)
	return true
}

// InputReceiver binds its handlers against an input table.
type InputReceiver interface {
	SetupInput(b input.Binder)
}

// Movement is the movement integrator the character steers.
type Movement interface {
	SetMaxSpeed(speed float64)
	MaxSpeed() float64
	IsCrouching() bool
	Crouch()
	UnCrouch()
	AddMovementInput(direction gamemath.Vec2, scale float64)
	Jump()
	StopJumping()
}

// View is the control rotation the camera rig follows. Angles are in degrees.
type View interface {
	AddYawInput(value float64)
	AddPitchInput(value float64)
	ControlYaw() float64
}

// Headset recenters a head-mounted display.
type Headset interface {
	ResetOrientationAndPosition()
}

// Clock reports the elapsed time of the current frame in seconds.
type Clock interface {
	DeltaSeconds() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) DeltaSeconds() float64 { return f() }

// FixedClock always reports the same frame time.
type FixedClock float64

func (c FixedClock) DeltaSeconds() float64 { return float64(c) }

// Tuning is the editable set of character constants.
type Tuning struct {
	MaxHealth    float64
	MaxStamina   float64
	StaminaRegen float64

	WalkSpeed   float64
	RunSpeed    float64
	SprintSpeed float64
	RunCost     float64
	SprintCost  float64

	BaseTurnRate   float64 // deg/sec at full axis deflection
	BaseLookUpRate float64 // deg/sec at full axis deflection
}

// DefaultTuning returns the stock character constants.
func DefaultTuning() Tuning {
	return Tuning{
		MaxHealth:      100,
		MaxStamina:     100,
		StaminaRegen:   2,
		WalkSpeed:      100,
		RunSpeed:       400,
		SprintSpeed:    600,
		RunCost:        1,
		SprintCost:     10,
		BaseTurnRate:   45,
		BaseLookUpRate: 45,
	}
}

// Character owns its stats and sprint state outright.
type Character struct {
	Stats
	Tuning      Tuning
	IsSprinting bool
	// TickEvenWhenPaused keeps stamina running while the game is paused. Off by default.
	TickEvenWhenPaused bool

	movement Movement
	view     View
	headset  Headset
	clock    Clock
	logger   *zap.Logger
}

var (
	_ Tickable      = (*Character)(nil)
	_ InputReceiver = (*Character)(nil)
	_ PauseAware    = (*Character)(nil)
)

type Option func(*Character)

func WithLogger(l *zap.Logger) Option {
	return func(c *Character) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithClock(clock Clock) Option {
	return func(c *Character) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func WithHeadset(h Headset) Option {
	return func(c *Character) {
		c.headset = h
	}
}

// New creates a character at full health and stamina with the run speed cap applied.
func New(t Tuning, movement Movement, view View, opts ...Option) *Character {
	c := &Character{
		Stats:    NewStats(t.MaxHealth, t.MaxStamina),
		Tuning:   t,
		movement: movement,
		view:     view,
		clock:    FixedClock(0),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.movement != nil {
		c.movement.SetMaxSpeed(t.RunSpeed)
	}
	return c
}

// Tick regenerates stamina and drains the cost of the current movement mode.
// Running out of stamina stops the sprint within the same tick.
func (c *Character) Tick(dt float64) {
	cost := c.Tuning.RunCost
	if c.IsSprinting {
		cost = c.Tuning.SprintCost
	}
	if !c.ApplyStaminaDelta((c.Tuning.StaminaRegen - cost) * dt) {
		if c.IsSprinting {
			c.logger.Debug("stamina exhausted, sprint stopped", zap.Float64("stamina", c.Stamina))
		}
		c.StopSprint()
	}
}

func (c *Character) TicksWhenPaused() bool {
	return c.TickEvenWhenPaused
}

// StartSprint raises the speed cap to SprintSpeed. Sprinting needs stamina left.
func (c *Character) StartSprint() {
	if c.Stamina <= 0 {
		return
	}
	c.IsSprinting = true
	c.setMaxSpeed(c.Tuning.SprintSpeed)
}

// StopSprint restores the run speed cap.
func (c *Character) StopSprint() {
	c.IsSprinting = false
	c.setMaxSpeed(c.Tuning.RunSpeed)
}

// ToggleCrouch crouches when standing and stands when crouched.
func (c *Character) ToggleCrouch() {
	if c.movement == nil {
		return
	}
	if !c.movement.IsCrouching() {
		c.movement.Crouch()
	} else {
		c.movement.UnCrouch()
	}
	c.logger.Debug("crouch toggled", zap.Bool("crouching", c.movement.IsCrouching()))
}

func (c *Character) IsCrouching() bool {
	return c.movement != nil && c.movement.IsCrouching()
}

// MaxSpeed is the movement cap currently applied to the integrator.
func (c *Character) MaxSpeed() float64 {
	if c.movement == nil {
		return 0
	}
	return c.movement.MaxSpeed()
}

// TakeDamage subtracts amount from health and reports whether the character survived.
func (c *Character) TakeDamage(amount float64) bool {
	wasAlive := c.Alive()
	alive := c.ApplyHealthDelta(-amount)
	if wasAlive && !alive {
		c.logger.Info("character died", zap.Float64("health", c.Health))
	}
	return alive
}

func (c *Character) setMaxSpeed(speed float64) {
	if c.movement != nil {
		c.movement.SetMaxSpeed(speed)
	}
}
