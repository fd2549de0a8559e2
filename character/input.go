package character

import (
	"github.com/automoto/rotr/input"
	"github.com/automoto/rotr/shared/gamemath"
)

// Action and axis names the character binds.
const (
	ActionJump        = "Jump"
	ActionSprint      = "Sprint"
	ActionCrawlToggle = "CrawlToggle"
	ActionResetVR     = "ResetVR"

	AxisMoveForward = "MoveForward"
	AxisMoveRight   = "MoveRight"
	AxisTurn        = "Turn"
	AxisTurnRate    = "TurnRate"
	AxisLookUp      = "LookUp"
	AxisLookUpRate  = "LookUpRate"
)

// SetupInput binds the character's gameplay handlers. A nil binder is a
// configuration error and panics.
func (c *Character) SetupInput(b input.Binder) {
	if b == nil {
		panic("character: input binder must not be nil")
	}

	b.BindAction(ActionJump, input.Pressed, c.Jump)
	b.BindAction(ActionJump, input.Released, c.StopJumping)

	b.BindAxis(AxisMoveForward, c.MoveForward)
	b.BindAxis(AxisMoveRight, c.MoveRight)

	// "Turn"/"LookUp" carry absolute deltas (mouse); the "Rate" variants are
	// normalized rates (analog stick) scaled by frame time.
	b.BindAxis(AxisTurn, c.AddYawInput)
	b.BindAxis(AxisTurnRate, c.TurnAtRate)
	b.BindAxis(AxisLookUp, c.AddPitchInput)
	b.BindAxis(AxisLookUpRate, c.LookUpAtRate)

	b.BindTouch(input.Pressed, c.touchStarted)
	b.BindTouch(input.Released, c.touchStopped)

	b.BindAction(ActionResetVR, input.Pressed, c.ResetVR)

	b.BindAction(ActionSprint, input.Pressed, c.StartSprint)
	b.BindAction(ActionSprint, input.Released, c.StopSprint)
	b.BindAction(ActionCrawlToggle, input.Released, c.ToggleCrouch)
}

func (c *Character) Jump() {
	if c.movement != nil {
		c.movement.Jump()
	}
}

func (c *Character) StopJumping() {
	if c.movement != nil {
		c.movement.StopJumping()
	}
}

// MoveForward moves along the control yaw.
func (c *Character) MoveForward(value float64) {
	if c.view == nil || c.movement == nil || value == 0 {
		return
	}
	c.movement.AddMovementInput(gamemath.Direction(c.view.ControlYaw()), value)
}

// MoveRight strafes perpendicular to the control yaw.
func (c *Character) MoveRight(value float64) {
	if c.view == nil || c.movement == nil || value == 0 {
		return
	}
	c.movement.AddMovementInput(gamemath.RightOf(c.view.ControlYaw()), value)
}

func (c *Character) AddYawInput(value float64) {
	if c.view != nil {
		c.view.AddYawInput(value)
	}
}

func (c *Character) AddPitchInput(value float64) {
	if c.view != nil {
		c.view.AddPitchInput(value)
	}
}

// TurnAtRate turns at a normalized rate; 1.0 means BaseTurnRate degrees per second.
func (c *Character) TurnAtRate(rate float64) {
	c.AddYawInput(rate * c.Tuning.BaseTurnRate * c.clock.DeltaSeconds())
}

// LookUpAtRate pitches at a normalized rate; 1.0 means BaseLookUpRate degrees per second.
func (c *Character) LookUpAtRate(rate float64) {
	c.AddPitchInput(rate * c.Tuning.BaseLookUpRate * c.clock.DeltaSeconds())
}

// ResetVR recenters the headset, if one is attached.
func (c *Character) ResetVR() {
	if c.headset != nil {
		c.headset.ResetOrientationAndPosition()
	}
}

func (c *Character) touchStarted(finger int, x, y float64) {
	c.Jump()
}

func (c *Character) touchStopped(finger int, x, y float64) {
	c.StopJumping()
}
