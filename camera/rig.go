// Package camera is the third-person camera rig: a control rotation the
// character steers and a spring arm that trails the character and pulls in
// when a solid blocks it.
package camera

import (
	"math"

	"github.com/automoto/rotr/shared/gamemath"
	"github.com/solarlune/resolv"
)

type Config struct {
	TargetArmLength float64
	ProbeSize       float64 // edge of the square used to probe the arm for solids
	LagSpeed        float64 // 1/sec; 0 snaps to the pivot every update
	PitchMin        float64
	PitchMax        float64
	DefaultPitch    float64
	ViewWidth       float64
	ViewHeight      float64
	SolidTags       []string
}

// Rig implements the character's View and Headset.
type Rig struct {
	Yaw   float64 // degrees, [0, 360)
	Pitch float64 // degrees, [PitchMin, PitchMax]

	// Pivot is the lagged point the arm hangs from.
	Pivot gamemath.Vec2
	// ArmLength is the arm after the probe shortened it.
	ArmLength float64

	cfg          Config
	probe        *resolv.Object
	placed       bool
	resetPending bool
}

func NewRig(cfg Config, yaw float64) *Rig {
	return &Rig{
		Yaw:       gamemath.WrapDegrees(yaw),
		Pitch:     gamemath.Clamp(cfg.DefaultPitch, cfg.PitchMin, cfg.PitchMax),
		ArmLength: cfg.TargetArmLength,
		cfg:       cfg,
	}
}

// AttachProbe registers the arm probe with a collision space. Without a probe
// the arm always stays at its target length.
func (r *Rig) AttachProbe(space *resolv.Space) {
	if space == nil {
		return
	}
	size := math.Max(r.cfg.ProbeSize, 1)
	r.probe = resolv.NewObject(0, 0, size, size, "cameraprobe")
	space.Add(r.probe)
}

// DetachProbe removes the probe from its space.
func (r *Rig) DetachProbe() {
	if r.probe != nil && r.probe.Space != nil {
		r.probe.Space.Remove(r.probe)
	}
	r.probe = nil
}

func (r *Rig) AddYawInput(value float64) {
	r.Yaw = gamemath.WrapDegrees(r.Yaw + value)
}

func (r *Rig) AddPitchInput(value float64) {
	r.Pitch = gamemath.Clamp(r.Pitch+value, r.cfg.PitchMin, r.cfg.PitchMax)
}

func (r *Rig) ControlYaw() float64 {
	return r.Yaw
}

// ResetOrientationAndPosition recenters the rig behind the character on the next Update.
func (r *Rig) ResetOrientationAndPosition() {
	r.resetPending = true
}

// Update moves the pivot toward the character and re-probes the arm.
func (r *Rig) Update(target gamemath.Vec2, facing, dt float64) {
	if r.resetPending {
		r.Yaw = gamemath.WrapDegrees(facing)
		r.Pitch = gamemath.Clamp(r.cfg.DefaultPitch, r.cfg.PitchMin, r.cfg.PitchMax)
		r.placed = false
		r.resetPending = false
	}

	if !r.placed || r.cfg.LagSpeed <= 0 {
		r.Pivot = target
		r.placed = true
	} else {
		alpha := math.Min(r.cfg.LagSpeed*dt, 1)
		r.Pivot = gamemath.Add(r.Pivot, gamemath.Scale(gamemath.Sub(target, r.Pivot), alpha))
	}

	r.ArmLength = r.probeArm(target)
}

// Forward is the unit vector of the control yaw.
func (r *Rig) Forward() gamemath.Vec2 {
	return gamemath.Direction(r.Yaw)
}

// Position is the end of the arm projected onto the floor.
func (r *Rig) Position() gamemath.Vec2 {
	return gamemath.Sub(r.Pivot, gamemath.Scale(r.Forward(), r.reach(r.ArmLength)))
}

// Zoom grows as the arm is pulled in.
func (r *Rig) Zoom() float64 {
	length := math.Max(r.ArmLength, math.Max(r.cfg.ProbeSize, 1))
	if r.cfg.TargetArmLength <= 0 {
		return 1
	}
	return r.cfg.TargetArmLength / length
}

// Rotation is the screen rotation in radians that turns the control yaw to screen-up.
func (r *Rig) Rotation() float64 {
	return gamemath.DegToRad(-90 - r.Yaw)
}

// FocusOffset is how far below screen centre the pivot is drawn. Looking level
// shows more of what is ahead; looking straight down centres the character.
func (r *Rig) FocusOffset() float64 {
	return r.cfg.ViewHeight * 0.25 * math.Cos(gamemath.DegToRad(r.Pitch))
}

// WorldToScreen projects a world point into view coordinates.
func (r *Rig) WorldToScreen(p gamemath.Vec2) (float64, float64) {
	rel := gamemath.Sub(p, r.Pivot)
	sin, cos := math.Sincos(r.Rotation())
	zoom := r.Zoom()
	x := (rel.X*cos - rel.Y*sin) * zoom
	y := (rel.X*sin + rel.Y*cos) * zoom
	return x + r.cfg.ViewWidth/2, y + r.cfg.ViewHeight/2 + r.FocusOffset()
}

// reach converts an arm length into its extent along the floor.
func (r *Rig) reach(length float64) float64 {
	return length * math.Cos(gamemath.DegToRad(r.Pitch))
}

func (r *Rig) probeArm(from gamemath.Vec2) float64 {
	full := r.cfg.TargetArmLength
	if r.probe == nil || r.probe.Space == nil || len(r.cfg.SolidTags) == 0 || full <= 0 {
		return full
	}

	back := gamemath.Scale(r.Forward(), -1)
	reach := r.reach(full)
	step := r.probe.W / 2
	size := r.probe.W

	free := 0.0
	for d := step; ; d += step {
		if d > reach {
			d = reach
		}
		p := gamemath.Add(from, gamemath.Scale(back, d))
		r.probe.X = p.X - size/2
		r.probe.Y = p.Y - size/2
		r.probe.Update()
		if r.probeBlocked() {
			break
		}
		free = d
		if d >= reach {
			return full
		}
	}
	return full * free / reach
}

func (r *Rig) probeBlocked() bool {
	check := r.probe.Check(0, 0, r.cfg.SolidTags...)
	if check == nil {
		return false
	}
	p := r.probe
	for _, s := range check.ObjectsByTags(r.cfg.SolidTags...) {
		if p.X < s.X+s.W && s.X < p.X+p.W && p.Y < s.Y+s.H && s.Y < p.Y+p.H {
			return true
		}
	}
	return false
}
