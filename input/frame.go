package input

import "sort"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// TouchPoint is an active touch in screen space.
type TouchPoint struct {
	X, Y float64
}

// Frame stores the current and previous frame's held actions plus this frame's axis values.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type Frame struct {
	Current  map[string]bool
	Previous map[string]bool
	Axes     map[string]float64

	Touches     map[int]TouchPoint
	PrevTouches map[int]TouchPoint
}

func NewFrame() *Frame {
	return &Frame{
		Current:     make(map[string]bool),
		Previous:    make(map[string]bool),
		Axes:        make(map[string]float64),
		Touches:     make(map[int]TouchPoint),
		PrevTouches: make(map[int]TouchPoint),
	}
}

// Begin swaps buffers: current becomes previous, then current and the axes are cleared.
func (f *Frame) Begin() {
	f.Previous, f.Current = f.Current, f.Previous
	clear(f.Current)
	clear(f.Axes)
	f.PrevTouches, f.Touches = f.Touches, f.PrevTouches
	clear(f.Touches)
}

func (f *Frame) Press(name string) {
	f.Current[name] = true
}

// AddAxis accumulates value into the named axis, like several keys feeding one axis.
func (f *Frame) AddAxis(name string, value float64) {
	f.Axes[name] += value
}

// DeclareAxis makes sure an axis is routed this frame even when nothing moved it.
func (f *Frame) DeclareAxis(name string) {
	if _, ok := f.Axes[name]; !ok {
		f.Axes[name] = 0
	}
}

func (f *Frame) Touch(finger int, x, y float64) {
	f.Touches[finger] = TouchPoint{X: x, Y: y}
}

// Action returns the full ActionState for an action name.
func (f *Frame) Action(name string) ActionState {
	curr := f.Current[name]
	prev := f.Previous[name]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Route dispatches this frame's edges and axis values to t.
// Releases go out before presses, then axes in name order, then touches.
func (f *Frame) Route(t *Table) {
	for _, name := range sortedKeys(f.Previous) {
		if f.Action(name).JustReleased {
			t.DispatchAction(name, Released)
		}
	}
	for _, name := range sortedKeys(f.Current) {
		if f.Action(name).JustPressed {
			t.DispatchAction(name, Pressed)
		}
	}

	axes := make([]string, 0, len(f.Axes))
	for name := range f.Axes {
		axes = append(axes, name)
	}
	sort.Strings(axes)
	for _, name := range axes {
		t.DispatchAxis(name, f.Axes[name])
	}

	for _, finger := range sortedFingers(f.PrevTouches) {
		if _, still := f.Touches[finger]; !still {
			p := f.PrevTouches[finger]
			t.DispatchTouch(Released, finger, p.X, p.Y)
		}
	}
	for _, finger := range sortedFingers(f.Touches) {
		if _, was := f.PrevTouches[finger]; !was {
			p := f.Touches[finger]
			t.DispatchTouch(Pressed, finger, p.X, p.Y)
		}
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func sortedFingers(m map[int]TouchPoint) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// RouteActions dispatches only the edges of the named actions. Axes and
// touches are dropped. Menus use it to keep a few global actions live.
func (f *Frame) RouteActions(t *Table, names ...string) {
	for _, name := range names {
		if f.Action(name).JustReleased {
			t.DispatchAction(name, Released)
		}
	}
	for _, name := range names {
		if f.Action(name).JustPressed {
			t.DispatchAction(name, Pressed)
		}
	}
}
