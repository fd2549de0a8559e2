// Package input routes named actions and axes to handlers.
//
// Devices are polled elsewhere; a Frame collects what was held this frame and
// Route turns edges into Pressed/Released dispatches on a Table.
package input

import "sort"

// Event is the edge an action handler fires on.
type Event int

const (
	Pressed Event = iota
	Released
	eventCount
)

func (e Event) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	}
	return "unknown"
}

// TouchHandler receives a finger index and its screen position.
type TouchHandler func(finger int, x, y float64)

// Binder is what an input receiver binds its handlers against.
type Binder interface {
	BindAction(name string, ev Event, fn func())
	BindAxis(name string, fn func(value float64))
	BindTouch(ev Event, fn TouchHandler)
}

// Table is a Binder keyed by action and axis name.
type Table struct {
	actions map[string]*[eventCount][]func()
	axes    map[string][]func(float64)
	touch   [eventCount][]TouchHandler
}

var _ Binder = (*Table)(nil)

func NewTable() *Table {
	return &Table{
		actions: make(map[string]*[eventCount][]func()),
		axes:    make(map[string][]func(float64)),
	}
}

func (t *Table) BindAction(name string, ev Event, fn func()) {
	if fn == nil || ev < 0 || ev >= eventCount {
		return
	}
	slot, ok := t.actions[name]
	if !ok {
		slot = &[eventCount][]func(){}
		t.actions[name] = slot
	}
	slot[ev] = append(slot[ev], fn)
}

func (t *Table) BindAxis(name string, fn func(value float64)) {
	if fn == nil {
		return
	}
	t.axes[name] = append(t.axes[name], fn)
}

func (t *Table) BindTouch(ev Event, fn TouchHandler) {
	if fn == nil || ev < 0 || ev >= eventCount {
		return
	}
	t.touch[ev] = append(t.touch[ev], fn)
}

// DispatchAction calls every handler bound to name for ev and reports how many ran.
func (t *Table) DispatchAction(name string, ev Event) int {
	slot, ok := t.actions[name]
	if !ok || ev < 0 || ev >= eventCount {
		return 0
	}
	for _, fn := range slot[ev] {
		fn()
	}
	return len(slot[ev])
}

// DispatchAxis forwards value to every handler bound to name.
func (t *Table) DispatchAxis(name string, value float64) int {
	handlers := t.axes[name]
	for _, fn := range handlers {
		fn(value)
	}
	return len(handlers)
}

func (t *Table) DispatchTouch(ev Event, finger int, x, y float64) int {
	if ev < 0 || ev >= eventCount {
		return 0
	}
	for _, fn := range t.touch[ev] {
		fn(finger, x, y)
	}
	return len(t.touch[ev])
}

// Actions returns the bound action names, sorted.
func (t *Table) Actions() []string {
	names := make([]string, 0, len(t.actions))
	for name := range t.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Axes returns the bound axis names, sorted.
func (t *Table) Axes() []string {
	names := make([]string, 0, len(t.axes))
	for name := range t.axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
