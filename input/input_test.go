package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_DispatchActionByEvent(t *testing.T) {
	table := NewTable()
	var pressed, released int
	table.BindAction("Jump", Pressed, func() { pressed++ })
	table.BindAction("Jump", Released, func() { released++ })

	assert.Equal(t, 1, table.DispatchAction("Jump", Pressed))
	assert.Equal(t, 1, pressed)
	assert.Equal(t, 0, released)

	assert.Equal(t, 1, table.DispatchAction("Jump", Released))
	assert.Equal(t, 1, released)
}

func TestTable_UnboundIsNoop(t *testing.T) {
	table := NewTable()
	assert.Equal(t, 0, table.DispatchAction("Missing", Pressed))
	assert.Equal(t, 0, table.DispatchAxis("Missing", 1))
	assert.Equal(t, 0, table.DispatchTouch(Pressed, 0, 0, 0))
}

func TestTable_NilHandlersIgnored(t *testing.T) {
	table := NewTable()
	table.BindAction("Jump", Pressed, nil)
	table.BindAxis("Turn", nil)
	table.BindTouch(Pressed, nil)
	assert.Empty(t, table.Actions())
	assert.Empty(t, table.Axes())
}

func TestTable_AxisFanOut(t *testing.T) {
	table := NewTable()
	var a, b float64
	table.BindAxis("Turn", func(v float64) { a = v })
	table.BindAxis("Turn", func(v float64) { b = v * 2 })
	assert.Equal(t, 2, table.DispatchAxis("Turn", 0.5))
	assert.Equal(t, 0.5, a)
	assert.Equal(t, 1.0, b)
	assert.Equal(t, []string{"Turn"}, table.Axes())
}

func TestFrame_ActionEdges(t *testing.T) {
	f := NewFrame()
	f.Begin()
	f.Press("Sprint")
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, f.Action("Sprint"))

	f.Begin()
	f.Press("Sprint")
	assert.Equal(t, ActionState{Pressed: true}, f.Action("Sprint"))

	f.Begin()
	assert.Equal(t, ActionState{JustReleased: true}, f.Action("Sprint"))

	f.Begin()
	assert.Equal(t, ActionState{}, f.Action("Sprint"))
}

func TestFrame_RouteDispatchesEdgesOnce(t *testing.T) {
	table := NewTable()
	var log []string
	table.BindAction("Sprint", Pressed, func() { log = append(log, "sprint+") })
	table.BindAction("Sprint", Released, func() { log = append(log, "sprint-") })
	table.BindAxis("MoveForward", func(v float64) { log = append(log, "fwd") })

	f := NewFrame()

	f.Begin()
	f.Press("Sprint")
	f.AddAxis("MoveForward", 1)
	f.Route(table)

	f.Begin()
	f.Press("Sprint")
	f.DeclareAxis("MoveForward")
	f.Route(table)

	f.Begin()
	f.Route(table)

	assert.Equal(t, []string{"sprint+", "fwd", "fwd", "sprint-"}, log)
}

func TestFrame_AxisAccumulates(t *testing.T) {
	f := NewFrame()
	f.Begin()
	f.AddAxis("MoveRight", 1)
	f.AddAxis("MoveRight", -1)
	f.AddAxis("MoveRight", 0.5)
	assert.Equal(t, 0.5, f.Axes["MoveRight"])

	f.Begin()
	_, ok := f.Axes["MoveRight"]
	assert.False(t, ok)
}

func TestFrame_TouchEdges(t *testing.T) {
	table := NewTable()
	var events []Event
	var lastX float64
	table.BindTouch(Pressed, func(finger int, x, y float64) {
		events = append(events, Pressed)
		lastX = x
	})
	table.BindTouch(Released, func(finger int, x, y float64) {
		events = append(events, Released)
	})

	f := NewFrame()
	f.Begin()
	f.Touch(3, 10, 20)
	f.Route(table)
	f.Begin()
	f.Touch(3, 12, 20)
	f.Route(table)
	f.Begin()
	f.Route(table)

	require.Len(t, events, 2)
	assert.Equal(t, Pressed, events[0])
	assert.Equal(t, Released, events[1])
	assert.Equal(t, 10.0, lastX)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "pressed", Pressed.String())
	assert.Equal(t, "released", Released.String())
	assert.Equal(t, "unknown", Event(7).String())
}

func TestFrame_RouteActionsFiltersEverythingElse(t *testing.T) {
	table := NewTable()
	var log []string
	table.BindAction("ToggleDebug", Pressed, func() { log = append(log, "debug") })
	table.BindAction("Jump", Pressed, func() { log = append(log, "jump") })
	table.BindAxis("MoveForward", func(v float64) { log = append(log, "fwd") })
	table.BindTouch(Pressed, func(finger int, x, y float64) { log = append(log, "touch") })

	f := NewFrame()
	f.Begin()
	f.Press("ToggleDebug")
	f.Press("Jump")
	f.AddAxis("MoveForward", 1)
	f.Touch(0, 1, 1)
	f.RouteActions(table, "ToggleDebug")

	assert.Equal(t, []string{"debug"}, log)
}
