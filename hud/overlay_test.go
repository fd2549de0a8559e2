package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingViewport struct {
	widgets []Widget
}

func (v *recordingViewport) Add(w Widget) { v.widgets = append(v.widgets, w) }

func (v *recordingViewport) Remove(w Widget) {
	for i, x := range v.widgets {
		if x == w {
			v.widgets = append(v.widgets[:i], v.widgets[i+1:]...)
			return
		}
	}
}

type stubWidget struct {
	viewport Viewport
	updates  int
}

func (w *stubWidget) AddToViewport()      { w.viewport.Add(w) }
func (w *stubWidget) RemoveFromViewport() { w.viewport.Remove(w) }
func (w *stubWidget) Update()             { w.updates++ }

type countingClass struct {
	created int
}

func (c *countingClass) CreateWidget(v Viewport) Widget {
	c.created++
	return &stubWidget{viewport: v}
}

func TestOverlay_NilClassIsSilentNoop(t *testing.T) {
	v := &recordingViewport{}
	o := NewOverlay(nil)

	assert.NotPanics(t, func() {
		o.BeginPlay(v)
		o.Update()
		o.EndPlay()
	})
	assert.Empty(t, v.widgets)
	assert.Nil(t, o.Widget())
}

func TestOverlay_BeginPlayCreatesOneWidget(t *testing.T) {
	v := &recordingViewport{}
	class := &countingClass{}
	o := NewOverlay(class)

	o.BeginPlay(v)
	o.BeginPlay(v)

	assert.Equal(t, 1, class.created)
	require.Len(t, v.widgets, 1)
	assert.Same(t, o.Widget(), v.widgets[0])
}

func TestOverlay_NilWidgetIsSilentNoop(t *testing.T) {
	v := &recordingViewport{}
	o := NewOverlay(WidgetClassFunc(func(Viewport) Widget { return nil }))

	o.BeginPlay(v)
	assert.Empty(t, v.widgets)
	assert.Nil(t, o.Widget())
}

func TestOverlay_EndPlayRemovesWidget(t *testing.T) {
	v := &recordingViewport{}
	class := &countingClass{}
	o := NewOverlay(class)

	o.BeginPlay(v)
	o.EndPlay()
	assert.Empty(t, v.widgets)
	assert.Nil(t, o.Widget())

	o.EndPlay()

	o.BeginPlay(v)
	assert.Equal(t, 2, class.created, "a new session gets a new widget")
	assert.Len(t, v.widgets, 1)
}

func TestOverlay_UpdateForwardsToWidget(t *testing.T) {
	v := &recordingViewport{}
	o := NewOverlay(&countingClass{})
	o.BeginPlay(v)

	o.Update()
	o.Update()
	assert.Equal(t, 2, o.Widget().(*stubWidget).updates)
}

func TestMeter_EasesToTarget(t *testing.T) {
	m := NewMeter(0.5)
	assert.Equal(t, 1.0, m.Value())

	m.Set(0.5)
	assert.Equal(t, 0.5, m.Target())
	m.Update(0.25)
	assert.Less(t, m.Value(), 1.0)
	assert.Greater(t, m.Value(), 0.5)

	m.Update(0.5)
	assert.Equal(t, 0.5, m.Value())
}

func TestMeter_ClampsAndSnapsWithoutDuration(t *testing.T) {
	m := NewMeter(0)
	m.Set(-0.3)
	assert.Equal(t, 0.0, m.Value())
	m.Set(7)
	assert.Equal(t, 1.0, m.Value())
}
