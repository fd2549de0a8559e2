// Package hud owns the heads-up display widget for a scene session.
package hud

// Viewport is the on-screen surface widgets are attached to.
type Viewport interface {
	Add(w Widget)
	Remove(w Widget)
}

// Widget is a live HUD element.
type Widget interface {
	AddToViewport()
	RemoveFromViewport()
}

// WidgetClass creates widgets. It is injected by the game mode.
type WidgetClass interface {
	CreateWidget(v Viewport) Widget
}

// WidgetClassFunc adapts a function to WidgetClass.
type WidgetClassFunc func(v Viewport) Widget

func (f WidgetClassFunc) CreateWidget(v Viewport) Widget { return f(v) }

// Updater is implemented by widgets that refresh every frame.
type Updater interface {
	Update()
}

// Overlay binds one widget class to at most one live widget.
type Overlay struct {
	class  WidgetClass
	widget Widget
}

func NewOverlay(class WidgetClass) *Overlay {
	return &Overlay{class: class}
}

// BeginPlay creates the widget and adds it to the viewport. With no class, or
// a class that yields nothing, it does nothing. A live widget is never replaced.
func (o *Overlay) BeginPlay(v Viewport) {
	if o.class == nil || o.widget != nil {
		return
	}
	w := o.class.CreateWidget(v)
	if w == nil {
		return
	}
	o.widget = w
	w.AddToViewport()
}

// EndPlay removes the widget from the viewport and drops it.
func (o *Overlay) EndPlay() {
	if o.widget == nil {
		return
	}
	o.widget.RemoveFromViewport()
	o.widget = nil
}

func (o *Overlay) Update() {
	if u, ok := o.widget.(Updater); ok {
		u.Update()
	}
}

// Widget returns the live widget, or nil.
func (o *Overlay) Widget() Widget {
	return o.widget
}
