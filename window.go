package minimal

import (
	"github.com/psilva261/minimal/dom"
	"github.com/psilva261/sparkle/js"
)

type Window struct {
	*dom.Window
}

func (w *Window) DocumentPage() (*Document, error) {
	d := w.Document()
	if d == nil {
		return nil, newError("Window.DocumentPage", "", ErrMissing, nil)
	}
	return &Document{Document: d}, nil
}

func (w *Window) DocumentElementEl() (*Element, error) {
	d, err := w.DocumentPage()
	if err != nil {
		return nil, err
	}
	return d.DocumentElementEl()
}

func (w *Window) DocumentElementHTML() (*HTMLElement, error) {
	d, err := w.DocumentPage()
	if err != nil {
		return nil, err
	}
	return d.DocumentElementHTML()
}

func (w *Window) GetName() (string, error) {
	n, err := w.Name()
	if err != nil {
		return "", newError("Window.GetName", "", ErrMissing, err)
	}
	return n, nil
}

func (w *Window) GetScrollX() (float64, error) {
	return offset("Window.GetScrollX", w.ScrollX)
}

func (w *Window) GetScrollY() (float64, error) {
	return offset("Window.GetScrollY", w.ScrollY)
}

func (w *Window) GetPageXOffset() (float64, error) {
	return offset("Window.GetPageXOffset", w.PageXOffset)
}

func (w *Window) GetPageYOffset() (float64, error) {
	return offset("Window.GetPageYOffset", w.PageYOffset)
}

// The geometry getters hand out script values: their type is not
// uniformly numeric across window implementations.

func (w *Window) GetScreenX() (js.Value, error) {
	return geometry("Window.GetScreenX", w.ScreenX)
}

func (w *Window) GetScreenY() (js.Value, error) {
	return geometry("Window.GetScreenY", w.ScreenY)
}

func (w *Window) GetOuterWidth() (js.Value, error) {
	return geometry("Window.GetOuterWidth", w.OuterWidth)
}

func (w *Window) GetOuterHeight() (js.Value, error) {
	return geometry("Window.GetOuterHeight", w.OuterHeight)
}

func offset(op string, f func() (float64, error)) (float64, error) {
	v, err := f()
	if err != nil {
		return 0, newError(op, "", ErrMissing, err)
	}
	return v, nil
}

func geometry(op string, f func() (js.Value, error)) (js.Value, error) {
	v, err := f()
	if err != nil {
		return nil, newError(op, "", ErrMissing, err)
	}
	return v, nil
}
