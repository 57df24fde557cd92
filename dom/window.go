package dom

import (
	"github.com/psilva261/minimal/logger"
	"github.com/psilva261/sparkle/js"
)

type Option func(w *Window)

func WithName(name string) Option {
	return func(w *Window) {
		w.name = name
	}
}

func WithScreen(x, y int) Option {
	return func(w *Window) {
		w.screenX, w.screenY = x, y
	}
}

func WithOuterSize(width, height int) Option {
	return func(w *Window) {
		w.outerWidth, w.outerHeight = width, height
	}
}

// Window is the browsing context of a Document. Screen position and
// outer size are handed out as script values of the window's runtime.
type Window struct {
	doc *Document
	loc *Location
	vm  *js.Runtime

	name             string
	scrollX, scrollY float64
	screenX, screenY int

	outerWidth, outerHeight int

	closed bool
}

func NewWindow(url string, d *Document, opts ...Option) *Window {
	w := &Window{
		doc:         d,
		loc:         NewLocation(url),
		vm:          js.New(),
		outerWidth:  1024,
		outerHeight: 768,
	}
	for _, o := range opts {
		o(w)
	}
	if d != nil {
		d.window = w
		d.url = w.loc.Href
	}
	return w
}

// Document is nil once the window is closed.
func (w *Window) Document() *Document {
	if w.closed {
		return nil
	}
	return w.doc
}

func (w *Window) Location() *Location {
	if w.closed {
		return nil
	}
	return w.loc
}

func (w *Window) Runtime() *js.Runtime {
	return w.vm
}

func (w *Window) Closed() bool {
	return w.closed
}

// Close detaches the document; every property read fails afterwards.
func (w *Window) Close() {
	log.Printf("close window %v", w.loc.Href)
	w.closed = true
	if w.doc != nil {
		w.doc.window = nil
	}
}

func (w *Window) check(prop string) error {
	if w.closed {
		return ErrInvalidState("window is closed, no " + prop)
	}
	return nil
}

func (w *Window) Name() (string, error) {
	if err := w.check("name"); err != nil {
		return "", err
	}
	return w.name, nil
}

func (w *Window) SetName(name string) {
	w.name = name
}

func (w *Window) ScrollX() (float64, error) {
	if err := w.check("scrollX"); err != nil {
		return 0, err
	}
	return w.scrollX, nil
}

func (w *Window) ScrollY() (float64, error) {
	if err := w.check("scrollY"); err != nil {
		return 0, err
	}
	return w.scrollY, nil
}

// PageXOffset is an alias of ScrollX.
func (w *Window) PageXOffset() (float64, error) {
	if err := w.check("pageXOffset"); err != nil {
		return 0, err
	}
	return w.scrollX, nil
}

// PageYOffset is an alias of ScrollY.
func (w *Window) PageYOffset() (float64, error) {
	if err := w.check("pageYOffset"); err != nil {
		return 0, err
	}
	return w.scrollY, nil
}

// ScrollTo moves the viewport; negative offsets are clamped to 0.
func (w *Window) ScrollTo(x, y float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	w.scrollX, w.scrollY = x, y
}

func (w *Window) MoveTo(x, y int) {
	w.screenX, w.screenY = x, y
}

func (w *Window) ResizeTo(width, height int) {
	w.outerWidth, w.outerHeight = width, height
}

func (w *Window) ScreenX() (js.Value, error) {
	return w.value("screenX", w.screenX)
}

func (w *Window) ScreenY() (js.Value, error) {
	return w.value("screenY", w.screenY)
}

func (w *Window) OuterWidth() (js.Value, error) {
	return w.value("outerWidth", w.outerWidth)
}

func (w *Window) OuterHeight() (js.Value, error) {
	return w.value("outerHeight", w.outerHeight)
}

func (w *Window) value(prop string, i int) (js.Value, error) {
	if err := w.check(prop); err != nil {
		return nil, err
	}
	return w.vm.ToValue(i), nil
}
