package minimal

import (
	"io"
	"strconv"
	"sync/atomic"

	"github.com/psilva261/minimal/dom"
)

var global atomic.Pointer[dom.Window]

// SetWindow installs w as the process wide window. Nil uninstalls it.
func SetWindow(w *dom.Window) {
	global.Store(w)
}

// Load parses the page read from r, opens a window on it at url and
// installs that window. A failed read or parse is ErrRejected.
func Load(url string, r io.Reader, opts ...dom.Option) (*Window, error) {
	d, err := dom.Parse(r)
	if err != nil {
		return nil, newError("Load", strconv.Quote(url), ErrRejected, err)
	}
	w := dom.NewWindow(url, d, opts...)
	SetWindow(w)
	return &Window{Window: w}, nil
}

func GlobalWindow() (*Window, error) {
	w := global.Load()
	if w == nil {
		return nil, newError("GlobalWindow", "", ErrMissing, nil)
	}
	return &Window{Window: w}, nil
}

func GlobalDocument() (*Document, error) {
	w, err := GlobalWindow()
	if err != nil {
		return nil, err
	}
	return w.DocumentPage()
}
