package minimal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/psilva261/minimal/logger"
)

var (
	// ErrMissing reports an absent property or neighbor.
	ErrMissing = errors.New("missing")
	// ErrNotFound reports an id or selector without match.
	ErrNotFound = errors.New("not found")
	// ErrNarrow reports a handle of the wrong kind.
	ErrNarrow = errors.New("narrowing failed")
	// ErrIndex reports an out of range list index.
	ErrIndex = errors.New("index out of range")
	// ErrRejected reports a query or mutation the DOM refused.
	ErrRejected = errors.New("rejected")
)

// Error names the failed accessor and the offending id, selector,
// index or property. It unwraps to both its Kind and the DOM's cause.
type Error struct {
	Op   string
	Arg  string
	Kind error
	Err  error
}

func newError(op, arg string, kind, err error) *Error {
	e := &Error{Op: op, Arg: arg, Kind: kind, Err: err}
	log.Printf("%v", e)
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Arg != "" {
		b.WriteString("(" + e.Arg + ")")
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NarrowError is the cause of an ErrNarrow failure.
type NarrowError struct {
	From Kind
	To   Kind
	Name string
}

func (e *NarrowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("cannot narrow %v to %v", e.From, e.To)
	}
	return fmt.Sprintf("cannot narrow %v %v to %v", e.From, e.Name, e.To)
}

func narrowError(op string, from, to Kind, name string) *Error {
	return newError(op, "", ErrNarrow, &NarrowError{From: from, To: to, Name: name})
}

// Must returns v or panics with err. Every accessor of this package
// fails with an *Error, which Catch recovers.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Check panics with err unless it is nil.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}

// Catch stores a *Error raised by Must or Check in *errp. It must be
// deferred directly; other panics keep unwinding.
func Catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*errp = e
		return
	}
	panic(r)
}
