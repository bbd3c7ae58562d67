package core

import (
	"context"

	"github.com/sonnes/transformime/dom"
)

// Outcome is the eventual result of one transform: an element or an error.
// It resolves exactly once and may be read any number of times.
type Outcome struct {
	done chan struct{}
	el   *dom.Element
	err  error
}

func newOutcome() *Outcome {
	return &Outcome{done: make(chan struct{})}
}

func (o *Outcome) resolve(el *dom.Element, err error) {
	o.el, o.err = el, err
	close(o.done)
}

// Resolved returns an Outcome that already holds el.
func Resolved(el *dom.Element) *Outcome {
	o := newOutcome()
	o.resolve(el, nil)
	return o
}

// Failed returns an Outcome that already holds err.
func Failed(err error) *Outcome {
	o := newOutcome()
	o.resolve(nil, err)
	return o
}

// Go runs fn on a new goroutine and resolves the Outcome with its result.
// A panic in fn resolves the Outcome with a *PanicError tagged mimetype.
func Go(mimetype string, fn func() (*dom.Element, error)) *Outcome {
	o := newOutcome()
	go func() {
		var (
			el  *dom.Element
			err error
		)
		defer func() {
			if v := recover(); v != nil {
				el, err = nil, &PanicError{MimeType: mimetype, Value: v}
			}
			o.resolve(el, err)
		}()
		el, err = fn()
	}()
	return o
}

// Done is closed once the Outcome resolves.
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// Result blocks until the Outcome resolves.
func (o *Outcome) Result() (*dom.Element, error) {
	<-o.done
	return o.el, o.err
}

// Wait is Result bounded by ctx. Giving up on the wait does not stop the
// renderer; the Outcome still resolves later.
func (o *Outcome) Wait(ctx context.Context) (*dom.Element, error) {
	select {
	case <-o.done:
		return o.el, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
