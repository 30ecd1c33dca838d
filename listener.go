package covenant

import (
	"strconv"
	"unsafe"
)

type (
	// ListenerID identifies a single registration within a Registry. Ids are never reused.
	// The zero value is returned alongside an error when a registration is rejected.
	ListenerID string

	// Callback is invoked with the arguments passed to Signal, spread positionally.
	Callback func(args ...any)
)

// DefaultIDPrefix prefixes listener ids unless WithIDPrefix says otherwise.
const DefaultIDPrefix = "cov_"

type listener struct {
	id ListenerID
	fn Callback
	// ref identifies the callback as supplied by the caller, used by UnregisterFunc.
	ref unsafe.Pointer
}

// event keeps its listeners in registration order, which is also the invocation order.
type event struct {
	name      string
	listeners []listener
}

func (e *event) add(l listener) {
	e.listeners = append(e.listeners, l)
}

// removeID reports whether a listener was removed.
func (e *event) removeID(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// removeFunc drops every listener registered with the same function and returns how many went away.
func (e *event) removeFunc(ref unsafe.Pointer) int {
	kept := make([]listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		if l.ref != ref {
			kept = append(kept, l)
		}
	}
	removed := len(e.listeners) - len(kept)
	e.listeners = kept
	return removed
}

// snapshot copies the callbacks so that Signal can run them without holding the lock.
func (e *event) snapshot() []Callback {
	fns := make([]Callback, len(e.listeners))
	for i, l := range e.listeners {
		fns[i] = l.fn
	}
	return fns
}

func (e *event) empty() bool {
	return len(e.listeners) == 0
}

// funcRef returns the closure a func value points to. Every evaluation of a capturing function
// literal or method value allocates its own closure, so two references are equal only when they
// come from the same func value. Literals capturing nothing share one static closure.
func funcRef(cb Callback) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&cb))
}

func formatID(prefix string, n uint64) ListenerID {
	return ListenerID(prefix + strconv.FormatUint(n, 10))
}
