package covenant

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Registry maps event names to ordered listeners. Each Registry owns its state exclusively;
// two registries never observe each other's listeners, even for identical event names.
// All methods are safe for concurrent use. Callbacks run on the goroutine calling Signal,
// outside the registry lock, so they may register, signal or unregister freely.
type Registry struct {
	id       string
	logger   Logger
	idPrefix string

	lock   sync.RWMutex
	nextID uint64
	events map[string]*event

	signals    atomic.Uint64
	deliveries atomic.Uint64
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	s := newSettings(opts)
	id := uuid.NewString()

	return &Registry{
		id:       id,
		logger:   s.logger.WithField("registry", id),
		idPrefix: s.idPrefix,
		events:   make(map[string]*event),
	}
}

// ID returns the unique identifier of this registry instance.
func (r *Registry) ID() string {
	return r.id
}

// Register appends cb to the listeners of name, creating the event on first use, and returns
// the id of the new listener. An empty name or a nil callback registers nothing and returns
// an error wrapping ErrInvalidArgument along with the zero ListenerID.
func (r *Registry) Register(name string, cb Callback) (ListenerID, error) {
	if err := validate(name, cb); err != nil {
		r.logger.Warnf("registration rejected: %s", err)
		return "", err
	}

	return r.add(name, cb, func(ListenerID) Callback { return cb }), nil
}

// On is an alias of Register.
func (r *Registry) On(name string, cb Callback) (ListenerID, error) {
	return r.Register(name, cb)
}

// RegisterOnce is like Register, but the listener removes itself after its first invocation.
// cb runs at most once no matter how many times, or from how many goroutines, name is signaled.
// The returned id is the id the self-removing listener is stored under.
func (r *Registry) RegisterOnce(name string, cb Callback) (ListenerID, error) {
	if err := validate(name, cb); err != nil {
		r.logger.Warnf("one-shot registration rejected: %s", err)
		return "", err
	}

	return r.add(name, cb, func(id ListenerID) Callback {
		var fired atomic.Bool

		return func(args ...any) {
			if !fired.CompareAndSwap(false, true) {
				return
			}
			defer r.UnregisterID(name, id)

			cb(args...)
		}
	}), nil
}

// Once is an alias of RegisterOnce.
func (r *Registry) Once(name string, cb Callback) (ListenerID, error) {
	return r.RegisterOnce(name, cb)
}

// add mints the next id and stores the callback built by wrap under it, all under the lock.
// original is kept for lookups by function.
func (r *Registry) add(name string, original Callback, wrap func(ListenerID) Callback) ListenerID {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.nextID++
	id := formatID(r.idPrefix, r.nextID)

	ev, found := r.events[name]
	if !found {
		ev = &event{name: name}
		r.events[name] = ev
	}

	ev.add(listener{id: id, fn: wrap(id), ref: funcRef(original)})

	r.logger.WithField("event", name).Debugf("listener %s registered", id)

	return id
}

// Signal invokes, in registration order, every listener registered for name when the call
// starts, passing args positionally. Listeners added or removed by a callback during the pass
// do not change which callbacks run in it. An empty or unknown name is a no-op.
// A panicking callback is not recovered.
func (r *Registry) Signal(name string, args ...any) *Registry {
	if name == "" {
		return r
	}

	r.lock.RLock()
	ev, found := r.events[name]
	var callbacks []Callback
	if found {
		callbacks = ev.snapshot()
	}
	r.lock.RUnlock()

	if len(callbacks) == 0 {
		return r
	}

	r.signals.Add(1)

	for _, cb := range callbacks {
		r.deliveries.Add(1)
		cb(args...)
	}

	return r
}

// Unregister removes every listener of name, one-shot listeners included.
// An empty name is a no-op: it never clears other events.
func (r *Registry) Unregister(name string) *Registry {
	if name == "" {
		return r
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	ev, found := r.events[name]
	if !found {
		return r
	}

	delete(r.events, name)
	r.logger.WithField("event", name).Debugf("event cleared, %d listener(s) removed", len(ev.listeners))

	return r
}

// UnregisterID removes the listener of name identified by id. Unknown ids are ignored.
func (r *Registry) UnregisterID(name string, id ListenerID) *Registry {
	if name == "" || id == "" {
		return r
	}

	r.withEvent(name, func(ev *event) {
		if ev.removeID(id) {
			r.logger.WithField("event", name).Debugf("listener %s removed", id)
		}
	})

	return r
}

// UnregisterFunc removes the listeners of name that were registered with the same func value
// as cb. Each evaluation of a closure or method value is a distinct func value, so keep the one
// passed to Register around to remove it later.
func (r *Registry) UnregisterFunc(name string, cb Callback) *Registry {
	if name == "" || cb == nil {
		return r
	}

	ref := funcRef(cb)
	r.withEvent(name, func(ev *event) {
		if n := ev.removeFunc(ref); n > 0 {
			r.logger.WithField("event", name).Debugf("%d listener(s) removed by callback", n)
		}
	})

	return r
}

// Off removes listeners of name depending on target:
//   - nil, an empty id or a nil callback clears the whole event, like Unregister;
//   - a ListenerID or string removes the listener with that id, like UnregisterID;
//   - a Callback or func(...any) removes the listeners registered with it, like UnregisterFunc.
//
// Targets of any other type are ignored.
func (r *Registry) Off(name string, target any) *Registry {
	switch t := target.(type) {
	case nil:
		return r.Unregister(name)
	case ListenerID:
		return r.offID(name, t)
	case string:
		return r.offID(name, ListenerID(t))
	case Callback:
		return r.offFunc(name, t)
	case func(...any):
		return r.offFunc(name, t)
	default:
		r.logger.WithField("event", name).Warnf("ignoring unregister target of type %T", target)
		return r
	}
}

func (r *Registry) offID(name string, id ListenerID) *Registry {
	if id == "" {
		return r.Unregister(name)
	}
	return r.UnregisterID(name, id)
}

func (r *Registry) offFunc(name string, cb Callback) *Registry {
	if cb == nil {
		return r.Unregister(name)
	}
	return r.UnregisterFunc(name, cb)
}

// withEvent runs fn on the event under the write lock and prunes the event once it is empty.
func (r *Registry) withEvent(name string, fn func(*event)) {
	r.lock.Lock()
	defer r.lock.Unlock()

	ev, found := r.events[name]
	if !found {
		return
	}

	fn(ev)

	if ev.empty() {
		delete(r.events, name)
	}
}
