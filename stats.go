package covenant

import (
	"slices"
)

// Stats is a point-in-time view of a Registry.
type Stats struct {
	// Events is the number of event names with at least one listener.
	Events int
	// Listeners is the number of listeners across all events.
	Listeners int
	// IDsMinted is the number of listener ids handed out so far.
	IDsMinted uint64
	// Signals counts Signal calls that reached at least one listener.
	Signals uint64
	// Deliveries counts callback invocations.
	Deliveries uint64
}

// Stats returns counters and sizes of the registry at the time of the call.
func (r *Registry) Stats() Stats {
	r.lock.RLock()
	defer r.lock.RUnlock()

	s := Stats{
		Events:     len(r.events),
		IDsMinted:  r.nextID,
		Signals:    r.signals.Load(),
		Deliveries: r.deliveries.Load(),
	}
	for _, ev := range r.events {
		s.Listeners += len(ev.listeners)
	}
	return s
}

// Events returns the names that currently have listeners, sorted.
func (r *Registry) Events() []string {
	r.lock.RLock()
	names := make([]string, 0, len(r.events))
	for name := range r.events {
		names = append(names, name)
	}
	r.lock.RUnlock()

	slices.Sort(names)
	return names
}

// ListenerCount returns how many listeners are registered for name.
func (r *Registry) ListenerCount(name string) int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if ev, found := r.events[name]; found {
		return len(ev.listeners)
	}
	return 0
}

// Has reports whether name has at least one listener.
func (r *Registry) Has(name string) bool {
	return r.ListenerCount(name) > 0
}
