// Package events implements the observer pattern used to surface
// generation progress and table rebuilds without coupling the core loop to
// any presentation or telemetry concern.
package events

import (
	"log"
	"sync"
)

// Event types emitted by the core.
const (
	// TypeGenerationStarted fires when a generation run begins.
	TypeGenerationStarted = "generation:started"

	// TypeCombinationAccepted fires for each combination that passes the
	// filter pipeline.
	TypeCombinationAccepted = "generation:accepted"

	// TypeGenerationFinished fires when a run completes, fails or is cancelled.
	TypeGenerationFinished = "generation:finished"

	// TypeTablesRebuilt fires after the statistical tables are rebuilt
	// from fresh historical data.
	TypeTablesRebuilt = "tables:rebuilt"
)

// Event is a domain event with a typed payload.
type Event struct {
	Type string
	Data any
}

// Observer receives dispatched events. Implementations should filter with
// ShouldHandle and must not block for long: dispatch is synchronous.
type Observer interface {
	// OnEvent is called for each dispatched event.
	OnEvent(event Event) error

	// Name returns a human-readable observer name for logging.
	Name() string

	// ShouldHandle reports whether this observer wants the event type.
	ShouldHandle(eventType string) bool
}

// Dispatcher distributes events to registered observers. Safe for
// concurrent use.
type Dispatcher struct {
	observers []Observer
	mu        sync.RWMutex
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds an observer.
func (d *Dispatcher) Register(observer Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, observer)
}

// Unregister removes an observer.
func (d *Dispatcher) Unregister(observer Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, obs := range d.observers {
		if obs == observer {
			d.observers[i] = d.observers[len(d.observers)-1]
			d.observers = d.observers[:len(d.observers)-1]
			return
		}
	}
}

// Dispatch sends the event to every interested observer. Observer errors
// are logged, not propagated: a broken observer must not abort the
// generation loop.
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	observers := make([]Observer, len(d.observers))
	copy(observers, d.observers)
	d.mu.RUnlock()

	for _, obs := range observers {
		if !obs.ShouldHandle(event.Type) {
			continue
		}
		if err := obs.OnEvent(event); err != nil {
			log.Printf("[Events] observer %s failed on %s: %v", obs.Name(), event.Type, err)
		}
	}
}
