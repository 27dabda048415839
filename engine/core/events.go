package core

import "github.com/google/uuid"

type registeredListener[T any] struct {
	id       uuid.UUID
	callback func(T)
}

// Event is a list of listeners notified, in registration order, every time the
// event is raised. Listeners live until they are removed or the owner of the
// Event is dropped.
type Event[T any] struct {
	listeners []*registeredListener[T]
	// listeners removed while raising are nilled out and compacted afterwards
	toRemove    int
	insideRaise bool
}

func NewEvent[T any]() *Event[T] {
	return &Event[T]{}
}

// NumberOfListeners returns the number of live listeners.
func (e *Event[T]) NumberOfListeners() int {
	return len(e.listeners) - e.toRemove
}

/**
 * Registers a callback to be invoked when the event is raised.
 * @param callback The function invoked with the raise argument.
 * @returns The handle used to unregister the callback.
 */
func (e *Event[T]) AddListener(callback func(T)) uuid.UUID {
	Defined("callback", callback)
	id := uuid.New()
	e.listeners = append(e.listeners, &registeredListener[T]{
		id:       id,
		callback: callback,
	})
	return id
}

/**
 * Unregisters the listener identified by id.
 * @returns TRUE if the listener was found and removed; otherwise false.
 */
func (e *Event[T]) RemoveListener(id uuid.UUID) bool {
	for i, l := range e.listeners {
		if l == nil || l.id != id {
			continue
		}
		if e.insideRaise {
			// Compacted after the raise loop finishes.
			e.listeners[i] = nil
			e.toRemove++
		} else {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
		}
		return true
	}
	LogWarn("event listener %s is not registered", id)
	return false
}

// Raise invokes every listener with arg. Listeners added during the raise are
// not called until the next one.
func (e *Event[T]) Raise(arg T) {
	e.insideRaise = true
	count := len(e.listeners)
	for i := 0; i < count; i++ {
		if l := e.listeners[i]; l != nil {
			l.callback(arg)
		}
	}
	e.insideRaise = false

	if e.toRemove > 0 {
		kept := e.listeners[:0]
		for _, l := range e.listeners {
			if l != nil {
				kept = append(kept, l)
			}
		}
		for i := len(kept); i < len(e.listeners); i++ {
			e.listeners[i] = nil
		}
		e.listeners = kept
		e.toRemove = 0
	}
}
