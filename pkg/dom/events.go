package dom

// Event types dispatched by the toast engine and its transports.
const (
	EventClick        = "click"
	EventAnimationEnd = "animationend"
)

// Event is delivered to listeners.
type Event struct {
	Type   string
	Target *Element
	Detail map[string]any
}

// Listener handles an event.
type Listener func(Event)

// ListenerOptions configures a listener registration.
type ListenerOptions struct {
	// Once detaches the listener before its first invocation.
	Once bool
}

type listener struct {
	fn   Listener
	once bool
}

// AddEventListener registers fn for events of the given type.
// The returned function removes the registration.
func (e *Element) AddEventListener(typ string, fn Listener, opts ...ListenerOptions) func() {
	if fn == nil {
		return func() {}
	}
	var o ListenerOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	l := &listener{fn: fn, once: o.Once}

	e.doc.mu.Lock()
	e.listeners[typ] = append(e.listeners[typ], l)
	e.doc.mu.Unlock()

	return func() {
		e.doc.mu.Lock()
		e.removeListenerLocked(typ, l)
		e.doc.mu.Unlock()
	}
}

// ListenerCount returns the number of listeners registered for typ.
func (e *Element) ListenerCount(typ string) int {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return len(e.listeners[typ])
}

// Dispatch delivers ev to the element's listeners for ev.Type and returns
// how many were invoked. Target defaults to e.
func (e *Element) Dispatch(ev Event) int {
	if ev.Target == nil {
		ev.Target = e
	}

	e.doc.mu.Lock()
	registered := e.listeners[ev.Type]
	calls := make([]*listener, len(registered))
	copy(calls, registered)
	for _, l := range calls {
		if l.once {
			e.removeListenerLocked(ev.Type, l)
		}
	}
	e.doc.mu.Unlock()

	for _, l := range calls {
		l.fn(ev)
	}
	return len(calls)
}

func (e *Element) removeListenerLocked(typ string, target *listener) {
	ls := e.listeners[typ]
	for i, l := range ls {
		if l == target {
			e.listeners[typ] = append(ls[:i], ls[i+1:]...)
			break
		}
	}
	if len(e.listeners[typ]) == 0 {
		delete(e.listeners, typ)
	}
}
