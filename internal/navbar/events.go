package navbar

import "sync"

// Events is a ScrollSource fed by whoever receives the scroll events: the
// live websocket session or the terminal preview.
type Events struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(int)
}

func NewEvents() *Events {
	return &Events{listeners: make(map[int]func(int))}
}

func (e *Events) Subscribe(fn func(offset int)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.listeners, id)
			e.mu.Unlock()
		})
	}
}

func (e *Events) Emit(offset int) {
	e.mu.Lock()
	fns := make([]func(int), 0, len(e.listeners))
	for _, fn := range e.listeners {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(offset)
	}
}

func (e *Events) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}
