package floor

import "sync"

// Floor is the single-writer handle around a State. Every mutation runs
// under its mutex; a successful mutation hands the fresh snapshot to the
// OnChange hook (persistence and websocket fan-out live there). A mutation
// that returns an error changes nothing and triggers no hook.
type Floor struct {
	mu       sync.Mutex
	state    *State
	onChange func(Snapshot)
}

// New wraps a state behind a guarded handle.
func New(state *State) *Floor {
	if state == nil {
		state = NewState()
	}
	return &Floor{state: state}
}

// OnChange registers the hook called with the snapshot after every
// successful mutation. Call before serving traffic; not safe to swap later.
func (f *Floor) OnChange(fn func(Snapshot)) {
	f.onChange = fn
}

// Update runs a mutation under the write lock. The callback gets the live
// state; returning an error aborts without notifying OnChange.
func (f *Floor) Update(fn func(*State) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := fn(f.state); err != nil {
		return err
	}
	if f.onChange != nil {
		f.onChange(f.state.Snapshot())
	}
	return nil
}

// View runs a read-only callback under the lock. Callers must not retain
// anything but copies.
func (f *Floor) View(fn func(*State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.state)
}

// Snapshot returns a consistent copy of the whole floor.
func (f *Floor) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Snapshot()
}
