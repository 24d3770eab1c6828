package toast

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// UpdatedMsg carries a new toast state into a bubbletea program.
type UpdatedMsg struct {
	State State
}

// Watcher subscribes to a registry and exposes its updates as tea.Cmds.
// Only the latest state is kept: a slow reader skips intermediate
// snapshots, and a snapshot older than one already seen is dropped.
type Watcher struct {
	mu          sync.Mutex
	latest      uint64
	ch          chan State
	done        chan struct{}
	closeOnce   sync.Once
	unsubscribe func()
}

// Watch subscribes to r. Close the watcher to unsubscribe.
func Watch(r *Registry) *Watcher {
	w := &Watcher{
		ch:   make(chan State, 1),
		done: make(chan struct{}),
	}
	w.unsubscribe = r.Subscribe(w.publish)
	return w
}

func (w *Watcher) publish(s State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s.Seq < w.latest {
		return
	}
	w.latest = s.Seq
	select {
	case <-w.ch:
	default:
	}
	select {
	case w.ch <- s:
	default:
	}
}

// Next returns a command that waits for the next state. It returns nil
// once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-w.ch:
			return UpdatedMsg{State: s}
		case <-w.done:
			return nil
		}
	}
}

// Close unsubscribes from the registry and releases pending Next calls.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		w.unsubscribe()
		close(w.done)
	})
}
