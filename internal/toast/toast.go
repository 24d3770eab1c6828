// Package toast provides transient notifications shared across screens.
//
// A Registry owns a bounded queue of toasts and a list of subscribers.
// Every change publishes an immutable State snapshot to all subscribers.
// Toasts expire on timers: an open toast is dismissed after its duration,
// and a dismissed toast is removed after the registry's remove delay.
// When the last subscriber leaves, the registry tears down its queue and
// timers.
package toast

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit       = 1
	DefaultDuration    = 4 * time.Second
	DefaultRemoveDelay = time.Second
)

// Variant selects how a toast is rendered.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// Toast is a single notification.
type Toast struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	Open        bool // false once dismissed, until removed

	// Duration overrides the registry default. Negative means sticky.
	Duration time.Duration
}

// State is a snapshot of the queue, newest first. Seq grows with every
// change, so a later snapshot always carries a higher Seq.
type State struct {
	Toasts []Toast
	Seq    uint64
}

// Visible returns the toasts that have not been dismissed.
func (s State) Visible() []Toast {
	var out []Toast
	for _, t := range s.Toasts {
		if t.Open {
			out = append(out, t)
		}
	}
	return out
}

// Listener receives state snapshots. It is called outside the registry
// lock and may call back into the registry.
type Listener func(State)

// Options configures a Registry.
type Options struct {
	Limit       int           // queue bound, default 1
	Duration    time.Duration // auto-dismiss delay, 0 = default, negative = sticky
	RemoveDelay time.Duration // delay between dismiss and removal, 0 = default
}

func (o Options) withDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.RemoveDelay <= 0 {
		o.RemoveDelay = DefaultRemoveDelay
	}
	return o
}

type subscriber struct {
	id int
	fn Listener
}

// Registry is a publish/subscribe toast store. It is safe for concurrent
// use.
type Registry struct {
	mu          sync.Mutex
	opts        Options
	toasts      []Toast
	subscribers []subscriber
	nextSubID   int
	expire      map[string]*time.Timer
	remove      map[string]*time.Timer
	newID       func() string
	seq         uint64
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		opts:   opts.withDefaults(),
		expire: make(map[string]*time.Timer),
		remove: make(map[string]*time.Timer),
		newID:  uuid.NewString,
	}
}

// Handle refers to a toast returned by Show.
type Handle struct {
	ID string
	r  *Registry
}

// Dismiss closes the toast.
func (h Handle) Dismiss() {
	h.r.Dismiss(h.ID)
}

// Show adds a toast to the front of the queue. Toasts beyond the limit are
// dropped from the back.
func (r *Registry) Show(t Toast) Handle {
	r.mu.Lock()
	t.ID = r.newID()
	t.Open = true

	r.toasts = append([]Toast{t}, r.toasts...)
	if len(r.toasts) > r.opts.Limit {
		for _, dropped := range r.toasts[r.opts.Limit:] {
			r.stopTimersLocked(dropped.ID)
		}
		r.toasts = r.toasts[:r.opts.Limit]
	}

	duration := t.Duration
	if duration == 0 {
		duration = r.opts.Duration
	}
	if duration > 0 {
		id := t.ID
		r.expire[id] = time.AfterFunc(duration, func() { r.Dismiss(id) })
	}

	snapshot, subs := r.changedLocked()
	r.mu.Unlock()

	publish(snapshot, subs)
	return Handle{ID: t.ID, r: r}
}

// Success shows a default toast.
func (r *Registry) Success(title, description string) Handle {
	return r.Show(Toast{Title: title, Description: description})
}

// Failure shows a destructive toast.
func (r *Registry) Failure(title, description string) Handle {
	return r.Show(Toast{Title: title, Description: description, Variant: VariantDestructive})
}

// Update applies fn to the toast with the given id. The id cannot change.
func (r *Registry) Update(id string, fn func(*Toast)) {
	r.mu.Lock()
	idx := r.indexLocked(id)
	if idx < 0 {
		r.mu.Unlock()
		return
	}
	fn(&r.toasts[idx])
	r.toasts[idx].ID = id
	snapshot, subs := r.changedLocked()
	r.mu.Unlock()

	publish(snapshot, subs)
}

// Dismiss closes the toast with the given id and schedules its removal.
// An empty id dismisses every toast.
func (r *Registry) Dismiss(id string) {
	r.mu.Lock()
	changed := false
	for i := range r.toasts {
		t := &r.toasts[i]
		if id != "" && t.ID != id {
			continue
		}
		if timer, ok := r.expire[t.ID]; ok {
			timer.Stop()
			delete(r.expire, t.ID)
		}
		if t.Open {
			t.Open = false
			changed = true
		}
		r.scheduleRemoveLocked(t.ID)
	}
	if !changed {
		r.mu.Unlock()
		return
	}
	snapshot, subs := r.changedLocked()
	r.mu.Unlock()

	publish(snapshot, subs)
}

// DismissAll closes every toast.
func (r *Registry) DismissAll() {
	r.Dismiss("")
}

// State returns the current snapshot.
func (r *Registry) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot, _ := r.snapshotLocked()
	return snapshot
}

// Subscribe registers fn and immediately sends it the current state. The
// returned function unsubscribes; removing the last subscriber tears the
// registry down.
func (r *Registry) Subscribe(fn Listener) (unsubscribe func()) {
	r.mu.Lock()
	r.nextSubID++
	id := r.nextSubID
	r.subscribers = append(r.subscribers, subscriber{id: id, fn: fn})
	snapshot, _ := r.snapshotLocked()
	r.mu.Unlock()

	fn(snapshot)

	var once sync.Once
	return func() {
		once.Do(func() { r.unsubscribe(id) })
	}
}

// Subscribers returns the number of active subscribers.
func (r *Registry) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}

// Close stops all timers and clears the queue.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teardownLocked()
}

func (r *Registry) unsubscribe(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = slices.DeleteFunc(r.subscribers, func(s subscriber) bool {
		return s.id == id
	})
	if len(r.subscribers) == 0 {
		r.teardownLocked()
	}
}

func (r *Registry) teardownLocked() {
	for id, timer := range r.expire {
		timer.Stop()
		delete(r.expire, id)
	}
	for id, timer := range r.remove {
		timer.Stop()
		delete(r.remove, id)
	}
	r.toasts = nil
}

func (r *Registry) scheduleRemoveLocked(id string) {
	if _, ok := r.remove[id]; ok {
		return
	}
	r.remove[id] = time.AfterFunc(r.opts.RemoveDelay, func() { r.removeToast(id) })
}

func (r *Registry) removeToast(id string) {
	r.mu.Lock()
	delete(r.remove, id)
	idx := r.indexLocked(id)
	if idx < 0 {
		r.mu.Unlock()
		return
	}
	r.toasts = slices.Delete(r.toasts, idx, idx+1)
	snapshot, subs := r.changedLocked()
	r.mu.Unlock()

	publish(snapshot, subs)
}

func (r *Registry) stopTimersLocked(id string) {
	if timer, ok := r.expire[id]; ok {
		timer.Stop()
		delete(r.expire, id)
	}
	if timer, ok := r.remove[id]; ok {
		timer.Stop()
		delete(r.remove, id)
	}
}

func (r *Registry) indexLocked(id string) int {
	return slices.IndexFunc(r.toasts, func(t Toast) bool { return t.ID == id })
}

// changedLocked records a change and snapshots the new state.
func (r *Registry) changedLocked() (State, []Listener) {
	r.seq++
	return r.snapshotLocked()
}

func (r *Registry) snapshotLocked() (State, []Listener) {
	subs := make([]Listener, len(r.subscribers))
	for i, s := range r.subscribers {
		subs[i] = s.fn
	}
	return State{Toasts: slices.Clone(r.toasts), Seq: r.seq}, subs
}

func publish(s State, subs []Listener) {
	for _, fn := range subs {
		fn(s)
	}
}
