package testsupport

import (
	"sync"

	"github.com/goliatone/go-itemlist/pkg/engine"
)

// Call is one listener invocation captured by a Recorder.
type Call struct {
	Event engine.Event
	Index int
	Items []any
	Name  string
}

// Recorder captures list notifications in the order they fire.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Listeners returns typed listeners that append to the recorder.
func (r *Recorder) Listeners() engine.Listeners {
	return engine.Listeners{
		OnInit:    func(*engine.List) { r.record(Call{Event: engine.EventInit, Index: -1}) },
		OnAdd:     func(*engine.List) { r.record(Call{Event: engine.EventAdd, Index: -1}) },
		OnEdit:    func(_ *engine.List, index int) { r.record(Call{Event: engine.EventEdit, Index: index}) },
		OnDestroy: func(*engine.List) { r.record(Call{Event: engine.EventDestroy, Index: -1}) },
		OnChange: func(list *engine.List, items []any) {
			call := Call{Event: engine.EventChange, Index: -1, Items: items, Name: list.Name()}
			r.record(call)
		},
	}
}

func (r *Recorder) record(call Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

// Calls returns every captured call.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times event fired.
func (r *Recorder) Count(event engine.Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, call := range r.calls {
		if call.Event == event {
			n++
		}
	}
	return n
}

// Changes returns the item snapshots carried by change notifications.
func (r *Recorder) Changes() [][]any {
	var out [][]any
	for _, call := range r.Calls() {
		if call.Event == engine.EventChange {
			out = append(out, call.Items)
		}
	}
	return out
}

// Reset forgets captured calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
