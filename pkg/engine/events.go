package engine

import (
	"fmt"
	"sync"
)

// DefaultNamespace prefixes notification topics and view class names.
const DefaultNamespace = "itemlist"

// Event enumerates the lifecycle and mutation notifications a list emits.
type Event int

const (
	EventInit Event = iota
	EventAdd
	EventEdit
	EventChange
	EventDestroy
)

var eventNames = [...]string{
	EventInit:    "init",
	EventAdd:     "add",
	EventEdit:    "edit",
	EventChange:  "change",
	EventDestroy: "destroy",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(e))
	}
	return eventNames[e]
}

// Topic returns the namespaced notification name, e.g. "itemlist::change".
func (e Event) Topic(namespace string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return namespace + "::" + e.String()
}

// Notification is delivered to Bus subscribers. Args carries the
// event-specific payload: the edited index for EventEdit, the final sequence
// and the field name for EventChange.
type Notification struct {
	Event Event
	Topic string
	List  *List
	Args  []any
}

// Listeners are the typed callback hooks fixed at construction. Nil hooks are
// skipped.
type Listeners struct {
	OnInit    func(list *List)
	OnAdd     func(list *List)
	OnEdit    func(list *List, index int)
	OnChange  func(list *List, items []any)
	OnDestroy func(list *List)
}

func (l Listeners) call(n Notification) {
	switch n.Event {
	case EventInit:
		if l.OnInit != nil {
			l.OnInit(n.List)
		}
	case EventAdd:
		if l.OnAdd != nil {
			l.OnAdd(n.List)
		}
	case EventEdit:
		if l.OnEdit != nil {
			index, _ := argAt[int](n.Args, 0)
			l.OnEdit(n.List, index)
		}
	case EventChange:
		if l.OnChange != nil {
			items, _ := argAt[[]any](n.Args, 0)
			l.OnChange(n.List, items)
		}
	case EventDestroy:
		if l.OnDestroy != nil {
			l.OnDestroy(n.List)
		}
	}
}

func argAt[T any](args []any, idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(args) {
		return zero, false
	}
	value, ok := args[idx].(T)
	return value, ok
}

// Subscription identifies a Bus handler so it can be removed.
type Subscription struct {
	event Event
	id    uint64
}

type handler struct {
	id uint64
	fn func(Notification)
}

// Bus is a caller-owned publish mechanism for named notifications. One Bus
// can be shared by several lists; handlers run in subscription order.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[Event][]handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Event][]handler)}
}

// Subscribe registers fn for event.
func (b *Bus) Subscribe(event Event, fn func(Notification)) Subscription {
	if b == nil || fn == nil {
		return Subscription{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[event] = append(b.handlers[event], handler{id: b.nextID, fn: fn})
	return Subscription{event: event, id: b.nextID}
}

// Unsubscribe removes a handler registered with Subscribe.
func (b *Bus) Unsubscribe(sub Subscription) {
	if b == nil || sub.id == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.handlers[sub.event]
	for idx, h := range current {
		if h.id == sub.id {
			b.handlers[sub.event] = append(current[:idx:idx], current[idx+1:]...)
			return
		}
	}
}

// Publish delivers n to every handler subscribed to n.Event.
func (b *Bus) Publish(n Notification) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers := append([]handler(nil), b.handlers[n.Event]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h.fn(n)
	}
}
