package infra

// EventType represents the type of event in the system
type EventType int

const (
	EnergyCharged EventType = iota
	AllocationCharged
	EnergyExhausted
)

// String returns the string representation of the EventType
func (et EventType) String() string {
	switch et {
	case EnergyCharged:
		return "EnergyCharged"
	case AllocationCharged:
		return "AllocationCharged"
	case EnergyExhausted:
		return "EnergyExhausted"
	default:
		return "Unknown"
	}
}

type Event interface{ EventType() EventType }
type Handler func(Event)

// Bus dispatches events synchronously, in subscription order, on the
// publishing goroutine. It is not safe for concurrent use; give each
// invocation its own bus.
type Bus struct{ subs map[EventType][]Handler }

func NewBus() *Bus { return &Bus{subs: map[EventType][]Handler{}} }
func (b *Bus) Publish(e Event) {
	for _, h := range b.subs[e.EventType()] {
		h(e)
	}
}
func (b *Bus) Subscribe(evt EventType, h Handler) { b.subs[evt] = append(b.subs[evt], h) }
