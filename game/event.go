package game

import "fmt"

// EventKind identifies what happened in the simulation.
type EventKind int

const (
	OrderIssuedEvent EventKind = iota
	OrderExecutedEvent
	PhaseChangedEvent
	CommandSavedEvent
	ConquestEvent
	EliminationEvent
	CardPlayedEvent
)

var eventNames = map[EventKind]string{
	OrderIssuedEvent:   "order_issued",
	OrderExecutedEvent: "order_executed",
	PhaseChangedEvent:  "phase_changed",
	CommandSavedEvent:  "command_saved",
	ConquestEvent:      "conquest",
	EliminationEvent:   "elimination",
	CardPlayedEvent:    "card_played",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is a single loggable thing that happened. Order fields are only set on
// order events, State only on phase changes.
type Event struct {
	Kind    EventKind
	Round   int
	Player  string
	Order   OrderKind
	OK      bool
	State   string
	Message string
}

// LogLine describes the event as a single line of text.
func (e Event) LogLine() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Sink receives events from a Dispatcher.
type Sink interface {
	Notify(e Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// Dispatcher delivers events to every attached sink in attachment order.
// A nil Dispatcher discards events.
type Dispatcher struct {
	round int
	sinks []Sink
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// Attach registers another sink.
func (d *Dispatcher) Attach(s Sink) {
	d.sinks = append(d.sinks, s)
}

// SetRound stamps subsequent events with the given round number.
func (d *Dispatcher) SetRound(round int) {
	if d != nil {
		d.round = round
	}
}

func (d *Dispatcher) Emit(e Event) {
	if d == nil {
		return
	}
	e.Round = d.round
	for _, s := range d.sinks {
		s.Notify(e)
	}
}
