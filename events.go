package dice

// EventKind identifies the type of narration event emitted while a roll
// executes.
type EventKind string

const (
	// EventRollStarted is emitted once before a roll's first draw.
	EventRollStarted EventKind = "roll_started"

	// EventDrew is emitted for every counted draw: each die of a basic or
	// choose-N roll, the first draw of an exploding die, and the draw that
	// finally clears a reroll threshold.
	EventDrew EventKind = "drew"

	// EventRerolled is emitted instead of EventDrew when a draw lands at or
	// below the reroll threshold and is discarded.
	EventRerolled EventKind = "rerolled"

	// EventExploded is emitted for each extra draw added to a die that met
	// the explosion threshold.
	EventExploded EventKind = "exploded"

	// EventChose is emitted once after all draws of a choose-N roll,
	// carrying the final kept subset.
	EventChose EventKind = "chose"

	// EventRollFinished is emitted once with the roll's total.
	EventRollFinished EventKind = "roll_finished"
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Event is a structured record of one step of a roll's execution. Events are
// emitted in draw order, so a sink can reconstruct the full narration of a
// roll without any state of its own.
type Event struct {
	// Kind identifies the event type.
	Kind EventKind

	// Roll is the die specification being executed.
	Roll Roll

	// Value is the drawn value, the discarded value for EventRerolled, or
	// the roll total for EventRollFinished.
	Value int

	// Kept is the final kept subset for EventChose; nil otherwise.
	Kept []int
}

// Narrator receives narration events during evaluation. Evaluation consults
// it only when non-nil; a nil Narrator costs nothing.
//
// Implementations must not retain the Kept slice past the call.
type Narrator func(Event)

// MultiNarrator combines multiple narrators into one.
func MultiNarrator(narrators ...Narrator) Narrator {
	return func(e Event) {
		for _, n := range narrators {
			if n != nil {
				n(e)
			}
		}
	}
}
