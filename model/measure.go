package model

// Event is one note or rest inside a measure. Duration is counted in
// semiquaver units and is always one of 1, 2 or 4.
type Event struct {
	Duration int
	Rest     bool
}

// Measure is the notation-ready form of one pattern. The events must sum
// to Pattern.Length semiquavers.
type Measure struct {
	// Number is the 1-based position in the full ordered sequence. It is
	// kept global across output documents so a pattern can be referenced
	// by the same number no matter which file it landed in.
	Number  int
	Pattern Pattern
	Events  []Event
}
