package measure

import (
	"github.com/pkg/errors"

	"github.com/jjjules/all-of-the-rythmns/constants"
	"github.com/jjjules/all-of-the-rythmns/model"
	"github.com/jjjules/all-of-the-rythmns/util"
)

// RestMerge selects how aggressively adjacent rests are coalesced into
// larger rest events. Purely presentational; the onset pattern is unchanged.
type RestMerge string

const (
	// RestMergeNone writes one semiquaver rest per silent slot.
	RestMergeNone RestMerge = "none"
	// RestMergeBeat coalesces rest runs greedily into quarter, eighth and
	// semiquaver rests, never crossing a beat boundary.
	RestMergeBeat RestMerge = "beat"
)

func ParseRestMerge(s string) (RestMerge, error) {
	switch RestMerge(s) {
	case RestMergeNone, RestMergeBeat:
		return RestMerge(s), nil
	}
	return "", errors.Errorf("unknown rest merge policy %q, want %q or %q", s, RestMergeNone, RestMergeBeat)
}

// ErrDurationMismatch marks a measure whose events do not sum to the pattern
// length. This is a programming defect, never a user error.
var ErrDurationMismatch = errors.New("measure duration does not sum to the pattern length")

// FromPattern renders one pattern as a measure. Hits are always single
// semiquaver notes; rests follow the given merge policy.
func FromPattern(p model.Pattern, merge RestMerge) model.Measure {
	var events []model.Event
	slot := 0
	for slot < p.Length {
		if p.Hit(slot) {
			events = append(events, model.Event{Duration: 1})
			slot++
			continue
		}
		run := 0
		for slot+run < p.Length && !p.Hit(slot+run) {
			run++
		}
		events = append(events, restEvents(slot, run, merge)...)
		slot += run
	}
	return model.Measure{Pattern: p, Events: events}
}

func restEvents(start, run int, merge RestMerge) []model.Event {
	if merge == RestMergeNone {
		out := make([]model.Event, run)
		for i := range out {
			out[i] = model.Event{Duration: 1, Rest: true}
		}
		return out
	}
	var out []model.Event
	for run > 0 {
		untilBeat := constants.SlotsPerBeat - start%constants.SlotsPerBeat
		seg := util.Min(run, untilBeat)
		for _, d := range []int{4, 2, 1} {
			for seg >= d {
				out = append(out, model.Event{Duration: d, Rest: true})
				seg -= d
				start += d
				run -= d
			}
		}
	}
	return out
}

// Validate checks the duration invariant: the events of a measure must sum
// to exactly the pattern length in semiquavers.
func Validate(m model.Measure) error {
	total := 0
	for _, e := range m.Events {
		total += e.Duration
	}
	if total != m.Pattern.Length {
		return errors.Wrapf(ErrDurationMismatch, "measure %v: events sum to %v semiquavers, want %v", m.Number, total, m.Pattern.Length)
	}
	return nil
}

// ToPattern reads the onset sequence back out of a measure. A note event of
// duration d contributes an onset on its first slot and silence for the rest
// of its length; a rest event contributes d silent slots.
func ToPattern(m model.Measure) (model.Pattern, error) {
	var bits uint32
	n := 0
	for _, e := range m.Events {
		if e.Duration < 1 {
			return model.Pattern{}, errors.Errorf("measure %v: event with non-positive duration %v", m.Number, e.Duration)
		}
		bits <<= e.Duration
		if !e.Rest {
			bits |= 1 << (e.Duration - 1)
		}
		n += e.Duration
		if n > constants.MaxPatternLength {
			return model.Pattern{}, errors.Errorf("measure %v: events sum past the maximum pattern length %v", m.Number, constants.MaxPatternLength)
		}
	}
	return model.Pattern{Bits: bits, Length: n}, nil
}
