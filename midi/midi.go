// Package midi exports the ordered pattern sequence as a standard MIDI file,
// one semiquaver grid slot per 16th note on the percussion channel.
package midi

import (
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jjjules/all-of-the-rythmns/model"
)

const (
	// GM acoustic snare on the percussion channel.
	snareKey    = 38
	drumChannel = 9

	velocity        = 100
	ticksPerQuarter = 960
	tempoBPM        = 120
)

// Export writes every pattern in order as one track, each pattern spanning
// one N/16 bar.
func Export(path string, n int, patterns []model.Pattern) error {
	s := smf.New()
	ticks := smf.MetricTicks(ticksPerQuarter)
	s.TimeFormat = ticks
	per16th := ticks.Ticks16th()

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(uint8(n), 16))
	tr.Add(0, smf.MetaTempo(tempoBPM))

	var delta uint32
	for _, p := range patterns {
		for slot := 0; slot < p.Length; slot++ {
			if p.Hit(slot) {
				tr.Add(delta, midi.NoteOn(drumChannel, snareKey, velocity))
				tr.Add(per16th, midi.NoteOff(drumChannel, snareKey))
				delta = 0
			} else {
				delta += per16th
			}
		}
	}
	tr.Close(delta)

	if err := s.Add(tr); err != nil {
		return errors.Wrap(err, "could not add track")
	}
	if err := s.WriteFile(path); err != nil {
		return errors.Wrapf(err, "could not write midi file %v", path)
	}
	return nil
}
