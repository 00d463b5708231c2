// Package musicxml renders ordered measures as score-partwise 3.1 documents
// and parses them back. Field order in the structs below follows the
// score-partwise content model, which is what encoding/xml emits.
package musicxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/jjjules/all-of-the-rythmns/constants"
	"github.com/jjjules/all-of-the-rythmns/measure"
	"github.com/jjjules/all-of-the-rythmns/model"
)

type ScorePartwise struct {
	XMLName  xml.Name `xml:"score-partwise"`
	Version  string   `xml:"version,attr"`
	PartList PartList `xml:"part-list"`
	Parts    []Part   `xml:"part"`
}

type PartList struct {
	ScoreParts []ScorePart `xml:"score-part"`
}

type ScorePart struct {
	ID       string `xml:"id,attr"`
	PartName string `xml:"part-name"`
}

type Part struct {
	ID       string    `xml:"id,attr"`
	Measures []Measure `xml:"measure"`
}

type Measure struct {
	Number     string      `xml:"number,attr"`
	Attributes *Attributes `xml:"attributes,omitempty"`
	Directions []Direction `xml:"direction,omitempty"`
	Barline    *Barline    `xml:"barline,omitempty"`
	Notes      []Note      `xml:"note"`
}

type Attributes struct {
	Divisions int   `xml:"divisions"`
	Time      *Time `xml:"time,omitempty"`
	Clef      *Clef `xml:"clef,omitempty"`
}

type Time struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type Clef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

type Direction struct {
	Type DirectionType `xml:"direction-type"`
}

type DirectionType struct {
	Rehearsal string `xml:"rehearsal,omitempty"`
	Words     string `xml:"words,omitempty"`
}

type Barline struct {
	Location string  `xml:"location,attr"`
	BarStyle string  `xml:"bar-style"`
	Repeat   *Repeat `xml:"repeat,omitempty"`
}

type Repeat struct {
	Direction string `xml:"direction,attr"`
}

type Note struct {
	Rest       *Rest      `xml:"rest,omitempty"`
	Unpitched  *Unpitched `xml:"unpitched,omitempty"`
	Duration   int        `xml:"duration"`
	Type       string     `xml:"type"`
	Instrument *Instr     `xml:"instrument,omitempty"`
}

type Rest struct{}

type Unpitched struct {
	DisplayStep   string `xml:"display-step"`
	DisplayOctave int    `xml:"display-octave"`
}

type Instr struct {
	ID string `xml:"id,attr"`
}

// Decorations are presentational extras inserted where the hit-count changes
// from one measure to the next. All off by default.
type Decorations struct {
	RehearsalMarks  bool
	SectionBreaks   bool
	TextAnnotations bool
}

func noteType(duration int) (string, error) {
	switch duration {
	case 1:
		return "16th", nil
	case 2:
		return "eighth", nil
	case 4:
		return "quarter", nil
	}
	return "", errors.Errorf("no note type for duration of %v semiquavers", duration)
}

func typeDuration(noteType string) (int, error) {
	switch noteType {
	case "16th":
		return 1, nil
	case "eighth":
		return 2, nil
	case "quarter":
		return 4, nil
	}
	return 0, errors.Errorf("unsupported note type %q", noteType)
}

func renderMeasure(m model.Measure, first bool, prevHits int, dec Decorations) (Measure, error) {
	if err := measure.Validate(m); err != nil {
		return Measure{}, err
	}

	res := Measure{Number: fmt.Sprintf("%v", m.Number)}
	res.Attributes = &Attributes{
		Divisions: constants.Divisions,
		Clef:      &Clef{Sign: "percussion", Line: 2},
	}
	if first {
		// each document stands alone, so the meter goes on its first
		// measure even mid-sequence
		res.Attributes.Time = &Time{Beats: m.Pattern.Length, BeatType: 16}
	}

	hits := m.Pattern.HitCount()
	if !first && hits != prevHits {
		if dec.RehearsalMarks {
			res.Directions = append(res.Directions, Direction{
				Type: DirectionType{Rehearsal: fmt.Sprintf("Chapter: %v Notes", hits)},
			})
		}
		if dec.SectionBreaks {
			res.Barline = &Barline{
				Location: "right",
				BarStyle: "light-heavy",
				Repeat:   &Repeat{Direction: "forward"},
			}
		}
		if dec.TextAnnotations {
			res.Directions = append(res.Directions, Direction{
				Type: DirectionType{Words: fmt.Sprintf("Section: %v Notes", hits)},
			})
		}
	}

	for _, e := range m.Events {
		nt, err := noteType(e.Duration)
		if err != nil {
			return Measure{}, errors.Wrapf(err, "measure %v", m.Number)
		}
		note := Note{Duration: e.Duration, Type: nt}
		if e.Rest {
			note.Rest = &Rest{}
		} else {
			note.Unpitched = &Unpitched{DisplayStep: "C", DisplayOctave: 4}
			note.Instrument = &Instr{ID: constants.InstrumentID}
		}
		res.Notes = append(res.Notes, note)
	}
	return res, nil
}

// NewScore builds one standalone document from an ordered, contiguous slice
// of measures.
func NewScore(measures []model.Measure, dec Decorations) (*ScorePartwise, error) {
	score := &ScorePartwise{
		Version: "3.1",
		PartList: PartList{
			ScoreParts: []ScorePart{{ID: constants.PartID, PartName: constants.PartName}},
		},
	}
	part := Part{ID: constants.PartID}
	prevHits := 0
	for i, m := range measures {
		rendered, err := renderMeasure(m, i == 0, prevHits, dec)
		if err != nil {
			return nil, err
		}
		part.Measures = append(part.Measures, rendered)
		prevHits = m.Pattern.HitCount()
	}
	score.Parts = []Part{part}
	return score, nil
}

// Write serializes a document with the XML declaration and indentation, the
// way notation tools expect to receive it.
func Write(w io.Writer, score *ScorePartwise) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "could not write xml header")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(score); err != nil {
		return errors.Wrap(err, "could not encode score")
	}
	if err := enc.Flush(); err != nil {
		return errors.Wrap(err, "could not flush score")
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Parse decodes one document.
func Parse(r io.Reader) (*ScorePartwise, error) {
	var score ScorePartwise
	if err := xml.NewDecoder(r).Decode(&score); err != nil {
		return nil, errors.Wrap(err, "could not parse musicxml document")
	}
	return &score, nil
}

// Measures reads the onset content back out of a parsed document. The
// returned measures carry the patterns reconstructed from the note and rest
// events, so serializing and rereading a document is lossless.
func Measures(score *ScorePartwise) ([]model.Measure, error) {
	var res []model.Measure
	for _, part := range score.Parts {
		for _, xm := range part.Measures {
			var m model.Measure
			fmt.Sscanf(xm.Number, "%d", &m.Number)
			for _, note := range xm.Notes {
				d := note.Duration
				if d == 0 {
					// some writers omit duration and rely on type
					var err error
					d, err = typeDuration(note.Type)
					if err != nil {
						return nil, errors.Wrapf(err, "measure %v", xm.Number)
					}
				}
				m.Events = append(m.Events, model.Event{Duration: d, Rest: note.Rest != nil})
			}
			p, err := measure.ToPattern(m)
			if err != nil {
				return nil, err
			}
			m.Pattern = p
			res = append(res, m)
		}
	}
	return res, nil
}
