package musicxml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjjules/all-of-the-rythmns/measure"
	"github.com/jjjules/all-of-the-rythmns/model"
	"github.com/jjjules/all-of-the-rythmns/pattern"
)

func sortedMeasures(t *testing.T, n int, merge measure.RestMerge) []model.Measure {
	t.Helper()
	patterns, err := pattern.Enumerate(n)
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	pattern.SortGrouped(patterns)

	measures := make([]model.Measure, len(patterns))
	for i, p := range patterns {
		m := measure.FromPattern(p, merge)
		m.Number = i + 1
		measures[i] = m
	}
	return measures
}

func TestScoreLayout(t *testing.T) {
	measures := sortedMeasures(t, 3, measure.RestMergeNone)
	score, err := NewScore(measures, Decorations{})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("3.1", score.Version)
	assert.Equal(1, len(score.PartList.ScoreParts))
	assert.Equal("P1", score.PartList.ScoreParts[0].ID)
	assert.Equal("Drums", score.PartList.ScoreParts[0].PartName)
	assert.Equal(1, len(score.Parts))
	assert.Equal(8, len(score.Parts[0].Measures))

	first := score.Parts[0].Measures[0]
	assert.Equal("1", first.Number)
	assert.Equal(4, first.Attributes.Divisions)
	assert.Equal(&Time{Beats: 3, BeatType: 16}, first.Attributes.Time)
	assert.Equal(&Clef{Sign: "percussion", Line: 2}, first.Attributes.Clef)

	second := score.Parts[0].Measures[1]
	assert.Nil(second.Attributes.Time)
	assert.Equal(4, second.Attributes.Divisions)

	// the first measure is the all-rest pattern
	for _, note := range first.Notes {
		assert.NotNil(note.Rest)
		assert.Nil(note.Unpitched)
	}
	// the last is the all-hit pattern
	last := score.Parts[0].Measures[7]
	for _, note := range last.Notes {
		assert.Nil(note.Rest)
		assert.Equal(&Unpitched{DisplayStep: "C", DisplayOctave: 4}, note.Unpitched)
		assert.Equal(&Instr{ID: "drumset"}, note.Instrument)
		assert.Equal(1, note.Duration)
		assert.Equal("16th", note.Type)
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	for _, merge := range []measure.RestMerge{measure.RestMergeNone, measure.RestMergeBeat} {
		measures := sortedMeasures(t, 4, merge)
		score, err := NewScore(measures, Decorations{})

		assert := assert.New(t)
		assert.NoError(err)

		var buf bytes.Buffer
		assert.NoError(Write(&buf, score))
		assert.True(strings.HasPrefix(buf.String(), "<?xml"))

		parsed, err := Parse(&buf)
		assert.NoError(err)

		back, err := Measures(parsed)
		assert.NoError(err)
		assert.Equal(len(measures), len(back))
		for i := range measures {
			assert.Equal(measures[i].Pattern, back[i].Pattern)
			assert.Equal(measures[i].Number, back[i].Number)
		}
	}
}

func TestDecorationsMarkHitCountChanges(t *testing.T) {
	measures := sortedMeasures(t, 2, measure.RestMergeNone)
	score, err := NewScore(measures, Decorations{
		RehearsalMarks:  true,
		SectionBreaks:   true,
		TextAnnotations: true,
	})

	// sorted order for N=2 is 00, 01, 10, 11: the hit-count changes going
	// into measures 2 and 4
	assert := assert.New(t)
	assert.NoError(err)
	ms := score.Parts[0].Measures

	assert.Empty(ms[0].Directions)
	assert.Nil(ms[0].Barline)

	assert.Equal(2, len(ms[1].Directions))
	assert.Equal("Chapter: 1 Notes", ms[1].Directions[0].Type.Rehearsal)
	assert.Equal("Section: 1 Notes", ms[1].Directions[1].Type.Words)
	assert.Equal("light-heavy", ms[1].Barline.BarStyle)
	assert.Equal(&Repeat{Direction: "forward"}, ms[1].Barline.Repeat)

	assert.Empty(ms[2].Directions)
	assert.Nil(ms[2].Barline)

	assert.Equal(2, len(ms[3].Directions))
}

func TestNewScoreRejectsBrokenMeasure(t *testing.T) {
	broken := model.Measure{
		Number:  1,
		Pattern: model.Pattern{Bits: 0, Length: 4},
		Events:  []model.Event{{Duration: 1, Rest: true}},
	}
	_, err := NewScore([]model.Measure{broken}, Decorations{})

	assert := assert.New(t)
	assert.Error(err)
	assert.ErrorIs(err, measure.ErrDurationMismatch)
}
