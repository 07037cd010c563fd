package engrave

import (
	"testing"

	"github.com/pmoretti/easyscore/musicxml"
	"github.com/stretchr/testify/assert"
)

func alteredNote(step string, alter, octave int, acc *musicxml.Accidental) musicxml.MeasureElement {
	a := alter
	return musicxml.MeasureElement{Note: &musicxml.Note{
		Pitch:      &musicxml.Pitch{Step: step, Alter: &a, Octave: octave},
		Duration:   2,
		Type:       "quarter",
		Accidental: acc,
	}}
}

func plainNote(step string, octave int) musicxml.MeasureElement {
	return musicxml.MeasureElement{Note: &musicxml.Note{
		Pitch:    &musicxml.Pitch{Step: step, Octave: octave},
		Duration: 2,
		Type:     "quarter",
	}}
}

func scoreOf(measures ...musicxml.Measure) *musicxml.Score {
	return &musicxml.Score{Parts: []musicxml.Part{{Id: "P1", Measures: measures}}}
}

func TestCourtesyAddedAfterIntroduction(t *testing.T) {
	score := scoreOf(
		musicxml.Measure{Number: "1", Elements: []musicxml.MeasureElement{
			alteredNote("F", 1, 5, &musicxml.Accidental{Value: "sharp"}),
		}},
		musicxml.Measure{Number: "2", Elements: []musicxml.MeasureElement{
			alteredNote("F", 1, 5, nil),
		}},
	)

	added := AddCourtesyAccidentals(score)

	assert := assert.New(t)
	assert.Equal(added, 1)
	courtesy := score.Parts[0].Measures[1].Elements[0].Note.Accidental
	assert.NotNil(courtesy)
	assert.Equal(courtesy.Value, "sharp")
	assert.Equal(courtesy.Cautionary, "yes")
}

func TestCourtesyNotDuplicatedWithinMeasure(t *testing.T) {
	score := scoreOf(
		musicxml.Measure{Number: "1", Elements: []musicxml.MeasureElement{
			alteredNote("B", -1, 4, &musicxml.Accidental{Value: "flat"}),
		}},
		musicxml.Measure{Number: "2", Elements: []musicxml.MeasureElement{
			alteredNote("B", -1, 4, nil),
			alteredNote("B", -1, 4, nil),
		}},
	)

	added := AddCourtesyAccidentals(score)

	assert := assert.New(t)
	assert.Equal(added, 1)
	assert.NotNil(score.Parts[0].Measures[1].Elements[0].Note.Accidental)
	assert.Nil(score.Parts[0].Measures[1].Elements[1].Note.Accidental)
}

func TestWrittenAccidentalNeverOverwritten(t *testing.T) {
	score := scoreOf(
		musicxml.Measure{Number: "1", Elements: []musicxml.MeasureElement{
			alteredNote("C", 1, 5, &musicxml.Accidental{Value: "sharp"}),
		}},
		musicxml.Measure{Number: "2", Elements: []musicxml.MeasureElement{
			alteredNote("C", 1, 5, &musicxml.Accidental{Value: "sharp"}),
		}},
	)

	added := AddCourtesyAccidentals(score)

	assert := assert.New(t)
	assert.Equal(added, 0)
	assert.Equal(score.Parts[0].Measures[1].Elements[0].Note.Accidental.Cautionary, "")
}

func TestUnalteredNotesUntouched(t *testing.T) {
	score := scoreOf(
		musicxml.Measure{Number: "1", Elements: []musicxml.MeasureElement{
			plainNote("G", 4),
		}},
		musicxml.Measure{Number: "2", Elements: []musicxml.MeasureElement{
			plainNote("G", 4),
		}},
	)

	added := AddCourtesyAccidentals(score)

	assert := assert.New(t)
	assert.Equal(added, 0)
	assert.Nil(score.Parts[0].Measures[1].Elements[0].Note.Accidental)
}
