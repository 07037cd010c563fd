package fingering

import (
	"testing"

	"github.com/pmoretti/easyscore/model"
	"github.com/stretchr/testify/assert"
)

func note(step model.Step, alter, octave int) model.Event {
	return model.Event{
		Pitch:    model.Pitch{Step: step, Alter: alter, Octave: octave},
		Duration: 4,
		Type:     model.TypeQuarter,
		Voice:    "1",
	}
}

func stream(events ...model.Event) model.VoiceStream {
	return model.VoiceStream{Measure: 1, Voice: "1", Divisions: 4, Events: events}
}

func TestChartForUnknownInstrument(t *testing.T) {
	_, err := ChartFor("kazoo")

	assert := assert.New(t)
	assert.ErrorIs(err, ErrUnsupportedInstrument)
}

func TestDisplayTokensSplitsAndReverses(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(DisplayTokens("123 12"), []string{"2", "1", "3", "2", "1"})
	assert.Equal(DisplayTokens("Oct"), []string{"8va"})
	assert.Equal(DisplayTokens("123 12 LowC"), []string{"C", "2", "1", "3", "2", "1"})
	assert.Equal(DisplayTokens("T"), []string{"T"})
	assert.Equal(DisplayTokens(""), []string{"T"})
}

func TestAnnotateNumbersStyle(t *testing.T) {
	chart, _ := ChartFor("eb_alto_sax")
	out, fingered, skipped := Annotate(stream(note(model.StepC, 0, 4)), chart, model.StyleNumbers, false)

	assert := assert.New(t)
	assert.Equal(fingered, 1)
	assert.Equal(skipped, 0)
	assert.Equal(out.Events[0].Fingering, []string{"2", "1", "3", "2", "1"})
	assert.Nil(out.Events[0].Holes)
	assert.True(out.Events[0].Fingered)
}

func TestAnnotateHolesStyle(t *testing.T) {
	chart, _ := ChartFor("bb_trumpet")
	out, fingered, _ := Annotate(stream(note(model.StepD, 0, 4)), chart, model.StyleHoles, false)

	assert := assert.New(t)
	assert.Equal(fingered, 1)
	assert.Nil(out.Events[0].Fingering)
	assert.Equal(out.Events[0].Holes, []bool{true, false, true})
}

func TestAnnotateBothStyle(t *testing.T) {
	chart, _ := ChartFor("bb_trumpet")
	out, _, _ := Annotate(stream(note(model.StepD, 0, 4)), chart, model.StyleBoth, false)

	assert := assert.New(t)
	assert.NotNil(out.Events[0].Fingering)
	assert.NotNil(out.Events[0].Holes)
}

func TestAnnotateIsIdempotent(t *testing.T) {
	chart, _ := ChartFor("eb_alto_sax")
	once, fingered1, _ := Annotate(stream(note(model.StepC, 0, 4)), chart, model.StyleNumbers, false)
	twice, fingered2, _ := Annotate(once, chart, model.StyleNumbers, false)

	assert := assert.New(t)
	assert.Equal(fingered1, 1)
	assert.Equal(fingered2, 0)
	assert.Equal(twice.Events, once.Events)
}

func TestUnresolvedNoteIsSkippedNotFailed(t *testing.T) {
	chart, _ := ChartFor("bb_trumpet")
	out, fingered, skipped := Annotate(stream(note(model.StepC, 0, 8)), chart, model.StyleNumbers, false)

	assert := assert.New(t)
	assert.Equal(fingered, 0)
	assert.Equal(skipped, 1)
	assert.False(out.Events[0].Fingered)
}

func TestEnharmonicFallbackResolvesSharpRow(t *testing.T) {
	// chart only knows F#4; Gb4 must resolve through the canonical spelling
	chart := model.FingeringChart{
		{Step: model.StepF, Alter: 1, Octave: 4}: {Text: "2"},
	}
	out, fingered, _ := Annotate(stream(note(model.StepG, -1, 4)), chart, model.StyleNumbers, false)

	assert := assert.New(t)
	assert.Equal(fingered, 1)
	assert.Equal(out.Events[0].Fingering, []string{"2"})
}

func TestAccidentalsOnlySkipsPlainNotes(t *testing.T) {
	chart, _ := ChartFor("eb_alto_sax")
	plain := note(model.StepC, 0, 4)
	marked := note(model.StepC, 1, 4)
	marked.Accidental = &model.Accidental{Kind: "sharp"}

	out, fingered, _ := Annotate(stream(plain, marked), chart, model.StyleNumbers, true)

	assert := assert.New(t)
	assert.Equal(fingered, 1)
	assert.False(out.Events[0].Fingered)
	assert.True(out.Events[1].Fingered)
}

func TestRestsNeverAnnotated(t *testing.T) {
	chart, _ := ChartFor("eb_alto_sax")
	rest := model.Event{Rest: true, Duration: 4, Type: model.TypeQuarter, Voice: "1"}
	out, fingered, skipped := Annotate(stream(rest), chart, model.StyleNumbers, false)

	assert := assert.New(t)
	assert.Equal(fingered, 0)
	assert.Equal(skipped, 0)
	assert.False(out.Events[0].Fingered)
}
