package transpose

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

func TestLowersNotesAtOrAboveThreshold(t *testing.T) {
	threshold := model.Pitch{Step: model.StepG, Octave: 5}
	out, moved := Lower(stream(note(model.StepG, 0, 5), note(model.StepF, 1, 5)), threshold, nil)

	assert := assert.New(t)
	assert.Equal(moved, 1)
	assert.Equal(out.Events[0].Pitch, model.Pitch{Step: model.StepG, Octave: 4})
	assert.Equal(out.Events[1].Pitch, model.Pitch{Step: model.StepF, Alter: 1, Octave: 5})
}

func TestEnharmonicSpellingAtThresholdIsLowered(t *testing.T) {
	// Ab5 sounds the same as the G#5 threshold, so it moves too
	threshold := model.Pitch{Step: model.StepG, Alter: 1, Octave: 5}
	out, moved := Lower(stream(note(model.StepA, -1, 5)), threshold, nil)

	assert := assert.New(t)
	assert.Equal(moved, 1)
	assert.Equal(out.Events[0].Pitch, model.Pitch{Step: model.StepA, Alter: -1, Octave: 4})
}

func TestRestsPassThrough(t *testing.T) {
	threshold := model.Pitch{Step: model.StepC, Octave: 5}
	rest := model.Event{Rest: true, Duration: 4, Type: model.TypeQuarter, Voice: "1"}
	out, moved := Lower(stream(rest), threshold, nil)

	assert := assert.New(t)
	assert.Equal(moved, 0)
	assert.True(out.Events[0].Rest)
}

func TestTalliesTranspositions(t *testing.T) {
	threshold := model.Pitch{Step: model.StepC, Alter: 1, Octave: 5}
	counts := make(map[model.Transposition]int)
	Lower(stream(note(model.StepD, 0, 5), note(model.StepD, 0, 5)), threshold, counts)

	assert := assert.New(t)
	assert.Len(counts, 1)
	key := model.Transposition{
		From: model.Pitch{Step: model.StepD, Octave: 5},
		To:   model.Pitch{Step: model.StepD, Octave: 4},
	}
	assert.Equal(counts[key], 2)
}

func TestInputStreamNotMutated(t *testing.T) {
	threshold := model.Pitch{Step: model.StepC, Octave: 5}
	in := stream(note(model.StepE, 0, 5))
	Lower(in, threshold, nil)

	assert := assert.New(t)
	assert.Equal(in.Events[0].Pitch.Octave, 5)
}
