package pitch

import (
	"testing"

	"github.com/pmoretti/easyscore/model"
	"github.com/stretchr/testify/assert"
)

func TestEnharmonicSpellingsCompareEqual(t *testing.T) {
	fSharp := model.Pitch{Step: model.StepF, Alter: 1, Octave: 4}
	gFlat := model.Pitch{Step: model.StepG, Alter: -1, Octave: 4}

	assert := assert.New(t)
	assert.Equal(Compare(fSharp, gFlat), 0)
}

func TestCompareOrdersAcrossOctaves(t *testing.T) {
	b4 := model.Pitch{Step: model.StepB, Octave: 4}
	c5 := model.Pitch{Step: model.StepC, Octave: 5}

	assert := assert.New(t)
	assert.Less(Compare(b4, c5), 0)
	assert.Greater(Compare(c5, b4), 0)
}

func TestOctaveDownKeepsSpelling(t *testing.T) {
	gSharp5 := model.Pitch{Step: model.StepG, Alter: 1, Octave: 5}
	down := OctaveDown(gSharp5)

	assert := assert.New(t)
	assert.Equal(down, model.Pitch{Step: model.StepG, Alter: 1, Octave: 4})
}

func TestCanonicalPrefersSharps(t *testing.T) {
	gFlat := model.Pitch{Step: model.StepG, Alter: -1, Octave: 4}

	assert := assert.New(t)
	assert.Equal(Canonical(gFlat), model.Pitch{Step: model.StepF, Alter: 1, Octave: 4})
}

func TestCanonicalCrossesOctaveBoundary(t *testing.T) {
	cFlat := model.Pitch{Step: model.StepC, Alter: -1, Octave: 4}

	assert := assert.New(t)
	assert.Equal(Canonical(cFlat), model.Pitch{Step: model.StepB, Alter: 0, Octave: 3})
}

func TestMidiKeyMiddleC(t *testing.T) {
	c4 := model.Pitch{Step: model.StepC, Octave: 4}

	assert := assert.New(t)
	assert.Equal(MidiKey(c4), uint8(60))
}

func TestStringRendersAccidentals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(String(model.Pitch{Step: model.StepF, Alter: 1, Octave: 5}), "F#5")
	assert.Equal(String(model.Pitch{Step: model.StepB, Alter: -1, Octave: 3}), "Bb3")
	assert.Equal(String(model.Pitch{Step: model.StepC, Octave: 4}), "C4")
}

func TestParseRoundTrips(t *testing.T) {
	assert := assert.New(t)
	for _, s := range []string{"C4", "F#5", "Bb3", "C#5", "G5"} {
		p, err := Parse(s)
		assert.Nil(err)
		assert.Equal(String(p), s)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	assert := assert.New(t)
	for _, s := range []string{"", "H4", "C", "C#b", "C###4"} {
		_, err := Parse(s)
		assert.NotNil(err, s)
	}
}
