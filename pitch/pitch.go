package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmoretti/easyscore/model"
)

// semitone offset of each natural step within the octave
var stepSemitones = map[model.Step]int{
	model.StepC: 0,
	model.StepD: 2,
	model.StepE: 4,
	model.StepF: 5,
	model.StepG: 7,
	model.StepA: 9,
	model.StepB: 11,
}

// canonical (sharp-preferring) spelling per pitch class
var canonicalSpellings = [12]struct {
	Step  model.Step
	Alter int
}{
	{model.StepC, 0},
	{model.StepC, 1},
	{model.StepD, 0},
	{model.StepD, 1},
	{model.StepE, 0},
	{model.StepF, 0},
	{model.StepF, 1},
	{model.StepG, 0},
	{model.StepG, 1},
	{model.StepA, 0},
	{model.StepA, 1},
	{model.StepB, 0},
}

// Chromatic resolves a written pitch to its absolute semitone index.
// Enharmonic spellings resolve to the same value, so ordering ignores
// letter names.
func Chromatic(p model.Pitch) int {
	return p.Octave*12 + stepSemitones[p.Step] + p.Alter
}

// Compare orders two pitches by resolved chromatic index. Negative when
// a is lower than b, zero when enharmonically equal.
func Compare(a, b model.Pitch) int {
	return Chromatic(a) - Chromatic(b)
}

// OctaveDown returns the same written pitch one octave lower.
func OctaveDown(p model.Pitch) model.Pitch {
	p.Octave -= 1
	return p
}

// Canonical returns the sharp-preferring spelling of p at the same
// sounding pitch. Gb4 canonicalizes to F#4, Cb4 to B3.
func Canonical(p model.Pitch) model.Pitch {
	chromatic := Chromatic(p)
	pc := ((chromatic % 12) + 12) % 12
	spelling := canonicalSpellings[pc]
	return model.Pitch{
		Step:   spelling.Step,
		Alter:  spelling.Alter,
		Octave: (chromatic - pc) / 12,
	}
}

// MidiKey is the MIDI note number of the written pitch (C4 = 60).
func MidiKey(p model.Pitch) uint8 {
	return uint8(Chromatic(p) + 12)
}

// String renders a pitch like "F#5", "Bb3" or "C4".
func String(p model.Pitch) string {
	var accidental string
	switch {
	case p.Alter > 0:
		accidental = strings.Repeat("#", p.Alter)
	case p.Alter < 0:
		accidental = strings.Repeat("b", -p.Alter)
	}
	return fmt.Sprintf("%v%v%v", string(p.Step), accidental, p.Octave)
}

// Parse reads the String form back into a pitch.
func Parse(s string) (model.Pitch, error) {
	var p model.Pitch
	if len(s) < 2 {
		return p, fmt.Errorf("invalid pitch %q", s)
	}
	step := model.Step(s[:1])
	if _, ok := stepSemitones[step]; !ok {
		return p, fmt.Errorf("invalid pitch step in %q", s)
	}
	p.Step = step
	rest := s[1:]
	for strings.HasPrefix(rest, "#") {
		p.Alter += 1
		rest = rest[1:]
	}
	for strings.HasPrefix(rest, "b") {
		p.Alter -= 1
		rest = rest[1:]
	}
	if p.Alter > 2 || p.Alter < -2 {
		return p, fmt.Errorf("invalid alteration in %q", s)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return p, fmt.Errorf("invalid octave in %q", s)
	}
	p.Octave = octave
	return p, nil
}
