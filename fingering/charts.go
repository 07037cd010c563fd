package fingering

import (
	"errors"

	"github.com/pmoretti/easyscore/model"
)

// ErrUnsupportedInstrument means no fingering chart exists for the
// requested instrument id. Callers skip the annotation stage with a
// warning; it is fatal for that stage only.
var ErrUnsupportedInstrument = errors.New("no fingering chart for instrument")

func key(step model.Step, alter, octave int) model.ChartKey {
	return model.ChartKey{Step: step, Alter: alter, Octave: octave}
}

// Eb alto saxophone. Hole markers: LH thumb, LH 1-3, RH 1-4, octave key.
var altoSaxChart = model.FingeringChart{
	key(model.StepB, -1, 3): {Text: "123 123C", Holes: []bool{true, true, true, true, true, true, true, true, false}},
	key(model.StepB, 0, 3):  {Text: "123 123", Holes: []bool{true, true, true, true, true, true, true, false, false}},
	key(model.StepC, 0, 4):  {Text: "123 12", Holes: []bool{true, true, true, true, true, true, false, false, false}},
	key(model.StepC, 1, 4):  {Text: "123 1", Holes: []bool{true, true, true, true, true, false, false, false, false}},
	key(model.StepD, -1, 4): {Text: "123 1", Holes: []bool{true, true, true, true, true, false, false, false, false}},
	key(model.StepD, 0, 4):  {Text: "123", Holes: []bool{true, true, true, true, false, false, false, false, false}},
	key(model.StepD, 1, 4):  {Text: "12", Holes: []bool{true, true, true, false, false, false, false, false, false}},
	key(model.StepE, -1, 4): {Text: "12", Holes: []bool{true, true, true, false, false, false, false, false, false}},
	key(model.StepE, 0, 4):  {Text: "1", Holes: []bool{true, true, false, false, false, false, false, false, false}},
	key(model.StepF, 0, 4):  {Text: "1 1", Holes: []bool{true, true, false, false, true, false, false, false, false}},
	key(model.StepF, 1, 4):  {Text: "123 12 LowC", Holes: []bool{true, true, true, true, true, true, false, false, false}},
	key(model.StepG, -1, 4): {Text: "123 12 LowC", Holes: []bool{true, true, true, true, true, true, false, false, false}},
	key(model.StepG, 0, 4):  {Text: "T", Holes: []bool{true, false, false, false, false, false, false, false, false}},
	key(model.StepG, 1, 4):  {Text: "23 123", Holes: []bool{true, false, true, true, true, true, true, false, false}},
	key(model.StepA, -1, 4): {Text: "23 123", Holes: []bool{true, false, true, true, true, true, true, false, false}},
	key(model.StepA, 0, 4):  {Text: "2 123", Holes: []bool{true, false, true, false, true, true, true, false, false}},
	key(model.StepA, 1, 4):  {Text: "2 12", Holes: []bool{true, false, true, false, true, true, false, false, false}},
	key(model.StepB, -1, 4): {Text: "2 12", Holes: []bool{true, false, true, false, true, true, false, false, false}},
	key(model.StepB, 0, 4):  {Text: "2", Holes: []bool{true, false, true, false, false, false, false, false, false}},
	key(model.StepC, 0, 5):  {Text: "2 1", Holes: []bool{true, false, true, false, true, false, false, false, false}},
	key(model.StepC, 1, 5):  {Text: "Oct", Holes: []bool{true, false, false, false, false, false, false, false, true}},
	key(model.StepD, -1, 5): {Text: "Oct", Holes: []bool{true, false, false, false, false, false, false, false, true}},
	key(model.StepD, 0, 5):  {Text: "123 123 Oct", Holes: []bool{true, true, true, true, true, true, true, false, true}},
	key(model.StepD, 1, 5):  {Text: "12 1 Oct", Holes: []bool{true, true, true, false, true, false, false, false, true}},
	key(model.StepE, -1, 5): {Text: "12 1 Oct", Holes: []bool{true, true, true, false, true, false, false, false, true}},
	key(model.StepE, 0, 5):  {Text: "12 12 Oct", Holes: []bool{true, true, true, false, true, true, false, false, true}},
	key(model.StepF, 0, 5):  {Text: "1 12 Oct", Holes: []bool{true, true, false, false, true, true, false, false, true}},
	key(model.StepF, 1, 5):  {Text: "1 2 Oct", Holes: []bool{true, true, false, true, false, false, false, false, true}},
	key(model.StepG, -1, 5): {Text: "1 2 Oct", Holes: []bool{true, true, false, true, false, false, false, false, true}},
	key(model.StepG, 0, 5):  {Text: "Oct", Holes: []bool{true, false, false, false, false, false, false, false, true}},
	key(model.StepA, 0, 5):  {Text: "2 123 Oct", Holes: []bool{true, false, true, false, true, true, true, false, true}},
	key(model.StepB, 0, 5):  {Text: "2 Oct", Holes: []bool{true, false, true, false, false, false, false, false, true}},
}

// Bb trumpet, written pitch. Hole markers are the three valves.
var trumpetChart = model.FingeringChart{
	key(model.StepF, 1, 3):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepG, 0, 3):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepG, 1, 3):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepA, -1, 3): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepA, 0, 3):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepA, 1, 3):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepB, -1, 3): {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepB, 0, 3):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepC, 0, 4):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepC, 1, 4):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepD, -1, 4): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepD, 0, 4):  {Text: "13", Holes: []bool{true, false, true}},
	key(model.StepD, 1, 4):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepE, -1, 4): {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepE, 0, 4):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepF, 0, 4):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepF, 1, 4):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepG, -1, 4): {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepG, 0, 4):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepG, 1, 4):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepA, -1, 4): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepA, 0, 4):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepA, 1, 4):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepB, -1, 4): {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepB, 0, 4):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepC, 0, 5):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepC, 1, 5):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepD, -1, 5): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepD, 0, 5):  {Text: "13", Holes: []bool{true, false, true}},
	key(model.StepD, 1, 5):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepE, -1, 5): {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepE, 0, 5):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepF, 0, 5):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepF, 1, 5):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepG, -1, 5): {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepG, 0, 5):  {Text: "0", Holes: []bool{false, false, false}},
}

// F horn, written pitch. Hole markers are the three valves.
var hornChart = model.FingeringChart{
	key(model.StepB, 0, 3):  {Text: "123", Holes: []bool{true, true, true}},
	key(model.StepC, 0, 4):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepC, 1, 4):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepD, -1, 4): {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepD, 0, 4):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepD, 1, 4):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepE, -1, 4): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepE, 0, 4):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepF, 0, 4):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepF, 1, 4):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepG, -1, 4): {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepG, 0, 4):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepG, 1, 4):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepA, -1, 4): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepA, 0, 4):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepA, 1, 4):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepB, -1, 4): {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepB, 0, 4):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepC, 0, 5):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepC, 1, 5):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepD, -1, 5): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepD, 0, 5):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepD, 1, 5):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepE, -1, 5): {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepE, 0, 5):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepF, 0, 5):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepF, 1, 5):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepG, -1, 5): {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepG, 0, 5):  {Text: "12", Holes: []bool{true, true, false}},
	key(model.StepG, 1, 5):  {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepA, -1, 5): {Text: "1", Holes: []bool{true, false, false}},
	key(model.StepA, 0, 5):  {Text: "2", Holes: []bool{false, true, false}},
	key(model.StepA, 1, 5):  {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepB, -1, 5): {Text: "0", Holes: []bool{false, false, false}},
	key(model.StepB, 0, 5):  {Text: "23", Holes: []bool{false, true, true}},
	key(model.StepC, 0, 6):  {Text: "12", Holes: []bool{true, true, false}},
}

var charts = map[string]model.FingeringChart{
	"eb_alto_sax": altoSaxChart,
	"bb_trumpet":  trumpetChart,
	"f_horn":      hornChart,
}

// ChartFor returns the built-in chart for an instrument id. The chart
// is shared read-only; callers must not mutate it.
func ChartFor(instrument string) (model.FingeringChart, error) {
	chart, ok := charts[instrument]
	if !ok {
		return nil, ErrUnsupportedInstrument
	}
	return chart, nil
}

// HoleNames describes the hole markers of a woodwind chart entry, in
// chart order.
var HoleNames = []string{"LH-Thumb", "LH-1", "LH-2", "LH-3", "RH-1", "RH-2", "RH-3", "RH-4", "Octave-Key"}
