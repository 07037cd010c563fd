// Package instrument is the registry of supported source instruments:
// display names, transposition metadata and beginner-range thresholds.
package instrument

import (
	"errors"
	"sort"

	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/util"
)

var ErrUnknown = errors.New("unknown instrument id")

// Info carries the correction metadata for one source instrument. The
// chromatic/diatonic offsets are written-to-concert (negative = down).
// Threshold is the first written pitch outside the beginner range; nil
// means the whole written range is beginner-playable.
type Info struct {
	Id        string
	Name      string
	PartName  string
	Chromatic int
	Diatonic  int
	Sound     string
	Program   uint8
	Threshold *model.Pitch
}

func p(step model.Step, alter, octave int) *model.Pitch {
	return &model.Pitch{Step: step, Alter: alter, Octave: octave}
}

var registry = map[string]Info{
	"bb_trumpet": {
		Id:        "bb_trumpet",
		Name:      "Trumpet",
		PartName:  "Trumpet in Bb",
		Chromatic: -2,
		Diatonic:  -1,
		Sound:     "brass.trumpet.bflat",
		Program:   57,
		Threshold: p(model.StepA, 0, 5),
	},
	"bb_clarinet": {
		Id:        "bb_clarinet",
		Name:      "Clarinet",
		PartName:  "Clarinet in Bb",
		Chromatic: -2,
		Diatonic:  -1,
		Sound:     "wind.reed.clarinet.bflat",
		Program:   72,
		Threshold: p(model.StepB, 0, 4),
	},
	"f_horn": {
		Id:        "f_horn",
		Name:      "Horn",
		PartName:  "Horn in F",
		Chromatic: -7,
		Diatonic:  -4,
		Sound:     "brass.french-horn",
		Program:   61,
		Threshold: p(model.StepG, 0, 5),
	},
	"eb_alto_sax": {
		Id:        "eb_alto_sax",
		Name:      "Alto Saxophone",
		PartName:  "Alto Saxophone in Eb",
		Chromatic: -9,
		Diatonic:  -5,
		Sound:     "reed.saxophone.alto",
		Program:   66,
		Threshold: p(model.StepC, 1, 5),
	},
	"flute": {
		Id:        "flute",
		Name:      "Flute",
		PartName:  "Flute",
		Chromatic: 0,
		Diatonic:  0,
		Sound:     "wind.flutes.flute",
		Program:   74,
		Threshold: p(model.StepE, 0, 6),
	},
	"concert_pitch": {
		Id:        "concert_pitch",
		Name:      "Concert Pitch",
		PartName:  "Concert Pitch",
		Chromatic: 0,
		Diatonic:  0,
		Sound:     "keyboard.piano",
		Program:   1,
	},
}

// Get looks up an instrument by id.
func Get(id string) (Info, error) {
	info, ok := registry[id]
	if !ok {
		return Info{}, ErrUnknown
	}
	return info, nil
}

// Ids lists the known instrument ids, sorted for stable output.
func Ids() []string {
	ids := util.GetKeys(registry)
	sort.Strings(ids)
	return ids
}
