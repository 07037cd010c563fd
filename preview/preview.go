// Package preview exports a score as a standard MIDI file so the result
// of a transformation can be auditioned without notation software.
package preview

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/pmoretti/easyscore/constants"
	"github.com/pmoretti/easyscore/instrument"
	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/musicxml"
	"github.com/pmoretti/easyscore/pitch"
)

const velocity = 80

type noteSpan struct {
	on  uint64
	off uint64
	key uint8
}

// collectSpans walks the first part and turns every sounding note into
// an absolute-tick span, scaled from division units to the preview
// resolution. Chord notes share their predecessor's onset.
func collectSpans(part *musicxml.Part, chromatic int) []noteSpan {
	var spans []noteSpan
	divisions := 1
	var abs, lastOnset uint64

	for mi := range part.Measures {
		for _, el := range part.Measures[mi].Elements {
			if el.Attributes != nil && el.Attributes.Divisions > 0 {
				divisions = el.Attributes.Divisions
			}
			n := el.Note
			if n == nil || n.Grace != nil || n.Duration <= 0 {
				continue
			}
			ticks := uint64(n.Duration) * constants.PreviewResolution / uint64(divisions)

			onset := abs
			if n.Chord != nil {
				onset = lastOnset
			} else {
				lastOnset = abs
				abs += ticks
			}

			if n.Pitch == nil {
				continue
			}
			p := model.Pitch{Step: model.Step(n.Pitch.Step), Octave: n.Pitch.Octave}
			if n.Pitch.Alter != nil {
				p.Alter = *n.Pitch.Alter
			}
			key := int(pitch.MidiKey(p)) + chromatic
			if key < 0 || key > 127 {
				continue
			}
			spans = append(spans, noteSpan{on: onset, off: onset + ticks, key: uint8(key)})
		}
	}
	return spans
}

type midiEvent struct {
	tick uint64
	off  bool
	key  uint8
}

// Render builds a single-track MIDI file from the score's first part,
// sounding at concert pitch via the instrument's transposition.
func Render(score *musicxml.Score, info instrument.Info) (*smf.SMF, error) {
	if len(score.Parts) == 0 {
		return nil, fmt.Errorf("error rendering preview... score has no parts")
	}

	spans := collectSpans(&score.Parts[0], info.Chromatic)

	var events []midiEvent
	for _, s := range spans {
		events = append(events, midiEvent{tick: s.on, key: s.key})
		events = append(events, midiEvent{tick: s.off, off: true, key: s.key})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		// close notes before opening new ones on the same tick
		return events[i].off && !events[j].off
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.PreviewResolution)

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	if info.Program > 0 {
		track.Add(0, midi.ProgramChange(0, info.Program-1))
	}

	var cursor uint64
	for _, ev := range events {
		delta := uint32(ev.tick - cursor)
		cursor = ev.tick
		if ev.off {
			track.Add(delta, midi.NoteOff(0, ev.key))
		} else {
			track.Add(delta, midi.NoteOn(0, ev.key, velocity))
		}
	}
	track.Close(0)
	s.Add(track)

	return s, nil
}

// WritePreviewFile renders the score and writes the MIDI file to path.
func WritePreviewFile(path string, score *musicxml.Score, info instrument.Info) error {
	s, err := Render(score, info)
	if err != nil {
		return err
	}
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("error writing preview file... %v", err)
	}
	return nil
}
