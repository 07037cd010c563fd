// Package transpose moves pitches out of the advanced register so the
// part stays inside an instrument's beginner range.
package transpose

import (
	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/pitch"
)

// Lower drops every note at or above threshold by exactly one octave.
// The comparison uses resolved chromatic pitch, so enharmonic spellings
// at the threshold behave identically. Rests and notes below threshold
// pass through untouched. Each move is tallied into counts keyed by
// original and resulting pitch.
func Lower(vs model.VoiceStream, threshold model.Pitch, counts map[model.Transposition]int) (model.VoiceStream, int) {
	out := vs
	out.Events = make([]model.Event, len(vs.Events))
	copy(out.Events, vs.Events)

	var moved int
	for i, ev := range out.Events {
		if ev.Rest {
			continue
		}
		if pitch.Compare(ev.Pitch, threshold) < 0 {
			continue
		}
		lowered := pitch.OctaveDown(ev.Pitch)
		if counts != nil {
			counts[model.Transposition{From: ev.Pitch, To: lowered}] += 1
		}
		out.Events[i].Pitch = lowered
		moved += 1
	}
	return out, moved
}
