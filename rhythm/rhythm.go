// Package rhythm reduces eighth-note density so beginners read fewer,
// longer note values. Merging is duration-neutral: the stream total
// never changes.
package rhythm

import (
	"github.com/pmoretti/easyscore/model"
)

func isPlainEighth(ev model.Event) bool {
	return ev.Type == model.TypeEighth && !ev.Dot && ev.Duration > 0
}

func isDottedQuarterNote(ev model.Event) bool {
	return ev.Type == model.TypeQuarter && ev.Dot && !ev.Rest && ev.Duration > 0
}

// mergePair collapses a pair into one event carrying the downbeat's
// identity. The downbeat wins everything: a Note keeps its pitch and
// articulations, a Rest swallows whatever followed it.
func mergePair(a, b model.Event, t model.DurationType) model.Event {
	out := a
	out.Duration = a.Duration + b.Duration
	out.Type = t
	out.Dot = false
	out.Beam = model.BeamNone
	out.Merged = true
	return out
}

// Pair scans one measure-voice stream left to right and merges each
// eligible pair: two contiguous plain eighths become a quarter, and a
// dotted quarter note followed by an eighth becomes a half. Everything
// else passes through unchanged except that beam roles are stripped
// stream-wide, since the surviving notes no longer beam. An unpaired
// trailing eighth is passed through, never dropped.
func Pair(vs model.VoiceStream) (model.VoiceStream, int) {
	out := vs
	out.Events = make([]model.Event, 0, len(vs.Events))
	var merged int

	i := 0
	for i < len(vs.Events) {
		if i+1 < len(vs.Events) {
			a, b := vs.Events[i], vs.Events[i+1]
			switch {
			case isPlainEighth(a) && isPlainEighth(b) && a.Duration == b.Duration:
				out.Events = append(out.Events, mergePair(a, b, model.TypeQuarter))
				merged += 1
				i += 2
				continue
			case isDottedQuarterNote(a) && isPlainEighth(b) && a.Duration == 3*b.Duration:
				out.Events = append(out.Events, mergePair(a, b, model.TypeHalf))
				merged += 1
				i += 2
				continue
			}
		}
		ev := vs.Events[i]
		ev.Beam = model.BeamNone
		out.Events = append(out.Events, ev)
		i += 1
	}

	return out, merged
}
