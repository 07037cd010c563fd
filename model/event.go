package model

// DurationType is the written note value name from MusicXML's <type>.
type DurationType string

const (
	TypeWhole   DurationType = "whole"
	TypeHalf    DurationType = "half"
	TypeQuarter DurationType = "quarter"
	TypeEighth  DurationType = "eighth"
	Type16th    DurationType = "16th"
	Type32nd    DurationType = "32nd"
)

// BeamRole is an event's position in an eighth-note beam group.
type BeamRole int

const (
	BeamNone BeamRole = iota
	BeamBegin
	BeamContinue
	BeamEnd
)

// Accidental is a written or cautionary accidental attached to a note.
type Accidental struct {
	Kind       string // sharp, flat, natural...
	Cautionary bool
}

// Event is one pitched note or rest within a measure-voice stream.
// Duration is expressed in the measure's division units. Ref is the
// reader-assigned handle back to the source document element; a merged
// event keeps the downbeat's Ref.
type Event struct {
	Rest          bool
	Pitch         Pitch
	Duration      int
	Type          DurationType
	Dot           bool
	Voice         string
	Articulations []string
	Beam          BeamRole
	Accidental    *Accidental
	Fingered      bool
	Fingering     []string
	Holes         []bool
	Merged        bool
	Ref           int
}

// VoiceStream is the ordered event sequence of one voice within one
// measure, together with the division unit (divisions per quarter) and
// the duration total the time signature declares for the measure.
type VoiceStream struct {
	Measure   int
	Voice     string
	Divisions int
	Total     int
	Events    []Event
}

// Clone returns a deep copy so stages never mutate their input from the
// caller's perspective.
func (vs VoiceStream) Clone() VoiceStream {
	out := vs
	out.Events = make([]Event, len(vs.Events))
	copy(out.Events, vs.Events)
	for i, ev := range vs.Events {
		if ev.Articulations != nil {
			out.Events[i].Articulations = append([]string(nil), ev.Articulations...)
		}
		if ev.Fingering != nil {
			out.Events[i].Fingering = append([]string(nil), ev.Fingering...)
		}
		if ev.Holes != nil {
			out.Events[i].Holes = append([]bool(nil), ev.Holes...)
		}
		if ev.Accidental != nil {
			acc := *ev.Accidental
			out.Events[i].Accidental = &acc
		}
	}
	return out
}

// DurationSum is the total event duration of the stream in division units.
func (vs VoiceStream) DurationSum() int {
	var total int
	for _, ev := range vs.Events {
		total += ev.Duration
	}
	return total
}
