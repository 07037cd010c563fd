package musicxml

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/pipeline"
)

// meter is the division unit and time signature in effect, carried
// forward across measures until attributes change it.
type meter struct {
	divisions int
	beats     int
	beatType  int
}

func (m meter) update(msr *Measure) meter {
	for _, el := range msr.Elements {
		if el.Attributes == nil {
			continue
		}
		if el.Attributes.Divisions > 0 {
			m.divisions = el.Attributes.Divisions
		}
		if el.Attributes.Time != nil {
			m.beats = el.Attributes.Time.Beats
			m.beatType = el.Attributes.Time.BeatType
		}
	}
	return m
}

// total is the measure's expected duration in division units, or 0 when
// the meter is not fully known.
func (m meter) total() int {
	if m.divisions == 0 || m.beats == 0 || m.beatType == 0 {
		return 0
	}
	return m.divisions * m.beats * 4 / m.beatType
}

// noteRun is a contiguous run of note elements belonging to one voice:
// the unit the engine transforms and the writer splices back.
type noteRun struct {
	start    int
	end      int
	voice    string
	eligible bool
}

func noteVoice(n *Note) string {
	if n.Voice == "" {
		return "1"
	}
	return n.Voice
}

// transformable reports whether a note can live in an event stream.
// Grace, chord and unpitched notes carry notation the pairing rules
// cannot reason about, so runs containing them pass through whole.
func transformable(n *Note) bool {
	if n.Grace != nil || n.Chord != nil || n.Unpitched != nil {
		return false
	}
	if n.Duration <= 0 {
		return false
	}
	return n.Pitch != nil || n.Rest != nil
}

func findRuns(msr *Measure) []noteRun {
	var runs []noteRun
	for i := 0; i < len(msr.Elements); i++ {
		n := msr.Elements[i].Note
		if n == nil {
			continue
		}
		run := noteRun{start: i, voice: noteVoice(n), eligible: true}
		j := i
		for j < len(msr.Elements) && msr.Elements[j].Note != nil && noteVoice(msr.Elements[j].Note) == run.voice {
			if !transformable(msr.Elements[j].Note) {
				run.eligible = false
			}
			j++
		}
		run.end = j
		runs = append(runs, run)
		i = j - 1
	}
	return runs
}

func hasBackup(msr *Measure) bool {
	for _, el := range msr.Elements {
		if el.Raw != nil && (el.Raw.XMLName.Local == "backup" || el.Raw.XMLName.Local == "forward") {
			return true
		}
	}
	return false
}

// articulationTags lists the articulation element names attached to a
// note, in document order.
func articulationTags(n *Note) []string {
	if n.Notations == nil || n.Notations.Articulations == nil {
		return nil
	}
	var tags []string
	decoder := xml.NewDecoder(strings.NewReader(n.Notations.Articulations.Inner))
	depth := 0
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				tags = append(tags, t.Name.Local)
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return tags
}

func beamRole(n *Note) model.BeamRole {
	if len(n.Beams) == 0 {
		return model.BeamNone
	}
	switch n.Beams[0].Value {
	case "begin":
		return model.BeamBegin
	case "continue":
		return model.BeamContinue
	case "end":
		return model.BeamEnd
	}
	return model.BeamNone
}

func hasFingering(n *Note) bool {
	if n.Notations == nil || n.Notations.Technical == nil {
		return false
	}
	return len(n.Notations.Technical.Fingerings) > 0 || len(n.Notations.Technical.Holes) > 0
}

func noteToEvent(idx int, n *Note) model.Event {
	ev := model.Event{
		Rest:     n.Rest != nil,
		Duration: n.Duration,
		Type:     model.DurationType(n.Type),
		Dot:      len(n.Dots) > 0,
		Voice:    noteVoice(n),
		Beam:     beamRole(n),
		Fingered: hasFingering(n),
		Ref:      idx,
	}
	if n.Pitch != nil {
		ev.Pitch = model.Pitch{Step: model.Step(n.Pitch.Step), Octave: n.Pitch.Octave}
		if n.Pitch.Alter != nil {
			ev.Pitch.Alter = *n.Pitch.Alter
		}
	}
	if n.Accidental != nil {
		ev.Accidental = &model.Accidental{
			Kind:       n.Accidental.Value,
			Cautionary: n.Accidental.Cautionary == "yes",
		}
	}
	ev.Articulations = articulationTags(n)
	return ev
}

// runStream builds the engine-facing event stream for one note run.
func runStream(number int, msr *Measure, run noteRun, mt meter, wholeMeasure bool) model.VoiceStream {
	vs := model.VoiceStream{
		Measure:   number,
		Voice:     run.voice,
		Divisions: mt.divisions,
	}
	if wholeMeasure {
		vs.Total = mt.total()
	}
	for i := run.start; i < run.end; i++ {
		vs.Events = append(vs.Events, noteToEvent(i, msr.Elements[i].Note))
	}
	return vs
}

func cloneNotations(src *Notations) *Notations {
	if src == nil {
		return nil
	}
	c := *src
	c.Slurs = append([]Slur(nil), src.Slurs...)
	c.Tieds = append([]Raw(nil), src.Tieds...)
	c.Other = append([]Raw(nil), src.Other...)
	if src.Technical != nil {
		t := *src.Technical
		t.Fingerings = append([]Fingering(nil), src.Technical.Fingerings...)
		t.Holes = append([]Hole(nil), src.Technical.Holes...)
		t.Other = append([]Raw(nil), src.Technical.Other...)
		c.Technical = &t
	}
	return &c
}

// eventToNote rebuilds a note element from a transformed event, reusing
// the event's source element so attributes the engine never touches
// survive unchanged.
func eventToNote(ev model.Event, src *Note) *Note {
	n := *src

	if !ev.Rest {
		p := Pitch{Step: string(ev.Pitch.Step), Octave: ev.Pitch.Octave}
		if ev.Pitch.Alter != 0 {
			alter := ev.Pitch.Alter
			p.Alter = &alter
		} else if src.Pitch != nil && src.Pitch.Alter != nil && *src.Pitch.Alter == 0 {
			zero := 0
			p.Alter = &zero
		}
		n.Pitch = &p
	}

	n.Duration = ev.Duration
	n.Type = string(ev.Type)
	if ev.Dot {
		if len(n.Dots) == 0 {
			n.Dots = []Empty{{}}
		}
	} else {
		n.Dots = nil
	}
	if ev.Beam == model.BeamNone {
		n.Beams = nil
	}

	nots := cloneNotations(src.Notations)
	if ev.Merged && nots != nil {
		// the partner the slur connected to no longer exists
		nots.Slurs = nil
	}

	if ev.Accidental != nil && src.Accidental == nil {
		acc := Accidental{Value: ev.Accidental.Kind}
		if ev.Accidental.Cautionary {
			acc.Cautionary = "yes"
		}
		n.Accidental = &acc
	}

	if len(ev.Fingering) > 0 || len(ev.Holes) > 0 {
		if nots == nil {
			nots = &Notations{}
		}
		if nots.Technical == nil {
			nots.Technical = &Technical{}
		}
		for _, token := range ev.Fingering {
			nots.Technical.Fingerings = append(nots.Technical.Fingerings,
				Fingering{Placement: "above", Value: token})
		}
		for _, closed := range ev.Holes {
			hole := Hole{Closed: "no", Shape: "circle"}
			if closed {
				hole.Closed = "yes"
			}
			nots.Technical.Holes = append(nots.Technical.Holes, hole)
		}
	}
	n.Notations = nots

	return &n
}

// applyEvents splices the transformed events back over the run's
// original element range.
func applyEvents(msr *Measure, run noteRun, events []model.Event) {
	rebuilt := make([]MeasureElement, 0, len(events))
	for _, ev := range events {
		src := msr.Elements[ev.Ref].Note
		rebuilt = append(rebuilt, MeasureElement{Note: eventToNote(ev, src)})
	}

	out := make([]MeasureElement, 0, len(msr.Elements)-(run.end-run.start)+len(rebuilt))
	out = append(out, msr.Elements[:run.start]...)
	out = append(out, rebuilt...)
	out = append(out, msr.Elements[run.end:]...)
	msr.Elements = out
}

func measureNumber(msr *Measure, idx int) int {
	if n, err := strconv.Atoi(msr.Number); err == nil {
		return n
	}
	return idx + 1
}

// Apply drives the pipeline over every measure-voice stream of every
// part, splicing each transformed stream back into the document, and
// returns the run's aggregated diagnostics. Measures are independent
// value copies: one failure never corrupts another.
func Apply(score *Score, r *pipeline.Runner) model.RunSummary {
	for pi := range score.Parts {
		part := &score.Parts[pi]
		var mt meter
		for mi := range part.Measures {
			msr := &part.Measures[mi]
			mt = mt.update(msr)
			number := measureNumber(msr, mi)
			runs := findRuns(msr)
			wholeMeasure := len(runs) == 1 && !hasBackup(msr)
			// splice back to front so run indexes stay valid
			for ri := len(runs) - 1; ri >= 0; ri-- {
				run := runs[ri]
				if !run.eligible {
					continue
				}
				vs := runStream(number, msr, run, mt, wholeMeasure)
				out := r.Transform(vs)
				applyEvents(msr, run, out.Events)
			}
		}
	}
	return r.Summary()
}
