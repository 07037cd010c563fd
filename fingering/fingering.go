// Package fingering attaches instrument fingering guidance to notes,
// looked up from per-instrument charts.
package fingering

import (
	"strings"

	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/pitch"
)

// resolve finds a chart entry for a written pitch: exact spelling
// first, then the canonical enharmonic spelling at the same sounding
// pitch. Gb4 falls back to the F#4 row.
func resolve(chart model.FingeringChart, p model.Pitch) (model.FingeringEntry, bool) {
	if entry, ok := chart[model.ChartKey{Step: p.Step, Alter: p.Alter, Octave: p.Octave}]; ok {
		return entry, true
	}
	c := pitch.Canonical(p)
	if c != p {
		if entry, ok := chart[model.ChartKey{Step: c.Step, Alter: c.Alter, Octave: c.Octave}]; ok {
			return entry, true
		}
	}
	return model.FingeringEntry{}, false
}

// DisplayTokens splits a chart's fingering text into the individual
// tokens a notation program stacks vertically, top to bottom. "Oct"
// renders as 8va, "LowC" as C, digit runs split per digit, and the
// whole sequence is reversed so the lowest finger prints last.
func DisplayTokens(text string) []string {
	if text == "" || text == "Th" || text == "T" {
		return []string{"T"}
	}

	var tokens []string
	for _, part := range strings.Fields(text) {
		switch part {
		case "Oct":
			tokens = append(tokens, "8va")
		case "LowC":
			tokens = append(tokens, "C")
		default:
			for _, ch := range part {
				if ch >= '0' && ch <= '9' || ch == 'C' {
					tokens = append(tokens, string(ch))
				}
			}
		}
	}

	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return tokens
}

// Annotate attaches a fingering payload to every note that has a chart
// entry and is not already fingered. Re-running on an annotated stream
// changes nothing: detection is the Fingered flag, not payload content.
// When accidentalsOnly is set, only notes carrying a visible accidental
// are candidates. Notes without a resolvable entry are counted as
// skipped, never treated as failures.
func Annotate(vs model.VoiceStream, chart model.FingeringChart, style model.FingeringStyle, accidentalsOnly bool) (model.VoiceStream, int, int) {
	out := vs.Clone()

	var fingered, skipped int
	for i, ev := range out.Events {
		if ev.Rest || ev.Fingered {
			continue
		}
		if accidentalsOnly && ev.Accidental == nil {
			continue
		}
		entry, ok := resolve(chart, ev.Pitch)
		if !ok {
			skipped += 1
			continue
		}
		if style == model.StyleNumbers || style == model.StyleBoth {
			out.Events[i].Fingering = DisplayTokens(entry.Text)
		}
		if style == model.StyleHoles || style == model.StyleBoth {
			out.Events[i].Holes = append([]bool(nil), entry.Holes...)
		}
		out.Events[i].Fingered = true
		fingered += 1
	}
	return out, fingered, skipped
}
