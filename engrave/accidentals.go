package engrave

import (
	"fmt"

	"github.com/pmoretti/easyscore/musicxml"
)

func accidentalKind(alter int) string {
	switch alter {
	case 1:
		return "sharp"
	case -1:
		return "flat"
	default:
		return "natural"
	}
}

// stepHistory tracks, per note letter, where accidentals were seen so
// later measures can be flagged for a courtesy reminder.
type stepHistory struct {
	firstAltered int          // measure index of the first sharp/flat, -1 until seen
	lastWritten  int          // measure index of the last written accidental, -1 until seen
	needs        map[int]bool // measure indexes that want a courtesy mark
}

// AddCourtesyAccidentals inserts cautionary accidentals where a player
// is likely to forget the prevailing alteration: the first occurrence
// of each altered step after its introduction, and the first occurrence
// after any written accidental. Returns the number of marks added.
func AddCourtesyAccidentals(score *musicxml.Score) int {
	var added int
	for pi := range score.Parts {
		part := &score.Parts[pi]
		history := make(map[string]*stepHistory)
		track := func(step string) *stepHistory {
			h, ok := history[step]
			if !ok {
				h = &stepHistory{firstAltered: -1, lastWritten: -1, needs: make(map[int]bool)}
				history[step] = h
			}
			return h
		}

		// first pass: find where each step gains an alteration and where
		// written accidentals already remind the player
		for mi := range part.Measures {
			for _, el := range part.Measures[mi].Elements {
				n := el.Note
				if n == nil || n.Pitch == nil {
					continue
				}
				h := track(n.Pitch.Step)
				alter := 0
				if n.Pitch.Alter != nil {
					alter = *n.Pitch.Alter
				}
				if alter != 0 && h.firstAltered < 0 {
					h.firstAltered = mi
				}
				if n.Accidental != nil && n.Accidental.Cautionary != "yes" {
					h.lastWritten = mi
				}
			}
		}

		// second pass: the measure right after an introduction or a
		// written accidental wants a reminder
		for mi := range part.Measures {
			for _, el := range part.Measures[mi].Elements {
				n := el.Note
				if n == nil || n.Pitch == nil || n.Pitch.Alter == nil || *n.Pitch.Alter == 0 {
					continue
				}
				h := track(n.Pitch.Step)
				if h.firstAltered >= 0 && mi > h.firstAltered {
					h.needs[mi] = true
				}
				if h.lastWritten >= 0 && mi > h.lastWritten {
					h.needs[mi] = true
				}
			}
		}

		// third pass: mark the first qualifying note per measure per
		// step, skipping notes that already carry an accidental
		for mi := range part.Measures {
			marked := make(map[string]bool)
			for _, el := range part.Measures[mi].Elements {
				n := el.Note
				if n == nil || n.Pitch == nil || n.Accidental != nil {
					continue
				}
				if n.Pitch.Alter == nil || *n.Pitch.Alter == 0 {
					continue
				}
				h := history[n.Pitch.Step]
				if h == nil || !h.needs[mi] || marked[n.Pitch.Step] {
					continue
				}
				n.Accidental = &musicxml.Accidental{
					Cautionary: "yes",
					Value:      accidentalKind(*n.Pitch.Alter),
				}
				marked[n.Pitch.Step] = true
				added++
			}
		}
	}
	if added > 0 {
		fmt.Printf("  Added %v courtesy accidentals\n", added)
	}
	return added
}
