// Package engrave holds the notation cleanups around the core engine:
// rehearsal marks, credits, part names, instrument metadata and
// courtesy accidentals. Everything works on the structured document,
// never on raw text.
package engrave

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmoretti/easyscore/instrument"
	"github.com/pmoretti/easyscore/musicxml"
)

// RehearsalModeNumbers relabels marks with their measure number;
// RehearsalModeLetters assigns sequential letters A, B, C...
const (
	RehearsalModeNumbers = "measure_numbers"
	RehearsalModeLetters = "letters"
)

// letterLabel names the nth rehearsal mark: A..Z, then AA, AB...
func letterLabel(n int) string {
	label := ""
	for n >= 0 {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
	}
	return label
}

// FixRehearsalMarks relabels every rehearsal mark per mode and returns
// how many were changed.
func FixRehearsalMarks(score *musicxml.Score, mode string) int {
	var fixed int
	letter := 0
	for pi := range score.Parts {
		for mi := range score.Parts[pi].Measures {
			msr := &score.Parts[pi].Measures[mi]
			for ei := range msr.Elements {
				dir := msr.Elements[ei].Direction
				if dir == nil {
					continue
				}
				for ti := range dir.Types {
					for ri := range dir.Types[ti].Rehearsals {
						mark := &dir.Types[ti].Rehearsals[ri]
						var want string
						switch mode {
						case RehearsalModeNumbers:
							want = msr.Number
						case RehearsalModeLetters:
							want = letterLabel(letter)
							letter++
						default:
							continue
						}
						if mark.Value != want {
							fmt.Printf("  Fixed rehearsal mark: '%v' -> '%v'\n", mark.Value, want)
							mark.Value = want
							fixed++
						}
					}
				}
			}
		}
	}
	return fixed
}

// CenterTitle recenters the main title credit horizontally and pins it
// at 85% of the page height, below typical header elements. Part-name
// credits (font-size 14) are left alone.
func CenterTitle(score *musicxml.Score) {
	width, height := 1233.87, 1596.77
	if score.Defaults != nil && score.Defaults.PageLayout != nil {
		if score.Defaults.PageLayout.Width > 0 {
			width = score.Defaults.PageLayout.Width
		}
		if score.Defaults.PageLayout.Height > 0 {
			height = score.Defaults.PageLayout.Height
		}
	}
	centerX := strconv.FormatFloat(width/2, 'f', -1, 64)
	titleY := strconv.FormatFloat(height*0.85, 'f', -1, 64)

	for ci := range score.Credits {
		for wi := range score.Credits[ci].Words {
			words := &score.Credits[ci].Words[wi]
			if words.FontSize == "14" {
				continue
			}
			if words.DefaultX != "" {
				words.DefaultX = centerX
			}
			if words.DefaultY != "" {
				words.DefaultY = titleY
			}
			if words.Justify == "left" {
				words.Justify = "center"
			}
		}
	}
}

// notation software truncates credit text on these characters
var creditReplacements = []struct{ from, to string }{
	{"&", "and"},
	{"©", "(c)"},
	{"®", "(r)"},
	{"™", "(tm)"},
	{"°", "deg"},
	{"†", "+"},
	{"‡", "++"},
	{"§", "section"},
	{"¶", "para"},
	{"“", `"`},
	{"”", `"`},
	{"‘", "'"},
	{"’", "'"},
	{"–", "-"},
	{"—", "--"},
	{"…", "..."},
	{"♭", "b"},
	{"♯", "#"},
	{"♮", "natural"},
	{"½", "1/2"},
	{"¼", "1/4"},
	{"¾", "3/4"},
	{"⅓", "1/3"},
	{"⅔", "2/3"},
}

func sanitizeCreditText(text string) string {
	out := strings.Join(strings.Fields(text), " ")
	for _, r := range creditReplacements {
		out = strings.ReplaceAll(out, r.from, r.to)
	}
	return out
}

// CleanCredits normalizes credit text: whitespace joined, problematic
// characters replaced, multiple credit-words consolidated into one, and
// duplicate credit blocks dropped. Returns the number of credits kept.
func CleanCredits(score *musicxml.Score) int {
	seen := make(map[string]bool)
	kept := score.Credits[:0]

	for _, credit := range score.Credits {
		var texts []string
		for _, words := range credit.Words {
			if t := sanitizeCreditText(words.Text); t != "" {
				texts = append(texts, t)
			}
		}
		if len(texts) == 0 {
			kept = append(kept, credit)
			continue
		}

		joined := strings.Join(texts, " - ")
		if seen[joined] {
			fmt.Printf("  Removing duplicate credit: '%v'\n", joined)
			continue
		}
		seen[joined] = true

		if len(credit.Words) > 1 {
			fmt.Printf("  Consolidated %v credit-words into single element\n", len(credit.Words))
		}
		first := credit.Words[0]
		first.Text = joined
		credit.Words = []musicxml.CreditWords{first}
		kept = append(kept, credit)
	}

	score.Credits = kept
	return len(kept)
}

var partNameKeywords = []string{
	"part", "trumpet", "trombone", "tuba", "horn", "flute", "clarinet",
	"sax", "violin", "viola", "cello", "bass", "piano", "guitar", "drum",
}

func looksLikePartName(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range partNameKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// DetectPartName finds the most authoritative part name: score-part
// definition first, then metadata, then credit text. Empty when none.
func DetectPartName(score *musicxml.Score) string {
	for _, sp := range score.PartList.ScoreParts {
		if name := strings.TrimSpace(sp.PartName.Value); name != "" {
			return name
		}
	}
	if score.Identification != nil && score.Identification.Miscellaneous != nil {
		for _, f := range score.Identification.Miscellaneous.Fields {
			if f.Name == "partName" {
				if name := strings.TrimSpace(f.Value); name != "" {
					return name
				}
			}
		}
	}
	for _, credit := range score.Credits {
		for _, words := range credit.Words {
			text := strings.TrimSpace(words.Text)
			if text != "" && len(text) < 50 && looksLikePartName(text) {
				return text
			}
		}
	}
	return ""
}

// SyncPartNames rewrites every part-name reference (part definition,
// metadata field, credit display) to name, dropping duplicate part-name
// credits. Returns the number of locations updated.
func SyncPartNames(score *musicxml.Score, name string) int {
	var updated int

	if score.Identification != nil && score.Identification.Miscellaneous != nil {
		for fi := range score.Identification.Miscellaneous.Fields {
			field := &score.Identification.Miscellaneous.Fields[fi]
			if field.Name == "partName" && field.Value != name {
				field.Value = name
				updated++
			}
		}
	}

	seenPartCredit := false
	kept := score.Credits[:0]
	for _, credit := range score.Credits {
		isPartCredit := false
		for wi := range credit.Words {
			if looksLikePartName(credit.Words[wi].Text) {
				isPartCredit = true
				if credit.Words[wi].Text != name {
					credit.Words[wi].Text = name
					updated++
				}
			}
		}
		if isPartCredit {
			if seenPartCredit {
				continue
			}
			seenPartCredit = true
		}
		kept = append(kept, credit)
	}
	score.Credits = kept

	for si := range score.PartList.ScoreParts {
		sp := &score.PartList.ScoreParts[si]
		if sp.PartName.Value != name {
			sp.PartName.Value = name
			updated++
		}
		if sp.PartName.PrintObject == "no" {
			sp.PartName.PrintObject = "yes"
		}
	}

	return updated
}

// CorrectInstrument fixes the document's instrument metadata (transpose
// element, instrument name/sound, MIDI program) to match the actual
// source instrument. The written key signature is kept as the musician
// reads it; the transpose element carries the concert conversion.
func CorrectInstrument(score *musicxml.Score, info instrument.Info, updatePartNames bool) {
	for si := range score.PartList.ScoreParts {
		sp := &score.PartList.ScoreParts[si]
		if sp.ScoreInstrument != nil {
			sp.ScoreInstrument.Name = info.Name
			if sp.ScoreInstrument.Sound != "" {
				sp.ScoreInstrument.Sound = info.Sound
			}
		}
		if sp.MidiInstrument != nil && sp.MidiInstrument.Program != "" {
			sp.MidiInstrument.Program = strconv.Itoa(int(info.Program))
		}
	}

	for pi := range score.Parts {
		part := &score.Parts[pi]
		if len(part.Measures) == 0 {
			continue
		}
		for ei := range part.Measures[0].Elements {
			attrs := part.Measures[0].Elements[ei].Attributes
			if attrs == nil {
				continue
			}
			if info.Chromatic != 0 {
				attrs.Transpose = &musicxml.Transpose{
					Diatonic:  info.Diatonic,
					Chromatic: info.Chromatic,
				}
			} else {
				attrs.Transpose = nil
			}
			break
		}
	}

	if updatePartNames {
		SyncPartNames(score, info.PartName)
	}
}

// RemoveMultimeasureRests expands multi-measure rests into ordinary
// single-measure rests that are easier to count. Returns the number of
// directives removed.
func RemoveMultimeasureRests(score *musicxml.Score) int {
	var removed int
	for pi := range score.Parts {
		for mi := range score.Parts[pi].Measures {
			msr := &score.Parts[pi].Measures[mi]
			for ei := range msr.Elements {
				if attrs := msr.Elements[ei].Attributes; attrs != nil && attrs.MeasureStyle != nil {
					if attrs.MeasureStyle.MultipleRest != nil {
						fmt.Printf("  Removing %v-measure rest directive\n", *attrs.MeasureStyle.MultipleRest)
						attrs.MeasureStyle.MultipleRest = nil
						removed++
					}
				}
				if n := msr.Elements[ei].Note; n != nil && n.Rest != nil && n.Rest.Measure == "yes" {
					n.Rest.Measure = ""
				}
			}
		}
	}
	return removed
}

// MarkSimplified records the processing in the encoding software credit.
func MarkSimplified(score *musicxml.Score) {
	const suffix = " - Simplified by easyscore"
	if score.Identification == nil {
		score.Identification = &musicxml.Identification{}
	}
	if score.Identification.Encoding == nil {
		score.Identification.Encoding = &musicxml.Encoding{}
	}
	enc := score.Identification.Encoding
	if len(enc.Software) == 0 {
		enc.Software = []string{"easyscore"}
		return
	}
	if !strings.HasSuffix(enc.Software[0], suffix) {
		enc.Software[0] += suffix
	}
}

// MarkPartSimplified appends the simplified marker to the part-name
// metadata field so derived files are distinguishable.
func MarkPartSimplified(score *musicxml.Score) {
	if score.Identification == nil || score.Identification.Miscellaneous == nil {
		return
	}
	for fi := range score.Identification.Miscellaneous.Fields {
		field := &score.Identification.Miscellaneous.Fields[fi]
		if field.Name == "partName" && !strings.HasSuffix(field.Value, " - Simplified") {
			field.Value += " - Simplified"
		}
	}
}
