package engrave

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pmoretti/easyscore/musicxml"
)

var (
	leadingIndexRe  = regexp.MustCompile(`^\d+[\.\-\s]+`)
	trailingPartRe  = regexp.MustCompile(`(?i)[\s\-_]*(part\s*\d+|pt\.?\s*\d+)\s*$`)
	trailingInstrRe = regexp.MustCompile(`(?i)[\s\-_]*(trumpet|trombone|tuba|horn|flute|clarinet|alto\s*sax\w*|tenor\s*sax\w*|sax\w*|violin|viola|cello|bass|piano)\s*\d*\s*$`)
	separatorRe     = regexp.MustCompile(`[_\-]+`)
)

// TitleFromFilename derives a display title from the source filename:
// leading track numbers, trailing part numbers and trailing instrument
// names are stripped, separators become spaces.
func TitleFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = leadingIndexRe.ReplaceAllString(stem, "")
	stem = trailingPartRe.ReplaceAllString(stem, "")
	stem = trailingInstrRe.ReplaceAllString(stem, "")
	stem = separatorRe.ReplaceAllString(stem, " ")
	stem = strings.Join(strings.Fields(stem), " ")
	return strings.ToUpper(stem)
}

func titleWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToUpper(s)) {
		words[w] = true
	}
	return words
}

// titleAlreadyPresent reports whether an existing credit already covers
// the title: at least 70% of the title's words appear in one credit.
func titleAlreadyPresent(score *musicxml.Score, title string) bool {
	want := titleWords(title)
	if len(want) == 0 {
		return true
	}
	for _, credit := range score.Credits {
		for _, words := range credit.Words {
			have := titleWords(words.Text)
			matched := 0
			for w := range want {
				if have[w] {
					matched++
				}
			}
			if matched*10 >= len(want)*7 {
				return true
			}
		}
	}
	return false
}

// EnsureTitleCredit adds a centered page-1 title credit derived from the
// source filename when the document carries no equivalent title yet.
// Returns true when a credit was added.
func EnsureTitleCredit(score *musicxml.Score, sourcePath string) bool {
	title := TitleFromFilename(sourcePath)
	if title == "" || titleAlreadyPresent(score, title) {
		return false
	}

	width, height := 1233.87, 1596.77
	if score.Defaults != nil && score.Defaults.PageLayout != nil {
		if score.Defaults.PageLayout.Width > 0 {
			width = score.Defaults.PageLayout.Width
		}
		if score.Defaults.PageLayout.Height > 0 {
			height = score.Defaults.PageLayout.Height
		}
	}

	credit := musicxml.Credit{
		Page:  "1",
		Types: []string{"title"},
		Words: []musicxml.CreditWords{{
			DefaultX: strconv.FormatFloat(width/2, 'f', -1, 64),
			DefaultY: strconv.FormatFloat(height*0.85, 'f', -1, 64),
			Justify:  "center",
			Valign:   "top",
			FontSize: "22",
			Text:     title,
		}},
	}
	score.Credits = append([]musicxml.Credit{credit}, score.Credits...)
	return true
}
