package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pmoretti/easyscore/constants"
	"github.com/pmoretti/easyscore/db"
	"github.com/pmoretti/easyscore/engrave"
	"github.com/pmoretti/easyscore/fingering"
	"github.com/pmoretti/easyscore/instrument"
	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/musicxml"
	"github.com/pmoretti/easyscore/pipeline"
	"github.com/pmoretti/easyscore/pitch"
)

// processOptions are the knobs shared by the simplify, batch and serve
// entry points.
type processOptions struct {
	instrumentId    string
	noPairing       bool
	threshold       string
	noFingerings    bool
	style           string
	accidentalsOnly bool
	rehearsal       string
	dbOverrides     bool
	noTitleCredit   bool
}

func defaultProcessOptions() processOptions {
	return processOptions{
		instrumentId: "concert_pitch",
		style:        string(model.StyleNumbers),
	}
}

func parseStyle(s string) (model.FingeringStyle, error) {
	switch model.FingeringStyle(s) {
	case model.StyleNumbers, model.StyleHoles, model.StyleBoth:
		return model.FingeringStyle(s), nil
	}
	return "", fmt.Errorf("unknown fingering style: %v", s)
}

// buildRunner resolves options into a configured pipeline runner.
func buildRunner(opts processOptions) (*pipeline.Runner, instrument.Info, error) {
	info, err := instrument.Get(opts.instrumentId)
	if err != nil {
		return nil, instrument.Info{}, fmt.Errorf("unknown instrument: %v", opts.instrumentId)
	}

	style, err := parseStyle(opts.style)
	if err != nil {
		return nil, instrument.Info{}, err
	}

	threshold := info.Threshold
	if opts.threshold != "" {
		p, err := pitch.Parse(opts.threshold)
		if err != nil {
			return nil, instrument.Info{}, fmt.Errorf("bad threshold pitch: %v", opts.threshold)
		}
		threshold = &p
	}

	var chart model.FingeringChart
	if !opts.noFingerings {
		chart, err = fingering.ChartFor(info.Id)
		if err != nil && !errors.Is(err, fingering.ErrUnsupportedInstrument) {
			return nil, instrument.Info{}, err
		}
		if chart != nil && opts.dbOverrides {
			overrides := db.GetFingeringOverrides([]string{info.Id})
			if extra, ok := overrides[info.Id]; ok {
				merged := make(model.FingeringChart, len(chart)+len(extra))
				for k, v := range chart {
					merged[k] = v
				}
				for k, v := range extra {
					merged[k] = v
				}
				chart = merged
				fmt.Printf("Applied %v fingering overrides for %v\n", len(extra), info.Id)
			}
		}
	}

	cfg := model.PipelineConfig{
		PairingEnabled:   !opts.noPairing,
		Threshold:        threshold,
		FingeringEnabled: !opts.noFingerings,
		Style:            style,
		Instrument:       info.Id,
		AccidentalsOnly:  opts.accidentalsOnly,
	}
	return pipeline.New(cfg, chart), info, nil
}

// processScore runs the full transformation over one parsed score:
// engraving cleanups, the note pipeline, metadata correction.
func processScore(score *musicxml.Score, sourcePath string, opts processOptions) (model.RunSummary, error) {
	runner, info, err := buildRunner(opts)
	if err != nil {
		return model.RunSummary{}, err
	}

	engrave.RemoveMultimeasureRests(score)

	summary := musicxml.Apply(score, runner)

	if opts.rehearsal != "" {
		engrave.FixRehearsalMarks(score, opts.rehearsal)
	}
	engrave.CleanCredits(score)
	engrave.CenterTitle(score)
	if !opts.noTitleCredit && sourcePath != "" {
		engrave.EnsureTitleCredit(score, sourcePath)
	}

	if name := engrave.DetectPartName(score); name != "" {
		engrave.SyncPartNames(score, name)
		engrave.CorrectInstrument(score, info, false)
	} else {
		engrave.CorrectInstrument(score, info, true)
	}

	engrave.AddCourtesyAccidentals(score)
	engrave.MarkSimplified(score)
	engrave.MarkPartSimplified(score)

	return summary, nil
}

func printSummary(s model.RunSummary) {
	fmt.Printf("Run %v\n", s.RunId)
	fmt.Printf("  Measures processed: %v\n", s.MeasuresProcessed)
	fmt.Printf("  Pairs merged: %v\n", s.PairsMerged)
	fmt.Printf("  Notes transposed: %v\n", s.NotesTransposed)
	for t, count := range s.Transpositions {
		fmt.Printf("    %v -> %v: %v\n", pitch.String(t.From), pitch.String(t.To), count)
	}
	fmt.Printf("  Notes fingered: %v (skipped %v)\n", s.NotesFingered, s.FingeringsSkipped)
	if len(s.MalformedMeasures) > 0 {
		fmt.Printf("  Malformed measures passed through: %v\n", s.MalformedMeasures)
	}
	if len(s.FailedMeasures) > 0 {
		fmt.Printf("  Measures reverted after invariant violation: %v\n", s.FailedMeasures)
	}
	for _, w := range s.Warnings {
		fmt.Printf("  Warning: %v\n", w)
	}
}

// outputPathFor derives the default output name: stem_simplified.musicxml
// next to the input.
func outputPathFor(inputPath string) string {
	dir := filepath.Dir(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, stem+constants.SimplifiedSuffix+".musicxml")
}
