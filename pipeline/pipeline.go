// Package pipeline sequences the transformation stages over
// measure-voice streams and aggregates per-stage diagnostics. It is the
// only place aware of stage ordering and configuration; it performs no
// file I/O.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pmoretti/easyscore/fingering"
	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/rhythm"
	"github.com/pmoretti/easyscore/transpose"
)

// Runner drives one document run. Stages run in a fixed order (pairing,
// transposition, annotation); disabled stages are skipped. The chart
// may be nil when the instrument has no fingering table; the stage is
// then skipped for the whole document with a warning rather than
// failing the run.
type Runner struct {
	cfg     model.PipelineConfig
	chart   model.FingeringChart
	warned  bool
	summary model.RunSummary
}

func New(cfg model.PipelineConfig, chart model.FingeringChart) *Runner {
	return &Runner{
		cfg:   cfg,
		chart: chart,
		summary: model.RunSummary{
			RunId:          uuid.New().String(),
			Transpositions: make(map[model.Transposition]int),
		},
	}
}

// Transform runs the enabled stages over one measure-voice stream and
// returns the resulting stream. The input is never mutated. A stream
// whose duration total contradicts its declared measure total is flagged
// malformed and passed through unmodified. A stage that breaks the
// duration invariant leaves the stream in its pre-stage form and flags
// the measure; the run continues.
func (r *Runner) Transform(vs model.VoiceStream) model.VoiceStream {
	r.summary.MeasuresProcessed += 1

	if vs.Total > 0 && vs.DurationSum() != vs.Total {
		r.summary.MalformedMeasures = append(r.summary.MalformedMeasures, vs.Measure)
		return vs
	}

	cur := vs

	// advance applies one stage transition, enforcing the duration
	// invariant at the boundary. On violation the measure-voice stays in
	// its pre-stage form and no later stage runs.
	advance := func(next model.VoiceStream) bool {
		if next.DurationSum() != cur.DurationSum() {
			r.summary.FailedMeasures = append(r.summary.FailedMeasures, vs.Measure)
			return false
		}
		cur = next
		return true
	}

	if r.cfg.PairingEnabled {
		next, merged := rhythm.Pair(cur)
		if !advance(next) {
			return cur
		}
		r.summary.PairsMerged += merged
	}

	if r.cfg.Threshold != nil {
		next, moved := transpose.Lower(cur, *r.cfg.Threshold, r.summary.Transpositions)
		if !advance(next) {
			return cur
		}
		r.summary.NotesTransposed += moved
	}

	// Annotation keys on final pitches, so it must follow transposition.
	if r.cfg.FingeringEnabled {
		if r.chart == nil {
			if !r.warned {
				r.warned = true
				r.summary.Warnings = append(r.summary.Warnings,
					fmt.Sprintf("no fingering chart for %v, skipping fingerings", r.cfg.Instrument))
			}
		} else {
			next, fingered, skipped := fingering.Annotate(cur, r.chart, r.cfg.Style, r.cfg.AccidentalsOnly)
			if !advance(next) {
				return cur
			}
			r.summary.NotesFingered += fingered
			r.summary.FingeringsSkipped += skipped
		}
	}

	return cur
}

// Summary returns the diagnostics aggregated so far.
func (r *Runner) Summary() model.RunSummary {
	return r.summary
}
