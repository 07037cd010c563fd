package model

// Transposition records one pitch moved down an octave, for reporting.
type Transposition struct {
	From Pitch
	To   Pitch
}

// RunSummary aggregates per-stage diagnostics for one document run.
type RunSummary struct {
	RunId             string
	MeasuresProcessed int
	PairsMerged       int
	NotesTransposed   int
	Transpositions    map[Transposition]int
	NotesFingered     int
	FingeringsSkipped int
	MalformedMeasures []int
	FailedMeasures    []int
	Warnings          []string
}

// Partial reports whether any measure-voice was left in its pre-stage
// form instead of fully transforming.
func (s RunSummary) Partial() bool {
	return len(s.FailedMeasures) > 0
}
