package model

// FingeringStyle selects how fingering annotations render on a note.
type FingeringStyle string

const (
	StyleNumbers FingeringStyle = "numbers"
	StyleHoles   FingeringStyle = "holes"
	StyleBoth    FingeringStyle = "both"
)

// FingeringEntry is one chart row: the textual finger tokens plus the
// ordered open/closed hole markers for diagram rendering.
type FingeringEntry struct {
	Text  string
	Holes []bool
}

// ChartKey identifies a chart row by written spelling.
type ChartKey struct {
	Step   Step
	Alter  int
	Octave int
}

// FingeringChart maps written pitches to fingerings for one instrument.
// Loaded once and shared read-only across all annotation calls.
type FingeringChart = map[ChartKey]FingeringEntry

// PipelineConfig is the full configuration one pipeline run consumes.
// Constructed once per invocation and passed by value, never read from
// ambient state.
type PipelineConfig struct {
	PairingEnabled   bool
	Threshold        *Pitch
	FingeringEnabled bool
	Style            FingeringStyle
	Instrument       string
	AccidentalsOnly  bool
}
