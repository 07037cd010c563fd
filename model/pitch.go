package model

// Step is the written letter name of a pitch, A through G.
type Step string

const (
	StepA Step = "A"
	StepB Step = "B"
	StepC Step = "C"
	StepD Step = "D"
	StepE Step = "E"
	StepF Step = "F"
	StepG Step = "G"
)

// Pitch is a written pitch: letter step, accidental offset in semitones
// (-2..+2) and octave. The alteration is kept as written, never collapsed
// into the step.
type Pitch struct {
	Step   Step
	Alter  int
	Octave int
}
