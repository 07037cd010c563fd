// Package musicxml parses score-partwise documents into a structured
// model, exposes per measure per voice event streams to the engine, and
// re-serializes the transformed result. Elements the engine never
// touches are captured verbatim and written back unchanged.
package musicxml

import (
	"encoding/xml"
)

// Raw is a verbatim-captured element: name, attributes and inner XML
// round-trip untouched.
type Raw struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

// Empty marks presence-only elements like <chord/> and <dot/>.
type Empty struct{}

type Score struct {
	XMLName        xml.Name        `xml:"score-partwise"`
	Version        string          `xml:"version,attr,omitempty"`
	Work           *Raw            `xml:"work"`
	MovementNumber *Raw            `xml:"movement-number"`
	MovementTitle  *Raw            `xml:"movement-title"`
	Identification *Identification `xml:"identification"`
	Defaults       *Defaults       `xml:"defaults"`
	Credits        []Credit        `xml:"credit"`
	PartList       PartList        `xml:"part-list"`
	Parts          []Part          `xml:"part"`
}

type Identification struct {
	Creators      []Raw          `xml:"creator"`
	Rights        []Raw          `xml:"rights"`
	Encoding      *Encoding      `xml:"encoding"`
	Source        *Raw           `xml:"source"`
	Relations     []Raw          `xml:"relation"`
	Miscellaneous *Miscellaneous `xml:"miscellaneous"`
}

type Encoding struct {
	Software     []string `xml:"software"`
	EncodingDate string   `xml:"encoding-date,omitempty"`
	Other        []Raw    `xml:",any"`
}

type Miscellaneous struct {
	Fields []MiscField `xml:"miscellaneous-field"`
}

type MiscField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type Defaults struct {
	Scaling    *Raw        `xml:"scaling"`
	PageLayout *PageLayout `xml:"page-layout"`
	Other      []Raw       `xml:",any"`
}

type PageLayout struct {
	Height  float64 `xml:"page-height,omitempty"`
	Width   float64 `xml:"page-width,omitempty"`
	Margins []Raw   `xml:"page-margins"`
}

type Credit struct {
	Page  string        `xml:"page,attr,omitempty"`
	Types []string      `xml:"credit-type"`
	Words []CreditWords `xml:"credit-words"`
	Other []Raw         `xml:",any"`
}

type CreditWords struct {
	DefaultX   string `xml:"default-x,attr,omitempty"`
	DefaultY   string `xml:"default-y,attr,omitempty"`
	Justify    string `xml:"justify,attr,omitempty"`
	Halign     string `xml:"halign,attr,omitempty"`
	Valign     string `xml:"valign,attr,omitempty"`
	FontSize   string     `xml:"font-size,attr,omitempty"`
	FontWeight string     `xml:"font-weight,attr,omitempty"`
	Attrs      []xml.Attr `xml:",any,attr"`
	Text       string     `xml:",chardata"`
}

type PartList struct {
	PartGroups []Raw       `xml:"part-group"`
	ScoreParts []ScorePart `xml:"score-part"`
}

type ScorePart struct {
	Id              string           `xml:"id,attr"`
	PartName        PartName         `xml:"part-name"`
	PartAbbrev      *Raw             `xml:"part-abbreviation"`
	ScoreInstrument *ScoreInstrument `xml:"score-instrument"`
	MidiDevice      *Raw             `xml:"midi-device"`
	MidiInstrument  *MidiInstrument  `xml:"midi-instrument"`
}

type PartName struct {
	PrintObject string `xml:"print-object,attr,omitempty"`
	Value       string `xml:",chardata"`
}

type ScoreInstrument struct {
	Id    string `xml:"id,attr"`
	Name  string `xml:"instrument-name"`
	Sound string `xml:"instrument-sound,omitempty"`
}

type MidiInstrument struct {
	Id      string `xml:"id,attr"`
	Channel string `xml:"midi-channel,omitempty"`
	Program string `xml:"midi-program,omitempty"`
	Other   []Raw  `xml:",any"`
}

type Part struct {
	Id       string    `xml:"id,attr"`
	Measures []Measure `xml:"measure"`
}

type Measure struct {
	Number   string           `xml:"number,attr"`
	Width    string           `xml:"width,attr,omitempty"`
	Attrs    []xml.Attr       `xml:",any,attr"`
	Elements []MeasureElement `xml:",any"`
}

// MeasureElement is one child of a measure: notes, attributes and
// directions are parsed into typed structs the transformations can work
// on, everything else passes through raw.
type MeasureElement struct {
	Note       *Note
	Attributes *Attributes
	Direction  *Direction
	Raw        *Raw
}

func (m *MeasureElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	switch start.Name.Local {
	case "note":
		m.Note = new(Note)
		return d.DecodeElement(m.Note, &start)
	case "attributes":
		m.Attributes = new(Attributes)
		return d.DecodeElement(m.Attributes, &start)
	case "direction":
		m.Direction = new(Direction)
		return d.DecodeElement(m.Direction, &start)
	default:
		m.Raw = new(Raw)
		return d.DecodeElement(m.Raw, &start)
	}
}

func (m MeasureElement) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	switch {
	case m.Note != nil:
		return e.Encode(m.Note)
	case m.Attributes != nil:
		return e.Encode(m.Attributes)
	case m.Direction != nil:
		return e.Encode(m.Direction)
	case m.Raw != nil:
		return e.Encode(m.Raw)
	}
	return nil
}

type Attributes struct {
	XMLName      xml.Name      `xml:"attributes"`
	Divisions    int           `xml:"divisions,omitempty"`
	Key          *Key          `xml:"key"`
	Time         *Time         `xml:"time"`
	Staves       *Raw          `xml:"staves"`
	Clefs        []Raw         `xml:"clef"`
	StaffDetails []Raw         `xml:"staff-details"`
	Transpose    *Transpose    `xml:"transpose"`
	MeasureStyle *MeasureStyle `xml:"measure-style"`
	Other        []Raw         `xml:",any"`
}

type Key struct {
	Fifths int    `xml:"fifths"`
	Mode   string `xml:"mode,omitempty"`
}

type Time struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type Transpose struct {
	Diatonic     int  `xml:"diatonic"`
	Chromatic    int  `xml:"chromatic"`
	OctaveChange *int `xml:"octave-change"`
}

type MeasureStyle struct {
	MultipleRest *int  `xml:"multiple-rest"`
	Other        []Raw `xml:",any"`
}

type Direction struct {
	XMLName   xml.Name        `xml:"direction"`
	Placement string          `xml:"placement,attr,omitempty"`
	Types     []DirectionType `xml:"direction-type"`
	Other     []Raw           `xml:",any"`
}

type DirectionType struct {
	Rehearsals []Rehearsal `xml:"rehearsal"`
	Other      []Raw       `xml:",any"`
}

type Rehearsal struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Value string     `xml:",chardata"`
}

type Note struct {
	XMLName    xml.Name    `xml:"note"`
	DefaultX   string      `xml:"default-x,attr,omitempty"`
	DefaultY   string      `xml:"default-y,attr,omitempty"`
	Attrs      []xml.Attr  `xml:",any,attr"`
	Grace      *Raw        `xml:"grace"`
	Chord      *Empty      `xml:"chord"`
	Pitch      *Pitch      `xml:"pitch"`
	Rest       *Rest       `xml:"rest"`
	Unpitched  *Raw        `xml:"unpitched"`
	Duration   int         `xml:"duration,omitempty"`
	Ties       []Raw       `xml:"tie"`
	Voice      string      `xml:"voice,omitempty"`
	Type       string      `xml:"type,omitempty"`
	Dots       []Empty     `xml:"dot"`
	Accidental *Accidental `xml:"accidental"`
	TimeMod    *Raw        `xml:"time-modification"`
	Stem       string      `xml:"stem,omitempty"`
	Notehead   *Raw        `xml:"notehead"`
	Staff      string      `xml:"staff,omitempty"`
	Beams      []Beam      `xml:"beam"`
	Notations  *Notations  `xml:"notations"`
	Lyrics     []Raw       `xml:"lyric"`
}

type Pitch struct {
	Step   string `xml:"step"`
	Alter  *int   `xml:"alter"`
	Octave int    `xml:"octave"`
}

type Rest struct {
	Measure string `xml:"measure,attr,omitempty"`
	Inner   string `xml:",innerxml"`
}

type Accidental struct {
	Cautionary string `xml:"cautionary,attr,omitempty"`
	Value      string `xml:",chardata"`
}

type Beam struct {
	Number string `xml:"number,attr,omitempty"`
	Value  string `xml:",chardata"`
}

type Notations struct {
	Articulations *Articulations `xml:"articulations"`
	Slurs         []Slur         `xml:"slur"`
	Tieds         []Raw          `xml:"tied"`
	Technical     *Technical     `xml:"technical"`
	Other         []Raw          `xml:",any"`
}

type Articulations struct {
	Inner string `xml:",innerxml"`
}

type Slur struct {
	Type      string     `xml:"type,attr"`
	Number    string     `xml:"number,attr,omitempty"`
	Placement string     `xml:"placement,attr,omitempty"`
	Attrs     []xml.Attr `xml:",any,attr"`
}

type Technical struct {
	Fingerings []Fingering `xml:"fingering"`
	Holes      []Hole      `xml:"hole"`
	Other      []Raw       `xml:",any"`
}

type Fingering struct {
	Placement string `xml:"placement,attr,omitempty"`
	Value     string `xml:",chardata"`
}

type Hole struct {
	Closed string `xml:"hole-closed"`
	Shape  string `xml:"hole-shape,omitempty"`
}
