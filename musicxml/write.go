package musicxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
)

const doctype = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.1 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">` + "\n"

// Serialize renders the score back to a standalone MusicXML document.
func Serialize(score *Score) ([]byte, error) {
	body, err := xml.MarshalIndent(score, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error serializing musicxml... %v", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(doctype)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteScoreFile serializes the score to path.
func WriteScoreFile(filepath string, score *Score) error {
	data, err := Serialize(score)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath, data, 0666); err != nil {
		return fmt.Errorf("error writing score file... %v", err)
	}
	return nil
}
