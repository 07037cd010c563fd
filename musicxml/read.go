package musicxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type container struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

// extractMxl pulls the score document out of a compressed .mxl archive,
// resolving META-INF/container.xml and falling back to the first .xml
// entry that is not container metadata.
func extractMxl(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("error opening mxl archive... %v", err)
	}

	readEntry := func(name string) ([]byte, error) {
		for _, f := range zr.File {
			if f.Name == name {
				rc, err := f.Open()
				if err != nil {
					return nil, err
				}
				defer rc.Close()
				return io.ReadAll(rc)
			}
		}
		return nil, errors.New("entry not found: " + name)
	}

	if raw, err := readEntry("META-INF/container.xml"); err == nil {
		var c container
		if err := xml.Unmarshal(raw, &c); err == nil {
			for _, rf := range c.Rootfiles {
				if rf.FullPath != "" {
					return readEntry(rf.FullPath)
				}
			}
		}
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "META-INF/") {
			continue
		}
		if strings.HasSuffix(f.Name, ".xml") || strings.HasSuffix(f.Name, ".musicxml") {
			return readEntry(f.Name)
		}
	}
	return nil, errors.New("no score document in mxl archive")
}

// Parse reads a score-partwise document from raw XML bytes.
func Parse(data []byte) (s *Score, e error) {
	// recover decoder panics into errors so one broken document never
	// takes down a batch run
	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("error parsing musicxml... %v", r)
		}
	}()

	var score Score
	decoder := xml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&score); err != nil {
		return nil, fmt.Errorf("error parsing musicxml... %v", err)
	}
	return &score, nil
}

// ReadScoreFile loads a .musicxml, .xml or compressed .mxl file.
func ReadScoreFile(filepath string) (*Score, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading score file... %v", err)
	}

	if strings.HasSuffix(strings.ToLower(filepath), ".mxl") {
		dat, err = extractMxl(dat)
		if err != nil {
			return nil, err
		}
	}

	return Parse(dat)
}
