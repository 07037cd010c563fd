package preview

import (
	"testing"

	"github.com/pmoretti/easyscore/instrument"
	"github.com/pmoretti/easyscore/musicxml"
	"github.com/stretchr/testify/assert"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="3.1">
  <part-list>
    <score-part id="P1"><part-name>Trumpet in Bb</part-name></score-part>
  </part-list>
  <part id="P1">
    <measure number="1">
      <attributes><divisions>2</divisions><time><beats>4</beats><beat-type>4</beat-type></time></attributes>
      <note><pitch><step>C</step><octave>4</octave></pitch><duration>2</duration><voice>1</voice><type>quarter</type></note>
      <note><rest/><duration>2</duration><voice>1</voice><type>quarter</type></note>
      <note><pitch><step>G</step><octave>4</octave></pitch><duration>4</duration><voice>1</voice><type>half</type></note>
    </measure>
  </part>
</score-partwise>`

func noteOnKeys(t *testing.T, doc string, info instrument.Info) []uint8 {
	score, err := musicxml.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	s, err := Render(score, info)
	if err != nil {
		t.Fatal(err)
	}

	var keys []uint8
	for _, track := range s.Tracks {
		for _, ev := range track {
			var ch, key, vel uint8
			if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func TestRenderEmitsOneNoteOnPerNote(t *testing.T) {
	info, _ := instrument.Get("concert_pitch")
	keys := noteOnKeys(t, sampleDoc, info)

	assert := assert.New(t)
	assert.Equal(keys, []uint8{60, 67})
}

func TestRenderSoundsAtConcertPitch(t *testing.T) {
	info, _ := instrument.Get("bb_trumpet")
	keys := noteOnKeys(t, sampleDoc, info)

	// written C4 on a Bb trumpet sounds Bb3
	assert := assert.New(t)
	assert.Equal(keys, []uint8{58, 65})
}

func TestRenderRejectsEmptyScore(t *testing.T) {
	_, err := Render(&musicxml.Score{}, instrument.Info{})

	assert := assert.New(t)
	assert.NotNil(err)
}

func TestRenderSetsProgramChange(t *testing.T) {
	info, _ := instrument.Get("bb_trumpet")
	score, _ := musicxml.Parse([]byte(sampleDoc))
	s, err := Render(score, info)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Len(s.Tracks, 1)

	var found bool
	for _, ev := range s.Tracks[0] {
		var ch, program uint8
		if ev.Message.GetProgramChange(&ch, &program) {
			found = true
			assert.Equal(program, uint8(56))
		}
	}
	assert.True(found)
}
