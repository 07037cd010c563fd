package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pmoretti/easyscore/model"
	"github.com/stretchr/testify/assert"
)

func TestOutputPathFor(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(outputPathFor(filepath.Join("in", "song.mxl")),
		filepath.Join("in", "song_simplified.musicxml"))
	assert.Equal(outputPathFor("piece.musicxml"), "piece_simplified.musicxml")
}

func TestParseStyle(t *testing.T) {
	assert := assert.New(t)

	style, err := parseStyle("holes")
	assert.Nil(err)
	assert.Equal(style, model.StyleHoles)

	_, err = parseStyle("sideways")
	assert.NotNil(err)
}

func TestBuildRunnerRejectsUnknownInstrument(t *testing.T) {
	opts := defaultProcessOptions()
	opts.instrumentId = "theremin"
	_, _, err := buildRunner(opts)

	assert := assert.New(t)
	assert.NotNil(err)
}

func TestBuildRunnerHonorsThresholdOverride(t *testing.T) {
	opts := defaultProcessOptions()
	opts.instrumentId = "bb_trumpet"
	opts.threshold = "C9"
	r, info, err := buildRunner(opts)

	assert := assert.New(t)
	assert.Nil(err)
	assert.NotNil(r)
	assert.Equal(info.Id, "bb_trumpet")

	_, _, err = buildRunner(processOptions{instrumentId: "bb_trumpet", threshold: "notapitch", style: "numbers"})
	assert.NotNil(err)
}
