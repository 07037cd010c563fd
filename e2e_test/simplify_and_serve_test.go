//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pmoretti/easyscore/cmd"
	"github.com/pmoretti/easyscore/model"
	"github.com/stretchr/testify/assert"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="3.1">
  <part-list>
    <score-part id="P1"><part-name>Alto Saxophone in Eb</part-name></score-part>
  </part-list>
  <part id="P1">
    <measure number="1">
      <attributes><divisions>2</divisions><time><beats>4</beats><beat-type>4</beat-type></time></attributes>
      <note><pitch><step>D</step><octave>5</octave></pitch><duration>1</duration><voice>1</voice><type>eighth</type></note>
      <note><pitch><step>E</step><octave>5</octave></pitch><duration>1</duration><voice>1</voice><type>eighth</type></note>
      <note><pitch><step>C</step><octave>4</octave></pitch><duration>2</duration><voice>1</voice><type>quarter</type></note>
      <note><rest/><duration>4</duration><voice>1</voice><type>half</type></note>
    </measure>
  </part>
</score-partwise>`

func TestSimplifyEndToEnd(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost,
		"/simplify?instrument=eb_alto_sax&style=numbers", strings.NewReader(sampleDoc))
	w := httptest.NewRecorder()
	cmd.HandleSimplify(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.NotEmpty(resp.Header.Get("X-Run-Id"))

	text := string(body)
	// the D5 E5 pair merged into a quarter, then dropped below C#5
	assert.Contains(text, "<type>quarter</type>")
	assert.NotContains(text, "<type>eighth</type>")
	assert.Contains(text, "<fingering")
	assert.Contains(text, "<software>easyscore</software>")
}

func TestSimplifyRejectsGarbageBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/simplify", strings.NewReader("nope"))
	w := httptest.NewRecorder()
	cmd.HandleSimplify(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)

	var errResp model.ErrorResponse
	assert.Nil(json.Unmarshal(body, &errResp))
	assert.NotEmpty(errResp.Error)
}

func TestSimplifyRejectsUnknownInstrument(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost,
		"/simplify?instrument=theremin", strings.NewReader(sampleDoc))
	w := httptest.NewRecorder()
	cmd.HandleSimplify(w, req)

	assert := assert.New(t)
	assert.Equal(w.Result().StatusCode, 400)
}

func TestInstrumentsEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/instruments", nil)
	w := httptest.NewRecorder()
	cmd.HandleInstruments(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var overviews []model.InstrumentOverview
	assert.Nil(json.Unmarshal(body, &overviews))
	assert.NotEmpty(overviews)

	byId := make(map[string]model.InstrumentOverview)
	for _, o := range overviews {
		byId[o.Id] = o
	}
	assert.True(byId["eb_alto_sax"].HasChart)
	assert.Equal(byId["eb_alto_sax"].Threshold, "C#5")
	assert.False(byId["concert_pitch"].HasChart)
}
