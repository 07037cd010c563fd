package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pmoretti/easyscore/model"
	"github.com/stretchr/testify/assert"
)

func noteEntry(note, text, holes string) *dynamodb.AttributeValue {
	m := map[string]*dynamodb.AttributeValue{
		"Note": {S: aws.String(note)},
		"Text": {S: aws.String(text)},
	}
	if holes != "" {
		m["Holes"] = &dynamodb.AttributeValue{S: aws.String(holes)}
	}
	return &dynamodb.AttributeValue{M: m}
}

func TestParseChartItemReadsEntries(t *testing.T) {
	item := map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String("bb_trumpet")},
		"Notes": {L: []*dynamodb.AttributeValue{
			noteEntry("C4", "13", "XOX"),
			noteEntry("F#4", "2", ""),
		}},
	}

	chart := parseChartItem(item)

	assert := assert.New(t)
	assert.Len(chart, 2)
	c4 := chart[model.ChartKey{Step: model.StepC, Octave: 4}]
	assert.Equal(c4.Text, "13")
	assert.Equal(c4.Holes, []bool{true, false, true})
	fSharp := chart[model.ChartKey{Step: model.StepF, Alter: 1, Octave: 4}]
	assert.Equal(fSharp.Text, "2")
	assert.Nil(fSharp.Holes)
}

func TestParseChartItemMissingNotesAttribute(t *testing.T) {
	item := map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String("bb_trumpet")},
	}

	chart := parseChartItem(item)

	assert := assert.New(t)
	assert.Empty(chart)
}

func TestParseChartItemSkipsBadEntries(t *testing.T) {
	item := map[string]*dynamodb.AttributeValue{
		"Notes": {L: []*dynamodb.AttributeValue{
			{M: map[string]*dynamodb.AttributeValue{"Text": {S: aws.String("1")}}},
			noteEntry("H9", "1", ""),
			noteEntry("G4", "0", ""),
		}},
	}

	chart := parseChartItem(item)

	assert := assert.New(t)
	assert.Len(chart, 1)
	assert.Equal(chart[model.ChartKey{Step: model.StepG, Octave: 4}].Text, "0")
}
