package db

import (
	"fmt"

	"github.com/pmoretti/easyscore/constants"
	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/pitch"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func parseHoles(s string) []bool {
	if s == "" {
		return nil
	}
	holes := make([]bool, len(s))
	for i, c := range s {
		holes[i] = c == 'X'
	}
	return holes
}

// parseChartItem reads one table item's Notes list into a chart.
// Entries missing a Note or Text attribute are skipped, as are note
// names that fail to parse.
func parseChartItem(item map[string]*dynamodb.AttributeValue) model.FingeringChart {
	chart := make(model.FingeringChart)
	if item["Notes"] == nil {
		return chart
	}
	for _, entry := range item["Notes"].L {
		m := entry.M
		if m["Note"] == nil || m["Note"].S == nil || m["Text"] == nil || m["Text"].S == nil {
			continue
		}
		p, err := pitch.Parse(*m["Note"].S)
		if err != nil {
			fmt.Printf("Skipping unparseable override note: %v\n", *m["Note"].S)
			continue
		}
		fe := model.FingeringEntry{Text: *m["Text"].S}
		if m["Holes"] != nil && m["Holes"].S != nil {
			fe.Holes = parseHoles(*m["Holes"].S)
		}
		chart[model.ChartKey{Step: p.Step, Alter: p.Alter, Octave: p.Octave}] = fe
	}
	return chart
}

// GetFingeringOverrides fetches per-instrument fingering chart overrides.
// Each item is keyed by instrument id and carries a list of note entries
// that replace or extend the built-in chart.
func GetFingeringOverrides(instrumentIds []string) map[string]model.FingeringChart {
	if len(instrumentIds) > 10 {
		panic("Not supposed to pass in more than 10 instrument ids!")
	}

	res := make(map[string]model.FingeringChart)

	if len(instrumentIds) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range instrumentIds {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(id),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetFingeringDbEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.FingeringTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[constants.FingeringTable] {
		if v["PK"] == nil || v["PK"].S == nil {
			continue
		}
		res[*v["PK"].S] = parseChartItem(v)
	}

	return res
}
