package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmoretti/easyscore/fingering"
	"github.com/pmoretti/easyscore/instrument"
	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chartsCmd)
}

var chartsCmd = &cobra.Command{
	Use:   "charts [instrument]",
	Short: "Lists instruments or prints one fingering chart",
	Long:  `Lists instruments or prints one fingering chart`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			listInstruments()
			return nil
		}
		return printChart(args[0])
	},
}

func listInstruments() {
	for _, id := range instrument.Ids() {
		info, err := instrument.Get(id)
		if err != nil {
			continue
		}
		_, chartErr := fingering.ChartFor(id)
		marker := " "
		if chartErr == nil {
			marker = "*"
		}
		fmt.Printf("%v %-15v %v\n", marker, id, info.Name)
	}
	fmt.Println("(* = fingering chart available)")
}

func holeDiagram(holes []bool) string {
	if len(holes) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, closed := range holes {
		if closed {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('O')
		}
	}
	return sb.String()
}

func printChart(id string) error {
	chart, err := fingering.ChartFor(id)
	if err != nil {
		return fmt.Errorf("no fingering chart for instrument: %v", id)
	}

	keys := make([]model.ChartKey, 0, len(chart))
	for k := range chart {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a := model.Pitch{Step: keys[i].Step, Alter: keys[i].Alter, Octave: keys[i].Octave}
		b := model.Pitch{Step: keys[j].Step, Alter: keys[j].Alter, Octave: keys[j].Octave}
		if c := pitch.Compare(a, b); c != 0 {
			return c < 0
		}
		return keys[i].Alter < keys[j].Alter
	})

	for _, k := range keys {
		entry := chart[k]
		p := model.Pitch{Step: k.Step, Alter: k.Alter, Octave: k.Octave}
		tokens := strings.Join(fingering.DisplayTokens(entry.Text), " ")
		if diagram := holeDiagram(entry.Holes); diagram != "" {
			fmt.Printf("%-5v %-12v %v\n", pitch.String(p), tokens, diagram)
		} else {
			fmt.Printf("%-5v %v\n", pitch.String(p), tokens)
		}
	}
	return nil
}
