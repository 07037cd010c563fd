package cmd

import (
	"fmt"

	"github.com/pmoretti/easyscore/musicxml"
	"github.com/spf13/cobra"
)

var simplifyOpts = defaultProcessOptions()

func init() {
	simplifyCmd.Flags().StringVarP(&simplifyOpts.instrumentId, "instrument", "i", simplifyOpts.instrumentId, "instrument id, see 'easyscore charts'")
	simplifyCmd.Flags().BoolVar(&simplifyOpts.noPairing, "no-pairing", false, "skip the eighth-note pairing stage")
	simplifyCmd.Flags().StringVar(&simplifyOpts.threshold, "threshold", "", "transposition threshold pitch, e.g. G5 (overrides the instrument default)")
	simplifyCmd.Flags().BoolVar(&simplifyOpts.noFingerings, "no-fingerings", false, "skip the fingering annotation stage")
	simplifyCmd.Flags().StringVar(&simplifyOpts.style, "style", simplifyOpts.style, "fingering style: numbers, holes or both")
	simplifyCmd.Flags().BoolVar(&simplifyOpts.accidentalsOnly, "accidentals-only", false, "only annotate notes carrying a written accidental")
	simplifyCmd.Flags().StringVar(&simplifyOpts.rehearsal, "rehearsal", "", "relabel rehearsal marks: measure_numbers or letters")
	simplifyCmd.Flags().BoolVar(&simplifyOpts.dbOverrides, "db-overrides", false, "apply fingering chart overrides from DynamoDB")
	simplifyCmd.Flags().BoolVar(&simplifyOpts.noTitleCredit, "no-title-credit", false, "never derive a title credit from the filename")
	rootCmd.AddCommand(simplifyCmd)
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify <input> [output]",
	Short: "Simplifies one MusicXML file",
	Long:  `Simplifies one MusicXML file`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := outputPathFor(input)
		if len(args) == 2 {
			output = args[1]
		}
		return simplify(input, output, simplifyOpts)
	},
}

func simplify(input, output string, opts processOptions) error {
	score, err := musicxml.ReadScoreFile(input)
	if err != nil {
		return err
	}

	summary, err := processScore(score, input, opts)
	if err != nil {
		return err
	}

	if err := musicxml.WriteScoreFile(output, score); err != nil {
		return err
	}

	printSummary(summary)
	fmt.Printf("Wrote %v\n", output)
	return nil
}
