package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pmoretti/easyscore/instrument"
	"github.com/pmoretti/easyscore/musicxml"
	"github.com/pmoretti/easyscore/preview"
	"github.com/spf13/cobra"
)

var previewInstrument string

func init() {
	previewCmd.Flags().StringVarP(&previewInstrument, "instrument", "i", "concert_pitch", "instrument id, used for transposition and MIDI program")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <input> [output.mid]",
	Short: "Exports a MIDI preview of a MusicXML file",
	Long:  `Exports a MIDI preview of a MusicXML file`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		stem := strings.TrimSuffix(input, filepath.Ext(input))
		output := stem + ".mid"
		if len(args) == 2 {
			output = args[1]
		}

		info, err := instrument.Get(previewInstrument)
		if err != nil {
			return fmt.Errorf("unknown instrument: %v", previewInstrument)
		}

		score, err := musicxml.ReadScoreFile(input)
		if err != nil {
			return err
		}

		if err := preview.WritePreviewFile(output, score, info); err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", output)
		return nil
	},
}
