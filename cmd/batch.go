package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/pmoretti/easyscore/constants"
	"github.com/pmoretti/easyscore/util"
	"github.com/spf13/cobra"
)

var batchOpts = defaultProcessOptions()
var batchMaxNum int

func init() {
	batchCmd.Flags().StringVarP(&batchOpts.instrumentId, "instrument", "i", batchOpts.instrumentId, "instrument id, see 'easyscore charts'")
	batchCmd.Flags().BoolVar(&batchOpts.noPairing, "no-pairing", false, "skip the eighth-note pairing stage")
	batchCmd.Flags().StringVar(&batchOpts.threshold, "threshold", "", "transposition threshold pitch, e.g. G5 (overrides the instrument default)")
	batchCmd.Flags().BoolVar(&batchOpts.noFingerings, "no-fingerings", false, "skip the fingering annotation stage")
	batchCmd.Flags().StringVar(&batchOpts.style, "style", batchOpts.style, "fingering style: numbers, holes or both")
	batchCmd.Flags().BoolVar(&batchOpts.accidentalsOnly, "accidentals-only", false, "only annotate notes carrying a written accidental")
	batchCmd.Flags().StringVar(&batchOpts.rehearsal, "rehearsal", "", "relabel rehearsal marks: measure_numbers or letters")
	batchCmd.Flags().BoolVar(&batchOpts.dbOverrides, "db-overrides", false, "apply fingering chart overrides from DynamoDB")
	batchCmd.Flags().BoolVar(&batchOpts.noTitleCredit, "no-title-credit", false, "never derive a title credit from the filename")
	batchCmd.Flags().IntVar(&batchMaxNum, "max", 0, "process at most this many files, 0 for all")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch [input-dir] [output-dir]",
	Short: "Simplifies every MusicXML file in a directory",
	Long:  `Simplifies every MusicXML file in a directory`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		inputDir := constants.GetInputDir()
		outputDir := constants.GetOutputDir()
		if len(args) >= 1 {
			inputDir = args[0]
		}
		if len(args) == 2 {
			outputDir = args[1]
		}
		batch(inputDir, outputDir, batchMaxNum, batchOpts)
	},
}

// batchOne isolates one file so a panic in parsing or processing fails
// that file only.
func batchOne(input, output string, opts processOptions) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error processing %v... %v", input, r)
		}
	}()
	return simplify(input, output, opts)
}

func batch(inputDir, outputDir string, maxNum int, opts processOptions) {
	batchId := uuid.New().String()
	util.RecreateDir(outputDir)

	paths := util.GatherAllScorePaths(inputDir, 0)
	if maxNum > 0 {
		paths = paths[:util.Min(maxNum, len(paths))]
	}
	fmt.Printf("Batch %v: %v files\n", batchId, len(paths))

	var succeeded, failed int
	debounced := debounce.New(500 * time.Millisecond)

	for _, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		output := filepath.Join(outputDir, stem+constants.SimplifiedSuffix+".musicxml")

		if err := batchOne(path, output, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed++
		} else {
			succeeded++
		}

		done := succeeded + failed
		debounced(func() {
			fmt.Printf("Progress: %v/%v\n", done, len(paths))
		})
	}

	fmt.Printf("Batch %v finished: %v succeeded, %v failed\n", batchId, succeeded, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
