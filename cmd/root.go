package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "easyscore",
	Short: "MusicXML simplifier",
	Long:  `Simplifies MusicXML parts for beginning players: pairs eighth notes into quarters, pulls high passages down an octave and annotates fingerings.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
