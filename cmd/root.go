package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "all-of-the-rythmns",
	Short: "Every rhythm that fits in a bar",
	Long: `Enumerates every hit/rest pattern over N semiquaver slots and writes
them out as drum notation, grouped by number of onsets.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("could not set up logging: " + err.Error())
	}
	log = logger.Sugar()
}
