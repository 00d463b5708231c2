package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jjjules/all-of-the-rythmns/measure"
	"github.com/jjjules/all-of-the-rythmns/musicxml"
	"github.com/jjjules/all-of-the-rythmns/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.musicxml>",
	Short: "Inspects a generated document",
	Long:  `Parses one generated document, prints its hit-count histogram and checks every measure's duration sum.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %v", path)
	}
	defer f.Close()

	score, err := musicxml.Parse(f)
	if err != nil {
		return err
	}
	measures, err := musicxml.Measures(score)
	if err != nil {
		return err
	}

	histogram := make(map[int]int)
	for _, m := range measures {
		if err := measure.Validate(m); err != nil {
			return err
		}
		histogram[m.Pattern.HitCount()]++
	}

	fmt.Printf("measures: %v\n", len(measures))
	if len(measures) > 0 {
		fmt.Printf("numbers: %v..%v\n", measures[0].Number, measures[len(measures)-1].Number)
	}
	counts := util.GetKeys(histogram)
	sort.Ints(counts)
	for _, c := range counts {
		fmt.Printf("%v hit(s): %v measure(s)\n", c, histogram[c])
	}
	return nil
}
