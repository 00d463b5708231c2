package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jjjules/all-of-the-rythmns/constants"
	"github.com/jjjules/all-of-the-rythmns/midi"
	"github.com/jjjules/all-of-the-rythmns/pattern"
	"github.com/jjjules/all-of-the-rythmns/util"
)

var midiOutDir string

func init() {
	rootCmd.AddCommand(midiCmd)
	midiCmd.Flags().StringVar(&midiOutDir, "out", constants.GetOutputDir(), "output directory")
}

var midiCmd = &cobra.Command{
	Use:   "midi <N>",
	Short: "Exports every rhythm pattern of N semiquavers as a MIDI file",
	Long:  `Exports the full sorted pattern sequence as a single-track standard MIDI file, one N/16 bar per pattern on the percussion channel.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("N must be an integer, got %q", args[0])
		}

		patterns, err := pattern.Enumerate(n)
		if err != nil {
			return err
		}
		pattern.SortGrouped(patterns)

		if err := util.RecreateOutputDir(midiOutDir); err != nil {
			return err
		}
		path := filepath.Join(midiOutDir, fmt.Sprintf("drum_partitions_N%v.mid", n))
		if err := midi.Export(path, n, patterns); err != nil {
			return err
		}
		log.Infof("wrote %v patterns to %v", len(patterns), path)
		return nil
	},
}
