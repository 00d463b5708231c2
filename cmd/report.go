package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jjjules/all-of-the-rythmns/chunk"
	"github.com/jjjules/all-of-the-rythmns/constants"
	"github.com/jjjules/all-of-the-rythmns/musicxml"
	"github.com/jjjules/all-of-the-rythmns/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Creates a report over an output directory",
	Long:  `Scans an output directory, reports per-document measure counts and sizes, and checks them against the manifest.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetOutputDir()
		if len(args) == 1 {
			dir = args[0]
		}
		return report(dir)
	},
}

type docReport struct {
	filename    string
	numMeasures int64
	numBytes    int64
}

func analyzeDocs(dir string) ([]docReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read dir %v", dir)
	}

	var res []docReport
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".musicxml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %v", path)
		}
		score, err := musicxml.Parse(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(err, "could not stat %v", path)
		}
		var numMeasures int64
		for _, part := range score.Parts {
			numMeasures += int64(len(part.Measures))
		}
		res = append(res, docReport{
			filename:    entry.Name(),
			numMeasures: numMeasures,
			numBytes:    info.Size(),
		})
	}
	return res, nil
}

func report(dir string) error {
	docs, err := analyzeDocs(dir)
	if err != nil {
		return err
	}

	var measureCounts []int64
	var byteCounts []int64
	for _, d := range docs {
		fmt.Printf("%v: %v measures, %v bytes\n", d.filename, d.numMeasures, d.numBytes)
		measureCounts = append(measureCounts, d.numMeasures)
		byteCounts = append(byteCounts, d.numBytes)
	}
	fmt.Printf("documents: %v\n", len(docs))
	fmt.Printf("total measures: %v\n", util.Sum(measureCounts))
	fmt.Printf("total bytes: %v\n", util.Sum(byteCounts))

	manifest, err := chunk.ReadManifest(dir)
	if err != nil {
		fmt.Printf("no readable manifest: %v\n", err)
		return nil
	}
	fmt.Printf("manifest run: %v (N=%v, %v patterns)\n", manifest.RunID, manifest.PatternLength, manifest.TotalPatterns)
	if len(manifest.Chunks) != len(docs) {
		return errors.Errorf("manifest lists %v documents but dir has %v", len(manifest.Chunks), len(docs))
	}
	var listed int64
	for _, c := range manifest.Chunks {
		listed += int64(c.NumMeasures)
	}
	if uint64(listed) != util.Sum(measureCounts) {
		return errors.Errorf("manifest lists %v measures but documents hold %v", listed, util.Sum(measureCounts))
	}
	fmt.Println("manifest matches the documents")
	return nil
}
