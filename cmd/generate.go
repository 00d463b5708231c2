package cmd

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jjjules/all-of-the-rythmns/chunk"
	"github.com/jjjules/all-of-the-rythmns/config"
	"github.com/jjjules/all-of-the-rythmns/constants"
	"github.com/jjjules/all-of-the-rythmns/measure"
	"github.com/jjjules/all-of-the-rythmns/model"
	"github.com/jjjules/all-of-the-rythmns/musicxml"
	"github.com/jjjules/all-of-the-rythmns/pattern"
	"github.com/jjjules/all-of-the-rythmns/util"
)

var (
	generateOutDir      string
	generatePreset      string
	generateMaxMeasures int
	generateRestMerge   string
	generateRehearsal   bool
	generateSections    bool
	generateText        bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateOutDir, "out", constants.GetOutputDir(), "output directory (wiped before writing)")
	generateCmd.Flags().StringVar(&generatePreset, "preset", "", "YAML preset file with run options")
	generateCmd.Flags().IntVar(&generateMaxMeasures, "max-measures", constants.DefaultMaxMeasuresPerFile, "max measures per output document")
	generateCmd.Flags().StringVar(&generateRestMerge, "rest-merge", string(measure.RestMergeBeat), "rest merge policy: none or beat")
	generateCmd.Flags().BoolVar(&generateRehearsal, "rehearsal-marks", false, "add a rehearsal mark where the hit-count changes")
	generateCmd.Flags().BoolVar(&generateSections, "section-breaks", false, "add a section barline where the hit-count changes")
	generateCmd.Flags().BoolVar(&generateText, "text-annotations", false, "add a text annotation where the hit-count changes")
}

var generateCmd = &cobra.Command{
	Use:   "generate <N>",
	Short: "Generates every rhythm pattern of N semiquavers",
	Long: `Generates every hit/rest pattern of N semiquavers, sorted by hit-count
then bitmask, one measure per pattern, split across standalone MusicXML
documents of at most --max-measures measures.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("N must be an integer, got %q", args[0])
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		manifest, err := Generate(n, generateOutDir, cfg)
		if err != nil {
			return err
		}
		log.Infof("wrote %v document(s) for %v patterns to %v", len(manifest.Chunks), manifest.TotalPatterns, generateOutDir)
		return nil
	},
}

// resolveConfig layers defaults, the optional preset file and explicit flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if generatePreset != "" {
		var err error
		cfg, err = config.LoadPreset(generatePreset)
		if err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("max-measures") {
		cfg.MaxMeasuresPerFile = generateMaxMeasures
	}
	if cmd.Flags().Changed("rest-merge") {
		cfg.RestMerge = generateRestMerge
	}
	if cmd.Flags().Changed("rehearsal-marks") {
		cfg.RehearsalMarks = generateRehearsal
	}
	if cmd.Flags().Changed("section-breaks") {
		cfg.SectionBreaks = generateSections
	}
	if cmd.Flags().Changed("text-annotations") {
		cfg.TextAnnotations = generateText
	}
	return cfg, cfg.Validate()
}

// Generate runs the whole pipeline: enumerate, sort, serialize, split, write.
// Exported so the end to end tests can drive it without going through cobra.
func Generate(n int, outDir string, cfg config.Config) (model.Manifest, error) {
	var manifest model.Manifest

	if err := cfg.Validate(); err != nil {
		return manifest, err
	}
	merge, err := measure.ParseRestMerge(cfg.RestMerge)
	if err != nil {
		return manifest, err
	}

	patterns, err := pattern.Enumerate(n)
	if err != nil {
		return manifest, err
	}
	pattern.SortGrouped(patterns)

	measures := make([]model.Measure, len(patterns))
	for i, p := range patterns {
		m := measure.FromPattern(p, merge)
		m.Number = i + 1
		if err := measure.Validate(m); err != nil {
			return manifest, err
		}
		measures[i] = m
	}

	chunks, err := chunk.Split(measures, cfg.MaxMeasuresPerFile)
	if err != nil {
		return manifest, err
	}

	if err := util.RecreateOutputDir(outDir); err != nil {
		return manifest, err
	}

	dec := musicxml.Decorations{
		RehearsalMarks:  cfg.RehearsalMarks,
		SectionBreaks:   cfg.SectionBreaks,
		TextAnnotations: cfg.TextAnnotations,
	}
	overviews, err := chunk.WriteAll(log, outDir, n, chunks, dec)
	if err != nil {
		return manifest, err
	}

	manifest = model.Manifest{
		RunID:              uuid.New().String(),
		PatternLength:      n,
		TotalPatterns:      len(patterns),
		MaxMeasuresPerFile: cfg.MaxMeasuresPerFile,
		Chunks:             overviews,
	}
	if err := chunk.WriteManifest(outDir, manifest); err != nil {
		return manifest, err
	}
	return manifest, nil
}
