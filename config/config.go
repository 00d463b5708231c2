package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jjjules/all-of-the-rythmns/constants"
	"github.com/jjjules/all-of-the-rythmns/measure"
)

// Config holds the knobs of one generation run. Flags override preset file
// values, which override the defaults.
type Config struct {
	MaxMeasuresPerFile int    `yaml:"maxMeasuresPerFile"`
	RestMerge          string `yaml:"restMerge"`
	RehearsalMarks     bool   `yaml:"rehearsalMarks"`
	SectionBreaks      bool   `yaml:"sectionBreaks"`
	TextAnnotations    bool   `yaml:"textAnnotations"`
}

func Default() Config {
	return Config{
		MaxMeasuresPerFile: constants.DefaultMaxMeasuresPerFile,
		RestMerge:          string(measure.RestMergeBeat),
	}
}

// LoadPreset overlays a YAML preset file on the defaults. Fields absent from
// the file keep their default values.
func LoadPreset(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not read preset %v", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse preset %v", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxMeasuresPerFile < 1 {
		return errors.Errorf("max measures per file must be a positive integer, got %v", c.MaxMeasuresPerFile)
	}
	if _, err := measure.ParseRestMerge(c.RestMerge); err != nil {
		return err
	}
	return nil
}
