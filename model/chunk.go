package model

type ChunkOverview struct {
	Filename     string `yaml:"filename"`
	FirstMeasure int    `yaml:"firstMeasure"`
	LastMeasure  int    `yaml:"lastMeasure"`
	MinHits      int    `yaml:"minHits"`
	MaxHits      int    `yaml:"maxHits"`
	NumMeasures  int    `yaml:"numMeasures"`
}

// Manifest describes one generation run and every document it produced.
// Written as manifest.yaml next to the output documents.
type Manifest struct {
	RunID              string          `yaml:"runId"`
	PatternLength      int             `yaml:"patternLength"`
	TotalPatterns      int             `yaml:"totalPatterns"`
	MaxMeasuresPerFile int             `yaml:"maxMeasuresPerFile"`
	Chunks             []ChunkOverview `yaml:"chunks"`
}
