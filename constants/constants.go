package constants

import "os"

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./output"
}

// Divisions per quarter note in the MusicXML attributes block. 4 gives
// semiquaver resolution, so one slot is exactly one division.
const Divisions = 4

// SlotsPerBeat is how many semiquavers make up one beat of the N/16 meter's
// underlying quarter-note grid. Rest merging never crosses this boundary.
const SlotsPerBeat = 4

const DefaultMaxMeasuresPerFile = 4096

// MaxPatternLength bounds N. 2^24 measures is already far beyond what any
// notation tool will open; past that, enumeration only burns memory.
const MaxPatternLength = 24

const PartID = "P1"
const PartName = "Drums"
const InstrumentID = "drumset"
