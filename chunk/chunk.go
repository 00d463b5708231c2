package chunk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jjjules/all-of-the-rythmns/model"
	"github.com/jjjules/all-of-the-rythmns/musicxml"
	"github.com/jjjules/all-of-the-rythmns/util"
)

const ManifestFilename = "manifest.yaml"

// Split partitions the ordered measure sequence into contiguous chunks of at
// most max measures. Chunk k holds measures [k*max, min((k+1)*max, total)),
// so concatenating the chunks in order gives back the input.
func Split(measures []model.Measure, max int) ([][]model.Measure, error) {
	if max < 1 {
		return nil, errors.Errorf("max measures per file must be a positive integer, got %v", max)
	}
	res := make([][]model.Measure, 0, util.CeilDiv(len(measures), max))
	for start := 0; start < len(measures); start += max {
		end := util.Min(start+max, len(measures))
		res = append(res, measures[start:end])
	}
	return res, nil
}

// Filename names the document for one chunk. A run that fits in a single
// document keeps the plain name; otherwise a part number is appended.
func Filename(n, idx, total int) string {
	if total == 1 {
		return fmt.Sprintf("drum_partitions_N%v.musicxml", n)
	}
	return fmt.Sprintf("drum_partitions_N%v_part%03d.musicxml", n, idx+1)
}

func writeChunk(dir, filename string, measures []model.Measure, dec musicxml.Decorations) (model.ChunkOverview, error) {
	var overview model.ChunkOverview

	score, err := musicxml.NewScore(measures, dec)
	if err != nil {
		return overview, err
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return overview, errors.Wrapf(err, "could not create %v", path)
	}
	defer f.Close()

	if err := musicxml.Write(f, score); err != nil {
		return overview, errors.Wrapf(err, "could not write %v", path)
	}

	first := measures[0]
	last := measures[len(measures)-1]
	overview = model.ChunkOverview{
		Filename:     filename,
		FirstMeasure: first.Number,
		LastMeasure:  last.Number,
		MinHits:      first.Pattern.HitCount(),
		MaxHits:      last.Pattern.HitCount(),
		NumMeasures:  len(measures),
	}
	return overview, nil
}

// WriteAll writes one standalone document per chunk and returns an overview
// of each, in order.
func WriteAll(log *zap.SugaredLogger, dir string, n int, chunks [][]model.Measure, dec musicxml.Decorations) ([]model.ChunkOverview, error) {
	overviews := make([]model.ChunkOverview, 0, len(chunks))
	for i, measures := range chunks {
		filename := Filename(n, i, len(chunks))
		if log != nil {
			log.Infof("writing document %v of %v (%v measures)", i+1, len(chunks), len(measures))
		}
		overview, err := writeChunk(dir, filename, measures, dec)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, overview)
	}
	return overviews, nil
}

// WriteManifest records the run next to its documents.
func WriteManifest(dir string, m model.Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "could not encode manifest")
	}
	path := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(path, data, 0666); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(dir string) (model.Manifest, error) {
	var m model.Manifest
	path := filepath.Join(dir, ManifestFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return m, errors.Wrapf(err, "could not read %v", path)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, errors.Wrapf(err, "could not decode %v", path)
	}
	return m, nil
}
