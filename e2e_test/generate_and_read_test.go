//go:build e2e
// +build e2e

package e2e_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjjules/all-of-the-rythmns/chunk"
	"github.com/jjjules/all-of-the-rythmns/cmd"
	"github.com/jjjules/all-of-the-rythmns/config"
	"github.com/jjjules/all-of-the-rythmns/model"
	"github.com/jjjules/all-of-the-rythmns/musicxml"
)

func readBackPatterns(t *testing.T, dir string, manifest model.Manifest) []model.Pattern {
	t.Helper()
	var res []model.Pattern
	for _, overview := range manifest.Chunks {
		f, err := os.Open(filepath.Join(dir, overview.Filename))
		if err != nil {
			t.Fatalf("could not open %v: %v", overview.Filename, err)
		}
		score, err := musicxml.Parse(f)
		f.Close()
		if err != nil {
			t.Fatalf("could not parse %v: %v", overview.Filename, err)
		}
		measures, err := musicxml.Measures(score)
		if err != nil {
			t.Fatalf("could not read measures of %v: %v", overview.Filename, err)
		}
		for _, m := range measures {
			res = append(res, m.Pattern)
		}
	}
	return res
}

func TestGenerateSplitAndReadBackE2E(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.MaxMeasuresPerFile = 5

	manifest, err := cmd.Generate(4, dir, cfg)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(4, manifest.PatternLength)
	assert.Equal(16, manifest.TotalPatterns)
	assert.Equal(4, len(manifest.Chunks))
	assert.Equal(5, manifest.Chunks[0].NumMeasures)
	assert.Equal(5, manifest.Chunks[1].NumMeasures)
	assert.Equal(5, manifest.Chunks[2].NumMeasures)
	assert.Equal(1, manifest.Chunks[3].NumMeasures)

	stored, err := chunk.ReadManifest(dir)
	assert.NoError(err)
	assert.Equal(manifest, stored)

	patterns := readBackPatterns(t, dir, manifest)
	assert.Equal(16, len(patterns))

	seen := make(map[uint32]bool)
	for i, p := range patterns {
		assert.Equal(4, p.Length)
		assert.False(seen[p.Bits])
		seen[p.Bits] = true
		if i > 0 {
			prev := patterns[i-1]
			if prev.HitCount() == p.HitCount() {
				assert.Less(prev.Bits, p.Bits)
			} else {
				assert.Less(prev.HitCount(), p.HitCount())
			}
		}
	}
}

func TestGenerateSingleSlotE2E(t *testing.T) {
	dir := t.TempDir()

	manifest, err := cmd.Generate(1, dir, config.Default())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(2, manifest.TotalPatterns)
	assert.Equal(1, len(manifest.Chunks))
	assert.Equal("drum_partitions_N1.musicxml", manifest.Chunks[0].Filename)

	patterns := readBackPatterns(t, dir, manifest)
	assert.Equal([]model.Pattern{{Bits: 0, Length: 1}, {Bits: 1, Length: 1}}, patterns)
}

func TestGenerateRejectsBadArgumentsE2E(t *testing.T) {
	dir := t.TempDir()

	_, err := cmd.Generate(0, dir, config.Default())
	assert.Error(t, err)

	cfg := config.Default()
	cfg.MaxMeasuresPerFile = 0
	_, err = cmd.Generate(3, dir, cfg)
	assert.Error(t, err)
}
