package finder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	dir := writeTree(t, map[string]int64{
		"a.jpg":     6 << 20,
		"b.jpg":     4 << 20,
		"c.png":     10 << 20,
		"d/e.jpg":   7 << 20,
		"d/f/g.JPG": 8 << 20,
	})

	cfg, err := NewConfig(dir, "jpg", 5)
	require.NoError(t, err)

	summary, err := Summarize(context.Background(), cfg, SummaryOptions{TopN: 2, Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(7), summary.Visited)
	assert.Equal(t, int64(3), summary.Matched)
	assert.Equal(t, int64(21<<20), summary.MatchedBytes)
	assert.Equal(t, []Row{
		{Path: filepath.Join(dir, "d", "f", "g.JPG"), Size: 8 << 20, HumanSize: "8.00MB"},
		{Path: filepath.Join(dir, "d", "e.jpg"), Size: 7 << 20, HumanSize: "7.00MB"},
	}, summary.Largest)
	assert.Equal(t, 2, summary.TopN)
}

func TestSummarize_AgreesWithScan(t *testing.T) {
	dir := writeTree(t, map[string]int64{
		"x/1.log": 3, "x/2.log": 1, "y/z/3.LOG": 2, "4.txt": 9, "5.log": 1,
	})

	require.NoError(t, os.Symlink(filepath.Join(dir, "4.txt"), filepath.Join(dir, "6.log")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "x"), filepath.Join(dir, "x.log")))

	cfg, err := NewConfig(dir, "log", 0)
	require.NoError(t, err)

	report, err := Scan(cfg, Options{})
	require.NoError(t, err)

	streamed := collectPaths(t, report)

	summary, err := Summarize(context.Background(), cfg, SummaryOptions{TopN: 100})
	require.NoError(t, err)

	aggregated := map[string]string{}
	for _, row := range summary.Largest {
		aggregated[row.Path] = row.HumanSize
	}

	assert.Equal(t, streamed, aggregated)
	assert.Contains(t, aggregated, filepath.Join(dir, "4.txt"), "link to a regular file resolves to its target")
	assert.Equal(t, report.Stats().Visited, summary.Visited)
}

func TestSummarize_InvalidRoot(t *testing.T) {
	cfg, err := NewConfig(filepath.Join(t.TempDir(), "missing"), "jpg", 0)
	require.NoError(t, err)

	_, err = Summarize(context.Background(), cfg, SummaryOptions{})

	var pathErr *PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestSummarize_Cancelled(t *testing.T) {
	dir := writeTree(t, map[string]int64{"a/b.jpg": 1})

	cfg, err := NewConfig(dir, "jpg", 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Summarize(ctx, cfg, SummaryOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
