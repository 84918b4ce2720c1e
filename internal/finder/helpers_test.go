package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files of the given sizes under a fresh temp dir. Keys are
// slash-separated relative paths; a trailing slash creates an empty directory.
// Sizes are allocated sparsely.
func writeTree(t *testing.T, files map[string]int64) string {
	t.Helper()

	root := t.TempDir()

	for rel, size := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))

		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))

			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		require.NoError(t, os.Truncate(path, size))
	}

	real, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	return real
}

func collectPaths(t *testing.T, r *Report) map[string]string {
	t.Helper()

	got := map[string]string{}
	for row := range r.All() {
		got[row.Path] = row.HumanSize
	}

	return got
}
