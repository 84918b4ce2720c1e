package finder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MegabyteInBytes is the multiplier applied to the megabyte threshold.
const MegabyteInBytes = 1 << 20

// Config is an immutable scan configuration.
type Config struct {
	root      string
	extension string
	minSize   int64
}

// NewConfig builds a Config from a root path, a target extension and a
// minimum size in megabytes. The size is converted to bytes here.
//
// The extension is compared case-insensitively; a single leading dot is
// accepted and dropped. The root is made absolute with symlinks resolved
// when possible, but its existence is only checked once a scan starts.
func NewConfig(root, extension string, minSizeMB int64) (Config, error) {
	if minSizeMB < 0 {
		return Config{}, fmt.Errorf("%w: minimum size %d MB is negative", ErrInvalidConfig, minSizeMB)
	}

	if minSizeMB > (1<<63-1)/MegabyteInBytes {
		return Config{}, fmt.Errorf("%w: minimum size %d MB overflows", ErrInvalidConfig, minSizeMB)
	}

	if root == "" {
		root = "."
	}

	return Config{
		root:      resolveRoot(root),
		extension: strings.ToLower(strings.TrimPrefix(extension, ".")),
		minSize:   minSizeMB * MegabyteInBytes,
	}, nil
}

// Root returns the absolute root path.
func (c Config) Root() string { return c.root }

// Extension returns the lowercase target extension without a dot.
func (c Config) Extension() string { return c.extension }

// MinSize returns the size threshold in bytes. Matches must be strictly larger.
func (c Config) MinSize() int64 { return c.minSize }

// Match reports whether e satisfies both the extension and the size predicate.
func (c Config) Match(e Entry) bool {
	return MatchExtension(e, c.extension) && MatchSize(e, c.minSize)
}

// resolveRoot cleans and absolutizes path, resolving symlinks if it exists.
// Failures fall back to the cleaned input so the scan can report them.
func resolveRoot(path string) string {
	path = filepath.Clean(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}

	return abs
}
