package finder

import (
	"context"
	"io"
	"io/fs"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultTopN is the number of largest matches kept by Summarize.
const DefaultTopN = 10

// Summary holds aggregate statistics for the matches under a root.
type Summary struct {
	// Root is the scanned directory.
	Root string `json:"root"`
	// Extension is the target extension.
	Extension string `json:"extension"`
	// MinSize is the threshold in bytes.
	MinSize int64 `json:"min_size"`
	// Visited is the number of entries seen.
	Visited int64 `json:"visited"`
	// Matched is the number of matching files.
	Matched int64 `json:"matched"`
	// MatchedBytes is the cumulative size of all matches.
	MatchedBytes int64 `json:"matched_bytes"`
	// Skipped is the number of unreadable entries.
	Skipped int64 `json:"skipped"`
	// Largest contains the TopN largest matches, largest first.
	Largest []Row `json:"largest"`
	// Elapsed is the total time taken.
	Elapsed time.Duration `json:"elapsed"`
	// TopN is the number of largest matches tracked.
	TopN int `json:"top_n"`
}

// SummaryOptions configures Summarize.
type SummaryOptions struct {
	// TopN is the number of largest matches to keep (0 = DefaultTopN).
	TopN int
	// Workers is the number of walk goroutines (0 = fastwalk default).
	Workers int
	// Debug enables the debug trace.
	Debug bool
	// Log receives the debug trace. Defaults to stderr.
	Log io.Writer
}

// collector aggregates matches from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu           sync.Mutex // Protect concurrent access
	visited      int64
	matched      int64
	matchedBytes int64
	skipped      int64
	largest      []Row
}

func (c *collector) visit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visited++
}

func (c *collector) skip() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped++
}

func (c *collector) add(path string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.matched++
	c.matchedBytes += size

	// Collect all matches, we'll sort and trim later
	c.largest = append(c.largest, Row{Path: path, Size: size})
}

// finalize sorts the matches by size (largest first, then by path) and keeps
// the top n.
func (c *collector) finalize(n int) []Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.Slice(c.largest, func(i, j int) bool {
		if c.largest[i].Size != c.largest[j].Size {
			return c.largest[i].Size > c.largest[j].Size
		}

		return c.largest[i].Path < c.largest[j].Path
	})

	if len(c.largest) > n {
		c.largest = c.largest[:n]
	}

	for i := range c.largest {
		c.largest[i].HumanSize = HumanSize(c.largest[i].Size)
	}

	return c.largest
}

// Summarize walks the root of cfg in parallel and aggregates its matches.
// Unlike Scan it visits the whole tree before returning. Links to regular
// files are resolved as in Scan, linked directories are not descended into,
// and unreadable entries are counted and skipped.
//
// The walk can be cancelled via ctx.
func Summarize(ctx context.Context, cfg Config, opt SummaryOptions) (*Summary, error) {
	log := newLogger(opt.Debug, opt.Log)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(cfg.Root()); err != nil {
		return nil, &PathError{Path: cfg.Root(), Err: err}
	} else if !statInfo.IsDir() {
		return nil, &PathError{Path: cfg.Root(), Err: ErrNotDirectory}
	}

	if opt.TopN <= 0 {
		opt.TopN = DefaultTopN
	}

	collector := &collector{}

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Workers,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, cfg.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("error accessing path %s: %v", path, err)
			collector.skip()

			return nil // Skip unreadable entries
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// The root itself is not an entry of its own tree
		if path == cfg.Root() {
			return nil
		}

		collector.visit()

		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		info, err := lstat(path, d)
		if err != nil {
			log.printf("error reading %s: %v", path, err)
			collector.skip()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		entry := newEntry(path, d.Name(), info)
		if !cfg.Match(entry) {
			return nil
		}

		collector.add(entry.Path, entry.Size)

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	summary := &Summary{
		Root:         cfg.Root(),
		Extension:    cfg.Extension(),
		MinSize:      cfg.MinSize(),
		Visited:      collector.visited,
		Matched:      collector.matched,
		MatchedBytes: collector.matchedBytes,
		Skipped:      collector.skipped,
		Largest:      collector.finalize(opt.TopN),
		Elapsed:      time.Since(start),
		TopN:         opt.TopN,
	}

	log.printf("summary: %d entries, %d matches, %d skipped in %v",
		summary.Visited, summary.Matched, summary.Skipped, summary.Elapsed)

	return summary, nil
}

// lstat returns the unfollowed info of d, reading links from disk.
func lstat(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		return os.Lstat(path)
	}

	return d.Info()
}
