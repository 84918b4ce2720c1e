package finder

import (
	"io"
	"iter"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Row is one matching file.
type Row struct {
	// Path is the absolute path of the file.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
	// HumanSize is Size formatted by HumanSize.
	HumanSize string `json:"human_size"`
}

// Progress holds running counters for a scan.
type Progress struct {
	// Visited is the number of entries produced by the walker.
	Visited int64 `json:"visited"`
	// Matched is the number of rows produced so far.
	Matched int64 `json:"matched"`
	// Skipped is the number of unreadable entries.
	Skipped int64 `json:"skipped"`
}

// Options configures a Scan.
type Options struct {
	// Debug enables the debug trace.
	Debug bool
	// Log receives the debug trace. Defaults to stderr.
	Log io.Writer
	// OnSkip is called for each entry skipped with an *EntryReadError.
	OnSkip func(error)
	// Progress is called from Next at most once per ProgressInterval.
	Progress func(Progress)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// Report is a lazy, single-pass sequence of Rows. Each call to Next walks
// only as far as the next match.
type Report struct {
	cfg      Config
	walker   *Walker
	log      logger
	row      Row
	stats    Progress
	progress func(Progress)
	interval time.Duration
	lastTick time.Time
	onSkip   func(error)
	finished bool
}

// Find scans root for files with the given extension larger than minSizeMB
// megabytes. It is shorthand for NewConfig followed by Scan with no options.
func Find(root, extension string, minSizeMB int64) (*Report, error) {
	cfg, err := NewConfig(root, extension, minSizeMB)
	if err != nil {
		return nil, err
	}

	return Scan(cfg, Options{})
}

// Scan opens the root of cfg and returns a Report over its matches. It fails
// with a *PathError before producing any row if the root cannot be walked.
func Scan(cfg Config, opt Options) (*Report, error) {
	report := &Report{
		cfg:      cfg,
		log:      newLogger(opt.Debug, opt.Log),
		progress: opt.Progress,
		interval: opt.ProgressInterval,
		onSkip:   opt.OnSkip,
	}

	if report.interval <= 0 {
		report.interval = DefaultProgressInterval
	}

	walker, err := NewWalker(cfg.Root(), WalkOptions{OnSkip: report.skip})
	if err != nil {
		return nil, err
	}

	report.walker = walker
	report.lastTick = time.Now()

	report.log.printf("scanning %s for *.%s larger than %d bytes", cfg.Root(), cfg.Extension(), cfg.MinSize())

	return report, nil
}

// Next advances to the next matching file. It returns false when the tree is
// exhausted, after which the report is closed.
func (r *Report) Next() bool {
	if r.finished {
		return false
	}

	for {
		entry, ok := r.walker.Next()
		if !ok {
			r.finished = true
			r.log.printf("done: %d entries, %d matches, %d skipped",
				r.stats.Visited, r.stats.Matched, r.stats.Skipped)
			r.Close()

			return false
		}

		r.stats.Visited++
		r.tick()

		if entry.IsDir() {
			r.log.printf("descending into %s", entry.Path)
		}

		if !r.cfg.Match(entry) {
			continue
		}

		r.stats.Matched++
		r.row = Row{
			Path:      entry.Path,
			Size:      entry.Size,
			HumanSize: HumanSize(entry.Size),
		}

		return true
	}
}

// Row returns the row found by the last successful Next.
func (r *Report) Row() Row {
	return r.row
}

// Stats returns the counters accumulated so far.
func (r *Report) Stats() Progress {
	return r.stats
}

// Close releases any open directory handles. Calling it early ends the report.
func (r *Report) Close() error {
	r.finished = true

	return r.walker.Close()
}

// All returns an iterator over the remaining rows that closes the report
// when the loop ends.
func (r *Report) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		defer r.Close()

		for r.Next() {
			if !yield(r.row) {
				return
			}
		}
	}
}

func (r *Report) tick() {
	if r.progress == nil {
		return
	}

	if now := time.Now(); now.Sub(r.lastTick) >= r.interval {
		r.lastTick = now
		r.progress(r.stats)
	}
}

func (r *Report) skip(err error) {
	r.stats.Skipped++
	r.log.printf("skipping unreadable entry: %v", err)

	if r.onSkip != nil {
		r.onSkip(err)
	}
}
