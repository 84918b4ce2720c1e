package finder

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// DefaultBatchSize is the number of directory entries read per ReadDir call.
const DefaultBatchSize = 128

// Entry is a filesystem node produced by the Walker.
type Entry struct {
	// Path is the absolute path of the entry, or of the target for a link
	// to a regular file.
	Path string
	// Name is the base name as found in its directory.
	Name string
	// Size is the size in bytes.
	Size int64
	// Mode holds the type and permission bits.
	Mode fs.FileMode
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.Mode.IsDir() }

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool { return e.Mode.IsRegular() }

// Extension returns the text after the final dot of the name, without the dot.
func (e Entry) Extension() string { return extensionOf(e.Name) }

// WalkOptions configures a Walker.
type WalkOptions struct {
	// BatchSize bounds how many entries are buffered per open directory.
	BatchSize int
	// OnSkip is called with an *EntryReadError for every entry that is skipped.
	OnSkip func(error)
}

// frame is one open directory on the walk stack.
type frame struct {
	path    string
	dir     *os.File
	pending []fs.DirEntry
	done    bool
}

// newEntry builds an Entry from lstat info. A symbolic link to a regular file
// takes the target's size and mode and reports the target's real path; any
// other link keeps its own lstat view.
func newEntry(path, name string, info fs.FileInfo) Entry {
	entry := Entry{
		Path: path,
		Name: name,
		Size: info.Size(),
		Mode: info.Mode(),
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return entry
	}

	target, err := os.Stat(path)
	if err != nil || !target.Mode().IsRegular() {
		return entry
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return entry
	}

	entry.Path = resolved
	entry.Size = target.Size()
	entry.Mode = target.Mode()

	return entry
}

// Walker enumerates a directory tree depth-first, one entry per Next call.
// Directories are yielded before their children and are only opened once the
// walk moves past them. Links to regular files are resolved to their target;
// links to directories are yielded but never descended into.
//
// A Walker is single-pass and not safe for concurrent use. Close releases
// every directory handle still open and must be called if the walk is
// abandoned early.
type Walker struct {
	stack   []*frame
	descend string
	batch   int
	onSkip  func(error)
	closed  bool
}

// NewWalker opens root and returns a Walker positioned before its first child.
// It returns a *PathError if root is missing, not a directory, or unreadable.
func NewWalker(root string, opt WalkOptions) (*Walker, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &PathError{Path: root, Err: err}
	}

	if !info.IsDir() {
		return nil, &PathError{Path: root, Err: ErrNotDirectory}
	}

	dir, err := os.Open(root)
	if err != nil {
		return nil, &PathError{Path: root, Err: err}
	}

	if opt.BatchSize <= 0 {
		opt.BatchSize = DefaultBatchSize
	}

	return &Walker{
		stack:  []*frame{{path: root, dir: dir}},
		batch:  opt.BatchSize,
		onSkip: opt.OnSkip,
	}, nil
}

// Next returns the next entry, or false once the tree is exhausted or the
// walker is closed. Unreadable entries are reported through OnSkip and skipped.
func (w *Walker) Next() (Entry, bool) {
	if w.closed {
		return Entry{}, false
	}

	if w.descend != "" {
		w.push(w.descend)
		w.descend = ""
	}

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]

		if len(top.pending) == 0 {
			if top.done || !w.fill(top) {
				w.pop()

				continue
			}
		}

		d := top.pending[0]
		top.pending[0] = nil
		top.pending = top.pending[1:]

		path := filepath.Join(top.path, d.Name())

		info, err := d.Info()
		if err != nil {
			w.skip(&EntryReadError{Path: path, Op: "lstat", Err: err})

			continue
		}

		entry := newEntry(path, d.Name(), info)

		if entry.IsDir() {
			w.descend = path
		}

		return entry, true
	}

	return Entry{}, false
}

// All returns an iterator over the remaining entries. The walker is closed
// when the loop finishes, including on break.
func (w *Walker) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		defer w.Close()

		for {
			entry, ok := w.Next()
			if !ok || !yield(entry) {
				return
			}
		}
	}
}

// Depth returns the number of currently open directory handles.
func (w *Walker) Depth() int {
	return len(w.stack)
}

// Close releases all open directory handles. It is safe to call more than once.
func (w *Walker) Close() error {
	var errs []error

	for len(w.stack) > 0 {
		if err := w.pop(); err != nil {
			errs = append(errs, err)
		}
	}

	w.closed = true
	w.descend = ""

	return errors.Join(errs...)
}

// push opens path and puts it on the stack, skipping it if it cannot be opened.
func (w *Walker) push(path string) {
	dir, err := os.Open(path)
	if err != nil {
		w.skip(&EntryReadError{Path: path, Op: "open", Err: err})

		return
	}

	w.stack = append(w.stack, &frame{path: path, dir: dir})
}

// pop closes the top frame and removes it from the stack.
func (w *Walker) pop() error {
	top := w.stack[len(w.stack)-1]
	w.stack[len(w.stack)-1] = nil
	w.stack = w.stack[:len(w.stack)-1]

	return top.dir.Close()
}

// fill reads the next batch of entries into f and reports whether any arrived.
// A read error marks the frame done after its partial batch is consumed.
func (w *Walker) fill(f *frame) bool {
	entries, err := f.dir.ReadDir(w.batch)
	if err != nil {
		f.done = true

		if !errors.Is(err, io.EOF) {
			w.skip(&EntryReadError{Path: f.path, Op: "readdir", Err: err})
		}
	}

	f.pending = entries

	return len(entries) > 0
}

func (w *Walker) skip(err error) {
	if w.onSkip != nil {
		w.onSkip(err)
	}
}
