// Package finder locates files by extension and minimum size.
//
// It walks directory trees depth-first with a pull-based Walker that holds
// one directory handle per level, filters regular files through extension
// and size predicates, and streams matches as Rows in traversal order.
// Summarize offers an eager, parallel alternative built on fastwalk that
// aggregates the same matches instead of streaming them.
package finder
