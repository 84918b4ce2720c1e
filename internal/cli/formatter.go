package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/filefinder/internal/finder"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// RowPrinter writes matches one at a time.
type RowPrinter struct {
	writer io.Writer
	enc    *json.Encoder
}

// NewRowPrinter returns a printer for the given output format. The json
// format writes one object per line; anything else writes "path - size".
func NewRowPrinter(format string, writer io.Writer) *RowPrinter {
	printer := &RowPrinter{writer: writer}
	if format == "json" {
		printer.enc = json.NewEncoder(writer)
	}

	return printer
}

// Print writes a single row.
func (p *RowPrinter) Print(row finder.Row) error {
	if p.enc != nil {
		if err := p.enc.Encode(row); err != nil {
			return fmt.Errorf("encoding JSON output: %w", err)
		}

		return nil
	}

	_, err := fmt.Fprintf(p.writer, "%s - %s\n", row.Path, row.HumanSize)

	return err
}

// PrintJSON outputs a summary in JSON format.
func PrintJSON(summary *finder.Summary, writer io.Writer) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs a summary in human-readable table format.
func PrintTable(summary *finder.Summary, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nLargest matches:\t\t")

	for i, row := range summary.Largest {
		pct := 0.0
		if summary.MatchedBytes > 0 {
			pct = 100.0 * float64(row.Size) / float64(summary.MatchedBytes)
		}

		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n", i+1, row.Path, row.HumanSize, pct)
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Root:\t%s\n", summary.Root)
	fmt.Fprintf(w, "Filter:\t*.%s > %s\n", summary.Extension, finder.HumanSize(summary.MinSize))
	fmt.Fprintf(w, "Entries scanned:\t%d\n", summary.Visited)
	fmt.Fprintf(w, "Matching files:\t%d\n", summary.Matched)
	fmt.Fprintf(w, "Matching size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(summary.MatchedBytes)), summary.MatchedBytes) //nolint:gosec // Bytes is always positive

	if summary.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:\t%d\n", summary.Skipped)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", summary.Elapsed)

	return w.Flush()
}
