package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/filefinder/internal/finder"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func logic(ctx context.Context, options Options, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := finder.NewConfig(options.Path, options.Extension, options.MinSizeMB)
	if err != nil {
		return err
	}

	// Only draw progress when matches go somewhere other than the terminal
	enableProgress := !options.Debug && isTerminal(stderr) && !isTerminal(stdout)

	if options.Summary {
		return summarize(ctx, cfg, options, stdout, stderr, enableProgress)
	}

	return stream(cfg, options, stdout, stderr, enableProgress)
}

// stream prints each match as soon as the walker finds it.
func stream(cfg finder.Config, options Options, stdout, stderr io.Writer, enableProgress bool) error {
	var progressHook func(finder.Progress)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h\r\033[2K\r")

		progressHook = func(p finder.Progress) {
			fmt.Fprintf(stderr, "\r\033[2K%s\r", progressLine(p))
		}
	}

	report, err := finder.Scan(cfg, finder.Options{
		Debug:    options.Debug,
		Log:      stderr,
		Progress: progressHook,
	})
	if err != nil {
		return err
	}
	defer report.Close()

	printer := NewRowPrinter(options.Output, stdout)

	for row := range report.All() {
		if err := printer.Print(row); err != nil {
			return err
		}
	}

	return nil
}

// summarize runs the parallel aggregation and prints the result.
func summarize(ctx context.Context, cfg finder.Config, options Options, stdout, stderr io.Writer, enableProgress bool) error {
	if enableProgress {
		fmt.Fprint(stderr, "Scanning…\r")
		defer fmt.Fprint(stderr, "\r\033[2K\r")
	}

	summary, err := finder.Summarize(ctx, cfg, finder.SummaryOptions{
		TopN:  options.TopN,
		Debug: options.Debug,
		Log:   stderr,
	})
	if err != nil {
		return err
	}

	if options.Output == "json" {
		return PrintJSON(summary, stdout)
	}

	return PrintTable(summary, stdout)
}

func progressLine(p finder.Progress) string {
	return fmt.Sprintf("Scanning… %d entries, %d matches", p.Visited, p.Matched)
}
