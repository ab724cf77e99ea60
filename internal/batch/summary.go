package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Summary aggregates the outcome of one run.
type Summary struct {
	Total     int
	Processed int
	Succeeded int
	Failed    int
	Skipped   int
	Elapsed   time.Duration
}

// Print writes a human-readable summary block to w.
func (s Summary) Print(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	warn := color.New(color.FgYellow)

	header.Fprintln(w, "Catalog population summary")
	if s.Total == 0 {
		warn.Fprintln(w, "  no video files found")
	}
	fmt.Fprintf(w, "  total:     %d\n", s.Total)
	fmt.Fprintf(w, "  processed: %d\n", s.Processed)
	ok.Fprintf(w, "  succeeded: %d\n", s.Succeeded)
	if s.Failed > 0 {
		bad.Fprintf(w, "  failed:    %d\n", s.Failed)
	} else {
		fmt.Fprintf(w, "  failed:    %d\n", s.Failed)
	}
	if s.Skipped > 0 {
		warn.Fprintf(w, "  skipped:   %d\n", s.Skipped)
	}
	fmt.Fprintf(w, "  elapsed:   %s\n", s.Elapsed.Round(time.Millisecond))
}
