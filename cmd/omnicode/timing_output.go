package main

import (
	"fmt"
	"io"

	"omnicode/internal/driver"
)

// printTimings writes per-file phase durations. Cached results carry none.
func printTimings(out io.Writer, results []*driver.Result) {
	if out == nil {
		return
	}
	for _, r := range results {
		if r.Cached {
			fmt.Fprintf(out, "%s: cached\n", r.Path)
			continue
		}
		if r.Timing == nil {
			continue
		}
		fmt.Fprintf(out, "%s: %.2f ms\n", r.Path, r.Timing.TotalMS)
		for _, p := range r.Timing.Phases {
			fmt.Fprintf(out, "  %-10s %.2f ms\n", p.Name, p.DurationMS)
		}
	}
}
