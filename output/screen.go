package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"sweep/scan"
)

// Screen renders a scan report as plain text, one line per probed pair.
type Screen struct {
	writer   io.Writer
	openOnly bool
}

func NewScreen(w io.Writer, openOnly bool) *Screen {
	return &Screen{
		writer:   w,
		openOnly: openOnly,
	}
}

func (s *Screen) Update(report scan.Report) error {
	targets := strings.Join(report.Targets, " | ")

	fmt.Fprintf(s.writer, "Starting TCP connect scan at %s\n", report.StartTime.Format(time.ANSIC))
	fmt.Fprintf(s.writer, "Scan report for %s\n\n", targets)

	for _, result := range report.Results {
		if s.openOnly && result.State != scan.PortOpen {
			continue
		}
		fmt.Fprintf(s.writer, "%7s %s:%d --> %s\n", "[+]", result.Target, result.Port, result.State)
	}

	fmt.Fprintf(s.writer, "\nTCP connect scan of %d ports for %s completed in %.3f seconds\n",
		report.TotalProbes(), targets, report.Elapsed().Seconds())

	return nil
}
