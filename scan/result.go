package scan

import (
	"fmt"
	"sort"
	"time"
)

type PortState uint8

const (
	PortClosed PortState = iota
	PortOpen
)

func (s PortState) String() string {
	if s == PortOpen {
		return "open"
	}
	return "closed"
}

// MarshalText makes states render as "open"/"closed" in JSON reports.
func (s PortState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PortState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "open":
		*s = PortOpen
	case "closed":
		*s = PortClosed
	default:
		return fmt.Errorf("unknown port state '%s'", text)
	}
	return nil
}

// Result is the outcome of a single connect probe. Exactly one Result is
// produced per (target, port) pair submitted to the scanner.
type Result struct {
	Target string    `json:"target"`
	Port   int       `json:"port"`
	State  PortState `json:"state"`
}

func (r Result) String() string {
	return fmt.Sprintf("%s:%d --> %s", r.Target, r.Port, r.State)
}

// Report is the full outcome of one scan run, handed to every registered
// observer. Results are in completion order unless the scanner was asked to
// sort them.
type Report struct {
	ID        string    `json:"id"`
	Targets   []string  `json:"targets"`
	Ports     []int     `json:"ports"`
	Results   []Result  `json:"results"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (r Report) Elapsed() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// TotalProbes is the size of the targets×ports cross product.
func (r Report) TotalProbes() int {
	return len(r.Targets) * len(r.Ports)
}

func (r Report) OpenCount() int {
	count := 0
	for _, result := range r.Results {
		if result.State == PortOpen {
			count++
		}
	}
	return count
}

// Sorted returns a copy of the results ordered by (target, port), for
// consumers that need a deterministic order regardless of completion order.
func (r Report) Sorted() []Result {
	results := make([]Result, len(r.Results))
	copy(results, r.Results)
	sort.Slice(results, func(i, j int) bool {
		if results[i].Target != results[j].Target {
			return results[i].Target < results[j].Target
		}
		return results[i].Port < results[j].Port
	})
	return results
}
