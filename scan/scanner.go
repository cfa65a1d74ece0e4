package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// DefaultTimeout bounds a single connect attempt.
const DefaultTimeout = time.Second * 3

// Scanner probes every (target, port) pair in the cross product of its
// target and port lists and notifies registered observers with the
// aggregate report. Targets and ports are taken as given: duplicates are
// probed again, order is preserved for reporting.
type Scanner struct {
	targets   []string
	ports     []int
	timeout   time.Duration
	maxProbes int
	observers []Observer

	// SortResults orders results by (target, port) before notification.
	// When false, results are in completion order.
	SortResults bool

	StartTime time.Time
	EndTime   time.Time
	Results   []Result
}

// NewScanner creates a connect scanner for the given targets and ports. A
// maxProbes of 0 means every probe is launched at once; a positive value
// bounds the number in flight without changing which pairs are probed.
func NewScanner(targets []string, ports []int, timeout time.Duration, maxProbes int) *Scanner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scanner{
		targets:   targets,
		ports:     ports,
		timeout:   timeout,
		maxProbes: maxProbes,
	}
}

// Register appends an observer to the notification list. Observers are not
// deduplicated; registering one twice notifies it twice. Registration after
// Execute only affects subsequent Execute calls.
func (s *Scanner) Register(observer Observer) {
	s.observers = append(s.observers, observer)
}

// Execute runs every probe concurrently, blocks until all have completed,
// then notifies each observer in registration order with the same report.
// It may be called repeatedly; each call replaces the previous results. The
// returned error can only originate from an observer.
func (s *Scanner) Execute(ctx context.Context) error {
	s.StartTime = time.Now()
	s.Results = s.scanTargets(ctx)
	s.EndTime = time.Now()

	report := Report{
		ID:        uuid.New().String(),
		Targets:   s.targets,
		Ports:     s.ports,
		Results:   s.Results,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}

	for _, observer := range s.observers {
		if err := observer.Update(report); err != nil {
			return fmt.Errorf("observer failed: %w", err)
		}
	}

	return nil
}

func (s *Scanner) scanTargets(ctx context.Context) []Result {
	results := make([]Result, 0, len(s.ports)*len(s.targets))
	resultChan := make(chan Result)
	doneChan := make(chan struct{})

	go func() {
		for result := range resultChan {
			results = append(results, result)
		}
		close(doneChan)
	}()

	var sem *semaphore.Weighted
	if s.maxProbes > 0 {
		sem = semaphore.NewWeighted(int64(s.maxProbes))
	}

	log.Debugf("Probing %d ports across %d targets...", len(s.ports), len(s.targets))

	wg := &sync.WaitGroup{}
	for _, port := range s.ports {
		for _, target := range s.targets {
			wg.Add(1)
			go func(target string, port int) {
				defer wg.Done()
				if sem != nil {
					if err := sem.Acquire(ctx, 1); err != nil {
						// Cancelled before the probe could start; the pair
						// still gets its outcome.
						resultChan <- Result{Target: target, Port: port, State: PortClosed}
						return
					}
					defer sem.Release(1)
				}
				resultChan <- s.probe(ctx, target, port)
			}(target, port)
		}
	}

	wg.Wait()
	close(resultChan)
	<-doneChan

	if s.SortResults {
		report := Report{Results: results}
		results = report.Sorted()
	}

	return results
}
