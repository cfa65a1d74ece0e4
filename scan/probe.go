package scan

import (
	"context"
	"net"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// probe attempts a full TCP handshake against a single (target, port) pair.
// Any failure at all - refusal, timeout, resolution error, fd exhaustion -
// collapses to PortClosed: the scan must finish every pair, so diagnostic
// fidelity is traded for robustness here.
func (s *Scanner) probe(ctx context.Context, target string, port int) Result {
	result := Result{
		Target: target,
		Port:   port,
		State:  PortClosed,
	}

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(target, strconv.Itoa(port)))
	if err != nil {
		log.Debugf("Probe %s:%d failed: %s", target, port, err)
		return result
	}

	// Pure connect scan: nothing is written or read.
	conn.Close()
	result.State = PortOpen
	return result
}
