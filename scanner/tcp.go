package scanner

import (
	"context"
	"net"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/juju/errors"

	"prowler/port"
)

// ProbeTimeout bounds a single TCP connect attempt.
const ProbeTimeout = 5 * time.Second

// Probe states, as recorded by the metrics collector.
const (
	StateOpen     = "open"
	StateClosed   = "closed"
	StateFiltered = "filtered"
)

// Probe performs a TCP connect to ip:p and reports whether it succeeded.
// The connection is closed before Probe returns. Refusals, timeouts and
// any other dial error all count as closed; ports outside 1..65535 are
// closed without dialing.
func (s *Scanner) Probe(ctx context.Context, ip string, p int) bool {
	if !port.Valid(p) {
		logger.Tracef("tcp port %d out of range for %s", p, ip)
		return false
	}
	addr := net.JoinHostPort(ip, strconv.Itoa(p))

	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	start := s.clock.Now()
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	rtt := s.clock.Now().Sub(start)

	state := classify(err)
	s.metrics.observeProbe(state, rtt)
	if err != nil {
		logger.Tracef("tcp %s %s after %v: %v", state, addr, rtt, err)
		return false
	}
	_ = conn.Close()
	logger.Debugf("tcp connect success %s rtt=%v", addr, rtt)
	return true
}

// classify maps a dial error to a probe state.
func classify(err error) string {
	if err == nil {
		return StateOpen
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return StateClosed
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return StateFiltered
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return StateFiltered
	}
	// Unreachable hosts, resets and the like.
	return StateClosed
}
