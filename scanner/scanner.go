package scanner

import (
	"context"
	"net"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"golang.org/x/net/proxy"

	"prowler/netutil"
	"prowler/output"
	"prowler/port"
)

var logger = loggo.GetLogger("prowler.scanner")

// ErrScanFailed is returned when a scan fails for a reason other than
// target validation or resolution.
const ErrScanFailed = errors.ConstError("scan failed")

// Config holds the collaborators of a Scanner. The zero value is usable.
type Config struct {
	// Dialer opens the probe connections. Defaults to proxy.Direct.
	Dialer proxy.ContextDialer
	// Resolver performs forward and reverse lookups. Defaults to
	// net.DefaultResolver.
	Resolver netutil.Resolver
	// Clock times probes and scans. Defaults to clock.WallClock.
	Clock clock.Clock
	// Metrics, when set, records probe and scan outcomes.
	Metrics *Collector
}

// Scanner sweeps a port range on a single host, one port at a time.
type Scanner struct {
	dialer   proxy.ContextDialer
	resolver netutil.Resolver
	clock    clock.Clock
	metrics  *Collector
}

// New creates a Scanner, filling unset Config fields with defaults.
func New(cfg Config) *Scanner {
	s := &Scanner{
		dialer:   cfg.Dialer,
		resolver: cfg.Resolver,
		clock:    cfg.Clock,
		metrics:  cfg.Metrics,
	}
	if s.dialer == nil {
		s.dialer = proxy.Direct
	}
	if s.resolver == nil {
		s.resolver = net.DefaultResolver
	}
	if s.clock == nil {
		s.clock = clock.WallClock
	}
	return s
}

// Scan is the outcome of a completed sweep.
type Scan struct {
	netutil.Address

	// Range is the requested port range.
	Range port.Range
	// Open holds the ports that accepted a connection, ascending.
	Open []int
	// Started is when probing began, Duration how long it took.
	Started  time.Time
	Duration time.Duration
}

// Report renders the verbose open-port report for the scan.
func (s Scan) Report() string {
	return output.Report(s.Hostname, s.IP, s.Open)
}

// Scan validates and resolves target, then probes every port of r in
// ascending order. It returns either a complete scan or an error, never
// a partial list of open ports.
func (s *Scanner) Scan(ctx context.Context, target string, r port.Range) (Scan, error) {
	addr, err := netutil.Resolve(ctx, s.resolver, target)
	if err != nil {
		s.metrics.observeScan(err)
		return Scan{}, errors.Trace(err)
	}
	logger.Debugf("scanning %s (%s) ports %s", addr.Hostname, addr.IP, r)

	// Ports outside 1..65535 are closed without dialing, so only the
	// dialable part of the range is walked.
	dialable := r.Clip()

	result := Scan{
		Address: addr,
		Range:   r,
		Open:    make([]int, 0),
		Started: s.clock.Now(),
	}
	for _, p := range dialable.Ports() {
		if err := ctx.Err(); err != nil {
			err = errors.Annotatef(ErrScanFailed, "scanning %s at port %d: %v", addr.IP, p, err)
			s.metrics.observeScan(err)
			return Scan{}, err
		}
		if s.Probe(ctx, addr.IP, p) {
			result.Open = append(result.Open, p)
		}
	}
	// A cancellation during the last probe would otherwise read as closed.
	if err := ctx.Err(); err != nil {
		err = errors.Annotatef(ErrScanFailed, "scanning %s: %v", addr.IP, err)
		s.metrics.observeScan(err)
		return Scan{}, err
	}
	result.Duration = s.clock.Now().Sub(result.Started)
	s.metrics.observeScan(nil)

	logger.Infof("scanned %s ports on %s in %v, %s open",
		humanize.Comma(int64(dialable.Len())), addr.IP, result.Duration, humanize.Comma(int64(len(result.Open))))
	return result, nil
}

// GetOpenPorts scans target over r and shapes the outcome: an error,
// the open ports, or, when verbose, the rendered report.
func (s *Scanner) GetOpenPorts(ctx context.Context, target string, r port.Range, verbose bool) Result {
	scan, err := s.Scan(ctx, target, r)
	if err != nil {
		return Result{Err: err}
	}
	if verbose {
		return Result{Verbose: true, Report: scan.Report()}
	}
	return Result{Ports: scan.Open}
}
