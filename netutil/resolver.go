package netutil

import (
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("prowler.netutil")

const (
	// ErrInvalidIPAddress is returned for a dotted-quad target with an
	// octet outside 0..255.
	ErrInvalidIPAddress = errors.ConstError("invalid IP address")

	// ErrInvalidHostname is returned when a target does not resolve to an
	// IPv4 address.
	ErrInvalidHostname = errors.ConstError("invalid hostname")
)

// Resolver performs forward and reverse lookups.
// *net.Resolver satisfies it.
type Resolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Address is a target resolved for scanning.
type Address struct {
	// Target is the input as given by the caller.
	Target string
	// IP is the numeric IPv4 address Target resolved to.
	IP string
	// Hostname is the reverse-resolved name of IP, or IP itself when
	// reverse resolution fails.
	Hostname string
}

// IsInvalidIP reports whether target looks like a dotted-quad IPv4 literal
// with an octet out of range. Fields are checked left to right and the
// first non-numeric field makes the target a hostname candidate, so only
// targets of four dot-separated fields can be rejected.
func IsInvalidIP(target string) bool {
	parts := strings.Split(target, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if !isDigits(part) {
			return false
		}
		// Atoi fails only on overflow here, which is out of range too.
		v, err := strconv.Atoi(part)
		if err != nil || v > 255 {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Resolve validates target and resolves it to its first IPv4 address and
// a display hostname. Reverse resolution failures are never returned.
func Resolve(ctx context.Context, r Resolver, target string) (Address, error) {
	if IsInvalidIP(target) {
		return Address{}, errors.Annotatef(ErrInvalidIPAddress, "target %q", target)
	}

	ip, err := ResolveTargetToIPv4(ctx, r, target)
	if err != nil {
		return Address{}, errors.Trace(err)
	}
	return Address{
		Target:   target,
		IP:       ip,
		Hostname: ReverseName(ctx, r, ip),
	}, nil
}

// ResolveTargetToIPv4 resolves the given target (hostname or IP string)
// and returns the first IPv4 address as a string.
func ResolveTargetToIPv4(ctx context.Context, r Resolver, target string) (string, error) {
	ips, err := r.LookupIP(ctx, "ip4", target)
	if err != nil {
		return "", errors.Annotatef(ErrInvalidHostname, "resolving %q: %v", target, err)
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", errors.Annotatef(ErrInvalidHostname, "no A records found for %q", target)
}

// ReverseName returns the first name ip reverse-resolves to, without the
// trailing dot. It falls back to ip itself.
func ReverseName(ctx context.Context, r Resolver, ip string) string {
	names, err := r.LookupAddr(ctx, ip)
	if err != nil {
		logger.Debugf("reverse lookup of %s failed: %v", ip, err)
		return ip
	}
	for _, name := range names {
		if name = strings.TrimSuffix(name, "."); name != "" {
			return name
		}
	}
	logger.Debugf("reverse lookup of %s returned no names", ip)
	return ip
}
