package scanner

import (
	"fmt"

	"github.com/juju/errors"

	"prowler/netutil"
)

// Sentinel texts reported for failed scans.
const (
	InvalidIPAddressMessage = "Error: Invalid IP address"
	InvalidHostnameMessage  = "Error: Invalid hostname"
)

// Result is the shaped outcome of GetOpenPorts. Exactly one of Err,
// Ports and Report carries the outcome: Err when the scan failed,
// otherwise Report when Verbose is set, otherwise Ports.
type Result struct {
	Err     error
	Ports   []int
	Verbose bool
	Report  string
}

// String renders the result: the sentinel text of an error, the report,
// or the list of open ports.
func (r Result) String() string {
	switch {
	case r.Err != nil:
		return Sentinel(r.Err)
	case r.Verbose:
		return r.Report
	default:
		return fmt.Sprint(r.Ports)
	}
}

// Sentinel maps a scan error to its sentinel text. Invalid dotted-quad
// targets get InvalidIPAddressMessage; resolution failures and every
// other failure get InvalidHostnameMessage.
func Sentinel(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, netutil.ErrInvalidIPAddress):
		return InvalidIPAddressMessage
	default:
		return InvalidHostnameMessage
	}
}
