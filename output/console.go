package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"

	"prowler/services"
)

// Header is the column header line of a report.
const Header = "PORT     SERVICE"

// WriteReport writes the open-port report for a scanned host to w.
// The target line names the host as "hostname (ip)", or just ip when
// the host did not reverse-resolve to a different name.
func WriteReport(w io.Writer, hostname, ip string, open []int) error {
	if hostname == ip {
		fmt.Fprintf(w, "Open ports for %s\n", ip)
	} else {
		fmt.Fprintf(w, "Open ports for %s (%s)\n", hostname, ip)
	}
	fmt.Fprintln(w, Header)

	// A 9 wide first column left-justifies ports in 8 characters plus a
	// separating space.
	tw := tabwriter.NewWriter(w, 9, 0, 1, ' ', 0)
	for _, p := range open {
		fmt.Fprintf(tw, "%d\t%s\n", p, services.Lookup(p))
	}
	return tw.Flush()
}

// Report renders WriteReport into a string with trailing whitespace
// removed.
func Report(hostname, ip string, open []int) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = WriteReport(&buf, hostname, ip, open)
	return strings.TrimRightFunc(buf.String(), unicode.IsSpace)
}
