package port

import "fmt"

const (
	// MinPort and MaxPort bound the ports a TCP connect can target.
	MinPort = 1
	MaxPort = 65535
)

// Range is a closed, inclusive interval of port numbers.
// Bounds are not validated; Clip drops the ports a TCP connect cannot
// target.
type Range struct {
	Start int
	End   int
}

// Ports returns every port from Start to End inclusive, ascending.
// An inverted range yields no ports.
func (r Range) Ports() []int {
	if r.Start > r.End {
		return nil
	}
	out := make([]int, 0, r.End-r.Start+1)
	for p := r.Start; p <= r.End; p++ {
		out = append(out, p)
	}
	return out
}

// Len returns the number of ports in the range.
func (r Range) Len() int {
	if r.Start > r.End {
		return 0
	}
	return r.End - r.Start + 1
}

// Clip returns the part of r that lies within MinPort..MaxPort. The result
// is inverted, and so empty, when r has no such ports.
func (r Range) Clip() Range {
	return Range{Start: max(r.Start, MinPort), End: min(r.End, MaxPort)}
}

// String renders the range as "start-end".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Valid reports whether p is a dialable TCP port.
func Valid(p int) bool {
	return p >= MinPort && p <= MaxPort
}
