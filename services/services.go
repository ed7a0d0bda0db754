// Package services holds the static table of well-known TCP ports used to
// label open ports in scan reports.
package services

import (
	_ "embed"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Unknown is the name reported for ports missing from the table.
const Unknown = "unknown"

//go:embed services.yaml
var servicesYAML []byte

// Table maps port numbers to service names. It is never mutated after
// construction.
type Table struct {
	byPort map[int]string
}

// Default is the table built from the embedded service list.
var Default = mustParse(servicesYAML)

// Parse decodes a YAML mapping of port number to service name.
func Parse(data []byte) (*Table, error) {
	byPort := make(map[int]string)
	if err := yaml.Unmarshal(data, &byPort); err != nil {
		return nil, errors.Annotate(err, "decoding service table")
	}
	for p, name := range byPort {
		if name == "" {
			return nil, errors.NotValidf("empty service name for port %d", p)
		}
	}
	return &Table{byPort: byPort}, nil
}

func mustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the service name for port, or Unknown.
func (t *Table) Lookup(port int) string {
	if name, ok := t.byPort[port]; ok {
		return name
	}
	return Unknown
}

// Len returns the number of ports in the table.
func (t *Table) Len() int {
	return len(t.byPort)
}

// Lookup returns the service name for port from the Default table.
func Lookup(port int) string {
	return Default.Lookup(port)
}
