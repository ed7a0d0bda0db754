package cracker

import (
	"io/fs"
	"strings"

	"github.com/juju/errors"
)

// lineBreaks folds CRLF and lone CR line endings into LF.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadList reads name from fsys, returning one entry per line with
// surrounding whitespace trimmed. LF, CRLF and lone CR all end a line.
// Blank lines are kept as empty entries.
func ReadList(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", name)
	}
	text := lineBreaks.Replace(string(data))
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	logger.Debugf("read %d entries from %s", len(lines), name)
	return lines, nil
}
