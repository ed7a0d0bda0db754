// Package cracker recovers passwords from SHA-1 digests by trying a fixed
// wordlist, optionally combined with a fixed list of salts.
package cracker

import (
	"crypto/sha1"
	"encoding/hex"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/juju/clock"
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("prowler.cracker")

const (
	// WordlistFile holds the candidate passwords, one per line.
	WordlistFile = "top-10000-passwords.txt"
	// SaltlistFile holds the known salts, one per line.
	SaltlistFile = "known-salts.txt"

	// NotFound is the sentinel returned by CrackSHA1Hash when no
	// candidate matches.
	NotFound = "PASSWORD NOT IN DATABASE"

	// ErrPasswordNotFound is returned when no candidate matches.
	ErrPasswordNotFound = errors.ConstError("password not in database")
)

// Config holds the collaborators of a Cracker. The zero value is usable.
type Config struct {
	// FS is where the wordlist and saltlist are read from. Defaults to
	// the process working directory.
	FS fs.FS
	// Clock times crack attempts. Defaults to clock.WallClock.
	Clock clock.Clock
	// Metrics, when set, records candidate and crack counts.
	Metrics *Collector
}

// Cracker matches digests against the wordlist.
type Cracker struct {
	fs      fs.FS
	clock   clock.Clock
	metrics *Collector
}

// New creates a Cracker, filling unset Config fields with defaults.
func New(cfg Config) *Cracker {
	c := &Cracker{
		fs:      cfg.FS,
		clock:   cfg.Clock,
		metrics: cfg.Metrics,
	}
	if c.fs == nil {
		c.fs = os.DirFS(".")
	}
	if c.clock == nil {
		c.clock = clock.WallClock
	}
	return c
}

// Digest returns the lowercase hex SHA-1 digest of s.
func Digest(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Crack returns the first wordlist password whose digest equals hash.
// With useSalts, every password is tried with every salt, prepended
// first and then appended, and the bare password is never tried.
// Both lists are read afresh on every call.
func (c *Cracker) Crack(hash string, useSalts bool) (string, error) {
	passwords, err := ReadList(c.fs, WordlistFile)
	if err != nil {
		return "", errors.Trace(err)
	}
	var salts []string
	if useSalts {
		if salts, err = ReadList(c.fs, SaltlistFile); err != nil {
			return "", errors.Trace(err)
		}
	}

	var attempts int64
	matches := func(candidate string) bool {
		attempts++
		return Digest(candidate) == hash
	}

	start := c.clock.Now()
	password, found := "", false
	// A repeated password can only match if its first occurrence did.
	tried := set.NewStrings()
	for _, p := range passwords {
		if found {
			break
		}
		if tried.Contains(p) {
			continue
		}
		tried.Add(p)

		if !useSalts {
			found = matches(p)
		}
		for _, salt := range salts {
			if matches(salt+p) || matches(p+salt) {
				found = true
				break
			}
		}
		if found {
			password = p
		}
	}
	elapsed := c.clock.Now().Sub(start)
	c.metrics.observeCrack(attempts, found)

	if !found {
		logger.Infof("no match for %s after %s candidates in %v", hash, humanize.Comma(attempts), elapsed)
		return "", errors.Annotatef(ErrPasswordNotFound, "digest %s", hash)
	}
	logger.Infof("matched %s after %s candidates in %v", hash, humanize.Comma(attempts), elapsed)
	return password, nil
}

// CrackSHA1Hash cracks hash using the lists in the working directory.
// It returns NotFound, not an error, when nothing matches; errors are
// reserved for unreadable lists.
func CrackSHA1Hash(hash string, useSalts bool) (string, error) {
	password, err := New(Config{}).Crack(hash, useSalts)
	if errors.Is(err, ErrPasswordNotFound) {
		return NotFound, nil
	}
	if err != nil {
		return "", errors.Trace(err)
	}
	return password, nil
}
