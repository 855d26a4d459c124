package store

import (
	"errors"
	"time"
)

// ErrStoreClosed is returned by backends that have been closed.
var ErrStoreClosed = errors.New("cookie store is closed")

// Backend is the storage contract behind a cookie store. Read returns the
// raw "name=value" entries currently held; Write commits one formatted
// cookie entry. Both are synchronous: every operation is a bounded
// computation over small in-memory strings.
type Backend interface {
	// Read returns the raw cookie entries, in order.
	Read() ([]string, error)

	// Write commits a formatted cookie entry and returns it.
	Write(entry string, meta Metadata) (string, error)
}

// Metadata describes a single write intent, so backends can react
// differently to sets vs removals without re-parsing the formatted entry.
type Metadata struct {
	Removal      bool
	EncodedKey   string
	EncodedValue string
	Options      Options
}

// Options are the cookie attributes recognized on write. Absent fields
// omit the attribute.
type Options struct {
	Expires string // Expires attribute, e.g. "Thu, 01 Jan 1970 00:00:01 GMT"
	Path    string // Path attribute
	Domain  string // Domain attribute
	Secure  bool   // appends the bare "secure" flag
}

// Expires formats a time for use as Options.Expires.
func Expires(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 2006 15:04:05") + " GMT"
}
