package store

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// entryName returns the raw name of an entry, the text before the first "=".
func entryName(entry string) string {
	if i := strings.IndexByte(entry, '='); i >= 0 {
		return entry[:i]
	}
	return entry
}

// entryExpired reports whether the attribute tail of a formatted entry
// carries an Expires date in the past.
func entryExpired(attrs string) bool {
	for _, attr := range splitLine(attrs) {
		attr = strings.TrimSpace(attr)
		if len(attr) < len("expires=") {
			continue
		}
		if !strings.EqualFold(attr[:len("expires=")], "expires=") {
			continue
		}
		t, err := http.ParseTime(attr[len("expires="):])
		if err != nil {
			continue
		}
		return t.Before(time.Now())
	}
	return false
}

// applyEntry merges one formatted cookie entry into a cookie line the way a
// browser-style host interprets an assignment: update the named entry in
// place, append it when new, and delete it when the write is a removal or
// the Expires attribute lies in the past. Only the "name=value" pair is
// retained; attributes are interpreted and dropped.
func applyEntry(line, entry string, meta Metadata) string {
	pair := entry
	var attrs string
	if i := strings.IndexByte(entry, ';'); i >= 0 {
		pair, attrs = entry[:i], entry[i+1:]
	}
	pair = strings.TrimSpace(pair)

	name := entryName(pair)
	remove := meta.Removal || entryExpired(attrs)

	entries := splitLine(line)
	out := make([]string, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		if entryName(e) != name {
			out = append(out, e)
			continue
		}
		if remove || replaced {
			continue
		}
		out = append(out, pair)
		replaced = true
	}
	if !remove && !replaced {
		out = append(out, pair)
	}
	return strings.Join(out, "; ")
}

// JarStore is the default backend: an in-memory cookie line with
// browser-style write semantics, standing in for a host environment's
// live cookie header.
type JarStore struct {
	mu   sync.Mutex
	line string
}

// NewJarStore creates an empty in-memory jar.
func NewJarStore() *JarStore {
	return &JarStore{}
}

// NewJarStoreFrom creates a jar seeded with an existing cookie line.
func NewJarStoreFrom(line string) *JarStore {
	return &JarStore{line: line}
}

func (j *JarStore) Read() ([]string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return splitLine(j.line), nil
}

func (j *JarStore) Write(entry string, meta Metadata) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.line = applyEntry(j.line, entry, meta)
	return entry, nil
}

// Line returns the current cookie line.
func (j *JarStore) Line() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.line
}
