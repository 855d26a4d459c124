package store

import (
	"strings"
	"sync"
)

// splitLine tokenizes a cookie line on ";" followed by optional
// whitespace. An empty line holds no entries.
func splitLine(line string) []string {
	if line == "" {
		return nil
	}
	var entries []string
	rest := line
	for {
		i := strings.IndexByte(rest, ';')
		if i < 0 {
			return append(entries, rest)
		}
		entries = append(entries, rest[:i])
		rest = rest[i+1:]
		for len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
			rest = rest[1:]
		}
	}
}

// LineStore is the minimal backend: a mutable cookie line where a write
// replaces the whole line with the committed entry. It models a raw string
// snapshot; writes propagate nowhere else.
type LineStore struct {
	mu   sync.Mutex
	line string
}

// NewLineStore wraps an initial cookie line.
func NewLineStore(line string) *LineStore {
	return &LineStore{line: line}
}

func (ls *LineStore) Read() ([]string, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return splitLine(ls.line), nil
}

func (ls *LineStore) Write(entry string, _ Metadata) (string, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.line = entry
	return entry, nil
}

// Line returns the current cookie line.
func (ls *LineStore) Line() string {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return ls.line
}
