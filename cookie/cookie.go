package cookie

import (
	"errors"
	"strings"

	"github.com/codetesla51/cookiestore/store"
)

// Common errors.
var (
	// ErrNotFound signals absence of a key, not a failure.
	ErrNotFound = errors.New("cookie: key not found")

	// ErrInvalidKey signals a rejected Set argument; no write happens.
	ErrInvalidKey = errors.New("cookie: invalid key")
)

// expiredStamp is the fixed Expires date a removal commits.
const expiredStamp = "Thu, 01 Jan 1970 00:00:01 GMT"

// ReadFunc overrides how a Store reads raw cookie entries. The function
// owns splitting; its result is used as the entry sequence directly.
type ReadFunc func() ([]string, error)

// WriteFunc overrides how a Store commits a formatted cookie entry.
type WriteFunc func(entry string, meta store.Metadata) (string, error)

// Store is a key/value facade over a cookie line. Reads percent-decode,
// writes percent-encode, so values round-trip bit-for-bit even when they
// contain ";", "=", or whitespace.
type Store struct {
	backend store.Backend
	read    ReadFunc
	write   WriteFunc
}

// Option configures a Store.
type Option func(*Store)

// WithReadFunc installs a read hook called instead of the backend.
func WithReadFunc(fn ReadFunc) Option {
	return func(s *Store) { s.read = fn }
}

// WithWriteFunc installs a write hook called instead of the backend.
func WithWriteFunc(fn WriteFunc) Option {
	return func(s *Store) { s.write = fn }
}

// New creates a cookie store over the given backend. A nil backend falls
// back to an empty in-memory jar.
func New(backend store.Backend, opts ...Option) *Store {
	if backend == nil {
		backend = store.NewJarStore()
	}
	s := &Store{backend: backend}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromLine creates a cookie store over a raw cookie line snapshot.
// Writes replace the snapshot's line and propagate nowhere else.
func NewFromLine(line string, opts ...Option) *Store {
	return New(store.NewLineStore(line), opts...)
}

func (s *Store) entries() ([]string, error) {
	if s.read != nil {
		return s.read()
	}
	return s.backend.Read()
}

func (s *Store) commit(entry string, meta store.Metadata) (string, error) {
	if s.write != nil {
		return s.write(entry, meta)
	}
	return s.backend.Write(entry, meta)
}

// Get returns the decoded value stored under key. The first matching
// entry wins; scanning stops there. Absence is reported as ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	entries, err := s.entries()
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		i := strings.IndexByte(e, '=')
		if i < 0 {
			// No delimiter: the whole entry is the name and the
			// value reads back as the empty string.
			if unescape(e) == key {
				return "", nil
			}
			continue
		}
		if unescape(e[:i]) == key {
			return unescape(e[i+1:]), nil
		}
	}
	return "", ErrNotFound
}

// Set encodes key and value, formats the entry with any supplied
// attributes in the fixed order expires, path, domain, secure, and
// commits it. It returns the committed entry.
func (s *Store) Set(key, value string, opts *store.Options) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	var o store.Options
	if opts != nil {
		o = *opts
	}

	encodedKey := escape(key)
	encodedValue := escape(value)

	var b strings.Builder
	b.WriteString(encodedKey)
	b.WriteByte('=')
	b.WriteString(encodedValue)
	if o.Expires != "" {
		b.WriteString("; expires=")
		b.WriteString(o.Expires)
	}
	if o.Path != "" {
		b.WriteString("; path=")
		b.WriteString(o.Path)
	}
	if o.Domain != "" {
		b.WriteString("; domain=")
		b.WriteString(o.Domain)
	}
	if o.Secure {
		b.WriteString("; secure")
	}

	return s.commit(b.String(), store.Metadata{
		EncodedKey:   encodedKey,
		EncodedValue: encodedValue,
		Options:      o,
	})
}

// Remove commits an entry for key with an Expires date in the past. The
// key is deliberately not encoded here, mirroring long-standing cookie
// shim behavior; see TestRemoveDoesNotEncodeKey.
func (s *Store) Remove(key string) (string, error) {
	return s.commit(key+"=;expires="+expiredStamp+";", store.Metadata{
		Removal:    true,
		EncodedKey: key,
	})
}

// Clear removes every entry present when it is called. The entry list is
// snapshotted once; names are taken as the text before the first "=" and
// decoded before removal.
func (s *Store) Clear() error {
	entries, err := s.entries()
	if err != nil {
		return err
	}

	for _, e := range entries {
		name := e
		if i := strings.IndexByte(e, '='); i >= 0 {
			name = e[:i]
		}
		if _, err := s.Remove(unescape(name)); err != nil {
			return err
		}
	}
	return nil
}
