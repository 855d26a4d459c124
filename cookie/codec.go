package cookie

import "net/url"

const upperhex = "0123456789ABCDEF"

// escape percent-encodes everything outside the unreserved set
// (letters, digits, and - _ . ! ~ * ' ( )), so names and values survive
// the line's ";" and "=" delimiters.
func escape(s string) string {
	hex := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			hex++
		}
	}
	if hex == 0 {
		return s
	}

	out := make([]byte, 0, len(s)+2*hex)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			out = append(out, c)
			continue
		}
		out = append(out, '%', upperhex[c>>4], upperhex[c&0xf])
	}
	return string(out)
}

// unescape percent-decodes s. Malformed escapes are tolerated: the raw
// text is returned as-is rather than an error.
func unescape(s string) string {
	u, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return u
}

func unreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
