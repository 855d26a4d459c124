// Package cookie provides a key/value storage facade over a browser-style
// cookie line, with session-storage-like operations. It includes:
//
//   - Get/Set/Remove/Clear over any store.Backend.
//   - Percent encoding on write and decoding on read, so values
//     round-trip bit-for-bit even with ";", "=", or whitespace in them.
//   - Attribute emission on write (expires, path, domain, secure) in a
//     fixed order.
//   - Read/write hook overrides for custom hosts.
//
// Notes:
//   - Absence and invalid arguments are signaled with sentinel errors,
//     never panics.
//   - Duplicate names resolve first-match-wins, in line order.
//   - This is not a cookie jar with expiry enforcement or cross-domain
//     policy; attributes are emitted on write, not evaluated on read.
package cookie
