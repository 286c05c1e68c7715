// Package headers exposes request headers as an immutable, case-insensitive
// collection and extracts the pieces the device detector needs from it.
//
// A Collection can be built from a plain map (New), from net/http headers
// (FromHTTP) or from a whole request (FromRequest, which returns a Source).
//
// # Usage
//
//	h := headers.FromHTTP(r.Header)
//	ua, raw := headers.Extract(h)
//	// ua is "" when the request carried no User-Agent header
//	hints := clienthints.FromHeaders(raw)
//
// Extract never fails: a missing User-Agent header is a normal condition.
package headers
