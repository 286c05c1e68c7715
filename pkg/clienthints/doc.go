// Package clienthints turns User-Agent Client Hint request headers into a
// structured, immutable ClientHints value.
//
// Recognized headers are Sec-CH-UA, Sec-CH-UA-Full-Version-List,
// Sec-CH-UA-Full-Version, Sec-CH-UA-Model, Sec-CH-UA-Platform,
// Sec-CH-UA-Platform-Version, Sec-CH-UA-Arch, Sec-CH-UA-Bitness,
// Sec-CH-UA-Mobile, Sec-CH-UA-Form-Factors and X-Requested-With. Header names
// are matched case-insensitively and may also be given in server-variable form
// (HTTP_SEC_CH_UA_MODEL).
//
// # Usage
//
//	hints := clienthints.FromHeaders(map[string]string{
//	    "Sec-CH-UA":        `"Brand";v="1.0", "Other";v="2.0"`,
//	    "Sec-CH-UA-Model":  `"Pixel 7"`,
//	    "Sec-CH-UA-Mobile": "?1",
//	})
//
//	for _, b := range hints.Brands() {
//	    fmt.Println(b.Name, b.Version) // Brand 1.0, Other 2.0
//	}
//
// Brand names are kept verbatim, including GREASE entries such as
// "Not_A Brand"; callers decide what to ignore. Missing headers produce the
// zero value, never an error.
package clienthints
