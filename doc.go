// Package b64 implements the "B64" encoding used inside password
// hash strings such as the PHC string format: the standard Base64
// alphabet of RFC 4648, section 4, with no padding and no
// whitespace.
//
// Comparison to encoding/base64
//
// RawStdEncoding uses the same alphabet, but this package differs
// from it in two ways.
//
// Unlike encoding/base64, this package runs in constant time for
// the length of its input: there are no branches or table lookups
// indexed by the data being encoded or decoded. This matters when
// that data is a salt or a hash digest.
//
// Unlike encoding/base64, this package does not report where
// invalid input was found and does not return partially decoded
// data. Decode always processes its entire input and reports only
// whether it was valid.
package b64
