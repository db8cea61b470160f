package b64

import "errors"

// ErrInvalidLength is returned when the destination buffer is
// smaller than the exact size the operation requires. Nothing has
// been written to the buffer when it is returned.
var ErrInvalidLength = errors.New("b64: insufficient destination buffer length")

// ErrInvalidEncoding is returned when the input contains a byte
// outside the B64 alphabet, or its length is congruent to 1 mod 4.
// The destination buffer contents are unspecified when it is
// returned.
var ErrInvalidEncoding = errors.New("b64: invalid encoding")
