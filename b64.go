package b64

// B64 character set:
// [A-Z]      [a-z]      [0-9]      +     /
// 0x41-0x5a, 0x61-0x7a, 0x30-0x39, 0x2b, 0x2f

// EncodedLen returns the exact length in bytes of the B64 encoding
// of n source bytes.
func EncodedLen(n int) int {
	return (n*8 + 5) / 6
}

// DecodedLen returns the length in bytes of the B64 decoding of n
// encoded bytes.
//
// DecodedLen truncates: for n congruent to 1 mod 4 it still
// returns a value, so that buffers can be sized before validity is
// known, but Decode rejects such input.
func DecodedLen(n int) int {
	return n * 6 / 8
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// It returns the portion of dst holding the encoded data, which is
// always ASCII drawn from the B64 alphabet. If dst is too small,
// Encode returns ErrInvalidLength and writes nothing.
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) ([]byte, error) {
	n := EncodedLen(len(src))
	if n > len(dst) {
		return nil, ErrInvalidLength
	}
	dst = dst[:n]
	ret := dst

	// Convert 3 -> 4 with at least 3 src bytes.
	for len(src) >= 3 {
		encode3Bytes(dst, src)
		src = src[3:]
		dst = dst[4:]
	}

	// Zero-pad the final 1-2 bytes and keep only the 2-3 symbols
	// they determine. The padding never reaches dst.
	if len(src) > 0 {
		var in [3]byte
		var out [4]byte
		copy(in[:], src)
		encode3Bytes(out[:], in[:])
		copy(dst, out[:len(dst)])
	}
	return ret, nil
}

// Decode decodes src, writing DecodedLen(len(src)) bytes to dst.
//
// It returns the portion of dst holding the decoded data. If dst
// is too small, Decode returns ErrInvalidLength and writes
// nothing. If src contains a byte outside the B64 alphabet, or
// len(src) is congruent to 1 mod 4, Decode returns
// ErrInvalidEncoding and the contents of dst are unspecified.
//
// Decode processes every input group even after invalid data has
// been seen, so it runs in constant time for the length of src,
// independent of where in src invalid bytes occur.
func Decode(dst, src []byte) ([]byte, error) {
	n := DecodedLen(len(src))
	if n > len(dst) {
		return nil, ErrInvalidLength
	}
	dst = dst[:n]
	ret := dst

	// failed accumulates per-group invalidity signals. It is only
	// ever OR-ed into, so one bad group taints the whole decode.
	var failed int

	// Convert 4 -> 3 with at least 4 src bytes.
	for len(src) >= 4 {
		failed |= decode3Bytes(dst, src)
		src = src[4:]
		dst = dst[3:]
	}

	// A single trailing symbol holds at most 6 bits, which cannot
	// encode a byte.
	if len(src) == 1 {
		failed |= 1
	}

	// Pad the final 2-3 symbols with 'A'. The filler is itself in
	// the alphabet, so it cannot taint failed; only the 1-2 bytes
	// the real symbols determine reach dst.
	in := [4]byte{'A', 'A', 'A', 'A'}
	var out [3]byte
	copy(in[:], src)
	failed |= decode3Bytes(out[:], in[:])
	copy(dst, out[:len(dst)])

	if failed != 0 {
		return nil, ErrInvalidEncoding
	}
	return ret, nil
}

// encode3Bytes converts the 3 source bytes in src into 4 B64 bytes
// in dst.
func encode3Bytes(dst, src []byte) {
	b0 := int(src[0])
	b1 := int(src[1])
	b2 := int(src[2])

	dst[0] = encode6Bits(b0 >> 2)
	dst[1] = encode6Bits((b0<<4 | b1>>4) & 0x3f)
	dst[2] = encode6Bits((b1<<2 | b2>>6) & 0x3f)
	dst[3] = encode6Bits(b2 & 0x3f)
}

// encode6Bits converts the 6-bit value c to its corresponding B64
// character.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func encode6Bits(c int) byte {
	// Start with an initial guess that c is in [0, 25], making the
	// shift 'A' (65). Each mask below is -1 when c exceeds its
	// threshold and 0 otherwise, since (t - c) is then a negative
	// value smaller than 256 in magnitude.
	s := int('A')

	// If c is greater than 25, guess that c is in [26, 51] and
	// adjust the shift by adding 6 since
	//    'a' - (26+'A') = 6
	//    'b' - (27+'A') = 6
	//    ...
	//    'z' - (51+'A') = 6
	// The shift is now 71.
	s += (25 - c) >> 8 & 6

	// If c is greater than 51, guess that c is in [52, 61] and
	// adjust the shift by subtracting 75 since
	//    '0' - (52+71) = -75
	//    '1' - (53+71) = -75
	//    ...
	//    '9' - (61+71) = -75
	// The shift is now -4.
	s -= (51 - c) >> 8 & 75

	// If c is greater than 61, guess that c == 62 and adjust the
	// shift by subtracting 15 since
	//    '+' - (62-4) = -15
	// The shift is now -19.
	s -= (61 - c) >> 8 & 15

	// If c is greater than 62, guess that c == 63 and adjust the
	// shift by adding 3 since
	//    '/' - (63-19) = 3
	// The shift is now -16.
	s += (62 - c) >> 8 & 3

	return byte(c + s)
}

// decode3Bytes converts the 4 B64 bytes in src into 3 bytes in
// dst.
//
// It returns 1 if any of the 4 bytes is outside the B64 alphabet
// and 0 otherwise. All four bytes are decoded either way.
func decode3Bytes(dst, src []byte) int {
	c0 := decode6Bits(src[0])
	c1 := decode6Bits(src[1])
	c2 := decode6Bits(src[2])
	c3 := decode6Bits(src[3])

	dst[0] = byte(c0<<2 | c1>>4)
	dst[1] = byte(c1<<4 | c2>>2)
	dst[2] = byte(c2<<6 | c3)

	return (c0 | c1 | c2 | c3) >> 8 & 1
}

// decode6Bits converts the B64 character c to its 6-bit binary
// value.
//
// If the character is outside the B64 alphabet decode6Bits returns
// a negative value, marked by its set 0x100 bit.
func decode6Bits(c byte) int {
	ch := int(c)

	// Each range mask ((lo - ch) & (ch - hi)) >> 8 is -1 iff
	// lo < ch < hi and 0 otherwise, and at most one of the five
	// fires. The accumulator starts at -1, so each offset carries
	// a +1 to cancel it; an unrecognized character leaves -1.
	ret := -1

	// if ch > 0x40 && ch < 0x5b { ret += ch - 0x41 + 1 } // -64
	ret += (((0x40 - ch) & (ch - 0x5b)) >> 8) & (ch - 0x40)

	// if ch > 0x60 && ch < 0x7b { ret += ch - 0x61 + 26 + 1 } // -70
	ret += (((0x60 - ch) & (ch - 0x7b)) >> 8) & (ch - 0x46)

	// if ch > 0x2f && ch < 0x3a { ret += ch - 0x30 + 52 + 1 } // +5
	ret += (((0x2f - ch) & (ch - 0x3a)) >> 8) & (ch + 5)

	// if ch == 0x2b { ret += 62 + 1 }
	ret += (((0x2a - ch) & (ch - 0x2c)) >> 8) & 63

	// if ch == 0x2f { ret += 63 + 1 }
	ret += (((0x2e - ch) & (ch - 0x30)) >> 8) & 64

	return ret
}
