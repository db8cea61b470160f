package b64

// EncodeToString returns the B64 encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// DecodeString returns the bytes represented by the B64 string s.
//
// If s contains invalid B64, DecodeString returns
// ErrInvalidEncoding.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	return Decode(dst, []byte(s))
}
