package b64

import (
	"bytes"
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

// TestRoundTrip decodes the encoding of random inputs and expects
// the original bytes back.
func TestRoundTrip(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 100 * time.Millisecond
	}
	tm := time.NewTimer(d)

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	buf := make([]byte, 512)
	enc := make([]byte, EncodedLen(len(buf)))
	dec := make([]byte, DecodedLen(len(enc)))
	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iter: %d", i)
			return
		default:
		}

		src := buf[:rng.Intn(len(buf)+1)]
		rng.Read(src)

		es, err := Encode(enc, src)
		if err != nil {
			t.Fatalf("#%d: Encode: %v", i, err)
		}
		ds, err := Decode(dec, es)
		if err != nil {
			t.Fatalf("#%d: Decode(%q): %v", i, es, err)
		}
		if !bytes.Equal(src, ds) {
			t.Fatalf("#%d: round trip mismatch for %x", i, src)
		}
	}
}

// TestStringRoundTrip is TestRoundTrip for the allocating
// wrappers.
func TestStringRoundTrip(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	buf := make([]byte, 256)
	for i := 0; i < 5000; i++ {
		src := buf[:rng.Intn(len(buf)+1)]
		rng.Read(src)

		got, err := DecodeString(EncodeToString(src))
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !bytes.Equal(src, got) {
			t.Fatalf("#%d: round trip mismatch for %x", i, src)
		}
	}
}
