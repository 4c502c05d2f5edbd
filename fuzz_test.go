package lzss

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("ABABA"))
	f.Add(bytes.Repeat([]byte{0x41}, 8))
	f.Add(bytes.Repeat([]byte("ECU"), 100))

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, mode := range allModes() {
			enc, err := Compress(data, &CompressOptions{Padding: mode})
			if err != nil {
				t.Fatal(err)
			}
			dec, err := Decompress(enc, ExactOptions(len(data)))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(dec, data) {
				t.Fatalf("%s: round trip mismatch for %d bytes", mode, len(data))
			}
		}
	})
}

// FuzzDecompress checks that arbitrary input never fails or panics and
// never exceeds the requested output size.
func FuzzDecompress(f *testing.F) {
	f.Add([]byte{0x10, 0x41, 0x41, 0x41, 0x0C, 0x03, 0x41, 0x41}, 8)
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0x00}, 100)

	f.Fuzz(func(t *testing.T, src []byte, limit int) {
		if limit > 1<<16 {
			limit = 1 << 16
		}
		out, err := Decompress(src, ExactOptions(limit))
		if err != nil {
			t.Fatal(err)
		}
		if limit >= 0 && len(out) > limit {
			t.Fatalf("decoded %d bytes, limit %d", len(out), limit)
		}
	})
}
