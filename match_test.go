package lzss

import "testing"

func seq(from, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(from + i)
	}
	return b
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestFindMatch(t *testing.T) {
	t1to70 := seq(1, 70)
	tests := []struct {
		name string
		src  []byte
		pos  int
		want Match
	}{
		{"no history", []byte("AAAA"), 0, Match{}},
		{"two bytes of history", []byte("AAAA"), 2, Match{}},
		{"offset three", []byte("AAAAAAAA"), 3, Match{Offset: 3, Length: 3}},
		{"remaining below min", []byte("AAAAAAAA"), 6, Match{}},
		{"ababa", []byte("ABABA"), 4, Match{}},
		// Length never exceeds the offset, even when the run continues.
		{"capped by offset", []byte("ABCABCABCABC"), 3, Match{Offset: 3, Length: 3}},
		// Offsets 4 and 8 both match 3 bytes; the nearer one wins.
		{"tie keeps smaller offset", []byte("XYZ1XYZ2XYZ"), 8, Match{Offset: 4, Length: 3}},
		{"longer farther offset", []byte("XYZW1XYZ2XYZW"), 9, Match{Offset: 9, Length: 4}},
		{"clamped to max", concat(seq(0, 100), seq(0, 100)), 100, Match{Offset: 100, Length: MaxMatch}},
		// Offset 64 already reaches exactly MaxMatch; offset 134 runs past it and takes over.
		{"overlong run wins over exact max", concat(t1to70, t1to70[:63], []byte{0xEE}, t1to70), 134, Match{Offset: 134, Length: MaxMatch}},
		{"window edge", concat([]byte("QRS"), make([]byte, WindowSize-3), []byte("QRS")), WindowSize, Match{Offset: WindowSize, Length: 3}},
		{"outside window", concat([]byte("QRS"), make([]byte, WindowSize-2), []byte("QRS")), WindowSize + 1, Match{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := findMatch(tc.src, tc.pos)
			if got != tc.want {
				t.Fatalf("findMatch(pos=%d) = %+v, want %+v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestFindMatchDeterministic(t *testing.T) {
	src := concat(seq(0, 40), seq(10, 40), seq(0, 80))
	for pos := range src {
		if a, b := findMatch(src, pos), findMatch(src, pos); a != b {
			t.Fatalf("pos %d: %+v != %+v", pos, a, b)
		}
	}
}

func TestFindMatchBounds(t *testing.T) {
	src := concat(make([]byte, 300), seq(0, 200), make([]byte, 300), seq(0, 200))
	for pos := range src {
		m := findMatch(src, pos)
		if m == (Match{}) {
			continue
		}
		if m.Offset < MinMatch || m.Offset > WindowSize || m.Offset > pos {
			t.Fatalf("pos %d: offset out of range: %+v", pos, m)
		}
		if m.Length < MinMatch || m.Length > MaxMatch || m.Length > len(src)-pos {
			t.Fatalf("pos %d: length out of range: %+v", pos, m)
		}
	}
}
