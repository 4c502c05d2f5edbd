// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

// window is the decoder history: a ring of WindowSize bytes addressed by
// distance back from cursor. It lives for one decode call.
type window struct {
	buf    [WindowSize]byte
	// cursor is the next slot to write.
	cursor int
	// stage holds the bytes produced by the last replay.
	stage  [1 << LengthBits]byte
}

// newWindow returns a window with every slot set to WindowFill.
func newWindow() *window {
	w := &window{}
	for i := range w.buf {
		w.buf[i] = WindowFill
	}

	return w
}

// literal records one decoded byte.
func (w *window) literal(b byte) {
	w.buf[w.cursor] = b
	w.cursor = (w.cursor + 1) % WindowSize
}

// replay copies m.Length bytes from m.Offset back and returns them.
// The result aliases the stage buffer and is valid until the next replay.
//
// All source bytes are staged before any is written back, so when Offset < Length
// the bytes past the cursor come from the previous window content, not from this match.
func (w *window) replay(m Match) []byte {
	src := w.cursor - m.Offset
	if src < 0 {
		src += WindowSize
	}

	for i := 0; i < m.Length; i++ {
		w.stage[i] = w.buf[(src+i)%WindowSize]
	}
	for i := 0; i < m.Length; i++ {
		w.buf[(w.cursor+i)%WindowSize] = w.stage[i]
	}

	w.cursor = (w.cursor + m.Length) % WindowSize

	return w.stage[:m.Length]
}
