// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

// exactPadLengths maps the bytes missing to the next Alignment boundary to the
// number of exactPadBlock bytes appended in PadExact mode. Odd shortfalls fit one
// partial no-op group; even ones need a full group plus a partial one.
var exactPadLengths = [Alignment + 1]int{
	0x00, 0x01, 0x12, 0x03, 0x14, 0x05, 0x16, 0x07, 0x18,
	0x09, 0x1A, 0x0B, 0x1C, 0x0D, 0x1E, 0x0F, 0x00,
}

// exactPadBlock is a group of FlagBits no-op tokens: an all-match flag byte
// followed by zero tokens. It is repeated as needed.
var exactPadBlock = [1 + groupBytes]byte{0xFF}

// finish flushes the open group of g and applies the padding policy of mode.
func finish(g *groupWriter, mode PadMode) []byte {
	if g.pending() {
		if mode == PadExact {
			// Fill free slots of the last group with no-op tokens while that moves it onto the boundary.
			for g.size()%Alignment != 0 && g.open() {
				g.filler(Match{})
			}
		}
		g.flush()
	}

	out := g.out
	if mode == PadExact {
		short := Alignment - len(out)%Alignment
		for i := 0; i < exactPadLengths[short]; i++ {
			out = append(out, exactPadBlock[i%len(exactPadBlock)])
		}
	}

	if mode != PadNone {
		if rem := len(out) % Alignment; rem != 0 {
			out = append(out, make([]byte, Alignment-rem)...)
		}
	}

	return out
}
