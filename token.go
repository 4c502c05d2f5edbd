// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

// packToken encodes m as [length<<2 | offset>>8, offset&0xFF].
func packToken(m Match) (byte, byte) {
	return byte(m.Length<<2) | byte(m.Offset>>8), byte(m.Offset & 0xFF) // #nosec G115 -- fields fit 6 and 10 bits
}

// unpackToken decodes a token written by packToken.
func unpackToken(b1, b2 byte) Match {
	return Match{
		Offset: int(b2) | int(b1&0x03)<<8,
		Length: int(b1 >> 2),
	}
}

// groupWriter accumulates up to FlagBits items behind one flag byte.
// Flag bits are assigned MSB first; a set bit marks a match token.
type groupWriter struct {
	out     []byte
	flags   byte
	flagPos byte // Bit for the next item; 0 once the group is full.
	items   [groupBytes]byte
	n       int // Item bytes buffered in items.
}

func newGroupWriter(capacity int) *groupWriter {
	return &groupWriter{
		out:     make([]byte, 0, capacity),
		flagPos: 0x80,
	}
}

// literal appends a literal item, flushing the group once it is full.
func (g *groupWriter) literal(b byte) {
	g.items[g.n] = b
	g.n++
	g.next()
}

// match appends a match token, flushing the group once it is full.
func (g *groupWriter) match(m Match) {
	g.put(m)
	g.next()
}

// filler appends a token to the open group without ever flushing it.
func (g *groupWriter) filler(m Match) {
	g.put(m)
	g.flagPos >>= 1
}

func (g *groupWriter) put(m Match) {
	g.items[g.n], g.items[g.n+1] = packToken(m)
	g.n += TokenBytes
	g.flags |= g.flagPos
}

func (g *groupWriter) next() {
	if g.flagPos == 0x01 {
		g.flush()
		return
	}
	g.flagPos >>= 1
}

// pending reports whether the open group holds items.
func (g *groupWriter) pending() bool {
	return g.n != 0
}

// open reports whether the open group has a free flag slot.
func (g *groupWriter) open() bool {
	return g.flagPos != 0
}

// size is the stream length once the open group is flushed.
func (g *groupWriter) size() int {
	if g.n == 0 {
		return len(g.out)
	}
	return len(g.out) + 1 + g.n
}

// flush writes the flag byte and buffered items, then starts a new group.
func (g *groupWriter) flush() {
	if g.n != 0 {
		g.out = append(g.out, g.flags)
		g.out = append(g.out, g.items[:g.n]...)
	}
	g.flags = 0
	g.flagPos = 0x80
	g.n = 0
}
