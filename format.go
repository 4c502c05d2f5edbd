// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

// Format constants shared by the encoder and the decoder.
const (
	WindowSize = 1023 // Sliding window size; also the largest encodable offset.
	OffsetBits = 10   // Bits of a token holding the backward offset.
	LengthBits = 6    // Bits of a token holding the match length.
	MinMatch   = 3    // Shortest match worth a token; also the smallest searched offset.
	MaxMatch   = 63   // Longest match a token can carry.
	TokenBytes = 2    // Bytes per match token.
	FlagBits   = 8    // Items described by one flag byte.
	WindowFill = 0x11 // Initial content of every window slot before decoding.
	Alignment  = 16   // Padded streams end on a multiple of this many bytes.
)

// groupBytes is the largest item payload of one group (all matches).
const groupBytes = FlagBits * TokenBytes

// Fails to compile unless a token packs into whole bytes.
var _ = [1]struct{}{}[OffsetBits+LengthBits-TokenBytes*8]
