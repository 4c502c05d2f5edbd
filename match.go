// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

// Match is a back-reference: copy Length bytes starting Offset bytes behind the cursor.
// The zero Match means "no match" when searching and a no-op token when decoding.
type Match struct {
	Offset int
	Length int
}

// IsNoop reports whether m produces no output when decoded.
func (m Match) IsNoop() bool {
	return m.Length == 0
}

// findMatch searches the history before src[pos] for a back-reference.
//
// Offsets are scanned upward from MinMatch, and a candidate replaces the best one
// only when strictly longer, so the nearest offset wins ties. A candidate never
// extends past its own start (length <= offset). A run longer than MaxMatch stops
// the scan and is recorded at the current offset with length MaxMatch.
// The zero Match is returned when nothing reaches MinMatch.
func findMatch(src []byte, pos int) Match {
	remaining := len(src) - pos
	searchLimit := pos
	if searchLimit > WindowSize {
		searchLimit = WindowSize
	}

	if searchLimit < MinMatch {
		return Match{}
	}

	current := src[pos:]
	bestLen := MinMatch - 1
	bestOff := 0

	for off := MinMatch; off <= searchLimit; off++ {
		candidate := src[pos-off:]

		// Quick rejection on the first byte, then on the byte a longer match must cover.
		if current[0] != candidate[0] {
			continue
		}
		if bestLen < remaining && current[bestLen] != candidate[bestLen] {
			continue
		}

		maxCheck := remaining
		if maxCheck > off {
			maxCheck = off
		}

		n := 0
		for n < maxCheck && current[n] == candidate[n] {
			n++
		}

		if n > bestLen {
			bestLen = n
			bestOff = off
		}

		if n > MaxMatch {
			bestLen = MaxMatch
			bestOff = off
			break
		}
	}

	if bestLen > MaxMatch {
		bestLen = MaxMatch
	}

	if bestLen < MinMatch || bestOff < MinMatch {
		return Match{}
	}

	return Match{Offset: bestOff, Length: bestLen}
}
