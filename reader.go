// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

import (
	"bufio"
	"io"
)

// countingByteReader tracks how many compressed bytes the decoder has taken from base.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

// newCountingReader wraps r, buffering it first when it cannot read single bytes.
func newCountingReader(r io.Reader) *countingByteReader {
	return &countingByteReader{base: asByteReader(r)}
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// asByteReader returns r as an io.ByteReader, buffering it when needed.
func asByteReader(r io.Reader) io.ByteReader {
	if existing, ok := r.(io.ByteReader); ok {
		return existing
	}

	return bufio.NewReader(r)
}
