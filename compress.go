// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

import (
	"fmt"
	"io"
)

// Compress compresses src. Options nil means DefaultCompressOptions().
// Empty input produces an empty stream regardless of padding.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.Padding < PadDefault || opts.Padding > PadExact {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPadMode, opts.Padding)
	}
	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(src), opts.MaxInputSize)
	}
	if len(src) == 0 {
		return []byte{}, nil
	}

	// Worst case is all literals + one flag byte per group + padding.
	bufCap := len(src) + (len(src)+FlagBits-1)/FlagBits + 2*Alignment + len(exactPadBlock)
	g := newGroupWriter(bufCap)

	pos := 0
	for pos < len(src) {
		m := findMatch(src, pos)
		if m.Length >= MinMatch {
			g.match(m)
			pos += m.Length
		} else {
			g.literal(src[pos])
			pos++
		}
	}

	return finish(g, opts.Padding), nil
}

// CompressFromReader reads the whole of r and then calls Compress.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func CompressFromReader(r io.Reader, opts *CompressOptions) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	src, err := readAll(r, opts.MaxInputSize)
	if err != nil {
		return nil, err
	}

	return Compress(src, opts)
}

// CompressTo compresses everything read from r and writes the stream to w.
// It returns the compressed size. Nothing is written if reading or encoding fails.
func CompressTo(w io.Writer, r io.Reader, opts *CompressOptions) (int64, error) {
	if w == nil {
		return 0, ErrNilWriter
	}

	out, err := CompressFromReader(r, opts)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(out)
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return int64(n), nil
}

// readAll buffers r, failing once more than limit bytes are seen (limit 0 = no limit).
func readAll(r io.Reader, limit int) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	if limit > 0 && len(src) > limit {
		return nil, fmt.Errorf("%w: limit=%d", ErrInputTooLarge, limit)
	}

	return src, nil
}
