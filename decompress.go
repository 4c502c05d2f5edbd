// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// byteSink receives decoded output. bytes.Buffer and bufio.Writer satisfy it.
type byteSink interface {
	io.Writer
	io.ByteWriter
}

// Decompress decompresses src. Options nil means DefaultOptions (decode until end of input).
//
// The format has no end marker: without a limit, zero padding after the last
// group decodes as extra 0x00 bytes. Use ExactOptions with the original size to
// get exactly the original data back.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out, _, err := DecompressBlock(src, opts)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressBlock decompresses from the beginning of src.
// It returns decompressed bytes and the number of consumed input bytes.
// With a limit, decoding stops as soon as opts.OutLen bytes are produced, and
// any bytes after that point are left unconsumed.
func DecompressBlock(src []byte, opts *Options) ([]byte, int, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	hint := len(src) * 2
	if opts.limited() && opts.OutLen < hint {
		hint = opts.OutLen
	}

	var out bytes.Buffer
	out.Grow(hint)

	reader := bytes.NewReader(src)
	_, err := decode(reader, &out, opts)
	consumed := len(src) - reader.Len()
	if err != nil {
		return nil, consumed, err
	}

	return out.Bytes(), consumed, nil
}

// DecompressFromReader decompresses a stream read from r and returns consumed bytes.
// If r is not an io.ByteReader it is wrapped in a bufio.Reader, which may read ahead.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	countingReader := newCountingReader(r)

	var out bytes.Buffer
	if _, err := decode(countingReader, &out, opts); err != nil {
		return nil, countingReader.count, err
	}

	return out.Bytes(), countingReader.count, nil
}

// DecompressTo decompresses r into w in one forward pass and returns the number
// of bytes written. Memory use is bounded by the window regardless of stream size.
// On error, output already written to w is incomplete.
func DecompressTo(w io.Writer, r io.Reader, opts *Options) (int64, error) {
	if w == nil {
		return 0, ErrNilWriter
	}
	if r == nil {
		return 0, ErrNilReader
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	bw := bufio.NewWriter(w)
	n, err := decode(asByteReader(r), bw, opts)
	if err != nil {
		return n, err
	}

	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return n, nil
}

// decode runs the token parser until input is exhausted or opts.OutLen bytes are written.
// Running out of input at any point is the normal end of a stream, not an error.
func decode(r io.ByteReader, out byteSink, opts *Options) (int64, error) {
	var written int64
	limit := int64(opts.OutLen)
	full := func() bool {
		return opts.limited() && written >= limit
	}

	// Read a byte from the reader.
	// ok is false at end of input; any other failure is returned as an error.
	readByte := func() (b byte, ok bool, err error) {
		b, err = r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}

			return 0, false, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		return b, true, nil
	}

	win := newWindow()
	var flags byte
	flagsUsed := FlagBits - 1

	for !full() {
		flags <<= 1
		flagsUsed++

		if flagsUsed == FlagBits {
			b, ok, err := readByte()
			if err != nil || !ok {
				return written, err
			}
			flags = b
			flagsUsed = 0
		}

		// Flag bit 0: literal, 1 byte.
		if flags&0x80 == 0 {
			b, ok, err := readByte()
			if err != nil || !ok {
				return written, err
			}

			if err := out.WriteByte(b); err != nil {
				return written, fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}
			win.literal(b)
			written++

			continue
		}

		// Flag bit 1: match token, 2 bytes.
		b1, ok, err := readByte()
		if err != nil || !ok {
			return written, err
		}
		b2, ok, err := readByte()
		if err != nil || !ok {
			return written, err
		}

		m := unpackToken(b1, b2)
		if m.IsNoop() {
			continue
		}

		data := win.replay(m)
		if opts.limited() && int64(len(data)) > limit-written {
			data = data[:limit-written]
		}

		n, err := out.Write(data)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	return written, nil
}
