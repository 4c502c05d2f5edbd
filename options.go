// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

import (
	"fmt"
	"strings"
)

// PadMode selects how the end of a compressed stream is aligned.
type PadMode int

// Padding mode constants.
const (
	PadDefault PadMode = iota // Zero bytes up to a multiple of Alignment.
	PadNone                   // Stream ends at the last flushed group.
	PadExact                  // No-op tokens only, so a length-bounded decoder sees no extra output.
)

// String returns the mode name accepted by ParsePadMode.
func (m PadMode) String() string {
	switch m {
	case PadDefault:
		return "default"
	case PadNone:
		return "no-pad"
	case PadExact:
		return "exact-pad"
	default:
		return fmt.Sprintf("PadMode(%d)", int(m))
	}
}

// ParsePadMode parses a padding mode name.
func ParsePadMode(s string) (PadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return PadDefault, nil
	case "no-pad", "nopad", "none":
		return PadNone, nil
	case "exact-pad", "exact":
		return PadExact, nil
	default:
		return PadDefault, fmt.Errorf("%w: %q", ErrInvalidPadMode, s)
	}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Padding selects the trailing alignment policy.
	Padding PadMode
	// MaxInputSize limits how many bytes CompressFromReader may buffer (0 = no limit).
	MaxInputSize int
}

// DefaultCompressOptions returns options for default compression (zero padding, no input limit).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Padding: PadDefault}
}

// Options configures decompression.
type Options struct {
	// OutLen stops decoding after this many output bytes.
	// Negative means decode until the input is exhausted.
	OutLen int
}

// DefaultOptions returns options that decode until the end of input.
func DefaultOptions() *Options {
	return &Options{OutLen: -1}
}

// ExactOptions returns options that decode exactly outLen bytes (or fewer if input runs out).
func ExactOptions(outLen int) *Options {
	return &Options{OutLen: outLen}
}

// limited reports whether decoding stops at OutLen.
func (o *Options) limited() bool {
	return o.OutLen >= 0
}
