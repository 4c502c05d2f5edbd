// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package main

import (
	"github.com/pkg/errors"

	lzss "github.com/ConnorHowell/vag-lzss"
)

// ErrInvocation marks contradictory or missing command line options.
// It is reported before any input is read.
var ErrInvocation = errors.New("invalid invocation")

// invocation holds the parsed command line.
type invocation struct {
	compress   bool
	decompress bool
	exactPad   bool
	noPad      bool
	pad        string
	padSet     bool
	inputs     []string
	outputs    []string
	stdio      bool
	length     int
	maxInput   int

	mode lzss.PadMode // Resolved by validate.
}

func invocationError(msg string) error {
	return errors.Wrap(ErrInvocation, msg)
}

// validate checks option combinations and resolves the padding mode.
func (inv *invocation) validate() error {
	if inv.compress && inv.decompress {
		return invocationError("compress and decompress are mutually exclusive")
	}
	if inv.exactPad && inv.noPad {
		return invocationError("exact padding and no padding are mutually exclusive")
	}

	if len(inv.inputs) > 1 || (inv.stdio && len(inv.inputs) > 0) {
		return invocationError("multiple input files not allowed")
	}
	if len(inv.outputs) > 1 || (inv.stdio && len(inv.outputs) > 0) {
		return invocationError("multiple output files not allowed")
	}
	if len(inv.inputs) == 0 && !inv.stdio {
		return invocationError("input file must be provided")
	}
	if len(inv.outputs) == 0 && !inv.stdio {
		return invocationError("output file must be provided")
	}

	mode, err := lzss.ParsePadMode(inv.pad)
	if err != nil {
		return errors.Wrap(ErrInvocation, err.Error())
	}

	switch {
	case inv.exactPad:
		if inv.padSet && mode != lzss.PadExact {
			return invocationError("--pad " + inv.pad + " conflicts with --exact-pad")
		}
		mode = lzss.PadExact
	case inv.noPad:
		if inv.padSet && mode != lzss.PadNone {
			return invocationError("--pad " + inv.pad + " conflicts with --no-pad")
		}
		mode = lzss.PadNone
	}
	inv.mode = mode

	if inv.decompress {
		if inv.exactPad || inv.noPad || inv.padSet {
			return invocationError("padding options apply to compression only")
		}
		if inv.maxInput != 0 {
			return invocationError("--max-input applies to compression only")
		}
	} else if inv.length >= 0 {
		return invocationError("--length applies to decompression only")
	}

	if inv.maxInput < 0 {
		return invocationError("--max-input must not be negative")
	}

	return nil
}

// decodeOptions returns the decoder limit requested with --length.
func (inv *invocation) decodeOptions() *lzss.Options {
	if inv.length < 0 {
		return lzss.DefaultOptions()
	}

	return lzss.ExactOptions(inv.length)
}

// encodeOptions returns the encoder options for the resolved padding mode.
func (inv *invocation) encodeOptions() *lzss.CompressOptions {
	return &lzss.CompressOptions{
		Padding:      inv.mode,
		MaxInputSize: inv.maxInput,
	}
}
