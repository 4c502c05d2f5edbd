// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInputTooLarge  = errors.New("input exceeds MaxInputSize")
	ErrNilReader      = errors.New("reader is nil")
	ErrNilWriter      = errors.New("writer is nil")
	ErrInvalidPadMode = errors.New("invalid padding mode")
	ErrReadInput      = errors.New("read input")
	ErrWriteOutput    = errors.New("write output")
)
