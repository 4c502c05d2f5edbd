// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

// vaglzss compresses and decompresses ECU firmware images in the VAG LZSS format.
//
// Usage:
//
//	vaglzss [-c|-d] [-e|-p] (-i <file> -o <file> | -s)
//
// Compression is the default action. The compressed size is reported on stderr.
package main

import (
	goflag "flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	// glog writes to files unless told otherwise; a filter tool reports on stderr.
	_ = goflag.Set("logtostderr", "true")

	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}

	glog.Flush()
}
