// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package main

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	lzss "github.com/ConnorHowell/vag-lzss"
)

// run opens the streams named by inv and runs the selected operation.
// A partially written output file is removed on failure.
func run(inv *invocation, stdin io.Reader, stdout io.Writer) (err error) {
	in, closeIn, err := openInput(inv, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	out, finishOut, err := openOutput(inv, stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = finishOut(err)
	}()

	if inv.decompress {
		glog.V(1).Infof("decompressing, limit %d", inv.length)
		n, err := lzss.DecompressTo(out, in, inv.decodeOptions())
		if err != nil {
			return errors.Wrap(err, "couldn't decompress data")
		}
		glog.V(1).Infof("decompressedSize %x", n)

		return nil
	}

	glog.V(1).Infof("compressing, padding %s", inv.mode)
	n, err := lzss.CompressTo(out, in, inv.encodeOptions())
	if err != nil {
		return errors.Wrap(err, "couldn't compress data")
	}
	// Empty input produces no stream and no report.
	if n > 0 {
		glog.Infof("compressedSize %x", n)
	}

	return nil
}

func openInput(inv *invocation, stdin io.Reader) (io.Reader, func(), error) {
	if inv.stdio {
		return stdin, func() {}, nil
	}

	f, err := os.Open(inv.inputs[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input file")
	}

	return f, func() { _ = f.Close() }, nil
}

// openOutput returns the output sink and a finisher that closes it and, when
// the operation failed, deletes the file it created.
func openOutput(inv *invocation, stdout io.Writer) (io.Writer, func(error) error, error) {
	if inv.stdio {
		return stdout, func(err error) error { return err }, nil
	}

	name := inv.outputs[0]
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening output file")
	}

	finish := func(err error) error {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "closing output file")
		}
		if err != nil {
			if rmErr := os.Remove(name); rmErr != nil {
				glog.Warningf("removing incomplete output %s: %v", name, rmErr)
			}
		}

		return err
	}

	return f, finish, nil
}
