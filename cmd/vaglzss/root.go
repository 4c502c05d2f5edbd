// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Connor Howell
// Source: github.com/ConnorHowell/vag-lzss

package main

import (
	goflag "flag"
	"io"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command; stdin and stdout back the -s mode.
func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	inv := &invocation{length: -1}

	cmd := &cobra.Command{
		Use:   "vaglzss",
		Short: "VAG ECU LZSS compressor",
		Long: `Compress or decompress ECU firmware blocks in the LZSS variant expected by
VAG bootloaders (1023-byte window, 10-bit offsets, 6-bit lengths).

Default: vaglzss -c`,
		Example: `  vaglzss -c -i block.bin -o block.lzss
  vaglzss -c -e -i block.bin -o block.lzss
  vaglzss -d -n 65536 -s < block.lzss > block.bin`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog refuses to log to its configured sinks before the Go flag set is parsed.
			return goflag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv.padSet = cmd.Flags().Changed("pad")
			if err := inv.validate(); err != nil {
				return err
			}

			return run(inv, stdin, stdout)
		},
	}

	cmd.SetOut(stdout)

	flags := cmd.Flags()
	flags.BoolVarP(&inv.compress, "compress", "c", false, "encode input file to output file")
	flags.BoolVarP(&inv.decompress, "decompress", "d", false, "decode input file to output file")
	flags.BoolVarP(&inv.exactPad, "exact-pad", "e", false, "pad compressed data to produce exact length decompressed data")
	flags.BoolVarP(&inv.noPad, "no-pad", "p", false, "do not pad output data to multiples of 0x10")
	flags.StringVar(&inv.pad, "pad", "default", "padding mode: default, no-pad, exact-pad")
	flags.StringArrayVarP(&inv.inputs, "input", "i", nil, "name of input file")
	flags.StringArrayVarP(&inv.outputs, "output", "o", nil, "name of output file")
	flags.BoolVarP(&inv.stdio, "stdio", "s", false, "use STDIN/STDOUT")
	flags.IntVarP(&inv.length, "length", "n", -1, "stop decompressing after this many bytes (-1 = end of input)")
	flags.IntVar(&inv.maxInput, "max-input", 0, "refuse to compress inputs larger than this many bytes (0 = no limit)")

	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	return cmd
}
