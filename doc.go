/*
Package lzss implements the LZSS variant used by VAG ECU flashing tools,
reproducing the reference encoder byte for byte.

Format: one flag byte per 8 items, consumed MSB first; bit 0 = literal (1 byte),
bit 1 = match token (2 bytes). Token: byte1 = length<<2 | offset>>8, byte2 = offset&0xFF,
so offsets are 10 bits (3..1023) and lengths 6 bits (3..63). A token with length 0
is a no-op. There is no end marker: a stream ends when its input ends.
Sliding window: 1023 bytes, filled with 0x11 before decoding.

The encoder searches offsets upward from 3 and keeps the first longest match, never
matching more bytes than the offset. This is not the best possible parse; it is
the one the reference tool makes, and bootloaders expect its exact output.

Padding (CompressOptions.Padding):
  - PadDefault appends zero bytes up to a multiple of 16.
  - PadNone ends the stream at the last group.
  - PadExact reaches the 16-byte boundary with no-op tokens only, so a decoder
    limited to the original size never sees padding as data.

# Examples

Round-trip compress and decompress:

	enc, err := lzss.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzss.Decompress(enc, lzss.ExactOptions(len(data)))
	if err != nil {
		return err
	}
	// dec equals data

Compress for a length-bounded bootloader:

	enc, err := lzss.Compress(data, &lzss.CompressOptions{Padding: lzss.PadExact})

Decompress a stream without holding it in memory:

	n, err := lzss.DecompressTo(w, r, lzss.ExactOptions(size))
*/
package lzss
