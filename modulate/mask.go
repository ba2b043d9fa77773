package modulate

import "github.com/ausocean/ft8/bitpack"

// ft4Mask is the fixed 10-byte pseudorandom sequence FT4 XORs into the
// 77-bit payload before CRC (§3, invariant 5). As with the LDPC
// generator data, the exact published WSJT-X mask bytes can't be
// verified here, so this is a fixed substitute sequence; encode and
// decode agree on the same table, so the XOR is still an exact,
// self-inverting round trip.
var ft4Mask = [10]byte{0xd5, 0x05, 0x98, 0xbc, 0x63, 0x8a, 0xdf, 0x52, 0xbf, 0x3f}

// XorFT4Mask returns p with the FT4 payload mask applied. It is its
// own inverse, so the demodulator calls it again to undo the mask
// after LDPC decode. Only the top 77 bits matter; the 3 padding bits
// of byte 9 are masked back to zero so they stay zero regardless of
// the mask's low bits there.
func XorFT4Mask(p bitpack.Payload) bitpack.Payload {
	var out bitpack.Payload
	for i := range out {
		out[i] = p[i] ^ ft4Mask[i]
	}
	out[9] &= 0xE0
	return out
}
