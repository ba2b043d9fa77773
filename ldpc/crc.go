// Package ldpc implements the channel codec (§4.3): CRC-14, the
// systematic (174,91) LDPC encoder, and a sum-product belief-propagation
// decoder.
package ldpc

import "github.com/ausocean/ft8/bitpack"

// crcPoly is the degree-14 CRC polynomial (§3).
const crcPoly uint16 = 0x2757

const crcWidth = 14

// CRC14 computes the 14-bit CRC over the 77 payload bits followed by 5
// zero bits (82 bits total), MSB-first, no reflection, no XOR-out (§4.3).
func CRC14(p bitpack.Payload) uint16 {
	var rem uint16
	// The shift register is fed crcWidth further zero bits after the 82
	// message bits, so rem ends as the standard (message * x^14) mod poly.
	for i := 0; i < bitpack.PayloadBits+5+crcWidth; i++ {
		var bit uint16
		if i < bitpack.PayloadBits {
			bit = uint16(bitpack.Bit(p[:], i))
		}
		topBit := (rem >> (crcWidth - 1)) & 1
		rem = ((rem << 1) | bit) & (1<<crcWidth - 1)
		if topBit == 1 {
			rem ^= crcPoly
		}
	}
	return rem
}

// AppendCRC returns PayloadWithCrc: p's 77 bits followed by CRC14(p)
// (§4.3, §6 "crc_append").
func AppendCRC(p bitpack.Payload) bitpack.PayloadWithCrc {
	var out bitpack.PayloadWithCrc
	copy(out[:], p[:])
	setBits(out[:], bitpack.PayloadBits, CRC14(p), crcWidth)
	return out
}

func setBits(buf []byte, startBit int, v uint16, n int) {
	for i := 0; i < n; i++ {
		bit := int(v>>uint(n-1-i)) & 1
		bitpack.SetBit(buf, startBit+i, bit)
	}
}

// CheckCRC reports whether w's CRC bits match CRC14 of its payload bits
// (§4.3, §6 "crc_check"; invariant P2/P3).
func CheckCRC(w bitpack.PayloadWithCrc) bool {
	var p bitpack.Payload
	copy(p[:], w[:])
	want := CRC14(p)

	var got uint16
	for i := 0; i < crcWidth; i++ {
		got = got<<1 | uint16(bitpack.Bit(w[:], bitpack.PayloadBits+i))
	}
	return got == want
}
