package ldpc

import "github.com/ausocean/ft8/bitpack"

// Encode performs the systematic (174,91) LDPC encode (§4.3 "ldpc_encode"):
// the 91 message bits are copied unchanged into the first 91 codeword
// bits, and each of the 83 parity bits is the dot product, over GF(2),
// of the message with the corresponding row of the generator matrix.
func Encode(w bitpack.PayloadWithCrc) bitpack.Codeword {
	var c bitpack.Codeword
	copy(c[:], w[:])
	for row := 0; row < numParityBits; row++ {
		par := parityDot(w[:], generatorRows[row][:])
		bitpack.SetBit(c[:], bitpack.PayloadWithCrcBits+row, par)
	}
	return c
}

// parityDot computes the GF(2) dot product of the first
// bitpack.PayloadWithCrcBits bits of msg and gen (both MSB-first).
func parityDot(msg, gen []byte) int {
	par := 0
	for i := 0; i < bitpack.PayloadWithCrcBits; i++ {
		if bitpack.Bit(msg, i) == 1 && bitpack.Bit(gen, i) == 1 {
			par ^= 1
		}
	}
	return par
}
