package ldpc

import "github.com/ausocean/ft8/bitpack"

// perfectLLR is the magnitude used by LLRsFromCodeword for a noiseless
// channel LLR: large enough to dominate the sum-product clamps while
// still well inside ordinary float64 range.
const perfectLLR = 10.0

// LLRsFromCodeword produces the noiseless channel LLRs that would
// decode exactly to c: positive for a 0 bit, negative for a 1 bit, per
// §4.3's sign convention. Used to exercise the decoder without a
// modulator/demodulator round trip.
func LLRsFromCodeword(c bitpack.Codeword) []float64 {
	llrs := make([]float64, numCodewordBits)
	for i := range llrs {
		if bitpack.Bit(c[:], i) == 0 {
			llrs[i] = perfectLLR
		} else {
			llrs[i] = -perfectLLR
		}
	}
	return llrs
}
