package modulate

import (
	"github.com/ausocean/ft8/bitpack"
	"github.com/ausocean/ft8/ldpc"
)

// NumFT8Symbols is the number of tones in an FT8 transmission (§3).
const NumFT8Symbols = 79

// NumFT4Symbols is the number of tones in an FT4 transmission (§3).
const NumFT4Symbols = 105

// EncodeFT8 maps a 77-bit payload to its 79-symbol FT8 tone sequence:
// CRC-14 and LDPC encode the payload, then interleave the three Costas
// sync blocks with Gray-coded 3-bit codeword groups (§4.4).
func EncodeFT8(payload bitpack.Payload) ([NumFT8Symbols]int, error) {
	c := ldpc.Encode(ldpc.AppendCRC(payload))

	var tones [NumFT8Symbols]int
	dataBit := 0
	for sym := 0; sym < NumFT8Symbols; sym++ {
		if tone, ok := costasTone(FT8CostasOffsets[:], FT8Costas[:], sym); ok {
			tones[sym] = tone
			continue
		}
		b3 := readGroup(c[:], dataBit, 3)
		dataBit += 3
		tones[sym] = Gray8[b3]
	}
	return tones, nil
}

// EncodeFT4 maps a 77-bit payload to its 105-symbol FT4 tone sequence.
// The payload is XORed with the fixed FT4 mask before CRC (§3,
// invariant 5), then CRC-14 and LDPC encoded; ramp symbols, four
// Costas quartets, and Gray-coded 2-bit codeword groups fill the
// remaining positions (§4.4).
func EncodeFT4(payload bitpack.Payload) ([NumFT4Symbols]int, error) {
	masked := XorFT4Mask(payload)
	c := ldpc.Encode(ldpc.AppendCRC(masked))

	var tones [NumFT4Symbols]int
	dataBit := 0
	for sym := 0; sym < NumFT4Symbols; sym++ {
		if sym == FT4RampPositions[0] || sym == FT4RampPositions[1] {
			tones[sym] = FT4RampTone
			continue
		}
		if tone, ok := ft4CostasTone(sym); ok {
			tones[sym] = tone
			continue
		}
		b2 := readGroup(c[:], dataBit, 2)
		dataBit += 2
		tones[sym] = Gray4[b2]
	}
	return tones, nil
}

func costasTone(offsets, pattern []int, sym int) (int, bool) {
	for _, off := range offsets {
		if sym >= off && sym < off+len(pattern) {
			return pattern[sym-off], true
		}
	}
	return 0, false
}

func ft4CostasTone(sym int) (int, bool) {
	for qi, off := range FT4CostasOffsets {
		if sym >= off && sym < off+4 {
			return FT4Costas[qi][sym-off], true
		}
	}
	return 0, false
}

func readGroup(buf []byte, startBit, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = v<<1 | bitpack.Bit(buf, startBit+i)
	}
	return v
}
