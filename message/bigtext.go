package message

import (
	"fmt"
	"math/big"

	"github.com/ausocean/ft8/bitpack"
)

// FreeText and Telemetry both pack a 71-bit integer into the payload
// (§4.1, §9 "Big-integer arithmetic for FreeText"). A 71-bit
// accumulator doesn't fit in a uint64, and a hand-rolled two-limb
// accumulator is easy to get subtly wrong without being able to run the
// arithmetic through a test suite first; math/big's Int is the standard
// library's arbitrary-precision integer and is exact by construction, so
// it's used here instead (see DESIGN.md).
const textBase = 42
const textWidth = 13 // characters; 42^13 < 2^71

var base42 = big.NewInt(textBase)

func textToBig(text string) (*big.Int, error) {
	padded := text
	for len(padded) < textWidth {
		padded += " "
	}
	val := new(big.Int)
	for i := 0; i < textWidth; i++ {
		idx := bitpack.Index(bitpack.TextAlphabet, padded[i])
		if idx < 0 {
			return nil, fmt.Errorf("message: character %q not in free-text alphabet: %w", padded[i], ErrInvalidCharacter)
		}
		val.Mul(val, base42)
		val.Add(val, big.NewInt(int64(idx)))
	}
	return val, nil
}

func bigToText(val *big.Int) string {
	v := new(big.Int).Set(val)
	chars := make([]byte, textWidth)
	for i := textWidth - 1; i >= 0; i-- {
		mod := new(big.Int)
		v.DivMod(v, base42, mod)
		chars[i] = bitpack.TextAlphabet[mod.Int64()]
	}
	s := string(chars)
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

func telemetryToBig(data [9]byte) *big.Int {
	// 9 bytes = 72 bits; only the top 71 are used (§4.1).
	val := new(big.Int).SetBytes(data[:])
	val.Rsh(val, 1)
	return val
}

func bigToTelemetry(val *big.Int) [9]byte {
	shifted := new(big.Int).Lsh(val, 1)
	b := shifted.Bytes()
	var out [9]byte
	copy(out[9-len(b):], b)
	return out
}

// pack71 places a 71-bit value at the top of a 77-bit payload, followed
// by 3-bit n3 and 3-bit i3 fields (§4.1). i3 occupies the last 3 bits
// of the payload (bits 74-76) regardless of message kind, matching
// packStandard, because the top-level Unpack router (readI3) always
// reads i3 from there.
func pack71(val *big.Int, i3, n3 int) bitpack.Payload {
	var p bitpack.Payload
	// val.Bytes() big-endian into a 9-byte (72-bit) container always
	// leaves bit 0 zero, since val < 2^71 < 2^72; bits 1..71 are the
	// 71-bit value, MSB-first.
	var buf72 [9]byte
	bits := val.Bytes()
	copy(buf72[9-len(bits):], bits)

	w := bitpack.NewWriter(p[:])
	for i := 1; i <= 71; i++ {
		w.PutUint(uint64(bitpack.Bit(buf72[:], i)), 1)
	}
	w.PutUint(uint64(n3), 3)
	w.PutUint(uint64(i3), 3)
	return p
}

// unpack71 is the inverse of pack71: it returns the 71-bit value and the
// trailing n3/i3 fields.
func unpack71(p bitpack.Payload) (val *big.Int, i3, n3 int) {
	r := bitpack.NewReader(p[:])
	var buf72 [9]byte
	for i := 1; i <= 71; i++ {
		bit := r.GetUint(1)
		bitpack.SetBit(buf72[:], i, int(bit))
	}
	n3 = int(r.GetUint(3))
	i3 = int(r.GetUint(3))
	return new(big.Int).SetBytes(buf72[:]), i3, n3
}
