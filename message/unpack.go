package message

import (
	"fmt"

	"github.com/ausocean/ft8/bitpack"
	"github.com/ausocean/ft8/callsign"
)

// Unpack is the inverse of Pack (§4.1 "Unpacking"). i3 determines which
// variant the 77 bits decode to; unrecognised i3/n3 combinations decode
// to KindNonStandard, preserving the raw bits rather than guessing
// (§9 "Open questions", (a)).
func Unpack(p bitpack.Payload, tbl *callsign.Table) (Message, error) {
	i3 := readI3(p)

	switch i3 {
	case 1, 2:
		return unpackStandard(p, i3, tbl)
	case 0:
		return unpackFreeOrTelemetry(p)
	default:
		return Message{Kind: KindNonStandard, I3: i3, Raw: p}, nil
	}
}

func readI3(p bitpack.Payload) int {
	r := bitpack.NewReader(p[:])
	r.GetUint(74) // skip n29a, n29b, grid16
	return int(r.GetUint(3))
}

func unpackStandard(p bitpack.Payload, i3 int, tbl *callsign.Table) (Message, error) {
	r := bitpack.NewReader(p[:])
	n29a := r.GetUint(29)
	n29b := r.GetUint(29)
	grid16 := uint32(r.GetUint(16))
	_ = r.GetUint(3) // i3, already known

	ipTo := n29a & 1
	ipDe := n29b & 1
	n28a := uint32(n29a >> 1)
	n28b := uint32(n29b >> 1)

	callTo, err := unpack28(n28a, tbl)
	if err != nil {
		return Message{}, err
	}
	callDe, err := unpack28(n28b, tbl)
	if err != nil {
		return Message{}, err
	}

	if ipTo == 1 {
		callTo += suffixFor(i3)
	}
	if ipDe == 1 {
		callDe += suffixFor(i3)
	}

	extra, err := unpackExtra(grid16)
	if err != nil {
		return Message{}, err
	}

	return Message{Kind: KindStandard, CallTo: callTo, CallDe: callDe, Extra: extra}, nil
}

func suffixFor(i3 int) string {
	if i3 == 2 {
		return "/P"
	}
	return "/R"
}

func unpack28(n28 uint32, tbl *callsign.Table) (string, error) {
	switch n28 {
	case reservedDE:
		return "DE", nil
	case reservedQRZ:
		return "QRZ", nil
	case reservedCQ:
		return "CQ", nil
	}
	if n28 >= 3 && n28 < 1003 {
		return fmt.Sprintf("CQ %03d", n28-3), nil
	}
	if n28 >= 1003 && n28 <= 1003+27*27*27*27-1 {
		return "CQ " + unpackCQLetters(n28-1003), nil
	}
	if n28 < uint32(ntokens)+uint32(max22) {
		n22 := n28 - ntokens
		if tbl == nil {
			return hashMissPlaceholder, nil
		}
		call, ok := tbl.Lookup(callsign.Width22, n22)
		if !ok {
			return hashMissPlaceholder, nil
		}
		return call, nil
	}
	n := n28 - uint32(ntokens) - uint32(max22)
	call, ok := unpackBasecall(n)
	if !ok {
		return "", fmt.Errorf("message: n28=%d does not decode to a callsign: %w", n28, ErrInvalidCallsign)
	}
	return unremapPrefix(call), nil
}

func unpackCQLetters(n uint32) string {
	var idx [4]int
	for i := 3; i >= 0; i-- {
		idx[i] = int(n % 27)
		n /= 27
	}
	out := make([]byte, 4)
	for i, v := range idx {
		out[i] = bitpack.CQLetterAlphabet[v]
	}
	return string(out)
}

func unpackBasecall(n uint32) (string, bool) {
	idx := [6]int{}
	idx[5] = int(n % 27)
	n /= 27
	idx[4] = int(n % 27)
	n /= 27
	idx[3] = int(n % 27)
	n /= 27
	idx[2] = int(n % 10)
	n /= 10
	idx[1] = int(n % 36)
	n /= 36
	idx[0] = int(n)

	var buf [6]byte
	for i := 0; i < 6; i++ {
		if idx[i] < 0 || idx[i] >= len(bitpack.CallTables[i]) {
			return "", false
		}
		buf[i] = bitpack.CallTables[i][idx[i]]
	}

	s := string(buf[:])
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	if s == "" {
		return "", false
	}
	return s, true
}

func unpackExtra(grid16 uint32) (Extra, error) {
	rPrefix := grid16&(1<<15) != 0
	v := grid16 &^ (1 << 15)

	switch v {
	case maxGrid4 + 1:
		return Extra{Kind: ExtraNone}, nil
	case maxGrid4 + 2:
		return Extra{Kind: ExtraRRR}, nil
	case maxGrid4 + 3:
		return Extra{Kind: ExtraRR73}, nil
	case maxGrid4 + 4:
		return Extra{Kind: Extra73}, nil
	}
	if v <= maxGrid4 {
		grid := unpackGrid4(v)
		return Extra{Kind: ExtraGrid, Grid: grid}, nil
	}
	if v >= maxGrid4+5 && v <= maxGrid4+65 {
		dd := int(v) - maxGrid4 - 35
		return Extra{Kind: ExtraReport, Report: dd, RPrefix: rPrefix}, nil
	}
	return Extra{}, fmt.Errorf("message: grid16=%d out of defined range: %w", grid16, ErrInvalidLocator)
}

func unpackGrid4(v uint32) string {
	c3 := v % 10
	v /= 10
	c2 := v % 10
	v /= 10
	c1 := v % 18
	v /= 18
	c0 := v
	return string([]byte{byte('A' + c0), byte('A' + c1), byte('0' + c2), byte('0' + c3)})
}

func unpackFreeOrTelemetry(p bitpack.Payload) (Message, error) {
	val, i3, n3 := unpack71(p)
	switch n3 {
	case 0:
		if i3 != 0 {
			return Message{}, fmt.Errorf("message: i3=%d n3=%d: %w", i3, n3, ErrUnsupportedType)
		}
		return Message{Kind: KindFreeText, Text: bigToText(val)}, nil
	case 5:
		return Message{Kind: KindTelemetry, Telemetry: bigToTelemetry(val)}, nil
	default:
		return Message{Kind: KindNonStandard, I3: i3, N3: n3, Raw: p}, nil
	}
}
