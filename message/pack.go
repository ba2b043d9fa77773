package message

import (
	"fmt"

	"github.com/ausocean/ft8/bitpack"
	"github.com/ausocean/ft8/callsign"
)

// Token offsets and field sizes from §4.1.
const (
	ntokens = 2063592
	max22   = 4194304
	maxGrid4 = 32400

	reservedDE  = 0
	reservedQRZ = 1
	reservedCQ  = 2
)

// Pack packs m into the 77-bit Payload (§4.1). Successfully packed or
// hashed callsigns are inserted into tbl; tbl may be nil, in which case
// unhashable long callsigns are rejected with ErrInvalidCallsign instead
// of being hashed (there would be nowhere to later look them up).
func Pack(m Message, tbl *callsign.Table) (bitpack.Payload, error) {
	switch m.Kind {
	case KindStandard:
		return packStandard(m, tbl)
	case KindFreeText:
		return packFreeText(m.Text)
	case KindTelemetry:
		return packTelemetry(m.Telemetry)
	default:
		return bitpack.Payload{}, fmt.Errorf("message: cannot pack %s message: %w", m.Kind, ErrUnsupportedType)
	}
}

func packStandard(m Message, tbl *callsign.Table) (bitpack.Payload, error) {
	ip, i3, toBase, deBase, err := splitStandardTokens(m)
	if err != nil {
		return bitpack.Payload{}, err
	}

	n28a, err := pack28(toBase, tbl)
	if err != nil {
		return bitpack.Payload{}, err
	}
	n28b, err := pack28(deBase, tbl)
	if err != nil {
		return bitpack.Payload{}, err
	}

	n29a := n28a<<1 | boolBit(ip == 1)
	n29b := n28b<<1 | boolBit(ip == 2)
	grid16, err := packExtra(m.Extra)
	if err != nil {
		return bitpack.Payload{}, err
	}

	var p bitpack.Payload
	w := bitpack.NewWriter(p[:])
	w.PutUint(uint64(n29a), 29)
	w.PutUint(uint64(n29b), 29)
	w.PutUint(uint64(grid16), 16)
	w.PutUint(uint64(i3), 3)
	return p, nil
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// splitStandardTokens separates any /R or /P suffix from the two
// callsigns and derives ip (which callsign, if any, carried the suffix)
// and i3 (2 if the suffix was /P, else 1). Combining /P and /R is
// rejected (§4.1).
func splitStandardTokens(m Message) (ip, i3 int, toBase, deBase string, err error) {
	toBase, toSuf := stripSuffix(m.CallTo)
	deBase, deSuf := stripSuffix(m.CallDe)

	switch {
	case toSuf == "" && deSuf == "":
		return 0, 1, toBase, deBase, nil
	case toSuf != "" && deSuf != "":
		return 0, 0, "", "", fmt.Errorf("message: both callsigns carry a suffix: %w", ErrInvalidCallsign)
	case toSuf != "":
		i3 = 1
		if toSuf == "/P" {
			i3 = 2
		}
		return 1, i3, toBase, deBase, nil
	default:
		i3 = 1
		if deSuf == "/P" {
			i3 = 2
		}
		return 2, i3, toBase, deBase, nil
	}
}

func stripSuffix(call string) (base, suffix string) {
	for _, suf := range []string{"/R", "/P"} {
		if len(call) > len(suf) && call[len(call)-len(suf):] == suf {
			return call[:len(call)-len(suf)], suf
		}
	}
	return call, ""
}

// pack28 implements the pack-28 procedure (§4.1).
func pack28(call string, tbl *callsign.Table) (uint32, error) {
	switch call {
	case "DE":
		return reservedDE, nil
	case "QRZ":
		return reservedQRZ, nil
	case "CQ":
		return reservedCQ, nil
	}
	if len(call) > 3 && call[:3] == "CQ " {
		rest := call[3:]
		if n, ok := cqNumValue(rest); ok {
			return uint32(3 + n), nil
		}
		if n, ok := cqLetterValue(rest); ok {
			return uint32(1003 + n), nil
		}
	}

	remapped := remapPrefix(call)
	if n, ok := packBasecall(remapped); ok {
		if tbl != nil {
			tbl.Save(call)
		}
		return uint32(ntokens + max22 + n), nil
	}

	if len(call) < 3 || len(call) > 11 {
		return 0, fmt.Errorf("message: callsign %q cannot be packed: %w", call, ErrInvalidCallsign)
	}
	if tbl == nil {
		return 0, fmt.Errorf("message: callsign %q needs hashing but no hash table was supplied: %w", call, ErrInvalidCallsign)
	}
	n22 := callsign.Hash22(call)
	tbl.Save(call)
	return uint32(ntokens) + n22, nil
}

func cqNumValue(s string) (int, bool) {
	if len(s) != 3 {
		return 0, false
	}
	n := 0
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func cqLetterValue(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	n := 0
	for i := 0; i < 4; i++ {
		idx := bitpack.Index(bitpack.CQLetterAlphabet, s[i])
		if idx < 0 {
			return 0, false
		}
		n = n*27 + idx
	}
	return n, true
}

// remapPrefix applies the two fixed country-prefix substitutions (§4.1)
// before basecall packing.
func remapPrefix(call string) string {
	switch {
	case len(call) >= 5 && call[:5] == "3DA0":
		return "3D0" + call[5:]
	case len(call) >= 2 && call[:2] == "3X":
		return "Q" + call[2:]
	default:
		return call
	}
}

// unremapPrefix reverses remapPrefix after unpacking a basecall.
func unremapPrefix(call string) string {
	switch {
	case len(call) >= 3 && call[:3] == "3D0":
		return "3DA0" + call[3:]
	case len(call) >= 1 && call[0] == 'Q':
		return "3X" + call[1:]
	default:
		return call
	}
}

// packBasecall packs a basecall into the combined 6-character-alphabet
// index described in §4.1. It returns ok=false if the call doesn't fit
// the standard 6-character buffer shape.
func packBasecall(call string) (uint32, bool) {
	buf, ok := alignBasecall(call)
	if !ok {
		return 0, false
	}
	idx := [6]int{}
	for i := 0; i < 6; i++ {
		idx[i] = bitpack.Index(bitpack.CallTables[i], buf[i])
		if idx[i] < 0 {
			return 0, false
		}
	}
	n := uint32(idx[0])
	n = n*36 + uint32(idx[1])
	n = n*10 + uint32(idx[2])
	n = n*27 + uint32(idx[3])
	n = n*27 + uint32(idx[4])
	n = n*27 + uint32(idx[5])
	return n, true
}

// alignBasecall right- or left-aligns call into a 6-character buffer so
// that its digit (found at call index 1 or 2) lands on buffer index 2,
// the position the packing formula treats as numeric (§4.1): a digit at
// call index 1 is shifted right by one, a digit at index 2 stays put.
func alignBasecall(call string) ([6]byte, bool) {
	var buf [6]byte
	for i := range buf {
		buf[i] = ' '
	}
	if len(call) < 3 || len(call) > 6 {
		return buf, false
	}
	digitAt := -1
	if isDigit(call[1]) {
		digitAt = 1
	} else if isDigit(call[2]) {
		digitAt = 2
	} else {
		return buf, false
	}

	shift := 0
	if digitAt == 1 {
		shift = 1
	}
	if shift+len(call) > 6 {
		return buf, false
	}
	copy(buf[shift:], call)
	return buf, true
}

// packExtra packs the grid/report/token "extra" field into 16 bits
// (§4.1, grid16).
func packExtra(e Extra) (uint32, error) {
	switch e.Kind {
	case ExtraNone:
		return maxGrid4 + 1, nil
	case ExtraRRR:
		return maxGrid4 + 2, nil
	case ExtraRR73:
		return maxGrid4 + 3, nil
	case Extra73:
		return maxGrid4 + 4, nil
	case ExtraGrid:
		v, err := packGrid4(e.Grid)
		if err != nil {
			return 0, err
		}
		return v, nil
	case ExtraReport:
		if e.Report < -30 || e.Report > 30 {
			return 0, fmt.Errorf("message: report %+d out of range: %w", e.Report, ErrInvalidLocator)
		}
		v := uint32(maxGrid4 + 35 + e.Report)
		if e.RPrefix {
			v |= 1 << 15
		}
		return v, nil
	default:
		return 0, fmt.Errorf("message: unknown extra kind: %w", ErrInvalidLocator)
	}
}

func packGrid4(grid string) (uint32, error) {
	if len(grid) != 4 {
		return 0, fmt.Errorf("message: grid %q must be 4 characters: %w", grid, ErrInvalidLocator)
	}
	c0, c1, c2, c3 := grid[0], grid[1], grid[2], grid[3]
	if c0 < 'A' || c0 > 'R' || c1 < 'A' || c1 > 'R' || !isDigit(c2) || !isDigit(c3) {
		return 0, fmt.Errorf("message: grid %q is not a valid locator: %w", grid, ErrInvalidLocator)
	}
	v := uint32(c0-'A')*18 + uint32(c1-'A')
	v = v*10 + uint32(c2-'0')
	v = v*10 + uint32(c3-'0')
	return v, nil
}

func packFreeText(text string) (bitpack.Payload, error) {
	if len(text) > 13 {
		return bitpack.Payload{}, fmt.Errorf("message: %w", ErrMessageTooLong)
	}
	val, err := textToBig(text)
	if err != nil {
		return bitpack.Payload{}, err
	}
	return pack71(val, 0, 0), nil
}

func packTelemetry(data [9]byte) (bitpack.Payload, error) {
	val := telemetryToBig(data)
	return pack71(val, 0, 5), nil
}
