// Package message implements the FT8/FT4 message codec (§4.1): textual
// message classification, packing into the 77-bit Payload, and the
// inverse unpacking.
package message

// Kind discriminates the Message variants described in §3.
type Kind int

const (
	KindInvalid Kind = iota
	KindStandard
	KindFreeText
	KindTelemetry
	KindNonStandard
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "Standard"
	case KindFreeText:
		return "FreeText"
	case KindTelemetry:
		return "Telemetry"
	case KindNonStandard:
		return "NonStandard"
	default:
		return "Invalid"
	}
}

// ExtraKind discriminates the forms the third Standard-message token can
// take.
type ExtraKind int

const (
	ExtraNone ExtraKind = iota
	ExtraGrid
	ExtraReport
	ExtraRRR
	ExtraRR73
	Extra73
)

// Extra is the optional third token of a Standard message.
type Extra struct {
	Kind ExtraKind

	// Grid is the 4-character Maidenhead locator, set when Kind == ExtraGrid.
	Grid string

	// Report is the signed dB value in [-30, 30], set when Kind == ExtraReport.
	Report int

	// RPrefix is true when a report token was written "R±dd" rather than "±dd".
	RPrefix bool
}

func (e Extra) String() string {
	switch e.Kind {
	case ExtraGrid:
		return e.Grid
	case ExtraRRR:
		return "RRR"
	case ExtraRR73:
		return "RR73"
	case Extra73:
		return "73"
	case ExtraReport:
		s := ""
		if e.RPrefix {
			s = "R"
		}
		if e.Report >= 0 {
			return s + "+" + pad2(e.Report)
		}
		return s + "-" + pad2(-e.Report)
	default:
		return ""
	}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + itoa(n)
	}
	return itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Message is the tagged variant decoded from, or packed into, the 77-bit
// Payload (§3).
type Message struct {
	Kind Kind

	// Standard fields.
	CallTo string
	CallDe string
	Extra  Extra

	// FreeText field.
	Text string

	// Telemetry field: 9 raw bytes (top 71 bits used, lowest bit of byte 8 spare).
	Telemetry [9]byte

	// NonStandard fields: i3/n3 preserved verbatim, raw holds the 77
	// payload bits the parser could not further interpret (§4.1,
	// "UnsupportedType").
	I3  int
	N3  int
	Raw [10]byte
}
