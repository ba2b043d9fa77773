package message

import (
	"strconv"
	"strings"

	"github.com/ausocean/ft8/bitpack"
)

const maxTextLen = 13

// Normalise uppercases s and collapses runs of whitespace to single
// spaces, trimming the ends (P1's "normalise(T)").
func Normalise(s string) string {
	fields := strings.Fields(strings.ToUpper(s))
	return strings.Join(fields, " ")
}

// Parse classifies text into exactly one Message variant (§4.1). Parse
// itself never fails: an unrecognised string is reported as
// Message{Kind: KindInvalid}.
func Parse(text string) Message {
	norm := Normalise(text)

	if isTelemetry(norm) {
		return parseTelemetry(norm)
	}

	if m, ok := parseStandard(norm); ok {
		return m
	}

	if len(norm) <= maxTextLen && isFreeText(norm) {
		return Message{Kind: KindFreeText, Text: norm}
	}

	return Message{Kind: KindInvalid}
}

func isTelemetry(s string) bool {
	if len(s) != 18 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return false
		}
	}
	return true
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F')
}

func parseTelemetry(s string) Message {
	var raw [9]byte
	for i := 0; i < 9; i++ {
		hi := hexVal(s[2*i])
		lo := hexVal(s[2*i+1])
		raw[i] = hi<<4 | lo
	}
	return Message{Kind: KindTelemetry, Telemetry: raw}
}

func hexVal(b byte) byte {
	if b >= '0' && b <= '9' {
		return b - '0'
	}
	return b - 'A' + 10
}

func isFreeText(s string) bool {
	for i := 0; i < len(s); i++ {
		if bitpack.Index(bitpack.TextAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

func parseStandard(s string) (Message, bool) {
	toks := strings.Fields(s)
	toks = mergeCQForm(toks)
	if len(toks) < 2 || len(toks) > 3 {
		return Message{}, false
	}

	callTo, okTo := parseCallToken(toks[0])
	callDe, okDe := parseCallToken(toks[1])
	if !okTo || !okDe {
		return Message{}, false
	}

	m := Message{Kind: KindStandard, CallTo: callTo, CallDe: callDe}
	if len(toks) == 3 {
		extra, ok := parseExtra(toks[2])
		if !ok {
			return Message{}, false
		}
		m.Extra = extra
	}
	return m, true
}

// mergeCQForm rewrites ["CQ", "123", ...] or ["CQ", "ABCD", ...] into
// ["CQ 123", ...] / ["CQ ABCD", ...] so the remaining grammar only ever
// has to deal with 2 or 3 tokens (§4.1, "CQ nnn and CQ ABCD are
// recognised CQ sub-forms").
func mergeCQForm(toks []string) []string {
	if len(toks) < 2 || toks[0] != "CQ" {
		return toks
	}
	if isCQNum(toks[1]) || isCQLetters(toks[1]) {
		merged := append([]string{toks[0] + " " + toks[1]}, toks[2:]...)
		return merged
	}
	return toks
}

func isCQNum(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isCQLetters(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// parseCallToken validates a single call-grammar token: a bare pseudo-call
// (DE, QRZ, CQ, "CQ nnn", "CQ ABCD") or BASE[/R|/P].
func parseCallToken(tok string) (string, bool) {
	switch tok {
	case "DE", "QRZ", "CQ":
		return tok, true
	}
	if strings.HasPrefix(tok, "CQ ") {
		rest := tok[3:]
		if isCQNum(rest) || isCQLetters(rest) {
			return tok, true
		}
		return "", false
	}

	base, suffix, ok := splitSuffix(tok)
	if !ok {
		return "", false
	}
	if !validBasecallShape(base) {
		return "", false
	}
	return base + suffix, true
}

func splitSuffix(tok string) (base, suffix string, ok bool) {
	if i := strings.LastIndex(tok, "/"); i >= 0 {
		suf := tok[i:]
		if suf != "/R" && suf != "/P" {
			return "", "", false
		}
		return tok[:i], suf, true
	}
	return tok, "", true
}

// validBasecallShape checks the "alphanumeric with a digit in position 2
// or 3" rule (1-indexed: the call's 2nd or 3rd character). The grammar
// accepts 3-11 characters (§4.1's pack-28 hashing range); only direct
// 6-character-alphabet packing (packBasecall) is limited to 6.
func validBasecallShape(base string) bool {
	if len(base) < 3 || len(base) > 11 {
		return false
	}
	for i := 0; i < len(base); i++ {
		c := base[i]
		if !isAlnum(c) {
			return false
		}
	}
	return isDigit(base[1]) || isDigit(base[2])
}

func isAlnum(c byte) bool {
	return (c >= 'A' && c <= 'Z') || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func parseExtra(tok string) (Extra, bool) {
	switch tok {
	case "RRR":
		return Extra{Kind: ExtraRRR}, true
	case "RR73":
		return Extra{Kind: ExtraRR73}, true
	case "73":
		return Extra{Kind: Extra73}, true
	}
	if e, ok := parseReport(tok); ok {
		return e, true
	}
	if g, ok := parseGrid(tok); ok {
		return Extra{Kind: ExtraGrid, Grid: g}, true
	}
	return Extra{}, false
}

func parseReport(tok string) (Extra, bool) {
	rest := tok
	rPrefix := false
	if strings.HasPrefix(rest, "R") {
		rPrefix = true
		rest = rest[1:]
	}
	if len(rest) != 3 {
		return Extra{}, false
	}
	sign := rest[0]
	if sign != '+' && sign != '-' {
		return Extra{}, false
	}
	if !isDigit(rest[1]) || !isDigit(rest[2]) {
		return Extra{}, false
	}
	dd, _ := strconv.Atoi(rest[1:3])
	if dd < 0 || dd > 30 {
		return Extra{}, false
	}
	if sign == '-' {
		dd = -dd
	}
	return Extra{Kind: ExtraReport, Report: dd, RPrefix: rPrefix}, true
}

func parseGrid(tok string) (string, bool) {
	if len(tok) != 4 && len(tok) != 6 {
		return "", false
	}
	if tok[0] < 'A' || tok[0] > 'R' || tok[1] < 'A' || tok[1] > 'R' {
		return "", false
	}
	if !isDigit(tok[2]) || !isDigit(tok[3]) {
		return "", false
	}
	if len(tok) == 6 {
		if tok[4] < 'A' || tok[4] > 'X' || tok[5] < 'A' || tok[5] > 'X' {
			return "", false
		}
	}
	return tok[:4], true
}
