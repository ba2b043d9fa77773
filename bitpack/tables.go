package bitpack

// The six position-specific alphabets used to pack a 6-character basecall
// (§4.1: "characters are then indexed via six position-specific
// alphabets"). Position 0 and 1 cover alphanumerics (with and without a
// leading space respectively), position 2 is numeric only, and positions
// 3-5 are letters-or-space.
const (
	Call0 = " ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" // 37 symbols
	Call1 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"   // 36 symbols
	Call2 = "0123456789"                             // 10 symbols
	Call3 = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"             // 27 symbols
	Call4 = Call3
	Call5 = Call3
)

// CallTables indexes the six alphabets in packing order.
var CallTables = [6]string{Call0, Call1, Call2, Call3, Call4, Call5}

// TextAlphabet is the 42-character set accepted by FreeText messages and
// used as the base for its big-integer packing.
const TextAlphabet = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ+-./?"

// CQNumAlphabet and CQLetterAlphabet back the "CQ nnn" and "CQ ABCD"
// pseudo-callsign encodings.
const (
	CQNumAlphabet    = "0123456789"
	CQLetterAlphabet = " ABCDEFGHIJKLMNOPQRSTUVWXYZ" // 27 symbols, base-27
)

// Index returns the position of ch in alphabet, or -1 if ch is absent.
func Index(alphabet string, ch byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == ch {
			return i
		}
	}
	return -1
}
