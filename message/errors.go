package message

import "errors"

// Error kinds from §7. HashMiss is deliberately not among them: a missing
// hash-table entry renders as the "<...>" placeholder rather than failing
// the decode (§7, §4.1 "Unpacking").
var (
	ErrInvalidCallsign  = errors.New("message: invalid callsign")
	ErrInvalidLocator   = errors.New("message: invalid locator")
	ErrInvalidCharacter = errors.New("message: invalid character")
	ErrMessageTooLong   = errors.New("message: text exceeds 13 characters")
	ErrUnsupportedType  = errors.New("message: unsupported i3/n3 combination")
)

// hashMissPlaceholder is rendered in place of a callsign whose hash isn't
// in the table (§4.1, §7).
const hashMissPlaceholder = "<...>"
