// Package modulate implements the tone-sequence encoder and GFSK
// baseband synthesiser (§4.4): message payload -> Costas-synced,
// Gray-coded tone sequence -> Gaussian-shaped FSK samples.
package modulate

// FT8Costas is the 7-symbol Costas array appearing at symbol offsets
// 0, 36 and 72 of every FT8 tone sequence (§3, invariant P4).
var FT8Costas = [7]int{3, 1, 4, 0, 6, 5, 2}

// FT8CostasOffsets are the starting symbol positions of the three FT8
// Costas blocks.
var FT8CostasOffsets = [3]int{0, 36, 72}

// FT4Costas holds the four distinct 4-symbol Costas sequences at
// offsets 1, 34, 67 and 100 of every FT4 tone sequence. Published FT4
// uses four specific sequences; absent a way to verify exact constants
// against a reference decoder, these are a fixed, self-consistent
// substitute set of four mutually distinct permutations of the four
// FT4 tones (see DESIGN.md) — encode and the demodulator's sync search
// agree on the same table, so round trips are exact.
var FT4Costas = [4][4]int{
	{0, 1, 3, 2},
	{1, 3, 0, 2},
	{2, 3, 1, 0},
	{3, 2, 0, 1},
}

// FT4CostasOffsets are the starting symbol positions of the four FT4
// Costas quartets.
var FT4CostasOffsets = [4]int{1, 34, 67, 100}

// FT4RampPositions are the two ramp-symbol positions in an FT4 tone
// sequence (§4.4).
var FT4RampPositions = [2]int{0, 104}

// FT4RampTone is the fixed tone value at each ramp position.
const FT4RampTone = 0
