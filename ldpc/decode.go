package ldpc

import (
	"math"

	"github.com/ausocean/ft8/bitpack"
)

// DefaultMaxIterations is the default sum-product iteration cap (§4.3).
const DefaultMaxIterations = 20

const (
	mClamp = 20.0
	aClamp = 0.999999
)

// Decode runs the sum-product belief-propagation LDPC decoder (§4.3
// "LDPC decode (belief propagation, Sum-Product)") over 174 channel
// LLRs, L(i) = log P(bit=0)/P(bit=1), positive meaning bit 0 is more
// likely. It returns the minimum-syndrome-error codeword found over
// maxIter iterations and that error count; success requires errors==0
// (invariant P2). Callers always supply exactly numCodewordBits LLRs.
func Decode(llrs []float64, maxIter int) (bitpack.Codeword, int) {
	var llr [numCodewordBits]float64
	copy(llr[:], llrs)

	// m[j][i] and e[j][i] are stored per check row, indexed by the
	// variable's position within checkToVar[j] rather than a dense
	// NxN matrix, since each row only has 6 or 7 incident variables.
	mv := make([][]float64, numParityChecks)
	ec := make([][]float64, numParityChecks)
	for j, row := range checkToVar {
		mv[j] = make([]float64, len(row))
		ec[j] = make([]float64, len(row))
		for k, vi := range row {
			mv[j][k] = llr[vi]
		}
	}

	var best bitpack.Codeword
	bestErrors := numParityChecks + 1

	for iter := 0; iter < maxIter; iter++ {
		// 1. Check-node update. a is the product of tanh(m/2) over every
		// other variable on the check; taking the product without an
		// extra per-term sign flip keeps e[j][i1] independent of the
		// row's weight parity, which a per-term "-m/2" does not (it
		// would flip sign on odd-weight rows relative to even-weight
		// ones for the same bit value).
		for j, row := range checkToVar {
			n := len(row)
			for i1 := 0; i1 < n; i1++ {
				a := 1.0
				for i2 := 0; i2 < n; i2++ {
					if i2 == i1 {
						continue
					}
					a *= math.Tanh(clamp(mv[j][i2], mClamp) / 2)
				}
				ec[j][i1] = 2 * math.Atanh(clamp(a, aClamp))
			}
		}

		// 2. Hard decision: positive sum means bit 0 is more likely
		// (§4.3's LLR sign convention).
		var bits [numCodewordBits]int
		for i := 0; i < numCodewordBits; i++ {
			sum := llr[i]
			for _, j := range varToCheck[i] {
				sum += edgeValue(j, i, ec)
			}
			if sum <= 0 {
				bits[i] = 1
			}
		}

		// 3. Syndrome check.
		errors := syndromeErrors(bits)
		if errors < bestErrors {
			bestErrors = errors
			best = packBits(bits)
		}
		if errors == 0 {
			return best, 0
		}

		// 4. Variable-to-check update.
		for i := 0; i < numCodewordBits; i++ {
			checks := varToCheck[i]
			for _, j1 := range checks {
				sum := llr[i]
				for _, j2 := range checks {
					if j2 == j1 {
						continue
					}
					sum += edgeValue(j2, i, ec)
				}
				setEdge(j1, i, mv, sum)
			}
		}
	}

	return best, bestErrors
}

func clamp(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

func edgeValue(check, variable int, e [][]float64) float64 {
	for k, vi := range checkToVar[check] {
		if vi == variable {
			return e[check][k]
		}
	}
	return 0
}

func setEdge(check, variable int, m [][]float64, val float64) {
	for k, vi := range checkToVar[check] {
		if vi == variable {
			m[check][k] = val
			return
		}
	}
}

func syndromeErrors(bits [numCodewordBits]int) int {
	errors := 0
	for _, row := range checkToVar {
		sum := 0
		for _, vi := range row {
			sum ^= bits[vi]
		}
		if sum != 0 {
			errors++
		}
	}
	return errors
}

func packBits(bits [numCodewordBits]int) bitpack.Codeword {
	var c bitpack.Codeword
	for i, b := range bits {
		bitpack.SetBit(c[:], i, b)
	}
	return c
}
