package demod

import "github.com/ausocean/ft8/message"

// State is a candidate's position in the per-candidate decode pipeline
// (§4.5 "State machine per candidate").
type State int

const (
	CoarseSynced State = iota
	SoftMetricsReady
	LdpcOk
	LdpcFail
	CrcOk
	CrcFail
	Decoded
	Rejected
)

func (s State) String() string {
	switch s {
	case CoarseSynced:
		return "CoarseSynced"
	case SoftMetricsReady:
		return "SoftMetricsReady"
	case LdpcOk:
		return "LdpcOk"
	case LdpcFail:
		return "LdpcFail"
	case CrcOk:
		return "CrcOk"
	case CrcFail:
		return "CrcFail"
	case Decoded:
		return "Decoded"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Candidate is a coarse Costas-sync hit, progressively enriched as it
// moves through the decode pipeline (§3 "Candidate").
type Candidate struct {
	TimeBin   int
	FreqBin   int
	SyncScore float64
	State     State
	Message   message.Message
	SNRDb     float64
	LdpcErr   int
}
