package callsign

import "sync"

// Table is a process-wide mapping from a callsign's 22-bit hash to the
// callsign text, queryable by the full 22-bit hash or by its 12- or
// 10-bit truncation. It is safe for concurrent save/lookup calls (§5).
type Table struct {
	mu   sync.RWMutex
	byN22 map[uint32]string
}

// NewTable returns an empty hash table.
func NewTable() *Table {
	return &Table{byN22: make(map[uint32]string)}
}

// Save records call under its 22-bit hash, overwriting any previous
// callsign that hashed to the same value.
func (t *Table) Save(call string) {
	n22 := Hash22(call)
	t.mu.Lock()
	t.byN22[n22] = call
	t.mu.Unlock()
}

// Width selects which truncation of the stored hash a Lookup matches
// against.
type Width int

const (
	Width22 Width = 22
	Width12 Width = 12
	Width10 Width = 10
)

// Lookup returns the callsign whose hash matches hash under the given
// width, and whether one was found. When more than one stored callsign
// truncates to the same 12- or 10-bit value, which of them is returned
// is not defined.
func (t *Table) Lookup(width Width, hash uint32) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	switch width {
	case Width22:
		call, ok := t.byN22[hash]
		return call, ok
	case Width12:
		for n22, call := range t.byN22 {
			if Hash12(n22) == hash {
				return call, true
			}
		}
	case Width10:
		for n22, call := range t.byN22 {
			if Hash10(n22) == hash {
				return call, true
			}
		}
	}
	return "", false
}

// Len returns the number of distinct 22-bit hashes currently stored.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byN22)
}
