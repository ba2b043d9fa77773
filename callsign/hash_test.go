package callsign

import "testing"

func TestHash22Deterministic(t *testing.T) {
	h1 := Hash22("W9XYZ")
	h2 := Hash22("W9XYZ")
	if h1 != h2 {
		t.Fatalf("hash not deterministic: %d != %d", h1, h2)
	}
	if Hash22("W9XYZ") == Hash22("K1ABC") {
		t.Fatalf("distinct callsigns hashed identically (unlucky, but check alphabet indexing)")
	}
}

func TestHashTruncations(t *testing.T) {
	n22 := Hash22("VK2XYZ")
	if Hash12(n22) != n22>>10 {
		t.Fatalf("Hash12 mismatch")
	}
	if Hash10(n22) != n22>>12 {
		t.Fatalf("Hash10 mismatch")
	}
}

func TestTableSaveLookup(t *testing.T) {
	tbl := NewTable()
	tbl.Save("VK2XYZ")
	n22 := Hash22("VK2XYZ")

	if call, ok := tbl.Lookup(Width22, n22); !ok || call != "VK2XYZ" {
		t.Fatalf("Width22 lookup failed: %q, %v", call, ok)
	}
	if call, ok := tbl.Lookup(Width12, Hash12(n22)); !ok || call != "VK2XYZ" {
		t.Fatalf("Width12 lookup failed: %q, %v", call, ok)
	}
	if call, ok := tbl.Lookup(Width10, Hash10(n22)); !ok || call != "VK2XYZ" {
		t.Fatalf("Width10 lookup failed: %q, %v", call, ok)
	}
	if _, ok := tbl.Lookup(Width22, 0xdeadbe&0x3fffff); ok {
		// not guaranteed absent, but extremely likely; informational only.
		t.Log("coincidental hash collision on miss case")
	}
}

func TestTableConcurrentSaveLookup(t *testing.T) {
	tbl := NewTable()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			tbl.Save("K1ABC")
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		tbl.Lookup(Width22, Hash22("K1ABC"))
	}
	<-done
}
