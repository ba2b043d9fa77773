package bitpack

import "testing"

func TestWriterReaderRoundTrip(t *testing.T) {
	cases := []struct {
		vals  []uint64
		width []int
	}{
		{vals: []uint64{1, 0, 7}, width: []int{1, 1, 3}},
		{vals: []uint64{123456789, 3}, width: []int{29, 3}},
		{vals: []uint64{0x3fff}, width: []int{14}},
	}
	for _, c := range cases {
		total := 0
		for _, w := range c.width {
			total += w
		}
		buf := make([]byte, (total+7)/8)
		w := NewWriter(buf)
		for i, v := range c.vals {
			w.PutUint(v, c.width[i])
		}
		r := NewReader(buf)
		for i, v := range c.vals {
			got := r.GetUint(c.width[i])
			if got != v {
				t.Errorf("field %d: got %d want %d", i, got, v)
			}
		}
	}
}

func TestBitSetGet(t *testing.T) {
	buf := make([]byte, 2)
	SetBit(buf, 0, 1)
	SetBit(buf, 15, 1)
	if Bit(buf, 0) != 1 || Bit(buf, 15) != 1 {
		t.Fatalf("expected bits 0 and 15 set, got %08b %08b", buf[0], buf[1])
	}
	if Bit(buf, 1) != 0 {
		t.Fatalf("expected bit 1 clear")
	}
}

func TestIndex(t *testing.T) {
	if Index(Call2, '5') != 5 {
		t.Fatalf("expected index 5")
	}
	if Index(Call3, ' ') != 0 {
		t.Fatalf("expected space at index 0")
	}
	if Index(Call3, 'Z') != 26 {
		t.Fatalf("expected Z at index 26")
	}
	if Index(Call3, '9') != -1 {
		t.Fatalf("expected -1 for unknown character")
	}
}
