package message

import (
	"testing"

	"github.com/ausocean/ft8/callsign"
	"github.com/google/go-cmp/cmp"
)

func TestParseStandardCQGrid(t *testing.T) {
	m := Parse("CQ K1ABC FN42")
	want := Message{Kind: KindStandard, CallTo: "CQ", CallDe: "K1ABC", Extra: Extra{Kind: ExtraGrid, Grid: "FN42"}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStandardReport(t *testing.T) {
	m := Parse("K1ABC W9XYZ -10")
	want := Message{Kind: KindStandard, CallTo: "K1ABC", CallDe: "W9XYZ", Extra: Extra{Kind: ExtraReport, Report: -10}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFreeText(t *testing.T) {
	m := Parse("TNX FOR QSO 73")
	if m.Kind != KindFreeText {
		t.Fatalf("expected FreeText, got %s", m.Kind)
	}
}

func TestStandardRoundTrip(t *testing.T) {
	cases := []string{
		"CQ K1ABC FN42",
		"K1ABC W9XYZ -10",
		"K1ABC W9XYZ R-10",
		"W9XYZ K1ABC RRR",
		"W9XYZ K1ABC RR73",
		"W9XYZ K1ABC 73",
		"CQ 123 K1ABC",
		"CQ ABCD K1ABC",
		"K1ABC/R W9XYZ FN42",
		"K1ABC W9XYZ/P FN42",
	}
	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			tbl := callsign.NewTable()
			m := Parse(text)
			if m.Kind != KindStandard {
				t.Fatalf("Parse(%q) = %s, want Standard", text, m.Kind)
			}
			p, err := Pack(m, tbl)
			if err != nil {
				t.Fatalf("Pack: %v", err)
			}
			got, err := Unpack(p, tbl)
			if err != nil {
				t.Fatalf("Unpack: %v", err)
			}
			gotText := got.CallTo + " " + got.CallDe
			if got.Extra.Kind != ExtraNone {
				gotText += " " + got.Extra.String()
			}
			if gotText != Normalise(text) {
				t.Errorf("round trip = %q, want %q", gotText, Normalise(text))
			}
		})
	}
}

func TestFreeTextRoundTrip(t *testing.T) {
	for _, text := range []string{"TNX FOR QSO 73", "HELLO WORLD", "A", ""} {
		p, err := Pack(Message{Kind: KindFreeText, Text: text}, nil)
		if err != nil {
			t.Fatalf("Pack(%q): %v", text, err)
		}
		got, err := Unpack(p, nil)
		if err != nil {
			t.Fatalf("Unpack: %v", err)
		}
		if got.Kind != KindFreeText || got.Text != text {
			t.Errorf("round trip = %q (%s), want %q", got.Text, got.Kind, text)
		}
	}
}

func TestHashMissPlaceholder(t *testing.T) {
	tbl := callsign.NewTable()
	m := Parse("CQ VK2ABCDEFG FN42") // 10-char base, forces a hash
	if m.Kind != KindStandard {
		t.Fatalf("Parse = %s, want Standard", m.Kind)
	}
	p, err := Pack(m, tbl)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	emptyTbl := callsign.NewTable()
	got, err := Unpack(p, emptyTbl)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.CallDe != "<...>" {
		t.Errorf("CallDe = %q, want hash-miss placeholder", got.CallDe)
	}

	got2, err := Unpack(p, tbl)
	if err != nil {
		t.Fatalf("Unpack with populated table: %v", err)
	}
	if got2.CallDe != "VK2ABCDEFG" {
		t.Errorf("CallDe = %q, want VK2ABCDEFG", got2.CallDe)
	}
}

func TestTelemetryParseAndPack(t *testing.T) {
	m := Parse("0123456789ABCDEF00")
	if m.Kind != KindTelemetry {
		t.Fatalf("Parse = %s, want Telemetry", m.Kind)
	}
	if _, err := Pack(m, nil); err != nil {
		t.Fatalf("Pack: %v", err)
	}
}

func TestTelemetryRoundTrip(t *testing.T) {
	data := [9]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x00}
	p, err := Pack(Message{Kind: KindTelemetry, Telemetry: data}, nil)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got, err := Unpack(p, nil)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.Kind != KindTelemetry {
		t.Fatalf("round trip kind = %s, want Telemetry", got.Kind)
	}
	if got.Telemetry != data {
		t.Errorf("round trip telemetry = % X, want % X", got.Telemetry, data)
	}
}

func TestInvalid(t *testing.T) {
	m := Parse("THIS IS WAY TOO LONG TO BE FREETEXT AND NOT STANDARD EITHER")
	if m.Kind != KindInvalid {
		t.Fatalf("Parse = %s, want Invalid", m.Kind)
	}
}
