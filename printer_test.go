// printer_test.go
package gpr

import "testing"

func Test_Printer_ChunkCanonicalText(t *testing.T) {
	cases := []struct {
		c    Chunk
		want string
	}{
		{NewComment('(', ')', "tool change"), "(tool change)"},
		{NewComment('[', ']', "msg"), "[msg]"},
		{NewComment(';', ';', "foo"), ";foo;"},
		{NewWordAddress('X', FloatAddress(10.5)), "X10.5"},
		{NewWordAddress('Y', FloatAddress(-3.2)), "Y-3.2"},
		{NewWordAddress('G', IntAddress(0)), "G0"},
		{NewWordAddress('x', FloatAddress(1)), "x1"},
		{NewPercent(), "%"},
		{NewIsolatedWord('X'), "X"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}

func Test_Printer_BlockRendering(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"G0   X0", "G0 X0"},
		{"/N10 G1 X1", "/N10 G1 X1"},
		{"/ G1", "/ G1"},
		{"N5", "N5"},
		{"%", "%"},
		{"(c) G1", "(c) G1"},
	}
	for _, tc := range cases {
		b := oneBlock(t, tc.src)
		if got := b.String(); got != tc.want {
			t.Fatalf("block %q: want %q, got %q", tc.src, tc.want, got)
		}
	}
}

func Test_Printer_ProgramRendering(t *testing.T) {
	prog := parsed(t, "G0 X0\n\nG1 X1\n")
	if got := prog.String(); got != "G0 X0\nG1 X1" {
		t.Fatalf("want %q, got %q", "G0 X0\nG1 X1", got)
	}
}

func Test_Printer_RoundTripStability(t *testing.T) {
	// Parsing, printing, and re-parsing yields a structurally equal
	// block, flags included, even though the text itself may differ
	// from the source.
	lines := []string{
		"G0 X10.5 Y-3.2",
		"(outer (inner) done) G1",
		"/N10 G1 X1",
		"/G0 X0",
		"%",
		"G1 X",
		"[tool change] T2 M6",
		"N100 G2 I0.5 J-0.5 F120.5",
		"g1 x2.5 s1000",
	}
	for _, line := range lines {
		b := oneBlock(t, line)
		again := oneBlock(t, b.String())
		if !b.Equal(again) {
			t.Fatalf("round trip of %q changed the block: %q -> %q", line, b, again)
		}
	}
}
