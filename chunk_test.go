// chunk_test.go
package gpr

import "testing"

func Test_Chunk_Equality(t *testing.T) {
	cases := []struct {
		name string
		a, b Chunk
		want bool
	}{
		{"same comment", NewComment('(', ')', "hi"), NewComment('(', ')', "hi"), true},
		{"different comment text", NewComment('(', ')', "hi"), NewComment('(', ')', "ho"), false},
		{"different delimiters", NewComment('(', ')', "hi"), NewComment('[', ']', "hi"), false},
		{"same word address", NewWordAddress('X', FloatAddress(1.5)), NewWordAddress('X', FloatAddress(1.5)), true},
		{"different letter", NewWordAddress('X', FloatAddress(1.5)), NewWordAddress('Y', FloatAddress(1.5)), false},
		{"different value", NewWordAddress('G', IntAddress(0)), NewWordAddress('G', IntAddress(1)), false},
		{"percent chunks are all equal", NewPercent(), NewPercent(), true},
		{"same isolated word", NewIsolatedWord('X'), NewIsolatedWord('X'), true},
		{"different isolated word", NewIsolatedWord('X'), NewIsolatedWord('Y'), false},
		{"different variants", NewIsolatedWord('X'), NewWordAddress('X', IntAddress(0)), false},
		{"percent vs word", NewPercent(), NewIsolatedWord('%'), false},
	}
	for _, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Fatalf("%s: Equal=%v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Equal(tc.a); got != tc.want {
			t.Fatalf("%s: equality must be symmetric", tc.name)
		}
	}
}

func Test_Chunk_WrongVariantAccessPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		fn()
	}
	wa := NewWordAddress('X', FloatAddress(1))
	mustPanic("CommentText on word-address", func() { _ = wa.CommentText() })
	mustPanic("Word on word-address", func() { _ = wa.Word() })
	mustPanic("Letter on percent", func() { _ = NewPercent().Letter() })
	mustPanic("Address on comment", func() { _ = NewComment('(', ')', "x").Address() })
}

func Test_Block_Equality(t *testing.T) {
	chunks := []Chunk{NewWordAddress('G', IntAddress(1))}

	a := NewNumberedBlock(10, true, chunks)
	b := NewNumberedBlock(10, true, chunks)
	if !a.Equal(b) {
		t.Fatalf("identical blocks must be equal")
	}
	if a.Equal(NewNumberedBlock(11, true, chunks)) {
		t.Fatalf("different line numbers must not be equal")
	}
	if a.Equal(NewNumberedBlock(10, false, chunks)) {
		t.Fatalf("different deleted flags must not be equal")
	}
	if a.Equal(NewBlock(true, chunks)) {
		t.Fatalf("numbered and unnumbered blocks must not be equal")
	}

	// Debug text is an annotation, not structure.
	c := NewNumberedBlock(10, true, chunks)
	c.SetDebugText("N10 G1")
	if !a.Equal(c) {
		t.Fatalf("debug text must not affect equality")
	}
}

func Test_Block_LineNumberAccessPanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for LineNumber on unnumbered block")
		}
	}()
	_ = NewBlock(false, nil).LineNumber()
}
