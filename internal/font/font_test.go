package font

import (
	"strings"
	"testing"
)

func TestLookupKnown(t *testing.T) {
	g, ok := Lookup('A')
	if !ok {
		t.Fatal("Expected 'A' to be in the table")
	}
	want := strings.Join([]string{
		".###.",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	}, "\n")
	if g.String() != want {
		t.Errorf("Unexpected 'A' bitmap:\n%s", g.String())
	}
}

func TestLookupFallback(t *testing.T) {
	fallback, _ := Lookup(Fallback)
	for _, r := range []rune{'a', '€', '\t', '漢'} {
		g, ok := Lookup(r)
		if ok {
			t.Errorf("Expected %q to be missing", r)
		}
		if g != fallback {
			t.Errorf("Expected %q to resolve to the fallback glyph", r)
		}
	}
}

func TestTableCoverage(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		if !Has(r) {
			t.Errorf("Missing letter %q", r)
		}
	}
	for r := '0'; r <= '9'; r++ {
		if !Has(r) {
			t.Errorf("Missing digit %q", r)
		}
	}
	for _, r := range " !?.,:-" {
		if !Has(r) {
			t.Errorf("Missing punctuation %q", r)
		}
	}
}

func TestSpaceIsBlank(t *testing.T) {
	g, _ := Lookup(' ')
	for row := 0; row < 7; row++ {
		for col := 0; col < 5; col++ {
			if g.Lit(row, col) {
				t.Fatalf("Expected blank space glyph, (%d,%d) is lit", row, col)
			}
		}
	}
}

func TestLitOutOfRange(t *testing.T) {
	g, _ := Lookup('#')
	if g.Lit(-1, 0) || g.Lit(0, 5) || g.Lit(7, 0) {
		t.Error("Expected out-of-range pixels to be unlit")
	}
}

func TestParseGlyphRejectsBadRows(t *testing.T) {
	bad := [7]string{"....", ".....", ".....", ".....", ".....", ".....", "....."}
	if _, err := parseGlyph(bad); err == nil {
		t.Error("Expected an error for a short row")
	}
	bad[0] = "..x.."
	if _, err := parseGlyph(bad); err == nil {
		t.Error("Expected an error for an unknown pixel marker")
	}
}
