package main

import (
	"bytes"
	"strings"
	"testing"

	"pixelmask.klederson.com/internal/masking"
)

func TestPrintFrameBlock(t *testing.T) {
	var buf bytes.Buffer
	if err := printFrame(&buf, "a", masking.Block{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Expected 9 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if len([]rune(l)) != 7 {
			t.Errorf("line %d: expected 7 columns, got %q", i, l)
		}
	}
	// block (0,0) static symbol, glyph margin row
	if lines[0][:4] != "!!!!" {
		t.Errorf("Expected static '!' across block (0,0), got %q", lines[0])
	}
}

func TestPrintFrameEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printFrame(&buf, "", masking.Wave{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output for empty text, got %q", buf.String())
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"algorithms"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, name := range []string{"Random", "Wave", "Block"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected %s in the listing", name)
		}
	}
}

func TestUnknownAlgorithmFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--once", "--algorithm", "plasma"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for an unknown algorithm")
	}
}

func TestOnceFlag(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--once", "-t", "hi", "-a", "wave"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 9 {
		t.Errorf("Expected 9 lines, got %d", got)
	}
}
