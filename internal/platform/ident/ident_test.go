package ident

import (
	"regexp"
	"testing"
	"time"
)

var mrnPattern = regexp.MustCompile(`^CD-\d{8}-[0-9A-F]{4}$`)

func TestRandom_Token(t *testing.T) {
	g := NewRandom()
	tok := g.Token()
	if len(tok) != 32 {
		t.Fatalf("expected 32-char token, got %d chars: %q", len(tok), tok)
	}
	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(tok) {
		t.Errorf("token is not lowercase hex: %q", tok)
	}
}

func TestRandom_TokenUnique(t *testing.T) {
	g := NewRandom()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := g.Token()
		if seen[tok] {
			t.Fatalf("duplicate token after %d draws: %q", i, tok)
		}
		seen[tok] = true
	}
}

func TestRandom_MRNFormat(t *testing.T) {
	g := NewRandom()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	mrn := g.MRN(now)
	if !mrnPattern.MatchString(mrn) {
		t.Fatalf("MRN %q does not match expected pattern", mrn)
	}
	if mrn[3:11] != "20260314" {
		t.Errorf("MRN date segment: expected 20260314, got %s", mrn[3:11])
	}
}

func TestSequence_Deterministic(t *testing.T) {
	g := NewSequence()
	first := g.Token()
	second := g.Token()
	if first == second {
		t.Error("sequence tokens should differ")
	}
	if len(first) != 32 {
		t.Errorf("expected 32-char token, got %d", len(first))
	}
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := g.MRN(now); got != "CD-20260102-ABCD" {
		t.Errorf("unexpected sequence MRN: %s", got)
	}
}
