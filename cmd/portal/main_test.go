package main

import (
	"testing"
	"time"

	"github.com/collagendirect/portal/internal/platform/ident"
)

func TestMRNPattern(t *testing.T) {
	for _, tc := range []struct {
		mrn  string
		want bool
	}{
		{"CD-20260829-1A2B", true},
		{"CD-20260829-ABCD", true},
		{"CD-20260829-abcd", false},
		{"CD-2026089-ABCD", false},
		{"XX-20260829-ABCD", false},
		{"CD-20260829-ABCDE", false},
		{"", false},
	} {
		if got := mrnPattern.MatchString(tc.mrn); got != tc.want {
			t.Errorf("mrnPattern.MatchString(%q) = %v, want %v", tc.mrn, got, tc.want)
		}
	}
}

func TestMRNPattern_MatchesGenerated(t *testing.T) {
	gen := ident.NewRandom()
	for i := 0; i < 20; i++ {
		mrn := gen.MRN(time.Now())
		if !mrnPattern.MatchString(mrn) {
			t.Errorf("generated MRN %q does not match smoke verification pattern", mrn)
		}
	}
}

func TestSmokeSchemaName(t *testing.T) {
	schema := "smoke_" + ident.NewRandom().Token()[:8]
	if len(schema) != len("smoke_")+8 {
		t.Errorf("schema %q has unexpected length", schema)
	}
}
