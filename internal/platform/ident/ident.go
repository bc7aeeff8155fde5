// Package ident generates the portal's identifiers: opaque random tokens
// for patient and order rows, and human-readable medical record numbers.
// Generation sits behind a small interface so tests can inject
// deterministic values.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// MRNPrefix is stamped onto every generated medical record number.
const MRNPrefix = "CD"

// Generator produces identifiers for new portal records.
type Generator interface {
	// Token returns a 32-character lowercase hex token. Tokens are random,
	// not sequential, so ids do not leak creation order.
	Token() string
	// MRN returns a medical record number of the form CD-YYYYMMDD-XXXX,
	// where XXXX is a short uppercase hex suffix.
	MRN(now time.Time) string
}

// Random is the production Generator, backed by crypto/rand.
type Random struct{}

func NewRandom() *Random { return &Random{} }

func (Random) Token() string {
	return randomHex(16)
}

func (Random) MRN(now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", MRNPrefix, now.Format("20060102"), strings.ToUpper(randomHex(2)))
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// there is no sensible recovery.
		panic(fmt.Sprintf("ident: read random bytes: %v", err))
	}
	return hex.EncodeToString(buf)
}

// Sequence is a deterministic Generator for tests. Tokens count up from 1
// and MRN suffixes repeat a fixed value.
type Sequence struct {
	n      int
	Suffix string
}

func NewSequence() *Sequence { return &Sequence{Suffix: "ABCD"} }

func (s *Sequence) Token() string {
	s.n++
	return fmt.Sprintf("%032x", s.n)
}

func (s *Sequence) MRN(now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", MRNPrefix, now.Format("20060102"), s.Suffix)
}
