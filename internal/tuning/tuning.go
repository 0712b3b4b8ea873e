// Package tuning turns a comma-separated list of note names into the open
// strings of an instrument.
package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jask/fretta/internal/note"
)

// ErrEmpty is returned when a tuning names no strings.
var ErrEmpty = errors.New("tuning: no strings")

// Tuning lists the open-string pitches, first string first.
type Tuning []note.PitchClass

// Standard returns six-string guitar tuning, E A D G B E.
func Standard() Tuning {
	return Tuning{note.E, note.A, note.D, note.G, note.B, note.E}
}

// Parse reads a comma-separated tuning such as "E, A, D, G, B, E". Whitespace
// anywhere inside a token is dropped before the token is parsed.
func Parse(input string) (Tuning, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmpty
	}
	parts := strings.Split(input, ",")
	out := make(Tuning, 0, len(parts))
	for i, part := range parts {
		var p note.PitchClass
		if err := p.UnmarshalText([]byte(stripSpace(part))); err != nil {
			return nil, fmt.Errorf("tuning string %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// String renders the tuning in the form Parse accepts.
func (t Tuning) String() string {
	names := make([]string, len(t))
	for i, p := range t {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

func (t Tuning) MarshalText() ([]byte, error) {
	parts := make([][]byte, len(t))
	for i, p := range t {
		b, err := p.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("tuning string %d: %w", i+1, err)
		}
		parts[i] = b
	}
	return bytes.Join(parts, []byte(", ")), nil
}

// UnmarshalText parses text with Parse, so a Tuning can be decoded straight
// from config.
func (t *Tuning) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
