// Package note models the twelve equal-tempered pitch classes.
package note

import (
	"errors"
	"fmt"
)

// PitchClass is one of the twelve pitch classes, numbered in cycle order from A.
type PitchClass uint8

const (
	A PitchClass = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

// Count is the number of pitch classes in the chromatic cycle.
const Count = 12

var names = [Count]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// aliases maps every accepted spelling to its pitch class.
var aliases = map[string]PitchClass{
	"A":  A,
	"A#": ASharp,
	"Bb": ASharp,
	"B":  B,
	"C":  C,
	"C#": CSharp,
	"Db": CSharp,
	"D":  D,
	"D#": DSharp,
	"Eb": DSharp,
	"E":  E,
	"F":  F,
	"F#": FSharp,
	"Gb": FSharp,
	"G":  G,
	"G#": GSharp,
	"Ab": GSharp,
}

// ErrInvalid is matched by every ParseError.
var ErrInvalid = errors.New("invalid note")

// ParseError reports text that is not a recognized note spelling.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return "note cannot be empty"
	}
	return "unrecognized note: " + e.Text
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalid }

// Parse returns the pitch class spelled by text. The comparison is exact:
// no trimming and no case folding, so "a" and " A" are rejected.
func Parse(text string) (PitchClass, error) {
	if p, ok := aliases[text]; ok {
		return p, nil
	}
	return 0, &ParseError{Text: text}
}

// All returns the twelve pitch classes in cycle order starting at A.
func All() []PitchClass {
	out := make([]PitchClass, Count)
	for i := range out {
		out[i] = PitchClass(i)
	}
	return out
}

// Valid reports whether p is one of the twelve pitch classes.
func (p PitchClass) Valid() bool { return p < Count }

// Next returns the pitch class one semitone above p, wrapping G# to A.
func (p PitchClass) Next() PitchClass {
	return (p + 1) % Count
}

// String returns the sharp-spelled canonical name.
func (p PitchClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchClass(%d)", uint8(p))
	}
	return names[p]
}

func (p PitchClass) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshal note: %s", p)
	}
	return []byte(p.String()), nil
}

func (p *PitchClass) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// AtFret returns the pitch sounded by fretting a string tuned to open at the
// given fret. Fret 0 is the open string; frets repeat every octave.
func AtFret(open PitchClass, fret int) PitchClass {
	steps := fret % Count
	if steps < 0 {
		steps += Count
	}
	return PitchClass((int(open) + steps) % Count)
}

// Chromatic returns the twelve pitch classes ascending from start.
func Chromatic(start PitchClass) []PitchClass {
	out := make([]PitchClass, 0, Count)
	p := start
	for range Count {
		out = append(out, p)
		p = p.Next()
	}
	return out
}
