package note

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a misspelling may be from a real alias.
const maxSuggestDistance = 1

// Suggest returns the recognized spelling closest to text, for "did you mean"
// hints after a failed Parse. It does not relax Parse itself.
//
// A different-case alias wins first, then a letter with accidentals that
// Parse does not spell (Fb, B#, Ebb, A♯) is resolved to its enharmonic pitch,
// and finally the nearest alias by edit distance, preferring one that starts
// with the same letter.
func Suggest(text string) (PitchClass, string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, "", false
	}

	spellings := make([]string, 0, len(aliases))
	for s := range aliases {
		spellings = append(spellings, s)
	}
	sort.Strings(spellings)

	for _, s := range spellings {
		if strings.EqualFold(s, text) {
			return aliases[s], s, true
		}
	}

	if p, ok := enharmonic(text); ok {
		return p, p.String(), true
	}

	best, bestDist, bestSame := "", maxSuggestDistance+1, false
	for _, s := range spellings {
		d := levenshtein.ComputeDistance(s, text)
		same := sameLetter(s, text)
		if d < bestDist || (d == bestDist && same && !bestSame) {
			best, bestDist, bestSame = s, d, same
		}
	}
	if best == "" {
		return 0, "", false
	}
	return aliases[best], best, true
}

// enharmonic reads a note letter followed by one or more sharps or flats.
func enharmonic(text string) (PitchClass, bool) {
	letter, size := utf8.DecodeRuneInString(text)
	base, ok := aliases[strings.ToUpper(string(letter))]
	if !ok || size == len(text) {
		return 0, false
	}
	steps := 0
	for _, r := range text[size:] {
		switch r {
		case '#', '♯':
			steps++
		case 'b', '♭':
			steps--
		default:
			return 0, false
		}
	}
	return AtFret(base, steps), true
}

func sameLetter(a, b string) bool {
	ra, _ := utf8.DecodeRuneInString(a)
	rb, _ := utf8.DecodeRuneInString(b)
	return strings.EqualFold(string(ra), string(rb))
}
