// Package trainer picks fretboard questions and grades the answers.
package trainer

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/fretta/internal/note"
	"github.com/jask/fretta/internal/tuning"
)

const (
	// DefaultMinFret is the lowest fret asked about unless configured.
	DefaultMinFret = 1
	// DefaultMaxFret is the highest fret asked about unless configured.
	DefaultMaxFret = 22
	// MaxFret bounds any configured range; no fretted instrument goes higher.
	MaxFret = 36
)

// ErrStaleRound is returned by Check for a round that was already graded or
// is not the one most recently handed out by Next.
var ErrStaleRound = errors.New("round already graded or superseded")

// Round is a single question: name the note at Fret on string StringIndex.
type Round struct {
	ID          string
	StringIndex int
	Open        note.PitchClass
	Fret        int
}

// Answer returns the pitch the user is expected to name.
func (r Round) Answer() note.PitchClass {
	return note.AtFret(r.Open, r.Fret)
}

// Prompt is the question text, e.g. "E string, fret 5".
func (r Round) Prompt() string {
	return fmt.Sprintf("%s string, fret %d", r.Open, r.Fret)
}

// Outcome is a graded answer.
type Outcome struct {
	Round   Round
	Guess   note.PitchClass
	Answer  note.PitchClass
	Correct bool
}

// Trainer hands out rounds for a tuning and keeps the session tally.
// A Trainer is not safe for concurrent use.
type Trainer struct {
	tuning  tuning.Tuning
	minFret int
	maxFret int
	rng     *rand.Rand
	tally   Tally
	pending string
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithFretRange limits the frets asked about to [lo, hi].
func WithFretRange(lo, hi int) Option {
	return func(t *Trainer) {
		t.minFret = lo
		t.maxFret = hi
	}
}

// WithRand sets the random source; tests use it for repeatable rounds.
func WithRand(r *rand.Rand) Option {
	return func(t *Trainer) { t.rng = r }
}

// WithSeed seeds the random source. A zero seed leaves it time-based.
func WithSeed(seed int64) Option {
	return func(t *Trainer) {
		if seed != 0 {
			t.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// New validates the tuning and fret range and returns a ready Trainer.
func New(tun tuning.Tuning, opts ...Option) (*Trainer, error) {
	t := &Trainer{
		tuning:  append(tuning.Tuning(nil), tun...),
		minFret: DefaultMinFret,
		maxFret: DefaultMaxFret,
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.tuning) == 0 {
		return nil, tuning.ErrEmpty
	}
	if t.minFret < 0 {
		return nil, fmt.Errorf("fret range: min %d is negative", t.minFret)
	}
	if t.minFret > t.maxFret {
		return nil, fmt.Errorf("fret range: min %d above max %d", t.minFret, t.maxFret)
	}
	if t.maxFret > MaxFret {
		return nil, fmt.Errorf("fret range: max %d above %d", t.maxFret, MaxFret)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return t, nil
}

// Tuning returns a copy of the tuning in use.
func (t *Trainer) Tuning() tuning.Tuning {
	return append(tuning.Tuning(nil), t.tuning...)
}

// FretRange returns the inclusive fret bounds.
func (t *Trainer) FretRange() (int, int) { return t.minFret, t.maxFret }

// Next picks a uniformly random string and fret. The returned round replaces
// any round still waiting for an answer.
func (t *Trainer) Next() Round {
	idx := t.rng.Intn(len(t.tuning))
	fret := t.minFret + t.rng.Intn(t.maxFret-t.minFret+1)
	r := Round{
		ID:          uuid.NewString(),
		StringIndex: idx,
		Open:        t.tuning[idx],
		Fret:        fret,
	}
	t.pending = r.ID
	return r
}

// Check grades input against r, which must be the round last returned by
// Next. Each round is graded once; an invalid answer forfeits it too.
// Surrounding whitespace is ignored; anything else must be an exact note
// spelling. A parse failure is returned as is and counted as invalid.
func (t *Trainer) Check(r Round, input string) (Outcome, error) {
	if r.ID == "" || r.ID != t.pending {
		return Outcome{}, ErrStaleRound
	}
	t.pending = ""

	guess, err := note.Parse(strings.TrimSpace(input))
	if err != nil {
		t.tally.Invalid++
		return Outcome{}, err
	}
	out := Outcome{Round: r, Guess: guess, Answer: r.Answer()}
	out.Correct = out.Guess == out.Answer
	if out.Correct {
		t.tally.Correct++
	} else {
		t.tally.Incorrect++
	}
	return out, nil
}

// Tally returns the counts so far.
func (t *Trainer) Tally() Tally { return t.tally }

// IsQuit reports whether input asks to end the session.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "q")
}

// IsInvalid reports whether err came from an unrecognized answer.
func IsInvalid(err error) bool {
	return errors.Is(err, note.ErrInvalid)
}
