package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/jask/fretta/internal/note"
	"github.com/jask/fretta/internal/trainer"
	"github.com/jask/fretta/internal/tuning"
)

// fixedTrainer always asks for the 5th fret of an E string, whose answer is A.
func fixedTrainer(t *testing.T) *trainer.Trainer {
	t.Helper()
	tr, err := trainer.New(tuning.Tuning{note.E}, trainer.WithFretRange(5, 5), trainer.WithSeed(1))
	require.NoError(t, err)
	return tr
}

func TestRunTranscript(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := strings.NewReader("A\n\nBb\nH#\nq\n")
	require.NoError(t, Run(context.Background(), in, &out, fixedTrainer(t), WithColor(false)))

	want := strings.Join([]string{
		"E string, fret 5",
		"Correct!",
		"",
		"E string, fret 5",
		"E string, fret 5",
		"Incorrect! The answer was: A",
		"",
		"E string, fret 5",
		"error: unrecognized note: H# (did you mean A#?)",
		"The answer was: A",
		"",
		"E string, fret 5",
		"Quitting...",
		"Session: 1/2 correct (50%), 1 invalid",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestRunQuitIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tr := fixedTrainer(t)
	require.NoError(t, Run(context.Background(), strings.NewReader("  Q  \n"), &out, tr, WithColor(false)))
	require.Equal(t, "E string, fret 5\nQuitting...\n", out.String())
	require.Zero(t, tr.Tally().Total())
}

func TestRunEndOfInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tr := fixedTrainer(t)
	require.NoError(t, Run(context.Background(), strings.NewReader("A"), &out, tr))
	require.Contains(t, out.String(), "Correct!")
	require.Contains(t, out.String(), "Session: 1/1 correct (100%)")
	require.Equal(t, 1, tr.Tally().Correct)
}

func TestRunLowercaseIsRejected(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tr := fixedTrainer(t)
	require.NoError(t, Run(context.Background(), strings.NewReader("a\nq\n"), &out, tr, WithColor(false)))
	require.Contains(t, out.String(), "error: unrecognized note: a (did you mean A?)")
	require.Equal(t, trainer.Tally{Invalid: 1}, tr.Tally())
}

func TestRunOnlyInvalidAnswers(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), strings.NewReader("x\nq\n"), &out, fixedTrainer(t), WithColor(false)))
	require.True(t, strings.HasSuffix(out.String(), "Quitting...\nSession: 0/0 correct (0%), 1 invalid\n"), out.String())
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, strings.NewReader("A\n"), &out, fixedTrainer(t))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestRunReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var out bytes.Buffer
	err := Run(context.Background(), iotest.ErrReader(boom), &out, fixedTrainer(t))
	require.ErrorIs(t, err, boom)
}
