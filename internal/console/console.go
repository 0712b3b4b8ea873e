// Package console runs the trainer as a plain read-eval-print loop.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fretta/internal/note"
	"github.com/jask/fretta/internal/trainer"
)

// Option configures Run.
type Option func(*session)

// WithColor turns styling on or off. Styling is also dropped when out is not
// a terminal.
func WithColor(on bool) Option {
	return func(s *session) { s.color = on }
}

type session struct {
	out    io.Writer
	tr     *trainer.Trainer
	color  bool
	styles styles
}

// Run asks questions until the user quits, input ends or ctx is done. It
// returns nil on quit or end of input.
func Run(ctx context.Context, in io.Reader, out io.Writer, tr *trainer.Trainer, opts ...Option) error {
	s := &session{out: out, tr: tr, color: true}
	for _, opt := range opts {
		opt(s)
	}
	s.styles = newStyles(lipgloss.NewRenderer(out), s.color)

	sc := bufio.NewScanner(in)
	for {
		round := tr.Next()
		input, ok, err := s.ask(ctx, sc, round)
		if err != nil {
			return err
		}
		if !ok {
			s.summary()
			return nil
		}
		if trainer.IsQuit(input) {
			s.println(s.styles.muted.Render("Quitting..."))
			s.summary()
			return nil
		}
		s.grade(round, input)
	}
}

// ask prints the prompt until a non-empty line arrives. ok is false at end
// of input.
func (s *session) ask(ctx context.Context, sc *bufio.Scanner, r trainer.Round) (string, bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		s.println(s.styles.prompt.Render(r.Prompt()))
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", false, fmt.Errorf("read answer: %w", err)
			}
			return "", false, nil
		}
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, true, nil
		}
	}
}

func (s *session) grade(r trainer.Round, input string) {
	out, err := s.tr.Check(r, input)
	switch {
	case trainer.IsInvalid(err):
		msg := "error: " + err.Error()
		if _, spelling, ok := note.Suggest(input); ok {
			msg += fmt.Sprintf(" (did you mean %s?)", spelling)
		}
		s.println(s.styles.bad.Render(msg))
		s.println(fmt.Sprintf("The answer was: %s\n", s.styles.answer.Render(r.Answer().String())))
	case err != nil:
		s.println(s.styles.bad.Render("error: "+err.Error()) + "\n")
	case out.Correct:
		s.println(s.styles.good.Render("Correct!") + "\n")
	default:
		s.println(s.styles.bad.Render("Incorrect!") + " The answer was: " + s.styles.answer.Render(out.Answer.String()) + "\n")
	}
}

func (s *session) summary() {
	t := s.tr.Tally()
	if t.Total() == 0 && t.Invalid == 0 {
		return
	}
	s.println(s.styles.muted.Render("Session: " + t.String()))
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}
