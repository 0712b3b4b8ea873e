package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fretta/internal/note"
	"github.com/jask/fretta/internal/trainer"
)

// App is the full-screen trainer.
type App struct {
	trainer *trainer.Trainer
	keys    keyMap
	styles  styles
	round   trainer.Round
	input   string
	last    *trainer.Outcome
	status  string
	quit    bool
}

// New returns an App asking questions from tr.
func New(tr *trainer.Trainer, color bool) *App {
	return &App{
		trainer: tr,
		keys:    defaultKeys(),
		styles:  newStyles(color),
		round:   tr.Next(),
	}
}

// Run starts the program and blocks until the user quits.
func Run(tr *trainer.Trainer, color bool, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(tr, color), opts...).Run()
	return err
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		a.quit = true
		return a, tea.Quit
	case key.Matches(m, a.keys.Submit):
		return a.submit()
	case key.Matches(m, a.keys.Skip):
		a.last = nil
		a.status = "skipped, it was " + a.round.Answer().String()
		a.nextRound()
	case key.Matches(m, a.keys.Delete):
		if len(a.input) > 0 {
			r := []rune(a.input)
			a.input = string(r[:len(r)-1])
		}
	case m.Type == tea.KeySpace:
		a.input += " "
	case m.Type == tea.KeyRunes:
		a.input += string(m.Runes)
	}
	return a, nil
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(a.input)
	if input == "" {
		return a, nil
	}
	if trainer.IsQuit(input) {
		a.quit = true
		return a, tea.Quit
	}
	out, err := a.trainer.Check(a.round, input)
	switch {
	case trainer.IsInvalid(err):
		a.last = nil
		a.status = err.Error()
		if _, spelling, ok := note.Suggest(input); ok {
			a.status += fmt.Sprintf(" (did you mean %s?)", spelling)
		}
		a.status += ", it was " + a.round.Answer().String()
	case err != nil:
		a.last = nil
		a.status = err.Error()
	default:
		a.last = &out
		a.status = ""
	}
	a.nextRound()
	return a, nil
}

func (a *App) nextRound() {
	a.input = ""
	a.round = a.trainer.Next()
}

func (a *App) View() string {
	if a.quit {
		return a.styles.muted.Render("Quitting... "+a.trainer.Tally().String()) + "\n"
	}
	lines := []string{
		a.styles.title.Render("Fretta"),
		a.styles.muted.Render(a.renderHeader()),
		"",
		a.styles.prompt.Render(a.round.Prompt()),
		"> " + a.input + a.styles.cursor.Render(" "),
		"",
	}
	if s := a.renderResult(); s != "" {
		lines = append(lines, s)
	}
	lines = append(lines, a.styles.muted.Render("Score: "+a.trainer.Tally().String()), "", a.styles.help.Render(a.keys.help()))
	return strings.Join(lines, "\n")
}

func (a *App) renderHeader() string {
	lo, hi := a.trainer.FretRange()
	return fmt.Sprintf("Tuning: %s  Frets: %d-%d", a.trainer.Tuning(), lo, hi)
}

func (a *App) renderResult() string {
	switch {
	case a.status != "":
		return a.styles.bad.Render(a.status)
	case a.last == nil:
		return ""
	case a.last.Correct:
		return a.styles.good.Render(fmt.Sprintf("Correct! %s is %s", a.last.Round.Prompt(), a.last.Answer))
	default:
		return a.styles.bad.Render("Incorrect!") + " The answer was: " + a.styles.answer.Render(a.last.Answer.String())
	}
}
