// Package tui implements the interactive onboarding wizard.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/profile"
	"github.com/Veraticus/lifepath/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Option configures a Wizard.
type Option func(*Wizard)

// WithTheme sets the wizard's colors.
func WithTheme(theme themes.Theme) Option {
	return func(w *Wizard) {
		w.theme = theme
	}
}

// WithProfile prefills the answers from an existing profile.
func WithProfile(p model.UserProfile) Option {
	return func(w *Wizard) {
		w.base = p
		for i, q := range questions {
			w.inputs[i].SetValue(q.load(p))
		}
	}
}

// Wizard is a bubbletea model that collects a profile one question at a
// time, section by section.
type Wizard struct {
	theme     themes.Theme
	keys      KeyMap
	errMsg    string
	base      model.UserProfile
	inputs    [stepCount]textinput.Model
	step      Step
	width     int
	done      bool
	cancelled bool
}

// New creates a wizard positioned at the first question.
func New(opts ...Option) Wizard {
	w := Wizard{
		theme: themes.Default,
		keys:  DefaultKeyMap(),
	}

	for i, q := range questions {
		input := textinput.New()
		input.Placeholder = q.placeholder
		input.CharLimit = q.charLimit
		input.Width = 50
		input.Prompt = "> "
		w.inputs[i] = input
	}

	for _, opt := range opts {
		opt(&w)
	}

	w.inputs[StepName].Focus()
	return w
}

// Init implements tea.Model.
func (w Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (w Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		return w, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Quit):
			w.cancelled = true
			return w, tea.Quit

		case key.Matches(msg, w.keys.Next):
			return w.next()

		case key.Matches(msg, w.keys.Back):
			return w.back()
		}
	}

	if w.done || w.cancelled {
		return w, nil
	}

	var cmd tea.Cmd
	w.inputs[w.step], cmd = w.inputs[w.step].Update(msg)
	return w, cmd
}

func (w Wizard) next() (tea.Model, tea.Cmd) {
	if w.done {
		return w, tea.Quit
	}

	if problem := w.check(w.step); problem != "" {
		w.errMsg = problem
		return w, nil
	}
	w.errMsg = ""

	w.inputs[w.step].Blur()
	if w.step == stepCount-1 {
		w.done = true
		return w, tea.Quit
	}

	w.step++
	return w, w.inputs[w.step].Focus()
}

// check returns why the answer to step cannot be accepted, or "".
func (w Wizard) check(step Step) string {
	q := questions[step]

	var scratch model.UserProfile
	if err := q.apply(&scratch, w.inputs[step].Value()); err != nil {
		return q.hint
	}

	var verr *profile.ValidationError
	if !errors.As(profile.Validate(w.Profile()), &verr) {
		return ""
	}
	if problem := verr.Field(q.field); problem != "" {
		if q.hint != "" {
			return q.hint
		}
		return problem
	}
	return ""
}

func (w Wizard) back() (tea.Model, tea.Cmd) {
	if w.step == 0 || w.done {
		return w, nil
	}

	w.errMsg = ""
	w.inputs[w.step].Blur()
	w.step--
	return w, w.inputs[w.step].Focus()
}

// View implements tea.Model.
func (w Wizard) View() string {
	if w.done || w.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(w.theme.Title.Render("Let's map your path"))
	b.WriteString("\n")
	current := questions[w.step]
	b.WriteString(w.theme.Subtitle.Render(fmt.Sprintf("%s · Question %d of %d", current.section, w.step+1, stepCount)))
	b.WriteString("\n\n")

	// Earlier answers from the same section stay on screen.
	shown := false
	for i := range w.step {
		if questions[i].section != current.section {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n",
			w.theme.Subtitle.Render(questions[i].label),
			w.theme.Answer.Render(w.inputs[i].Value()))
		shown = true
	}
	if shown {
		b.WriteString("\n")
	}

	b.WriteString(w.theme.Prompt.Render(current.label))
	b.WriteString("\n")
	b.WriteString(w.inputs[w.step].View())
	b.WriteString("\n")

	if w.errMsg != "" {
		b.WriteString(w.theme.StatusError.Render(w.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(w.theme.Help.Render(w.helpLine()))

	box := w.theme.RoundedBox
	if w.width > 4 {
		box = box.Width(w.width - 4)
	}
	return box.Render(b.String())
}

func (w Wizard) helpLine() string {
	bindings := w.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Step returns the question currently shown.
func (w Wizard) Step() Step {
	return w.step
}

// Err returns the validation message for the current question, if any.
func (w Wizard) Err() string {
	return w.errMsg
}

// Done reports whether every question was answered.
func (w Wizard) Done() bool {
	return w.done
}

// Cancelled reports whether the user quit before finishing.
func (w Wizard) Cancelled() bool {
	return w.cancelled
}

// Profile returns the answers collected so far merged over the prefilled
// profile. Answers that do not parse leave the prefilled value in place.
func (w Wizard) Profile() model.UserProfile {
	p := w.base
	for i, q := range questions {
		_ = q.apply(&p, w.inputs[i].Value())
	}
	return profile.Normalize(p)
}
