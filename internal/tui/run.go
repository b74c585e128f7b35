package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/lifepath/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned by Run when the user quits the wizard.
var ErrCancelled = errors.New("onboarding cancelled")

// Run shows the wizard on the terminal and returns the collected profile.
// A nil in or out uses the process's stdin or stdout.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) (model.UserProfile, error) {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(New(opts...), programOpts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.UserProfile{}, ctxErr
		}
		return model.UserProfile{}, fmt.Errorf("failed to run onboarding: %w", err)
	}

	w, ok := final.(Wizard)
	if !ok || w.Cancelled() || !w.Done() {
		return model.UserProfile{}, ErrCancelled
	}
	return w.Profile(), nil
}
