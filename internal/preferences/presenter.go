package preferences

import (
	"github.com/charmbracelet/lipgloss"
)

// PresentationState is what the root presentation surface needs to know
// about the current preference.
type PresentationState struct {
	Mode Mode
	Dark bool
}

func stateFor(mode Mode) PresentationState {
	return PresentationState{Mode: mode, Dark: mode.IsDark()}
}

// Presenter applies the global presentation flag. It is the single place
// where a preference change reaches process-wide rendering state.
type Presenter interface {
	ApplyPresentationState(state PresentationState)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(state PresentationState)

// ApplyPresentationState implements Presenter.
func (f PresenterFunc) ApplyPresentationState(state PresentationState) {
	if f != nil {
		f(state)
	}
}

// TerminalPresenter flips lipgloss' dark-background flag, which decides the
// branch every lipgloss.AdaptiveColor renders with.
type TerminalPresenter struct {
	renderer *lipgloss.Renderer
}

// NewTerminalPresenter targets renderer, or the lipgloss default renderer
// when renderer is nil.
func NewTerminalPresenter(renderer *lipgloss.Renderer) *TerminalPresenter {
	return &TerminalPresenter{renderer: renderer}
}

// ApplyPresentationState implements Presenter.
func (p *TerminalPresenter) ApplyPresentationState(state PresentationState) {
	if p == nil || p.renderer == nil {
		lipgloss.SetHasDarkBackground(state.Dark)
		return
	}
	p.renderer.SetHasDarkBackground(state.Dark)
}

type noopPresenter struct{}

func (noopPresenter) ApplyPresentationState(PresentationState) {}
