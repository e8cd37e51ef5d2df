package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in one direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionVertical}
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionHorizontal}
}

// View renders the stack.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack. Children that render empty take no
// space, so hidden content does not leave gaps behind.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(lipgloss.Top, interleave(views, strings.Repeat(" ", s.gap))...)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, interleave(views, strings.Repeat("\n", s.gap))...)
	}
	return s.ComputeStyle(ctx.Theme).Render(content)
}

func interleave(views []string, spacer string) []string {
	if spacer == "" {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
