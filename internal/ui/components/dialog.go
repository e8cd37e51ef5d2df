package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui"
)

const defaultDialogWidth = 52

// Dialog is a controlled modal frame. Whether it is open is the owner's
// decision: the frame only asks through onOpenChange.
type Dialog struct {
	BaseComponent
	open         bool
	onOpenChange func(open bool)
	title        string
	description  string
	body         ui.Renderable
	footer       ui.Renderable
	width        int
}

// NewDialog creates a frame showing open.
func NewDialog(open bool, onOpenChange func(open bool)) *Dialog {
	return &Dialog{
		BaseComponent: NewBaseComponent(),
		open:          open,
		onOpenChange:  onOpenChange,
		width:         defaultDialogWidth,
	}
}

// SetOpen updates the displayed state.
func (d *Dialog) SetOpen(open bool) {
	d.open = open
}

// IsOpen returns the displayed state.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// SetOnOpenChange replaces the callback.
func (d *Dialog) SetOnOpenChange(fn func(open bool)) {
	d.onOpenChange = fn
}

// RequestOpenChange asks the owner to open or close the dialog.
func (d *Dialog) RequestOpenChange(open bool) {
	if d.onOpenChange != nil {
		d.onOpenChange(open)
	}
}

// Close asks the owner to close the dialog.
func (d *Dialog) Close() {
	d.RequestOpenChange(false)
}

// Update requests closing on esc while open.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if !d.open {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		d.Close()
	}
	return nil
}

// WithTitle sets the heading.
func (d *Dialog) WithTitle(title string) *Dialog {
	d.title = title
	return d
}

// WithDescription sets the line under the heading.
func (d *Dialog) WithDescription(description string) *Dialog {
	d.description = description
	return d
}

// WithBody sets the main content.
func (d *Dialog) WithBody(body ui.Renderable) *Dialog {
	d.body = body
	return d
}

// WithFooter sets the action row.
func (d *Dialog) WithFooter(footer ui.Renderable) *Dialog {
	d.footer = footer
	return d
}

// WithWidth sets the outer width.
func (d *Dialog) WithWidth(width int) *Dialog {
	if width > 0 {
		d.width = width
	}
	return d
}

// View renders the dialog.
func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the frame, or nothing while closed.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	if !d.open {
		return ""
	}

	inner := ctx.WithWidth(d.width - 4)
	content := VStack().WithGap(1)
	if d.title != "" {
		header := NewHeader(d.title)
		if d.description != "" {
			header.WithSubtitle(d.description)
		}
		content.Add(header)
	}
	if d.body != nil {
		content.Add(d.body)
	}
	if d.footer != nil {
		content.Add(VStack(NewDivider(), d.footer))
	}

	return d.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Dialog).
		BorderForeground(ctx.Theme.Palette.Border).
		Padding(0, 1).
		Width(d.width - 2).
		Render(content.ViewWithContext(inner) + "\n" + MutedText("esc zapre").ViewWithContext(inner))
}

// Place centres the rendered dialog in a width x height area, or returns
// background unchanged while closed.
func (d *Dialog) Place(ctx RenderContext, width, height int, background string) string {
	if !d.open {
		return background
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, d.ViewWithContext(ctx))
}
