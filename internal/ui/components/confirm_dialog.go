package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmVariant controls how loudly a ConfirmDialog warns.
type ConfirmVariant int

const (
	ConfirmVariantDefault ConfirmVariant = iota
	ConfirmVariantDestructive
)

// ConfirmDialogOptions are the texts of a ConfirmDialog.
type ConfirmDialogOptions struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Variant      ConfirmVariant
}

// ConfirmDialog asks a yes/no question. Confirming runs onConfirm and then
// requests closing; cancelling only requests closing.
type ConfirmDialog struct {
	frame        *Dialog
	options      ConfirmDialogOptions
	onOpenChange func(open bool)
	onConfirm    func()
}

// NewConfirmDialog creates a confirmation showing open.
func NewConfirmDialog(options ConfirmDialogOptions, open bool, onOpenChange func(open bool), onConfirm func()) *ConfirmDialog {
	if options.ConfirmLabel == "" {
		options.ConfirmLabel = "Potrdi"
	}
	if options.CancelLabel == "" {
		options.CancelLabel = "Prekliči"
	}
	title := options.Title
	if options.Variant == ConfirmVariantDestructive {
		title = "⚠ " + title
	}

	return &ConfirmDialog{
		frame:        NewDialog(open, onOpenChange).WithTitle(title).WithWidth(48),
		options:      options,
		onOpenChange: onOpenChange,
		onConfirm:    onConfirm,
	}
}

// SetOpen updates the displayed state.
func (c *ConfirmDialog) SetOpen(open bool) {
	c.frame.SetOpen(open)
}

// IsOpen returns the displayed state.
func (c *ConfirmDialog) IsOpen() bool {
	return c.frame.IsOpen()
}

// Confirm runs onConfirm, then requests closing. A closed dialog ignores it.
func (c *ConfirmDialog) Confirm() {
	if !c.IsOpen() {
		return
	}
	if c.onConfirm != nil {
		c.onConfirm()
	}
	c.frame.Close()
}

// Cancel requests closing.
func (c *ConfirmDialog) Cancel() {
	c.frame.Close()
}

// Update confirms on enter or y and cancels on esc or n.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !c.IsOpen() {
		return nil
	}
	switch key.String() {
	case "enter", "y":
		c.Confirm()
	case "esc", "n":
		c.Cancel()
	}
	return nil
}

// View renders the dialog.
func (c *ConfirmDialog) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog, or nothing while closed.
func (c *ConfirmDialog) ViewWithContext(ctx RenderContext) string {
	confirm := NewButton(c.options.ConfirmLabel+" (enter)", c.Confirm)
	if c.options.Variant == ConfirmVariantDestructive {
		confirm.WithVariant(ButtonVariantDestructive)
	}
	c.frame.
		WithBody(MutedText(c.options.Message)).
		WithFooter(HStack(OutlineButton(c.options.CancelLabel+" (esc)"), confirm).WithGap(2))
	return c.frame.ViewWithContext(ctx)
}

// Place centres the dialog in a width x height area.
func (c *ConfirmDialog) Place(ctx RenderContext, width, height int, background string) string {
	if !c.IsOpen() {
		return background
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.ViewWithContext(ctx))
}
