package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptDialogOptions are the texts of a PromptDialog.
type PromptDialogOptions struct {
	Title       string
	Description string
	Label       string
	Placeholder string
	SaveLabel   string
	CancelLabel string
	CharLimit   int
}

func (o PromptDialogOptions) withDefaults() PromptDialogOptions {
	if o.SaveLabel == "" {
		o.SaveLabel = "Shrani"
	}
	if o.CancelLabel == "" {
		o.CancelLabel = "Prekliči"
	}
	return o
}

// PromptDialog edits a single text value through a private draft. The
// draft is copied from the canonical value each time the dialog opens and
// only reaches the owner through onSave when confirmed.
type PromptDialog struct {
	frame        *Dialog
	options      PromptDialogOptions
	open         bool
	value        string
	draft        textinput.Model
	onOpenChange func(open bool)
	onSave       func(value string)
}

// NewPromptDialog creates a prompt for value. An initially open dialog is
// seeded immediately.
func NewPromptDialog(options PromptDialogOptions, open bool, value string, onOpenChange func(open bool), onSave func(value string)) *PromptDialog {
	options = options.withDefaults()

	draft := textinput.New()
	draft.Prompt = ""
	draft.Placeholder = options.Placeholder
	if options.CharLimit > 0 {
		draft.CharLimit = options.CharLimit
	}

	p := &PromptDialog{
		frame:        NewDialog(false, onOpenChange).WithTitle(options.Title).WithDescription(options.Description),
		options:      options,
		value:        value,
		draft:        draft,
		onOpenChange: onOpenChange,
		onSave:       onSave,
	}
	p.SetOpen(open)
	return p
}

// NewRenameGroupDialog is the prompt used to rename a member group.
func NewRenameGroupDialog(open bool, groupName string, onOpenChange func(open bool), onSave func(name string)) *PromptDialog {
	return NewPromptDialog(PromptDialogOptions{
		Title:       "Preimenuj skupino",
		Label:       "Ime skupine *",
		Placeholder: "Vnesite ime skupine",
		CharLimit:   80,
	}, open, groupName, onOpenChange, onSave)
}

// SetOpen updates the displayed state. Only the closed to open transition
// seeds the draft.
func (p *PromptDialog) SetOpen(open bool) {
	wasOpen := p.open
	p.open = open
	p.frame.SetOpen(open)

	switch {
	case open && !wasOpen:
		p.draft.SetValue(p.value)
		p.draft.CursorEnd()
		_ = p.draft.Focus()
	case !open:
		p.draft.Blur()
	}
}

// IsOpen returns the displayed state.
func (p *PromptDialog) IsOpen() bool {
	return p.open
}

// SetValue updates the canonical value. An open dialog keeps its draft;
// the new value is used the next time it opens.
func (p *PromptDialog) SetValue(value string) {
	p.value = value
}

// Value returns the canonical value.
func (p *PromptDialog) Value() string {
	return p.value
}

// SetOnSave replaces the save callback.
func (p *PromptDialog) SetOnSave(fn func(value string)) {
	p.onSave = fn
}

// SetOnOpenChange replaces the open-change callback.
func (p *PromptDialog) SetOnOpenChange(fn func(open bool)) {
	p.onOpenChange = fn
	p.frame.SetOnOpenChange(fn)
}

// Draft returns the text being edited.
func (p *PromptDialog) Draft() string {
	return p.draft.Value()
}

// SetDraft replaces the text being edited, as typing would.
func (p *PromptDialog) SetDraft(draft string) {
	p.draft.SetValue(draft)
}

// Confirm commits the trimmed draft. A blank draft keeps the dialog open
// and reports nothing; otherwise onSave runs before the close request.
// A closed dialog ignores it.
func (p *PromptDialog) Confirm() {
	if !p.open {
		return
	}
	trimmed := strings.TrimSpace(p.draft.Value())
	if trimmed == "" {
		return
	}
	if p.onSave != nil {
		p.onSave(trimmed)
	}
	p.requestOpenChange(false)
}

// Cancel requests closing without saving. A closed dialog ignores it.
func (p *PromptDialog) Cancel() {
	if !p.open {
		return
	}
	p.requestOpenChange(false)
}

func (p *PromptDialog) requestOpenChange(open bool) {
	if p.onOpenChange != nil {
		p.onOpenChange(open)
	}
}

// Update handles enter and esc and passes other keys to the draft.
func (p *PromptDialog) Update(msg tea.Msg) tea.Cmd {
	if !p.open {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			p.Confirm()
			return nil
		case tea.KeyEsc:
			p.Cancel()
			return nil
		}
	}

	var cmd tea.Cmd
	p.draft, cmd = p.draft.Update(msg)
	return cmd
}

// View renders the dialog.
func (p *PromptDialog) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog, or nothing while closed.
func (p *PromptDialog) ViewWithContext(ctx RenderContext) string {
	p.frame.WithBody(promptBody{p}).WithFooter(HStack(
		OutlineButton(p.options.CancelLabel+" (esc)"),
		NewButton(p.options.SaveLabel+" (enter)", nil),
	).WithGap(2))
	return p.frame.ViewWithContext(ctx)
}

// Place centres the dialog in a width x height area.
func (p *PromptDialog) Place(ctx RenderContext, width, height int, background string) string {
	if !p.open {
		return background
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, p.ViewWithContext(ctx))
}

type promptBody struct {
	p *PromptDialog
}

func (b promptBody) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b promptBody) ViewWithContext(ctx RenderContext) string {
	field := Brackets()(lipgloss.NewStyle(), ctx.Theme)
	if ctx.Width > 2 {
		field = field.Width(ctx.Width - 2)
	}
	rows := []string{field.Render(b.p.draft.View())}
	if b.p.options.Label != "" {
		rows = append([]string{LabelText(b.p.options.Label).ViewWithContext(ctx)}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
