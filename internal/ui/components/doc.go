// Package components is the theme-aware widget set of the dashboard.
//
// Presentational components (Text, Header, Badge, Button, Card, Alert,
// Divider, Stack) render to strings through View or ViewWithContext.
// Styling goes through StyleFunc modifiers that read the Theme carried by
// the RenderContext:
//
//	badge := NewBadge("Zapadlo").WithVariant(BadgeVariantDestructive)
//	out := badge.ViewWithContext(DefaultContext().WithWidth(80))
//
// Interactive components are controlled. Checkbox, Input, Textarea and
// Select show the value their owner passed in and report user edits through
// optional handlers, normalized value first and raw ChangeEvent second.
// They never adopt a value on their own; the owner calls SetValue or
// SetChecked to accept a change.
//
// Tabs is a shared selection context. Triggers and content panes bind to
// it at construction and fail with a ConfigurationError without one.
//
// Dialog is a controlled open/close frame. PromptDialog adds a private
// draft that is seeded when the dialog opens and committed only on
// Confirm. DropdownMenu is the one component that keeps its open flag to
// itself.
package components
