package dashboard

import (
	"strings"

	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
)

// Section names the content shown next to the sidebar.
type Section string

const (
	SectionOverview Section = "overview"
	SectionMembers  Section = "members"
	SectionSettings Section = "settings"
)

// Href is the navigation target of the section.
func (s Section) Href() string {
	return "/" + string(s)
}

// ParseSection accepts a section name or its href.
func ParseSection(value string) (Section, bool) {
	switch Section(strings.TrimPrefix(value, "/")) {
	case SectionOverview:
		return SectionOverview, true
	case SectionMembers:
		return SectionMembers, true
	case SectionSettings:
		return SectionSettings, true
	default:
		return "", false
	}
}

// ViewMode determines which overlay covers the section.
type ViewMode int

const (
	ViewMain ViewMode = iota
	ViewHelp
)

// Overview tab keys.
const (
	TabByMember = "by-member"
	TabByGroup  = "by-group"
)

// ThemeChangedMsg is delivered after the preference provider applied a mode.
type ThemeChangedMsg struct {
	Mode preferences.Mode
}
