// Package fancy renders ActorSpec documents and command summaries for the terminal.
package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Role names what a piece of output represents, so each one gets a consistent look.
type Role int

const (
	RoleTitle Role = iota
	RoleHeader
	RoleMuted
	RoleBranch
	RoleCount
	RoleDataset
	RoleMode
	RoleOK
	RoleFail
)

var palette = map[Role]lipgloss.Style{
	RoleTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	RoleHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	RoleMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	RoleBranch:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	RoleCount:   lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	RoleDataset: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	RoleMode:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	RoleOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	RoleFail:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// Paint renders text in the style assigned to r. Unknown roles render unstyled.
func Paint(r Role, text string) string {
	style, ok := palette[r]
	if !ok {
		return text
	}
	return style.Render(text)
}

func TitleText(text string) string   { return Paint(RoleTitle, text) }
func DatasetText(text string) string { return Paint(RoleDataset, text) }
func ModeText(text string) string    { return Paint(RoleMode, text) }
func ValidText(text string) string   { return Paint(RoleOK, text) }
func ErrorText(text string) string   { return Paint(RoleFail, text) }
func PathText(text string) string    { return Paint(RoleMuted, text) }
func SummaryText(text string) string { return Paint(RoleBranch, text) }
func CountText(text string) string   { return Paint(RoleCount, text) }

// Truncate shortens s to at most limit runes, marking the cut with an ellipsis
// when there is room for one.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	const ellipsis = "..."
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}
