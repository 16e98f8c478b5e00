package ui

import "github.com/charmbracelet/lipgloss"

func (m *Model) renderCreatePost() string {
	title := lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).Render("Post an item")
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("Title and description are required; everything else gets sensible defaults.")

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		m.button("post-publish", "Publish (ctrl+s)"),
		"  ",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("esc to cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			title, hint, "", m.renderFields(m.postFields), "", footer))
	return m.centerBody(card)
}
