package ui

import "github.com/charmbracelet/lipgloss"

func (m *Model) renderAuth() string {
	title := lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).
		Render("TradeLoop")
	tagline := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("Trade what you have for what you want.")

	tab := func(zoneID, label string, active bool) string {
		style := lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(0, 2)
		if active {
			style = style.Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).Bold(true)
		}
		return m.zoneManager.Mark(zoneID, style.Render(label))
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		tab("auth-tab-signin", "Sign In", m.authTab == tabSignIn),
		tab("auth-tab-create", "Create Account", m.authTab == tabCreate),
	)

	fields := m.signInFields
	submit := "Sign In"
	if m.authTab == tabCreate {
		fields = m.createFields
		submit = "Create Account"
	}

	form := m.renderFields(fields)
	button := m.zoneManager.Mark("auth-submit",
		lipgloss.NewStyle().
			Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).
			Bold(true).Padding(0, 3).Render(submit))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			title, tagline, "", tabs, "", form, "", button))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

// renderFields draws a label/input column shared by every form page.
func (m *Model) renderFields(fields []field) string {
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(18)
	focusedLabel := labelStyle.Foreground(m.theme.Brand).Bold(true)

	lines := make([]string, 0, len(fields))
	for i := range fields {
		style := labelStyle
		if fields[i].input.Focused() {
			style = focusedLabel
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			style.Render(fields[i].label), fields[i].input.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
