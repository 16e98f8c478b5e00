package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOwnerProduct shows the matched product after an accepted
// swipe. It draws entirely from the captured snapshot, so it stays
// correct even if the source listing is deleted underneath it.
func (m *Model) renderOwnerProduct() string {
	if m.ownerCard == nil {
		return m.centerBody(lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Nothing matched yet. Go discover something."))
	}
	card := *m.ownerCard

	accent := lipgloss.Color(card.Accent)
	header := lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).
		Render("It's a match in the making")
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(card.Title)
	meta := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		fmt.Sprintf("%s · %s · %s · %s", card.Condition, card.Category, card.Location, priceLabel(card.Price)))

	lines := []string{header, "", title, meta}
	if card.Photo != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("photo: "+card.Photo))
	}
	if len(m.ownerWants) > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Text).
			Render("They want: "+strings.Join(m.ownerWants, ", ")))
	}
	lines = append(lines, "",
		m.zoneManager.Mark("owner-chat",
			lipgloss.NewStyle().Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).
				Bold(true).Padding(0, 2).Render("Open the chat (enter)")))

	body := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return m.centerBody(body)
}
