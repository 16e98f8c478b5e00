package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tradeloop/internal/core"
	"tradeloop/internal/types"
)

func (m *Model) renderSwipe() string {
	listing, ok := m.deck.Current()
	if !ok {
		empty := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(core.NoticeEmptyFeed)
		return m.centerBody(empty)
	}

	accent := lipgloss.Color(listing.Accent)
	cardWidth := 46

	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(listing.Title)
	meta := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		fmt.Sprintf("%s · %s · %s", listing.Condition, listing.Category, listing.Location))
	owner := lipgloss.NewStyle().Foreground(m.theme.Text).
		Render(fmt.Sprintf("by %s · %s", listing.Owner, priceLabel(listing.Price)))
	description := lipgloss.NewStyle().Foreground(m.theme.Text).Width(cardWidth - 4).
		Render(listing.Description)
	wants := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(cardWidth - 4).
		Render("wants: " + strings.Join(listing.Wants, ", "))

	swipes := m.renderSwipeCounter()

	card := lipgloss.NewStyle().
		Width(cardWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			title, meta, owner, "", description, wants, "", swipes))

	// Deciding overlay: the confirm window blocks everything until the
	// timer routes the accepted listing into chat.
	if m.deck.Deciding() {
		overlay := lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(m.theme.Overlay).
			Bold(true).Padding(0, 2).
			Render("Nice choice. Sending trade offer...")
		card = lipgloss.JoinVertical(lipgloss.Center, card, "", overlay)
		return m.centerBody(card)
	}

	// Drag feedback tilts the hint toward the gesture in progress.
	rejectLabel, acceptLabel := "← Skip", "Trade →"
	if offset := m.drag.offset(); offset <= -3 {
		rejectLabel = "←← Skip"
	} else if offset >= 3 {
		acceptLabel = "Trade →→"
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		m.zoneManager.Mark("swipe-reject",
			lipgloss.NewStyle().Foreground(m.theme.Danger).Bold(true).Padding(0, 2).Render(rejectLabel)),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  drag, wheel, or arrows  "),
		m.zoneManager.Mark("swipe-accept",
			lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).Padding(0, 2).Render(acceptLabel)),
	)

	return m.centerBody(lipgloss.JoinVertical(lipgloss.Center, card, "", controls))
}

func (m *Model) renderSwipeCounter() string {
	if m.session.Plan == types.PlanPro {
		return lipgloss.NewStyle().Foreground(m.theme.Brand).
			Render(fmt.Sprintf("Pro · %d swipes so far", m.session.SwipesUsed))
	}
	remaining := core.FreeSwipeLimit - m.session.SwipesUsed
	if remaining < 0 {
		remaining = 0
	}
	style := lipgloss.NewStyle().Foreground(m.theme.Muted)
	if remaining <= 2 {
		style = lipgloss.NewStyle().Foreground(m.theme.Danger)
	}
	return style.Render(fmt.Sprintf("Free plan · %d of %d swipes left", remaining, core.FreeSwipeLimit))
}

func (m *Model) centerBody(content string) string {
	if m.width > 0 && m.height > 2 {
		return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
