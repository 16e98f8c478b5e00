package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tradeloop/internal/types"
)

func (m *Model) renderMarketplace() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.searchInput.View(),
		m.renderCategoryChips(),
		"",
		m.renderListings(),
	)

	leftWidth := m.width - m.chatPanelWidth()
	if leftWidth > 0 {
		left = lipgloss.NewStyle().Width(leftWidth).Render(left)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderChatPanel())
}

func (m *Model) renderCategoryChips() string {
	chips := make([]string, 0, 8)
	for i, category := range m.session.Listings.Categories() {
		style := lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(0, 1)
		if i == m.categoryIndex {
			style = style.Foreground(m.theme.ChipFg).Background(m.theme.ChipBg)
		}
		chips = append(chips, m.zoneManager.Mark(fmt.Sprintf("cat-%d", i), style.Render(category)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) renderListings() string {
	listings := m.visibleListings()
	if len(listings) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("No items match. Try another category or search.")
	}

	cards := make([]string, 0, len(listings))
	for _, listing := range listings {
		cards = append(cards, m.renderListingCard(listing))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) renderListingCard(listing types.Listing) string {
	accent := lipgloss.Color(listing.Accent)
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(listing.Title)
	meta := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		fmt.Sprintf("%s · %s · %s · %s", listing.Condition, listing.Category, listing.Location, priceLabel(listing.Price)))
	owner := lipgloss.NewStyle().Foreground(m.theme.Text).Render("by " + listing.Owner)

	lines := []string{title, meta}
	if !m.settings.CompactCards {
		if listing.Description != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Text).Render(listing.Description))
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("wants: "+strings.Join(listing.Wants, ", ")))
	}

	action := ""
	if m.session.Identity().Owns(listing) {
		action = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("your post")
	} else {
		action = m.zoneManager.Mark(fmt.Sprintf("listing-trade-%d", listing.ID),
			lipgloss.NewStyle().Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).
				Padding(0, 1).Render("Offer Trade"))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, owner, "  ", action))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
