package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tradeloop/internal/types"
)

func (m *Model) View() string {
	var body string
	switch m.page {
	case pageAuth:
		body = m.renderAuth()
	case pageMarketplace:
		body = m.renderMarketplace()
	case pageSwipe:
		body = m.renderSwipe()
	case pageOwnerProduct:
		body = m.renderOwnerProduct()
	case pageProfile:
		body = m.renderProfile()
	case pageCreatePost:
		body = m.renderCreatePost()
	}

	if m.payOpen {
		body = m.renderPaymentModal()
	}

	lines := []string{body}
	if m.page != pageAuth {
		lines = append([]string{m.renderNavBar()}, lines...)
	}
	lines = append(lines, m.renderStatusLine())

	output := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.zoneManager.Scan(output)
}

func (m *Model) renderNavBar() string {
	item := func(zoneID, label string, active bool) string {
		style := lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(0, 1)
		if active {
			style = style.Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).Bold(true)
		}
		return m.zoneManager.Mark(zoneID, style.Render(label))
	}
	brand := lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).Render(" TradeLoop ")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		brand,
		item("nav-browse", "Browse", m.page == pageMarketplace),
		item("nav-discover", "Discover", m.page == pageSwipe || m.page == pageOwnerProduct),
		item("nav-post", "Post", m.page == pageCreatePost),
		item("nav-profile", "Profile", m.page == pageProfile),
	)
}

func (m *Model) renderStatusLine() string {
	right := "? ctrl+b browse · ctrl+g discover · ctrl+n post · ctrl+p profile"
	if m.page == pageAuth {
		right = "tab next field · ctrl+n switch form · enter submit"
	}
	left := m.status
	line := alignStatusLine(left, right, m.width)
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(line)
}

func alignStatusLine(left, right string, width int) string {
	if width <= 0 || right == "" {
		return left
	}
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	if leftWidth+rightWidth+1 > width {
		return left
	}
	spaces := width - leftWidth - rightWidth
	return left + strings.Repeat(" ", spaces) + right
}

// visibleListings is the marketplace view for the current filter.
func (m *Model) visibleListings() []types.Listing {
	return m.session.VisibleListings(m.currentCategory(), m.searchInput.Value())
}

func (m *Model) chatPanelWidth() int {
	if m.width <= 0 {
		return 40
	}
	width := m.width * 2 / 5
	if width < 30 {
		width = 30
	}
	return width
}

func (m *Model) chatPanelHeight() int {
	if m.height <= 0 {
		return 12
	}
	height := m.height - 14
	if height < 6 {
		height = 6
	}
	return height
}

func priceLabel(price int) string {
	return fmt.Sprintf("~$%d value", price)
}
