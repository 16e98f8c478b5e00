package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tradeloop/internal/types"
)

func (m *Model) renderChatPanel() string {
	width := m.chatPanelWidth()

	header := lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).Render("Trades")
	threads := m.renderThreadList()
	messages := m.chatViewport.View()
	input := m.chatInput.View()

	body := []string{header, threads, "", messages, input}
	if m.offerOpen {
		body = append(body, m.renderOfferBuilder())
	} else {
		body = append(body, m.zoneManager.Mark("offer-open",
			lipgloss.NewStyle().Foreground(m.theme.Brand).Render("[ Send trade offer · ctrl+t ]")))
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func (m *Model) renderThreadList() string {
	threads := m.session.Chats.Threads()
	if len(threads) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No open trades yet.")
	}

	lines := make([]string, 0, len(threads))
	for _, thread := range threads {
		label := thread.Peer
		if listing, ok := m.session.Listings.Get(thread.ListingID); ok {
			label = fmt.Sprintf("%s · %s", thread.Peer, listing.Title)
		}
		style := lipgloss.NewStyle().Foreground(m.theme.Muted)
		if thread.ID == m.session.Chats.ActiveID() {
			style = lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true)
			label = "› " + label
		} else {
			label = "  " + label
		}
		lines = append(lines, m.zoneManager.Mark(fmt.Sprintf("thread-%d", thread.ID), style.Render(label)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// refreshChatViewport re-renders the active conversation and pins the
// view to the latest message.
func (m *Model) refreshChatViewport() {
	chat, ok := m.session.Chats.Active()
	if !ok {
		m.chatViewport.SetContent(lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Select a trade to start chatting."))
		return
	}
	m.chatViewport.SetContent(m.renderChatMessages(chat))
	m.chatViewport.GotoBottom()
}

func (m *Model) renderChatMessages(chat types.Chat) string {
	mine := lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true)
	theirs := lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	width := m.chatPanelWidth() - 4
	if width < 20 {
		width = 20
	}
	bodyStyle := lipgloss.NewStyle().Foreground(m.theme.Text).Width(width)

	var lines []string
	for _, message := range chat.Messages {
		author := theirs
		if message.From == m.session.Name {
			author = mine
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			author.Render(message.From), "  ", timeStyle.Render(message.Time)))
		lines = append(lines, bodyStyle.Render(message.Text))
		if message.Offer != nil {
			lines = append(lines, m.renderOfferCard(*message.Offer, width))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderOfferCard draws the embedded snapshot. It reads nothing from
// the listing store, so it renders the same after the source is gone.
func (m *Model) renderOfferCard(card types.OfferCard, width int) string {
	accent := lipgloss.Color(card.Accent)
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(card.Title)
	meta := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		fmt.Sprintf("%s · %s · %s · %s", card.Condition, card.Category, card.Location, priceLabel(card.Price)))
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(accent).
		Width(width).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, meta))
}

func (m *Model) renderOfferBuilder() string {
	titles := m.session.InventoryTitles()
	if m.offerIndex >= len(titles) {
		m.offerIndex = 0
	}
	item := ""
	if len(titles) > 0 {
		item = titles[m.offerIndex]
	}

	picker := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Offer: "),
		lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).
			Render(fmt.Sprintf("‹ %s ›  (%d/%d)", item, m.offerIndex+1, len(titles))))
	note := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Note:  "),
		m.offerNote.View())
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.zoneManager.Mark("offer-send",
			lipgloss.NewStyle().Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).
				Padding(0, 1).Render("Send")),
		"  ",
		m.zoneManager.Mark("offer-cancel",
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Cancel (esc)")),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Brand).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, picker, note, buttons))
}
