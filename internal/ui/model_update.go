package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case choiceTimeoutMsg:
		return m.handleChoiceTimeoutMsg(msg)
	default:
		return m, m.updateInputs(msg)
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resize()
	return m, nil
}

func (m *Model) handleChoiceTimeoutMsg(msg choiceTimeoutMsg) (tea.Model, tea.Cmd) {
	chat, ok := m.deck.CompleteAccept(msg.pending)
	if !ok {
		// A reset happened while the window was open; the decision is
		// already void.
		return m, nil
	}
	m.logger.Info("trade offer sent",
		zap.Int("listing", msg.pending.Listing.ID),
		zap.Int("chat", chat.ID))

	card := m.acceptedCard(msg.pending)
	m.ownerCard = &card
	m.ownerWants = append([]string(nil), msg.pending.Listing.Wants...)
	m.page = pageOwnerProduct
	m.status = "Trade offer sent to " + msg.pending.Listing.Owner
	m.refreshChatViewport()
	return m, nil
}

// updateInputs routes non-key messages (blink ticks mostly) to the
// widgets that animate.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if cmd := updateFocusedField(m.signInFields, msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := updateFocusedField(m.createFields, msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := updateFocusedField(m.profileFields, msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := updateFocusedField(m.payFields, msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := updateFocusedField(m.postFields, msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.chatInput, cmd = m.chatInput.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.offerNote, cmd = m.offerNote.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) resize() {
	m.chatViewport.Width = m.chatPanelWidth() - 2
	m.chatViewport.Height = m.chatPanelHeight()
	m.refreshChatViewport()
}
