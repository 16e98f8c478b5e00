package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.payOpen {
		return m.handlePaymentKeys(msg)
	}

	switch m.page {
	case pageAuth:
		return m.handleAuthKeys(msg)
	case pageMarketplace:
		return m.handleMarketplaceKeys(msg)
	case pageSwipe:
		return m.handleSwipeKeys(msg)
	case pageOwnerProduct:
		return m.handleOwnerProductKeys(msg)
	case pageProfile:
		return m.handleProfileKeys(msg)
	case pageCreatePost:
		return m.handleCreatePostKeys(msg)
	}
	return m, nil
}

// handleNavKeys covers the signed-in page switches shared by every
// page. Ctrl chords so text inputs never swallow them.
func (m *Model) handleNavKeys(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyCtrlB:
		m.navigate(pageMarketplace)
	case tea.KeyCtrlG:
		m.navigate(pageSwipe)
	case tea.KeyCtrlP:
		m.navigate(pageProfile)
	case tea.KeyCtrlN:
		m.navigate(pageCreatePost)
	default:
		return false
	}
	return true
}

func (m *Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.signInFields
	if m.authTab == tabCreate {
		fields = m.createFields
	}

	switch msg.Type {
	case tea.KeyCtrlN:
		if m.authTab == tabSignIn {
			m.setAuthTab(tabCreate)
		} else {
			m.setAuthTab(tabSignIn)
		}
		return m, nil
	case tea.KeyTab:
		m.authIndex = cycleField(fields, m.authIndex, 1)
		return m, nil
	case tea.KeyShiftTab:
		m.authIndex = cycleField(fields, m.authIndex, -1)
		return m, nil
	case tea.KeyEnter:
		m.submitAuth()
		return m, nil
	}

	return m, updateFocusedField(fields, msg)
}

func (m *Model) handleMarketplaceKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavKeys(msg) {
		return m, nil
	}

	if m.offerOpen {
		switch msg.Type {
		case tea.KeyEsc:
			m.closeOfferBuilder()
			return m, nil
		case tea.KeyLeft:
			if m.offerIndex > 0 {
				m.offerIndex--
			}
			return m, nil
		case tea.KeyRight:
			if m.offerIndex < len(m.session.InventoryTitles())-1 {
				m.offerIndex++
			}
			return m, nil
		case tea.KeyEnter:
			m.sendOffer()
			return m, nil
		}
		var cmd tea.Cmd
		m.offerNote, cmd = m.offerNote.Update(msg)
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyTab:
		if m.marketFocus == focusSearch {
			m.marketFocus = focusChat
			m.searchInput.Blur()
			m.chatInput.Focus()
		} else {
			m.marketFocus = focusSearch
			m.chatInput.Blur()
			m.searchInput.Focus()
		}
		return m, nil
	case tea.KeyCtrlF:
		m.categoryIndex = (m.categoryIndex + 1) % len(m.session.Listings.Categories())
		m.syncDeckFilter()
		return m, nil
	case tea.KeyCtrlT:
		m.openOfferBuilder()
		return m, nil
	case tea.KeyCtrlJ:
		m.selectAdjacentThread(1)
		return m, nil
	case tea.KeyCtrlK:
		m.selectAdjacentThread(-1)
		return m, nil
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.chatViewport, cmd = m.chatViewport.Update(msg)
		return m, cmd
	case tea.KeyEnter:
		if m.marketFocus == focusChat {
			m.sendChatMessage()
		}
		return m, nil
	}

	if m.marketFocus == focusSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.syncDeckFilter()
		return m, cmd
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *Model) selectAdjacentThread(delta int) {
	threads := m.session.Chats.Threads()
	if len(threads) == 0 {
		return
	}
	current := 0
	for i, thread := range threads {
		if thread.ID == m.session.Chats.ActiveID() {
			current = i
			break
		}
	}
	next := (current + delta + len(threads)) % len(threads)
	m.session.Chats.SetActive(threads[next].ID)
	m.refreshChatViewport()
}

func (m *Model) handleSwipeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavKeys(msg) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.navigate(pageMarketplace)
	case tea.KeyLeft:
		return m, m.swipe(swipeLeft)
	case tea.KeyRight:
		return m, m.swipe(swipeRight)
	}
	return m, nil
}

func (m *Model) handleOwnerProductKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavKeys(msg) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.navigate(pageMarketplace)
		m.marketFocus = focusChat
		m.searchInput.Blur()
		m.chatInput.Focus()
	}
	return m, nil
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavKeys(msg) {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab:
		m.profileIndex = cycleField(m.profileFields, m.profileIndex, 1)
		return m, nil
	case tea.KeyShiftTab:
		m.profileIndex = cycleField(m.profileFields, m.profileIndex, -1)
		return m, nil
	case tea.KeyCtrlS:
		m.saveProfile()
		return m, nil
	case tea.KeyEsc:
		m.profileIndex = -1
		focusField(m.profileFields, -1)
		return m, nil
	}

	// Single-letter shortcuts only apply while no field is being
	// edited, otherwise they are text.
	if m.profileIndex >= 0 {
		return m, updateFocusedField(m.profileFields, msg)
	}

	switch msg.String() {
	case "d":
		m.toggleDarkMode()
	case "h":
		m.togglePaused()
	case "u":
		m.openPayment("pro")
	case "b":
		m.openPayment("boost")
	case "j":
		if m.postIndex < len(m.session.UserPosts())-1 {
			m.postIndex++
		}
	case "k":
		if m.postIndex > 0 {
			m.postIndex--
		}
	case "x":
		m.deletePostAt(m.postIndex)
	case "n":
		m.settings.ChatNotifications = !m.settings.ChatNotifications
		m.status = settingNotice("Chat notifications", m.settings.ChatNotifications)
	case "l":
		m.settings.LocationSharing = !m.settings.LocationSharing
		m.status = settingNotice("Location sharing", m.settings.LocationSharing)
	case "c":
		m.settings.CompactCards = !m.settings.CompactCards
		m.status = settingNotice("Compact cards", m.settings.CompactCards)
	case "a":
		m.settings.AutoTranslate = !m.settings.AutoTranslate
		m.status = settingNotice("Auto-translate", m.settings.AutoTranslate)
	case "g":
		m.settings.Language = nextOption(languages, m.settings.Language)
		m.status = "Preferred language: " + m.settings.Language
	case "r":
		m.settings.TradeRadius = nextOption(tradeRadii, m.settings.TradeRadius)
		m.status = "Trade radius: " + m.settings.TradeRadius
	case "p":
		m.settings.PriceRange = nextOption(priceRanges, m.settings.PriceRange)
		m.status = "Price range: " + m.settings.PriceRange
	case "w":
		m.status = "Password reset link sent to " + m.session.Email
	case "2":
		m.status = "Two-factor authentication enabled."
	case "q":
		m.signOut()
	}
	return m, nil
}

func settingNotice(name string, on bool) string {
	if on {
		return name + " enabled."
	}
	return name + " disabled."
}

func (m *Model) handleCreatePostKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavKeys(msg) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.navigate(pageMarketplace)
		return m, nil
	case tea.KeyTab:
		m.postField = cycleField(m.postFields, m.postField, 1)
		return m, nil
	case tea.KeyShiftTab:
		m.postField = cycleField(m.postFields, m.postField, -1)
		return m, nil
	case tea.KeyCtrlS:
		m.publishPost()
		return m, nil
	}
	return m, updateFocusedField(m.postFields, msg)
}

func (m *Model) handlePaymentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePayment()
		return m, nil
	case tea.KeyTab:
		m.payIndex = cycleField(m.payFields, m.payIndex, 1)
		return m, nil
	case tea.KeyShiftTab:
		m.payIndex = cycleField(m.payFields, m.payIndex, -1)
		return m, nil
	case tea.KeyEnter:
		m.confirmPayment()
		return m, nil
	}
	return m, updateFocusedField(m.payFields, msg)
}
