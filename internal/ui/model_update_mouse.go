package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.page == pageSwipe {
		return m.handleSwipeMouse(msg)
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if handled, cmd := m.handleMouseClick(msg); handled {
			return m, cmd
		}
	}

	if m.page == pageMarketplace &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		var cmd tea.Cmd
		m.chatViewport, cmd = m.chatViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleSwipeMouse turns pointer gestures into deck decisions: drags
// past the release threshold and horizontal wheel accumulation both
// funnel into the same guarded swipe path as the arrow keys.
func (m *Model) handleSwipeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelRight:
		return m, m.swipe(m.wheel.add(1, time.Now()))
	case tea.MouseButtonWheelLeft:
		return m, m.swipe(m.wheel.add(-1, time.Now()))
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.zoneManager.Get("swipe-reject").InBounds(msg) {
			return m, m.swipe(swipeLeft)
		}
		if m.zoneManager.Get("swipe-accept").InBounds(msg) {
			return m, m.swipe(swipeRight)
		}
		if m.zoneManager.Get("nav-browse").InBounds(msg) {
			m.navigate(pageMarketplace)
			return m, nil
		}
		if m.zoneManager.Get("nav-profile").InBounds(msg) {
			m.navigate(pageProfile)
			return m, nil
		}
		if m.zoneManager.Get("nav-post").InBounds(msg) {
			m.navigate(pageCreatePost)
			return m, nil
		}
		m.drag.press(msg.X)
	case tea.MouseActionMotion:
		m.drag.move(msg.X)
	case tea.MouseActionRelease:
		return m, m.swipe(m.drag.release(msg.X))
	}
	return m, nil
}

func (m *Model) handleMouseClick(msg tea.MouseMsg) (bool, tea.Cmd) {
	if m.payOpen {
		if m.zoneManager.Get("pay-confirm").InBounds(msg) {
			m.confirmPayment()
			return true, nil
		}
		if m.zoneManager.Get("pay-cancel").InBounds(msg) {
			m.closePayment()
			return true, nil
		}
		return true, nil // modal swallows stray clicks
	}

	if m.page != pageAuth {
		if m.zoneManager.Get("nav-browse").InBounds(msg) {
			m.navigate(pageMarketplace)
			return true, nil
		}
		if m.zoneManager.Get("nav-discover").InBounds(msg) {
			m.navigate(pageSwipe)
			return true, nil
		}
		if m.zoneManager.Get("nav-profile").InBounds(msg) {
			m.navigate(pageProfile)
			return true, nil
		}
		if m.zoneManager.Get("nav-post").InBounds(msg) {
			m.navigate(pageCreatePost)
			return true, nil
		}
	}

	switch m.page {
	case pageAuth:
		return m.handleAuthClick(msg)
	case pageMarketplace:
		return m.handleMarketplaceClick(msg)
	case pageOwnerProduct:
		if m.zoneManager.Get("owner-chat").InBounds(msg) {
			m.navigate(pageMarketplace)
			m.marketFocus = focusChat
			m.searchInput.Blur()
			m.chatInput.Focus()
			return true, nil
		}
		return false, nil
	case pageProfile:
		return m.handleProfileClick(msg)
	case pageCreatePost:
		if m.zoneManager.Get("post-publish").InBounds(msg) {
			m.publishPost()
			return true, nil
		}
		return false, nil
	}
	return false, nil
}

func (m *Model) handleAuthClick(msg tea.MouseMsg) (bool, tea.Cmd) {
	if m.zoneManager.Get("auth-tab-signin").InBounds(msg) {
		m.setAuthTab(tabSignIn)
		return true, nil
	}
	if m.zoneManager.Get("auth-tab-create").InBounds(msg) {
		m.setAuthTab(tabCreate)
		return true, nil
	}
	if m.zoneManager.Get("auth-submit").InBounds(msg) {
		m.submitAuth()
		return true, nil
	}
	return false, nil
}

func (m *Model) handleMarketplaceClick(msg tea.MouseMsg) (bool, tea.Cmd) {
	if m.offerOpen {
		if m.zoneManager.Get("offer-send").InBounds(msg) {
			m.sendOffer()
			return true, nil
		}
		if m.zoneManager.Get("offer-cancel").InBounds(msg) {
			m.closeOfferBuilder()
			return true, nil
		}
		return true, nil
	}

	for i := range m.session.Listings.Categories() {
		if m.zoneManager.Get(fmt.Sprintf("cat-%d", i)).InBounds(msg) {
			m.categoryIndex = i
			m.syncDeckFilter()
			return true, nil
		}
	}
	for _, listing := range m.visibleListings() {
		if m.zoneManager.Get(fmt.Sprintf("listing-trade-%d", listing.ID)).InBounds(msg) {
			m.openTradeChat(listing)
			return true, nil
		}
	}
	for _, thread := range m.session.Chats.Threads() {
		if m.zoneManager.Get(fmt.Sprintf("thread-%d", thread.ID)).InBounds(msg) {
			m.session.Chats.SetActive(thread.ID)
			m.marketFocus = focusChat
			m.searchInput.Blur()
			m.chatInput.Focus()
			m.refreshChatViewport()
			return true, nil
		}
	}
	if m.zoneManager.Get("offer-open").InBounds(msg) {
		m.openOfferBuilder()
		return true, nil
	}
	return false, nil
}

func (m *Model) handleProfileClick(msg tea.MouseMsg) (bool, tea.Cmd) {
	buttons := []struct {
		id     string
		action func()
	}{
		{"profile-save", m.saveProfile},
		{"toggle-dark", m.toggleDarkMode},
		{"toggle-paused", m.togglePaused},
		{"plan-pro", func() { m.openPayment("pro") }},
		{"plan-boost", func() { m.openPayment("boost") }},
		{"sign-out", m.signOut},
		{"reset-password", func() { m.status = "Password reset link sent to " + m.session.Email }},
		{"enable-2fa", func() { m.status = "Two-factor authentication enabled." }},
		{"toggle-notifications", func() {
			m.settings.ChatNotifications = !m.settings.ChatNotifications
			m.status = settingNotice("Chat notifications", m.settings.ChatNotifications)
		}},
		{"toggle-location", func() {
			m.settings.LocationSharing = !m.settings.LocationSharing
			m.status = settingNotice("Location sharing", m.settings.LocationSharing)
		}},
		{"toggle-compact", func() {
			m.settings.CompactCards = !m.settings.CompactCards
			m.status = settingNotice("Compact cards", m.settings.CompactCards)
		}},
		{"toggle-translate", func() {
			m.settings.AutoTranslate = !m.settings.AutoTranslate
			m.status = settingNotice("Auto-translate", m.settings.AutoTranslate)
		}},
		{"opt-language", func() {
			m.settings.Language = nextOption(languages, m.settings.Language)
			m.status = "Preferred language: " + m.settings.Language
		}},
		{"opt-radius", func() {
			m.settings.TradeRadius = nextOption(tradeRadii, m.settings.TradeRadius)
			m.status = "Trade radius: " + m.settings.TradeRadius
		}},
		{"opt-price", func() {
			m.settings.PriceRange = nextOption(priceRanges, m.settings.PriceRange)
			m.status = "Price range: " + m.settings.PriceRange
		}},
	}
	for _, button := range buttons {
		if m.zoneManager.Get(button.id).InBounds(msg) {
			button.action()
			return true, nil
		}
	}
	for i := range m.session.UserPosts() {
		if m.zoneManager.Get(fmt.Sprintf("post-del-%d", i)).InBounds(msg) {
			m.deletePostAt(i)
			return true, nil
		}
	}
	return false, nil
}
