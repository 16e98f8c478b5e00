package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tradeloop/internal/core"
	"tradeloop/internal/db"
	"tradeloop/internal/types"
)

func (m *Model) navigate(target page) {
	if m.page == target {
		return
	}
	m.page = target
	m.status = ""
	m.offerOpen = false
	m.offerNote.Blur()
	switch target {
	case pageMarketplace:
		m.marketFocus = focusSearch
		m.searchInput.Focus()
		m.chatInput.Blur()
		m.refreshChatViewport()
	case pageSwipe:
		m.searchInput.Blur()
		m.chatInput.Blur()
		m.syncDeckFilter()
		m.status = core.NoticeSwipeHint
	case pageProfile:
		m.searchInput.Blur()
		m.chatInput.Blur()
		m.profileIndex = -1
		focusField(m.profileFields, -1)
		m.prefillProfile()
	case pageCreatePost:
		m.searchInput.Blur()
		m.chatInput.Blur()
		m.postField = 0
		focusField(m.postFields, 0)
	}
}

func (m *Model) prefillProfile() {
	m.profileFields[0].input.SetValue(m.session.Name)
	m.profileFields[1].input.SetValue(m.session.Email)
	m.profileFields[2].input.SetValue(m.session.Location)
}

// submitAuth handles enter on the auth page.
func (m *Model) submitAuth() {
	if m.authTab == tabSignIn {
		email := m.signInFields[0].input.Value()
		password := m.signInFields[1].input.Value()
		account, err := m.accounts.Authenticate(email, password)
		if err != nil {
			m.status = err.Error()
			return
		}
		m.session.SignIn(account)
		m.deck.Reset()
		m.categoryIndex = 0
		m.searchInput.Reset()
		m.logger.Info("signed in", zap.String("email", account.Email))
		resetFields(m.signInFields)
		m.navigate(pageMarketplace)
		m.status = "Welcome back, " + m.session.Name
		return
	}

	err := m.accounts.Register(
		m.createFields[0].input.Value(),
		m.createFields[1].input.Value(),
		m.createFields[2].input.Value(),
		m.createFields[3].input.Value(),
		m.createFields[4].input.Value(),
	)
	if err != nil {
		m.status = err.Error()
		return
	}
	resetFields(m.createFields)
	m.setAuthTab(tabSignIn)
	m.status = core.NoticeAccountCreated
}

func (m *Model) setAuthTab(tab authTab) {
	m.authTab = tab
	m.authIndex = 0
	if tab == tabSignIn {
		focusField(m.createFields, -1)
		focusField(m.signInFields, 0)
	} else {
		focusField(m.signInFields, -1)
		focusField(m.createFields, 0)
	}
}

func (m *Model) signOut() {
	m.page = pageAuth
	m.setAuthTab(tabSignIn)
	m.deck.Reset()
	m.ownerCard = nil
	m.ownerWants = nil
	m.status = "Signed out."
}

// swipe funnels every gesture into the deck's guarded decisions.
func (m *Model) swipe(direction swipeDirection) tea.Cmd {
	switch direction {
	case swipeLeft:
		notice, _ := m.deck.Reject()
		m.status = notice
		return nil
	case swipeRight:
		pending, notice, ok := m.deck.BeginAccept()
		m.status = notice
		if !ok {
			return nil
		}
		return choiceTimeoutCmd(pending)
	}
	return nil
}

func (m *Model) acceptedCard(pending core.PendingAccept) types.OfferCard {
	return core.SnapshotListing(pending.Listing)
}

func (m *Model) openTradeChat(listing types.Listing) {
	m.session.OpenTradeChat(listing)
	m.marketFocus = focusChat
	m.searchInput.Blur()
	m.chatInput.Focus()
	m.refreshChatViewport()
	m.status = "Chatting with " + listing.Owner
}

func (m *Model) sendChatMessage() {
	if m.session.SendChatMessage(m.chatInput.Value()) {
		m.chatInput.Reset()
		m.refreshChatViewport()
	}
}

func (m *Model) openOfferBuilder() {
	titles := m.session.InventoryTitles()
	if len(titles) == 0 {
		m.status = "Post an item first, then offer it in a trade."
		return
	}
	if _, ok := m.session.Chats.Active(); !ok {
		m.status = "Open a chat before sending an offer."
		return
	}
	m.offerOpen = true
	m.offerIndex = 0
	m.offerNote.Reset()
	m.offerNote.Focus()
	m.searchInput.Blur()
	m.chatInput.Blur()
}

func (m *Model) closeOfferBuilder() {
	m.offerOpen = false
	m.offerNote.Blur()
	m.marketFocus = focusChat
	m.chatInput.Focus()
}

func (m *Model) sendOffer() {
	titles := m.session.InventoryTitles()
	if m.offerIndex >= len(titles) {
		return
	}
	item := titles[m.offerIndex]
	if m.session.SendTradeOffer(item, m.offerNote.Value()) {
		m.status = "Offer sent: " + item
	}
	m.closeOfferBuilder()
	m.refreshChatViewport()
}

func (m *Model) toggleDarkMode() {
	m.darkMode = !m.darkMode
	m.theme = themeFor(m.darkMode)
	if err := db.SetDarkMode(m.db, m.darkMode); err != nil {
		m.logger.Warn("persist dark mode", zap.Error(err))
		m.status = "Could not save theme preference."
		return
	}
	if m.darkMode {
		m.status = "Dark mode on."
	} else {
		m.status = "Dark mode off."
	}
}

func (m *Model) togglePaused() {
	paused := !m.session.PostsPaused
	m.session.SetPostsPaused(paused)
	if paused {
		m.status = "Your posts are hidden from the marketplace."
	} else {
		m.status = "Your posts are visible again."
	}
}

func (m *Model) openPayment(plan string) {
	m.payOpen = true
	m.payPlan = plan
	m.payIndex = 0
	resetFields(m.payFields)
	focusField(m.payFields, 0)
}

func (m *Model) closePayment() {
	m.payOpen = false
	focusField(m.payFields, -1)
}

// confirmPayment applies the purchase. Card details are opaque
// pass-through; nothing validates them.
func (m *Model) confirmPayment() {
	plan := m.payPlan
	m.closePayment()
	if plan == "boost" {
		m.status = "Boost activated for 2 hours. Your posts ride on top."
		return
	}
	m.session.UpgradeToPro()
	m.status = "Welcome to Pro. Unlimited swipes unlocked."
}

func (m *Model) saveProfile() {
	m.session.SaveProfile(
		m.profileFields[0].input.Value(),
		m.profileFields[1].input.Value(),
		m.profileFields[2].input.Value(),
	)
	m.prefillProfile()
	m.status = "Profile saved."
}

func (m *Model) deletePostAt(index int) {
	posts := m.session.UserPosts()
	if index < 0 || index >= len(posts) {
		return
	}
	title := posts[index].Title
	m.session.DeletePost(posts[index].ID)
	if m.postIndex >= len(posts)-1 {
		m.postIndex = 0
	}
	m.refreshChatViewport()
	m.status = "Deleted " + title
}

func (m *Model) publishPost() {
	price, _ := strconv.Atoi(strings.TrimSpace(m.postFields[5].input.Value()))
	var wants []string
	for _, want := range strings.Split(m.postFields[7].input.Value(), ",") {
		if trimmed := strings.TrimSpace(want); trimmed != "" {
			wants = append(wants, trimmed)
		}
	}
	listing, ok := m.session.CreatePost(core.NewListing{
		Title:       m.postFields[0].input.Value(),
		Description: m.postFields[1].input.Value(),
		Category:    m.postFields[2].input.Value(),
		Condition:   m.postFields[3].input.Value(),
		Location:    m.postFields[4].input.Value(),
		Price:       price,
		Photo:       m.postFields[6].input.Value(),
		Wants:       wants,
	})
	if !ok {
		m.status = "Title and description are required."
		return
	}
	resetFields(m.postFields)
	m.logger.Info("post published", zap.Int("listing", listing.ID))
	m.navigate(pageMarketplace)
	m.status = "Posted " + listing.Title
}
