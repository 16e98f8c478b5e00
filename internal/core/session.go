package core

import (
	"fmt"
	"strings"

	"tradeloop/internal/types"
)

// FreeSwipeLimit is the per-session swipe budget on the free plan.
const FreeSwipeLimit = 10

const defaultOfferNote = "Interested in trading."

// Session is the whole in-memory marketplace state for one signed-in
// user: identity, plan and swipe usage, the listing and chat stores.
// Every mutation runs on the UI event loop, one event at a time, so the
// session needs no locking. Nothing here survives a process restart.
type Session struct {
	Name     string
	Email    string
	Location string

	Plan        types.Plan
	SwipesUsed  int
	PostsPaused bool

	Listings *ListingStore
	Chats    *ChatStore
}

// NewSession builds the pre-sign-in state: seeded catalog, seeded
// chats, free plan.
func NewSession() *Session {
	return &Session{
		Name:     "You",
		Email:    "demo@tradeloop.com",
		Location: "San Francisco, CA",
		Plan:     types.PlanFree,
		Listings: NewListingStore(SeedListings()),
		Chats:    NewChatStore(SeedChats("You"), SeedActiveChatID),
	}
}

// Identity returns the session's addressable names.
func (s *Session) Identity() Identity {
	return Identity{Name: s.Name, Email: s.Email}
}

// SignIn adopts an account and resets the per-session state: chats go
// back to the seeded set for that identity, the swipe counter returns
// to zero, and post pausing is cleared. Listings are left as they are.
func (s *Session) SignIn(account types.Account) {
	name := account.Name
	if name == "" {
		name = "You"
	}
	email := account.Email
	if email == "" {
		email = "demo@tradeloop.com"
	}
	location := account.Location
	if location == "" {
		location = "San Francisco, CA"
	}
	s.Name = name
	s.Email = email
	s.Location = location
	s.PostsPaused = false
	s.SwipesUsed = 0
	s.Chats = NewChatStore(SeedChats(name), SeedActiveChatID)
}

// SaveProfile updates the identity fields; blank values keep the
// current ones.
func (s *Session) SaveProfile(name, email, location string) {
	if v := strings.TrimSpace(name); v != "" {
		s.Name = v
	}
	if v := strings.TrimSpace(email); v != "" {
		s.Email = v
	}
	if v := strings.TrimSpace(location); v != "" {
		s.Location = v
	}
}

// UpgradeToPro switches the plan. The transition is one-directional;
// there is no downgrade path.
func (s *Session) UpgradeToPro() {
	s.Plan = types.PlanPro
}

// SwipeLimitReached reports whether the free-tier budget is spent. Pro
// is never limited.
func (s *Session) SwipeLimitReached() bool {
	return s.Plan == types.PlanFree && s.SwipesUsed >= FreeSwipeLimit
}

// ConsumeSwipe counts one swipe decision. The counter only ever grows,
// on pro as well, for display.
func (s *Session) ConsumeSwipe() {
	s.SwipesUsed++
}

// SetPostsPaused toggles marketplace visibility of the user's own
// posts. This affects derived views only; the listings stay stored.
func (s *Session) SetPostsPaused(paused bool) {
	s.PostsPaused = paused
}

// VisibleListings is the marketplace view for the current filter.
func (s *Session) VisibleListings(category, search string) []types.Listing {
	return s.Listings.Visible(Filter{
		Category:  category,
		Search:    search,
		Viewer:    s.Identity(),
		HideOwned: s.PostsPaused,
	})
}

// UserPosts returns the user's own listings.
func (s *Session) UserPosts() []types.Listing {
	return s.Listings.OwnedBy(s.Identity())
}

// InventoryTitles returns the distinct titles of the user's posts, for
// the trade-offer item picker.
func (s *Session) InventoryTitles() []string {
	var out []string
	seen := map[string]bool{}
	for _, l := range s.UserPosts() {
		if l.Title == "" || seen[l.Title] {
			continue
		}
		seen[l.Title] = true
		out = append(out, l.Title)
	}
	return out
}

// ActiveTradesCount is the profile's "active listings" figure: zero
// while posts are paused.
func (s *Session) ActiveTradesCount() int {
	if s.PostsPaused {
		return 0
	}
	return len(s.UserPosts())
}

// CreatePost publishes a listing under the current identity. Title and
// description are required; a blank either suppresses the operation.
func (s *Session) CreatePost(data NewListing) (types.Listing, bool) {
	if strings.TrimSpace(data.Title) == "" || strings.TrimSpace(data.Description) == "" {
		return types.Listing{}, false
	}
	data.Owner = s.Name
	data.CreatedBy = s.Email
	return s.Listings.Create(data), true
}

// DeletePost removes a listing and cascades into the chat store: every
// thread anchored to the listing goes with it, and the active-thread
// selection falls back if needed.
func (s *Session) DeletePost(id int) {
	s.Listings.Delete(id)
	s.Chats.RemoveByListing(id)
}

// OpenTradeChat finds or creates the thread for a listing and makes it
// the active one.
func (s *Session) OpenTradeChat(listing types.Listing) types.Chat {
	chat := s.Chats.GetOrCreate(listing)
	s.Chats.SetActive(chat.ID)
	return chat
}

// SendChatMessage appends a plain message from the user to the active
// thread. Whitespace-only input is a no-op.
func (s *Session) SendChatMessage(text string) bool {
	chat, ok := s.Chats.Active()
	if !ok {
		return false
	}
	return s.Chats.Append(chat.ID, s.Name, text, nil)
}

// SendTradeOffer posts an offer for one of the user's items to the
// active thread, with the item's snapshot attached when it resolves.
func (s *Session) SendTradeOffer(item, note string) bool {
	chat, ok := s.Chats.Active()
	if !ok || strings.TrimSpace(item) == "" {
		return false
	}
	card := BuildOfferCard(s.Listings, s.Identity(), item)
	return s.Chats.Append(chat.ID, s.Name, offerText(item, note), card)
}

// AcceptSwipe routes an accepted listing into chat: the thread for
// (owner, listing) is created on demand, receives an offer message
// embedding the snapshot, and becomes the active thread. The listing is
// passed by value — the caller captured it before any delay — so a
// concurrent delete of the source cannot corrupt the sent message.
func (s *Session) AcceptSwipe(listing types.Listing) types.Chat {
	chat := s.Chats.GetOrCreate(listing)
	card := SnapshotListing(listing)
	s.Chats.Append(chat.ID, s.Name, offerText(listing.Title, ""), &card)
	s.Chats.SetActive(chat.ID)
	return chat
}

func offerText(item, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		note = defaultOfferNote
	}
	return fmt.Sprintf("Trade offer: %s. Note: %s", item, note)
}
