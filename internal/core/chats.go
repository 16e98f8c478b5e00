package core

import (
	"fmt"
	"strings"
	"time"

	"tradeloop/internal/types"
)

// displayClock formats a message's display timestamp. It is a variable
// so tests can pin it.
var displayClock = func() string {
	return time.Now().Format("3:04 PM")
}

// ChatStore owns chat threads and their message logs, most recent
// thread first. At most one thread exists per (peer, listing) pair.
type ChatStore struct {
	chats    []types.Chat
	activeID int // 0 = none selected
}

// NewChatStore seeds a store and selects the given active thread.
func NewChatStore(seed []types.Chat, activeID int) *ChatStore {
	s := &ChatStore{chats: make([]types.Chat, len(seed)), activeID: activeID}
	copy(s.chats, seed)
	return s
}

// Threads returns the thread list, most recent first.
func (s *ChatStore) Threads() []types.Chat {
	out := make([]types.Chat, len(s.chats))
	copy(out, s.chats)
	return out
}

// Count returns the number of open threads.
func (s *ChatStore) Count() int {
	return len(s.chats)
}

// ActiveID returns the selected thread id, 0 when none.
func (s *ChatStore) ActiveID() int {
	return s.activeID
}

// SetActive selects a thread. Unknown ids are a no-op.
func (s *ChatStore) SetActive(id int) {
	if _, ok := s.byID(id); ok {
		s.activeID = id
	}
}

// Active returns the selected thread.
func (s *ChatStore) Active() (types.Chat, bool) {
	return s.byID(s.activeID)
}

func (s *ChatStore) byID(id int) (types.Chat, bool) {
	for _, c := range s.chats {
		if c.ID == id {
			return c, true
		}
	}
	return types.Chat{}, false
}

// Find returns the thread for an exact (peer, listing) pair.
func (s *ChatStore) Find(peer string, listingID int) (types.Chat, bool) {
	for _, c := range s.chats {
		if c.Peer == peer && c.ListingID == listingID {
			return c, true
		}
	}
	return types.Chat{}, false
}

// GetOrCreate returns the thread for the listing's owner, creating it
// with the owner's greeting when absent. New threads are prepended so
// the thread list stays most-recent-first.
func (s *ChatStore) GetOrCreate(listing types.Listing) types.Chat {
	if existing, ok := s.Find(listing.Owner, listing.ID); ok {
		return existing
	}
	chat := types.Chat{
		ID:        s.nextID(),
		Peer:      listing.Owner,
		ListingID: listing.ID,
		Messages: []types.ChatMessage{{
			ID:   1,
			From: listing.Owner,
			Text: fmt.Sprintf("Hi! I saw you're interested in trading for my %s.", listing.Title),
			Time: displayClock(),
		}},
	}
	s.chats = append([]types.Chat{chat}, s.chats...)
	return chat
}

// nextID is max existing thread id + 1, an independent sequence from
// listing ids.
func (s *ChatStore) nextID() int {
	max := 0
	for _, c := range s.chats {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// Append adds a message to one thread. The message id is max existing
// id within that thread + 1. Appending to a missing thread or with
// blank text is a no-op.
func (s *ChatStore) Append(threadID int, from, text string, offer *types.OfferCard) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for i := range s.chats {
		if s.chats[i].ID != threadID {
			continue
		}
		msg := types.ChatMessage{
			ID:    nextMessageID(s.chats[i].Messages),
			From:  from,
			Text:  text,
			Time:  displayClock(),
			Offer: offer,
		}
		s.chats[i].Messages = append(s.chats[i].Messages, msg)
		return true
	}
	return false
}

func nextMessageID(messages []types.ChatMessage) int {
	max := 0
	for _, m := range messages {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// RemoveByListing drops every thread referencing the listing. If the
// active thread was among them, selection falls back to the first
// remaining thread, or to none.
func (s *ChatStore) RemoveByListing(listingID int) {
	kept := s.chats[:0]
	for _, c := range s.chats {
		if c.ListingID != listingID {
			kept = append(kept, c)
		}
	}
	s.chats = kept
	if _, ok := s.byID(s.activeID); !ok {
		if len(s.chats) > 0 {
			s.activeID = s.chats[0].ID
		} else {
			s.activeID = 0
		}
	}
}
