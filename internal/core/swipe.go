package core

import (
	"time"

	"tradeloop/internal/types"
)

// Notices surfaced by swipe decisions. Violations never mutate state;
// they only produce one of these.
const (
	NoticeSwipeHint  = "Swipe left or right to discover your next swap."
	NoticeSwipeLimit = "Free plan limit reached: 10 swipes. Upgrade to Pro for unlimited swipes."
	NoticeSkipped    = "Skipped. Next product loaded."
	NoticeAccepted   = "Nice choice. Sending trade offer..."
	NoticeEmptyFeed  = "Nothing to discover right now."
)

// ChoiceWindow is how long the accept confirmation overlay stays up and
// blocks further decisions.
const ChoiceWindow = 820 * time.Millisecond

// SwipeDeck is a cursor over the filtered listing feed plus the
// in-flight accept guard. It owns no listings: the feed is recomputed
// from the store on every read, falling back to the whole catalog when
// the filtered view is empty.
type SwipeDeck struct {
	session  *Session
	category string
	search   string
	cursor   int
	deciding bool
	epoch    int
}

// PendingAccept is the immutable payload carried across the confirm
// window: the chosen listing by value, stamped with the deck epoch so a
// stale continuation can be dropped.
type PendingAccept struct {
	Listing types.Listing
	Epoch   int
}

// NewSwipeDeck builds a deck over the session's stores.
func NewSwipeDeck(session *Session) *SwipeDeck {
	return &SwipeDeck{session: session}
}

// SetFilter records the marketplace filter driving the feed. A changed
// filter means a changed feed composition, so the cursor resets.
func (d *SwipeDeck) SetFilter(category, search string) {
	if d.category == category && d.search == search {
		return
	}
	d.category = category
	d.search = search
	d.cursor = 0
}

func (d *SwipeDeck) feed() []types.Listing {
	feed := d.session.VisibleListings(d.category, d.search)
	if len(feed) == 0 {
		feed = d.session.Listings.All()
	}
	return feed
}

// Current returns the listing under the cursor. The cursor wraps modulo
// the feed length on every read, so deletions can never leave it out of
// bounds. ok is false only when the store itself is empty.
func (d *SwipeDeck) Current() (types.Listing, bool) {
	feed := d.feed()
	if len(feed) == 0 {
		return types.Listing{}, false
	}
	return feed[d.cursor%len(feed)], true
}

// Deciding reports whether an accept confirmation window is open. While
// it is, both Accept and Reject are refused.
func (d *SwipeDeck) Deciding() bool {
	return d.deciding
}

func (d *SwipeDeck) blocked() bool {
	return d.deciding || d.session.SwipeLimitReached()
}

// Reject skips the current listing: one swipe consumed, cursor
// advanced. A blocked decision returns the limit notice unchanged.
func (d *SwipeDeck) Reject() (string, bool) {
	if d.blocked() {
		return NoticeSwipeLimit, false
	}
	if _, ok := d.Current(); !ok {
		return NoticeEmptyFeed, false
	}
	d.session.ConsumeSwipe()
	d.cursor++
	return NoticeSkipped, true
}

// BeginAccept consumes one swipe and opens the confirmation window,
// capturing the current listing by value for the deferred completion.
// The caller schedules CompleteAccept after ChoiceWindow.
func (d *SwipeDeck) BeginAccept() (PendingAccept, string, bool) {
	if d.blocked() {
		return PendingAccept{}, NoticeSwipeLimit, false
	}
	listing, ok := d.Current()
	if !ok {
		return PendingAccept{}, NoticeEmptyFeed, false
	}
	d.session.ConsumeSwipe()
	d.deciding = true
	return PendingAccept{Listing: listing, Epoch: d.epoch}, NoticeAccepted, true
}

// CompleteAccept finishes a pending accept once the confirmation window
// has elapsed: the captured listing is routed into chat and the cursor
// advances. A pending whose epoch has moved on (a reset happened while
// the timer ran) is dropped without touching any state.
func (d *SwipeDeck) CompleteAccept(p PendingAccept) (types.Chat, bool) {
	if p.Epoch != d.epoch {
		return types.Chat{}, false
	}
	d.deciding = false
	chat := d.session.AcceptSwipe(p.Listing)
	d.cursor++
	return chat, true
}

// Reset clears the cursor and any in-flight decision, and invalidates
// pending accepts. Used on sign-in and when the deck is torn down.
func (d *SwipeDeck) Reset() {
	d.cursor = 0
	d.deciding = false
	d.epoch++
}
