package core

import (
	"testing"

	"tradeloop/internal/types"
)

func TestSnapshotListingCopiesDisplayFields(t *testing.T) {
	listing := SeedListings()[0]
	card := SnapshotListing(listing)

	if card.ListingID != listing.ID || card.Title != listing.Title {
		t.Fatalf("snapshot identity: got %+v", card)
	}
	if card.Price != listing.Price || card.Accent != listing.Accent {
		t.Fatalf("snapshot display fields: got %+v", card)
	}
}

func TestBuildOfferCardPrefersOwnedListing(t *testing.T) {
	me := Identity{Name: "You", Email: "demo@tradeloop.com"}
	store := NewListingStore([]types.Listing{
		{ID: 1, Title: "Vinyl Crate", Owner: "Avery", Price: 40},
		{ID: 2, Title: "Vinyl Crate", Owner: "You", CreatedBy: "demo@tradeloop.com", Price: 60},
	})

	card := BuildOfferCard(store, me, "Vinyl Crate")
	if card == nil {
		t.Fatal("card is nil")
	}
	if card.ListingID != 2 {
		t.Fatalf("resolved listing: got %d want 2", card.ListingID)
	}
}

func TestBuildOfferCardFallsBackToAnyTitleMatch(t *testing.T) {
	me := Identity{Name: "You", Email: "demo@tradeloop.com"}
	store := NewListingStore(SeedListings())

	card := BuildOfferCard(store, me, "Polaroid Now+")
	if card == nil {
		t.Fatal("card is nil")
	}
	if card.ListingID != 2 {
		t.Fatalf("fallback listing: got %d want 2", card.ListingID)
	}
}

func TestBuildOfferCardUnknownTitle(t *testing.T) {
	me := Identity{Name: "You", Email: "demo@tradeloop.com"}
	store := NewListingStore(SeedListings())
	if card := BuildOfferCard(store, me, "Nonexistent Item"); card != nil {
		t.Fatalf("unknown title: got %+v want nil", card)
	}
}

func TestOfferCardOutlivesSourceDeletion(t *testing.T) {
	pinClock(t, "3:00 PM")
	session := NewSession()
	listing, _ := session.Listings.Get(1)

	chat := session.AcceptSwipe(listing)
	session.Listings.Delete(listing.ID)

	// The source listing is gone but the sent card keeps the snapshot.
	thread, ok := session.Chats.byID(chat.ID)
	if !ok {
		t.Fatal("offer thread missing")
	}
	last := thread.Messages[len(thread.Messages)-1]
	if last.Offer == nil {
		t.Fatal("offer card missing")
	}
	if last.Offer.Title != "Nintendo Switch OLED" {
		t.Fatalf("snapshot title: got %q", last.Offer.Title)
	}
	if _, ok := session.Listings.Get(1); ok {
		t.Fatal("source listing still stored")
	}
}
