package core

import "tradeloop/internal/types"

// SnapshotListing copies a listing's display fields into an offer card.
// The card shares nothing mutable with the source listing.
func SnapshotListing(l types.Listing) types.OfferCard {
	return types.OfferCard{
		ListingID: l.ID,
		Title:     l.Title,
		Category:  l.Category,
		Condition: l.Condition,
		Location:  l.Location,
		Price:     l.Price,
		Photo:     l.Photo,
		Accent:    l.Accent,
	}
}

// BuildOfferCard resolves an item title against the store and snapshots
// the match. A listing owned by the identity wins over anyone else's
// listing with the same title. Returns nil when no listing carries the
// title; callers treat that as "no card attached", not an error.
func BuildOfferCard(listings *ListingStore, identity Identity, itemTitle string) *types.OfferCard {
	var fallback *types.Listing
	for _, l := range listings.All() {
		if l.Title != itemTitle {
			continue
		}
		if identity.Owns(l) {
			card := SnapshotListing(l)
			return &card
		}
		if fallback == nil {
			match := l
			fallback = &match
		}
	}
	if fallback == nil {
		return nil
	}
	card := SnapshotListing(*fallback)
	return &card
}
