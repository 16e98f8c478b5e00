package core

import (
	"strings"

	"tradeloop/internal/types"
)

// accentPalette is the fixed set of banner colors. New listings pick one
// deterministically by id so reloads of the same seed data look the same.
var accentPalette = []string{"#73a942", "#a3b18a", "#9fc5e8", "#84a98c", "#f4a261"}

const defaultPrice = 50

// Identity is the signed-in user's addressable names. Listings match a
// user either by creator email or by owner display name, because seeded
// fixtures carry no creator email.
type Identity struct {
	Name  string
	Email string
}

// Owns reports whether the listing belongs to this identity.
func (id Identity) Owns(l types.Listing) bool {
	if l.CreatedBy != "" && l.CreatedBy == id.Email {
		return true
	}
	return l.Owner == id.Name
}

// NewListing carries caller-supplied fields for ListingStore.Create.
type NewListing struct {
	Title       string
	Description string
	Category    string
	Condition   string
	Location    string
	Owner       string
	CreatedBy   string
	Wants       []string
	Price       int
	Photo       string
}

// ListingStore owns every listing record, newest first. Mutations go
// through Create and Delete; reads recompute their views on each call.
type ListingStore struct {
	listings []types.Listing
}

// NewListingStore seeds a store with the given listings.
func NewListingStore(seed []types.Listing) *ListingStore {
	s := &ListingStore{listings: make([]types.Listing, len(seed))}
	copy(s.listings, seed)
	return s
}

// Create assigns the next id, fills defaulted fields, and prepends the
// listing. It always succeeds.
func (s *ListingStore) Create(data NewListing) types.Listing {
	id := s.nextID()
	wants := data.Wants
	if len(wants) == 0 {
		wants = []string{"Open to offers"}
	}
	location := strings.TrimSpace(data.Location)
	if location == "" {
		location = "Unknown"
	}
	price := data.Price
	if price <= 0 {
		price = defaultPrice
	}
	listing := types.Listing{
		ID:          id,
		Title:       strings.TrimSpace(data.Title),
		Description: strings.TrimSpace(data.Description),
		Category:    data.Category,
		Condition:   data.Condition,
		Location:    location,
		Owner:       data.Owner,
		CreatedBy:   data.CreatedBy,
		Wants:       wants,
		Price:       price,
		Photo:       data.Photo,
		Accent:      accentPalette[id%len(accentPalette)],
	}
	s.listings = append([]types.Listing{listing}, s.listings...)
	return listing
}

// nextID is max existing id + 1. Ids are never reused after deletion.
func (s *ListingStore) nextID() int {
	max := 0
	for _, l := range s.listings {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}

// Delete removes a listing by id. Missing ids are a no-op. Cascading
// chat cleanup is the orchestrating layer's job (Session.DeletePost).
func (s *ListingStore) Delete(id int) {
	kept := s.listings[:0]
	for _, l := range s.listings {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.listings = kept
}

// Get returns the listing with the given id.
func (s *ListingStore) Get(id int) (types.Listing, bool) {
	for _, l := range s.listings {
		if l.ID == id {
			return l, true
		}
	}
	return types.Listing{}, false
}

// All returns a copy of every listing, newest first.
func (s *ListingStore) All() []types.Listing {
	out := make([]types.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Len returns the number of listings held.
func (s *ListingStore) Len() int {
	return len(s.listings)
}

// Filter describes the marketplace view conditions. All conditions must
// hold; zero values are vacuously true.
type Filter struct {
	Category  string // "" or "All" matches every category
	Search    string // case-insensitive substring over title/category/owner
	Viewer    Identity
	HideOwned bool // true while the viewer has paused their posts
}

// Visible returns the filtered marketplace view. The suppression of a
// paused viewer's own posts applies to this derived view only, never to
// the underlying store.
func (s *ListingStore) Visible(f Filter) []types.Listing {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	var out []types.Listing
	for _, l := range s.listings {
		if f.HideOwned && f.Viewer.Owns(l) {
			continue
		}
		if f.Category != "" && f.Category != "All" && l.Category != f.Category {
			continue
		}
		if query != "" && !matchesSearch(l, query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesSearch(l types.Listing, query string) bool {
	return strings.Contains(strings.ToLower(l.Title), query) ||
		strings.Contains(strings.ToLower(l.Category), query) ||
		strings.Contains(strings.ToLower(l.Owner), query)
}

// OwnedBy returns the viewer's own listings, newest first.
func (s *ListingStore) OwnedBy(viewer Identity) []types.Listing {
	var out []types.Listing
	for _, l := range s.listings {
		if viewer.Owns(l) {
			out = append(out, l)
		}
	}
	return out
}

// Categories returns "All" followed by each distinct category in store
// order, for the marketplace filter chips.
func (s *ListingStore) Categories() []string {
	out := []string{"All"}
	seen := map[string]bool{}
	for _, l := range s.listings {
		if l.Category == "" || seen[l.Category] {
			continue
		}
		seen[l.Category] = true
		out = append(out, l.Category)
	}
	return out
}
