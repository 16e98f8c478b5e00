package core

import (
	"testing"

	"tradeloop/internal/types"
)

func TestCreateAssignsUniqueIncreasingIDs(t *testing.T) {
	store := NewListingStore(SeedListings())

	first := store.Create(NewListing{Title: "Sony Headphones", Description: "Over-ear", Category: "Other", Condition: "Good"})
	if first.ID != 6 {
		t.Fatalf("first id: got %d want 6", first.ID)
	}

	store.Delete(first.ID)
	second := store.Create(NewListing{Title: "Desk Lamp", Description: "LED", Category: "Home Office", Condition: "Great"})
	if second.ID != 6 {
		t.Fatalf("id after deleting the max: got %d want 6", second.ID)
	}

	// Ids below the max are never reused.
	store.Delete(2)
	third := store.Create(NewListing{Title: "Blender", Description: "600W", Category: "Kitchen", Condition: "Used"})
	if third.ID != 7 {
		t.Fatalf("id after deleting mid-range: got %d want 7", third.ID)
	}

	seen := map[int]bool{}
	for _, l := range store.All() {
		if seen[l.ID] {
			t.Fatalf("duplicate id %d", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestCreateDefaults(t *testing.T) {
	store := NewListingStore(nil)
	listing := store.Create(NewListing{Title: "Camping Stove", Description: "Two burner"})

	if got := listing.Wants; len(got) != 1 || got[0] != "Open to offers" {
		t.Fatalf("wants default: got %v", got)
	}
	if listing.Location != "Unknown" {
		t.Fatalf("location default: got %q", listing.Location)
	}
	if listing.Price != defaultPrice {
		t.Fatalf("price default: got %d want %d", listing.Price, defaultPrice)
	}
	if listing.Accent != accentPalette[listing.ID%len(accentPalette)] {
		t.Fatalf("accent not palette-deterministic: got %q", listing.Accent)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	store := NewListingStore(SeedListings())
	store.Delete(999)
	if store.Len() != 5 {
		t.Fatalf("len after deleting missing id: got %d want 5", store.Len())
	}
}

func TestVisibleFilters(t *testing.T) {
	store := NewListingStore(SeedListings())
	viewer := Identity{Name: "You", Email: "demo@tradeloop.com"}
	store.Create(NewListing{
		Title: "Espresso Machine", Description: "Dual boiler",
		Category: "Kitchen", Condition: "Great",
		Owner: "You", CreatedBy: "demo@tradeloop.com",
	})

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "no filter", filter: Filter{Viewer: viewer}, want: 6},
		{name: "all sentinel", filter: Filter{Category: "All", Viewer: viewer}, want: 6},
		{name: "category", filter: Filter{Category: "Kitchen", Viewer: viewer}, want: 2},
		{name: "search title", filter: Filter{Search: "polaroid", Viewer: viewer}, want: 1},
		{name: "search owner", filter: Filter{Search: "NOAH", Viewer: viewer}, want: 1},
		{name: "search category", filter: Filter{Search: "gaming", Viewer: viewer}, want: 1},
		{name: "search whitespace only", filter: Filter{Search: "   ", Viewer: viewer}, want: 6},
		{name: "category and search must both hold", filter: Filter{Category: "Music", Search: "polaroid", Viewer: viewer}, want: 0},
		{name: "paused hides own posts", filter: Filter{Viewer: viewer, HideOwned: true}, want: 5},
		{name: "paused with category", filter: Filter{Category: "Kitchen", Viewer: viewer, HideOwned: true}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(store.Visible(tt.filter)); got != tt.want {
				t.Fatalf("visible: got %d want %d", got, tt.want)
			}
		})
	}
}

func TestPausedSuppressionLeavesStoreIntact(t *testing.T) {
	store := NewListingStore(nil)
	viewer := Identity{Name: "You", Email: "demo@tradeloop.com"}
	store.Create(NewListing{Title: "Bike", Description: "Road bike", Owner: "You", CreatedBy: "demo@tradeloop.com"})

	if got := len(store.Visible(Filter{Viewer: viewer, HideOwned: true})); got != 0 {
		t.Fatalf("suppressed view: got %d want 0", got)
	}
	if store.Len() != 1 {
		t.Fatalf("underlying store: got %d want 1", store.Len())
	}
}

func TestOwnedByMatchesEmailOrName(t *testing.T) {
	store := NewListingStore([]types.Listing{
		{ID: 1, Title: "Fixture", Owner: "Avery"},
		{ID: 2, Title: "By email", Owner: "Someone Else", CreatedBy: "demo@tradeloop.com"},
		{ID: 3, Title: "By name", Owner: "You"},
	})
	posts := store.OwnedBy(Identity{Name: "You", Email: "demo@tradeloop.com"})
	if len(posts) != 2 {
		t.Fatalf("owned posts: got %d want 2", len(posts))
	}
}

func TestCategoriesDistinctWithAllFirst(t *testing.T) {
	store := NewListingStore(SeedListings())
	got := store.Categories()
	want := []string{"All", "Gaming", "Photography", "Music", "Home Office", "Kitchen"}
	if len(got) != len(want) {
		t.Fatalf("categories: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories[%d]: got %q want %q", i, got[i], want[i])
		}
	}
}
