package types

// Plan represents a subscription tier.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Conditions lists the accepted listing conditions, best first.
var Conditions = []string{"Like New", "Excellent", "Great", "Good", "Used"}

// Listing represents a tradeable item in the marketplace.
// Listings are never edited in place: they are created, read, and deleted.
type Listing struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Owner       string   `json:"owner"`
	CreatedBy   string   `json:"created_by,omitempty"` // creator email; empty for seeded fixtures
	Wants       []string `json:"wants"`
	Price       int      `json:"price"`
	Photo       string   `json:"photo,omitempty"`
	Accent      string   `json:"accent"`
}

// OfferCard is a denormalized snapshot of a listing's display fields,
// embedded in a message when a trade offer is sent. Once embedded it is
// never updated, so deleting or changing the source listing cannot
// retroactively alter sent offers.
type OfferCard struct {
	ListingID int    `json:"listing_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Location  string `json:"location"`
	Price     int    `json:"price"`
	Photo     string `json:"photo,omitempty"`
	Accent    string `json:"accent"`
}

// ChatMessage is one entry in a chat thread.
//
// IDs are unique within the owning thread only; two threads may each
// hold a message with id 1. Time is display-only — slice order is the
// ordering authority.
type ChatMessage struct {
	ID    int        `json:"id"`
	From  string     `json:"from"`
	Text  string     `json:"text"`
	Time  string     `json:"time"`
	Offer *OfferCard `json:"offer,omitempty"`
}

// Chat is a conversation anchored to exactly one (peer, listing) pair.
type Chat struct {
	ID        int           `json:"id"`
	Peer      string        `json:"peer"`
	ListingID int           `json:"listing_id"`
	Messages  []ChatMessage `json:"messages"`
}

// Account represents a registered trader. Credentials are held in
// plaintext in memory — this is a demo, not an auth system.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}
