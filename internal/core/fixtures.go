package core

import "tradeloop/internal/types"

// SeedActiveChatID is the thread selected right after sign-in.
const SeedActiveChatID = 101

// SeedListings returns the demo catalog every session starts from.
func SeedListings() []types.Listing {
	return []types.Listing{
		{
			ID:          1,
			Title:       "Nintendo Switch OLED",
			Description: "Excellent condition. Dock, case, and two extra controllers included.",
			Category:    "Gaming",
			Condition:   "Excellent",
			Location:    "San Francisco",
			Owner:       "Avery",
			Wants:       []string{"Mechanical keyboard", "Steam gift card"},
			Price:       280,
			Photo:       "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3",
			Accent:      "#73a942",
		},
		{
			ID:          2,
			Title:       "Polaroid Now+",
			Description: "Like-new instant camera with 15 film packs and carrying case.",
			Category:    "Photography",
			Condition:   "Like New",
			Location:    "Oakland",
			Owner:       "Mina",
			Wants:       []string{"Portable speaker", "Vinyl records"},
			Price:       140,
			Photo:       "https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
			Accent:      "#a3b18a",
		},
		{
			ID:          3,
			Title:       "Yamaha Acoustic Guitar",
			Description: "Warm tone, recently restrung, includes padded gig bag.",
			Category:    "Music",
			Condition:   "Good",
			Location:    "Berkeley",
			Owner:       "Noah",
			Wants:       []string{"Studio microphone", "Midi controller"},
			Price:       190,
			Photo:       "https://images.unsplash.com/photo-1511379938547-c1f69419868d",
			Accent:      "#73a942",
		},
		{
			ID:          4,
			Title:       "Standing Desk Converter",
			Description: "Dual monitor support, smooth lift mechanism, minimal use.",
			Category:    "Home Office",
			Condition:   "Great",
			Location:    "San Jose",
			Owner:       "Eli",
			Wants:       []string{"Ergonomic chair", "Desk lamp"},
			Price:       160,
			Photo:       "https://images.unsplash.com/photo-1593476550610-87baa860004a",
			Accent:      "#a3b18a",
		},
		{
			ID:          5,
			Title:       "Air Fryer (5qt)",
			Description: "Works great, basket recently replaced, light countertop wear.",
			Category:    "Kitchen",
			Condition:   "Used",
			Location:    "Daly City",
			Owner:       "Sana",
			Wants:       []string{"Blender", "Meal prep containers"},
			Price:       95,
			Accent:      "#73a942",
		},
	}
}

// SeedChats returns the demo conversations for a freshly signed-in
// user. Messages previously sent "by you" are re-authored under the
// current user's name.
func SeedChats(currentUser string) []types.Chat {
	return []types.Chat{
		{
			ID:        101,
			Peer:      "Mina",
			ListingID: 2,
			Messages: []types.ChatMessage{
				{ID: 1, From: "Mina", Text: "Hey! Still looking to trade the Polaroid?", Time: "9:41 AM"},
				{ID: 2, From: currentUser, Text: "Yes, I can offer a JBL Flip Speaker.", Time: "9:43 AM"},
				{ID: 3, From: "Mina", Text: "That works. Can we meet in Oakland this weekend?", Time: "9:46 AM"},
			},
		},
		{
			ID:        102,
			Peer:      "Noah",
			ListingID: 3,
			Messages: []types.ChatMessage{
				{ID: 1, From: "Noah", Text: "Do you have any midi controllers for trade?", Time: "8:10 AM"},
				{ID: 2, From: currentUser, Text: "I have one, plus a mic if needed.", Time: "8:12 AM"},
			},
		},
	}
}
