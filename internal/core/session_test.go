package core

import (
	"testing"

	"tradeloop/internal/types"
)

func TestSignInResetsPerSessionState(t *testing.T) {
	pinClock(t, "5:00 PM")
	session := NewSession()

	session.SwipesUsed = 7
	session.SetPostsPaused(true)
	session.Chats.GetOrCreate(types.Listing{ID: 1, Title: "Nintendo Switch OLED", Owner: "Avery"})
	post, _ := session.CreatePost(NewListing{Title: "Record Player", Description: "Belt drive"})

	session.SignIn(types.Account{Name: "Demo Trader", Email: "demo@tradeloop.com", Location: "San Francisco, CA"})

	if session.Name != "Demo Trader" || session.Email != "demo@tradeloop.com" {
		t.Fatalf("identity after sign-in: %q / %q", session.Name, session.Email)
	}
	if session.SwipesUsed != 0 {
		t.Fatalf("swipes after sign-in: got %d want 0", session.SwipesUsed)
	}
	if session.PostsPaused {
		t.Fatal("posts still paused after sign-in")
	}
	if got := session.Chats.Count(); got != 2 {
		t.Fatalf("chats after sign-in: got %d want 2", got)
	}
	if got := session.Chats.ActiveID(); got != SeedActiveChatID {
		t.Fatalf("active chat after sign-in: got %d want %d", got, SeedActiveChatID)
	}
	// Listings survive the reset.
	if _, ok := session.Listings.Get(post.ID); !ok {
		t.Fatal("created listing lost on sign-in")
	}
}

func TestSignInBlankFieldsFallBackToDefaults(t *testing.T) {
	session := NewSession()
	session.SignIn(types.Account{})
	if session.Name != "You" {
		t.Fatalf("name fallback: got %q", session.Name)
	}
	if session.Email != "demo@tradeloop.com" {
		t.Fatalf("email fallback: got %q", session.Email)
	}
	if session.Location != "San Francisco, CA" {
		t.Fatalf("location fallback: got %q", session.Location)
	}
}

func TestSeededChatsAdoptCurrentUserName(t *testing.T) {
	session := NewSession()
	session.SignIn(types.Account{Name: "Jordan", Email: "jordan@example.com", Location: "Oakland, CA"})
	chat, _ := session.Chats.Active()
	if got := chat.Messages[1].From; got != "Jordan" {
		t.Fatalf("seeded message author: got %q want Jordan", got)
	}
}

func TestSaveProfileKeepsBlanks(t *testing.T) {
	session := NewSession()
	session.SaveProfile("", "new@tradeloop.com", "  ")
	if session.Name != "You" {
		t.Fatalf("name: got %q want You", session.Name)
	}
	if session.Email != "new@tradeloop.com" {
		t.Fatalf("email: got %q", session.Email)
	}
	if session.Location != "San Francisco, CA" {
		t.Fatalf("location: got %q", session.Location)
	}
}

func TestCreatePostRequiresTitleAndDescription(t *testing.T) {
	session := NewSession()

	if _, ok := session.CreatePost(NewListing{Title: "  ", Description: "something"}); ok {
		t.Fatal("blank title accepted")
	}
	if _, ok := session.CreatePost(NewListing{Title: "Lamp", Description: "\t"}); ok {
		t.Fatal("blank description accepted")
	}
	listing, ok := session.CreatePost(NewListing{Title: "Lamp", Description: "Warm LED"})
	if !ok {
		t.Fatal("valid post refused")
	}
	if listing.Owner != session.Name || listing.CreatedBy != session.Email {
		t.Fatalf("ownership stamp: %q / %q", listing.Owner, listing.CreatedBy)
	}
}

func TestDeletePostCascadesIntoChats(t *testing.T) {
	pinClock(t, "5:10 PM")
	session := NewSession()
	post, _ := session.CreatePost(NewListing{Title: "Lamp", Description: "Warm LED"})

	chat := session.OpenTradeChat(post)
	if got := session.Chats.ActiveID(); got != chat.ID {
		t.Fatalf("active after open: got %d want %d", got, chat.ID)
	}

	session.DeletePost(post.ID)
	if _, ok := session.Listings.Get(post.ID); ok {
		t.Fatal("listing survived delete")
	}
	if _, ok := session.Chats.Find(post.Owner, post.ID); ok {
		t.Fatal("thread survived cascade")
	}
	if got := session.Chats.ActiveID(); got == chat.ID {
		t.Fatal("active still points at removed thread")
	}
}

func TestActiveTradesCountZeroWhilePaused(t *testing.T) {
	session := NewSession()
	session.CreatePost(NewListing{Title: "Lamp", Description: "Warm LED"})
	if got := session.ActiveTradesCount(); got != 1 {
		t.Fatalf("active trades: got %d want 1", got)
	}
	session.SetPostsPaused(true)
	if got := session.ActiveTradesCount(); got != 0 {
		t.Fatalf("active trades while paused: got %d want 0", got)
	}
	if got := session.Listings.Len(); got != 6 {
		t.Fatalf("store size while paused: got %d want 6", got)
	}
}

func TestInventoryTitlesDistinct(t *testing.T) {
	session := NewSession()
	session.CreatePost(NewListing{Title: "Lamp", Description: "Warm LED"})
	session.CreatePost(NewListing{Title: "Lamp", Description: "Another lamp"})
	session.CreatePost(NewListing{Title: "Mug", Description: "Ceramic"})

	titles := session.InventoryTitles()
	if len(titles) != 2 {
		t.Fatalf("titles: got %v want 2 entries", titles)
	}
}

func TestSendTradeOfferAttachesCardWhenItemResolves(t *testing.T) {
	pinClock(t, "5:20 PM")
	session := NewSession()
	session.CreatePost(NewListing{Title: "Lamp", Description: "Warm LED", Price: 30})

	if !session.SendTradeOffer("Lamp", "Swap for your camera?") {
		t.Fatal("offer refused")
	}
	chat, _ := session.Chats.Active()
	last := chat.Messages[len(chat.Messages)-1]
	if last.Text != "Trade offer: Lamp. Note: Swap for your camera?" {
		t.Fatalf("offer text: got %q", last.Text)
	}
	if last.Offer == nil || last.Offer.Title != "Lamp" {
		t.Fatalf("offer card: got %+v", last.Offer)
	}
}

func TestSendTradeOfferWithoutCardStillSends(t *testing.T) {
	pinClock(t, "5:21 PM")
	session := NewSession()

	if !session.SendTradeOffer("Mystery Box", "") {
		t.Fatal("offer without matching listing refused")
	}
	chat, _ := session.Chats.Active()
	last := chat.Messages[len(chat.Messages)-1]
	if last.Offer != nil {
		t.Fatalf("unexpected card: %+v", last.Offer)
	}
	if last.Text != "Trade offer: Mystery Box. Note: Interested in trading." {
		t.Fatalf("default note: got %q", last.Text)
	}
}

func TestSendChatMessageWhitespaceNoop(t *testing.T) {
	session := NewSession()
	chat, _ := session.Chats.Active()
	before := len(chat.Messages)
	if session.SendChatMessage("   ") {
		t.Fatal("whitespace message accepted")
	}
	chat, _ = session.Chats.Active()
	if len(chat.Messages) != before {
		t.Fatalf("messages: got %d want %d", len(chat.Messages), before)
	}
}
