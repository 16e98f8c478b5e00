package ui

// settings are the session-local profile toggles. None of these
// persist; dark mode is handled separately because it is the one flag
// written to the preferences database.
type settings struct {
	ChatNotifications bool
	LocationSharing   bool
	CompactCards      bool
	AutoTranslate     bool
	Language          string
	TradeRadius       string
	PriceRange        string
}

func defaultSettings() settings {
	return settings{
		ChatNotifications: true,
		LocationSharing:   true,
		Language:          "English",
		TradeRadius:       "25 miles",
		PriceRange:        "$0 - $500",
	}
}

var languages = []string{"English", "Spanish", "French", "German", "Japanese"}

var tradeRadii = []string{"5 miles", "10 miles", "25 miles", "50 miles", "Anywhere"}

var priceRanges = []string{"$0 - $100", "$0 - $500", "$0 - $1000", "Any price"}

func nextOption(options []string, current string) string {
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
