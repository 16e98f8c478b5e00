package ui

import (
	"database/sql"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"tradeloop/internal/core"
	"tradeloop/internal/types"
)

// Options configure the app UI.
type Options struct {
	DB       *sql.DB
	Logger   *zap.Logger
	Session  *core.Session
	Accounts *core.Accounts
	DarkMode bool
}

// Run starts the UI and blocks until quit.
func Run(opts Options) error {
	model := NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

type page int

const (
	pageAuth page = iota
	pageMarketplace
	pageSwipe
	pageOwnerProduct
	pageProfile
	pageCreatePost
)

// authTab selects which auth form is showing.
type authTab int

const (
	tabSignIn authTab = iota
	tabCreate
)

// marketFocus selects which marketplace input owns the keyboard.
type marketFocus int

const (
	focusSearch marketFocus = iota
	focusChat
)

// Model implements the app UI. All marketplace state lives in the core
// session; the model holds only presentation state.
type Model struct {
	db       *sql.DB
	logger   *zap.Logger
	session  *core.Session
	accounts *core.Accounts
	deck     *core.SwipeDeck

	page     page
	width    int
	height   int
	status   string
	theme    Theme
	darkMode bool

	zoneManager *zone.Manager

	// Auth page
	authTab      authTab
	signInFields []field
	createFields []field
	authIndex    int

	// Marketplace page
	searchInput   textinput.Model
	categoryIndex int
	marketFocus   marketFocus
	chatInput     textinput.Model
	chatViewport  viewport.Model
	offerOpen     bool
	offerIndex    int
	offerNote     textinput.Model

	// Swipe page
	drag  dragTracker
	wheel wheelTracker

	// Owner-product page, fed by the accept snapshot.
	ownerCard  *types.OfferCard
	ownerWants []string

	// Profile page
	profileFields []field
	profileIndex  int
	settings      settings
	postIndex     int
	payOpen       bool
	payPlan       string
	payFields     []field
	payIndex      int

	// Create-post page
	postFields []field
	postField  int
}

// NewModel creates the app model on the auth page.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search items, categories, traders"
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 80

	chatInput := textinput.New()
	chatInput.Placeholder = "Message"
	chatInput.Prompt = "> "
	chatInput.CharLimit = 400

	offerNote := textinput.New()
	offerNote.Placeholder = "Interested in trading."
	offerNote.Prompt = ""
	offerNote.CharLimit = 200

	m := &Model{
		db:       opts.DB,
		logger:   logger,
		session:  opts.Session,
		accounts: opts.Accounts,
		deck:     core.NewSwipeDeck(opts.Session),

		page:     pageAuth,
		darkMode: opts.DarkMode,
		theme:    themeFor(opts.DarkMode),

		zoneManager: zone.New(),

		signInFields: []field{
			newField("Email", "you@example.com"),
			newSecretField("Password", "password"),
		},
		createFields: []field{
			newField("Name", "Full name"),
			newField("Email", "you@example.com"),
			newField("Location", "City, State"),
			newSecretField("Password", "at least 6 characters"),
			newSecretField("Confirm password", "repeat password"),
		},

		searchInput:  searchInput,
		chatInput:    chatInput,
		chatViewport: viewport.New(0, 0),
		offerNote:    offerNote,

		profileFields: []field{
			newField("Name", "Display name"),
			newField("Email", "you@example.com"),
			newField("Location", "City, State"),
		},
		profileIndex: -1,
		settings:     defaultSettings(),
		payFields: []field{
			newField("Cardholder", "Name on card"),
			newField("Card number", "4242 4242 4242 4242"),
			newField("Expiry", "MM/YY"),
			newSecretField("CVV", "123"),
			newField("ZIP", "94103"),
		},

		postFields: []field{
			newField("Title", "What are you trading?"),
			newField("Description", "Condition details, accessories, quirks"),
			newField("Category", "Electronics, Music, Kitchen..."),
			newField("Condition", "Like New / Excellent / Great / Good / Used"),
			newField("Location", "City"),
			newField("Price", "Estimated value in dollars"),
			newField("Photo", "Image reference (optional)"),
			newField("Wants", "Comma-separated wishlist (optional)"),
		},
	}

	focusField(m.signInFields, 0)
	m.status = "Sign in with demo@tradeloop.com / demo1234"
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// currentCategory resolves the selected category chip.
func (m *Model) currentCategory() string {
	categories := m.session.Listings.Categories()
	if m.categoryIndex >= len(categories) {
		m.categoryIndex = 0
	}
	return categories[m.categoryIndex]
}

// syncDeckFilter keeps the swipe feed aligned with the marketplace
// filter.
func (m *Model) syncDeckFilter() {
	m.deck.SetFilter(m.currentCategory(), m.searchInput.Value())
}
