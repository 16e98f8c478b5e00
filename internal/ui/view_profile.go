package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"tradeloop/internal/types"
)

func (m *Model) renderProfile() string {
	sections := []string{
		m.renderProfileAbout(),
		m.renderProfilePosts(),
		m.renderProfilePlans(),
		m.renderProfileSettings(),
		m.renderProfileSecurity(),
	}

	columnsFit := m.width >= 110
	if columnsFit {
		left := lipgloss.JoinVertical(lipgloss.Left, sections[0], sections[1], sections[4])
		right := lipgloss.JoinVertical(lipgloss.Left, sections[2], sections[3])
		return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) sectionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
}

func (m *Model) sectionTitle(title string) string {
	return lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).Render(title)
}

func (m *Model) button(zoneID, label string) string {
	return m.zoneManager.Mark(zoneID,
		lipgloss.NewStyle().Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).
			Padding(0, 1).Render(label))
}

func (m *Model) toggleLine(zoneID, name string, on bool, key string) string {
	state := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("off")
	if on {
		state = lipgloss.NewStyle().Foreground(m.theme.Brand).Render("on ")
	}
	label := lipgloss.NewStyle().Foreground(m.theme.Text).Width(20).Render(name)
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(" (" + key + ")")
	return m.zoneManager.Mark(zoneID, lipgloss.JoinHorizontal(lipgloss.Top, label, state, hint))
}

func (m *Model) renderProfileAbout() string {
	stats := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		fmt.Sprintf("%d active listings · %d open trades · %d swipes used",
			m.session.ActiveTradesCount(), m.session.Chats.Count(), m.session.SwipesUsed))

	return m.sectionStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		m.sectionTitle("Account"),
		stats,
		"",
		m.renderFields(m.profileFields),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.button("profile-save", "Save (ctrl+s)"),
			"  ",
			m.zoneManager.Mark("sign-out",
				lipgloss.NewStyle().Foreground(m.theme.Danger).Render("Sign out (q)"))),
	))
}

func (m *Model) renderProfilePosts() string {
	posts := m.session.UserPosts()
	lines := []string{m.sectionTitle("My Posts")}

	pausedNote := ""
	if m.session.PostsPaused {
		pausedNote = lipgloss.NewStyle().Foreground(m.theme.Danger).
			Render("Paused: hidden from the marketplace")
	}
	lines = append(lines, m.toggleLine("toggle-paused", "Pause my posts", m.session.PostsPaused, "h"))
	if pausedNote != "" {
		lines = append(lines, pausedNote)
	}

	if len(posts) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Nothing posted yet. ctrl+n to create a post."))
	}
	for i, post := range posts {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(m.theme.Text)
		if i == m.postIndex {
			marker = "› "
			style = style.Foreground(m.theme.Brand).Bold(true)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			style.Render(fmt.Sprintf("%s%s · %s", marker, post.Title, priceLabel(post.Price))),
			"  ",
			m.zoneManager.Mark(fmt.Sprintf("post-del-%d", i),
				lipgloss.NewStyle().Foreground(m.theme.Danger).Render("[delete]")))
		lines = append(lines, row)
	}
	if len(posts) > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("j/k select · x delete (removes its chats too)"))
	}
	return m.sectionStyle().Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderProfilePlans() string {
	current := "Free · 10 swipes per session"
	if m.session.Plan == types.PlanPro {
		current = "Pro · unlimited swipes"
	}

	lines := []string{
		m.sectionTitle("Plans"),
		lipgloss.NewStyle().Foreground(m.theme.Text).Render("Current: " + current),
		"",
	}
	if m.session.Plan != types.PlanPro {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.button("plan-pro", "Go Pro · $17.89/mo (u)")))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		m.button("plan-boost", "Boost · $0.99 / 2 hr (b)")),
		lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Boost floats your posts to the top of the feed."))

	return m.sectionStyle().Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderProfileSettings() string {
	option := func(zoneID, name, value, key string) string {
		label := lipgloss.NewStyle().Foreground(m.theme.Text).Width(20).Render(name)
		val := lipgloss.NewStyle().Foreground(m.theme.Brand).Render(value)
		hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(" (" + key + ")")
		return m.zoneManager.Mark(zoneID, lipgloss.JoinHorizontal(lipgloss.Top, label, val, hint))
	}

	return m.sectionStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		m.sectionTitle("Settings"),
		m.toggleLine("toggle-dark", "Dark mode", m.darkMode, "d"),
		m.toggleLine("toggle-notifications", "Chat notifications", m.settings.ChatNotifications, "n"),
		m.toggleLine("toggle-location", "Location sharing", m.settings.LocationSharing, "l"),
		m.toggleLine("toggle-compact", "Compact cards", m.settings.CompactCards, "c"),
		m.toggleLine("toggle-translate", "Auto-translate", m.settings.AutoTranslate, "a"),
		option("opt-language", "Language", m.settings.Language, "g"),
		option("opt-radius", "Trade radius", m.settings.TradeRadius, "r"),
		option("opt-price", "Price range", m.settings.PriceRange, "p"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Only dark mode survives a restart."),
	))
}

func (m *Model) renderProfileSecurity() string {
	return m.sectionStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		m.sectionTitle("Security"),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.button("reset-password", "Reset Password (w)"),
			"  ",
			m.button("enable-2fa", "Enable 2FA (2)")),
	))
}

func (m *Model) renderPaymentModal() string {
	label := "Go Pro · $17.89/mo"
	blurb := "Unlimited swipes, priority support."
	if m.payPlan == "boost" {
		label = "Boost · $0.99 for 2 hours"
		blurb = "Your posts ride on top of the feed."
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(m.theme.Brand).Bold(true).Render(label),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(blurb),
		"",
		m.renderFields(m.payFields),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.zoneManager.Mark("pay-confirm",
				lipgloss.NewStyle().Foreground(m.theme.ChipFg).Background(m.theme.ChipBg).
					Bold(true).Padding(0, 2).Render("Confirm payment (enter)")),
			"  ",
			m.zoneManager.Mark("pay-cancel",
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Cancel (esc)"))),
	)

	modal := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(m.theme.Brand).
		Padding(1, 3).
		Render(body)
	return m.centerBody(modal)
}
