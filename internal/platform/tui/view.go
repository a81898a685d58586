package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platypor/internal/catalog"
	"github.com/vovakirdan/platypor/internal/pet"
)

const statBarWidth = 26

// Styles for the session view.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

	avatarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)

	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1).
			Width(44)

	statLabelStyle = lipgloss.NewStyle().Width(7)

	moneyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

	itemStyle         = lipgloss.NewStyle().Padding(0, 1)
	selectedItemStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	disabledItemStyle = lipgloss.NewStyle().Padding(0, 1).Faint(true)

	helpStyle = lipgloss.NewStyle().Faint(true)

	deathStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")).
			Foreground(lipgloss.Color("9")).
			Bold(true).
			Padding(1, 3)
)

// statBar renders one stat as a colored progress bar.
func statBar(color string, v float64) string {
	bar := progress.New(progress.WithSolidFill(color), progress.WithoutPercentage())
	bar.Width = statBarWidth
	return bar.ViewAs(v)
}

// View renders the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	p := snap.Player

	var b strings.Builder

	b.WriteString(titleStyle.Render("platypor"))
	b.WriteString("\n\n")

	// Avatar next to the speech bubble.
	avatar := avatarStyle.Render(strings.Join(artFor(snap.Avatar), "\n"))
	bubble := bubbleStyle.Render(m.message)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", bubble))
	b.WriteString("\n\n")

	// Stat bars.
	stats := []struct {
		name  string
		color string
		v     float64
	}{
		{"Stress", "9", p.Stress},
		{"Famine", "208", p.Famine},
		{"Health", "10", p.Health},
		{"Wisdom", "12", p.Wisdom},
		{"Vigor", "14", p.Vigor},
	}
	for _, s := range stats {
		b.WriteString(statLabelStyle.Render(s.name))
		b.WriteString(" ")
		b.WriteString(statBar(s.color, s.v))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Wallet and inventory line. Consumable counts show up once the pet
	// has a purse to keep them in.
	b.WriteString(moneyStyle.Render(fmt.Sprintf("Money: %.2f", p.Money)))
	b.WriteString(fmt.Sprintf("   Level: %d", p.Level))
	if p.OwnsPurse {
		b.WriteString(fmt.Sprintf("   Beers: %d   Cigarettes: %d", p.Beers, p.Cigarettes))
	}
	if p.CanRead {
		b.WriteString("   [literate]")
	}
	b.WriteString("\n")
	b.WriteString(m.equipmentLine(p))
	b.WriteString("\n\n")

	// Action and shop strips.
	b.WriteString(m.renderActions(p))
	b.WriteString("\n")
	b.WriteString(m.renderShop())
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	content := b.String()

	if snap.State == pet.Dead {
		overlay := deathStyle.Render("GAME OVER\n\n" + m.message + "\n\nPress q to leave")
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	return content
}

// equipmentLine shows gear state. Toggles appear once a purse is owned,
// matching the shop gating for gear.
func (m Model) equipmentLine(p pet.Player) string {
	if !p.OwnsPurse {
		return ""
	}

	slot := func(name string, owned, equipped bool) string {
		switch {
		case !owned:
			return disabledItemStyle.Render(name + ": —")
		case equipped:
			return itemStyle.Render(name + ": equipped")
		default:
			return itemStyle.Render(name + ": stowed")
		}
	}

	return slot("Sword", p.OwnsSword, p.SwordEquipped) + " " + slot("Shield", p.OwnsShield, p.ShieldEquipped)
}

// renderActions renders the actions strip with availability dimming.
func (m Model) renderActions(p pet.Player) string {
	ready := p.Vigor >= 1

	items := make([]string, 0, len(m.cat.Actions))
	for i, a := range m.cat.Actions {
		enabled := ready && m.actionEnabled(a, p)
		label := a.Text

		style := itemStyle
		switch {
		case m.section == sectionActions && i == m.actionCursor:
			style = selectedItemStyle
		case !enabled:
			style = disabledItemStyle
		}
		items = append(items, style.Render(label))
	}

	return sectionTitleStyle.Render("ACTIONS") + "\n" + strings.Join(items, " ")
}

// actionEnabled applies the per-action inventory gates the engine will also
// enforce; the strip just forecasts them.
func (m Model) actionEnabled(a catalog.ActionDef, p pet.Player) bool {
	kind, ok := pet.ParseActionID(a.ID)
	if !ok {
		return false
	}
	switch kind {
	case pet.ActionSmoke:
		return p.OwnsPurse && p.Cigarettes > 0
	case pet.ActionDrink:
		return p.OwnsPurse && p.Beers > 0
	}
	return true
}

// renderShop renders the shop strip; entries the engine would refuse are
// dimmed.
func (m Model) renderShop() string {
	items := make([]string, 0, len(m.cat.Products))
	for i, prod := range m.cat.Products {
		label := fmt.Sprintf("%s $%.0f", prod.Text, prod.Price)

		style := itemStyle
		switch {
		case m.section == sectionShop && i == m.shopCursor:
			style = selectedItemStyle
		case !m.engine.CanPurchase(prod.ID):
			style = disabledItemStyle
		}
		items = append(items, style.Render(label))
	}

	return sectionTitleStyle.Render("SHOP") + "\n" + strings.Join(items, " ")
}
