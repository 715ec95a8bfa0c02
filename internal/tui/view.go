package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	level := m.engine.CurrentLevel(m.state.TotalPoints)
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", level.Badge, level.Title)))
	b.WriteString("\n")

	stats := fmt.Sprintf("%s  %s  %s",
		statStyle.Render(fmt.Sprintf("⭐ %d pts", m.state.TotalPoints)),
		statStyle.Render(fmt.Sprintf("🔥 %d day streak", m.state.CurrentStreak)),
		statStyle.Render(fmt.Sprintf("✅ %d/%d today", m.state.CompletedCount(), m.engine.Catalog().Len())),
	)
	b.WriteString(stats)
	b.WriteString("\n")

	rate := 0.0
	if total := m.engine.Catalog().Len(); total > 0 {
		rate = float64(m.state.CompletedCount()) / float64(total)
	}
	b.WriteString(m.bar.ViewAs(rate))
	b.WriteString("\n\n")

	if m.session == StateConfirmReset {
		b.WriteString(m.form.View())
		return docStyle.Render(b.String())
	}

	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.popup != nil {
		b.WriteString(popupStyle.Render(fmt.Sprintf("%s %s\n%s", m.popup.Icon, m.popup.Title, m.popup.Message)))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}
