package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"emberday/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		frameW, frameH := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH-6)
		return m, nil
	}

	if m.session == StateConfirmReset {
		return m.updateConfirmReset(msg)
	}
	return m.updateHabits(msg)
}

func (m Model) updateHabits(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Dismiss):
			m.popup = nil
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			return m.toggleSelected()

		case key.Matches(msg, m.keys.Tip):
			return m.tipSelected()

		case key.Matches(msg, m.keys.Complete):
			return m.completeDay()

		case key.Matches(msg, m.keys.Reset):
			m.resetOK = false
			m.form = newResetForm(&m.resetOK)
			m.session = StateConfirmReset
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.session = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.resetOK {
			m.engine.ResetDay(&m.state)
			if err := m.save(); err != nil {
				m.popup = &popup{Icon: "⚠", Title: "Save Failed", Message: err.Error()}
			} else {
				m.popup = nil
			}
			m.refreshItems()
		}
		m.session = StateHabits
	case huh.StateAborted:
		m.session = StateHabits
	}
	return m, cmd
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(habitItem)
	if !ok {
		return m, nil
	}

	previousPoints := m.state.TotalPoints
	result, err := m.engine.ToggleHabit(&m.state, item.habit.ID, time.Now())
	if err != nil {
		m.popup = &popup{Icon: "⚠", Title: "Error", Message: err.Error()}
		return m, nil
	}
	if err := m.save(); err != nil {
		m.popup = &popup{Icon: "⚠", Title: "Save Failed", Message: err.Error()}
		return m, nil
	}

	m.popup = &popup{Icon: result.Icon, Title: result.Title, Message: result.Message}
	if result.Completed {
		if level := m.engine.EvaluateAchievements(previousPoints, m.state.TotalPoints); level != nil {
			m.popup = &popup{
				Icon:    level.Badge,
				Title:   fmt.Sprintf("Level Up! %s", level.Level),
				Message: fmt.Sprintf("🎉 You've reached %s! You now have %d points!", level.Title, m.state.TotalPoints),
			}
		}
	}
	m.refreshItems()
	return m, nil
}

func (m Model) tipSelected() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(habitItem)
	if !ok {
		return m, nil
	}

	tip, err := m.engine.HabitTip(item.habit.ID)
	if err != nil {
		return m, nil
	}
	m.popup = &popup{Icon: "💡", Title: fmt.Sprintf("Tip for %s", item.habit.Name), Message: tip}
	return m, nil
}

func (m Model) completeDay() (tea.Model, tea.Cmd) {
	today := time.Now().Format(constants.DateFormat)
	result := m.engine.CompleteDay(&m.state, today)
	if err := m.save(); err != nil {
		m.popup = &popup{Icon: "⚠", Title: "Save Failed", Message: err.Error()}
		return m, nil
	}

	percent := int(math.Round(result.CompletionRate * 100))
	if result.Qualified {
		m.popup = &popup{
			Icon:  "🏆",
			Title: "Day Completed!",
			Message: fmt.Sprintf("Incredible! You completed %d/%d habits (%d%%). Your streak is now %d days! Bonus: +%d points!",
				result.CompletedCount, result.TotalCount, percent, m.state.CurrentStreak, result.BonusAwarded),
		}
	} else {
		m.popup = &popup{
			Icon:  "💪",
			Title: "Keep Going!",
			Message: fmt.Sprintf("You've completed %d/%d habits (%d%%). Try to get at least 70%% completion to maintain your streak!",
				result.CompletedCount, result.TotalCount, percent),
		}
	}
	return m, nil
}
