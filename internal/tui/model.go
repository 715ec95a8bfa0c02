package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"emberday/internal/catalog"
	"emberday/internal/constants"
	"emberday/internal/models"
	progressengine "emberday/internal/progress"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateConfirmReset
)

type habitItem struct {
	habit catalog.Habit
	done  bool
}

func (i habitItem) Title() string {
	marker := "○"
	if i.done {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s (%d pts)", marker, i.habit.Name, i.habit.Points)
}

func (i habitItem) Description() string {
	if i.done {
		return "completed today"
	}
	return fmt.Sprintf("%s · %s", i.habit.Category, i.habit.Duration)
}

func (i habitItem) FilterValue() string { return i.habit.Name }

// popup carries the transient celebration/reminder message shown above the help line.
type popup struct {
	Icon    string
	Title   string
	Message string
}

type Model struct {
	engine   *progressengine.Engine
	state    models.ProgressState
	session  SessionState
	keys     KeyMap
	help     help.Model
	list     list.Model
	bar      progress.Model
	form     *huh.Form
	resetOK  bool
	popup    *popup
	width    int
	height   int
	quitting bool
}

func NewModel(engine *progressengine.Engine) (Model, error) {
	today := time.Now().Format(constants.DateFormat)
	state, err := engine.Load(today)
	if err != nil {
		return Model{}, err
	}

	habits := engine.Catalog().Habits()
	items := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		items = append(items, habitItem{habit: h, done: state.Completion[h.ID]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Today's Habits"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return Model{
		engine: engine,
		state:  state,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		list:   l,
		bar:    progress.New(progress.WithDefaultGradient()),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshItems rebuilds the list items from the current completion state.
func (m *Model) refreshItems() {
	items := make([]list.Item, 0, m.engine.Catalog().Len())
	for _, h := range m.engine.Catalog().Habits() {
		items = append(items, habitItem{habit: h, done: m.state.Completion[h.ID]})
	}
	m.list.SetItems(items)
}

func (m *Model) save() error {
	today := time.Now().Format(constants.DateFormat)
	return m.engine.Save(m.state, today)
}

func newResetForm(confirmed *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Reset today?").
			Description("This clears all completed habits but keeps your total points and streak.").
			Value(confirmed),
	))
}
