package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evalonso/mealrota/internal/cli/formatter"
	"github.com/evalonso/mealrota/internal/domain"
)

type slotStatus int

const (
	slotPending slotStatus = iota
	slotAccepted
	slotSkipped
)

// reviewSlot is one (day, meal) cell of a suggested plan under review.
type reviewSlot struct {
	date       string
	weekday    string
	meal       domain.MealKey
	suggestion domain.MealSuggestion
	status     slotStatus
}

// reviewModel walks the user through a suggested plan slot by slot,
// recording accepted suggestions as selections.
type reviewModel struct {
	slots  []reviewSlot
	cursor int
	// record persists one accepted slot. Injected so the model stays
	// free of service and context plumbing.
	record   func(date string, meal domain.MealKey, dishID string) error
	err      error
	accepted int
	done     bool
}

func newReviewModel(plan []domain.DayPlan, record func(date string, meal domain.MealKey, dishID string) error) *reviewModel {
	m := &reviewModel{record: record}
	for _, day := range plan {
		for _, meal := range day.MealOrder {
			m.slots = append(m.slots, reviewSlot{
				date:       day.Date,
				weekday:    day.Weekday,
				meal:       meal,
				suggestion: day.Meals[meal],
			})
		}
	}
	return m
}

func (m *reviewModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a/enter", "accept")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "finish")),
	}
}

func (m *reviewModel) Init() tea.Cmd { return nil }

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.slots)-1 {
			m.cursor++
		}
	case "a", "enter":
		m.acceptCurrent()
		m.advance()
	case "s":
		if len(m.slots) > 0 {
			m.slots[m.cursor].status = slotSkipped
		}
		m.advance()
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *reviewModel) acceptCurrent() {
	if len(m.slots) == 0 {
		return
	}
	slot := &m.slots[m.cursor]
	if slot.suggestion.DishID == nil {
		return
	}
	if err := m.record(slot.date, slot.meal, *slot.suggestion.DishID); err != nil {
		m.err = err
		return
	}
	m.err = nil
	if slot.status != slotAccepted {
		m.accepted++
	}
	slot.status = slotAccepted
}

func (m *reviewModel) advance() {
	if m.cursor < len(m.slots)-1 {
		m.cursor++
	}
}

func (m *reviewModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Review plan"))
	b.WriteString("\n\n")

	lastDate := ""
	for i, slot := range m.slots {
		if slot.date != lastDate {
			if lastDate != "" {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", formatter.Bold(slot.weekday), formatter.Dim(slot.date)))
			lastDate = slot.date
		}

		marker := " "
		switch slot.status {
		case slotAccepted:
			marker = formatter.StyleGreen.Render("✓")
		case slotSkipped:
			marker = formatter.Dim("·")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}

		name := formatter.StyleRed.Render("—")
		if slot.suggestion.DishName != nil {
			name = *slot.suggestion.DishName
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, marker, formatter.MealBadge(slot.meal), name))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var help []string
	for _, binding := range m.shortHelp() {
		h := binding.Help()
		help = append(help, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	b.WriteString(formatter.Dim(strings.Join(help, "  ")))
	b.WriteString("\n")
	return b.String()
}
