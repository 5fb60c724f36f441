package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scar/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	diagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list       list.Model
	summary    report.Summary
	lastUpdate time.Time
}

type updateMsg struct {
	summary  report.Summary
	rankings []report.Ranking
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.summary = msg.summary
		m.lastUpdate = time.Now()

		items := []list.Item{}
		for _, r := range msg.rankings {
			for i, e := range r.Entries {
				items = append(items, item{
					title: fmt.Sprintf("[%s] #%d  score %d", r.Mode, i+1, e.Score),
					desc:  e.Path,
				})
			}
		}
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Last run: %v | %d files | %d edges",
		m.lastUpdate.Format("15:04:05"), m.summary.FileCount, m.summary.EdgeCount))

	var health string
	if m.summary.MultiFileCycles == 0 && m.summary.UnresolvedLocal == 0 {
		health = successStyle.Render("✅ No cycles, all local includes resolved")
	} else {
		health = fmt.Sprintf("⚠️  %s | %s",
			cycleStyle.Render(fmt.Sprintf("%d Cycles", m.summary.MultiFileCycles)),
			diagStyle.Render(fmt.Sprintf("%d Unresolved", m.summary.UnresolvedLocal)))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("Include Dependency Rankings"), status, health)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel() model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Ranked Files"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		lastUpdate: time.Now(),
	}
}

func (a *App) RunUI() error {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	a.teaProgram = p

	// Replay the results of the run that happened before the UI started.
	go func() {
		p.Send(updateMsg{summary: a.lastSummary, rankings: a.lastRankings})
	}()

	_, err := p.Run()
	a.teaProgram = nil
	return err
}
