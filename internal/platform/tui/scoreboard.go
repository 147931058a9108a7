package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/melodle/internal/registry"
	"github.com/vovakirdan/melodle/internal/storage"
)

const (
	maxScores      = 100 // Rounds loaded per game
	maxSubmissions = 50  // Ledger entries loaded per game
)

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewRounds boardView = iota
	viewLedger
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Game   key.Binding
	Ledger key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Game, k.Ledger, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Game, k.Ledger},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Game: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "other game"),
		),
		Ledger: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "rounds/ledger"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists finished rounds and mirrored ledger submissions
// for one game at a time.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	view       boardView

	store       *storage.Store
	scores      []storage.ScoreEntry
	submissions []storage.SubmissionEntry
	stats       map[string]*storage.GameStats
	pot         int64
	hasPot      bool

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	if store != nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	} else {
		m.refreshTable()
	}
	return m
}

func (m ScoreboardModel) columns() []table.Column {
	// Whatever the fixed columns leave goes to the player address.
	player := max(14, min(44, m.width-52))
	if m.view == viewLedger {
		return []table.Column{
			{Title: "Tx", Width: 10},
			{Title: "Player", Width: player},
			{Title: "Stake", Width: 7},
			{Title: "Match", Width: 6},
			{Title: "Payout", Width: 8},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Result", Width: 6},
		{Title: "Player", Width: player},
		{Title: "Date", Width: 12},
	}
}

// refreshTable rebuilds the table for the current view and size.
func (m *ScoreboardModel) refreshTable() {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
}

func (m ScoreboardModel) rows() []table.Row {
	if m.view == viewLedger {
		rows := make([]table.Row, len(m.submissions))
		for i, e := range m.submissions {
			match := "-"
			if e.Matched {
				match = "yes"
			}
			rows[i] = table.Row{
				shortTxID(e.TransactionID),
				playerName(e.Account),
				fmt.Sprintf("%d", e.Stake),
				match,
				fmt.Sprintf("%d", e.Payout),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		result := "lost"
		if s.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			result,
			playerName(s.Account),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func playerName(account string) string {
	if account == "" {
		return "anonymous"
	}
	return shortAddress(account)
}

func shortTxID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// loadScores reads rounds, ledger entries and the pot for gameID.
// Read errors leave the lists empty; the board is informational.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.submissions, m.hasPot = nil, nil, false

	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}

		ctx := context.Background()
		if subs, err := m.store.RecentSubmissions(ctx, gameID, maxSubmissions); err == nil {
			m.submissions = subs
		}
		if pot, err := m.store.ReadPotBalance(ctx, gameID); err == nil {
			m.pot, m.hasPot = pot, true
		}
	}
	m.refreshTable()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Game):
			if len(m.games) > 1 {
				step := 1
				if s := msg.String(); s == "left" || s == "h" {
					step = len(m.games) - 1
				}
				m.gameCursor = (m.gameCursor + step) % len(m.games)
				m.loadScores(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Ledger):
			if m.view == viewRounds {
				m.view = viewLedger
			} else {
				m.view = viewRounds
			}
			m.refreshTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	heading := "HIGH SCORES"
	if m.view == viewLedger {
		heading = "LEDGER"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(dim.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n")
	if m.hasPot {
		b.WriteString(dim.Render(centerText(fmt.Sprintf("Ledger pot: %d", m.pot), m.width)))
	}
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box.Render(m.tableContent())))
	b.WriteString("\n")

	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs draws every game title with the selected one highlighted.
func (m ScoreboardModel) tabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	idle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)

	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			parts[i] = active.Render(g.Title)
		} else {
			parts[i] = idle.Render(g.Title)
		}
	}
	return strings.Join(parts, " ")
}

// summary describes the selected game's totals.
func (m ScoreboardModel) summary() string {
	if len(m.games) == 0 {
		return ""
	}
	st, ok := m.stats[m.games[m.gameCursor].ID]
	if !ok || st.GamesCount == 0 {
		return "No rounds played"
	}
	return fmt.Sprintf("%d rounds, %d won, average %.0f", st.GamesCount, st.Wins, st.AvgScore)
}

func (m ScoreboardModel) tableContent() string {
	empty := ""
	switch {
	case m.view == viewRounds && len(m.scores) == 0:
		empty = "No scores recorded yet.\nFinish a round to get on the board!"
	case m.view == viewLedger && len(m.submissions) == 0:
		empty = "Nothing mirrored to the ledger yet."
	}
	if empty != "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render(empty)
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
