package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/melodle/internal/core"
	"github.com/vovakirdan/melodle/internal/games/melody"
)

// melodyModes are the choices offered before a melody game starts.
var melodyModes = []struct {
	mode  melody.Mode
	title string
}{
	{melody.ModeDaily, "Daily melody"},
	{melody.ModeRandom, "Random melodies"},
}

// MelodyModeModel lets users choose how melodies are picked.
type MelodyModeModel struct {
	cursor    int
	width     int
	height    int
	today     string
	keyMapper *KeyMapper
	selection melody.Mode
	choosing  bool
	quitting  bool
	back      bool
}

// NewMelodyModeModel creates a new melody mode selection model.
func NewMelodyModeModel(width, height int) MelodyModeModel {
	return MelodyModeModel{
		width:     width,
		height:    height,
		today:     melody.DateKey(time.Now()),
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MelodyModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MelodyModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MelodyModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(melodyModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = melodyModes[m.cursor].mode
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m MelodyModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M E L O D L E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, opt := range melodyModes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		title := opt.title
		if opt.mode == melody.ModeDaily {
			title = fmt.Sprintf("%s (%s)", title, m.today)
		}
		b.WriteString(centerText(cursor+title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen mode, or nil if still choosing.
func (m MelodyModeModel) Selected() *melody.Mode {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MelodyModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MelodyModeModel) WantsBack() bool {
	return m.back
}

// RunMelodyModeSelector runs the melody mode selection and returns the selection.
// A nil mode means the user backed out.
func RunMelodyModeSelector(cfg core.RuntimeConfig) (*melody.Mode, core.RuntimeConfig, error) {
	model := NewMelodyModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(MelodyModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
