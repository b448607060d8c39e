package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PreviewModel is a read-only pager over a composed prompt.
type PreviewModel struct {
	title    string
	content  string
	sections int
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewPreviewModel creates a pager for content. sections is the number of
// sections that made it into the prompt and is shown in the header.
func NewPreviewModel(title, content string, sections int) PreviewModel {
	return PreviewModel{
		title:    title,
		content:  content,
		sections: sections,
		keys:     DefaultKeyMap(),
		help:     newHelp(),
		viewport: viewport.New(80, 10),
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.viewport.LineUp(1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.LineDown(1)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.ViewUp()
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.ViewDown()
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setSize fits the viewport between the header and the help line and
// re-wraps the content to the new width.
func (m *PreviewModel) setSize(width, height int) {
	m.width = width
	m.height = height

	frameH, frameV := panelStyle.GetFrameSize()
	vpWidth := width - frameH
	if vpWidth < 10 {
		vpWidth = 10
	}

	headerHeight := lipgloss.Height(m.headerView())
	// title line inside the panel + help line below it
	vpHeight := height - headerHeight - frameV - 2
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.help.Width = width
	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight
	m.viewport.SetContent(lipgloss.NewStyle().Width(vpWidth).Render(m.content))
	m.ready = true
}

func (m PreviewModel) headerView() string {
	lines := strings.Count(m.content, "\n") + 1
	if m.content == "" {
		lines = 0
	}

	fields := []string{headerValueStyle.Render(m.title)}
	for _, f := range []struct {
		label string
		value int
	}{
		{"sections:", m.sections},
		{"lines:", lines},
		{"chars:", len([]rune(m.content))},
	} {
		fields = append(fields, headerLabelStyle.Render(f.label)+" "+headerValueStyle.Render(fmt.Sprintf("%d", f.value)))
	}

	return headerStyle.Render(strings.Join(fields, "  "))
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := panelTitleStyle.Render("System Prompt")
	indicator := scrollIndicatorStyle.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100))
	spacing := m.viewport.Width - lipgloss.Width(title) - lipgloss.Width(indicator)
	if spacing < 1 {
		spacing = 1
	}
	titleLine := title + strings.Repeat(" ", spacing) + indicator

	panel := panelStyle.Render(titleLine + "\n" + m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		panel,
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

// AtTop returns whether the viewport is scrolled to the top.
func (m PreviewModel) AtTop() bool {
	return m.viewport.AtTop()
}

// AtBottom returns whether the viewport is scrolled to the bottom.
func (m PreviewModel) AtBottom() bool {
	return m.viewport.AtBottom()
}

// RunPreview opens the pager in the alternate screen and blocks until the
// user quits.
func RunPreview(title, content string, sections int) error {
	p := tea.NewProgram(NewPreviewModel(title, content, sections), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
