package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longContent(lines int) string {
	parts := make([]string, lines)
	for i := range parts {
		parts[i] = fmt.Sprintf("line %03d", i)
	}
	return strings.Join(parts, "\n")
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func sized(t *testing.T, m PreviewModel, width, height int) PreviewModel {
	t.Helper()
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	require.Nil(t, cmd)
	pm, ok := updated.(PreviewModel)
	require.True(t, ok, "expected PreviewModel, got %T", updated)
	return pm
}

func press(t *testing.T, m PreviewModel, k string) PreviewModel {
	t.Helper()
	updated, _ := m.Update(keyMsg(k))
	pm, ok := updated.(PreviewModel)
	require.True(t, ok, "expected PreviewModel, got %T", updated)
	return pm
}

func TestNewPreviewModel(t *testing.T) {
	m := NewPreviewModel("Miles", "hello", 6)

	assert.Equal(t, "Miles", m.title)
	assert.Equal(t, "hello", m.content)
	assert.Equal(t, 6, m.sections)
	assert.False(t, m.ready)
	assert.Nil(t, m.Init())
	assert.Equal(t, "Loading...", m.View())
}

func TestPreviewModel_WindowSize(t *testing.T) {
	m := sized(t, NewPreviewModel("Miles", longContent(100), 6), 100, 30)

	assert.True(t, m.ready)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
	assert.Greater(t, m.viewport.Height, 2)
	assert.True(t, m.AtTop())
	assert.False(t, m.AtBottom())
}

func TestPreviewModel_View(t *testing.T) {
	m := sized(t, NewPreviewModel("Miles", longContent(100), 7), 100, 30)

	view := m.View()
	assert.Contains(t, view, "Miles")
	assert.Contains(t, view, "sections: 7")
	assert.Contains(t, view, "lines: 100")
	assert.Contains(t, view, "System Prompt")
	assert.Contains(t, view, "line 000")
	assert.NotContains(t, view, "line 099")
	assert.Contains(t, view, "q quit")
	assert.Contains(t, view, "↑↓/jk scroll")
	assert.Contains(t, view, "pgup/pgdn page")
	assert.Contains(t, view, "g/G top/bottom")
}

func TestPreviewModel_Scrolling(t *testing.T) {
	m := sized(t, NewPreviewModel("Miles", longContent(100), 6), 100, 30)

	m = press(t, m, "j")
	assert.Equal(t, 1, m.viewport.YOffset)

	m = press(t, m, "k")
	assert.Equal(t, 0, m.viewport.YOffset)

	m = press(t, m, "G")
	assert.True(t, m.AtBottom())
	assert.Contains(t, m.View(), "line 099")

	m = press(t, m, "g")
	assert.True(t, m.AtTop())
}

func TestPreviewModel_ShortContentFits(t *testing.T) {
	m := sized(t, NewPreviewModel("Miles", "one\ntwo", 1), 80, 40)

	m = press(t, m, "j")
	assert.Equal(t, 0, m.viewport.YOffset)
	assert.True(t, m.AtBottom())
}

func TestPreviewModel_Quit(t *testing.T) {
	m := sized(t, NewPreviewModel("Miles", "content", 1), 80, 24)

	for _, msg := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "expected quit command for %s", msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestPreviewModel_TinyWindow(t *testing.T) {
	m := sized(t, NewPreviewModel("Miles", longContent(10), 1), 5, 2)

	assert.Equal(t, 10, m.viewport.Width)
	assert.Equal(t, 3, m.viewport.Height)
	assert.NotEmpty(t, m.View())
}
