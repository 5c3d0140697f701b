package preview

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
	config "github.com/Guerrilla-Interactive/ng-skeleton/internal"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func stubExport(t *testing.T) (copied, written *string, path *string) {
	t.Helper()
	var c, w, p string
	prevCopy, prevWrite := copyText, writeFile
	copyText = func(text string) error { c = text; return nil }
	writeFile = func(target, text string) error { p, w = target, text; return nil }
	t.Cleanup(func() { copyText, writeFile = prevCopy, prevWrite })
	return &c, &w, &p
}

func previewModel() app.Model {
	m := app.NewModel(config.Default(), "test")
	m.CurrentScreen = app.ScreenPreview
	m.Preview.SetContent(m.Document())
	return m
}

func TestCopy(t *testing.T) {
	copied, _, _ := stubExport(t)
	m := previewModel()

	m, cmd := UpdateScreenPreview(m, runes("y"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(app.ExportDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "clipboard", msg.Target)
	assert.Equal(t, m.Document(), *copied)

	m = HandleExportDone(m, msg)
	assert.Equal(t, "copied to clipboard", m.Status)
}

func TestWrite(t *testing.T) {
	_, written, path := stubExport(t)
	m := previewModel()
	m.Bootstrap = true

	_, cmd := UpdateScreenPreview(m, runes("w"))
	require.NotNil(t, cmd)
	msg := cmd().(app.ExportDoneMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "index.html", *path)
	assert.Contains(t, *written, "bootstrap@5.3.3")

	m = HandleExportDone(m, msg)
	assert.Equal(t, "wrote index.html", m.Status)
}

func TestExportFailureIsShown(t *testing.T) {
	stubExport(t)
	copyText = func(string) error { return errors.New("no clipboard") }

	m := previewModel()
	_, cmd := UpdateScreenPreview(m, runes("y"))
	m = HandleExportDone(m, cmd().(app.ExportDoneMsg))
	assert.True(t, m.StatusIsError)
	assert.Equal(t, "no clipboard", m.Status)
}

func TestBackAndResize(t *testing.T) {
	m := previewModel()
	m.TerminalWidth, m.TerminalHeight = 120, 40
	m = Resize(m)
	assert.Equal(t, 114, m.Preview.Width)
	assert.Equal(t, 32, m.Preview.Height)
	assert.Contains(t, ViewScreenPreview(m), "Generated document")

	m, _ = UpdateScreenPreview(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, app.ScreenBuilder, m.CurrentScreen)
}
