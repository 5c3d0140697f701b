package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/export"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
	config "github.com/Guerrilla-Interactive/ng-skeleton/internal"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenBuilder Screen = iota
	ScreenKindPicker
	ScreenPrompt
	ScreenPreview
	ScreenSettings
)

// PromptPurpose says what the prompt screen does with its answers.
type PromptPurpose int

const (
	PurposeAdd PromptPurpose = iota
	PurposeEdit
)

// PromptField is the field the prompt is currently asking for.
type PromptField int

const (
	FieldAnnotation PromptField = iota
	FieldClass
)

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen  Screen
	Version        string
	TerminalWidth  int
	TerminalHeight int

	Session   *outline.Session
	Settings  config.Config
	Bootstrap bool

	// One-line feedback under the panels.
	Status        string
	StatusIsError bool

	// Kind picker.
	KindIndex        int
	KindPager        paginator.Model
	PendingPlacement outline.Placement

	// Annotation/class prompt.
	PromptPurpose     PromptPurpose
	PromptField       PromptField
	PendingKind       outline.Kind
	PendingAnnotation string
	Input             textinput.Model

	Preview       viewport.Model
	SettingsIndex int

	Keys KeyMap
	Help help.Model
}

// NewModel builds the initial model from the user's settings.
func NewModel(cfg config.Config, version string) Model {
	input := textinput.New()
	input.CharLimit = 120
	input.Width = 40

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = 6
	pager.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3600")).Render("•")
	pager.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")
	pager.SetTotalPages(len(outline.AddableKinds))

	h := help.New()
	h.ShortSeparator = "  •  "

	return Model{
		CurrentScreen:  ScreenBuilder,
		Version:        version,
		TerminalWidth:  80,
		TerminalHeight: 24,
		Session:        outline.NewSession(cfg.Mode()),
		Settings:       cfg,
		Bootstrap:      cfg.Bootstrap,
		Input:          input,
		KindPager:      pager,
		Preview:        viewport.New(76, 16),
		Keys:           DefaultKeyMap(),
		Help:           h,
	}
}

// Document renders the session inside the document shell for the current
// mode and bootstrap toggle.
func (m Model) Document() string {
	return export.Document(m.Session, export.Options{
		Mode:      m.Session.Mode(),
		Bootstrap: m.Bootstrap,
	})
}

// SetStatus shows an informational message.
func (m *Model) SetStatus(msg string) {
	m.Status = msg
	m.StatusIsError = false
}

// SetError shows an error message.
func (m *Model) SetError(msg string) {
	m.Status = msg
	m.StatusIsError = true
}

// Shared styles.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2).Margin(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff3600"))
	BadgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("62")).Padding(0, 1)
	PanelStyle     = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
)
