package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algoselect/internal/router"
	"github.com/abhisek/algoselect/internal/screen"
	"github.com/abhisek/algoselect/internal/screens/rules"
	"github.com/abhisek/algoselect/internal/ui/components"
	"github.com/abhisek/algoselect/internal/ui/theme"
)

const intro = `Answer a few questions about your problem and your data.
First we check whether ML is needed at all and which paradigm fits.
Then we ask about your goals and data, and suggest where to start.`

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. start builds the questionnaire screen for a
// fresh session.
func New(start func() screen.Screen) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Start questionnaire", Action: func() tea.Cmd {
			s := start()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}},
		{Label: "Decision rules", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: rules.New()} }
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw),
		lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(intro),
		lipgloss.NewStyle().Width(cw).Render(h.menu.View()),
	}
	content := strings.Join(sections, "\n\n")

	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// contentWidth returns the inner width shared by all sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("A L G O S E L E C T")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title)
}

func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
