package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenOutput
)

const quitItem = "quit"

type menuItem struct {
	name  string
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	running string
	toast   string

	workspaceFound bool
	workspaceRoot  string

	outputName string
	output     string
	err        error

	width  int
	height int
}

// Run starts the demo browser in the alternate screen and blocks until quit.
func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	var items []list.Item
	if deps.Demos != nil {
		for _, d := range deps.Demos.List() {
			items = append(items, menuItem{
				name:  d.Name,
				title: fmt.Sprintf("%s (%s)", d.Principle, d.Name),
				desc:  d.Summary,
			})
		}
	}
	items = append(items, menuItem{name: quitItem, title: "Quit", desc: "Exit solid"})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Principles"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		if root, findErr := deps.WorkspaceLocator.FindRoot(wd); findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(max(msg.Width-4, 0), max(msg.Height-10, 0))
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case demoDoneMsg:
		if msg.name != m.running {
			return m, nil
		}
		m.running = ""
		m.scr = screenOutput
		m.outputName = msg.name
		m.output = msg.output
		m.err = msg.err
		m.toast = userMessage(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m = m.home()
			return m, nil

		case "esc", "b":
			if m.scr != screenHome {
				m = m.home()
				return m, nil
			}

		case "r":
			if m.scr == screenHome {
				return m, cmdRefreshWorkspace(m.deps)
			}
			if m.running == "" && m.outputName != "" {
				m.running = m.outputName
				return m, cmdRunDemo(m.deps, m.outputName)
			}

		case "enter":
			if m.scr != screenHome || m.running != "" {
				return m, nil
			}
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			if it.name == quitItem {
				return m, tea.Quit
			}
			m.running = it.name
			m.toast = ""
			return m, cmdRunDemo(m.deps, it.name)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

// home returns to the menu and drops any pending rerun.
func (m model) home() model {
	m.scr = screenHome
	m.running = ""
	m.outputName = ""
	m.output = ""
	m.err = nil
	m.toast = ""
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("solid") + "\n" +
		m.theme.Subtitle.Render("Five object-design principles, one small program each") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render("Workspace: " + m.workspaceRoot)
	} else {
		banner = m.theme.Help.Render("No solid.yaml found; using defaults.")
	}
	if m.deps.LogPath != "" {
		banner += "\n" + m.theme.Help.Render("Logs: "+m.deps.LogPath)
	}

	status := ""
	switch {
	case m.running != "":
		status = "\n" + m.theme.Help.Render("Running "+m.running+"…")
	case m.toast != "":
		status = "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • r refresh • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + status)

	case screenOutput:
		body := fitOutput(m.output, m.width-10, m.height-14)
		if body == "" {
			body = "(no output)"
		}
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.outputName) + "\n\n" +
				m.theme.Output.Render(body) + "\n\n" +
				m.theme.Help.Render("r rerun • esc/b back • q home"),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card + status)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
