// Package preview shows the home page in a terminal. Scrolling and the menu
// key drive the same navbar state the web page uses.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sebicas/site/internal/navbar"
	"github.com/sebicas/site/pkg/content"
)

// lineHeight converts viewport lines into the pixel offsets the navbar
// threshold is defined in.
const lineHeight = 20

const navHeight = 1

type Model struct {
	viewport viewport.Model
	page     page
	year     int
	ready    bool

	state  *navbar.State
	scroll *navbar.Events
}

func New(year int) Model {
	m := Model{
		year:   year,
		state:  navbar.New(),
		scroll: navbar.NewEvents(),
	}
	m.state.Mount(m.scroll)
	return m
}

func Run(year int) error {
	m := New(year)
	defer m.state.Unmount()

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.state.Toggle()
			return m, nil
		default:
			if n, err := strconv.Atoi(key); err == nil && m.state.MenuOpen() {
				m.selectItem(n - 1)
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		headerHeight := m.headerHeight()
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		m.page = renderPage(msg.Width, m.year)
		m.viewport.SetContent(m.page.body)
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
		m.scroll.Emit(m.viewport.YOffset * lineHeight)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) selectItem(i int) {
	items := content.NavItems()
	if i < 0 || i >= len(items) {
		return
	}

	item := items[i]
	m.state.Select(item)
	if line, ok := m.page.anchors[item.Href]; ok && m.ready {
		m.viewport.SetYOffset(line)
		m.scroll.Emit(m.viewport.YOffset * lineHeight)
	}
}

func (m Model) headerHeight() int {
	return navHeight + 2
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.header()
	body := m.viewport.View()
	if m.state.MenuOpen() {
		body = lipgloss.JoinVertical(lipgloss.Left, m.menu(), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m Model) header() string {
	style := lipgloss.NewStyle().
		Width(m.viewport.Width).
		Padding(0, 1)

	if m.state.Presentation() == navbar.Scrolled {
		style = style.
			Background(lipgloss.Color("#0a0a0a")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(faint)
	} else {
		style = style.PaddingTop(1).PaddingBottom(1)
	}

	icon := content.IconMenu
	if m.state.MenuOpen() {
		icon = content.IconClose
	}

	left := headingStyle.Render("sebicas") + accentStyle.Render(".com")
	right := textStyle.Render("[m] "+glyph(icon)) + "  " + textStyle.Render("[q] quit")
	gap := max(1, m.viewport.Width-lipgloss.Width(left)-lipgloss.Width(right)-2)

	return style.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) menu() string {
	var lines []string
	for i, item := range content.NavItems() {
		lines = append(lines, textStyle.Render(strconv.Itoa(i+1)+"  ")+headingStyle.Render(item.Label))
	}
	return lipgloss.NewStyle().
		Width(m.viewport.Width).
		Padding(0, 2).
		Border(lipgloss.NormalBorder(), true, false).
		BorderForeground(faint).
		Render(strings.Join(lines, "\n"))
}
