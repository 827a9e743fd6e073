package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/hollowcore/list"
	"github.com/wippyai/hollowcore/number"
	"github.com/wippyai/hollowcore/object"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err     error
	session *session
	result  string
	input   textinput.Model
}

func newInteractiveModel(s *session) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "add 1 | insert 0 2.5 | remove 1 | pop | find true | clear"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{session: s, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			m.result, m.err = execute(m.session.list(), line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute applies one command line to l and describes the outcome.
func execute(l *list.List[*number.Number], line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "add":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: add <value>")
		}
		n, err := number.Parse(args[0])
		if err != nil {
			return "", err
		}
		l.AddObjectReleased(n)
		return fmt.Sprintf("added %s at %d", n, l.Count()-1), nil

	case "insert":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: insert <index> <value>")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return "", err
		}
		n, err := number.Parse(args[1])
		if err != nil {
			return "", err
		}
		if err := l.AddObjectReleasedAtIndex(i, n); err != nil {
			return "", err
		}
		return fmt.Sprintf("inserted %s at %d", n, i), nil

	case "remove":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: remove <index>")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return "", err
		}
		n, err := l.RemoveObjectRetainedAtIndex(i)
		if err != nil {
			return "", err
		}
		defer object.Release(n)
		return fmt.Sprintf("removed %s from %d", n, i), nil

	case "pop":
		n, err := l.RemoveObjectRetained()
		if err != nil {
			return "", err
		}
		defer object.Release(n)
		return fmt.Sprintf("popped %s", n), nil

	case "find":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: find <value>")
		}
		q, err := number.Parse(args[0])
		if err != nil {
			return "", err
		}
		defer object.Release(q)
		return fmt.Sprintf("first %s, last %s",
			index(l.FirstIndexOfObject(q)), index(l.LastIndexOfObject(q))), nil

	case "clear":
		n := l.Count()
		l.Clear()
		return fmt.Sprintf("cleared %d element(s)", n), nil

	default:
		return "", fmt.Errorf("unknown command %q", cmd)
	}
}

func (m *interactiveModel) View() string {
	l := m.session.list()
	var b strings.Builder

	b.WriteString(titleStyle.Render("HollowCore Inspector"))
	b.WriteString(" ")
	b.WriteString(lineage(object.TypeOf(l)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  count %d  capacity %d  hash %d\n\n",
		valueStyle.Render(l.String()), l.Count(), l.Capacity(), object.Hash(l)))

	for i, n := range l.All() {
		b.WriteString(indexStyle.Render(fmt.Sprintf("%4d ", i)))
		b.WriteString(valueStyle.Render(n.String()))
		b.WriteString(" ")
		b.WriteString(kindStyle.Render(n.Kind().String()))
		b.WriteString("\n")
	}
	if l.IsEmpty() {
		b.WriteString(indexStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • esc quit"))

	return b.String()
}

func runInteractive(capacity int, values []string) error {
	s, err := newSession(capacity, values)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(newInteractiveModel(s), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
