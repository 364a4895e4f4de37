package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	modulehost "github.com/wippyai/module-host"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	moduleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	tierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateResolve modelState = iota
	stateInvoke
	stateShowResult
)

type interactiveModel struct {
	err        error
	modulesDir string
	session    *session
	resolved   modulehost.Module
	result     string
	nameInput  textinput.Model
	methodIn   textinput.Model
	argsIn     textinput.Model
	focusIdx   int
	state      modelState
}

func newInteractiveModel(modulesDir string) *interactiveModel {
	name := textinput.New()
	name.Placeholder = "module name"
	name.Prompt = "resolve: "
	name.Width = 40
	name.Focus()

	method := textinput.New()
	method.Prompt = "method: "
	method.Width = 40

	args := textinput.New()
	args.Placeholder = "1, 2, hello"
	args.Prompt = "args: "
	args.Width = 40

	return &interactiveModel{
		modulesDir: modulesDir,
		nameInput:  name,
		methodIn:   method,
		argsIn:     args,
		state:      stateResolve,
	}
}

type loadedMsg struct {
	err     error
	session *session
}

type resolveMsg struct {
	module modulehost.Module
	name   string
	ok     bool
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.loadSession, textinput.Blink)
}

func (m *interactiveModel) loadSession() tea.Msg {
	s, err := newSession(context.Background(), m.modulesDir)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{session: s}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.session != nil {
				m.session.close(context.Background())
			}
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateResolve:
				return m, m.resolve

			case stateInvoke:
				return m, m.invoke

			case stateShowResult:
				m.state = stateResolve
				m.result = ""
				m.err = nil
				m.nameInput.Focus()
			}

		case "tab":
			if m.state == stateInvoke {
				if m.focusIdx == 0 {
					m.methodIn.Blur()
					m.argsIn.Focus()
					m.focusIdx = 1
				} else {
					m.argsIn.Blur()
					m.methodIn.Focus()
					m.focusIdx = 0
				}
			}

		case "esc":
			switch m.state {
			case stateInvoke, stateShowResult:
				m.state = stateResolve
				m.result = ""
				m.err = nil
				m.methodIn.Blur()
				m.argsIn.Blur()
				m.nameInput.Focus()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.session = msg.session

	case resolveMsg:
		if !msg.ok {
			m.err = fmt.Errorf("module %q not found", msg.name)
			m.state = stateShowResult
			return m, nil
		}
		m.resolved = msg.module
		m.state = stateInvoke
		m.nameInput.Blur()
		m.methodIn.SetValue("")
		m.argsIn.SetValue("")
		m.methodIn.Focus()
		m.focusIdx = 0

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		m.methodIn.Blur()
		m.argsIn.Blur()
	}

	var cmds []tea.Cmd
	switch m.state {
	case stateResolve:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		cmds = append(cmds, cmd)
	case stateInvoke:
		var cmd tea.Cmd
		m.methodIn, cmd = m.methodIn.Update(msg)
		cmds = append(cmds, cmd)
		m.argsIn, cmd = m.argsIn.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) resolve() tea.Msg {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		return resolveMsg{name: name}
	}
	mod, ok := m.session.provider(name)
	return resolveMsg{module: mod, name: name, ok: ok}
}

func (m *interactiveModel) invoke() tea.Msg {
	method := strings.TrimSpace(m.methodIn.Value())
	if method == "" {
		return callResultMsg{err: fmt.Errorf("method name required")}
	}

	args := parseArgs(m.argsIn.Value())
	result, err := m.resolved.Invoke(context.Background(), method, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: fmt.Sprintf("%v", result)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}

	if m.session == nil {
		return "Loading host..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Module Host"))
	b.WriteString("\n\n")

	b.WriteString("Fast-path: ")
	names := m.session.delegate.Names()
	if len(names) == 0 {
		b.WriteString(helpStyle.Render("(none)"))
	} else {
		b.WriteString(moduleStyle.Render(strings.Join(names, ", ")))
	}
	b.WriteString("\n")
	b.WriteString("Built-in:  ")
	b.WriteString(moduleStyle.Render("Echo"))
	b.WriteString(tierStyle.Render(" (legacy)"))
	b.WriteString(", ")
	b.WriteString(moduleStyle.Render("Clock"))
	b.WriteString(tierStyle.Render(" (managed)"))
	b.WriteString("\n\n")

	switch m.state {
	case stateResolve:
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.statsLine())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter resolve • ctrl+c quit"))

	case stateInvoke:
		b.WriteString("Resolved ")
		b.WriteString(moduleStyle.Render(m.resolved.Name()))
		b.WriteString("\n\n")
		b.WriteString(m.methodIn.View())
		b.WriteString("\n")
		b.WriteString(m.argsIn.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab next field • enter invoke • esc back"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(m.statsLine())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter continue • esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) statsLine() string {
	cached := m.session.manager.Cache().Names()
	line := fmt.Sprintf("cached: %s  hits: %d  resolves: %d  retained: %d",
		strings.Join(cached, ","),
		m.session.counts.TotalHits(),
		m.session.counts.TotalResolves(),
		m.session.manager.RetainedCount())
	return helpStyle.Render(line)
}

func runInteractive(modulesDir string) error {
	p := tea.NewProgram(newInteractiveModel(modulesDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
