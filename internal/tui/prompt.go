package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/loveletter/card"
)

// ErrAborted is returned when the user quits a prompt
var ErrAborted = errors.New("input aborted")

const invalidEntry = "Invalid Entry - Exit with Ctrl-C"

// intPromptModel asks for a single value, re-prompting on bad input
type intPromptModel struct {
	label   string
	parse   func(string) (int, error)
	input   textinput.Model
	styles  Styles
	value   int
	err     string
	done    bool
	aborted bool
}

func newIntPrompt(label string, styles Styles) intPromptModel {
	return newPrompt(label, styles, strconv.Atoi)
}

// newCardPrompt accepts a rank number or name such as "guard"
func newCardPrompt(label string, styles Styles) intPromptModel {
	return newPrompt(label, styles, func(s string) (int, error) {
		c, err := card.Parse(s)
		return int(c), err
	})
}

func newPrompt(label string, styles Styles, parse func(string) (int, error)) intPromptModel {
	input := textinput.New()
	input.Prompt = " > "
	input.CharLimit = 10
	input.Focus()
	return intPromptModel{label: label, parse: parse, input: input, styles: styles}
}

func (m intPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m intPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			n, err := m.parse(strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.err = invalidEntry
				m.input.SetValue("")
				return m, nil
			}
			m.value = n
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m intPromptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err))
	}
	return b.String()
}

// Prompter reads integers and cards from the terminal with a bubbletea text input
type Prompter struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// NewPrompter creates a prompter reading from in and drawing to out
func NewPrompter(in io.Reader, out io.Writer, r *Renderer) *Prompter {
	return &Prompter{in: in, out: out, styles: r.Styles()}
}

// PromptInt shows label and waits for an integer. It returns ErrAborted if
// the user presses ctrl+c or esc.
func (p *Prompter) PromptInt(label string) (int, error) {
	return p.run(newIntPrompt(label, p.styles))
}

// PromptCard shows label and waits for a card given by number or name
func (p *Prompter) PromptCard(label string) (card.Card, error) {
	n, err := p.run(newCardPrompt(label, p.styles))
	return card.Card(n), err
}

func (p *Prompter) run(model intPromptModel) (int, error) {
	program := tea.NewProgram(model,
		tea.WithInput(p.in),
		tea.WithOutput(p.out))

	final, err := program.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}

	m := final.(intPromptModel)
	if m.aborted || !m.done {
		return 0, ErrAborted
	}
	fmt.Fprintf(p.out, "%s %s\n", m.label, m.input.Value())
	return m.value, nil
}
