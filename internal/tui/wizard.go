// internal/tui/wizard.go
//
// The init wizard asks four questions (name, types, predicates, actions) and
// turns the answers into a scaffold.Spec. It follows the bubbletea loop:
// key press -> Update -> new model -> View.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/pddlkit/internal/scaffold"
)

// ErrAborted is returned when the user leaves the wizard with esc or ctrl+c.
var ErrAborted = errors.New("tui: init aborted")

// Answers holds raw, unsanitised prompt answers. Non-empty fields prefill the
// matching prompt.
type Answers struct {
	Name       string
	Types      string
	Predicates string
	Actions    string
}

// Complete reports whether every question already has an answer.
func (a Answers) Complete() bool {
	return strings.TrimSpace(a.Name) != "" && strings.TrimSpace(a.Types) != "" &&
		strings.TrimSpace(a.Predicates) != "" && strings.TrimSpace(a.Actions) != ""
}

type prompt struct {
	label       string
	placeholder string
}

var prompts = []prompt{
	{"Name", "AirCargo"},
	{"Types (separated by space)", "cargo plane airport"},
	{"Predicates (separated by space)", "cargo_at plane_at in"},
	{"Actions (separated by space)", "load unload fly"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Wizard is the bubbletea model behind `pddlgen init`.
type Wizard struct {
	path    string
	format  scaffold.Format
	inputs  []textinput.Model
	focus   int
	spec    scaffold.Spec
	err     error
	done    bool
	aborted bool
}

// NewWizard prepares the prompts for a file at path.
func NewWizard(path string, format scaffold.Format, answers Answers) *Wizard {
	values := []string{answers.Name, answers.Types, answers.Predicates, answers.Actions}
	inputs := make([]textinput.Model, len(prompts))
	for i, p := range prompts {
		in := textinput.New()
		in.Placeholder = p.placeholder
		in.Prompt = "> "
		in.CharLimit = 256
		in.Width = 48
		in.SetValue(values[i])
		inputs[i] = in
	}
	inputs[0].Focus()
	return &Wizard{path: path, format: format, inputs: inputs}
}

// Init starts the cursor blinking.
func (w *Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles navigation keys and forwards the rest to the focused input.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			w.aborted = true
			return w, tea.Quit
		case "shift+tab", "up":
			if w.focus > 0 {
				return w, w.setFocus(w.focus - 1)
			}
			return w, nil
		case "enter", "tab", "down":
			if w.focus < len(w.inputs)-1 {
				return w, w.setFocus(w.focus + 1)
			}
			if key.String() != "enter" {
				return w, nil
			}
			return w, w.submit()
		}
	}
	var cmd tea.Cmd
	w.inputs[w.focus], cmd = w.inputs[w.focus].Update(msg)
	return w, cmd
}

func (w *Wizard) setFocus(idx int) tea.Cmd {
	w.inputs[w.focus].Blur()
	w.focus = idx
	return w.inputs[w.focus].Focus()
}

func (w *Wizard) submit() tea.Cmd {
	spec, err := scaffold.ParseSpec(
		w.inputs[0].Value(),
		w.inputs[1].Value(),
		w.inputs[2].Value(),
		w.inputs[3].Value(),
		w.format,
	)
	if err != nil {
		w.err = err
		return nil
	}
	w.err = nil
	w.spec = spec
	w.done = true
	return tea.Quit
}

// View renders the prompts with the focused one highlighted.
func (w *Wizard) View() string {
	if w.done || w.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("New %s description: %s", w.format, w.path)))
	b.WriteString("\n\n")
	for i, p := range prompts {
		style := labelStyle
		if i == w.focus {
			style = activeStyle
		}
		b.WriteString(style.Render(p.label))
		b.WriteByte('\n')
		b.WriteString(w.inputs[i].View())
		b.WriteString("\n\n")
	}
	if w.err != nil {
		b.WriteString(errorStyle.Render(w.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(hintStyle.Render("enter: next/confirm • shift+tab: back • esc: cancel"))
	return b.String()
}

// Result returns the sanitised spec once the wizard finished.
func (w *Wizard) Result() (scaffold.Spec, error) {
	if w.aborted || !w.done {
		return scaffold.Spec{}, ErrAborted
	}
	return w.spec, nil
}

// Run shows the wizard and writes the resulting skeleton to path.
func Run(path string, format scaffold.Format, answers Answers, opts ...tea.ProgramOption) (scaffold.Spec, error) {
	final, err := tea.NewProgram(NewWizard(path, format, answers), opts...).Run()
	if err != nil {
		return scaffold.Spec{}, fmt.Errorf("tui: %w", err)
	}
	w, ok := final.(*Wizard)
	if !ok {
		return scaffold.Spec{}, fmt.Errorf("tui: unexpected model %T", final)
	}
	spec, err := w.Result()
	if err != nil {
		return scaffold.Spec{}, err
	}
	if err := scaffold.Write(path, spec); err != nil {
		return scaffold.Spec{}, err
	}
	return spec, nil
}
