// Package wizards contains the interactive bubbletea flows apolo offers
// when running at a real terminal. The release wizard mirrors the three
// stages of a release: review the analysis, configure schema and branch,
// confirm execution.
package wizards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

type wizardStyles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Help       lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Label      lipgloss.Style
}

type wizardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Tab    key.Binding
}

func defaultWizardStyles() wizardStyles {
	return wizardStyles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginBottom(1),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func defaultWizardKeys() wizardKeys {
	return wizardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Back:   key.NewBinding(key.WithKeys("esc")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q")),
		Tab:    key.NewBinding(key.WithKeys("tab")),
	}
}

// ReleaseResult holds the result of the release wizard.
type ReleaseResult struct {
	Cancelled     bool
	SchemaName    string
	BranchName    string
	CommitMessage string
	Push          bool
}

type releaseStep int

const (
	releaseStepSummary releaseStep = iota
	releaseStepConfigure
	releaseStepConfirm
)

const (
	inputBranch = iota
	inputMessage
	inputCount
)

// ReleaseWizard walks the user through releasing an analyzed archive.
type ReleaseWizard struct {
	step releaseStep

	session *apolo.ReleaseSession

	// Schema selection
	schemas   []string
	schemaIdx int

	// Branch and commit message inputs
	inputs   []textinput.Model
	focusIdx int

	// Push choice on the confirm step
	push bool

	branchErr string

	result ReleaseResult

	width  int
	height int

	styles wizardStyles
	keys   wizardKeys
}

// NewReleaseWizard creates a wizard over an analyzed session. schemas come
// from the repository's database/plsql directory; when the default schema is
// present it is preselected.
func NewReleaseWizard(session *apolo.ReleaseSession, schemas []string) ReleaseWizard {
	if session == nil {
		panic("session cannot be nil")
	}
	if len(schemas) == 0 {
		schemas = []string{strings.ToLower(apolo.DefaultSchemaName)}
	}

	schemaIdx := 0
	for i, s := range schemas {
		if strings.EqualFold(s, apolo.DefaultSchemaName) {
			schemaIdx = i
			break
		}
	}

	branch := textinput.New()
	branch.Placeholder = "F_MY_FEATURE"
	branch.CharLimit = 80
	branch.Focus()

	message := textinput.New()
	message.Placeholder = "feat: describe the change (optional)"
	message.CharLimit = 200

	inputs := make([]textinput.Model, inputCount)
	inputs[inputBranch] = branch
	inputs[inputMessage] = message

	return ReleaseWizard{
		step:      releaseStepSummary,
		session:   session,
		schemas:   schemas,
		schemaIdx: schemaIdx,
		inputs:    inputs,
		width:     80,
		height:    24,
		styles:    defaultWizardStyles(),
		keys:      defaultWizardKeys(),
	}
}

// Result returns the wizard outcome after the program has finished.
func (w ReleaseWizard) Result() ReleaseResult {
	return w.result
}

// Init implements tea.Model.
func (w ReleaseWizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (w ReleaseWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.result.Cancelled = true
			return w, tea.Quit
		}

		switch w.step {
		case releaseStepSummary:
			return w.updateSummary(msg)
		case releaseStepConfigure:
			return w.updateConfigure(msg)
		case releaseStepConfirm:
			return w.updateConfirm(msg)
		}
	}

	return w, nil
}

func (w ReleaseWizard) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Quit), key.Matches(msg, w.keys.Back):
		w.result.Cancelled = true
		return w, tea.Quit
	case key.Matches(msg, w.keys.Select):
		if w.session.HasBlocking() {
			// Blocking findings gate the rest of the wizard.
			w.result.Cancelled = true
			return w, tea.Quit
		}
		w.step = releaseStepConfigure
	}
	return w, nil
}

func (w ReleaseWizard) updateConfigure(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Back):
		w.step = releaseStepSummary
		return w, nil

	// Arrow keys only: k/j must reach the text inputs as characters.
	case msg.Type == tea.KeyUp:
		if w.schemaIdx > 0 {
			w.schemaIdx--
		}
		return w, nil

	case msg.Type == tea.KeyDown:
		if w.schemaIdx < len(w.schemas)-1 {
			w.schemaIdx++
		}
		return w, nil

	case key.Matches(msg, w.keys.Tab):
		w.focusIdx = (w.focusIdx + 1) % inputCount
		for i := range w.inputs {
			if i == w.focusIdx {
				w.inputs[i].Focus()
			} else {
				w.inputs[i].Blur()
			}
		}
		return w, nil

	case key.Matches(msg, w.keys.Select):
		branch := strings.ToUpper(strings.TrimSpace(w.inputs[inputBranch].Value()))
		if !apolo.ValidBranchName(branch) {
			w.branchErr = fmt.Sprintf("branch name %q must match F_[A-Z0-9_]+", w.inputs[inputBranch].Value())
			return w, nil
		}
		w.branchErr = ""
		w.result.SchemaName = w.schemas[w.schemaIdx]
		w.result.BranchName = branch
		w.result.CommitMessage = strings.TrimSpace(w.inputs[inputMessage].Value())
		w.step = releaseStepConfirm
		return w, nil
	}

	var cmd tea.Cmd
	w.inputs[w.focusIdx], cmd = w.inputs[w.focusIdx].Update(msg)
	return w, cmd
}

func (w ReleaseWizard) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Back):
		w.step = releaseStepConfigure
	case key.Matches(msg, w.keys.Up), key.Matches(msg, w.keys.Down):
		w.push = !w.push
	case key.Matches(msg, w.keys.Quit):
		w.result.Cancelled = true
		return w, tea.Quit
	case key.Matches(msg, w.keys.Select):
		w.result.Push = w.push
		return w, tea.Quit
	}
	return w, nil
}

// View implements tea.Model.
func (w ReleaseWizard) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Title.Render("apolo release"))
	b.WriteString("\n")

	switch w.step {
	case releaseStepSummary:
		b.WriteString(w.viewSummary())
	case releaseStepConfigure:
		b.WriteString(w.viewConfigure())
	case releaseStepConfirm:
		b.WriteString(w.viewConfirm())
	}

	return b.String()
}

func (w ReleaseWizard) viewSummary() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Step 1/3 · Analysis"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Files found:      %d\n", len(w.session.Files()))
	fmt.Fprintf(&b, "  DB scripts:       %d\n", w.session.DBFileCount())
	fmt.Fprintf(&b, "  Manifest entries: %d\n", w.session.CategorizedCount())

	findings := w.session.Findings()
	if blocking := findings.Blocking(); len(blocking) > 0 {
		b.WriteString("\n")
		b.WriteString(w.styles.Error.Render(fmt.Sprintf("  %d blocking finding(s):", len(blocking))))
		b.WriteString("\n")
		for _, f := range blocking {
			fmt.Fprintf(&b, "    %s\n", f)
		}
		b.WriteString(w.styles.Help.Render("fix the findings and analyze again • enter/q exit"))
		return b.String()
	}
	if advisory := findings.Advisory(); len(advisory) > 0 {
		b.WriteString("\n")
		b.WriteString(w.styles.Warning.Render(fmt.Sprintf("  %d advisory finding(s)", len(advisory))))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render("enter continue • q quit"))
	return b.String()
}

func (w ReleaseWizard) viewConfigure() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Step 2/3 · Configuration"))
	b.WriteString("\n\n")

	b.WriteString(w.styles.Label.Render("  Schema:"))
	b.WriteString("\n")
	for i, s := range w.schemas {
		if i == w.schemaIdx {
			b.WriteString(w.styles.Selected.Render(fmt.Sprintf("  ● %s", s)))
		} else {
			b.WriteString(w.styles.Unselected.Render(fmt.Sprintf("  ○ %s", s)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(w.styles.Label.Render("  Branch name: "))
	b.WriteString(w.inputs[inputBranch].View())
	b.WriteString("\n")
	b.WriteString(w.styles.Label.Render("  Commit msg:  "))
	b.WriteString(w.inputs[inputMessage].View())
	b.WriteString("\n")

	if w.branchErr != "" {
		b.WriteString(w.styles.Error.Render("  " + w.branchErr))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render("↑/↓ schema • tab switch field • enter continue • esc back"))
	return b.String()
}

func (w ReleaseWizard) viewConfirm() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Step 3/3 · Confirmation"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Schema: %s\n", w.result.SchemaName)
	fmt.Fprintf(&b, "  Branch: %s\n", w.result.BranchName)
	if w.result.CommitMessage != "" {
		fmt.Fprintf(&b, "  Commit: %s\n", w.result.CommitMessage)
	}
	fmt.Fprintf(&b, "  Files:  %d\n\n", len(w.session.Files()))

	pushLabel := "stay local"
	if w.push {
		pushLabel = "push to origin"
	}
	b.WriteString(w.styles.Selected.Render(fmt.Sprintf("  After staging: %s", pushLabel)))
	b.WriteString("\n")

	b.WriteString(w.styles.Help.Render("↑/↓ toggle push • enter run • esc back • q cancel"))
	return b.String()
}
