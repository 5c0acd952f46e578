// Package tui renders an interactive inspector for a DAG input declaration.
// It follows The Elm Architecture via bubbletea: the Inspector model holds
// the loaded declaration, Update reacts to key and resize messages, and View
// renders the input list next to a detail pane for the selected input.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikkelkp/pollination-dsl/dag"
)

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	requiredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	optionalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	artifactStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	detailTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	detailPaneStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// inputItem implements list.Item for one declared input.
type inputItem struct {
	ref dag.InputRef
}

func (i inputItem) Title() string { return i.ref.Name }

func (i inputItem) Description() string {
	label := strings.ToLower(string(i.ref.Input.Kind))
	if i.ref.Input.Required() {
		return label + " · required"
	}
	return label + " · optional"
}

func (i inputItem) FilterValue() string { return i.ref.Name }

// Inspector is the bubbletea model for browsing a declaration's inputs.
type Inspector struct {
	declaration dag.Declaration
	inputs      list.Model
	width       int
	height      int
}

// NewInspector builds the inspector model for a normalized declaration.
func NewInspector(declaration dag.Declaration) *Inspector {
	normalized := declaration.Normalized()
	items := make([]list.Item, 0, len(normalized.Inputs))
	for _, ref := range normalized.Inputs {
		items = append(items, inputItem{ref: ref})
	}
	inputs := list.New(items, list.NewDefaultDelegate(), 0, 0)
	inputs.Title = fmt.Sprintf("⬡ %s · inputs", normalized.Name)
	inputs.SetShowStatusBar(false)
	inputs.SetFilteringEnabled(true)
	return &Inspector{declaration: normalized, inputs: inputs}
}

// Init implements tea.Model.
func (m *Inspector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := msg.Width / 2
		if listWidth < 30 {
			listWidth = msg.Width
		}
		m.inputs.SetSize(listWidth, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		// Leave q available for list filtering.
		if m.inputs.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.inputs, cmd = m.inputs.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Inspector) View() string {
	if len(m.declaration.Inputs) == 0 {
		return fmt.Sprintf("DAG %s declares no inputs.\n\nq=quit", m.declaration.Name)
	}
	left := m.inputs.View()
	right := detailPaneStyle.Render(m.renderDetails())
	if m.width < 60 {
		return left + "\n" + right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Inspector) renderDetails() string {
	item, ok := m.inputs.SelectedItem().(inputItem)
	if !ok {
		return detailTextStyle.Render("Select an input to inspect it.")
	}
	ref := item.ref
	input := ref.Input

	lines := []string{titleStyle.Render(ref.Name)}
	if input.Description != "" {
		lines = append(lines, detailTextStyle.Render(input.Description), "")
	}
	lines = append(lines, fmt.Sprintf("Kind:      %s", input.Kind))
	if input.Required() {
		lines = append(lines, fmt.Sprintf("Required:  %s", requiredStyle.Render("yes")))
	} else {
		lines = append(lines, fmt.Sprintf("Required:  %s", optionalStyle.Render("no")))
	}
	if input.IsArtifact() {
		lines = append(lines, fmt.Sprintf("Artifact:  %s", artifactStyle.Render("yes")))
	}
	lines = append(lines, fmt.Sprintf("Reference: %s", input.ReferenceType()))
	if input.Default != nil {
		lines = append(lines, fmt.Sprintf("Default:   %v", input.Default))
	}
	if input.DefaultLocal != nil {
		lines = append(lines, fmt.Sprintf("Local:     %v", input.DefaultLocal))
	}
	if input.Kind == dag.KindList {
		lines = append(lines, fmt.Sprintf("Items:     %s", input.ItemsType))
	}
	if len(input.Extensions) > 0 {
		lines = append(lines, fmt.Sprintf("Ext:       %s", strings.Join(input.Extensions, ", ")))
	}
	if len(input.Alias) > 0 {
		platforms := make([]string, 0, len(input.Alias))
		for _, al := range input.Alias {
			platforms = append(platforms, strings.Join(al.Platform, "/"))
		}
		lines = append(lines, fmt.Sprintf("Aliases:   %s", strings.Join(platforms, ", ")))
	}
	lines = append(lines, "", detailTextStyle.Render("q=quit  /=filter"))
	return strings.Join(lines, "\n")
}

// Run launches the inspector in the alternate screen buffer and blocks until
// the user quits.
func Run(declaration dag.Declaration) error {
	p := tea.NewProgram(NewInspector(declaration), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run inspector: %w", err)
	}
	return nil
}
