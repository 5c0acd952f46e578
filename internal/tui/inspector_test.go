package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikkelkp/pollination-dsl/dag"
)

func testDeclaration() dag.Declaration {
	model := dag.New(dag.KindFile)
	model.Description = "A HBJSON model file."
	model.Extensions = []string{"hbjson"}
	count := dag.New(dag.KindInteger)
	count.Default = 200
	return dag.Declaration{
		Name: "daylight-factor",
		Inputs: []dag.InputRef{
			{Name: "model_file", Input: model},
			{Name: "sensor_count", Input: count},
		},
	}
}

func resized(t *testing.T, m tea.Model) *Inspector {
	t.Helper()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	inspector, ok := model.(*Inspector)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return inspector
}

func TestInspectorViewListsInputs(t *testing.T) {
	inspector := resized(t, NewInspector(testDeclaration()))
	view := inspector.View()
	if !strings.Contains(view, "model_file") || !strings.Contains(view, "sensor_count") {
		t.Fatalf("view should list declared inputs:\n%s", view)
	}
	if !strings.Contains(view, "daylight-factor") {
		t.Fatalf("view should carry the declaration name:\n%s", view)
	}
}

func TestInspectorDetailPane(t *testing.T) {
	inspector := resized(t, NewInspector(testDeclaration()))
	details := inspector.renderDetails()
	if !strings.Contains(details, "File") {
		t.Fatalf("details should show the selected input's kind:\n%s", details)
	}
	if !strings.Contains(details, "InputFileReference") {
		t.Fatalf("details should show the reference type:\n%s", details)
	}
	if !strings.Contains(details, "hbjson") {
		t.Fatalf("details should show extensions:\n%s", details)
	}
}

func TestInspectorQuitKeys(t *testing.T) {
	inspector := resized(t, NewInspector(testDeclaration()))
	_, cmd := inspector.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q should quit the inspector")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected quit message, got %v", msg)
	}
}

func TestInspectorEmptyDeclaration(t *testing.T) {
	inspector := resized(t, NewInspector(dag.Declaration{Name: "empty"}))
	view := inspector.View()
	if !strings.Contains(view, "declares no inputs") {
		t.Fatalf("empty declaration should render a hint:\n%s", view)
	}
}
