package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) tuiModel {
	t.Helper()
	return newTUIModel(New(io.Discard, LogInfo))
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTUIInputAcceptsDigitsOnly(t *testing.T) {
	m := newTestModel(t)

	for _, r := range "1a2!3" {
		next, _ := m.Update(keyRunes(r))
		m = next.(tuiModel)
	}

	if m.input != "123" {
		t.Errorf("input = %q, want %q", m.input, "123")
	}
}

func TestTUIInputLimitsLength(t *testing.T) {
	m := newTestModel(t)

	for _, r := range "12345" {
		next, _ := m.Update(keyRunes(r))
		m = next.(tuiModel)
	}

	if len(m.input) != maxInputDigits {
		t.Errorf("len(input) = %d, want %d", len(m.input), maxInputDigits)
	}
}

func TestTUIBackspace(t *testing.T) {
	m := newTestModel(t)
	m.input = "12"

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(tuiModel)

	if m.input != "1" {
		t.Errorf("input = %q, want %q", m.input, "1")
	}

	// Backspace on empty input must not panic.
	m.input = ""
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(tuiModel)
	if m.input != "" {
		t.Errorf("input = %q, want empty", m.input)
	}
}

func TestTUIComputeValid(t *testing.T) {
	m := newTestModel(t)
	m.input = "10"

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(tuiModel)

	if !m.hasRun {
		t.Fatal("expected hasRun after enter")
	}
	if m.n != 10 || m.value != 55 {
		t.Errorf("F(%d) = %d, want F(10) = 55", m.n, m.value)
	}
	if len(m.sequence) != 11 {
		t.Errorf("len(sequence) = %d, want 11", len(m.sequence))
	}
	if len(m.rects) != 11 {
		t.Errorf("len(rects) = %d, want 11", len(m.rects))
	}
	if m.errMsg != "" {
		t.Errorf("unexpected error: %q", m.errMsg)
	}
}

func TestTUIComputeInvalid(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		input   string
		wantMsg string
	}{
		{"", "please enter a valid number"},
		{"abc", "please enter a valid number"},
		{"99", "too large"},
	}

	for _, tt := range tests {
		m.input = tt.input
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		got := next.(tuiModel)

		if got.errMsg == "" {
			t.Errorf("input %q: expected an error message", tt.input)
			continue
		}
		if !strings.Contains(got.errMsg, tt.wantMsg) {
			t.Errorf("input %q: errMsg = %q, want it to contain %q", tt.input, got.errMsg, tt.wantMsg)
		}
	}
}

func TestTUIReset(t *testing.T) {
	m := newTestModel(t)
	m.input = "10"
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(tuiModel)

	next, _ = m.Update(keyRunes('r'))
	m = next.(tuiModel)

	if m.hasRun || m.input != "" || m.errMsg != "" {
		t.Error("reset should clear input and computed state")
	}
}

func TestTUIQuitKeys(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []tea.KeyMsg{keyRunes('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %v should quit", key)
		}
	}
}

func TestTUIViewShowsResult(t *testing.T) {
	m := newTestModel(t)
	m.input = "6"
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(tuiModel)

	view := m.View()
	if !strings.Contains(view, "F(6) = 8") {
		t.Error("view should show the computed value")
	}
	if !strings.Contains(view, "F(0) = 0, F(1) = 1") {
		t.Error("view should show the sequence listing")
	}
	if !strings.Contains(view, "sum: 20") {
		t.Error("view should show the sequence sum")
	}
	if !strings.Contains(view, "ratio: 1.6") {
		t.Error("view should show the golden ratio approximation")
	}
	if !strings.Contains(view, "Displaying 7 terms | Largest: F(6) = 8") {
		t.Error("view should show the stats line")
	}
}

func TestTUIViewSpiralNonEmpty(t *testing.T) {
	m := newTestModel(t)
	m.input = "8"
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(tuiModel)

	preview := m.viewSpiral()
	if !strings.Contains(preview, "█") {
		t.Error("spiral preview should contain filled cells")
	}
}

func TestTUISaveWithoutResult(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyRunes('s'))
	m = next.(tuiModel)

	if m.errMsg == "" {
		t.Error("saving before computing should set an error message")
	}
}
