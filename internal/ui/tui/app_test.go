package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/usecase"
)

type fakeDemos struct {
	ran []string
}

func (f *fakeDemos) List() []usecase.Demo {
	return []usecase.Demo{
		{Name: "journal", Principle: "Single responsibility", Summary: "journal"},
		{Name: "shapes", Principle: "Liskov substitution", Summary: "shapes"},
	}
}

func (f *fakeDemos) Run(_ context.Context, name string, w io.Writer) error {
	f.ran = append(f.ran, name)
	if name == "missing" {
		return &domain.OpError{Op: "demos.run", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	fmt.Fprintf(w, "ran %s\n", name)
	return nil
}

func sized(t *testing.T, m model) model {
	t.Helper()
	out, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return out.(model)
}

func TestModel_MenuListsDemosAndQuit(t *testing.T) {
	m := newModel(Deps{Demos: &fakeDemos{}})
	items := m.menu.Items()
	if len(items) != 3 {
		t.Fatalf("expected 2 demos + quit, got %d", len(items))
	}
	if it := items[2].(menuItem); it.name != quitItem {
		t.Fatalf("expected quit last, got %+v", it)
	}
}

func TestModel_EnterRunsSelectedDemo(t *testing.T) {
	fd := &fakeDemos{}
	m := sized(t, newModel(Deps{Demos: fd}))

	out, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = out.(model)
	if m.running != "journal" || cmd == nil {
		t.Fatalf("expected journal to start, running=%q cmd=%v", m.running, cmd)
	}

	out, _ = m.Update(cmd())
	m = out.(model)
	if m.scr != screenOutput {
		t.Fatalf("expected output screen, got %v", m.scr)
	}
	if m.running != "" {
		t.Fatalf("expected running cleared, got %q", m.running)
	}
	if !strings.Contains(m.View(), "ran journal") {
		t.Fatalf("expected demo output in view, got:\n%s", m.View())
	}
	if len(fd.ran) != 1 || fd.ran[0] != "journal" {
		t.Fatalf("expected one journal run, got %v", fd.ran)
	}

	out, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = out.(model)
	if m.scr != screenHome || m.output != "" {
		t.Fatalf("expected home with cleared output, got scr=%v output=%q", m.scr, m.output)
	}
}

func TestModel_DemoErrorShowsToast(t *testing.T) {
	m := sized(t, newModel(Deps{Demos: &fakeDemos{}}))
	m.running = "missing"

	out, _ := m.Update(cmdRunDemo(m.deps, "missing")())
	m = out.(model)
	if m.toast != "Demo not found" {
		t.Fatalf("expected toast, got %q", m.toast)
	}
	if !strings.Contains(m.View(), "Demo not found") {
		t.Fatalf("expected toast in view")
	}
}

func TestModel_StaleResultIgnored(t *testing.T) {
	m := sized(t, newModel(Deps{Demos: &fakeDemos{}}))

	out, _ := m.Update(demoDoneMsg{name: "shapes", output: "late"})
	m = out.(model)
	if m.scr != screenHome || m.output != "" {
		t.Fatalf("expected stale result dropped, got scr=%v output=%q", m.scr, m.output)
	}
}

func TestModel_QuitFromHome(t *testing.T) {
	m := sized(t, newModel(Deps{Demos: &fakeDemos{}}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestFitOutput(t *testing.T) {
	got := fitOutput("one\ntwo\nthree\nfour\n", 3, 3)
	want := "one\ntwo\n… 2 more line(s)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if got := fitOutput("abcdef", 3, 0); got != "abc…" {
		t.Fatalf("expected clamp, got %q", got)
	}
}

func TestSafeModel_Delegates(t *testing.T) {
	s := wrapSafe(sized(t, newModel(Deps{Demos: &fakeDemos{}})), nil)
	if !strings.Contains(s.View(), "Principles") {
		t.Fatalf("expected menu in view, got:\n%s", s.View())
	}
}

func TestModel_RerunResultAfterLeavingIsDropped(t *testing.T) {
	fd := &fakeDemos{}
	m := sized(t, newModel(Deps{Demos: fd}))
	m.scr = screenOutput
	m.outputName = "shapes"
	m.output = "ran shapes"

	out, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = out.(model)
	if m.running != "shapes" || cmd == nil {
		t.Fatalf("expected rerun of shapes, running=%q", m.running)
	}

	out, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = out.(model)
	if m.running != "" {
		t.Fatalf("expected pending rerun cleared on esc, got %q", m.running)
	}

	out, _ = m.Update(cmd())
	m = out.(model)
	if m.scr != screenHome || m.output != "" {
		t.Fatalf("expected to stay home, got scr=%v output=%q", m.scr, m.output)
	}
}

func TestModel_BannerShowsLogPath(t *testing.T) {
	m := sized(t, newModel(Deps{Demos: &fakeDemos{}, LogPath: "/ws/.solid/logs/solid.log"}))
	if !strings.Contains(m.View(), "Logs: /ws/.solid/logs/solid.log") {
		t.Fatalf("expected log path in banner, got:\n%s", m.View())
	}
}
