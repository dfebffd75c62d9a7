package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{err: findErr}
		}
		return workspaceRefreshedMsg{found: true, root: root}
	}
}

// cmdRunDemo runs a demo off the update loop and captures its output.
func cmdRunDemo(deps Deps, name string) tea.Cmd {
	return func() tea.Msg {
		if deps.Demos == nil {
			return demoDoneMsg{name: name, err: errors.New("Demos is nil")}
		}

		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var buf bytes.Buffer
		start := time.Now()
		err := deps.Demos.Run(ctx, name, &buf)
		if err != nil {
			log.Error("tui.demo.failed", "name", name, "err", err)
		} else if deps.Debug {
			log.Debug("tui.demo.ok", "name", name, "bytes", buf.Len(), "elapsed", time.Since(start))
		}

		return demoDoneMsg{name: name, output: buf.String(), err: err}
	}
}
