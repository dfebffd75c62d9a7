package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/solid/internal/ports"
	"github.com/aalvaropc/solid/internal/usecase"
)

// DemoRunner lists and runs the principle demos.
type DemoRunner interface {
	List() []usecase.Demo
	Run(ctx context.Context, name string, w io.Writer) error
}

type Deps struct {
	Demos            DemoRunner
	WorkspaceLocator ports.WorkspaceLocator

	Logger *slog.Logger
	// LogPath is shown in the banner when logging to a file.
	LogPath string
	Debug   bool
}
