package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solid/internal/infra/logger"
	"github.com/aalvaropc/solid/internal/infra/workspacefinder"
	"github.com/aalvaropc/solid/internal/ui/tui"
	"github.com/aalvaropc/solid/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOpts struct {
	debug     bool
	workspace string
	cleanup   func() error
}

func newRootCmd() *cobra.Command {
	o := &rootOpts{}

	cmd := &cobra.Command{
		Use:          "solid",
		Short:        "solid: five object-design principles as small runnable programs",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// The TUI sets up its own log file below.
			if c.Parent() == nil {
				return nil
			}
			root, err := resolveWorkspaceRoot(o.workspace)
			if err != nil {
				return nil
			}
			cleanup, err := logger.Setup(logger.Config{Root: root, Debug: o.debug})
			if err == nil {
				o.cleanup = cleanup
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if o.cleanup != nil {
				err := o.cleanup()
				o.cleanup = nil
				return err
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: o.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Demos:            usecase.NewDemos(usecase.WithDemosLogger(logger.Component("demos"))),
				WorkspaceLocator: finder,
				Logger:           logger.L(),
				Debug:            o.debug,
			}
			if logger.IsReady() == nil {
				deps.LogPath = logger.Path()
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable verbose logging to .solid/logs/solid.log")
	cmd.PersistentFlags().StringVarP(&o.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		initCmd(),
		demoCmd(o),
		journalCmd(o),
		productsCmd(o),
		familyCmd(o),
		shapesCmd(),
		devicesCmd(),
		versionCmd(),
	)
	return cmd
}
