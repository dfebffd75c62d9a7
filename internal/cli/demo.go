package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/infra/logger"
	"github.com/aalvaropc/solid/internal/usecase"
)

func demoCmd(o *rootOpts) *cobra.Command {
	var save bool
	var name string
	var store string

	c := &cobra.Command{
		Use:   "demo [name|all]",
		Short: "Run a principle demo, or list them when no name is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			opts := []usecase.DemosOption{usecase.WithDemosLogger(logger.Component("demos"))}

			if save {
				ws, err := loadWorkspace(o.workspace)
				if err != nil {
					return err
				}
				js, closeStore, err := ws.openJournalStore(store)
				if err != nil {
					return err
				}
				defer func() { _ = closeStore() }()
				opts = append(opts, usecase.WithJournalStore(js, name))
			}

			demos := usecase.NewDemos(opts...)

			if len(args) == 0 {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, d := range demos.List() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Principle, d.Summary)
				}
				return tw.Flush()
			}

			if args[0] == "all" {
				return demos.RunAll(cmd.Context(), out)
			}
			return demos.Run(cmd.Context(), args[0], out)
		},
	}

	c.Flags().BoolVar(&save, "save", false, "Persist the journal demo through the configured store")
	c.Flags().StringVar(&name, "name", "journal.txt", "Journal name used with --save")
	c.Flags().StringVar(&store, "store", "", "Journal store: text|sqlite (defaults to solid.yaml)")
	return c
}

func shapesCmd() *cobra.Command {
	var width, height, side int

	c := &cobra.Command{
		Use:   "shapes",
		Short: "Show how a Square breaks code written for a Rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("width") && !cmd.Flags().Changed("height") && !cmd.Flags().Changed("side") {
				return usecase.NewDemos().Run(cmd.Context(), "shapes", out)
			}

			if err := validateSides(width, height, side); err != nil {
				return err
			}

			fmt.Fprintf(out, "Rectangle %dx%d:\n", width, height)
			usecase.UseIt(out, domain.NewRectangle(width, height))

			fmt.Fprintf(out, "Square subtype with side %d:\n", side)
			usecase.UseIt(out, domain.NewSquareShape(side))
			return nil
		},
	}

	c.Flags().IntVar(&width, "width", 2, "Rectangle width")
	c.Flags().IntVar(&height, "height", 3, "Rectangle height")
	c.Flags().IntVar(&side, "side", 5, "Square side")
	return c
}

func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Compare a fat machine interface with segregated capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return usecase.NewDemos().Run(cmd.Context(), "devices", cmd.OutOrStdout())
		},
	}
}

// validateSides rejects negative side lengths; zero is allowed.
func validateSides(sides ...int) error {
	for _, n := range sides {
		if n < 0 {
			return &domain.OpError{
				Op:   "cli.shapes",
				Kind: domain.KindInvalidArgument,
				Err:  fmt.Errorf("side %d must be >= 0: %w", n, domain.ErrInvalidArgument),
			}
		}
	}
	return nil
}
