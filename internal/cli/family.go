package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/usecase"
)

func familyCmd(o *rootOpts) *cobra.Command {
	var familyFile string

	c := &cobra.Command{
		Use:   "family",
		Short: "Browse relationships loaded from a family YAML file",
	}
	c.PersistentFlags().StringVarP(&familyFile, "family", "f", "", "Family YAML (defaults to solid.yaml data.family)")

	load := func() (*domain.Relationships, error) {
		ws, err := loadWorkspace(o.workspace)
		if err != nil {
			return nil, err
		}
		path := familyFile
		if strings.TrimSpace(path) == "" {
			path = ws.cfg.Data.FamilyFile
		}
		return ws.data.LoadFamily(ws.resolve(path))
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "children <name>",
			Short: "Print the children of a person",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := load()
				if err != nil {
					return err
				}
				if len(usecase.NewBetterResearch(r).Execute(cmd.OutOrStdout(), args[0])) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s has no children\n", args[0])
				}
				return nil
			},
		},
		relativesCmd("parents", "Print the parents of a person", load, (*domain.Relationships).FindAllParentsOf),
		relativesCmd("siblings", "Print the siblings of a person", load, (*domain.Relationships).FindAllSiblingsOf),
	)
	return c
}

func relativesCmd(
	use, short string,
	load func() (*domain.Relationships, error),
	find func(*domain.Relationships, string) []domain.Person,
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			people := find(r, args[0])
			if len(people) == 0 {
				fmt.Fprintf(out, "%s has no %s\n", args[0], use)
				return nil
			}
			for _, p := range people {
				fmt.Fprintln(out, p.Name)
			}
			return nil
		},
	}
}
