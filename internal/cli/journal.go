package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solid/internal/app/template"
	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/infra/logger"
	"github.com/aalvaropc/solid/internal/usecase"
)

func journalCmd(o *rootOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "journal",
		Short: "Write journals and read them back",
	}

	c.AddCommand(journalSaveCmd(o), journalShowCmd(o))
	return c
}

func journalSaveCmd(o *rootOpts) *cobra.Command {
	var entries []string
	var remove []int
	var name string
	var noOverwrite bool
	var store string

	c := &cobra.Command{
		Use:   "save",
		Short: "Build a journal from --entry flags and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(o.workspace)
			if err != nil {
				return err
			}

			fileName, err := renderJournalName(name, time.Now())
			if err != nil {
				return err
			}

			js, closeStore, err := ws.openJournalStore(store)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			uc := usecase.NewSaveJournal(js, usecase.WithSaveLogger(logger.Component("journal")))
			j, err := uc.Execute(cmd.Context(), entries, remove, fileName, !noOverwrite)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if j.Len() > 0 {
				fmt.Fprintln(out, j)
			}
			fmt.Fprintf(out, "journal %q: %d entries, counter %d\n", fileName, j.Len(), j.Count())
			return nil
		},
	}

	c.Flags().StringArrayVarP(&entries, "entry", "e", nil, "Entry text (repeatable, kept in order)")
	c.Flags().IntSliceVar(&remove, "remove", nil, "Entry positions to remove after adding, applied in order")
	c.Flags().StringVarP(&name, "name", "n", "journal.txt", "Journal name; supports {{date}}, {{time}} and {{unix}}")
	c.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Only save when the journal already exists")
	c.Flags().StringVar(&store, "store", "", "Journal store: text|sqlite (defaults to solid.yaml)")
	return c
}

func journalShowCmd(o *rootOpts) *cobra.Command {
	var name string
	var store string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print a saved journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(o.workspace)
			if err != nil {
				return err
			}

			fileName, err := renderJournalName(name, time.Now())
			if err != nil {
				return err
			}

			kind := store
			if strings.TrimSpace(kind) == "" {
				kind = ws.cfg.Journal.Store
			}
			out := cmd.OutOrStdout()

			switch kind {
			case domain.StoreText:
				path := filepath.Join(ws.resolve(ws.cfg.Journal.Dir), fileName)
				if filepath.IsAbs(fileName) {
					path = fileName
				}
				b, err := os.ReadFile(path)
				if err != nil {
					return &domain.OpError{Op: "cli.journal_show", Kind: domain.KindNotFound, Path: path, Err: err}
				}
				_, err = out.Write(b)
				return err

			case domain.StoreSQLite:
				s, err := ws.openSQLite()
				if err != nil {
					return err
				}
				defer func() { _ = s.Close() }()

				entries, err := s.Load(cmd.Context(), fileName)
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintln(out, e)
				}
				return nil

			default:
				return &domain.OpError{
					Op:   "cli.journal_show",
					Kind: domain.KindInvalidArgument,
					Err:  fmt.Errorf("unsupported store %q (expected text|sqlite): %w", kind, domain.ErrInvalidArgument),
				}
			}
		},
	}

	c.Flags().StringVarP(&name, "name", "n", "journal.txt", "Journal name; supports {{date}}, {{time}} and {{unix}}")
	c.Flags().StringVar(&store, "store", "", "Journal store: text|sqlite (defaults to solid.yaml)")
	return c
}

func renderJournalName(name string, now time.Time) (string, error) {
	out, err := template.RenderString(strings.TrimSpace(name), template.TimeVars(now))
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", &domain.OpError{
			Op:   "cli.journal_name",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("journal name is required: %w", domain.ErrInvalidArgument),
		}
	}
	return out, nil
}
