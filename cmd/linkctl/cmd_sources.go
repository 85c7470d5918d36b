package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"viciolinks/internal/console"
	"viciolinks/internal/core/domain"
)

func newSourcesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage traffic sources and their configuration",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, err := a.client.ListSourceConfigs(cmd.Context())
			if err != nil {
				return err
			}
			return table(cmd.OutOrStdout(), "SLUG\tNAME\tTERM\tMEDIUMS\tCONTENTS", func(w io.Writer) {
				for _, s := range sources {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", s.Slug, s.Name, s.TermMode(), len(s.MediumOptions()), len(s.ContentOptions()))
				}
			})
		},
	}

	var (
		term       string
		renameFrom string
	)
	save := &cobra.Command{
		Use:   "save <slug> <name>",
		Short: "Create a source or edit its name and term mode",
		Long: `Create a source or edit its name and term mode. Mediums and contents of
an edited source are kept. Standard sources suffix terms with the send
date; custom sources use the term as typed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := domain.TermConfig(term)
			if mode != domain.TermStandard && mode != domain.TermCustom {
				return fmt.Errorf("--term must be %s or %s", domain.TermStandard, domain.TermCustom)
			}
			if err := a.store.RefreshSources(cmd.Context()); err != nil {
				return err
			}
			old := renameFrom
			if old == "" {
				old = args[0]
			}
			return a.store.SaveSource(cmd.Context(), old, console.SourceInput{Slug: args[0], Name: args[1], TermConfig: mode})
		},
	}
	save.Flags().StringVar(&term, "term", string(domain.TermStandard), "Term mode: standard or custom")
	save.Flags().StringVar(&renameFrom, "rename-from", "", "Slug of the source being renamed")

	del := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store.DeleteSource(cmd.Context(), args[0])
		},
	}

	var file string
	apply := &cobra.Command{
		Use:   "apply -f <file.yaml>",
		Short: "Create or replace sources from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := console.LoadSourceFile(file)
			if err != nil {
				return err
			}
			if err = a.store.ApplySources(cmd.Context(), docs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d sources\n", len(docs))
			return nil
		},
	}
	apply.Flags().StringVarP(&file, "file", "f", "", "YAML file with a sources list")
	_ = apply.MarkFlagRequired("file")

	cmd.AddCommand(list, save, del, apply)
	return cmd
}

type optionOps struct {
	add    func(*console.Store, context.Context, string, domain.Option) error
	update func(*console.Store, context.Context, string, string, domain.Option) error
	remove func(*console.Store, context.Context, string, string) error
}

// newOptionCmd builds the add/update/remove commands of mediums or
// contents. Every change posts the whole source document.
func newOptionCmd(a *app, use, noun string, ops optionOps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Manage the %s of a source", use),
	}

	add := &cobra.Command{
		Use:   "add <source> <slug> <name>",
		Short: "Add a " + noun,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.sourcesLoaded(cmd.Context())
			if err != nil {
				return err
			}
			return ops.add(store, cmd.Context(), args[0], domain.Option{Slug: args[1], Name: args[2]})
		},
	}
	update := &cobra.Command{
		Use:   "update <source> <old-slug> <slug> <name>",
		Short: "Rename a " + noun,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.sourcesLoaded(cmd.Context())
			if err != nil {
				return err
			}
			return ops.update(store, cmd.Context(), args[0], args[1], domain.Option{Slug: args[2], Name: args[3]})
		},
	}
	remove := &cobra.Command{
		Use:   "remove <source> <slug>",
		Short: "Remove a " + noun,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.sourcesLoaded(cmd.Context())
			if err != nil {
				return err
			}
			return ops.remove(store, cmd.Context(), args[0], args[1])
		},
	}

	cmd.AddCommand(add, update, remove)
	return cmd
}

func (a *app) sourcesLoaded(ctx context.Context) (*console.Store, error) {
	if err := a.store.RefreshSources(ctx); err != nil {
		return nil, err
	}
	return a.store, nil
}

// newOptionsCmd previews the cascading selection for a source.
func newOptionsCmd(a *app) *cobra.Command {
	var medium, content string
	cmd := &cobra.Command{
		Use:   "options <source>",
		Short: "Show the mediums and contents offered for a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.sourcesLoaded(cmd.Context())
			if err != nil {
				return err
			}
			sel := console.NewSelector(store)
			sel.SelectSource(args[0])
			if err = errors.Join(sel.SelectMedium(medium), sel.SelectContent(content)); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printOptions(out, "mediums", sel.MediumOptions(), sel.Medium())
			printOptions(out, "contents", sel.ContentOptions(), sel.Content())
			return nil
		},
	}
	cmd.Flags().StringVar(&medium, "medium", "", "Medium to validate against the source")
	cmd.Flags().StringVar(&content, "content", "", "Content to validate against the source")
	return cmd
}

func printOptions(w io.Writer, title string, opts []domain.Option, selected string) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, o := range opts {
		mark := " "
		if o.Slug == selected && selected != "" {
			mark = "*"
		}
		if o.Slug == "" {
			fmt.Fprintf(w, " %s %s\n", mark, o.Name)
			continue
		}
		fmt.Fprintf(w, " %s %s (%s)\n", mark, o.Name, o.Slug)
	}
}
