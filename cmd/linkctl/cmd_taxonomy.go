package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"viciolinks/internal/core/domain"
)

func kindArg(s string) (domain.TaxonomyKind, error) {
	kind := domain.TaxonomyKind(s)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown taxonomy %q, expected one of %v", s, domain.TaxonomyKinds)
	}
	return kind, nil
}

func newTaxonomyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Manage products, turmas and launch types",
	}

	list := &cobra.Command{
		Use:   "list <products|turmas|launch-types>",
		Short: "List the items of a taxonomy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args[0])
			if err != nil {
				return err
			}
			items, err := a.client.ListItems(cmd.Context(), kind)
			if err != nil {
				return err
			}
			return table(cmd.OutOrStdout(), "SLUG\tNAME", func(w io.Writer) {
				for _, it := range items {
					fmt.Fprintf(w, "%s\t%s\n", it.Slug, it.Name)
				}
			})
		},
	}

	var renameFrom string
	save := &cobra.Command{
		Use:   "save <kind> <slug> <name>",
		Short: "Create or replace an item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args[0])
			if err != nil {
				return err
			}
			return a.store.SaveItem(cmd.Context(), kind, renameFrom, domain.TaxonomyItem{Slug: args[1], Name: args[2]})
		},
	}
	save.Flags().StringVar(&renameFrom, "rename-from", "", "Slug of the item being renamed")

	del := &cobra.Command{
		Use:   "delete <kind> <slug>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args[0])
			if err != nil {
				return err
			}
			return a.store.DeleteItem(cmd.Context(), kind, args[1])
		},
	}

	cmd.AddCommand(list, save, del)
	return cmd
}
