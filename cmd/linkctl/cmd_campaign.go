package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"viciolinks/internal/core/utm"
)

func bindCampaignParts(cmd *cobra.Command, p *utm.CampaignParts) {
	cmd.Flags().StringVar(&p.Product, "product", "", "Product slug")
	cmd.Flags().StringVar(&p.Cohort, "turma", "", "Turma slug")
	cmd.Flags().StringVar(&p.LaunchType, "type", "", "Launch type slug")
	cmd.Flags().StringVar(&p.Month, "month", "", "Two-digit month, e.g. 03")
	cmd.Flags().StringVar(&p.Year, "year", "", "Four-digit year")
}

func newCampaignCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Build and manage launches",
	}

	var previewParts utm.CampaignParts
	preview := &cobra.Command{
		Use:   "preview",
		Short: "Print the campaign slug the selections produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), utm.CampaignPreview(previewParts))
			return nil
		},
	}
	bindCampaignParts(preview, &previewParts)

	var (
		parts utm.CampaignParts
		name  string
		owner string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a launch from the selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := utm.CampaignSlug(parts); err != nil {
				return err
			}
			if owner == "" {
				me, err := a.client.Me(cmd.Context())
				if err != nil {
					return err
				}
				owner = me.Username
			}
			launch, err := a.store.CreateLaunch(cmd.Context(), parts, name, owner)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created launch %s\n", launch.Slug)
			return nil
		},
	}
	bindCampaignParts(create, &parts)
	create.Flags().StringVar(&name, "name", "", "Display name, defaults to the slug")
	create.Flags().StringVar(&owner, "owner", "", "Owner, defaults to the logged in user")

	list := &cobra.Command{
		Use:   "list",
		Short: "List launches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			launches, err := a.client.ListLaunches(cmd.Context())
			if err != nil {
				return err
			}
			return table(cmd.OutOrStdout(), "SLUG\tNAME\tOWNER\tSTATUS", func(w io.Writer) {
				for _, l := range launches {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Slug, l.Name, l.Owner, l.Status)
				}
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a launch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store.DeleteLaunch(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(preview, create, list, del)
	return cmd
}
