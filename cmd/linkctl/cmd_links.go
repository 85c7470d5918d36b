package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"viciolinks/internal/console"
	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/utm"
)

func bindFilter(cmd *cobra.Command, f *domain.LinkFilter) {
	cmd.Flags().StringVar(&f.Search, "search", "", "Match against id and full URL")
	cmd.Flags().StringVar(&f.Campaign, "campaign", "", "Exact utm_campaign")
	cmd.Flags().StringVar(&f.Source, "source", "", "Exact utm_source")
	cmd.Flags().StringVar(&f.Medium, "medium", "", "Exact utm_medium")
	cmd.Flags().StringVar(&f.Content, "content", "", "Exact utm_content")
	cmd.Flags().StringVar(&f.Term, "term", "", "Substring of utm_term")
}

func newLinksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Generate, list and export tracking links",
	}
	cmd.AddCommand(newGenerateCmd(a), newListLinksCmd(a), newExportCmd(a), &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store.DeleteLink(cmd.Context(), args[0])
		},
	})
	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		form     console.LinkForm
		linkType string
		date     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tracking link",
		Long: `Generate a tracking link. The medium and content must be options of the
chosen source. Standard sources suffix --term with the send date
(--date, default today) as DD-MM-YYYY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form.LinkType = domain.LinkType(linkType)
			if !form.LinkType.Valid() {
				return fmt.Errorf("--type must be %s or %s", domain.LinkCaptacao, domain.LinkVendas)
			}
			if date != "" {
				d, err := time.Parse(utm.TermDateLayout, date)
				if err != nil {
					return fmt.Errorf("--date must be DD-MM-YYYY: %w", err)
				}
				form.Date = &d
			}

			if err := a.store.RefreshSources(cmd.Context()); err != nil {
				return err
			}
			if _, ok := a.store.Source(form.Source); !ok {
				return fmt.Errorf("%w: %s", console.ErrUnknownSource, form.Source)
			}
			sel := console.NewSelector(a.store)
			sel.SelectSource(form.Source)
			if err := errors.Join(sel.SelectMedium(form.Medium), sel.SelectContent(form.Content)); err != nil {
				return err
			}

			link, err := a.store.GenerateLink(cmd.Context(), form, a.now())
			if err != nil && link == nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", link.ID, link.FullURL)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&linkType, "type", string(domain.LinkCaptacao), "Link type: captacao or vendas")
	f.StringVar(&form.BaseURL, "base-url", "", "Landing page origin")
	f.StringVar(&form.Path, "path", "", "Landing page path")
	f.StringVar(&form.Source, "source", "", "Source slug")
	f.StringVar(&form.Medium, "medium", "", "Medium slug")
	f.StringVar(&form.Content, "content", "", "Content slug")
	f.StringVar(&form.Campaign, "campaign", "", "Launch slug")
	f.StringVar(&form.Term, "term", "", "Term detail")
	f.StringVar(&date, "date", "", "Send date DD-MM-YYYY, default today")
	f.StringToStringVar(&form.CustomParams, "param", nil, "Extra query parameter key=value, repeatable")
	f.StringVar(&form.Notes, "notes", "", "Free-text notes")
	for _, name := range []string{"base-url", "source", "medium", "campaign"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newListLinksCmd(a *app) *cobra.Command {
	var filter domain.LinkFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.RefreshLinks(cmd.Context()); err != nil {
				return err
			}
			links := a.store.FilterLinks(filter)
			return table(cmd.OutOrStdout(), "ID\tCAMPAIGN\tSOURCE\tMEDIUM\tCONTENT\tTERM\tURL", func(w io.Writer) {
				for _, l := range links {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						l.ID, l.UTMCampaign, l.UTMSource, l.UTMMedium, l.UTMContent, l.UTMTerm, l.FullURL)
				}
			})
		},
	}
	bindFilter(cmd, &filter)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		filter domain.LinkFilter
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered links to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.RefreshLinks(cmd.Context()); err != nil {
				return err
			}
			path, err := console.Export(dir, a.store.FilterLinks(filter), a.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	bindFilter(cmd, &filter)
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory the CSV file is written to")
	return cmd
}
