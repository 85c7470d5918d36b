package main

import (
	"fmt"
	"io"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"viciolinks/internal/config"
	"viciolinks/internal/config/configs"
	"viciolinks/internal/console"
	"viciolinks/internal/logger"
)

// app carries what every command needs. Tests inject client and store
// directly; otherwise they are built from VICIOLINKS_ variables.
type app struct {
	apiURL string

	logger *zap.Logger
	client *console.Client
	store  *console.Store
	now    func() time.Time
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if a.now == nil {
		a.now = time.Now
	}
	if a.client != nil {
		return nil
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.apiURL != "" {
		u, err := url.Parse(a.apiURL)
		if err != nil {
			return fmt.Errorf("invalid --api-url: %w", err)
		}
		cfg.APIURL = *u
	}

	if a.logger, err = logger.NewStderr(configs.Logger{Level: cfg.LogLevel}); err != nil {
		return err
	}

	path := cfg.TokenFile
	if path == "" {
		if path, err = console.DefaultTokenPath(); err != nil {
			return err
		}
	}
	a.client = console.NewClient(cfg, console.FileTokenStore{Path: path}, a.logger)
	a.store = console.NewStore(a.client)
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "linkctl",
		Short:             "Manage campaign taxonomy and UTM tracking links",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Backend URL (overrides VICIOLINKS_API_URL)")

	root.AddCommand(
		newLoginCmd(a), newLogoutCmd(a), newWhoamiCmd(a),
		newTaxonomyCmd(a),
		newSourcesCmd(a),
		newOptionCmd(a, "mediums", "medium", optionOps{
			add: (*console.Store).AddMedium, update: (*console.Store).UpdateMedium, remove: (*console.Store).RemoveMedium,
		}),
		newOptionCmd(a, "contents", "content", optionOps{
			add: (*console.Store).AddContent, update: (*console.Store).UpdateContent, remove: (*console.Store).RemoveContent,
		}),
		newOptionsCmd(a),
		newCampaignCmd(a),
		newLinksCmd(a),
		newUsersCmd(a),
	)
	return root
}

func table(w io.Writer, header string, rows func(tw io.Writer)) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}
