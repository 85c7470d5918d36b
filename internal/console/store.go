package console

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
	"viciolinks/internal/core/utm"
)

// Store is the console's in-memory copy of the catalogue and the link
// list. It is fetched wholesale and edited in place: source edits mutate
// the cached document and then post it whole. A failed save leaves the
// local copy mutated until the next Refresh.
//
// A Store serves a single operator and is not safe for concurrent use.
type Store struct {
	client *Client

	items    map[domain.TaxonomyKind][]domain.TaxonomyItem
	sources  []domain.SourceConfig
	launches []domain.Launch
	links    []domain.Link
}

// NewStore returns an empty store. Call Refresh to fill it.
func NewStore(client *Client) *Store {
	return &Store{client: client, items: map[domain.TaxonomyKind][]domain.TaxonomyItem{}}
}

// Refresh fetches every collection concurrently. The cache is only
// replaced when all fetches succeed.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		items    = make([][]domain.TaxonomyItem, len(domain.TaxonomyKinds))
		sources  []domain.SourceConfig
		launches []domain.Launch
		links    []domain.Link
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range domain.TaxonomyKinds {
		i, kind := i, kind
		g.Go(func() error {
			var err error
			items[i], err = s.client.ListItems(gctx, kind)
			return err
		})
	}
	g.Go(func() error {
		var err error
		sources, err = s.client.ListSourceConfigs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		launches, err = s.client.ListLaunches(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.client.ListLinks(gctx, port.LinkQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for i, kind := range domain.TaxonomyKinds {
		s.items[kind] = items[i]
	}
	s.sources, s.launches, s.links = sources, launches, links
	return nil
}

// RefreshSources refetches the source documents only.
func (s *Store) RefreshSources(ctx context.Context) error {
	sources, err := s.client.ListSourceConfigs(ctx)
	if err != nil {
		return err
	}
	s.sources = sources
	return nil
}

// RefreshLinks refetches the link list only.
func (s *Store) RefreshLinks(ctx context.Context) error {
	links, err := s.client.ListLinks(ctx, port.LinkQuery{})
	if err != nil {
		return err
	}
	s.links = links
	return nil
}

func (s *Store) Items(kind domain.TaxonomyKind) []domain.TaxonomyItem { return s.items[kind] }
func (s *Store) Sources() []domain.SourceConfig                      { return s.sources }
func (s *Store) Launches() []domain.Launch                           { return s.launches }
func (s *Store) Links() []domain.Link                                { return s.links }

// Source returns a copy of the cached source document.
func (s *Store) Source(slug string) (domain.SourceConfig, bool) {
	src := s.source(slug)
	if src == nil {
		return domain.SourceConfig{}, false
	}
	return src.Clone(), true
}

func (s *Store) source(slug string) *domain.SourceConfig {
	for i := range s.sources {
		if s.sources[i].Slug == slug {
			return &s.sources[i]
		}
	}
	return nil
}

func (s *Store) mustSource(slug string) (*domain.SourceConfig, error) {
	src := s.source(slug)
	if src == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, slug)
	}
	return src, nil
}

// persist posts the whole cached document and refetches the sources.
func (s *Store) persist(ctx context.Context, src *domain.SourceConfig) error {
	if err := s.client.SaveSourceConfig(ctx, *src); err != nil {
		return err
	}
	return s.RefreshSources(ctx)
}

// SourceInput holds the top-level fields of a source document.
type SourceInput struct {
	Slug       string
	Name       string
	TermConfig domain.TermConfig
}

// SaveSource creates a source, or edits the one stored under oldSlug while
// keeping its mediums and contents. A changed slug posts the new document
// first and then deletes the old one.
func (s *Store) SaveSource(ctx context.Context, oldSlug string, in SourceInput) error {
	if in.TermConfig == "" {
		in.TermConfig = domain.TermStandard
	}
	doc := domain.NewSourceConfig(in.Slug, in.Name, in.TermConfig)
	if existing := s.source(oldSlug); existing != nil {
		edited := existing.Clone()
		cfg := edited.EnsureConfig()
		cfg.TermConfig = in.TermConfig
		cfg.RequiredFields = doc.Config.RequiredFields
		doc.Config = cfg
	}

	if err := s.client.SaveSourceConfig(ctx, doc); err != nil {
		return err
	}
	if oldSlug != "" && oldSlug != in.Slug && s.source(oldSlug) != nil {
		if err := s.client.DeleteSourceConfig(ctx, oldSlug); err != nil {
			return err
		}
	}
	return s.RefreshSources(ctx)
}

// DeleteSource removes a source document.
func (s *Store) DeleteSource(ctx context.Context, slug string) error {
	if err := s.client.DeleteSourceConfig(ctx, slug); err != nil {
		return err
	}
	return s.RefreshSources(ctx)
}

// ApplySources posts every document in order, stopping at the first
// failure.
func (s *Store) ApplySources(ctx context.Context, docs []domain.SourceConfig) error {
	for _, doc := range docs {
		if err := s.client.SaveSourceConfig(ctx, doc); err != nil {
			return fmt.Errorf("apply source %s: %w", doc.Slug, err)
		}
	}
	return s.RefreshSources(ctx)
}

func mediums(cfg *domain.SourceSettings) *[]domain.Option  { return &cfg.Mediums }
func contents(cfg *domain.SourceSettings) *[]domain.Option { return &cfg.Contents }

func (s *Store) addOption(ctx context.Context, sourceSlug string, list func(*domain.SourceSettings) *[]domain.Option, opt domain.Option) error {
	src, err := s.mustSource(sourceSlug)
	if err != nil {
		return err
	}
	opts := list(src.EnsureConfig())
	if domain.HasOption(*opts, opt.Slug) {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, opt.Slug)
	}
	*opts = append(*opts, opt)
	return s.persist(ctx, src)
}

func (s *Store) updateOption(ctx context.Context, sourceSlug string, list func(*domain.SourceSettings) *[]domain.Option, oldSlug string, opt domain.Option) error {
	src, err := s.mustSource(sourceSlug)
	if err != nil {
		return err
	}
	opts := list(src.EnsureConfig())
	idx := domain.FindOption(*opts, oldSlug)
	if idx < 0 {
		return fmt.Errorf("%w %q", ErrUnknownOption, oldSlug)
	}
	if opt.Slug != oldSlug && domain.HasOption(*opts, opt.Slug) {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, opt.Slug)
	}
	(*opts)[idx] = opt
	return s.persist(ctx, src)
}

func (s *Store) removeOption(ctx context.Context, sourceSlug string, list func(*domain.SourceSettings) *[]domain.Option, slug string) error {
	src, err := s.mustSource(sourceSlug)
	if err != nil {
		return err
	}
	opts := list(src.EnsureConfig())
	idx := domain.FindOption(*opts, slug)
	if idx < 0 {
		return fmt.Errorf("%w %q", ErrUnknownOption, slug)
	}
	*opts = slices.Delete(*opts, idx, idx+1)
	return s.persist(ctx, src)
}

func (s *Store) AddMedium(ctx context.Context, source string, opt domain.Option) error {
	return s.addOption(ctx, source, mediums, opt)
}

func (s *Store) UpdateMedium(ctx context.Context, source, oldSlug string, opt domain.Option) error {
	return s.updateOption(ctx, source, mediums, oldSlug, opt)
}

func (s *Store) RemoveMedium(ctx context.Context, source, slug string) error {
	return s.removeOption(ctx, source, mediums, slug)
}

func (s *Store) AddContent(ctx context.Context, source string, opt domain.Option) error {
	return s.addOption(ctx, source, contents, opt)
}

func (s *Store) UpdateContent(ctx context.Context, source, oldSlug string, opt domain.Option) error {
	return s.updateOption(ctx, source, contents, oldSlug, opt)
}

func (s *Store) RemoveContent(ctx context.Context, source, slug string) error {
	return s.removeOption(ctx, source, contents, slug)
}

// SaveItem upserts a taxonomy item. A changed slug deletes the item stored
// under oldSlug after the new one is saved.
func (s *Store) SaveItem(ctx context.Context, kind domain.TaxonomyKind, oldSlug string, item domain.TaxonomyItem) error {
	if err := s.client.SaveItem(ctx, kind, item); err != nil {
		return err
	}
	if oldSlug != "" && oldSlug != item.Slug {
		if err := s.client.DeleteItem(ctx, kind, oldSlug); err != nil {
			return err
		}
	}
	return s.refreshItems(ctx, kind)
}

func (s *Store) DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error {
	if err := s.client.DeleteItem(ctx, kind, slug); err != nil {
		return err
	}
	return s.refreshItems(ctx, kind)
}

func (s *Store) refreshItems(ctx context.Context, kind domain.TaxonomyKind) error {
	items, err := s.client.ListItems(ctx, kind)
	if err != nil {
		return err
	}
	s.items[kind] = items
	return nil
}

// CreateLaunch builds the launch slug from parts and saves the launch.
// Nothing is sent while any part is missing.
func (s *Store) CreateLaunch(ctx context.Context, parts utm.CampaignParts, name, owner string) (*domain.Launch, error) {
	slug, err := utm.CampaignSlug(parts)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = slug
	}
	saved, err := s.client.SaveLaunch(ctx, domain.Launch{Slug: slug, Name: name, Owner: owner, Status: domain.LaunchActive})
	if err != nil {
		return nil, err
	}
	launches, err := s.client.ListLaunches(ctx)
	if err != nil {
		return saved, err
	}
	s.launches = launches
	return saved, nil
}

func (s *Store) DeleteLaunch(ctx context.Context, slug string) error {
	if err := s.client.DeleteLaunch(ctx, slug); err != nil {
		return err
	}
	launches, err := s.client.ListLaunches(ctx)
	if err != nil {
		return err
	}
	s.launches = launches
	return nil
}

// LinkForm is what the operator fills in to generate a link.
type LinkForm struct {
	LinkType domain.LinkType
	BaseURL  string
	Path     string
	Source   string
	Medium   string
	Content  string
	Campaign string
	// Term is the free-text detail. Standard sources suffix it with the
	// date; other sources send it unchanged.
	Term string
	// Date is the chosen send day. Nil means today.
	Date         *time.Time
	CustomParams map[string]string
	Notes        string
}

// LinkRequest builds the generate payload for form. The date is always
// sent as the auxiliary date field, whatever the source's term mode.
func (s *Store) LinkRequest(form LinkForm, now time.Time) domain.LinkRequest {
	src, _ := s.Source(form.Source)
	date := utm.TermDate(form.Date, now)

	req := domain.LinkRequest{
		LinkType:      form.LinkType,
		BaseURL:       form.BaseURL,
		Path:          form.Path,
		UTMSource:     form.Source,
		UTMMedium:     form.Medium,
		UTMCampaign:   form.Campaign,
		UTMContent:    form.Content,
		UTMTerm:       utm.ComposeTerm(src.TermMode(), form.Term, date),
		CustomParams:  form.CustomParams,
		DynamicFields: map[string]string{domain.FieldDate: utm.FormatTermDate(date)},
	}
	if form.Notes != "" {
		req.Notes = &form.Notes
	}
	return req
}

// GenerateLink posts the link built from form and refreshes the link list.
func (s *Store) GenerateLink(ctx context.Context, form LinkForm, now time.Time) (*domain.Link, error) {
	link, err := s.client.GenerateLink(ctx, s.LinkRequest(form, now))
	if err != nil {
		return nil, err
	}
	if err = s.RefreshLinks(ctx); err != nil {
		return link, err
	}
	return link, nil
}

func (s *Store) DeleteLink(ctx context.Context, id string) error {
	if err := s.client.DeleteLink(ctx, id); err != nil {
		return err
	}
	return s.RefreshLinks(ctx)
}

// FilterLinks returns the cached links matching f.
func (s *Store) FilterLinks(f domain.LinkFilter) []domain.Link {
	return f.Apply(s.links)
}
