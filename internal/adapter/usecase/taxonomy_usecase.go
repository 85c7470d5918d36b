package usecase

import (
	"context"
	"fmt"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
	"viciolinks/internal/core/utm"
)

// TaxonomyUseCase manages products, turmas, launch types, source
// documents and launches. Writes replace whole records; there is no
// conflict detection between concurrent editors.
type TaxonomyUseCase struct {
	repo port.TaxonomyRepository
}

// NewTaxonomyUseCase creates a new usecase with the provided repository.
func NewTaxonomyUseCase(repo port.TaxonomyRepository) *TaxonomyUseCase {
	return &TaxonomyUseCase{repo: repo}
}

func checkKind(kind domain.TaxonomyKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown taxonomy %q", port.ErrInvalidInput, kind)
	}
	return nil
}

func (u *TaxonomyUseCase) ListItems(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyItem, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return u.repo.ListItems(ctx, kind)
}

func (u *TaxonomyUseCase) SaveItem(ctx context.Context, kind domain.TaxonomyKind, item domain.TaxonomyItem) (domain.TaxonomyItem, error) {
	if err := checkKind(kind); err != nil {
		return item, err
	}
	if err := u.repo.UpsertItem(ctx, kind, item); err != nil {
		return item, fmt.Errorf("save %s %s: %w", kind, item.Slug, err)
	}
	return item, nil
}

func (u *TaxonomyUseCase) DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return u.repo.DeleteItem(ctx, kind, slug)
}

func (u *TaxonomyUseCase) ListSourceConfigs(ctx context.Context) ([]domain.SourceConfig, error) {
	return u.repo.ListSourceConfigs(ctx)
}

// SaveSourceConfig replaces the stored document, nested mediums and
// contents included. Medium and content slugs must be unique within the
// document.
func (u *TaxonomyUseCase) SaveSourceConfig(ctx context.Context, src domain.SourceConfig) (domain.SourceConfig, error) {
	if src.Config != nil {
		if slug, dup := domain.DuplicateOption(src.Config.Mediums); dup {
			return src, fmt.Errorf("%w: duplicate medium %s", port.ErrInvalidInput, slug)
		}
		if slug, dup := domain.DuplicateOption(src.Config.Contents); dup {
			return src, fmt.Errorf("%w: duplicate content %s", port.ErrInvalidInput, slug)
		}
	}
	if err := u.repo.UpsertSourceConfig(ctx, src); err != nil {
		return src, fmt.Errorf("save source %s: %w", src.Slug, err)
	}
	return src, nil
}

func (u *TaxonomyUseCase) DeleteSourceConfig(ctx context.Context, slug string) error {
	return u.repo.DeleteSourceConfig(ctx, slug)
}

func (u *TaxonomyUseCase) ListLaunches(ctx context.Context) ([]domain.Launch, error) {
	return u.repo.ListLaunches(ctx)
}

// SaveLaunch normalises a compact _MMYY suffix and defaults the status to
// active. Saving the same slug twice overwrites the first launch.
func (u *TaxonomyUseCase) SaveLaunch(ctx context.Context, launch domain.Launch) (domain.Launch, error) {
	launch.Slug = utm.NormalizeCampaign(launch.Slug)
	if launch.Status == "" {
		launch.Status = domain.LaunchActive
	}
	if err := u.repo.UpsertLaunch(ctx, launch); err != nil {
		return launch, fmt.Errorf("save launch %s: %w", launch.Slug, err)
	}
	return launch, nil
}

func (u *TaxonomyUseCase) DeleteLaunch(ctx context.Context, slug string) error {
	return u.repo.DeleteLaunch(ctx, slug)
}
