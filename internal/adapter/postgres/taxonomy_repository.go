package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viciolinks/internal/core/domain"
)

var kindTables = map[domain.TaxonomyKind]string{
	domain.KindProducts:    "products",
	domain.KindTurmas:      "turmas",
	domain.KindLaunchTypes: "launch_types",
}

// TaxonomyRepository implements port.TaxonomyRepository using pgxpool for PostgreSQL.
type TaxonomyRepository struct {
	pool *pgxpool.Pool
}

// NewTaxonomyRepository returns a new repository instance.
func NewTaxonomyRepository(pool *pgxpool.Pool) *TaxonomyRepository {
	return &TaxonomyRepository{pool: pool}
}

func tableFor(kind domain.TaxonomyKind) (string, error) {
	table, ok := kindTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown taxonomy kind %q", kind)
	}
	return table, nil
}

// ListItems returns every item of a kind ordered by slug.
func (r *TaxonomyRepository) ListItems(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyItem, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT slug, name FROM %s ORDER BY slug`, table))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TaxonomyItem, error) {
		var it domain.TaxonomyItem
		err := row.Scan(&it.Slug, &it.Name)
		return it, err
	})
}

func (r *TaxonomyRepository) UpsertItem(ctx context.Context, kind domain.TaxonomyKind, item domain.TaxonomyItem) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (slug, name) VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name`, table), item.Slug, item.Name)
	return err
}

func (r *TaxonomyRepository) DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE slug = $1`, table), slug)
	return err
}

// ListSourceConfigs returns the source documents. A NULL config column is
// returned as a nil Config.
func (r *TaxonomyRepository) ListSourceConfigs(ctx context.Context) ([]domain.SourceConfig, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug, name, config FROM source_configs ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SourceConfig, error) {
		var (
			src domain.SourceConfig
			raw []byte
		)
		if err := row.Scan(&src.Slug, &src.Name, &raw); err != nil {
			return src, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &src.Config); err != nil {
				return src, fmt.Errorf("decode config of source %s: %w", src.Slug, err)
			}
		}
		return src, nil
	})
}

func (r *TaxonomyRepository) UpsertSourceConfig(ctx context.Context, src domain.SourceConfig) error {
	var raw []byte
	if src.Config != nil {
		var err error
		if raw, err = json.Marshal(src.Config); err != nil {
			return err
		}
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO source_configs (slug, name, config) VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, config = EXCLUDED.config`, src.Slug, src.Name, raw)
	return err
}

func (r *TaxonomyRepository) DeleteSourceConfig(ctx context.Context, slug string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM source_configs WHERE slug = $1`, slug)
	return err
}

func (r *TaxonomyRepository) ListLaunches(ctx context.Context) ([]domain.Launch, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug, name, owner, status, starts_at, ends_at FROM launches ORDER BY created_at DESC, slug`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Launch, error) {
		var l domain.Launch
		err := row.Scan(&l.Slug, &l.Name, &l.Owner, &l.Status, &l.StartsAt, &l.EndsAt)
		return l, err
	})
}

func (r *TaxonomyRepository) UpsertLaunch(ctx context.Context, launch domain.Launch) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO launches (slug, name, owner, status, starts_at, ends_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, owner = EXCLUDED.owner, status = EXCLUDED.status,
    starts_at = EXCLUDED.starts_at, ends_at = EXCLUDED.ends_at`,
		launch.Slug, launch.Name, launch.Owner, launch.Status, launch.StartsAt, launch.EndsAt)
	return err
}

func (r *TaxonomyRepository) DeleteLaunch(ctx context.Context, slug string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM launches WHERE slug = $1`, slug)
	return err
}
