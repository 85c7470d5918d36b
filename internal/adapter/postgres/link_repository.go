package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
)

const linkCounterName = "links"

const linkColumns = `id, link_type, base_url, path, full_url, utm_source, utm_medium, utm_campaign,
    utm_content, utm_term, src, sck, xcode, custom_params, notes, created_by, created_at, status`

// LinkRepository implements port.LinkRepository using pgxpool for PostgreSQL.
type LinkRepository struct {
	pool *pgxpool.Pool
}

// NewLinkRepository returns a new repository instance.
func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

// NextLinkNumber increments the link counter in a single statement so
// concurrent generators never share a number.
func (r *LinkRepository) NextLinkNumber(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `INSERT INTO link_counter (name, count) VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET count = link_counter.count + 1
RETURNING count`, linkCounterName).Scan(&n)
	return n, err
}

// CreateLink inserts the link and its audit record in one transaction.
func (r *LinkRepository) CreateLink(ctx context.Context, link domain.Link, audit domain.Audit) (err error) {
	custom, err := json.Marshal(link.CustomParams)
	if err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO links (`+linkColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		link.ID, link.LinkType, link.BaseURL, link.Path, link.FullURL,
		link.UTMSource, link.UTMMedium, link.UTMCampaign, link.UTMContent, link.UTMTerm,
		link.Src, link.Sck, link.Xcode, custom, link.Notes,
		link.CreatedBy, link.CreatedAt, link.Status)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO audits (event_id, link_id, actor, action, created_at) VALUES ($1,$2,$3,$4,$5)`,
		audit.EventID, audit.LinkID, audit.Actor, audit.Action, audit.CreatedAt)
	return err
}

// linkWhere renders the WHERE clause of q and its positional arguments.
func linkWhere(q port.LinkQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("utm_campaign", q.Campaign)
	add("utm_source", q.Source)
	add("utm_medium", q.Medium)
	add("link_type", string(q.LinkType))
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListLinks returns links newest first.
func (r *LinkRepository) ListLinks(ctx context.Context, q port.LinkQuery) ([]domain.Link, error) {
	where, args := linkWhere(q)
	query := `SELECT ` + linkColumns + ` FROM links` + where + ` ORDER BY created_at DESC, id DESC`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Link, error) {
		var (
			l      domain.Link
			custom []byte
		)
		err := row.Scan(&l.ID, &l.LinkType, &l.BaseURL, &l.Path, &l.FullURL,
			&l.UTMSource, &l.UTMMedium, &l.UTMCampaign, &l.UTMContent, &l.UTMTerm,
			&l.Src, &l.Sck, &l.Xcode, &custom, &l.Notes,
			&l.CreatedBy, &l.CreatedAt, &l.Status)
		if err != nil {
			return l, err
		}
		l.CustomParams = map[string]string{}
		if len(custom) > 0 {
			if err = json.Unmarshal(custom, &l.CustomParams); err != nil {
				return l, fmt.Errorf("decode custom params of %s: %w", l.ID, err)
			}
		}
		return l, nil
	})
}

// DeleteLink removes a link. Its audit records are kept.
func (r *LinkRepository) DeleteLink(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
