package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viciolinks/internal/core/domain"
)

type seedMedium struct {
	domain.Option
	contents []domain.Option
}

type seedSource struct {
	slug, name string
	term       domain.TermConfig
	mediums    []seedMedium
}

func opt(slug, name string) domain.Option { return domain.Option{Slug: slug, Name: name} }

var defaultSources = []seedSource{
	{"email", "Email", domain.TermStandard, []seedMedium{
		{opt("newsletter", "Newsletter"), []domain.Option{opt("lista_atual", "Lista Atual"), opt("lista_antiga", "Lista Antiga")}},
		{opt("marketing", "Marketing"), []domain.Option{opt("ex_alunos", "Ex Alunos"), opt("engajados", "Engajados")}},
	}},
	{"whatsapp", "WhatsApp", domain.TermStandard, []seedMedium{
		{opt("grupos", "Grupos"), []domain.Option{opt("grupos_antigos", "Grupos Antigos"), opt("grupos_atuais", "Grupos Atuais")}},
		{opt("api", "API"), []domain.Option{opt("ex-alunos", "Ex-Alunos"), opt("lista_lanc_atual", "Lista Lançamento Atual")}},
	}},
	{"site", "Site", domain.TermCustom, []seedMedium{
		{opt("site_institucional", "Institucional"), []domain.Option{opt("banner", "Banner"), opt("cupom_exclusivo", "Cupom Exclusivo")}},
	}},
}

var defaultItems = map[string][]domain.TaxonomyItem{
	"products":     {{Slug: "vde1f", Name: "VDE1F"}},
	"turmas":       {{Slug: "120d", Name: "120d"}},
	"launch_types": {{Slug: "passariano", Name: "Passariano"}, {Slug: "evento", Name: "Evento"}},
}

// DefaultSourceConfigs returns the source documents a fresh installation
// starts with. Contents belong to the source, so the contents of every
// medium are merged into one list.
func DefaultSourceConfigs() []domain.SourceConfig {
	out := make([]domain.SourceConfig, 0, len(defaultSources))
	for _, s := range defaultSources {
		src := domain.NewSourceConfig(s.slug, s.name, s.term)
		for _, m := range s.mediums {
			src.Config.Mediums = append(src.Config.Mediums, m.Option)
			src.Config.Contents = append(src.Config.Contents, m.contents...)
		}
		out = append(out, src)
	}
	return out
}

// Seed fills every empty catalogue table with the default catalogue.
// Tables that already hold rows are left alone.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	batch := &pgx.Batch{}

	empty, err := isEmpty(ctx, db, "source_configs")
	if err != nil {
		return err
	}
	if empty {
		for _, src := range DefaultSourceConfigs() {
			raw, err := json.Marshal(src.Config)
			if err != nil {
				return err
			}
			batch.Queue(`INSERT INTO source_configs (slug, name, config) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				src.Slug, src.Name, raw)
		}
	}

	for table, items := range defaultItems {
		if empty, err = isEmpty(ctx, db, table); err != nil {
			return err
		}
		if !empty {
			continue
		}
		for _, it := range items {
			batch.Queue(fmt.Sprintf(`INSERT INTO %s (slug, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table), it.Slug, it.Name)
		}
	}

	if batch.Len() == 0 {
		return nil
	}
	return db.SendBatch(ctx, batch).Close()
}

func isEmpty(ctx context.Context, db *pgxpool.Pool, table string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s)`, table)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", table, err)
	}
	return !exists, nil
}
