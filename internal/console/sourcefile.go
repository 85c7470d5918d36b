package console

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"viciolinks/internal/core/domain"
)

type sourceFile struct {
	Sources []domain.SourceConfig `yaml:"sources" validate:"dive"`
}

// LoadSourceFile reads source documents from a YAML file of the form
//
//	sources:
//	  - slug: email
//	    name: Email
//	    config:
//	      term_config: standard
//	      mediums: [{slug: newsletter, name: Newsletter}]
//	      contents: [{slug: lista_atual, name: Lista Atual}]
//
// Missing lists are filled in and required_fields defaults to [date] for
// standard sources. Duplicate slugs are rejected.
func LoadSourceFile(path string) ([]domain.SourceConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file sourceFile
	if err = yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(file); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	seen := map[string]bool{}
	for i := range file.Sources {
		src := &file.Sources[i]
		if seen[src.Slug] {
			return nil, fmt.Errorf("%w: source %s", ErrDuplicateSlug, src.Slug)
		}
		seen[src.Slug] = true
		if src.Config == nil {
			continue
		}
		cfg := src.EnsureConfig()
		if cfg.TermConfig == "" {
			cfg.TermConfig = domain.TermStandard
		}
		if len(cfg.RequiredFields) == 0 && cfg.TermConfig == domain.TermStandard {
			cfg.RequiredFields = []string{domain.FieldDate}
		}
		if err = uniqueSlugs(cfg.Mediums); err != nil {
			return nil, fmt.Errorf("source %s mediums: %w", src.Slug, err)
		}
		if err = uniqueSlugs(cfg.Contents); err != nil {
			return nil, fmt.Errorf("source %s contents: %w", src.Slug, err)
		}
	}
	return file.Sources, nil
}

func uniqueSlugs(opts []domain.Option) error {
	if slug, dup := domain.DuplicateOption(opts); dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, slug)
	}
	return nil
}
