package console

import (
	"fmt"

	"viciolinks/internal/core/domain"
)

// Placeholder is the first entry of every dependent option list.
var Placeholder = domain.Option{Slug: "", Name: "Selecione..."}

// SourceLookup resolves a source slug to its cached document.
type SourceLookup interface {
	Source(slug string) (domain.SourceConfig, bool)
}

// Selector keeps the medium and content selections consistent with the
// selected source. Contents depend on the source alone.
type Selector struct {
	sources SourceLookup

	source  string
	medium  string
	content string
}

func NewSelector(sources SourceLookup) *Selector {
	return &Selector{sources: sources}
}

func (s *Selector) Source() string  { return s.source }
func (s *Selector) Medium() string  { return s.medium }
func (s *Selector) Content() string { return s.content }

// SelectSource switches the source and clears medium and content. Unknown
// sources are accepted and simply offer no options.
func (s *Selector) SelectSource(slug string) {
	s.source = slug
	s.medium = ""
	s.content = ""
}

// MediumOptions returns the placeholder followed by the mediums of the
// selected source.
func (s *Selector) MediumOptions() []domain.Option {
	src, _ := s.sources.Source(s.source)
	return withPlaceholder(src.MediumOptions())
}

// ContentOptions returns the placeholder followed by the contents of the
// selected source.
func (s *Selector) ContentOptions() []domain.Option {
	src, _ := s.sources.Source(s.source)
	return withPlaceholder(src.ContentOptions())
}

// SelectMedium selects a medium of the current source. An empty slug
// clears the selection.
func (s *Selector) SelectMedium(slug string) error {
	if err := checkOption(s.MediumOptions(), slug); err != nil {
		return err
	}
	s.medium = slug
	return nil
}

// SelectContent selects a content of the current source. An empty slug
// clears the selection.
func (s *Selector) SelectContent(slug string) error {
	if err := checkOption(s.ContentOptions(), slug); err != nil {
		return err
	}
	s.content = slug
	return nil
}

// Sync drops selections that are no longer offered, e.g. after the source
// document was edited or refetched.
func (s *Selector) Sync() {
	if !domain.HasOption(s.MediumOptions(), s.medium) {
		s.medium = ""
	}
	if !domain.HasOption(s.ContentOptions(), s.content) {
		s.content = ""
	}
}

func withPlaceholder(opts []domain.Option) []domain.Option {
	out := make([]domain.Option, 0, len(opts)+1)
	out = append(out, Placeholder)
	return append(out, opts...)
}

func checkOption(opts []domain.Option, slug string) error {
	if slug == "" || domain.HasOption(opts, slug) {
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownOption, slug)
}
