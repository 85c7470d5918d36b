package domain

// TermConfig controls how the UTM term of a source is composed.
type TermConfig string

const (
	// TermStandard suffixes the term with the send date (DD-MM-YYYY).
	TermStandard TermConfig = "standard"
	// TermCustom passes the operator's term through untouched.
	TermCustom TermConfig = "custom"
)

// FieldDate is the required field asking the operator for a send date.
const FieldDate = "date"

// Option is one selectable medium or content of a source.
type Option struct {
	Slug string `json:"slug" yaml:"slug" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// SourceSettings is the nested configuration document of a source.
type SourceSettings struct {
	TermConfig     TermConfig `json:"term_config" yaml:"term_config"`
	RequiredFields []string   `json:"required_fields" yaml:"required_fields"`
	Mediums        []Option   `json:"mediums" yaml:"mediums" validate:"dive"`
	Contents       []Option   `json:"contents" yaml:"contents" validate:"dive"`
}

// SourceConfig is a traffic source together with its vocabulary. Config is
// nil for sources that were created without one; every accessor treats that
// as an empty vocabulary.
type SourceConfig struct {
	Slug   string          `json:"slug" yaml:"slug" validate:"required"`
	Name   string          `json:"name" yaml:"name" validate:"required"`
	Config *SourceSettings `json:"config" yaml:"config,omitempty" validate:"omitnil"`
}

// NewSourceConfig returns a source document with empty vocabularies. Standard
// sources require a date.
func NewSourceConfig(slug, name string, term TermConfig) SourceConfig {
	settings := &SourceSettings{
		TermConfig:     term,
		RequiredFields: []string{},
		Mediums:        []Option{},
		Contents:       []Option{},
	}
	if term == TermStandard {
		settings.RequiredFields = []string{FieldDate}
	}
	return SourceConfig{Slug: slug, Name: name, Config: settings}
}

// EnsureConfig allocates the nested document when absent and returns it.
func (s *SourceConfig) EnsureConfig() *SourceSettings {
	if s.Config == nil {
		s.Config = &SourceSettings{TermConfig: TermStandard}
	}
	if s.Config.Mediums == nil {
		s.Config.Mediums = []Option{}
	}
	if s.Config.Contents == nil {
		s.Config.Contents = []Option{}
	}
	if s.Config.RequiredFields == nil {
		s.Config.RequiredFields = []string{}
	}
	return s.Config
}

// MediumOptions returns the mediums of the source, empty when unconfigured.
func (s SourceConfig) MediumOptions() []Option {
	if s.Config == nil {
		return nil
	}
	return s.Config.Mediums
}

// ContentOptions returns the contents of the source, empty when unconfigured.
func (s SourceConfig) ContentOptions() []Option {
	if s.Config == nil {
		return nil
	}
	return s.Config.Contents
}

// TermMode returns the configured term mode. An unconfigured source is
// treated as custom.
func (s SourceConfig) TermMode() TermConfig {
	if s.Config == nil {
		return TermCustom
	}
	return s.Config.TermConfig
}

// IsStandardTerm reports whether terms of this source carry a date suffix.
func (s SourceConfig) IsStandardTerm() bool {
	return s.TermMode() == TermStandard
}

// RequiresDate reports whether the operator must be asked for a send date.
func (s SourceConfig) RequiresDate() bool {
	if s.Config == nil {
		return false
	}
	if s.Config.TermConfig == TermStandard {
		return true
	}
	for _, f := range s.Config.RequiredFields {
		if f == FieldDate {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate it freely.
func (s SourceConfig) Clone() SourceConfig {
	out := SourceConfig{Slug: s.Slug, Name: s.Name}
	if s.Config != nil {
		cfg := *s.Config
		cfg.RequiredFields = append([]string(nil), s.Config.RequiredFields...)
		cfg.Mediums = append([]Option(nil), s.Config.Mediums...)
		cfg.Contents = append([]Option(nil), s.Config.Contents...)
		out.Config = &cfg
	}
	return out
}

// FindOption returns the index of slug in opts or -1.
func FindOption(opts []Option, slug string) int {
	for i, o := range opts {
		if o.Slug == slug {
			return i
		}
	}
	return -1
}

// HasOption reports whether slug is among opts.
func HasOption(opts []Option, slug string) bool {
	return FindOption(opts, slug) >= 0
}

// DuplicateOption returns the first slug that appears more than once in
// opts.
func DuplicateOption(opts []Option) (string, bool) {
	for i, o := range opts {
		if FindOption(opts, o.Slug) != i {
			return o.Slug, true
		}
	}
	return "", false
}
