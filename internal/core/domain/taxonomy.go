package domain

// TaxonomyItem is a flat catalogue entry: a product, a turma (cohort) or a
// launch type. The slug is the unique key inside its kind.
type TaxonomyItem struct {
	Slug string `json:"slug" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// TaxonomyKind names one of the flat catalogues. Its value doubles as the
// URL segment of the collection.
type TaxonomyKind string

const (
	KindProducts    TaxonomyKind = "products"
	KindTurmas      TaxonomyKind = "turmas"
	KindLaunchTypes TaxonomyKind = "launch-types"
)

// TaxonomyKinds lists every catalogue in display order.
var TaxonomyKinds = []TaxonomyKind{KindProducts, KindTurmas, KindLaunchTypes}

// Valid reports whether k is a known catalogue.
func (k TaxonomyKind) Valid() bool {
	switch k {
	case KindProducts, KindTurmas, KindLaunchTypes:
		return true
	}
	return false
}

func (k TaxonomyKind) String() string { return string(k) }
