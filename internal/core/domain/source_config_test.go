package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSourceConfig(t *testing.T) {
	std := NewSourceConfig("email", "Email", TermStandard)
	require.NotNil(t, std.Config)
	assert.Equal(t, []string{FieldDate}, std.Config.RequiredFields)
	assert.Empty(t, std.Config.Mediums)
	assert.True(t, std.IsStandardTerm())
	assert.True(t, std.RequiresDate())

	custom := NewSourceConfig("site", "Site", TermCustom)
	assert.Empty(t, custom.Config.RequiredFields)
	assert.False(t, custom.IsStandardTerm())
	assert.False(t, custom.RequiresDate())
}

func TestSourceConfigWithoutConfig(t *testing.T) {
	s := SourceConfig{Slug: "tiktok", Name: "TikTok"}
	assert.Empty(t, s.MediumOptions())
	assert.Empty(t, s.ContentOptions())
	assert.Equal(t, TermCustom, s.TermMode())
	assert.False(t, s.RequiresDate())

	cfg := s.EnsureConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, s.Config)
	assert.NotNil(t, cfg.Mediums)
	assert.NotNil(t, cfg.Contents)
}

func TestSourceConfigCloneIsDeep(t *testing.T) {
	s := NewSourceConfig("instagram", "Instagram", TermStandard)
	s.Config.Mediums = append(s.Config.Mediums, Option{Slug: "stories", Name: "Stories"})

	c := s.Clone()
	c.Config.Mediums[0].Name = "Changed"
	c.Config.TermConfig = TermCustom

	assert.Equal(t, "Stories", s.Config.Mediums[0].Name)
	assert.Equal(t, TermStandard, s.Config.TermConfig)
	assert.Nil(t, SourceConfig{Slug: "x"}.Clone().Config)
}

func TestFindOption(t *testing.T) {
	opts := []Option{{Slug: "feed"}, {Slug: "stories"}}
	assert.Equal(t, 1, FindOption(opts, "stories"))
	assert.Equal(t, -1, FindOption(opts, "reels"))
	assert.True(t, HasOption(opts, "feed"))
	assert.False(t, HasOption(nil, "feed"))
}

func TestDuplicateOption(t *testing.T) {
	_, dup := DuplicateOption([]Option{{Slug: "a"}, {Slug: "b"}})
	assert.False(t, dup)
	_, dup = DuplicateOption(nil)
	assert.False(t, dup)

	slug, dup := DuplicateOption([]Option{{Slug: "a"}, {Slug: "b"}, {Slug: "a"}})
	assert.True(t, dup)
	assert.Equal(t, "a", slug)
}

func TestRoleChecks(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleUser.CanEdit())
	assert.False(t, RoleViewer.CanEdit())
	assert.False(t, Role("root").Valid())
	assert.True(t, KindTurmas.Valid())
	assert.False(t, TaxonomyKind("cohorts").Valid())
}
