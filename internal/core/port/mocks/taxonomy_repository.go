package mocks

import (
	context "context"

	domain "viciolinks/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockTaxonomyRepository is a mock type for the TaxonomyRepository type
type MockTaxonomyRepository struct {
	mock.Mock
}

// DeleteItem provides a mock function with given fields: ctx, kind, slug
func (_m *MockTaxonomyRepository) DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error {
	ret := _m.Called(ctx, kind, slug)
	return ret.Error(0)
}

// DeleteLaunch provides a mock function with given fields: ctx, slug
func (_m *MockTaxonomyRepository) DeleteLaunch(ctx context.Context, slug string) error {
	ret := _m.Called(ctx, slug)
	return ret.Error(0)
}

// DeleteSourceConfig provides a mock function with given fields: ctx, slug
func (_m *MockTaxonomyRepository) DeleteSourceConfig(ctx context.Context, slug string) error {
	ret := _m.Called(ctx, slug)
	return ret.Error(0)
}

// ListItems provides a mock function with given fields: ctx, kind
func (_m *MockTaxonomyRepository) ListItems(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyItem, error) {
	ret := _m.Called(ctx, kind)

	var r0 []domain.TaxonomyItem
	if rf, ok := ret.Get(0).(func(context.Context, domain.TaxonomyKind) []domain.TaxonomyItem); ok {
		r0 = rf(ctx, kind)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.TaxonomyItem)
	}
	return r0, ret.Error(1)
}

// ListLaunches provides a mock function with given fields: ctx
func (_m *MockTaxonomyRepository) ListLaunches(ctx context.Context) ([]domain.Launch, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Launch
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Launch); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Launch)
	}
	return r0, ret.Error(1)
}

// ListSourceConfigs provides a mock function with given fields: ctx
func (_m *MockTaxonomyRepository) ListSourceConfigs(ctx context.Context) ([]domain.SourceConfig, error) {
	ret := _m.Called(ctx)

	var r0 []domain.SourceConfig
	if rf, ok := ret.Get(0).(func(context.Context) []domain.SourceConfig); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.SourceConfig)
	}
	return r0, ret.Error(1)
}

// UpsertItem provides a mock function with given fields: ctx, kind, item
func (_m *MockTaxonomyRepository) UpsertItem(ctx context.Context, kind domain.TaxonomyKind, item domain.TaxonomyItem) error {
	ret := _m.Called(ctx, kind, item)
	return ret.Error(0)
}

// UpsertLaunch provides a mock function with given fields: ctx, launch
func (_m *MockTaxonomyRepository) UpsertLaunch(ctx context.Context, launch domain.Launch) error {
	ret := _m.Called(ctx, launch)
	return ret.Error(0)
}

// UpsertSourceConfig provides a mock function with given fields: ctx, src
func (_m *MockTaxonomyRepository) UpsertSourceConfig(ctx context.Context, src domain.SourceConfig) error {
	ret := _m.Called(ctx, src)
	return ret.Error(0)
}

// NewMockTaxonomyRepository creates a new instance of MockTaxonomyRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTaxonomyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTaxonomyRepository {
	m := &MockTaxonomyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
