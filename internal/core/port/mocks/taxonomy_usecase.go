package mocks

import (
	context "context"

	domain "viciolinks/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockTaxonomyUseCase is a mock type for the TaxonomyUseCase type
type MockTaxonomyUseCase struct {
	mock.Mock
}

// DeleteItem provides a mock function with given fields: ctx, kind, slug
func (_m *MockTaxonomyUseCase) DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error {
	ret := _m.Called(ctx, kind, slug)
	return ret.Error(0)
}

// DeleteLaunch provides a mock function with given fields: ctx, slug
func (_m *MockTaxonomyUseCase) DeleteLaunch(ctx context.Context, slug string) error {
	ret := _m.Called(ctx, slug)
	return ret.Error(0)
}

// DeleteSourceConfig provides a mock function with given fields: ctx, slug
func (_m *MockTaxonomyUseCase) DeleteSourceConfig(ctx context.Context, slug string) error {
	ret := _m.Called(ctx, slug)
	return ret.Error(0)
}

// ListItems provides a mock function with given fields: ctx, kind
func (_m *MockTaxonomyUseCase) ListItems(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyItem, error) {
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
func (_m *MockTaxonomyUseCase) ListLaunches(ctx context.Context) ([]domain.Launch, error) {
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
func (_m *MockTaxonomyUseCase) ListSourceConfigs(ctx context.Context) ([]domain.SourceConfig, error) {
	ret := _m.Called(ctx)

	var r0 []domain.SourceConfig
	if rf, ok := ret.Get(0).(func(context.Context) []domain.SourceConfig); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.SourceConfig)
	}
	return r0, ret.Error(1)
}

// SaveItem provides a mock function with given fields: ctx, kind, item
func (_m *MockTaxonomyUseCase) SaveItem(ctx context.Context, kind domain.TaxonomyKind, item domain.TaxonomyItem) (domain.TaxonomyItem, error) {
	ret := _m.Called(ctx, kind, item)

	var r0 domain.TaxonomyItem
	if rf, ok := ret.Get(0).(func(context.Context, domain.TaxonomyKind, domain.TaxonomyItem) domain.TaxonomyItem); ok {
		r0 = rf(ctx, kind, item)
	} else {
		r0 = ret.Get(0).(domain.TaxonomyItem)
	}
	return r0, ret.Error(1)
}

// SaveLaunch provides a mock function with given fields: ctx, launch
func (_m *MockTaxonomyUseCase) SaveLaunch(ctx context.Context, launch domain.Launch) (domain.Launch, error) {
	ret := _m.Called(ctx, launch)

	var r0 domain.Launch
	if rf, ok := ret.Get(0).(func(context.Context, domain.Launch) domain.Launch); ok {
		r0 = rf(ctx, launch)
	} else {
		r0 = ret.Get(0).(domain.Launch)
	}
	return r0, ret.Error(1)
}

// SaveSourceConfig provides a mock function with given fields: ctx, src
func (_m *MockTaxonomyUseCase) SaveSourceConfig(ctx context.Context, src domain.SourceConfig) (domain.SourceConfig, error) {
	ret := _m.Called(ctx, src)

	var r0 domain.SourceConfig
	if rf, ok := ret.Get(0).(func(context.Context, domain.SourceConfig) domain.SourceConfig); ok {
		r0 = rf(ctx, src)
	} else {
		r0 = ret.Get(0).(domain.SourceConfig)
	}
	return r0, ret.Error(1)
}

// NewMockTaxonomyUseCase creates a new instance of MockTaxonomyUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTaxonomyUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTaxonomyUseCase {
	m := &MockTaxonomyUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
