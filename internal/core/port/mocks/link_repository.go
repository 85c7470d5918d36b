package mocks

import (
	context "context"

	domain "viciolinks/internal/core/domain"

	mock "github.com/stretchr/testify/mock"

	port "viciolinks/internal/core/port"
)

// MockLinkRepository is a mock type for the LinkRepository type
type MockLinkRepository struct {
	mock.Mock
}

// CreateLink provides a mock function with given fields: ctx, link, audit
func (_m *MockLinkRepository) CreateLink(ctx context.Context, link domain.Link, audit domain.Audit) error {
	ret := _m.Called(ctx, link, audit)
	return ret.Error(0)
}

// DeleteLink provides a mock function with given fields: ctx, id
func (_m *MockLinkRepository) DeleteLink(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// ListLinks provides a mock function with given fields: ctx, q
func (_m *MockLinkRepository) ListLinks(ctx context.Context, q port.LinkQuery) ([]domain.Link, error) {
	ret := _m.Called(ctx, q)

	var r0 []domain.Link
	if rf, ok := ret.Get(0).(func(context.Context, port.LinkQuery) []domain.Link); ok {
		r0 = rf(ctx, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Link)
	}
	return r0, ret.Error(1)
}

// NextLinkNumber provides a mock function with given fields: ctx
func (_m *MockLinkRepository) NextLinkNumber(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}
	return r0, ret.Error(1)
}

// NewMockLinkRepository creates a new instance of MockLinkRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLinkRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkRepository {
	m := &MockLinkRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
