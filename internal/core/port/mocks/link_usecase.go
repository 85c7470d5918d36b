package mocks

import (
	context "context"

	domain "viciolinks/internal/core/domain"

	mock "github.com/stretchr/testify/mock"

	port "viciolinks/internal/core/port"
)

// MockLinkUseCase is a mock type for the LinkUseCase type
type MockLinkUseCase struct {
	mock.Mock
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockLinkUseCase) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// Generate provides a mock function with given fields: ctx, actor, req
func (_m *MockLinkUseCase) Generate(ctx context.Context, actor string, req domain.LinkRequest) (*domain.Link, error) {
	ret := _m.Called(ctx, actor, req)

	var r0 *domain.Link
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.LinkRequest) *domain.Link); ok {
		r0 = rf(ctx, actor, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Link)
	}
	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx, q
func (_m *MockLinkUseCase) List(ctx context.Context, q port.LinkQuery) ([]domain.Link, error) {
	ret := _m.Called(ctx, q)

	var r0 []domain.Link
	if rf, ok := ret.Get(0).(func(context.Context, port.LinkQuery) []domain.Link); ok {
		r0 = rf(ctx, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Link)
	}
	return r0, ret.Error(1)
}

// NewMockLinkUseCase creates a new instance of MockLinkUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLinkUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkUseCase {
	m := &MockLinkUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
