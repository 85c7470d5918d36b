package mocks

import (
	context "context"

	domain "viciolinks/internal/core/domain"

	mock "github.com/stretchr/testify/mock"

	port "viciolinks/internal/core/port"
)

// MockAuthUseCase is a mock type for the AuthUseCase type
type MockAuthUseCase struct {
	mock.Mock
}

// CreateUser provides a mock function with given fields: ctx, in
func (_m *MockAuthUseCase) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.User
	if rf, ok := ret.Get(0).(func(context.Context, domain.UserInput) *domain.User); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

// DeleteUser provides a mock function with given fields: ctx, username
func (_m *MockAuthUseCase) DeleteUser(ctx context.Context, username string) error {
	ret := _m.Called(ctx, username)
	return ret.Error(0)
}

// EnsureAdmin provides a mock function with given fields: ctx, username, password
func (_m *MockAuthUseCase) EnsureAdmin(ctx context.Context, username string, password string) (bool, error) {
	ret := _m.Called(ctx, username, password)
	return ret.Bool(0), ret.Error(1)
}

// ListUsers provides a mock function with given fields: ctx
func (_m *MockAuthUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)

	var r0 []domain.User
	if rf, ok := ret.Get(0).(func(context.Context) []domain.User); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}
	return r0, ret.Error(1)
}

// Login provides a mock function with given fields: ctx, username, password
func (_m *MockAuthUseCase) Login(ctx context.Context, username string, password string) (*port.Token, error) {
	ret := _m.Called(ctx, username, password)

	var r0 *port.Token
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *port.Token); ok {
		r0 = rf(ctx, username, password)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*port.Token)
	}
	return r0, ret.Error(1)
}

// Me provides a mock function with given fields: ctx, username
func (_m *MockAuthUseCase) Me(ctx context.Context, username string) (*domain.User, error) {
	ret := _m.Called(ctx, username)

	var r0 *domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.User); ok {
		r0 = rf(ctx, username)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

// ParseToken provides a mock function with given fields: token
func (_m *MockAuthUseCase) ParseToken(token string) (*port.Claims, error) {
	ret := _m.Called(token)

	var r0 *port.Claims
	if rf, ok := ret.Get(0).(func(string) *port.Claims); ok {
		r0 = rf(token)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*port.Claims)
	}
	return r0, ret.Error(1)
}

// UpdateUser provides a mock function with given fields: ctx, username, in
func (_m *MockAuthUseCase) UpdateUser(ctx context.Context, username string, in domain.UserInput) (*domain.User, error) {
	ret := _m.Called(ctx, username, in)

	var r0 *domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.UserInput) *domain.User); ok {
		r0 = rf(ctx, username, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

// NewMockAuthUseCase creates a new instance of MockAuthUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUseCase {
	m := &MockAuthUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
