package repository

import (
	"bookshop/internal/domain/repository"

	mock "github.com/stretchr/testify/mock"
)

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockRepositoryFactory is a testify mock of the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// UserRepo provides a mock function for the type MockRepositoryFactory
func (_mock *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserRepo")
	}

	var r0 repository.UserRepository
	if returnFunc, ok := ret.Get(0).(func() repository.UserRepository); ok {
		r0 = returnFunc()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.UserRepository)
		}
	}
	return r0
}

// MockRepositoryFactory_UserRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UserRepo'
type MockRepositoryFactory_UserRepo_Call struct {
	*mock.Call
}

// UserRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) UserRepo() *MockRepositoryFactory_UserRepo_Call {
	return &MockRepositoryFactory_UserRepo_Call{Call: _e.mock.On("UserRepo")}
}

func (_c *MockRepositoryFactory_UserRepo_Call) Run(run func()) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) Return(r0 repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) RunAndReturn(run func() repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(run)
	return _c
}

// BookRepo provides a mock function for the type MockRepositoryFactory
func (_mock *MockRepositoryFactory) BookRepo() repository.BookRepository {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for BookRepo")
	}

	var r0 repository.BookRepository
	if returnFunc, ok := ret.Get(0).(func() repository.BookRepository); ok {
		r0 = returnFunc()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.BookRepository)
		}
	}
	return r0
}

// MockRepositoryFactory_BookRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BookRepo'
type MockRepositoryFactory_BookRepo_Call struct {
	*mock.Call
}

// BookRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) BookRepo() *MockRepositoryFactory_BookRepo_Call {
	return &MockRepositoryFactory_BookRepo_Call{Call: _e.mock.On("BookRepo")}
}

func (_c *MockRepositoryFactory_BookRepo_Call) Run(run func()) *MockRepositoryFactory_BookRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_BookRepo_Call) Return(r0 repository.BookRepository) *MockRepositoryFactory_BookRepo_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockRepositoryFactory_BookRepo_Call) RunAndReturn(run func() repository.BookRepository) *MockRepositoryFactory_BookRepo_Call {
	_c.Call.Return(run)
	return _c
}

// CatalogRepo provides a mock function for the type MockRepositoryFactory
func (_mock *MockRepositoryFactory) CatalogRepo() repository.CatalogRepository {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for CatalogRepo")
	}

	var r0 repository.CatalogRepository
	if returnFunc, ok := ret.Get(0).(func() repository.CatalogRepository); ok {
		r0 = returnFunc()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.CatalogRepository)
		}
	}
	return r0
}

// MockRepositoryFactory_CatalogRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CatalogRepo'
type MockRepositoryFactory_CatalogRepo_Call struct {
	*mock.Call
}

// CatalogRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) CatalogRepo() *MockRepositoryFactory_CatalogRepo_Call {
	return &MockRepositoryFactory_CatalogRepo_Call{Call: _e.mock.On("CatalogRepo")}
}

func (_c *MockRepositoryFactory_CatalogRepo_Call) Run(run func()) *MockRepositoryFactory_CatalogRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_CatalogRepo_Call) Return(r0 repository.CatalogRepository) *MockRepositoryFactory_CatalogRepo_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockRepositoryFactory_CatalogRepo_Call) RunAndReturn(run func() repository.CatalogRepository) *MockRepositoryFactory_CatalogRepo_Call {
	_c.Call.Return(run)
	return _c
}
