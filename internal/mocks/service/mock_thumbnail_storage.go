package service

import (
	"context"

	"bookshop/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// NewMockThumbnailStorage creates a new instance of MockThumbnailStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockThumbnailStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockThumbnailStorage {
	mock := &MockThumbnailStorage{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockThumbnailStorage is a testify mock of the ThumbnailStorage type
type MockThumbnailStorage struct {
	mock.Mock
}

type MockThumbnailStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockThumbnailStorage) EXPECT() *MockThumbnailStorage_Expecter {
	return &MockThumbnailStorage_Expecter{mock: &_m.Mock}
}

// Store provides a mock function for the type MockThumbnailStorage
func (_mock *MockThumbnailStorage) Store(ctx context.Context, upload *service.ThumbnailUpload) (string, error) {
	ret := _mock.Called(ctx, upload)

	if len(ret) == 0 {
		panic("no return value specified for Store")
	}

	var r0 string
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, *service.ThumbnailUpload) (string, error)); ok {
		return returnFunc(ctx, upload)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, *service.ThumbnailUpload) string); ok {
		r0 = returnFunc(ctx, upload)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, *service.ThumbnailUpload) error); ok {
		r1 = returnFunc(ctx, upload)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockThumbnailStorage_Store_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Store'
type MockThumbnailStorage_Store_Call struct {
	*mock.Call
}

// Store is a helper method to define mock.On call
//   - ctx context.Context
//   - upload *service.ThumbnailUpload
func (_e *MockThumbnailStorage_Expecter) Store(ctx interface{}, upload interface{}) *MockThumbnailStorage_Store_Call {
	return &MockThumbnailStorage_Store_Call{Call: _e.mock.On("Store", ctx, upload)}
}

func (_c *MockThumbnailStorage_Store_Call) Run(run func(ctx context.Context, upload *service.ThumbnailUpload)) *MockThumbnailStorage_Store_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *service.ThumbnailUpload
		if args[1] != nil {
			arg1 = args[1].(*service.ThumbnailUpload)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockThumbnailStorage_Store_Call) Return(r0 string, r1 error) *MockThumbnailStorage_Store_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockThumbnailStorage_Store_Call) RunAndReturn(run func(context.Context, *service.ThumbnailUpload) (string, error)) *MockThumbnailStorage_Store_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function for the type MockThumbnailStorage
func (_mock *MockThumbnailStorage) Delete(ctx context.Context, path string) error {
	ret := _mock.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = returnFunc(ctx, path)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockThumbnailStorage_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockThumbnailStorage_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - path string
func (_e *MockThumbnailStorage_Expecter) Delete(ctx interface{}, path interface{}) *MockThumbnailStorage_Delete_Call {
	return &MockThumbnailStorage_Delete_Call{Call: _e.mock.On("Delete", ctx, path)}
}

func (_c *MockThumbnailStorage_Delete_Call) Run(run func(ctx context.Context, path string)) *MockThumbnailStorage_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockThumbnailStorage_Delete_Call) Return(r0 error) *MockThumbnailStorage_Delete_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockThumbnailStorage_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockThumbnailStorage_Delete_Call {
	_c.Call.Return(run)
	return _c
}
