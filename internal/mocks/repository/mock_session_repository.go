package repository

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"
)

// NewMockSessionRepository creates a new instance of MockSessionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSessionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionRepository {
	mock := &MockSessionRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockSessionRepository is a testify mock of the SessionRepository type
type MockSessionRepository struct {
	mock.Mock
}

type MockSessionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionRepository) EXPECT() *MockSessionRepository_Expecter {
	return &MockSessionRepository_Expecter{mock: &_m.Mock}
}

// Get provides a mock function for the type MockSessionRepository
func (_mock *MockSessionRepository) Get(ctx context.Context, userID int64) (string, error) {
	ret := _mock.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 string
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (string, error)); ok {
		return returnFunc(ctx, userID)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) string); ok {
		r0 = returnFunc(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockSessionRepository_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockSessionRepository_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
func (_e *MockSessionRepository_Expecter) Get(ctx interface{}, userID interface{}) *MockSessionRepository_Get_Call {
	return &MockSessionRepository_Get_Call{Call: _e.mock.On("Get", ctx, userID)}
}

func (_c *MockSessionRepository_Get_Call) Run(run func(ctx context.Context, userID int64)) *MockSessionRepository_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockSessionRepository_Get_Call) Return(r0 string, r1 error) *MockSessionRepository_Get_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockSessionRepository_Get_Call) RunAndReturn(run func(context.Context, int64) (string, error)) *MockSessionRepository_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Set provides a mock function for the type MockSessionRepository
func (_mock *MockSessionRepository) Set(ctx context.Context, userID int64, tokenHash string, ttl time.Duration) error {
	ret := _mock.Called(ctx, userID, tokenHash, ttl)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, string, time.Duration) error); ok {
		r0 = returnFunc(ctx, userID, tokenHash, ttl)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockSessionRepository_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type MockSessionRepository_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
//   - tokenHash string
//   - ttl time.Duration
func (_e *MockSessionRepository_Expecter) Set(ctx interface{}, userID interface{}, tokenHash interface{}, ttl interface{}) *MockSessionRepository_Set_Call {
	return &MockSessionRepository_Set_Call{Call: _e.mock.On("Set", ctx, userID, tokenHash, ttl)}
}

func (_c *MockSessionRepository_Set_Call) Run(run func(ctx context.Context, userID int64, tokenHash string, ttl time.Duration)) *MockSessionRepository_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 string
		if args[2] != nil {
			arg2 = args[2].(string)
		}
		var arg3 time.Duration
		if args[3] != nil {
			arg3 = args[3].(time.Duration)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockSessionRepository_Set_Call) Return(r0 error) *MockSessionRepository_Set_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockSessionRepository_Set_Call) RunAndReturn(run func(context.Context, int64, string, time.Duration) error) *MockSessionRepository_Set_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function for the type MockSessionRepository
func (_mock *MockSessionRepository) Delete(ctx context.Context, userID int64) error {
	ret := _mock.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = returnFunc(ctx, userID)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockSessionRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockSessionRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
func (_e *MockSessionRepository_Expecter) Delete(ctx interface{}, userID interface{}) *MockSessionRepository_Delete_Call {
	return &MockSessionRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, userID)}
}

func (_c *MockSessionRepository_Delete_Call) Run(run func(ctx context.Context, userID int64)) *MockSessionRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockSessionRepository_Delete_Call) Return(r0 error) *MockSessionRepository_Delete_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockSessionRepository_Delete_Call) RunAndReturn(run func(context.Context, int64) error) *MockSessionRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}
