package service

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"
)

// NewMockResetCodeNotifier creates a new instance of MockResetCodeNotifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockResetCodeNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResetCodeNotifier {
	mock := &MockResetCodeNotifier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockResetCodeNotifier is a testify mock of the ResetCodeNotifier type
type MockResetCodeNotifier struct {
	mock.Mock
}

type MockResetCodeNotifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockResetCodeNotifier) EXPECT() *MockResetCodeNotifier_Expecter {
	return &MockResetCodeNotifier_Expecter{mock: &_m.Mock}
}

// SendResetCode provides a mock function for the type MockResetCodeNotifier
func (_mock *MockResetCodeNotifier) SendResetCode(ctx context.Context, email string, code string, expiresAt time.Time) error {
	ret := _mock.Called(ctx, email, code, expiresAt)

	if len(ret) == 0 {
		panic("no return value specified for SendResetCode")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string, time.Time) error); ok {
		r0 = returnFunc(ctx, email, code, expiresAt)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockResetCodeNotifier_SendResetCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendResetCode'
type MockResetCodeNotifier_SendResetCode_Call struct {
	*mock.Call
}

// SendResetCode is a helper method to define mock.On call
//   - ctx context.Context
//   - email string
//   - code string
//   - expiresAt time.Time
func (_e *MockResetCodeNotifier_Expecter) SendResetCode(ctx interface{}, email interface{}, code interface{}, expiresAt interface{}) *MockResetCodeNotifier_SendResetCode_Call {
	return &MockResetCodeNotifier_SendResetCode_Call{Call: _e.mock.On("SendResetCode", ctx, email, code, expiresAt)}
}

func (_c *MockResetCodeNotifier_SendResetCode_Call) Run(run func(ctx context.Context, email string, code string, expiresAt time.Time)) *MockResetCodeNotifier_SendResetCode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		var arg2 string
		if args[2] != nil {
			arg2 = args[2].(string)
		}
		var arg3 time.Time
		if args[3] != nil {
			arg3 = args[3].(time.Time)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockResetCodeNotifier_SendResetCode_Call) Return(r0 error) *MockResetCodeNotifier_SendResetCode_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockResetCodeNotifier_SendResetCode_Call) RunAndReturn(run func(context.Context, string, string, time.Time) error) *MockResetCodeNotifier_SendResetCode_Call {
	_c.Call.Return(run)
	return _c
}
