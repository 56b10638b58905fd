package usecase

import (
	"context"

	"bookshop/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	mock := &MockAuthUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockAuthUsecase is a testify mock of the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// Register provides a mock function for the type MockAuthUsecase
func (_mock *MockAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	ret := _mock.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *usecase.AuthOutput
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.RegisterInput) (*usecase.AuthOutput, error)); ok {
		return returnFunc(ctx, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.RegisterInput) *usecase.AuthOutput); ok {
		r0 = returnFunc(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.AuthOutput)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, usecase.RegisterInput) error); ok {
		r1 = returnFunc(ctx, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockAuthUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockAuthUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.RegisterInput
func (_e *MockAuthUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockAuthUsecase_Register_Call {
	return &MockAuthUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockAuthUsecase_Register_Call) Run(run func(ctx context.Context, input usecase.RegisterInput)) *MockAuthUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 usecase.RegisterInput
		if args[1] != nil {
			arg1 = args[1].(usecase.RegisterInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockAuthUsecase_Register_Call) Return(r0 *usecase.AuthOutput, r1 error) *MockAuthUsecase_Register_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockAuthUsecase_Register_Call) RunAndReturn(run func(context.Context, usecase.RegisterInput) (*usecase.AuthOutput, error)) *MockAuthUsecase_Register_Call {
	_c.Call.Return(run)
	return _c
}

// Login provides a mock function for the type MockAuthUsecase
func (_mock *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	ret := _mock.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *usecase.AuthOutput
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.LoginInput) (*usecase.AuthOutput, error)); ok {
		return returnFunc(ctx, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.LoginInput) *usecase.AuthOutput); ok {
		r0 = returnFunc(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.AuthOutput)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, usecase.LoginInput) error); ok {
		r1 = returnFunc(ctx, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockAuthUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockAuthUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.LoginInput
func (_e *MockAuthUsecase_Expecter) Login(ctx interface{}, input interface{}) *MockAuthUsecase_Login_Call {
	return &MockAuthUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAuthUsecase_Login_Call) Run(run func(ctx context.Context, input usecase.LoginInput)) *MockAuthUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 usecase.LoginInput
		if args[1] != nil {
			arg1 = args[1].(usecase.LoginInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockAuthUsecase_Login_Call) Return(r0 *usecase.AuthOutput, r1 error) *MockAuthUsecase_Login_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockAuthUsecase_Login_Call) RunAndReturn(run func(context.Context, usecase.LoginInput) (*usecase.AuthOutput, error)) *MockAuthUsecase_Login_Call {
	_c.Call.Return(run)
	return _c
}

// Refresh provides a mock function for the type MockAuthUsecase
func (_mock *MockAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.TokensOutput, error) {
	ret := _mock.Called(ctx, refreshToken)

	if len(ret) == 0 {
		panic("no return value specified for Refresh")
	}

	var r0 *usecase.TokensOutput
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (*usecase.TokensOutput, error)); ok {
		return returnFunc(ctx, refreshToken)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) *usecase.TokensOutput); ok {
		r0 = returnFunc(ctx, refreshToken)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.TokensOutput)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, refreshToken)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockAuthUsecase_Refresh_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Refresh'
type MockAuthUsecase_Refresh_Call struct {
	*mock.Call
}

// Refresh is a helper method to define mock.On call
//   - ctx context.Context
//   - refreshToken string
func (_e *MockAuthUsecase_Expecter) Refresh(ctx interface{}, refreshToken interface{}) *MockAuthUsecase_Refresh_Call {
	return &MockAuthUsecase_Refresh_Call{Call: _e.mock.On("Refresh", ctx, refreshToken)}
}

func (_c *MockAuthUsecase_Refresh_Call) Run(run func(ctx context.Context, refreshToken string)) *MockAuthUsecase_Refresh_Call {
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

func (_c *MockAuthUsecase_Refresh_Call) Return(r0 *usecase.TokensOutput, r1 error) *MockAuthUsecase_Refresh_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockAuthUsecase_Refresh_Call) RunAndReturn(run func(context.Context, string) (*usecase.TokensOutput, error)) *MockAuthUsecase_Refresh_Call {
	_c.Call.Return(run)
	return _c
}

// Logout provides a mock function for the type MockAuthUsecase
func (_mock *MockAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	ret := _mock.Called(ctx, refreshToken)

	if len(ret) == 0 {
		panic("no return value specified for Logout")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = returnFunc(ctx, refreshToken)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockAuthUsecase_Logout_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Logout'
type MockAuthUsecase_Logout_Call struct {
	*mock.Call
}

// Logout is a helper method to define mock.On call
//   - ctx context.Context
//   - refreshToken string
func (_e *MockAuthUsecase_Expecter) Logout(ctx interface{}, refreshToken interface{}) *MockAuthUsecase_Logout_Call {
	return &MockAuthUsecase_Logout_Call{Call: _e.mock.On("Logout", ctx, refreshToken)}
}

func (_c *MockAuthUsecase_Logout_Call) Run(run func(ctx context.Context, refreshToken string)) *MockAuthUsecase_Logout_Call {
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

func (_c *MockAuthUsecase_Logout_Call) Return(r0 error) *MockAuthUsecase_Logout_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockAuthUsecase_Logout_Call) RunAndReturn(run func(context.Context, string) error) *MockAuthUsecase_Logout_Call {
	_c.Call.Return(run)
	return _c
}

// ForgotPassword provides a mock function for the type MockAuthUsecase
func (_mock *MockAuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	ret := _mock.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for ForgotPassword")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = returnFunc(ctx, email)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockAuthUsecase_ForgotPassword_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ForgotPassword'
type MockAuthUsecase_ForgotPassword_Call struct {
	*mock.Call
}

// ForgotPassword is a helper method to define mock.On call
//   - ctx context.Context
//   - email string
func (_e *MockAuthUsecase_Expecter) ForgotPassword(ctx interface{}, email interface{}) *MockAuthUsecase_ForgotPassword_Call {
	return &MockAuthUsecase_ForgotPassword_Call{Call: _e.mock.On("ForgotPassword", ctx, email)}
}

func (_c *MockAuthUsecase_ForgotPassword_Call) Run(run func(ctx context.Context, email string)) *MockAuthUsecase_ForgotPassword_Call {
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

func (_c *MockAuthUsecase_ForgotPassword_Call) Return(r0 error) *MockAuthUsecase_ForgotPassword_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockAuthUsecase_ForgotPassword_Call) RunAndReturn(run func(context.Context, string) error) *MockAuthUsecase_ForgotPassword_Call {
	_c.Call.Return(run)
	return _c
}

// ResetPassword provides a mock function for the type MockAuthUsecase
func (_mock *MockAuthUsecase) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	ret := _mock.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for ResetPassword")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.ResetPasswordInput) error); ok {
		r0 = returnFunc(ctx, input)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockAuthUsecase_ResetPassword_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ResetPassword'
type MockAuthUsecase_ResetPassword_Call struct {
	*mock.Call
}

// ResetPassword is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.ResetPasswordInput
func (_e *MockAuthUsecase_Expecter) ResetPassword(ctx interface{}, input interface{}) *MockAuthUsecase_ResetPassword_Call {
	return &MockAuthUsecase_ResetPassword_Call{Call: _e.mock.On("ResetPassword", ctx, input)}
}

func (_c *MockAuthUsecase_ResetPassword_Call) Run(run func(ctx context.Context, input usecase.ResetPasswordInput)) *MockAuthUsecase_ResetPassword_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 usecase.ResetPasswordInput
		if args[1] != nil {
			arg1 = args[1].(usecase.ResetPasswordInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockAuthUsecase_ResetPassword_Call) Return(r0 error) *MockAuthUsecase_ResetPassword_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockAuthUsecase_ResetPassword_Call) RunAndReturn(run func(context.Context, usecase.ResetPasswordInput) error) *MockAuthUsecase_ResetPassword_Call {
	_c.Call.Return(run)
	return _c
}

// Authenticate provides a mock function for the type MockAuthUsecase
func (_mock *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (int64, error) {
	ret := _mock.Called(ctx, accessToken)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 int64
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return returnFunc(ctx, accessToken)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = returnFunc(ctx, accessToken)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(int64)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, accessToken)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockAuthUsecase_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockAuthUsecase_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
//   - ctx context.Context
//   - accessToken string
func (_e *MockAuthUsecase_Expecter) Authenticate(ctx interface{}, accessToken interface{}) *MockAuthUsecase_Authenticate_Call {
	return &MockAuthUsecase_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, accessToken)}
}

func (_c *MockAuthUsecase_Authenticate_Call) Run(run func(ctx context.Context, accessToken string)) *MockAuthUsecase_Authenticate_Call {
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

func (_c *MockAuthUsecase_Authenticate_Call) Return(r0 int64, r1 error) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockAuthUsecase_Authenticate_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}
