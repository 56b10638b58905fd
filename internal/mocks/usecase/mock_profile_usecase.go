package usecase

import (
	"context"

	"bookshop/internal/domain/entity"
	"bookshop/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// NewMockProfileUsecase creates a new instance of MockProfileUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	mock := &MockProfileUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockProfileUsecase is a testify mock of the ProfileUsecase type
type MockProfileUsecase struct {
	mock.Mock
}

type MockProfileUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileUsecase) EXPECT() *MockProfileUsecase_Expecter {
	return &MockProfileUsecase_Expecter{mock: &_m.Mock}
}

// GetProfile provides a mock function for the type MockProfileUsecase
func (_mock *MockProfileUsecase) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	ret := _mock.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetProfile")
	}

	var r0 *entity.User
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (*entity.User, error)); ok {
		return returnFunc(ctx, userID)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) *entity.User); ok {
		r0 = returnFunc(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockProfileUsecase_GetProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProfile'
type MockProfileUsecase_GetProfile_Call struct {
	*mock.Call
}

// GetProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
func (_e *MockProfileUsecase_Expecter) GetProfile(ctx interface{}, userID interface{}) *MockProfileUsecase_GetProfile_Call {
	return &MockProfileUsecase_GetProfile_Call{Call: _e.mock.On("GetProfile", ctx, userID)}
}

func (_c *MockProfileUsecase_GetProfile_Call) Run(run func(ctx context.Context, userID int64)) *MockProfileUsecase_GetProfile_Call {
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

func (_c *MockProfileUsecase_GetProfile_Call) Return(r0 *entity.User, r1 error) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockProfileUsecase_GetProfile_Call) RunAndReturn(run func(context.Context, int64) (*entity.User, error)) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(run)
	return _c
}

// EditProfile provides a mock function for the type MockProfileUsecase
func (_mock *MockProfileUsecase) EditProfile(ctx context.Context, userID int64, input usecase.EditProfileInput) (*entity.User, error) {
	ret := _mock.Called(ctx, userID, input)

	if len(ret) == 0 {
		panic("no return value specified for EditProfile")
	}

	var r0 *entity.User
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, usecase.EditProfileInput) (*entity.User, error)); ok {
		return returnFunc(ctx, userID, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, usecase.EditProfileInput) *entity.User); ok {
		r0 = returnFunc(ctx, userID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64, usecase.EditProfileInput) error); ok {
		r1 = returnFunc(ctx, userID, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockProfileUsecase_EditProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'EditProfile'
type MockProfileUsecase_EditProfile_Call struct {
	*mock.Call
}

// EditProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
//   - input usecase.EditProfileInput
func (_e *MockProfileUsecase_Expecter) EditProfile(ctx interface{}, userID interface{}, input interface{}) *MockProfileUsecase_EditProfile_Call {
	return &MockProfileUsecase_EditProfile_Call{Call: _e.mock.On("EditProfile", ctx, userID, input)}
}

func (_c *MockProfileUsecase_EditProfile_Call) Run(run func(ctx context.Context, userID int64, input usecase.EditProfileInput)) *MockProfileUsecase_EditProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 usecase.EditProfileInput
		if args[2] != nil {
			arg2 = args[2].(usecase.EditProfileInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockProfileUsecase_EditProfile_Call) Return(r0 *entity.User, r1 error) *MockProfileUsecase_EditProfile_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockProfileUsecase_EditProfile_Call) RunAndReturn(run func(context.Context, int64, usecase.EditProfileInput) (*entity.User, error)) *MockProfileUsecase_EditProfile_Call {
	_c.Call.Return(run)
	return _c
}

// ChangePassword provides a mock function for the type MockProfileUsecase
func (_mock *MockProfileUsecase) ChangePassword(ctx context.Context, userID int64, input usecase.ChangePasswordInput) error {
	ret := _mock.Called(ctx, userID, input)

	if len(ret) == 0 {
		panic("no return value specified for ChangePassword")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, usecase.ChangePasswordInput) error); ok {
		r0 = returnFunc(ctx, userID, input)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockProfileUsecase_ChangePassword_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ChangePassword'
type MockProfileUsecase_ChangePassword_Call struct {
	*mock.Call
}

// ChangePassword is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
//   - input usecase.ChangePasswordInput
func (_e *MockProfileUsecase_Expecter) ChangePassword(ctx interface{}, userID interface{}, input interface{}) *MockProfileUsecase_ChangePassword_Call {
	return &MockProfileUsecase_ChangePassword_Call{Call: _e.mock.On("ChangePassword", ctx, userID, input)}
}

func (_c *MockProfileUsecase_ChangePassword_Call) Run(run func(ctx context.Context, userID int64, input usecase.ChangePasswordInput)) *MockProfileUsecase_ChangePassword_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 usecase.ChangePasswordInput
		if args[2] != nil {
			arg2 = args[2].(usecase.ChangePasswordInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockProfileUsecase_ChangePassword_Call) Return(r0 error) *MockProfileUsecase_ChangePassword_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockProfileUsecase_ChangePassword_Call) RunAndReturn(run func(context.Context, int64, usecase.ChangePasswordInput) error) *MockProfileUsecase_ChangePassword_Call {
	_c.Call.Return(run)
	return _c
}
