package repository

import (
	"context"
	"time"

	"bookshop/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// NewMockUserRepository creates a new instance of MockUserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	mock := &MockUserRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockUserRepository is a testify mock of the UserRepository type
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.User
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (*entity.User, error)); ok {
		return returnFunc(ctx, id)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) *entity.User); ok {
		r0 = returnFunc(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockUserRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockUserRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockUserRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockUserRepository_FindByID_Call {
	return &MockUserRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockUserRepository_FindByID_Call) Run(run func(ctx context.Context, id int64)) *MockUserRepository_FindByID_Call {
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

func (_c *MockUserRepository_FindByID_Call) Return(r0 *entity.User, r1 error) *MockUserRepository_FindByID_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockUserRepository_FindByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.User, error)) *MockUserRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByEmail provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _mock.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for FindByEmail")
	}

	var r0 *entity.User
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (*entity.User, error)); ok {
		return returnFunc(ctx, email)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) *entity.User); ok {
		r0 = returnFunc(ctx, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, email)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockUserRepository_FindByEmail_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByEmail'
type MockUserRepository_FindByEmail_Call struct {
	*mock.Call
}

// FindByEmail is a helper method to define mock.On call
//   - ctx context.Context
//   - email string
func (_e *MockUserRepository_Expecter) FindByEmail(ctx interface{}, email interface{}) *MockUserRepository_FindByEmail_Call {
	return &MockUserRepository_FindByEmail_Call{Call: _e.mock.On("FindByEmail", ctx, email)}
}

func (_c *MockUserRepository_FindByEmail_Call) Run(run func(ctx context.Context, email string)) *MockUserRepository_FindByEmail_Call {
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

func (_c *MockUserRepository_FindByEmail_Call) Return(r0 *entity.User, r1 error) *MockUserRepository_FindByEmail_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockUserRepository_FindByEmail_Call) RunAndReturn(run func(context.Context, string) (*entity.User, error)) *MockUserRepository_FindByEmail_Call {
	_c.Call.Return(run)
	return _c
}

// FindByUsername provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _mock.Called(ctx, username)

	if len(ret) == 0 {
		panic("no return value specified for FindByUsername")
	}

	var r0 *entity.User
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (*entity.User, error)); ok {
		return returnFunc(ctx, username)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) *entity.User); ok {
		r0 = returnFunc(ctx, username)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, username)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockUserRepository_FindByUsername_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByUsername'
type MockUserRepository_FindByUsername_Call struct {
	*mock.Call
}

// FindByUsername is a helper method to define mock.On call
//   - ctx context.Context
//   - username string
func (_e *MockUserRepository_Expecter) FindByUsername(ctx interface{}, username interface{}) *MockUserRepository_FindByUsername_Call {
	return &MockUserRepository_FindByUsername_Call{Call: _e.mock.On("FindByUsername", ctx, username)}
}

func (_c *MockUserRepository_FindByUsername_Call) Run(run func(ctx context.Context, username string)) *MockUserRepository_FindByUsername_Call {
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

func (_c *MockUserRepository_FindByUsername_Call) Return(r0 *entity.User, r1 error) *MockUserRepository_FindByUsername_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockUserRepository_FindByUsername_Call) RunAndReturn(run func(context.Context, string) (*entity.User, error)) *MockUserRepository_FindByUsername_Call {
	_c.Call.Return(run)
	return _c
}

// FindByEmailOrUsername provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) FindByEmailOrUsername(ctx context.Context, email string, username string) (*entity.User, error) {
	ret := _mock.Called(ctx, email, username)

	if len(ret) == 0 {
		panic("no return value specified for FindByEmailOrUsername")
	}

	var r0 *entity.User
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string) (*entity.User, error)); ok {
		return returnFunc(ctx, email, username)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string) *entity.User); ok {
		r0 = returnFunc(ctx, email, username)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = returnFunc(ctx, email, username)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockUserRepository_FindByEmailOrUsername_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByEmailOrUsername'
type MockUserRepository_FindByEmailOrUsername_Call struct {
	*mock.Call
}

// FindByEmailOrUsername is a helper method to define mock.On call
//   - ctx context.Context
//   - email string
//   - username string
func (_e *MockUserRepository_Expecter) FindByEmailOrUsername(ctx interface{}, email interface{}, username interface{}) *MockUserRepository_FindByEmailOrUsername_Call {
	return &MockUserRepository_FindByEmailOrUsername_Call{Call: _e.mock.On("FindByEmailOrUsername", ctx, email, username)}
}

func (_c *MockUserRepository_FindByEmailOrUsername_Call) Run(run func(ctx context.Context, email string, username string)) *MockUserRepository_FindByEmailOrUsername_Call {
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
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockUserRepository_FindByEmailOrUsername_Call) Return(r0 *entity.User, r1 error) *MockUserRepository_FindByEmailOrUsername_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockUserRepository_FindByEmailOrUsername_Call) RunAndReturn(run func(context.Context, string, string) (*entity.User, error)) *MockUserRepository_FindByEmailOrUsername_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _mock.Called(ctx, user)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, *entity.User) error); ok {
		r0 = returnFunc(ctx, user)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockUserRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockUserRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - user *entity.User
func (_e *MockUserRepository_Expecter) Create(ctx interface{}, user interface{}) *MockUserRepository_Create_Call {
	return &MockUserRepository_Create_Call{Call: _e.mock.On("Create", ctx, user)}
}

func (_c *MockUserRepository_Create_Call) Run(run func(ctx context.Context, user *entity.User)) *MockUserRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.User
		if args[1] != nil {
			arg1 = args[1].(*entity.User)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockUserRepository_Create_Call) Return(r0 error) *MockUserRepository_Create_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockUserRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.User) error) *MockUserRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProfile provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) UpdateProfile(ctx context.Context, id int64, update entity.UserUpdate) error {
	ret := _mock.Called(ctx, id, update)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProfile")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, entity.UserUpdate) error); ok {
		r0 = returnFunc(ctx, id, update)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockUserRepository_UpdateProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProfile'
type MockUserRepository_UpdateProfile_Call struct {
	*mock.Call
}

// UpdateProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
//   - update entity.UserUpdate
func (_e *MockUserRepository_Expecter) UpdateProfile(ctx interface{}, id interface{}, update interface{}) *MockUserRepository_UpdateProfile_Call {
	return &MockUserRepository_UpdateProfile_Call{Call: _e.mock.On("UpdateProfile", ctx, id, update)}
}

func (_c *MockUserRepository_UpdateProfile_Call) Run(run func(ctx context.Context, id int64, update entity.UserUpdate)) *MockUserRepository_UpdateProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 entity.UserUpdate
		if args[2] != nil {
			arg2 = args[2].(entity.UserUpdate)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockUserRepository_UpdateProfile_Call) Return(r0 error) *MockUserRepository_UpdateProfile_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockUserRepository_UpdateProfile_Call) RunAndReturn(run func(context.Context, int64, entity.UserUpdate) error) *MockUserRepository_UpdateProfile_Call {
	_c.Call.Return(run)
	return _c
}

// UpdatePassword provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	ret := _mock.Called(ctx, id, passwordHash)

	if len(ret) == 0 {
		panic("no return value specified for UpdatePassword")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		r0 = returnFunc(ctx, id, passwordHash)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockUserRepository_UpdatePassword_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdatePassword'
type MockUserRepository_UpdatePassword_Call struct {
	*mock.Call
}

// UpdatePassword is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
//   - passwordHash string
func (_e *MockUserRepository_Expecter) UpdatePassword(ctx interface{}, id interface{}, passwordHash interface{}) *MockUserRepository_UpdatePassword_Call {
	return &MockUserRepository_UpdatePassword_Call{Call: _e.mock.On("UpdatePassword", ctx, id, passwordHash)}
}

func (_c *MockUserRepository_UpdatePassword_Call) Run(run func(ctx context.Context, id int64, passwordHash string)) *MockUserRepository_UpdatePassword_Call {
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
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockUserRepository_UpdatePassword_Call) Return(r0 error) *MockUserRepository_UpdatePassword_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockUserRepository_UpdatePassword_Call) RunAndReturn(run func(context.Context, int64, string) error) *MockUserRepository_UpdatePassword_Call {
	_c.Call.Return(run)
	return _c
}

// SetResetCode provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) SetResetCode(ctx context.Context, id int64, codeHash string, expiresAt time.Time) error {
	ret := _mock.Called(ctx, id, codeHash, expiresAt)

	if len(ret) == 0 {
		panic("no return value specified for SetResetCode")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, string, time.Time) error); ok {
		r0 = returnFunc(ctx, id, codeHash, expiresAt)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockUserRepository_SetResetCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetResetCode'
type MockUserRepository_SetResetCode_Call struct {
	*mock.Call
}

// SetResetCode is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
//   - codeHash string
//   - expiresAt time.Time
func (_e *MockUserRepository_Expecter) SetResetCode(ctx interface{}, id interface{}, codeHash interface{}, expiresAt interface{}) *MockUserRepository_SetResetCode_Call {
	return &MockUserRepository_SetResetCode_Call{Call: _e.mock.On("SetResetCode", ctx, id, codeHash, expiresAt)}
}

func (_c *MockUserRepository_SetResetCode_Call) Run(run func(ctx context.Context, id int64, codeHash string, expiresAt time.Time)) *MockUserRepository_SetResetCode_Call {
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
		var arg3 time.Time
		if args[3] != nil {
			arg3 = args[3].(time.Time)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockUserRepository_SetResetCode_Call) Return(r0 error) *MockUserRepository_SetResetCode_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockUserRepository_SetResetCode_Call) RunAndReturn(run func(context.Context, int64, string, time.Time) error) *MockUserRepository_SetResetCode_Call {
	_c.Call.Return(run)
	return _c
}

// ResetPassword provides a mock function for the type MockUserRepository
func (_mock *MockUserRepository) ResetPassword(ctx context.Context, id int64, codeHash string, passwordHash string, now time.Time) error {
	ret := _mock.Called(ctx, id, codeHash, passwordHash, now)

	if len(ret) == 0 {
		panic("no return value specified for ResetPassword")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, string, string, time.Time) error); ok {
		r0 = returnFunc(ctx, id, codeHash, passwordHash, now)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockUserRepository_ResetPassword_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ResetPassword'
type MockUserRepository_ResetPassword_Call struct {
	*mock.Call
}

// ResetPassword is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
//   - codeHash string
//   - passwordHash string
//   - now time.Time
func (_e *MockUserRepository_Expecter) ResetPassword(ctx interface{}, id interface{}, codeHash interface{}, passwordHash interface{}, now interface{}) *MockUserRepository_ResetPassword_Call {
	return &MockUserRepository_ResetPassword_Call{Call: _e.mock.On("ResetPassword", ctx, id, codeHash, passwordHash, now)}
}

func (_c *MockUserRepository_ResetPassword_Call) Run(run func(ctx context.Context, id int64, codeHash string, passwordHash string, now time.Time)) *MockUserRepository_ResetPassword_Call {
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
		var arg3 string
		if args[3] != nil {
			arg3 = args[3].(string)
		}
		var arg4 time.Time
		if args[4] != nil {
			arg4 = args[4].(time.Time)
		}
		run(arg0, arg1, arg2, arg3, arg4)
	})
	return _c
}

func (_c *MockUserRepository_ResetPassword_Call) Return(r0 error) *MockUserRepository_ResetPassword_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockUserRepository_ResetPassword_Call) RunAndReturn(run func(context.Context, int64, string, string, time.Time) error) *MockUserRepository_ResetPassword_Call {
	_c.Call.Return(run)
	return _c
}
