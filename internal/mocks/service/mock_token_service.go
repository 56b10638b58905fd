package service

import (
	"time"

	"bookshop/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockTokenService is a testify mock of the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// GenerateTokens provides a mock function for the type MockTokenService
func (_mock *MockTokenService) GenerateTokens(userID int64) (*service.TokenPair, error) {
	ret := _mock.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateTokens")
	}

	var r0 *service.TokenPair
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(int64) (*service.TokenPair, error)); ok {
		return returnFunc(userID)
	}
	if returnFunc, ok := ret.Get(0).(func(int64) *service.TokenPair); ok {
		r0 = returnFunc(userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.TokenPair)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(int64) error); ok {
		r1 = returnFunc(userID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTokenService_GenerateTokens_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateTokens'
type MockTokenService_GenerateTokens_Call struct {
	*mock.Call
}

// GenerateTokens is a helper method to define mock.On call
//   - userID int64
func (_e *MockTokenService_Expecter) GenerateTokens(userID interface{}) *MockTokenService_GenerateTokens_Call {
	return &MockTokenService_GenerateTokens_Call{Call: _e.mock.On("GenerateTokens", userID)}
}

func (_c *MockTokenService_GenerateTokens_Call) Run(run func(userID int64)) *MockTokenService_GenerateTokens_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 int64
		if args[0] != nil {
			arg0 = args[0].(int64)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockTokenService_GenerateTokens_Call) Return(r0 *service.TokenPair, r1 error) *MockTokenService_GenerateTokens_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockTokenService_GenerateTokens_Call) RunAndReturn(run func(int64) (*service.TokenPair, error)) *MockTokenService_GenerateTokens_Call {
	_c.Call.Return(run)
	return _c
}

// Verify provides a mock function for the type MockTokenService
func (_mock *MockTokenService) Verify(token string, kind service.TokenKind) (*service.Claims, error) {
	ret := _mock.Called(token, kind)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 *service.Claims
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(string, service.TokenKind) (*service.Claims, error)); ok {
		return returnFunc(token, kind)
	}
	if returnFunc, ok := ret.Get(0).(func(string, service.TokenKind) *service.Claims); ok {
		r0 = returnFunc(token, kind)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.Claims)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(string, service.TokenKind) error); ok {
		r1 = returnFunc(token, kind)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTokenService_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockTokenService_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
//   - token string
//   - kind service.TokenKind
func (_e *MockTokenService_Expecter) Verify(token interface{}, kind interface{}) *MockTokenService_Verify_Call {
	return &MockTokenService_Verify_Call{Call: _e.mock.On("Verify", token, kind)}
}

func (_c *MockTokenService_Verify_Call) Run(run func(token string, kind service.TokenKind)) *MockTokenService_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 string
		if args[0] != nil {
			arg0 = args[0].(string)
		}
		var arg1 service.TokenKind
		if args[1] != nil {
			arg1 = args[1].(service.TokenKind)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTokenService_Verify_Call) Return(r0 *service.Claims, r1 error) *MockTokenService_Verify_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockTokenService_Verify_Call) RunAndReturn(run func(string, service.TokenKind) (*service.Claims, error)) *MockTokenService_Verify_Call {
	_c.Call.Return(run)
	return _c
}

// HashToken provides a mock function for the type MockTokenService
func (_mock *MockTokenService) HashToken(token string) string {
	ret := _mock.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for HashToken")
	}

	var r0 string
	if returnFunc, ok := ret.Get(0).(func(string) string); ok {
		r0 = returnFunc(token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}
	return r0
}

// MockTokenService_HashToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HashToken'
type MockTokenService_HashToken_Call struct {
	*mock.Call
}

// HashToken is a helper method to define mock.On call
//   - token string
func (_e *MockTokenService_Expecter) HashToken(token interface{}) *MockTokenService_HashToken_Call {
	return &MockTokenService_HashToken_Call{Call: _e.mock.On("HashToken", token)}
}

func (_c *MockTokenService_HashToken_Call) Run(run func(token string)) *MockTokenService_HashToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 string
		if args[0] != nil {
			arg0 = args[0].(string)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockTokenService_HashToken_Call) Return(r0 string) *MockTokenService_HashToken_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockTokenService_HashToken_Call) RunAndReturn(run func(string) string) *MockTokenService_HashToken_Call {
	_c.Call.Return(run)
	return _c
}

// RefreshTokenTTL provides a mock function for the type MockTokenService
func (_mock *MockTokenService) RefreshTokenTTL() time.Duration {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for RefreshTokenTTL")
	}

	var r0 time.Duration
	if returnFunc, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = returnFunc()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(time.Duration)
		}
	}
	return r0
}

// MockTokenService_RefreshTokenTTL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RefreshTokenTTL'
type MockTokenService_RefreshTokenTTL_Call struct {
	*mock.Call
}

// RefreshTokenTTL is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) RefreshTokenTTL() *MockTokenService_RefreshTokenTTL_Call {
	return &MockTokenService_RefreshTokenTTL_Call{Call: _e.mock.On("RefreshTokenTTL")}
}

func (_c *MockTokenService_RefreshTokenTTL_Call) Run(run func()) *MockTokenService_RefreshTokenTTL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockTokenService_RefreshTokenTTL_Call) Return(r0 time.Duration) *MockTokenService_RefreshTokenTTL_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockTokenService_RefreshTokenTTL_Call) RunAndReturn(run func() time.Duration) *MockTokenService_RefreshTokenTTL_Call {
	_c.Call.Return(run)
	return _c
}
