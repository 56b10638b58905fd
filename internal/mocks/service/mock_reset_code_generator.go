package service

import (
	"time"

	mock "github.com/stretchr/testify/mock"
)

// NewMockResetCodeGenerator creates a new instance of MockResetCodeGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockResetCodeGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResetCodeGenerator {
	mock := &MockResetCodeGenerator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockResetCodeGenerator is a testify mock of the ResetCodeGenerator type
type MockResetCodeGenerator struct {
	mock.Mock
}

type MockResetCodeGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockResetCodeGenerator) EXPECT() *MockResetCodeGenerator_Expecter {
	return &MockResetCodeGenerator_Expecter{mock: &_m.Mock}
}

// Generate provides a mock function for the type MockResetCodeGenerator
func (_mock *MockResetCodeGenerator) Generate() (string, string, error) {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for Generate")
	}

	var r0 string
	var r1 string
	var r2 error
	if returnFunc, ok := ret.Get(0).(func() (string, string, error)); ok {
		return returnFunc()
	}
	if returnFunc, ok := ret.Get(0).(func() string); ok {
		r0 = returnFunc()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}
	if returnFunc, ok := ret.Get(1).(func() string); ok {
		r1 = returnFunc()
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(string)
		}
	}
	if returnFunc, ok := ret.Get(2).(func() error); ok {
		r2 = returnFunc()
	} else {
		r2 = ret.Error(2)
	}
	return r0, r1, r2
}

// MockResetCodeGenerator_Generate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Generate'
type MockResetCodeGenerator_Generate_Call struct {
	*mock.Call
}

// Generate is a helper method to define mock.On call
func (_e *MockResetCodeGenerator_Expecter) Generate() *MockResetCodeGenerator_Generate_Call {
	return &MockResetCodeGenerator_Generate_Call{Call: _e.mock.On("Generate")}
}

func (_c *MockResetCodeGenerator_Generate_Call) Run(run func()) *MockResetCodeGenerator_Generate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockResetCodeGenerator_Generate_Call) Return(r0 string, r1 string, r2 error) *MockResetCodeGenerator_Generate_Call {
	_c.Call.Return(r0, r1, r2)
	return _c
}

func (_c *MockResetCodeGenerator_Generate_Call) RunAndReturn(run func() (string, string, error)) *MockResetCodeGenerator_Generate_Call {
	_c.Call.Return(run)
	return _c
}

// Hash provides a mock function for the type MockResetCodeGenerator
func (_mock *MockResetCodeGenerator) Hash(code string) string {
	ret := _mock.Called(code)

	if len(ret) == 0 {
		panic("no return value specified for Hash")
	}

	var r0 string
	if returnFunc, ok := ret.Get(0).(func(string) string); ok {
		r0 = returnFunc(code)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}
	return r0
}

// MockResetCodeGenerator_Hash_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Hash'
type MockResetCodeGenerator_Hash_Call struct {
	*mock.Call
}

// Hash is a helper method to define mock.On call
//   - code string
func (_e *MockResetCodeGenerator_Expecter) Hash(code interface{}) *MockResetCodeGenerator_Hash_Call {
	return &MockResetCodeGenerator_Hash_Call{Call: _e.mock.On("Hash", code)}
}

func (_c *MockResetCodeGenerator_Hash_Call) Run(run func(code string)) *MockResetCodeGenerator_Hash_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 string
		if args[0] != nil {
			arg0 = args[0].(string)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockResetCodeGenerator_Hash_Call) Return(r0 string) *MockResetCodeGenerator_Hash_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockResetCodeGenerator_Hash_Call) RunAndReturn(run func(string) string) *MockResetCodeGenerator_Hash_Call {
	_c.Call.Return(run)
	return _c
}

// TTL provides a mock function for the type MockResetCodeGenerator
func (_mock *MockResetCodeGenerator) TTL() time.Duration {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for TTL")
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

// MockResetCodeGenerator_TTL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TTL'
type MockResetCodeGenerator_TTL_Call struct {
	*mock.Call
}

// TTL is a helper method to define mock.On call
func (_e *MockResetCodeGenerator_Expecter) TTL() *MockResetCodeGenerator_TTL_Call {
	return &MockResetCodeGenerator_TTL_Call{Call: _e.mock.On("TTL")}
}

func (_c *MockResetCodeGenerator_TTL_Call) Run(run func()) *MockResetCodeGenerator_TTL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockResetCodeGenerator_TTL_Call) Return(r0 time.Duration) *MockResetCodeGenerator_TTL_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockResetCodeGenerator_TTL_Call) RunAndReturn(run func() time.Duration) *MockResetCodeGenerator_TTL_Call {
	_c.Call.Return(run)
	return _c
}
