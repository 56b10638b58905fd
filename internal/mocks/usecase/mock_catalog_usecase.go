package usecase

import (
	"context"

	"bookshop/internal/domain/entity"
	"bookshop/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// NewMockCatalogUsecase creates a new instance of MockCatalogUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCatalogUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogUsecase {
	mock := &MockCatalogUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockCatalogUsecase is a testify mock of the CatalogUsecase type
type MockCatalogUsecase struct {
	mock.Mock
}

type MockCatalogUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogUsecase) EXPECT() *MockCatalogUsecase_Expecter {
	return &MockCatalogUsecase_Expecter{mock: &_m.Mock}
}

// CreateCategory provides a mock function for the type MockCatalogUsecase
func (_mock *MockCatalogUsecase) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	ret := _mock.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateCategory")
	}

	var r0 *entity.Category
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.CreateCategoryInput) (*entity.Category, error)); ok {
		return returnFunc(ctx, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.CreateCategoryInput) *entity.Category); ok {
		r0 = returnFunc(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Category)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, usecase.CreateCategoryInput) error); ok {
		r1 = returnFunc(ctx, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogUsecase_CreateCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateCategory'
type MockCatalogUsecase_CreateCategory_Call struct {
	*mock.Call
}

// CreateCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.CreateCategoryInput
func (_e *MockCatalogUsecase_Expecter) CreateCategory(ctx interface{}, input interface{}) *MockCatalogUsecase_CreateCategory_Call {
	return &MockCatalogUsecase_CreateCategory_Call{Call: _e.mock.On("CreateCategory", ctx, input)}
}

func (_c *MockCatalogUsecase_CreateCategory_Call) Run(run func(ctx context.Context, input usecase.CreateCategoryInput)) *MockCatalogUsecase_CreateCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 usecase.CreateCategoryInput
		if args[1] != nil {
			arg1 = args[1].(usecase.CreateCategoryInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockCatalogUsecase_CreateCategory_Call) Return(r0 *entity.Category, r1 error) *MockCatalogUsecase_CreateCategory_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogUsecase_CreateCategory_Call) RunAndReturn(run func(context.Context, usecase.CreateCategoryInput) (*entity.Category, error)) *MockCatalogUsecase_CreateCategory_Call {
	_c.Call.Return(run)
	return _c
}

// ListCategories provides a mock function for the type MockCatalogUsecase
func (_mock *MockCatalogUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	ret := _mock.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCategories")
	}

	var r0 []*entity.Category
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context) ([]*entity.Category, error)); ok {
		return returnFunc(ctx)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context) []*entity.Category); ok {
		r0 = returnFunc(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Category)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = returnFunc(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogUsecase_ListCategories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCategories'
type MockCatalogUsecase_ListCategories_Call struct {
	*mock.Call
}

// ListCategories is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCatalogUsecase_Expecter) ListCategories(ctx interface{}) *MockCatalogUsecase_ListCategories_Call {
	return &MockCatalogUsecase_ListCategories_Call{Call: _e.mock.On("ListCategories", ctx)}
}

func (_c *MockCatalogUsecase_ListCategories_Call) Run(run func(ctx context.Context)) *MockCatalogUsecase_ListCategories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockCatalogUsecase_ListCategories_Call) Return(r0 []*entity.Category, r1 error) *MockCatalogUsecase_ListCategories_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogUsecase_ListCategories_Call) RunAndReturn(run func(context.Context) ([]*entity.Category, error)) *MockCatalogUsecase_ListCategories_Call {
	_c.Call.Return(run)
	return _c
}

// CreateAuthor provides a mock function for the type MockCatalogUsecase
func (_mock *MockCatalogUsecase) CreateAuthor(ctx context.Context, input usecase.CreateAuthorInput) (*entity.Author, error) {
	ret := _mock.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateAuthor")
	}

	var r0 *entity.Author
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.CreateAuthorInput) (*entity.Author, error)); ok {
		return returnFunc(ctx, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.CreateAuthorInput) *entity.Author); ok {
		r0 = returnFunc(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Author)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, usecase.CreateAuthorInput) error); ok {
		r1 = returnFunc(ctx, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogUsecase_CreateAuthor_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateAuthor'
type MockCatalogUsecase_CreateAuthor_Call struct {
	*mock.Call
}

// CreateAuthor is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.CreateAuthorInput
func (_e *MockCatalogUsecase_Expecter) CreateAuthor(ctx interface{}, input interface{}) *MockCatalogUsecase_CreateAuthor_Call {
	return &MockCatalogUsecase_CreateAuthor_Call{Call: _e.mock.On("CreateAuthor", ctx, input)}
}

func (_c *MockCatalogUsecase_CreateAuthor_Call) Run(run func(ctx context.Context, input usecase.CreateAuthorInput)) *MockCatalogUsecase_CreateAuthor_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 usecase.CreateAuthorInput
		if args[1] != nil {
			arg1 = args[1].(usecase.CreateAuthorInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockCatalogUsecase_CreateAuthor_Call) Return(r0 *entity.Author, r1 error) *MockCatalogUsecase_CreateAuthor_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogUsecase_CreateAuthor_Call) RunAndReturn(run func(context.Context, usecase.CreateAuthorInput) (*entity.Author, error)) *MockCatalogUsecase_CreateAuthor_Call {
	_c.Call.Return(run)
	return _c
}

// ListAuthors provides a mock function for the type MockCatalogUsecase
func (_mock *MockCatalogUsecase) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	ret := _mock.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListAuthors")
	}

	var r0 []*entity.Author
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context) ([]*entity.Author, error)); ok {
		return returnFunc(ctx)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context) []*entity.Author); ok {
		r0 = returnFunc(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Author)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = returnFunc(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogUsecase_ListAuthors_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListAuthors'
type MockCatalogUsecase_ListAuthors_Call struct {
	*mock.Call
}

// ListAuthors is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCatalogUsecase_Expecter) ListAuthors(ctx interface{}) *MockCatalogUsecase_ListAuthors_Call {
	return &MockCatalogUsecase_ListAuthors_Call{Call: _e.mock.On("ListAuthors", ctx)}
}

func (_c *MockCatalogUsecase_ListAuthors_Call) Run(run func(ctx context.Context)) *MockCatalogUsecase_ListAuthors_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockCatalogUsecase_ListAuthors_Call) Return(r0 []*entity.Author, r1 error) *MockCatalogUsecase_ListAuthors_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogUsecase_ListAuthors_Call) RunAndReturn(run func(context.Context) ([]*entity.Author, error)) *MockCatalogUsecase_ListAuthors_Call {
	_c.Call.Return(run)
	return _c
}

// CreateTag provides a mock function for the type MockCatalogUsecase
func (_mock *MockCatalogUsecase) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	ret := _mock.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for CreateTag")
	}

	var r0 *entity.Tag
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (*entity.Tag, error)); ok {
		return returnFunc(ctx, name)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) *entity.Tag); ok {
		r0 = returnFunc(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Tag)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, name)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogUsecase_CreateTag_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateTag'
type MockCatalogUsecase_CreateTag_Call struct {
	*mock.Call
}

// CreateTag is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
func (_e *MockCatalogUsecase_Expecter) CreateTag(ctx interface{}, name interface{}) *MockCatalogUsecase_CreateTag_Call {
	return &MockCatalogUsecase_CreateTag_Call{Call: _e.mock.On("CreateTag", ctx, name)}
}

func (_c *MockCatalogUsecase_CreateTag_Call) Run(run func(ctx context.Context, name string)) *MockCatalogUsecase_CreateTag_Call {
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

func (_c *MockCatalogUsecase_CreateTag_Call) Return(r0 *entity.Tag, r1 error) *MockCatalogUsecase_CreateTag_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogUsecase_CreateTag_Call) RunAndReturn(run func(context.Context, string) (*entity.Tag, error)) *MockCatalogUsecase_CreateTag_Call {
	_c.Call.Return(run)
	return _c
}

// ListTags provides a mock function for the type MockCatalogUsecase
func (_mock *MockCatalogUsecase) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	ret := _mock.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListTags")
	}

	var r0 []*entity.Tag
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context) ([]*entity.Tag, error)); ok {
		return returnFunc(ctx)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context) []*entity.Tag); ok {
		r0 = returnFunc(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Tag)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = returnFunc(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogUsecase_ListTags_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTags'
type MockCatalogUsecase_ListTags_Call struct {
	*mock.Call
}

// ListTags is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCatalogUsecase_Expecter) ListTags(ctx interface{}) *MockCatalogUsecase_ListTags_Call {
	return &MockCatalogUsecase_ListTags_Call{Call: _e.mock.On("ListTags", ctx)}
}

func (_c *MockCatalogUsecase_ListTags_Call) Run(run func(ctx context.Context)) *MockCatalogUsecase_ListTags_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockCatalogUsecase_ListTags_Call) Return(r0 []*entity.Tag, r1 error) *MockCatalogUsecase_ListTags_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogUsecase_ListTags_Call) RunAndReturn(run func(context.Context) ([]*entity.Tag, error)) *MockCatalogUsecase_ListTags_Call {
	_c.Call.Return(run)
	return _c
}
