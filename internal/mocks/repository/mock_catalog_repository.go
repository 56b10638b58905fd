package repository

import (
	"context"

	"bookshop/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// NewMockCatalogRepository creates a new instance of MockCatalogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogRepository {
	mock := &MockCatalogRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockCatalogRepository is a testify mock of the CatalogRepository type
type MockCatalogRepository struct {
	mock.Mock
}

type MockCatalogRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogRepository) EXPECT() *MockCatalogRepository_Expecter {
	return &MockCatalogRepository_Expecter{mock: &_m.Mock}
}

// CreateCategory provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	ret := _mock.Called(ctx, category)

	if len(ret) == 0 {
		panic("no return value specified for CreateCategory")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, *entity.Category) error); ok {
		r0 = returnFunc(ctx, category)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockCatalogRepository_CreateCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateCategory'
type MockCatalogRepository_CreateCategory_Call struct {
	*mock.Call
}

// CreateCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - category *entity.Category
func (_e *MockCatalogRepository_Expecter) CreateCategory(ctx interface{}, category interface{}) *MockCatalogRepository_CreateCategory_Call {
	return &MockCatalogRepository_CreateCategory_Call{Call: _e.mock.On("CreateCategory", ctx, category)}
}

func (_c *MockCatalogRepository_CreateCategory_Call) Run(run func(ctx context.Context, category *entity.Category)) *MockCatalogRepository_CreateCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Category
		if args[1] != nil {
			arg1 = args[1].(*entity.Category)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockCatalogRepository_CreateCategory_Call) Return(r0 error) *MockCatalogRepository_CreateCategory_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockCatalogRepository_CreateCategory_Call) RunAndReturn(run func(context.Context, *entity.Category) error) *MockCatalogRepository_CreateCategory_Call {
	_c.Call.Return(run)
	return _c
}

// FindCategoryByID provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) FindCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindCategoryByID")
	}

	var r0 *entity.Category
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (*entity.Category, error)); ok {
		return returnFunc(ctx, id)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) *entity.Category); ok {
		r0 = returnFunc(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Category)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogRepository_FindCategoryByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindCategoryByID'
type MockCatalogRepository_FindCategoryByID_Call struct {
	*mock.Call
}

// FindCategoryByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockCatalogRepository_Expecter) FindCategoryByID(ctx interface{}, id interface{}) *MockCatalogRepository_FindCategoryByID_Call {
	return &MockCatalogRepository_FindCategoryByID_Call{Call: _e.mock.On("FindCategoryByID", ctx, id)}
}

func (_c *MockCatalogRepository_FindCategoryByID_Call) Run(run func(ctx context.Context, id int64)) *MockCatalogRepository_FindCategoryByID_Call {
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

func (_c *MockCatalogRepository_FindCategoryByID_Call) Return(r0 *entity.Category, r1 error) *MockCatalogRepository_FindCategoryByID_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_FindCategoryByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.Category, error)) *MockCatalogRepository_FindCategoryByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindCategoryByName provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) FindCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	ret := _mock.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for FindCategoryByName")
	}

	var r0 *entity.Category
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (*entity.Category, error)); ok {
		return returnFunc(ctx, name)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) *entity.Category); ok {
		r0 = returnFunc(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Category)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, name)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogRepository_FindCategoryByName_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindCategoryByName'
type MockCatalogRepository_FindCategoryByName_Call struct {
	*mock.Call
}

// FindCategoryByName is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
func (_e *MockCatalogRepository_Expecter) FindCategoryByName(ctx interface{}, name interface{}) *MockCatalogRepository_FindCategoryByName_Call {
	return &MockCatalogRepository_FindCategoryByName_Call{Call: _e.mock.On("FindCategoryByName", ctx, name)}
}

func (_c *MockCatalogRepository_FindCategoryByName_Call) Run(run func(ctx context.Context, name string)) *MockCatalogRepository_FindCategoryByName_Call {
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

func (_c *MockCatalogRepository_FindCategoryByName_Call) Return(r0 *entity.Category, r1 error) *MockCatalogRepository_FindCategoryByName_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_FindCategoryByName_Call) RunAndReturn(run func(context.Context, string) (*entity.Category, error)) *MockCatalogRepository_FindCategoryByName_Call {
	_c.Call.Return(run)
	return _c
}

// ListCategories provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
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

// MockCatalogRepository_ListCategories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCategories'
type MockCatalogRepository_ListCategories_Call struct {
	*mock.Call
}

// ListCategories is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCatalogRepository_Expecter) ListCategories(ctx interface{}) *MockCatalogRepository_ListCategories_Call {
	return &MockCatalogRepository_ListCategories_Call{Call: _e.mock.On("ListCategories", ctx)}
}

func (_c *MockCatalogRepository_ListCategories_Call) Run(run func(ctx context.Context)) *MockCatalogRepository_ListCategories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockCatalogRepository_ListCategories_Call) Return(r0 []*entity.Category, r1 error) *MockCatalogRepository_ListCategories_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_ListCategories_Call) RunAndReturn(run func(context.Context) ([]*entity.Category, error)) *MockCatalogRepository_ListCategories_Call {
	_c.Call.Return(run)
	return _c
}

// CreateAuthor provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) CreateAuthor(ctx context.Context, author *entity.Author) error {
	ret := _mock.Called(ctx, author)

	if len(ret) == 0 {
		panic("no return value specified for CreateAuthor")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, *entity.Author) error); ok {
		r0 = returnFunc(ctx, author)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockCatalogRepository_CreateAuthor_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateAuthor'
type MockCatalogRepository_CreateAuthor_Call struct {
	*mock.Call
}

// CreateAuthor is a helper method to define mock.On call
//   - ctx context.Context
//   - author *entity.Author
func (_e *MockCatalogRepository_Expecter) CreateAuthor(ctx interface{}, author interface{}) *MockCatalogRepository_CreateAuthor_Call {
	return &MockCatalogRepository_CreateAuthor_Call{Call: _e.mock.On("CreateAuthor", ctx, author)}
}

func (_c *MockCatalogRepository_CreateAuthor_Call) Run(run func(ctx context.Context, author *entity.Author)) *MockCatalogRepository_CreateAuthor_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Author
		if args[1] != nil {
			arg1 = args[1].(*entity.Author)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockCatalogRepository_CreateAuthor_Call) Return(r0 error) *MockCatalogRepository_CreateAuthor_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockCatalogRepository_CreateAuthor_Call) RunAndReturn(run func(context.Context, *entity.Author) error) *MockCatalogRepository_CreateAuthor_Call {
	_c.Call.Return(run)
	return _c
}

// FindAuthorByID provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) FindAuthorByID(ctx context.Context, id int64) (*entity.Author, error) {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindAuthorByID")
	}

	var r0 *entity.Author
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (*entity.Author, error)); ok {
		return returnFunc(ctx, id)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) *entity.Author); ok {
		r0 = returnFunc(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Author)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogRepository_FindAuthorByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAuthorByID'
type MockCatalogRepository_FindAuthorByID_Call struct {
	*mock.Call
}

// FindAuthorByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockCatalogRepository_Expecter) FindAuthorByID(ctx interface{}, id interface{}) *MockCatalogRepository_FindAuthorByID_Call {
	return &MockCatalogRepository_FindAuthorByID_Call{Call: _e.mock.On("FindAuthorByID", ctx, id)}
}

func (_c *MockCatalogRepository_FindAuthorByID_Call) Run(run func(ctx context.Context, id int64)) *MockCatalogRepository_FindAuthorByID_Call {
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

func (_c *MockCatalogRepository_FindAuthorByID_Call) Return(r0 *entity.Author, r1 error) *MockCatalogRepository_FindAuthorByID_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_FindAuthorByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.Author, error)) *MockCatalogRepository_FindAuthorByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindAuthorByName provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) FindAuthorByName(ctx context.Context, name string) (*entity.Author, error) {
	ret := _mock.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for FindAuthorByName")
	}

	var r0 *entity.Author
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (*entity.Author, error)); ok {
		return returnFunc(ctx, name)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) *entity.Author); ok {
		r0 = returnFunc(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Author)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, name)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogRepository_FindAuthorByName_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAuthorByName'
type MockCatalogRepository_FindAuthorByName_Call struct {
	*mock.Call
}

// FindAuthorByName is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
func (_e *MockCatalogRepository_Expecter) FindAuthorByName(ctx interface{}, name interface{}) *MockCatalogRepository_FindAuthorByName_Call {
	return &MockCatalogRepository_FindAuthorByName_Call{Call: _e.mock.On("FindAuthorByName", ctx, name)}
}

func (_c *MockCatalogRepository_FindAuthorByName_Call) Run(run func(ctx context.Context, name string)) *MockCatalogRepository_FindAuthorByName_Call {
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

func (_c *MockCatalogRepository_FindAuthorByName_Call) Return(r0 *entity.Author, r1 error) *MockCatalogRepository_FindAuthorByName_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_FindAuthorByName_Call) RunAndReturn(run func(context.Context, string) (*entity.Author, error)) *MockCatalogRepository_FindAuthorByName_Call {
	_c.Call.Return(run)
	return _c
}

// ListAuthors provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
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

// MockCatalogRepository_ListAuthors_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListAuthors'
type MockCatalogRepository_ListAuthors_Call struct {
	*mock.Call
}

// ListAuthors is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCatalogRepository_Expecter) ListAuthors(ctx interface{}) *MockCatalogRepository_ListAuthors_Call {
	return &MockCatalogRepository_ListAuthors_Call{Call: _e.mock.On("ListAuthors", ctx)}
}

func (_c *MockCatalogRepository_ListAuthors_Call) Run(run func(ctx context.Context)) *MockCatalogRepository_ListAuthors_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockCatalogRepository_ListAuthors_Call) Return(r0 []*entity.Author, r1 error) *MockCatalogRepository_ListAuthors_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_ListAuthors_Call) RunAndReturn(run func(context.Context) ([]*entity.Author, error)) *MockCatalogRepository_ListAuthors_Call {
	_c.Call.Return(run)
	return _c
}

// CreateTag provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) CreateTag(ctx context.Context, tag *entity.Tag) error {
	ret := _mock.Called(ctx, tag)

	if len(ret) == 0 {
		panic("no return value specified for CreateTag")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, *entity.Tag) error); ok {
		r0 = returnFunc(ctx, tag)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockCatalogRepository_CreateTag_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateTag'
type MockCatalogRepository_CreateTag_Call struct {
	*mock.Call
}

// CreateTag is a helper method to define mock.On call
//   - ctx context.Context
//   - tag *entity.Tag
func (_e *MockCatalogRepository_Expecter) CreateTag(ctx interface{}, tag interface{}) *MockCatalogRepository_CreateTag_Call {
	return &MockCatalogRepository_CreateTag_Call{Call: _e.mock.On("CreateTag", ctx, tag)}
}

func (_c *MockCatalogRepository_CreateTag_Call) Run(run func(ctx context.Context, tag *entity.Tag)) *MockCatalogRepository_CreateTag_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Tag
		if args[1] != nil {
			arg1 = args[1].(*entity.Tag)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockCatalogRepository_CreateTag_Call) Return(r0 error) *MockCatalogRepository_CreateTag_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockCatalogRepository_CreateTag_Call) RunAndReturn(run func(context.Context, *entity.Tag) error) *MockCatalogRepository_CreateTag_Call {
	_c.Call.Return(run)
	return _c
}

// FindTagByName provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) FindTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	ret := _mock.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for FindTagByName")
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

// MockCatalogRepository_FindTagByName_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindTagByName'
type MockCatalogRepository_FindTagByName_Call struct {
	*mock.Call
}

// FindTagByName is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
func (_e *MockCatalogRepository_Expecter) FindTagByName(ctx interface{}, name interface{}) *MockCatalogRepository_FindTagByName_Call {
	return &MockCatalogRepository_FindTagByName_Call{Call: _e.mock.On("FindTagByName", ctx, name)}
}

func (_c *MockCatalogRepository_FindTagByName_Call) Run(run func(ctx context.Context, name string)) *MockCatalogRepository_FindTagByName_Call {
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

func (_c *MockCatalogRepository_FindTagByName_Call) Return(r0 *entity.Tag, r1 error) *MockCatalogRepository_FindTagByName_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_FindTagByName_Call) RunAndReturn(run func(context.Context, string) (*entity.Tag, error)) *MockCatalogRepository_FindTagByName_Call {
	_c.Call.Return(run)
	return _c
}

// ListTags provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) ListTags(ctx context.Context) ([]*entity.Tag, error) {
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

// MockCatalogRepository_ListTags_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTags'
type MockCatalogRepository_ListTags_Call struct {
	*mock.Call
}

// ListTags is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCatalogRepository_Expecter) ListTags(ctx interface{}) *MockCatalogRepository_ListTags_Call {
	return &MockCatalogRepository_ListTags_Call{Call: _e.mock.On("ListTags", ctx)}
}

func (_c *MockCatalogRepository_ListTags_Call) Run(run func(ctx context.Context)) *MockCatalogRepository_ListTags_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockCatalogRepository_ListTags_Call) Return(r0 []*entity.Tag, r1 error) *MockCatalogRepository_ListTags_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_ListTags_Call) RunAndReturn(run func(context.Context) ([]*entity.Tag, error)) *MockCatalogRepository_ListTags_Call {
	_c.Call.Return(run)
	return _c
}

// CountTags provides a mock function for the type MockCatalogRepository
func (_mock *MockCatalogRepository) CountTags(ctx context.Context, ids []int64) (int64, error) {
	ret := _mock.Called(ctx, ids)

	if len(ret) == 0 {
		panic("no return value specified for CountTags")
	}

	var r0 int64
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, []int64) (int64, error)); ok {
		return returnFunc(ctx, ids)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, []int64) int64); ok {
		r0 = returnFunc(ctx, ids)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(int64)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, []int64) error); ok {
		r1 = returnFunc(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCatalogRepository_CountTags_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountTags'
type MockCatalogRepository_CountTags_Call struct {
	*mock.Call
}

// CountTags is a helper method to define mock.On call
//   - ctx context.Context
//   - ids []int64
func (_e *MockCatalogRepository_Expecter) CountTags(ctx interface{}, ids interface{}) *MockCatalogRepository_CountTags_Call {
	return &MockCatalogRepository_CountTags_Call{Call: _e.mock.On("CountTags", ctx, ids)}
}

func (_c *MockCatalogRepository_CountTags_Call) Run(run func(ctx context.Context, ids []int64)) *MockCatalogRepository_CountTags_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 []int64
		if args[1] != nil {
			arg1 = args[1].([]int64)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockCatalogRepository_CountTags_Call) Return(r0 int64, r1 error) *MockCatalogRepository_CountTags_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockCatalogRepository_CountTags_Call) RunAndReturn(run func(context.Context, []int64) (int64, error)) *MockCatalogRepository_CountTags_Call {
	_c.Call.Return(run)
	return _c
}
