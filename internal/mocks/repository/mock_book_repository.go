package repository

import (
	"context"

	"bookshop/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// NewMockBookRepository creates a new instance of MockBookRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBookRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookRepository {
	mock := &MockBookRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockBookRepository is a testify mock of the BookRepository type
type MockBookRepository struct {
	mock.Mock
}

type MockBookRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBookRepository) EXPECT() *MockBookRepository_Expecter {
	return &MockBookRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) Create(ctx context.Context, book *entity.Book) error {
	ret := _mock.Called(ctx, book)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, *entity.Book) error); ok {
		r0 = returnFunc(ctx, book)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockBookRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockBookRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - book *entity.Book
func (_e *MockBookRepository_Expecter) Create(ctx interface{}, book interface{}) *MockBookRepository_Create_Call {
	return &MockBookRepository_Create_Call{Call: _e.mock.On("Create", ctx, book)}
}

func (_c *MockBookRepository_Create_Call) Run(run func(ctx context.Context, book *entity.Book)) *MockBookRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Book
		if args[1] != nil {
			arg1 = args[1].(*entity.Book)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockBookRepository_Create_Call) Return(r0 error) *MockBookRepository_Create_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockBookRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Book) error) *MockBookRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Book
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (*entity.Book, error)); ok {
		return returnFunc(ctx, id)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) *entity.Book); ok {
		r0 = returnFunc(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Book)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockBookRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockBookRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockBookRepository_FindByID_Call {
	return &MockBookRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockBookRepository_FindByID_Call) Run(run func(ctx context.Context, id int64)) *MockBookRepository_FindByID_Call {
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

func (_c *MockBookRepository_FindByID_Call) Return(r0 *entity.Book, r1 error) *MockBookRepository_FindByID_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookRepository_FindByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.Book, error)) *MockBookRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindDetailsByID provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) FindDetailsByID(ctx context.Context, id int64) (*entity.BookDetails, error) {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindDetailsByID")
	}

	var r0 *entity.BookDetails
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (*entity.BookDetails, error)); ok {
		return returnFunc(ctx, id)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) *entity.BookDetails); ok {
		r0 = returnFunc(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.BookDetails)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookRepository_FindDetailsByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindDetailsByID'
type MockBookRepository_FindDetailsByID_Call struct {
	*mock.Call
}

// FindDetailsByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockBookRepository_Expecter) FindDetailsByID(ctx interface{}, id interface{}) *MockBookRepository_FindDetailsByID_Call {
	return &MockBookRepository_FindDetailsByID_Call{Call: _e.mock.On("FindDetailsByID", ctx, id)}
}

func (_c *MockBookRepository_FindDetailsByID_Call) Run(run func(ctx context.Context, id int64)) *MockBookRepository_FindDetailsByID_Call {
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

func (_c *MockBookRepository_FindDetailsByID_Call) Return(r0 *entity.BookDetails, r1 error) *MockBookRepository_FindDetailsByID_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookRepository_FindDetailsByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.BookDetails, error)) *MockBookRepository_FindDetailsByID_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) Update(ctx context.Context, id int64, update entity.BookUpdate) error {
	ret := _mock.Called(ctx, id, update)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, entity.BookUpdate) error); ok {
		r0 = returnFunc(ctx, id, update)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockBookRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockBookRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
//   - update entity.BookUpdate
func (_e *MockBookRepository_Expecter) Update(ctx interface{}, id interface{}, update interface{}) *MockBookRepository_Update_Call {
	return &MockBookRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, update)}
}

func (_c *MockBookRepository_Update_Call) Run(run func(ctx context.Context, id int64, update entity.BookUpdate)) *MockBookRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 entity.BookUpdate
		if args[2] != nil {
			arg2 = args[2].(entity.BookUpdate)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBookRepository_Update_Call) Return(r0 error) *MockBookRepository_Update_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockBookRepository_Update_Call) RunAndReturn(run func(context.Context, int64, entity.BookUpdate) error) *MockBookRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) Delete(ctx context.Context, id int64) error {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = returnFunc(ctx, id)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockBookRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockBookRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockBookRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockBookRepository_Delete_Call {
	return &MockBookRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockBookRepository_Delete_Call) Run(run func(ctx context.Context, id int64)) *MockBookRepository_Delete_Call {
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

func (_c *MockBookRepository_Delete_Call) Return(r0 error) *MockBookRepository_Delete_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockBookRepository_Delete_Call) RunAndReturn(run func(context.Context, int64) error) *MockBookRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// AttachTags provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) AttachTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	ret := _mock.Called(ctx, bookID, tagIDs)

	if len(ret) == 0 {
		panic("no return value specified for AttachTags")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, []int64) error); ok {
		r0 = returnFunc(ctx, bookID, tagIDs)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockBookRepository_AttachTags_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AttachTags'
type MockBookRepository_AttachTags_Call struct {
	*mock.Call
}

// AttachTags is a helper method to define mock.On call
//   - ctx context.Context
//   - bookID int64
//   - tagIDs []int64
func (_e *MockBookRepository_Expecter) AttachTags(ctx interface{}, bookID interface{}, tagIDs interface{}) *MockBookRepository_AttachTags_Call {
	return &MockBookRepository_AttachTags_Call{Call: _e.mock.On("AttachTags", ctx, bookID, tagIDs)}
}

func (_c *MockBookRepository_AttachTags_Call) Run(run func(ctx context.Context, bookID int64, tagIDs []int64)) *MockBookRepository_AttachTags_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 []int64
		if args[2] != nil {
			arg2 = args[2].([]int64)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBookRepository_AttachTags_Call) Return(r0 error) *MockBookRepository_AttachTags_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockBookRepository_AttachTags_Call) RunAndReturn(run func(context.Context, int64, []int64) error) *MockBookRepository_AttachTags_Call {
	_c.Call.Return(run)
	return _c
}

// ReplaceTags provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	ret := _mock.Called(ctx, bookID, tagIDs)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceTags")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, []int64) error); ok {
		r0 = returnFunc(ctx, bookID, tagIDs)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockBookRepository_ReplaceTags_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReplaceTags'
type MockBookRepository_ReplaceTags_Call struct {
	*mock.Call
}

// ReplaceTags is a helper method to define mock.On call
//   - ctx context.Context
//   - bookID int64
//   - tagIDs []int64
func (_e *MockBookRepository_Expecter) ReplaceTags(ctx interface{}, bookID interface{}, tagIDs interface{}) *MockBookRepository_ReplaceTags_Call {
	return &MockBookRepository_ReplaceTags_Call{Call: _e.mock.On("ReplaceTags", ctx, bookID, tagIDs)}
}

func (_c *MockBookRepository_ReplaceTags_Call) Run(run func(ctx context.Context, bookID int64, tagIDs []int64)) *MockBookRepository_ReplaceTags_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 []int64
		if args[2] != nil {
			arg2 = args[2].([]int64)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBookRepository_ReplaceTags_Call) Return(r0 error) *MockBookRepository_ReplaceTags_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockBookRepository_ReplaceTags_Call) RunAndReturn(run func(context.Context, int64, []int64) error) *MockBookRepository_ReplaceTags_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) List(ctx context.Context, query entity.BookListQuery) ([]*entity.BookDetails, error) {
	ret := _mock.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.BookDetails
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.BookListQuery) ([]*entity.BookDetails, error)); ok {
		return returnFunc(ctx, query)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.BookListQuery) []*entity.BookDetails); ok {
		r0 = returnFunc(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.BookDetails)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, entity.BookListQuery) error); ok {
		r1 = returnFunc(ctx, query)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockBookRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - query entity.BookListQuery
func (_e *MockBookRepository_Expecter) List(ctx interface{}, query interface{}) *MockBookRepository_List_Call {
	return &MockBookRepository_List_Call{Call: _e.mock.On("List", ctx, query)}
}

func (_c *MockBookRepository_List_Call) Run(run func(ctx context.Context, query entity.BookListQuery)) *MockBookRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 entity.BookListQuery
		if args[1] != nil {
			arg1 = args[1].(entity.BookListQuery)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockBookRepository_List_Call) Return(r0 []*entity.BookDetails, r1 error) *MockBookRepository_List_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookRepository_List_Call) RunAndReturn(run func(context.Context, entity.BookListQuery) ([]*entity.BookDetails, error)) *MockBookRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Count provides a mock function for the type MockBookRepository
func (_mock *MockBookRepository) Count(ctx context.Context, filter entity.BookFilter) (int64, error) {
	ret := _mock.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for Count")
	}

	var r0 int64
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.BookFilter) (int64, error)); ok {
		return returnFunc(ctx, filter)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.BookFilter) int64); ok {
		r0 = returnFunc(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(int64)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, entity.BookFilter) error); ok {
		r1 = returnFunc(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookRepository_Count_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Count'
type MockBookRepository_Count_Call struct {
	*mock.Call
}

// Count is a helper method to define mock.On call
//   - ctx context.Context
//   - filter entity.BookFilter
func (_e *MockBookRepository_Expecter) Count(ctx interface{}, filter interface{}) *MockBookRepository_Count_Call {
	return &MockBookRepository_Count_Call{Call: _e.mock.On("Count", ctx, filter)}
}

func (_c *MockBookRepository_Count_Call) Run(run func(ctx context.Context, filter entity.BookFilter)) *MockBookRepository_Count_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 entity.BookFilter
		if args[1] != nil {
			arg1 = args[1].(entity.BookFilter)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockBookRepository_Count_Call) Return(r0 int64, r1 error) *MockBookRepository_Count_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookRepository_Count_Call) RunAndReturn(run func(context.Context, entity.BookFilter) (int64, error)) *MockBookRepository_Count_Call {
	_c.Call.Return(run)
	return _c
}
