package usecase

import (
	"context"

	"bookshop/internal/domain/entity"
	"bookshop/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// NewMockBookUsecase creates a new instance of MockBookUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBookUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookUsecase {
	mock := &MockBookUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockBookUsecase is a testify mock of the BookUsecase type
type MockBookUsecase struct {
	mock.Mock
}

type MockBookUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBookUsecase) EXPECT() *MockBookUsecase_Expecter {
	return &MockBookUsecase_Expecter{mock: &_m.Mock}
}

// Create provides a mock function for the type MockBookUsecase
func (_mock *MockBookUsecase) Create(ctx context.Context, ownerID int64, input usecase.CreateBookInput) (*entity.BookDetails, error) {
	ret := _mock.Called(ctx, ownerID, input)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *entity.BookDetails
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, usecase.CreateBookInput) (*entity.BookDetails, error)); ok {
		return returnFunc(ctx, ownerID, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, usecase.CreateBookInput) *entity.BookDetails); ok {
		r0 = returnFunc(ctx, ownerID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.BookDetails)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64, usecase.CreateBookInput) error); ok {
		r1 = returnFunc(ctx, ownerID, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookUsecase_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockBookUsecase_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID int64
//   - input usecase.CreateBookInput
func (_e *MockBookUsecase_Expecter) Create(ctx interface{}, ownerID interface{}, input interface{}) *MockBookUsecase_Create_Call {
	return &MockBookUsecase_Create_Call{Call: _e.mock.On("Create", ctx, ownerID, input)}
}

func (_c *MockBookUsecase_Create_Call) Run(run func(ctx context.Context, ownerID int64, input usecase.CreateBookInput)) *MockBookUsecase_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 usecase.CreateBookInput
		if args[2] != nil {
			arg2 = args[2].(usecase.CreateBookInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBookUsecase_Create_Call) Return(r0 *entity.BookDetails, r1 error) *MockBookUsecase_Create_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookUsecase_Create_Call) RunAndReturn(run func(context.Context, int64, usecase.CreateBookInput) (*entity.BookDetails, error)) *MockBookUsecase_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Edit provides a mock function for the type MockBookUsecase
func (_mock *MockBookUsecase) Edit(ctx context.Context, callerID int64, bookID int64, input usecase.EditBookInput) (*entity.BookDetails, error) {
	ret := _mock.Called(ctx, callerID, bookID, input)

	if len(ret) == 0 {
		panic("no return value specified for Edit")
	}

	var r0 *entity.BookDetails
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, int64, usecase.EditBookInput) (*entity.BookDetails, error)); ok {
		return returnFunc(ctx, callerID, bookID, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, int64, usecase.EditBookInput) *entity.BookDetails); ok {
		r0 = returnFunc(ctx, callerID, bookID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.BookDetails)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64, int64, usecase.EditBookInput) error); ok {
		r1 = returnFunc(ctx, callerID, bookID, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookUsecase_Edit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Edit'
type MockBookUsecase_Edit_Call struct {
	*mock.Call
}

// Edit is a helper method to define mock.On call
//   - ctx context.Context
//   - callerID int64
//   - bookID int64
//   - input usecase.EditBookInput
func (_e *MockBookUsecase_Expecter) Edit(ctx interface{}, callerID interface{}, bookID interface{}, input interface{}) *MockBookUsecase_Edit_Call {
	return &MockBookUsecase_Edit_Call{Call: _e.mock.On("Edit", ctx, callerID, bookID, input)}
}

func (_c *MockBookUsecase_Edit_Call) Run(run func(ctx context.Context, callerID int64, bookID int64, input usecase.EditBookInput)) *MockBookUsecase_Edit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 int64
		if args[2] != nil {
			arg2 = args[2].(int64)
		}
		var arg3 usecase.EditBookInput
		if args[3] != nil {
			arg3 = args[3].(usecase.EditBookInput)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockBookUsecase_Edit_Call) Return(r0 *entity.BookDetails, r1 error) *MockBookUsecase_Edit_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookUsecase_Edit_Call) RunAndReturn(run func(context.Context, int64, int64, usecase.EditBookInput) (*entity.BookDetails, error)) *MockBookUsecase_Edit_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function for the type MockBookUsecase
func (_mock *MockBookUsecase) Delete(ctx context.Context, callerID int64, bookID int64) error {
	ret := _mock.Called(ctx, callerID, bookID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, int64) error); ok {
		r0 = returnFunc(ctx, callerID, bookID)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockBookUsecase_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockBookUsecase_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - callerID int64
//   - bookID int64
func (_e *MockBookUsecase_Expecter) Delete(ctx interface{}, callerID interface{}, bookID interface{}) *MockBookUsecase_Delete_Call {
	return &MockBookUsecase_Delete_Call{Call: _e.mock.On("Delete", ctx, callerID, bookID)}
}

func (_c *MockBookUsecase_Delete_Call) Run(run func(ctx context.Context, callerID int64, bookID int64)) *MockBookUsecase_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 int64
		if args[2] != nil {
			arg2 = args[2].(int64)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBookUsecase_Delete_Call) Return(r0 error) *MockBookUsecase_Delete_Call {
	_c.Call.Return(r0)
	return _c
}

func (_c *MockBookUsecase_Delete_Call) RunAndReturn(run func(context.Context, int64, int64) error) *MockBookUsecase_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function for the type MockBookUsecase
func (_mock *MockBookUsecase) Get(ctx context.Context, bookID int64) (*entity.BookDetails, error) {
	ret := _mock.Called(ctx, bookID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.BookDetails
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) (*entity.BookDetails, error)); ok {
		return returnFunc(ctx, bookID)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64) *entity.BookDetails); ok {
		r0 = returnFunc(ctx, bookID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.BookDetails)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = returnFunc(ctx, bookID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookUsecase_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockBookUsecase_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - bookID int64
func (_e *MockBookUsecase_Expecter) Get(ctx interface{}, bookID interface{}) *MockBookUsecase_Get_Call {
	return &MockBookUsecase_Get_Call{Call: _e.mock.On("Get", ctx, bookID)}
}

func (_c *MockBookUsecase_Get_Call) Run(run func(ctx context.Context, bookID int64)) *MockBookUsecase_Get_Call {
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

func (_c *MockBookUsecase_Get_Call) Return(r0 *entity.BookDetails, r1 error) *MockBookUsecase_Get_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookUsecase_Get_Call) RunAndReturn(run func(context.Context, int64) (*entity.BookDetails, error)) *MockBookUsecase_Get_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function for the type MockBookUsecase
func (_mock *MockBookUsecase) List(ctx context.Context, input usecase.ListBooksInput) (*usecase.BookPage, error) {
	ret := _mock.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 *usecase.BookPage
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.ListBooksInput) (*usecase.BookPage, error)); ok {
		return returnFunc(ctx, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, usecase.ListBooksInput) *usecase.BookPage); ok {
		r0 = returnFunc(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.BookPage)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, usecase.ListBooksInput) error); ok {
		r1 = returnFunc(ctx, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookUsecase_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockBookUsecase_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.ListBooksInput
func (_e *MockBookUsecase_Expecter) List(ctx interface{}, input interface{}) *MockBookUsecase_List_Call {
	return &MockBookUsecase_List_Call{Call: _e.mock.On("List", ctx, input)}
}

func (_c *MockBookUsecase_List_Call) Run(run func(ctx context.Context, input usecase.ListBooksInput)) *MockBookUsecase_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 usecase.ListBooksInput
		if args[1] != nil {
			arg1 = args[1].(usecase.ListBooksInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockBookUsecase_List_Call) Return(r0 *usecase.BookPage, r1 error) *MockBookUsecase_List_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookUsecase_List_Call) RunAndReturn(run func(context.Context, usecase.ListBooksInput) (*usecase.BookPage, error)) *MockBookUsecase_List_Call {
	_c.Call.Return(run)
	return _c
}

// ListMine provides a mock function for the type MockBookUsecase
func (_mock *MockBookUsecase) ListMine(ctx context.Context, callerID int64, input usecase.ListBooksInput) (*usecase.BookPage, error) {
	ret := _mock.Called(ctx, callerID, input)

	if len(ret) == 0 {
		panic("no return value specified for ListMine")
	}

	var r0 *usecase.BookPage
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, usecase.ListBooksInput) (*usecase.BookPage, error)); ok {
		return returnFunc(ctx, callerID, input)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int64, usecase.ListBooksInput) *usecase.BookPage); ok {
		r0 = returnFunc(ctx, callerID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.BookPage)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int64, usecase.ListBooksInput) error); ok {
		r1 = returnFunc(ctx, callerID, input)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockBookUsecase_ListMine_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListMine'
type MockBookUsecase_ListMine_Call struct {
	*mock.Call
}

// ListMine is a helper method to define mock.On call
//   - ctx context.Context
//   - callerID int64
//   - input usecase.ListBooksInput
func (_e *MockBookUsecase_Expecter) ListMine(ctx interface{}, callerID interface{}, input interface{}) *MockBookUsecase_ListMine_Call {
	return &MockBookUsecase_ListMine_Call{Call: _e.mock.On("ListMine", ctx, callerID, input)}
}

func (_c *MockBookUsecase_ListMine_Call) Run(run func(ctx context.Context, callerID int64, input usecase.ListBooksInput)) *MockBookUsecase_ListMine_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int64
		if args[1] != nil {
			arg1 = args[1].(int64)
		}
		var arg2 usecase.ListBooksInput
		if args[2] != nil {
			arg2 = args[2].(usecase.ListBooksInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBookUsecase_ListMine_Call) Return(r0 *usecase.BookPage, r1 error) *MockBookUsecase_ListMine_Call {
	_c.Call.Return(r0, r1)
	return _c
}

func (_c *MockBookUsecase_ListMine_Call) RunAndReturn(run func(context.Context, int64, usecase.ListBooksInput) (*usecase.BookPage, error)) *MockBookUsecase_ListMine_Call {
	_c.Call.Return(run)
	return _c
}
