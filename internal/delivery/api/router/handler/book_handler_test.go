package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	mockUC "bookshop/internal/mocks/usecase"
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const bookOwnerID int64 = 5

func newBookTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockBookUsecase) {
	t.Helper()

	bookUC := mockUC.NewMockBookUsecase(t)
	h := NewBookHandler(BookHandlerParams{BookUC: bookUC})

	e := newTestEcho()
	e.GET("/books", h.List)
	e.GET("/books/mine", h.ListMine, asUser(bookOwnerID))
	e.GET("/books/:id", h.Get)
	e.POST("/books", h.Create, asUser(bookOwnerID))
	e.PATCH("/books/:id", h.Edit, asUser(bookOwnerID))
	e.DELETE("/books/:id", h.Delete, asUser(bookOwnerID))

	return e, bookUC
}

func testBookDetails() *entity.BookDetails {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	return &entity.BookDetails{
		ID:        11,
		Title:     "The Dispossessed",
		Price:     1500,
		OwnerID:   bookOwnerID,
		Category:  &entity.NamedRef{ID: 1, Name: "Science Fiction"},
		Author:    &entity.NamedRef{ID: 2, Name: "Ursula K. Le Guin"},
		Tags:      []entity.NamedRef{},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func urlencodedRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func TestBookHandler_Create_Multipart(t *testing.T) {
	e, bookUC := newBookTestEcho(t)

	var gotContent string
	bookUC.EXPECT().Create(mock.Anything, bookOwnerID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ int64, in usecase.CreateBookInput) (*entity.BookDetails, error) {
			assert.Equal(t, "The Dispossessed", in.Title)
			assert.Equal(t, int64(1500), in.Price)
			assert.Equal(t, int64(1), in.CategoryID)
			assert.Equal(t, int64(2), in.AuthorID)
			assert.Equal(t, []int64{3, 4}, in.TagIDs)
			require.NotNil(t, in.Description)
			assert.Equal(t, "An ambiguous utopia", *in.Description)
			require.NotNil(t, in.Thumbnail)
			assert.Equal(t, "cover.png", in.Thumbnail.Filename)
			raw, err := io.ReadAll(in.Thumbnail.Content)
			require.NoError(t, err)
			gotContent = string(raw)

			return testBookDetails(), nil
		}).Once()

	req := multipartRequest(t, http.MethodPost, "/books", [][2]string{
		{"title", "The Dispossessed"},
		{"description", "An ambiguous utopia"},
		{"price", "1500"},
		{"categoryId", "1"},
		{"authorId", "2"},
		{"tags", "3"},
		{"tags", "4"},
	}, &formFile{field: "thumbnail", filename: "cover.png", content: []byte("png-bytes")})
	rec := serve(e, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "png-bytes", gotContent)

	var data entity.BookDetails
	decodeData(t, rec, &data)
	assert.Equal(t, int64(11), data.ID)
	assert.NotNil(t, data.Tags)
}

func TestBookHandler_Create_Urlencoded(t *testing.T) {
	e, bookUC := newBookTestEcho(t)

	bookUC.EXPECT().Create(mock.Anything, bookOwnerID, usecase.CreateBookInput{
		Title:      "Earthsea",
		Price:      900,
		CategoryID: 1,
		AuthorID:   2,
	}).Return(testBookDetails(), nil).Once()

	rec := serve(e, urlencodedRequest(http.MethodPost, "/books", url.Values{
		"title":      {"Earthsea"},
		"price":      {"900"},
		"categoryId": {"1"},
		"authorId":   {"2"},
	}))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestBookHandler_Create_BadNumbers(t *testing.T) {
	e, _ := newBookTestEcho(t)

	rec := serve(e, urlencodedRequest(http.MethodPost, "/books", url.Values{
		"title":      {"Earthsea"},
		"price":      {"cheap"},
		"categoryId": {"1"},
		"authorId":   {"2"},
		"tags":       {"1", "x"},
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "must be an integer", env.Error.Details["price"])
	assert.Contains(t, env.Error.Details, "tags")
}

func TestBookHandler_Create_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "bad thumbnail", err: domainerrors.ErrInvalidThumbnailType, wantStatus: http.StatusBadRequest, wantCode: "INVALID_THUMBNAIL_TYPE"},
		{name: "missing category", err: domainerrors.ErrCategoryNotFound, wantStatus: http.StatusNotFound, wantCode: "CATEGORY_NOT_FOUND"},
		{name: "missing tag", err: domainerrors.ErrTagNotFound, wantStatus: http.StatusNotFound, wantCode: "TAG_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, bookUC := newBookTestEcho(t)
			bookUC.EXPECT().Create(mock.Anything, bookOwnerID, mock.Anything).Return(nil, tt.err).Once()

			rec := serve(e, urlencodedRequest(http.MethodPost, "/books", url.Values{
				"title": {"Earthsea"}, "price": {"900"}, "categoryId": {"1"}, "authorId": {"2"},
			}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
		})
	}
}

func TestBookHandler_Edit_TagsSemantics(t *testing.T) {
	tests := []struct {
		name     string
		values   [][2]string
		wantTags []int64
		wantNil  bool
	}{
		{name: "absent leaves tags", values: [][2]string{{"price", "1200"}}, wantNil: true},
		{name: "single empty clears", values: [][2]string{{"tags", ""}}, wantTags: []int64{}},
		{name: "replaced", values: [][2]string{{"tags", "7"}, {"tags", "8"}}, wantTags: []int64{7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, bookUC := newBookTestEcho(t)
			bookUC.EXPECT().Edit(mock.Anything, bookOwnerID, int64(11), mock.Anything).
				RunAndReturn(func(_ context.Context, _, _ int64, in usecase.EditBookInput) (*entity.BookDetails, error) {
					if tt.wantNil {
						assert.Nil(t, in.TagIDs)
					} else {
						require.NotNil(t, in.TagIDs)
						assert.Equal(t, tt.wantTags, in.TagIDs)
					}
					assert.Nil(t, in.Thumbnail)

					return testBookDetails(), nil
				}).Once()

			rec := serve(e, multipartRequest(t, http.MethodPatch, "/books/11", tt.values, nil))

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestBookHandler_Edit_OnlySuppliedFields(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().Edit(mock.Anything, bookOwnerID, int64(11), usecase.EditBookInput{
		Title: ptr("New title"),
		Price: ptr(int64(2500)),
	}).Return(testBookDetails(), nil).Once()

	rec := serve(e, urlencodedRequest(http.MethodPatch, "/books/11", url.Values{
		"title": {"New title"},
		"price": {"2500"},
	}))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestBookHandler_Edit_Forbidden(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().Edit(mock.Anything, bookOwnerID, int64(11), mock.Anything).
		Return(nil, domainerrors.ErrBookOwnershipViolation.WrapMessage("edit book")).Once()

	rec := serve(e, urlencodedRequest(http.MethodPatch, "/books/11", url.Values{"title": {"Mine now"}}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "BOOK_OWNERSHIP_VIOLATION", decode(t, rec).Error.Code)
}

func TestBookHandler_Delete(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().Delete(mock.Anything, bookOwnerID, int64(11)).Return(nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodDelete, "/books/11", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookHandler_Delete_NotFound(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().Delete(mock.Anything, bookOwnerID, int64(99)).Return(domainerrors.ErrBookNotFound).Once()

	rec := serve(e, httptest.NewRequest(http.MethodDelete, "/books/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BOOK_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestBookHandler_Get_InvalidID(t *testing.T) {
	e, _ := newBookTestEcho(t)

	for _, id := range []string{"abc", "0", "-3"} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/books/"+id, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Equal(t, "must be a positive integer", decode(t, rec).Error.Details["id"], id)
	}
}

func TestBookHandler_Get(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().Get(mock.Anything, int64(11)).Return(testBookDetails(), nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/books/11", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tags":[]`)
	assert.Contains(t, rec.Body.String(), `"category":{"id":1,"name":"Science Fiction"}`)
}

func TestBookHandler_List_QueryParsing(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().List(mock.Anything, usecase.ListBooksInput{
		Search:     "earth",
		MinPrice:   ptr(int64(100)),
		MaxPrice:   ptr(int64(900)),
		CategoryID: ptr(int64(2)),
		Sort:       entity.BookSortTitleDesc,
		Page:       ptr(2),
		Limit:      ptr(10),
	}).Return(&usecase.BookPage{
		Items:      []*entity.BookDetails{testBookDetails()},
		TotalCount: 11,
		Paginated:  true,
		Page:       2,
		Limit:      10,
		TotalPages: 2,
	}, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet,
		"/books?search=+earth+&minPrice=100&maxPrice=900&categoryId=2&sort=DESC&page=2&limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var data map[string]any
	decodeData(t, rec, &data)
	assert.ElementsMatch(t, []string{"items", "totalCount", "limit", "page", "totalPages"}, keys(data))
	assert.InDelta(t, 2, data["totalPages"], 0)
}

func TestBookHandler_List_Unpaginated(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().List(mock.Anything, usecase.ListBooksInput{}).
		Return(&usecase.BookPage{TotalCount: 0}, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/books", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"items":[],"totalCount":0}}`, rec.Body.String())
}

func TestBookHandler_List_Errors(t *testing.T) {
	t.Run("malformed number", func(t *testing.T) {
		e, _ := newBookTestEcho(t)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/books?page=first", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be an integer", decode(t, rec).Error.Details["page"])
	})

	t.Run("usecase validation", func(t *testing.T) {
		e, bookUC := newBookTestEcho(t)
		bookUC.EXPECT().List(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewValidationError(map[string]string{"limit": "must be between 1 and 100"})).Once()

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/books?limit=500", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be between 1 and 100", decode(t, rec).Error.Details["limit"])
	})
}

func TestBookHandler_ListMine(t *testing.T) {
	e, bookUC := newBookTestEcho(t)
	bookUC.EXPECT().ListMine(mock.Anything, bookOwnerID, usecase.ListBooksInput{Sort: entity.BookSortTitleAsc}).
		Return(&usecase.BookPage{Items: []*entity.BookDetails{testBookDetails()}, TotalCount: 1}, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/books/mine?sort=asc", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var data BookListResponse
	decodeData(t, rec, &data)
	assert.Len(t, data.Items, 1)
	assert.Nil(t, data.Page)
}
