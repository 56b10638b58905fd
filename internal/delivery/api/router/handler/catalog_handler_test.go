package handler

import (
	"net/http"
	"testing"

	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	mockUC "bookshop/internal/mocks/usecase"
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockCatalogUsecase) {
	t.Helper()

	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})

	e := newTestEcho()
	e.GET("/categories", h.ListCategories)
	e.POST("/categories", h.CreateCategory)
	e.GET("/authors", h.ListAuthors)
	e.POST("/authors", h.CreateAuthor)
	e.GET("/tags", h.ListTags)
	e.POST("/tags", h.CreateTag)

	return e, catalogUC
}

func TestCatalogHandler_CreateCategory(t *testing.T) {
	e, catalogUC := newCatalogTestEcho(t)
	catalogUC.EXPECT().CreateCategory(mock.Anything, usecase.CreateCategoryInput{
		Name:        "Fantasy",
		Description: ptr("Dragons"),
	}).Return(&entity.Category{ID: 3, Name: "Fantasy", Description: ptr("Dragons")}, nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/categories", `{"name":"  Fantasy ","description":"Dragons"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var data CategoryResponse
	decodeData(t, rec, &data)
	assert.Equal(t, CategoryResponse{ID: 3, Name: "Fantasy", Description: ptr("Dragons")}, data)
}

func TestCatalogHandler_CreateCategory_Errors(t *testing.T) {
	t.Run("name too short", func(t *testing.T) {
		e, _ := newCatalogTestEcho(t)

		rec := serve(e, jsonRequest(http.MethodPost, "/categories", `{"name":"F"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be at least 2 characters", decode(t, rec).Error.Details["name"])
	})

	t.Run("duplicate", func(t *testing.T) {
		e, catalogUC := newCatalogTestEcho(t)
		catalogUC.EXPECT().CreateCategory(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrCategoryAlreadyExists.WrapMessage("create category")).Once()

		rec := serve(e, jsonRequest(http.MethodPost, "/categories", `{"name":"Fantasy"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "CATEGORY_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})
}

func TestCatalogHandler_CreateAuthor(t *testing.T) {
	e, catalogUC := newCatalogTestEcho(t)
	catalogUC.EXPECT().CreateAuthor(mock.Anything, usecase.CreateAuthorInput{Name: "Ursula K. Le Guin"}).
		Return(&entity.Author{ID: 9, Name: "Ursula K. Le Guin"}, nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/authors", `{"name":"Ursula K. Le Guin"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":9,"name":"Ursula K. Le Guin","bio":null}}`, rec.Body.String())
}

func TestCatalogHandler_CreateTag(t *testing.T) {
	e, catalogUC := newCatalogTestEcho(t)
	catalogUC.EXPECT().CreateTag(mock.Anything, "classic").Return(&entity.Tag{ID: 1, Name: "classic"}, nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/tags", `{"name":"classic"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var data TagResponse
	decodeData(t, rec, &data)
	assert.Equal(t, TagResponse{ID: 1, Name: "classic"}, data)
}

func TestCatalogHandler_CreateTag_TooLong(t *testing.T) {
	e, _ := newCatalogTestEcho(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/tags", `{"name":"this-tag-name-is-far-too-long-to-be-valid"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must be at most 30 characters", decode(t, rec).Error.Details["name"])
}

func TestCatalogHandler_Lists(t *testing.T) {
	e, catalogUC := newCatalogTestEcho(t)
	catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{{ID: 1, Name: "Poetry"}}, nil).Once()
	catalogUC.EXPECT().ListAuthors(mock.Anything).Return(nil, nil).Once()
	catalogUC.EXPECT().ListTags(mock.Anything).Return([]*entity.Tag{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil).Once()

	rec := serve(e, jsonRequest(http.MethodGet, "/categories", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"id":1,"name":"Poetry","description":null}]}`, rec.Body.String())

	rec = serve(e, jsonRequest(http.MethodGet, "/authors", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())

	rec = serve(e, jsonRequest(http.MethodGet, "/tags", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	var tags []TagResponse
	decodeData(t, rec, &tags)
	assert.Len(t, tags, 2)
}
