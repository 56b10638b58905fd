package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"bookshop/internal/delivery/api/response"
	"bookshop/internal/domain/entity"
	"bookshop/internal/domain/service"
	"bookshop/internal/errors"
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const thumbnailField = "thumbnail"

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
}

// BookHandler serves the /books routes. Create and edit accept
// multipart/form-data or urlencoded forms.
type BookHandler struct {
	bookUC usecase.BookUsecase
}

func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{bookUC: params.BookUC}
}

// BookListResponse carries Limit, Page and TotalPages only for paginated listings.
type BookListResponse struct {
	Items      []*entity.BookDetails `json:"items"`
	TotalCount int64                 `json:"totalCount"`
	Limit      *int                  `json:"limit,omitempty"`
	Page       *int                  `json:"page,omitempty"`
	TotalPages *int                  `json:"totalPages,omitempty"`
}

func (h *BookHandler) Create(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := c.FormParams()
	if err != nil {
		return response.BindingError(c, "Invalid book form")
	}

	fields := newValueReader(form)
	input := usecase.CreateBookInput{
		Description: fields.String("description"),
		TagIDs:      fields.IDs("tags"),
	}
	if title := fields.String("title"); title != nil {
		input.Title = *title
	}
	if price := fields.Int64("price"); price != nil {
		input.Price = *price
	}
	if categoryID := fields.Int64("categoryId"); categoryID != nil {
		input.CategoryID = *categoryID
	}
	if authorID := fields.Int64("authorId"); authorID != nil {
		input.AuthorID = *authorID
	}
	if err := fields.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	upload, closeUpload, err := thumbnailUpload(c)
	if err != nil {
		return response.BindingError(c, "Invalid thumbnail upload")
	}
	defer closeUpload()
	input.Thumbnail = upload

	book, err := h.bookUC.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, book)
}

func (h *BookHandler) Edit(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	bookID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := c.FormParams()
	if err != nil {
		return response.BindingError(c, "Invalid book form")
	}

	fields := newValueReader(form)
	input := usecase.EditBookInput{
		Title:       fields.String("title"),
		Description: fields.String("description"),
		Price:       fields.Int64("price"),
		CategoryID:  fields.Int64("categoryId"),
		AuthorID:    fields.Int64("authorId"),
		TagIDs:      fields.IDs("tags"),
	}
	if err := fields.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	upload, closeUpload, err := thumbnailUpload(c)
	if err != nil {
		return response.BindingError(c, "Invalid thumbnail upload")
	}
	defer closeUpload()
	input.Thumbnail = upload

	book, err := h.bookUC.Edit(c.Request().Context(), userID, bookID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book)
}

func (h *BookHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	bookID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.bookUC.Delete(c.Request().Context(), userID, bookID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Book deleted"})
}

func (h *BookHandler) Get(c echo.Context) error {
	bookID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.Get(c.Request().Context(), bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book)
}

func (h *BookHandler) List(c echo.Context) error {
	input, err := listBooksInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.bookUC.List(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookListResponse(page))
}

// ListMine lists the caller's own books with the same filters as List.
func (h *BookHandler) ListMine(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := listBooksInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.bookUC.ListMine(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookListResponse(page))
}

func listBooksInput(c echo.Context) (usecase.ListBooksInput, error) {
	query := newValueReader(c.QueryParams())
	input := usecase.ListBooksInput{
		Search:     strings.TrimSpace(c.QueryParam("search")),
		MinPrice:   query.Int64("minPrice"),
		MaxPrice:   query.Int64("maxPrice"),
		CategoryID: query.Int64("categoryId"),
		OwnerID:    query.Int64("ownerId"),
		Sort:       entity.BookSort(strings.ToLower(strings.TrimSpace(c.QueryParam("sort")))),
		Page:       query.Int("page"),
		Limit:      query.Int("limit"),
	}

	return input, query.Err()
}

func newBookListResponse(page *usecase.BookPage) BookListResponse {
	resp := BookListResponse{Items: page.Items, TotalCount: page.TotalCount}
	if resp.Items == nil {
		resp.Items = []*entity.BookDetails{}
	}
	if page.Paginated {
		resp.Limit = &page.Limit
		resp.Page = &page.Page
		resp.TotalPages = &page.TotalPages
	}

	return resp
}

// thumbnailUpload returns nil when no file was sent. The returned close
// function is always safe to call.
func thumbnailUpload(c echo.Context) (*service.ThumbnailUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(thumbnailField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		return nil, noop, errors.Wrap(err, "read thumbnail field")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "open thumbnail")
	}

	return &service.ThumbnailUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}, closeFile(file), nil
}

func closeFile(file multipart.File) func() {
	return func() { _ = file.Close() }
}
